package echo

import (
	"io"
	"net"
	"testing"
	"time"

	"golang.org/x/net/nettest"
)

func TestServe_EchoesOneChunkThenCloses(t *testing.T) {
	ln, err := nettest.NewLocalListener("tcp")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	srv := New(1024)
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ln) }()

	conn, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(5 * time.Second))

	if _, err := conn.Write([]byte("ping42")); err != nil {
		t.Fatalf("Write() returned an error: %v", err)
	}
	got, err := io.ReadAll(conn)
	if err != nil {
		t.Fatalf("ReadAll() returned an error: %v", err)
	}
	if string(got) != "ping42" {
		t.Errorf("Expected 'ping42', got '%s'", got)
	}

	ln.Close()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() returned an error after close: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after the listener closed")
	}
}
