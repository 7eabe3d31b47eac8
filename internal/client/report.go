package client

import (
	"fmt"
	"io"
)

// reporter writes the human-readable progress lines to stdout.
type reporter struct {
	w io.Writer
}

func (r reporter) connected(addr string) {
	fmt.Fprintf(r.w, "Successfully connected to %s\n", addr)
}

func (r reporter) sending(payload string) {
	fmt.Fprintf(r.w, "Sending random data: %s\n", payload)
}

func (r reporter) received(response string) {
	fmt.Fprintf(r.w, "Received from server: %s\n", response)
}

func (r reporter) refused(addr string) {
	fmt.Fprintf(r.w, "Failed to connect to %s. Is the server running?\n", addr)
}

func (r reporter) failed(err error) {
	fmt.Fprintf(r.w, "An error occurred: %v\n", err)
}
