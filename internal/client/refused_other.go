//go:build !unix && !windows

package client

import "strings"

// 其他平台没有统一的 errno，只能匹配错误文本
func isConnRefused(err error) bool {
	return err != nil && strings.Contains(err.Error(), "connection refused")
}
