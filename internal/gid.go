//go:build !wasm

package internal

import "github.com/petermattis/goid"

// GID returns the current goroutine's identity.
func GID() int64 {
	return goid.Get()
}
