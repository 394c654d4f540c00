//go:build wasm

package internal

// wasm builds run on a single thread; one identity suffices.
func GID() int64 {
	return 0
}
