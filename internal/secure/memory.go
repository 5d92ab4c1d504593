// Package secure holds best-effort helpers for limiting how long secret
// material lingers in memory.
//
// Go's garbage collector can move and duplicate data, and strings are
// immutable, so complete erasure cannot be guaranteed. The helpers here
// shrink the exposure window; they do not eliminate it. Keep secrets in
// []byte form and zero them as soon as they have been parsed.
package secure

import "runtime"

// ZeroBytes overwrites a byte slice with zeros in a way the compiler will
// not optimize away.
func ZeroBytes(data []byte) {
	if len(data) == 0 {
		return
	}

	for i := range data {
		data[i] = 0
	}

	// Keeps the writes observable so they survive optimization.
	runtime.KeepAlive(data)
}

// ZeroAll zeroes multiple byte slices at once.
func ZeroAll(slices ...[]byte) {
	for _, b := range slices {
		ZeroBytes(b)
	}
}
