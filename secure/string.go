// File: iniconf/secure/string.go

// Package secure holds sensitive text in a buffer that is wiped on Close.
package secure

import (
	"crypto/subtle"
	"runtime"
)

// String owns a mutable byte buffer holding sensitive text, such as a
// credential read from a configuration file. Close zeroes the buffer with
// writes the compiler is not allowed to discard.
//
// Only the wipe itself is guaranteed. The secret may still exist in copies
// made before wrapping, in copies handed out by Value, or in memory the
// runtime moved or swapped. String narrows the exposure window; it does
// not eliminate it.
type String struct {
	data []byte
}

// NewString copies s into a wipeable buffer. The original s is untouched
// and remains the caller's problem.
func NewString(s string) *String {
	return &String{data: []byte(s)}
}

// NewStringFromBytes takes ownership of b. The caller must not use b
// afterwards; it is zeroed when the String is closed.
func NewStringFromBytes(b []byte) *String {
	return &String{data: b}
}

// Value returns the contents as a string. The returned string is a copy
// outside the String's control and is not wiped by Close.
func (s *String) Value() string { return string(s.data) }

// Bytes returns the backing buffer itself. It aliases the String: writes
// show through, and after Close it reads as empty.
func (s *String) Bytes() []byte { return s.data }

// Len reports the current length in bytes.
func (s *String) Len() int { return len(s.data) }

// Equal compares two Strings in constant time.
func (s *String) Equal(other *String) bool {
	return subtle.ConstantTimeCompare(s.data, other.data) == 1
}

// Close wipes the buffer and empties the String. Closing twice is
// harmless.
func (s *String) Close() error {
	wipe(s.data)
	s.data = s.data[:0]
	return nil
}

// String implements fmt.Stringer. Like Value, the result is an unwiped
// copy.
func (s *String) String() string { return s.Value() }

// wipe zeroes b with stores that survive optimization: the KeepAlive pin
// keeps b live past the final store, so the loop is not a dead store the
// compiler may elide.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
