// Package otp derives time-windowed one-time passcodes from a shared secret
// and checks user-entered codes against them.
//
// Codes are computed for seven simultaneous window sizes, monthly down to
// minute. The derivation is a pure function of (secret, window counter): no
// state, no clock reads, no logging. Callers snapshot the time once and pass
// it in explicitly.
package otp

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bashhack/tidal/internal/hash"
)

// ErrInvalidCounter reports a time counter outside the representable range.
var ErrInvalidCounter = errors.New("invalid time counter")

const codeDigits = 6

// Code is a derived 6-digit decimal passcode, zero-padded.
type Code string

// Format renders the code as two 3-digit groups for display, e.g. "123 456".
func (c Code) Format() string {
	if len(c) != codeDigits {
		return string(c)
	}
	return string(c[:3]) + " " + string(c[3:])
}

// Generate derives the code for one window counter.
//
// Both the counter and the secret are rendered as 16-character lowercase hex
// strings before hashing, and the HMAC tag is truncated HOTP-style over its
// hex rendering. This is NOT the RFC 4226 binary counter encoding: codes
// already in circulation were derived with the text encoding, so it is
// preserved byte for byte. The standard encoding is available separately via
// StandardGenerateAll.
func Generate(counter int64, secret Secret) (Code, error) {
	if counter < 0 {
		return "", fmt.Errorf("%w: negative counter %d", ErrInvalidCounter, counter)
	}

	message := []byte(fmt.Sprintf("%016x", counter))
	tag := hash.SumHex(secret.hexKey(), message)

	// Dynamic truncation: the last hex character picks which 4-byte slice of
	// the tag becomes the code. Offset 15 reads the final 8 hex characters,
	// so the slice always stays in bounds.
	offset := hexDigitValue(tag[len(tag)-1])
	word, err := strconv.ParseUint(tag[offset*2:offset*2+8], 16, 32)
	if err != nil {
		return "", fmt.Errorf("truncating tag: %w", err)
	}

	value := uint32(word) & 0x7fffffff
	return Code(fmt.Sprintf("%06d", value%1_000_000)), nil
}

// hexDigitValue converts one lowercase hex character to its numeric value.
// The tag is produced by hex encoding, so other bytes cannot occur.
func hexDigitValue(c byte) int {
	if c >= 'a' {
		return int(c-'a') + 10
	}
	return int(c - '0')
}
