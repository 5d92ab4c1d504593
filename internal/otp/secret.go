package otp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSecret reports a secret that cannot feed the legacy derivation.
var ErrInvalidSecret = errors.New("invalid secret")

// Secret is a validated shared secret for the legacy derivation.
//
// The derivation renders the secret as a 16-digit lowercase hex number before
// hashing, so the secret must parse as a hex value of at most 16 digits.
// Arbitrary passphrases are rejected here, at the boundary, instead of
// failing deep inside the hash step. The value is held numerically; callers
// that read the secret from user input are responsible for zeroing their own
// input buffers.
type Secret struct {
	value uint64
}

// SecretFromHex parses and validates a hex-encoded secret. Surrounding
// whitespace and an optional 0x prefix are tolerated; anything that is not a
// hex value of 1-16 digits is rejected with ErrInvalidSecret. The error never
// echoes the supplied material.
func SecretFromHex(s string) (Secret, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(strings.TrimPrefix(trimmed, "0x"), "0X")

	if trimmed == "" {
		return Secret{}, fmt.Errorf("%w: empty", ErrInvalidSecret)
	}
	if len(trimmed) > 16 {
		return Secret{}, fmt.Errorf("%w: longer than 16 hex digits", ErrInvalidSecret)
	}

	v, err := strconv.ParseUint(trimmed, 16, 64)
	if err != nil {
		return Secret{}, fmt.Errorf("%w: not a hexadecimal value", ErrInvalidSecret)
	}

	return Secret{value: v}, nil
}

// hexKey renders the secret the way the legacy scheme feeds it to the HMAC:
// the numeric value as a 16-character zero-padded lowercase hex string.
func (s Secret) hexKey() []byte {
	return []byte(fmt.Sprintf("%016x", s.value))
}

// String masks the secret so it can never leak through logging or %v.
func (s Secret) String() string {
	return "****************"
}
