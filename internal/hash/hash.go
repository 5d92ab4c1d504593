// Package hash provides the keyed hash primitive used for code derivation.
package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SumHex computes the HMAC-SHA256 tag of message under key and returns it as
// a 64-character lowercase hexadecimal string. Key handling (padding short
// keys, pre-hashing long ones) is delegated entirely to crypto/hmac.
func SumHex(key, message []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}
