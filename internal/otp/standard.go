package otp

import (
	"fmt"
	"time"

	otplib "github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// StandardGenerateAll derives RFC 6238 codes for every granularity from a
// single time snapshot, treating each window size as the TOTP period.
//
// The legacy derivation hex-encodes its counter as text before hashing, which
// no off-the-shelf authenticator can reproduce. Standard mode exists for
// secrets provisioned the ordinary way (base32, otpauth URLs): it uses the
// stock algorithm so a phone authenticator configured with the same period
// agrees with the minute-level code. The two modes never mix in one set.
func StandardGenerateAll(secret string, at time.Time) (CandidateSet, error) {
	set := make(CandidateSet, 0, len(windowMillis))
	for _, g := range Granularities() {
		code, err := totp.GenerateCodeCustom(secret, at, totp.ValidateOpts{
			Period:    uint(g.WindowMillis() / 1000),
			Digits:    otplib.DigitsSix,
			Algorithm: otplib.AlgorithmSHA1,
		})
		if err != nil {
			return nil, fmt.Errorf("generating standard %s code: %w", g, err)
		}
		set = append(set, Candidate{Granularity: g, Code: Code(code)})
	}
	return set, nil
}
