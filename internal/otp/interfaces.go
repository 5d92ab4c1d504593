package otp

import "time"

// Generator is the seam the CLI drives. It exists so app code can be tested
// against a mock instead of the real derivation.
type Generator interface {
	// GenerateAll derives legacy codes for all granularities at one instant.
	GenerateAll(secret Secret, at time.Time) (CandidateSet, error)

	// StandardGenerateAll derives RFC 6238 codes for all granularities at
	// one instant, from a base32 secret.
	StandardGenerateAll(secret string, at time.Time) (CandidateSet, error)
}

// DefaultGenerator is the production implementation backed by the package
// functions.
type DefaultGenerator struct{}

// Ensure DefaultGenerator implements Generator.
var _ Generator = DefaultGenerator{}

// GenerateAll implements Generator.
func (DefaultGenerator) GenerateAll(secret Secret, at time.Time) (CandidateSet, error) {
	return GenerateAll(secret, at)
}

// StandardGenerateAll implements Generator.
func (DefaultGenerator) StandardGenerateAll(secret string, at time.Time) (CandidateSet, error) {
	return StandardGenerateAll(secret, at)
}
