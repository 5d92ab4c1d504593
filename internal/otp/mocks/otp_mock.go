package mocks

import (
	"time"

	"github.com/bashhack/tidal/internal/otp"
)

// MockGenerator is a mock implementation of the otp.Generator interface
type MockGenerator struct {
	GenerateAllFunc         func(secret otp.Secret, at time.Time) (otp.CandidateSet, error)
	StandardGenerateAllFunc func(secret string, at time.Time) (otp.CandidateSet, error)
}

// GenerateAll implements the otp.Generator interface
func (m *MockGenerator) GenerateAll(secret otp.Secret, at time.Time) (otp.CandidateSet, error) {
	return m.GenerateAllFunc(secret, at)
}

// StandardGenerateAll implements the otp.Generator interface
func (m *MockGenerator) StandardGenerateAll(secret string, at time.Time) (otp.CandidateSet, error) {
	return m.StandardGenerateAllFunc(secret, at)
}
