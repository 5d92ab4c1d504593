package otp

import (
	"fmt"
	"strings"
	"time"
)

// Candidate pairs a granularity with the code currently valid in its window.
type Candidate struct {
	Granularity Granularity
	Code        Code
}

// CandidateSet is the result of one generation pass over all granularities,
// in display order (monthly first, minutely last).
type CandidateSet []Candidate

// GenerateAll derives the code for every granularity from a single time
// snapshot. Reusing one snapshot keeps the set internally consistent even
// when a window boundary passes mid-computation.
func GenerateAll(secret Secret, at time.Time) (CandidateSet, error) {
	set := make(CandidateSet, 0, len(windowMillis))
	for _, g := range Granularities() {
		code, err := Generate(g.Counter(at), secret)
		if err != nil {
			return nil, fmt.Errorf("generating %s code: %w", g, err)
		}
		set = append(set, Candidate{Granularity: g, Code: code})
	}
	return set, nil
}

// Match checks a user-entered code against the set. Grouping whitespace is
// stripped before comparison, candidates are tried in display order, and the
// first hit wins. A miss is a normal outcome, not an error.
//
// The comparison is not constant time. That is acceptable for a local
// convenience check against codes this process derived itself; do not reuse
// it as an authentication boundary.
func (s CandidateSet) Match(userCode string) (Granularity, bool) {
	cleaned := strings.Join(strings.Fields(userCode), "")
	for _, c := range s {
		if string(c.Code) == cleaned {
			return c.Granularity, true
		}
	}
	return 0, false
}

// Filter returns the subset of candidates whose granularity is not in the
// hidden set, preserving order.
func (s CandidateSet) Filter(hidden map[Granularity]bool) CandidateSet {
	if len(hidden) == 0 {
		return s
	}
	out := make(CandidateSet, 0, len(s))
	for _, c := range s {
		if !hidden[c.Granularity] {
			out = append(out, c)
		}
	}
	return out
}
