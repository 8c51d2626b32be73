package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScorer(t *testing.T) {
	for _, name := range []string{"", ScorerRatio, ScorerJaroWinkler, ScorerLevenshtein} {
		s, err := NewScorer(name)
		require.NoError(t, err, "scorer %q", name)
		require.NotNil(t, s)
	}

	_, err := NewScorer("soundex")
	assert.Error(t, err)
}

func TestRatioScorer_Score(t *testing.T) {
	s := &RatioScorer{}

	testCases := []struct {
		name     string
		a, b     string
		expected float64
	}{
		// 200·LCS/(la+lb): LCS("da phat","dao phat")=7, 1400/15
		{name: "One_Char_Insert", a: "da phat", b: "dao phat", expected: 1400.0 / 15.0},
		{name: "Identical", a: "con mèo", b: "con mèo", expected: 100},
		{name: "Both_Empty", a: "", b: "", expected: 100},
		{name: "One_Empty", a: "mèo", b: "", expected: 0},
		{name: "Disjoint", a: "abc", b: "xyz", expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, s.Score(tc.a, tc.b), 1e-9)
		})
	}
}

// Ceiling phải là cận trên thật sự của Score
func TestRatioScorer_Ceiling(t *testing.T) {
	s := &RatioScorer{}

	pairs := [][2]string{
		{"da phat", "dao phat"},
		{"mèo", "mèo nhà"},
		{"abc", "xyz"},
		{"", "phật"},
		{"đạo", "đạo"},
	}
	for _, p := range pairs {
		score := s.Score(p[0], p[1])
		ceiling := s.Ceiling(p[0], p[1])
		assert.GreaterOrEqual(t, ceiling, score, "Ceiling(%q, %q) < Score", p[0], p[1])
	}
}

func TestLevenshteinScorer_Score(t *testing.T) {
	s := &LevenshteinScorer{}

	// khoảng cách 1 trên chuỗi dài 8
	assert.InDelta(t, 100*(1-1.0/8.0), s.Score("da phat", "dao phat"), 1e-9)
	assert.InDelta(t, 100, s.Score("mèo", "mèo"), 1e-9)
	assert.InDelta(t, 100, s.Score("", ""), 1e-9)
	assert.InDelta(t, 0, s.Score("mèo", ""), 1e-9)
}

func TestJaroWinklerScorer_Score(t *testing.T) {
	s := &JaroWinklerScorer{}

	assert.InDelta(t, 100, s.Score("phật", "phật"), 1e-9)
	assert.Equal(t, float64(0), s.Score("abc", "xyz"))
	// tiền tố chung được boost nên phải chấm khá cao
	assert.Greater(t, s.Score("da phat", "dao phat"), 85.0)
}
