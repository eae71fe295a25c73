// Test Type: Unit Test
// Description: Tests for the rules package - boolean predicates over strings

package rules_test

import (
	"regexp"
	"testing"

	"github.com/arthur-debert/retree/pkg/rules"
	"github.com/stretchr/testify/assert"
)

func TestResolve_Leaves(t *testing.T) {
	tests := []struct {
		name  string
		rule  rules.Rule
		input string
		want  bool
	}{
		{"equals_exact", rules.Equals("test"), "test", true},
		{"equals_shorter_needle", rules.Equals("tes"), "test", false},
		{"equals_longer_needle", rules.Equals("testing"), "test", false},

		{"contains_whole", rules.Contains("test"), "test", true},
		{"contains_substring", rules.Contains("tes"), "test", true},
		{"contains_longer_needle", rules.Contains("testing"), "test", false},
		{"contains_empty_needle", rules.Contains(""), "test", true},
		{"contains_empty_input", rules.Contains(""), "", true},

		{"begins_with_whole", rules.BeginsWith("test"), "test", true},
		{"begins_with_prefix", rules.BeginsWith("te"), "test", true},
		{"begins_with_longer_needle", rules.BeginsWith("testing"), "test", false},
		{"begins_with_mismatch", rules.BeginsWith("car"), "test", false},
		{"begins_with_suffix", rules.BeginsWith("st"), "test", false},

		{"ends_with_whole", rules.EndsWith("test"), "test", true},
		{"ends_with_prefix", rules.EndsWith("te"), "test", false},
		{"ends_with_longer_needle", rules.EndsWith("testing"), "test", false},
		{"ends_with_mismatch", rules.EndsWith("car"), "test", false},
		{"ends_with_suffix", rules.EndsWith("st"), "test", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Resolve(tt.rule, tt.input))
		})
	}
}

func TestResolve_Combinators(t *testing.T) {
	tests := []struct {
		name  string
		rule  rules.Rule
		input string
		want  bool
	}{
		{
			name:  "and_with_negated_branch",
			rule:  rules.And(rules.Equals("test"), rules.Not(rules.Equals("car"))),
			input: "test",
			want:  true,
		},
		{
			name:  "and_one_false",
			rule:  rules.And(rules.Equals("test"), rules.Equals("car")),
			input: "test",
			want:  false,
		},
		{
			name:  "or_with_negated_branch",
			rule:  rules.Or(rules.Equals("test"), rules.Not(rules.Equals("car"))),
			input: "test",
			want:  true,
		},
		{
			name:  "or_second_branch",
			rule:  rules.Or(rules.Equals("test"), rules.Equals("car")),
			input: "car",
			want:  true,
		},
		{
			name:  "or_both_false",
			rule:  rules.Or(rules.Equals("test"), rules.Equals("car")),
			input: "bus",
			want:  false,
		},
		{
			name:  "not_leaf",
			rule:  rules.Not(rules.Equals("st")),
			input: "test",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Resolve(tt.rule, tt.input))
		})
	}
}

func TestResolve_BooleanLogicSampled(t *testing.T) {
	// And(r1, Not(r2)) and Or(r1, Not(r2)) must agree with plain boolean
	// logic for sampled operand rules and inputs.
	samples := []rules.Rule{
		rules.Equals("alpha"),
		rules.Contains("ph"),
		rules.BeginsWith("al"),
		rules.EndsWith("a"),
	}
	inputs := []string{"alpha", "beta", "", "photograph"}

	for _, r1 := range samples {
		for _, r2 := range samples {
			for _, in := range inputs {
				a := rules.Resolve(r1, in)
				b := rules.Resolve(r2, in)

				assert.Equal(t, a && !b, rules.Resolve(rules.And(r1, rules.Not(r2)), in))
				assert.Equal(t, a || !b, rules.Resolve(rules.Or(r1, rules.Not(r2)), in))
			}
		}
	}
}

func TestResolve_Matches(t *testing.T) {
	re := regexp.MustCompile(`^([A-Za-z])* \(\d{4}\)\.[A-Za-z]{3}`)

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"full_match", "test (1922).mkv", true},
		{"empty_input", "", false},
		{"truncated_extension", "test (1922).mk", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Resolve(rules.Matches(re), tt.input))
		})
	}
}

func TestMatchesPattern(t *testing.T) {
	t.Run("valid_pattern", func(t *testing.T) {
		r, err := rules.MatchesPattern(`\d{4}`)
		assert.NoError(t, err)
		assert.True(t, rules.Resolve(r, "photo 2019 edit"))
		assert.False(t, rules.Resolve(r, "photo"))
	})

	t.Run("invalid_pattern_fails_at_construction", func(t *testing.T) {
		r, err := rules.MatchesPattern(`[unclosed`)
		assert.Error(t, err)
		assert.Nil(t, r)
	})
}
