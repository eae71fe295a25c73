package rules

import (
	"regexp"
	"strings"
)

// Rule is a boolean predicate over a single string. The variant set is
// closed; Resolve handles every variant exhaustively.
type Rule interface {
	rule()
}

type equalsRule struct{ needle string }

type containsRule struct{ needle string }

type beginsWithRule struct{ needle string }

type endsWithRule struct{ needle string }

type matchesRule struct{ re *regexp.Regexp }

type notRule struct{ inner Rule }

type andRule struct{ lhs, rhs Rule }

type orRule struct{ lhs, rhs Rule }

func (equalsRule) rule()     {}
func (containsRule) rule()   {}
func (beginsWithRule) rule() {}
func (endsWithRule) rule()   {}
func (matchesRule) rule()    {}
func (notRule) rule()        {}
func (andRule) rule()        {}
func (orRule) rule()         {}

// Equals matches when the input equals s exactly
func Equals(s string) Rule {
	return equalsRule{needle: s}
}

// Contains matches when the input contains s. The empty needle is
// contained in every input.
func Contains(s string) Rule {
	return containsRule{needle: s}
}

// BeginsWith matches when the input starts with s
func BeginsWith(s string) Rule {
	return beginsWithRule{needle: s}
}

// EndsWith matches when the input ends with s
func EndsWith(s string) Rule {
	return endsWithRule{needle: s}
}

// Matches matches when re finds a match in the input
func Matches(re *regexp.Regexp) Rule {
	return matchesRule{re: re}
}

// MatchesPattern compiles pattern and returns a Matches rule. A bad
// pattern is a construction-time error, never a resolution-time one.
func MatchesPattern(pattern string) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return matchesRule{re: re}, nil
}

// Not negates its inner rule
func Not(r Rule) Rule {
	return notRule{inner: r}
}

// And matches when both children match
func And(lhs, rhs Rule) Rule {
	return andRule{lhs: lhs, rhs: rhs}
}

// Or matches when either child matches
func Or(lhs, rhs Rule) Rule {
	return orRule{lhs: lhs, rhs: rhs}
}

// Resolve evaluates a rule against the input string
func Resolve(r Rule, input string) bool {
	switch r := r.(type) {
	case equalsRule:
		return input == r.needle
	case containsRule:
		return strings.Contains(input, r.needle)
	case beginsWithRule:
		return strings.HasPrefix(input, r.needle)
	case endsWithRule:
		return strings.HasSuffix(input, r.needle)
	case matchesRule:
		return r.re.MatchString(input)
	case notRule:
		return !Resolve(r.inner, input)
	case andRule:
		return Resolve(r.lhs, input) && Resolve(r.rhs, input)
	case orRule:
		return Resolve(r.lhs, input) || Resolve(r.rhs, input)
	default:
		return false
	}
}
