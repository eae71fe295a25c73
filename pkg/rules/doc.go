// Package rules provides the boolean predicate language used to match
// file names and paths.
//
// A Rule is a tree of string predicates resolved against a single input
// string. Leaves test the input directly:
//
//   - Equals - exact match
//   - Contains - substring match
//   - BeginsWith / EndsWith - prefix and suffix match
//   - Matches - regular expression match
//
// Interior nodes combine children with And, Or, and Not. Resolution is
// side-effect free: a rule is purely a function of its input string.
//
// Regular expressions are compiled at construction time, never during
// resolution; MatchesPattern reports the compile error to the caller.
//
// # Example
//
//	r := rules.And(
//		rules.BeginsWith("IMG_"),
//		rules.Not(rules.EndsWith(".tmp")),
//	)
//	rules.Resolve(r, "IMG_0042.jpg") // true
package rules
