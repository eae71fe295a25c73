// Package walker turns a root directory into an ordered list of paths.
//
// The walk is depth-first in directory-entry order. A directory
// inclusion policy controls whether visited directories themselves
// appear in the result: First lists a directory before its contents,
// Last after, and Skip omits directories entirely. A maximum depth can
// be set, either as a hard error or as a cutoff that records the
// unvisited directory per the inclusion policy.
package walker
