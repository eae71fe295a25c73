package operations

import (
	"regexp"

	"github.com/iancoleman/strcase"
)

// Selection controls which occurrence of a match gets replaced
type Selection int

const (
	// First replaces the first occurrence only
	First Selection = iota
	// Last replaces the last occurrence only
	Last
	// All replaces every occurrence
	All
)

// String returns the selection name used in script files
func (s Selection) String() string {
	switch s {
	case First:
		return "first"
	case Last:
		return "last"
	case All:
		return "all"
	default:
		return "unknown"
	}
}

// SortDirection orders a file batch by destination path
type SortDirection int

const (
	// Ascending sorts lexically smallest first
	Ascending SortDirection = iota
	// Descending sorts lexically largest first
	Descending
)

// String returns the direction name used in script files
func (d SortDirection) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// CaseStyle selects a naming convention for ConvertCase
type CaseStyle int

const (
	// Snake produces lower_snake_case
	Snake CaseStyle = iota
	// Kebab produces lower-kebab-case
	Kebab
	// Camel produces lowerCamelCase
	Camel
	// Pascal produces UpperCamelCase
	Pascal
)

// String returns the style name used in script files
func (c CaseStyle) String() string {
	switch c {
	case Snake:
		return "snake"
	case Kebab:
		return "kebab"
	case Camel:
		return "camel"
	case Pascal:
		return "pascal"
	default:
		return "unknown"
	}
}

func (c CaseStyle) convert(s string) string {
	switch c {
	case Snake:
		return strcase.ToSnake(s)
	case Kebab:
		return strcase.ToKebab(s)
	case Camel:
		return strcase.ToLowerCamel(s)
	case Pascal:
		return strcase.ToCamel(s)
	default:
		return s
	}
}

type positionKind int

const (
	posIndex positionKind = iota
	posBefore
	posAfter
	posBeforePattern
	posAfterPattern
	posStart
	posEnd
)

// Position locates where Insert places its text inside the base string
type Position struct {
	kind   positionKind
	index  int
	marker string
	re     *regexp.Regexp
}

// AtIndex inserts at the given byte offset, clamped to the base length
func AtIndex(i int) Position {
	return Position{kind: posIndex, index: i}
}

// Before inserts just before the first occurrence of a literal marker
func Before(marker string) Position {
	return Position{kind: posBefore, marker: marker}
}

// After inserts just after the first occurrence of a literal marker
func After(marker string) Position {
	return Position{kind: posAfter, marker: marker}
}

// BeforePattern inserts just before the first match of re
func BeforePattern(re *regexp.Regexp) Position {
	return Position{kind: posBeforePattern, re: re}
}

// AfterPattern inserts just after the first match of re
func AfterPattern(re *regexp.Regexp) Position {
	return Position{kind: posAfterPattern, re: re}
}

// AtStart inserts before the whole base string
func AtStart() Position {
	return Position{kind: posStart}
}

// AtEnd appends after the whole base string
func AtEnd() Position {
	return Position{kind: posEnd}
}
