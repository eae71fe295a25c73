package operations

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/retree/pkg/errors"
	"github.com/arthur-debert/retree/pkg/rules"
	"github.com/arthur-debert/retree/pkg/types"
)

// Expression is a tree producing an optional string from constants,
// file metadata, variables, and string transforms. The variant set is
// closed; Eval handles every variant exhaustively.
type Expression interface {
	expr()
}

type constantExpr struct{ value string }

type fileNameExpr struct{}

type fileExtensionExpr struct{}

type localIndexExpr struct{}

type globalIndexExpr struct{}

type variableExpr struct{ name string }

type assignVariableExpr struct {
	name  string
	value Expression
}

type combineExpr struct{ lhs, rhs Expression }

type toUpperExpr struct{ input Expression }

type toLowerExpr struct{ input Expression }

type convertCaseExpr struct {
	style CaseStyle
	input Expression
}

type leftExpr struct {
	input, marker Expression
	inclusive     bool
}

type rightExpr struct {
	input, marker Expression
	inclusive     bool
}

type leftPatternExpr struct {
	input     Expression
	re        *regexp.Regexp
	inclusive bool
}

type rightPatternExpr struct {
	input     Expression
	re        *regexp.Regexp
	inclusive bool
}

type replaceExpr struct {
	content     Expression
	selection   Selection
	match       Expression
	replacement Expression
}

type replacePatternExpr struct {
	content     Expression
	selection   Selection
	re          *regexp.Regexp
	replacement Expression
}

type matchPatternExpr struct {
	re    *regexp.Regexp
	input Expression
}

type insertExpr struct {
	position  Position
	base      Expression
	insertion Expression
}

type ifExpr struct {
	condition rules.Rule
	then      Expression
	els       Expression
}

func (constantExpr) expr()       {}
func (fileNameExpr) expr()       {}
func (fileExtensionExpr) expr()  {}
func (localIndexExpr) expr()     {}
func (globalIndexExpr) expr()    {}
func (variableExpr) expr()       {}
func (assignVariableExpr) expr() {}
func (combineExpr) expr()        {}
func (toUpperExpr) expr()        {}
func (toLowerExpr) expr()        {}
func (convertCaseExpr) expr()    {}
func (leftExpr) expr()           {}
func (rightExpr) expr()          {}
func (leftPatternExpr) expr()    {}
func (rightPatternExpr) expr()   {}
func (replaceExpr) expr()        {}
func (replacePatternExpr) expr() {}
func (matchPatternExpr) expr()   {}
func (insertExpr) expr()         {}
func (ifExpr) expr()             {}

// Constant always produces s
func Constant(s string) Expression {
	return constantExpr{value: s}
}

// FileName produces the current file's destination name, or absence
// when the destination has no name component
func FileName() Expression {
	return fileNameExpr{}
}

// FileExtension produces the current file's destination extension
// without its dot, or absence when there is none
func FileExtension() Expression {
	return fileExtensionExpr{}
}

// LocalIndex produces the engine's per-directory counter as a string
func LocalIndex() Expression {
	return localIndexExpr{}
}

// GlobalIndex produces the engine's run-wide counter as a string
func GlobalIndex() Expression {
	return globalIndexExpr{}
}

// Variable produces the value of a variable. Referencing an undefined
// variable is a hard error, not absence.
func Variable(name string) Expression {
	return variableExpr{name: name}
}

// AssignVariable evaluates value and, when it is present, writes it to
// the variable table and produces it. An absent value writes nothing.
func AssignVariable(name string, value Expression) Expression {
	return assignVariableExpr{name: name, value: value}
}

// Combine concatenates both operands; if one is absent the result is
// the other's result
func Combine(lhs, rhs Expression) Expression {
	return combineExpr{lhs: lhs, rhs: rhs}
}

// ToUpper uppercases the input's value if present
func ToUpper(input Expression) Expression {
	return toUpperExpr{input: input}
}

// ToLower lowercases the input's value if present
func ToLower(input Expression) Expression {
	return toLowerExpr{input: input}
}

// ConvertCase re-cases the input's value if present
func ConvertCase(style CaseStyle, input Expression) Expression {
	return convertCaseExpr{style: style, input: input}
}

// Left keeps the input up to the first occurrence of marker, including
// the marker itself when inclusive. An unmatched marker returns the
// input unchanged.
func Left(input, marker Expression, inclusive bool) Expression {
	return leftExpr{input: input, marker: marker, inclusive: inclusive}
}

// Right keeps the input from the first occurrence of marker, including
// the marker itself when inclusive. An unmatched marker returns the
// input unchanged.
func Right(input, marker Expression, inclusive bool) Expression {
	return rightExpr{input: input, marker: marker, inclusive: inclusive}
}

// LeftPattern is Left with a regexp match span as the marker
func LeftPattern(input Expression, re *regexp.Regexp, inclusive bool) Expression {
	return leftPatternExpr{input: input, re: re, inclusive: inclusive}
}

// RightPattern is Right with a regexp match span as the marker
func RightPattern(input Expression, re *regexp.Regexp, inclusive bool) Expression {
	return rightPatternExpr{input: input, re: re, inclusive: inclusive}
}

// Replace substitutes occurrences of match inside content according to
// selection. Absence of any operand is absence; no occurrence returns
// content unchanged.
func Replace(content Expression, selection Selection, match, replacement Expression) Expression {
	return replaceExpr{content: content, selection: selection, match: match, replacement: replacement}
}

// ReplacePattern is Replace with regexp occurrences
func ReplacePattern(content Expression, selection Selection, re *regexp.Regexp, replacement Expression) Expression {
	return replacePatternExpr{content: content, selection: selection, re: re, replacement: replacement}
}

// MatchPattern produces the first regexp match inside its input, or
// absence when the pattern does not match
func MatchPattern(re *regexp.Regexp, input Expression) Expression {
	return matchPatternExpr{re: re, input: input}
}

// Insert places insertion text inside base at the given position.
// Before/After positions produce absence when their marker is missing.
func Insert(position Position, base, insertion Expression) Expression {
	return insertExpr{position: position, base: base, insertion: insertion}
}

// If resolves condition against the current file's name and evaluates
// the matching branch; els may be nil, making a false condition absence
func If(condition rules.Rule, then, els Expression) Expression {
	return ifExpr{condition: condition, then: then, els: els}
}

// Eval evaluates an expression against engine state. The ok result
// reports presence; absence is not an error.
func Eval(e Expression, env types.Env) (string, bool, error) {
	switch e := e.(type) {
	case constantExpr:
		return e.value, true, nil

	case fileNameExpr:
		name, ok := fileNameOf(env.CurrentFile().Destination)
		return name, ok, nil

	case fileExtensionExpr:
		ext, ok := extensionOf(env.CurrentFile().Destination)
		return ext, ok, nil

	case localIndexExpr:
		return strconv.Itoa(env.LocalIndex()), true, nil

	case globalIndexExpr:
		return strconv.Itoa(env.GlobalIndex()), true, nil

	case variableExpr:
		value, ok := env.LookupVariable(e.name)
		if !ok {
			return "", false, errors.Newf(errors.ErrVariableNotDefined,
				"variable %q is not defined", e.name)
		}
		return value, true, nil

	case assignVariableExpr:
		value, ok, err := Eval(e.value, env)
		if err != nil || !ok {
			return "", false, err
		}
		env.SetVariable(e.name, value)
		return value, true, nil

	case combineExpr:
		lhs, ok, err := Eval(e.lhs, env)
		if err != nil {
			return "", false, err
		}
		if !ok {
			return Eval(e.rhs, env)
		}
		rhs, ok, err := Eval(e.rhs, env)
		if err != nil {
			return "", false, err
		}
		if !ok {
			return lhs, true, nil
		}
		return lhs + rhs, true, nil

	case toUpperExpr:
		return evalMap(e.input, env, strings.ToUpper)

	case toLowerExpr:
		return evalMap(e.input, env, strings.ToLower)

	case convertCaseExpr:
		return evalMap(e.input, env, e.style.convert)

	case leftExpr:
		return evalLeftRight(e.input, e.marker, env, e.inclusive, false)

	case rightExpr:
		return evalLeftRight(e.input, e.marker, env, e.inclusive, true)

	case leftPatternExpr:
		return evalMap(e.input, env, func(input string) string {
			if loc := e.re.FindStringIndex(input); loc != nil {
				if e.inclusive {
					return input[:loc[1]]
				}
				return input[:loc[0]]
			}
			return input
		})

	case rightPatternExpr:
		return evalMap(e.input, env, func(input string) string {
			if loc := e.re.FindStringIndex(input); loc != nil {
				if e.inclusive {
					return input[loc[0]:]
				}
				return input[loc[1]:]
			}
			return input
		})

	case replaceExpr:
		content, ok, err := Eval(e.content, env)
		if err != nil || !ok {
			return "", false, err
		}
		match, ok, err := Eval(e.match, env)
		if err != nil || !ok {
			return "", false, err
		}
		replacement, ok, err := Eval(e.replacement, env)
		if err != nil || !ok {
			return "", false, err
		}
		return replace(content, e.selection, match, replacement), true, nil

	case replacePatternExpr:
		content, ok, err := Eval(e.content, env)
		if err != nil || !ok {
			return "", false, err
		}
		replacement, ok, err := Eval(e.replacement, env)
		if err != nil || !ok {
			return "", false, err
		}
		return replacePattern(content, e.selection, e.re, replacement), true, nil

	case matchPatternExpr:
		return evalOptional(e.input, env, func(input string) (string, bool) {
			m := e.re.FindString(input)
			if m == "" && !e.re.MatchString(input) {
				return "", false
			}
			return m, true
		})

	case insertExpr:
		base, ok, err := Eval(e.base, env)
		if err != nil || !ok {
			return "", false, err
		}
		insertion, ok, err := Eval(e.insertion, env)
		if err != nil || !ok {
			return "", false, err
		}
		return insert(e.position, base, insertion)

	case ifExpr:
		name, ok := fileNameOf(env.CurrentFile().Destination)
		if !ok {
			return "", false, errors.Newf(errors.ErrNoFileName,
				"cannot identify file name in %q", env.CurrentFile().Destination)
		}
		if rules.Resolve(e.condition, name) {
			return Eval(e.then, env)
		}
		if e.els != nil {
			return Eval(e.els, env)
		}
		return "", false, nil

	default:
		return "", false, errors.Newf(errors.ErrInternal, "unknown expression %T", e)
	}
}

// evalMap applies a total string transform over a present value
func evalMap(input Expression, env types.Env, f func(string) string) (string, bool, error) {
	value, ok, err := Eval(input, env)
	if err != nil || !ok {
		return "", false, err
	}
	return f(value), true, nil
}

// evalOptional applies a partial string transform over a present value
func evalOptional(input Expression, env types.Env, f func(string) (string, bool)) (string, bool, error) {
	value, ok, err := Eval(input, env)
	if err != nil || !ok {
		return "", false, err
	}
	out, ok := f(value)
	return out, ok, nil
}

func evalLeftRight(input, marker Expression, env types.Env, inclusive, right bool) (string, bool, error) {
	in, ok, err := Eval(input, env)
	if err != nil || !ok {
		return "", false, err
	}
	m, ok, err := Eval(marker, env)
	if err != nil || !ok {
		return "", false, err
	}

	i := strings.Index(in, m)
	if i < 0 {
		return in, true, nil
	}

	if right {
		if !inclusive {
			i += len(m)
		}
		return in[i:], true, nil
	}

	if inclusive {
		i += len(m)
	}
	return in[:i], true, nil
}

func replace(content string, selection Selection, match, replacement string) string {
	switch selection {
	case First:
		if i := strings.Index(content, match); i >= 0 {
			return content[:i] + replacement + content[i+len(match):]
		}
		return content
	case Last:
		if i := strings.LastIndex(content, match); i >= 0 {
			return content[:i] + replacement + content[i+len(match):]
		}
		return content
	default:
		return strings.ReplaceAll(content, match, replacement)
	}
}

func replacePattern(content string, selection Selection, re *regexp.Regexp, replacement string) string {
	switch selection {
	case First:
		if loc := re.FindStringIndex(content); loc != nil {
			return content[:loc[0]] + replacement + content[loc[1]:]
		}
		return content
	case Last:
		locs := re.FindAllStringIndex(content, -1)
		if len(locs) == 0 {
			return content
		}
		loc := locs[len(locs)-1]
		return content[:loc[0]] + replacement + content[loc[1]:]
	default:
		return re.ReplaceAllLiteralString(content, replacement)
	}
}

func insert(position Position, base, insertion string) (string, bool, error) {
	switch position.kind {
	case posIndex:
		i := position.index
		if i < 0 {
			i = 0
		}
		if i > len(base) {
			i = len(base)
		}
		return base[:i] + insertion + base[i:], true, nil
	case posBefore:
		i := strings.Index(base, position.marker)
		if i < 0 {
			return "", false, nil
		}
		return base[:i] + insertion + base[i:], true, nil
	case posAfter:
		i := strings.Index(base, position.marker)
		if i < 0 {
			return "", false, nil
		}
		i += len(position.marker)
		return base[:i] + insertion + base[i:], true, nil
	case posBeforePattern:
		loc := position.re.FindStringIndex(base)
		if loc == nil {
			return "", false, nil
		}
		return base[:loc[0]] + insertion + base[loc[0]:], true, nil
	case posAfterPattern:
		loc := position.re.FindStringIndex(base)
		if loc == nil {
			return "", false, nil
		}
		return base[:loc[1]] + insertion + base[loc[1]:], true, nil
	case posStart:
		return insertion + base, true, nil
	case posEnd:
		return base + insertion, true, nil
	default:
		return "", false, errors.Newf(errors.ErrInternal, "unknown insert position %d", position.kind)
	}
}
