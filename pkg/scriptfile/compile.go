package scriptfile

import (
	"regexp"

	"github.com/arthur-debert/retree/pkg/errors"
	"github.com/arthur-debert/retree/pkg/operations"
	"github.com/arthur-debert/retree/pkg/rules"
	"github.com/arthur-debert/retree/pkg/types"
)

func invalid(message, field string) error {
	return errors.New(errors.ErrScriptInvalid, message).WithDetail("field", field)
}

func compileRule(spec *ruleSpec) (rules.Rule, error) {
	if spec == nil {
		return nil, invalid("missing rule", "rule")
	}

	switch spec.Kind {
	case "equals":
		return rules.Equals(spec.Value), nil
	case "contains":
		return rules.Contains(spec.Value), nil
	case "begins_with":
		return rules.BeginsWith(spec.Value), nil
	case "ends_with":
		return rules.EndsWith(spec.Value), nil
	case "matches":
		rule, err := rules.MatchesPattern(spec.Pattern)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrScriptInvalid, "bad rule pattern").
				WithDetail("pattern", spec.Pattern)
		}
		return rule, nil
	case "not":
		operand, err := compileRule(spec.Operand)
		if err != nil {
			return nil, err
		}
		return rules.Not(operand), nil
	case "and", "or":
		lhs, err := compileRule(spec.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := compileRule(spec.Rhs)
		if err != nil {
			return nil, err
		}
		if spec.Kind == "and" {
			return rules.And(lhs, rhs), nil
		}
		return rules.Or(lhs, rhs), nil
	default:
		return nil, invalid("unknown rule kind", spec.Kind)
	}
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrScriptInvalid, "bad pattern").
			WithDetail("pattern", pattern)
	}
	return re, nil
}

func compileSelection(name string) (operations.Selection, error) {
	switch name {
	case "first":
		return operations.First, nil
	case "last":
		return operations.Last, nil
	case "all":
		return operations.All, nil
	default:
		return 0, invalid("unknown selection", name)
	}
}

func compileCaseStyle(name string) (operations.CaseStyle, error) {
	switch name {
	case "snake":
		return operations.Snake, nil
	case "kebab":
		return operations.Kebab, nil
	case "camel":
		return operations.Camel, nil
	case "pascal":
		return operations.Pascal, nil
	default:
		return 0, invalid("unknown case style", name)
	}
}

func compilePosition(spec *positionSpec) (operations.Position, error) {
	if spec == nil {
		return operations.Position{}, invalid("missing position", "position")
	}

	switch spec.Kind {
	case "index":
		return operations.AtIndex(spec.Index), nil
	case "before":
		return operations.Before(spec.Marker), nil
	case "after":
		return operations.After(spec.Marker), nil
	case "before_pattern", "after_pattern":
		re, err := compilePattern(spec.Pattern)
		if err != nil {
			return operations.Position{}, err
		}
		if spec.Kind == "before_pattern" {
			return operations.BeforePattern(re), nil
		}
		return operations.AfterPattern(re), nil
	case "start":
		return operations.AtStart(), nil
	case "end":
		return operations.AtEnd(), nil
	default:
		return operations.Position{}, invalid("unknown position kind", spec.Kind)
	}
}

func compileExpr(spec *exprSpec) (operations.Expression, error) {
	if spec == nil {
		return nil, invalid("missing expression", "expr")
	}

	switch spec.Kind {
	case "constant":
		return operations.Constant(spec.Value), nil
	case "file_name":
		return operations.FileName(), nil
	case "file_extension":
		return operations.FileExtension(), nil
	case "local_index":
		return operations.LocalIndex(), nil
	case "global_index":
		return operations.GlobalIndex(), nil
	case "variable":
		return operations.Variable(spec.Name), nil
	case "assign_variable":
		value, err := compileExpr(spec.Input)
		if err != nil {
			return nil, err
		}
		return operations.AssignVariable(spec.Name, value), nil
	case "combine":
		lhs, err := compileExpr(spec.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := compileExpr(spec.Rhs)
		if err != nil {
			return nil, err
		}
		return operations.Combine(lhs, rhs), nil
	case "to_upper", "to_lower":
		input, err := compileExpr(spec.Input)
		if err != nil {
			return nil, err
		}
		if spec.Kind == "to_upper" {
			return operations.ToUpper(input), nil
		}
		return operations.ToLower(input), nil
	case "convert_case":
		style, err := compileCaseStyle(spec.Style)
		if err != nil {
			return nil, err
		}
		input, err := compileExpr(spec.Input)
		if err != nil {
			return nil, err
		}
		return operations.ConvertCase(style, input), nil
	case "left", "right":
		input, err := compileExpr(spec.Input)
		if err != nil {
			return nil, err
		}
		marker, err := compileExpr(spec.Marker)
		if err != nil {
			return nil, err
		}
		if spec.Kind == "left" {
			return operations.Left(input, marker, spec.Inclusive), nil
		}
		return operations.Right(input, marker, spec.Inclusive), nil
	case "left_pattern", "right_pattern":
		input, err := compileExpr(spec.Input)
		if err != nil {
			return nil, err
		}
		re, err := compilePattern(spec.Pattern)
		if err != nil {
			return nil, err
		}
		if spec.Kind == "left_pattern" {
			return operations.LeftPattern(input, re, spec.Inclusive), nil
		}
		return operations.RightPattern(input, re, spec.Inclusive), nil
	case "replace":
		content, err := compileExpr(spec.Content)
		if err != nil {
			return nil, err
		}
		selection, err := compileSelection(spec.Selection)
		if err != nil {
			return nil, err
		}
		match, err := compileExpr(spec.Match)
		if err != nil {
			return nil, err
		}
		replacement, err := compileExpr(spec.Replacement)
		if err != nil {
			return nil, err
		}
		return operations.Replace(content, selection, match, replacement), nil
	case "replace_pattern":
		content, err := compileExpr(spec.Content)
		if err != nil {
			return nil, err
		}
		selection, err := compileSelection(spec.Selection)
		if err != nil {
			return nil, err
		}
		re, err := compilePattern(spec.Pattern)
		if err != nil {
			return nil, err
		}
		replacement, err := compileExpr(spec.Replacement)
		if err != nil {
			return nil, err
		}
		return operations.ReplacePattern(content, selection, re, replacement), nil
	case "match_pattern":
		re, err := compilePattern(spec.Pattern)
		if err != nil {
			return nil, err
		}
		input, err := compileExpr(spec.Input)
		if err != nil {
			return nil, err
		}
		return operations.MatchPattern(re, input), nil
	case "insert":
		position, err := compilePosition(spec.Position)
		if err != nil {
			return nil, err
		}
		base, err := compileExpr(spec.Base)
		if err != nil {
			return nil, err
		}
		text, err := compileExpr(spec.Text)
		if err != nil {
			return nil, err
		}
		return operations.Insert(position, base, text), nil
	case "if":
		condition, err := compileRule(spec.Condition)
		if err != nil {
			return nil, err
		}
		then, err := compileExpr(spec.Then)
		if err != nil {
			return nil, err
		}
		var els operations.Expression
		if spec.Else != nil {
			els, err = compileExpr(spec.Else)
			if err != nil {
				return nil, err
			}
		}
		return operations.If(condition, then, els), nil
	default:
		return nil, invalid("unknown expression kind", spec.Kind)
	}
}

func compileFileOp(spec *fileOpSpec) (types.FileOperation, error) {
	if spec == nil {
		return nil, invalid("missing file operation", "op")
	}

	switch spec.Op {
	case "set_name", "set_stem", "set_extension", "no_op":
		expr, err := compileExpr(spec.Expr)
		if err != nil {
			return nil, err
		}
		switch spec.Op {
		case "set_name":
			return operations.SetName(expr), nil
		case "set_stem":
			return operations.SetStem(expr), nil
		case "set_extension":
			return operations.SetExtension(expr), nil
		default:
			return operations.NoOp(expr), nil
		}
	case "if":
		condition, err := compileRule(spec.Condition)
		if err != nil {
			return nil, err
		}
		then, err := compileFileOp(spec.Then)
		if err != nil {
			return nil, err
		}
		var els types.FileOperation
		if spec.Else != nil {
			els, err = compileFileOp(spec.Else)
			if err != nil {
				return nil, err
			}
		}
		return operations.IfOperation(condition, then, els), nil
	case "sequence":
		ops, err := compileFileOps(spec.Ops)
		if err != nil {
			return nil, err
		}
		return operations.Sequence(ops...), nil
	default:
		return nil, invalid("unknown file operation", spec.Op)
	}
}

func compileFileOps(specs []fileOpSpec) ([]types.FileOperation, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	ops := make([]types.FileOperation, 0, len(specs))
	for i := range specs {
		op, err := compileFileOp(&specs[i])
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func compileDirOp(spec *dirOpSpec) (types.DirOperation, error) {
	if spec == nil {
		return nil, invalid("missing directory operation", "op")
	}

	switch spec.Op {
	case "sort":
		switch spec.Direction {
		case "ascending", "":
			return operations.Sort(operations.Ascending), nil
		case "descending":
			return operations.Sort(operations.Descending), nil
		default:
			return nil, invalid("unknown sort direction", spec.Direction)
		}
	case "remove", "include_only":
		rule, err := compileRule(spec.Rule)
		if err != nil {
			return nil, err
		}
		if spec.Op == "remove" {
			return operations.Remove(rule), nil
		}
		return operations.IncludeOnly(rule), nil
	case "offset_local_index":
		return operations.OffsetLocalIndex(spec.Offset), nil
	default:
		return nil, invalid("unknown directory operation", spec.Op)
	}
}

func compileDirOps(specs []dirOpSpec) ([]types.DirOperation, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	ops := make([]types.DirOperation, 0, len(specs))
	for i := range specs {
		op, err := compileDirOp(&specs[i])
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}
