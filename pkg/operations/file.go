package operations

import (
	"github.com/arthur-debert/retree/pkg/rules"
	"github.com/arthur-debert/retree/pkg/types"
)

type setNameOp struct{ name Expression }

type setStemOp struct{ stem Expression }

type setExtensionOp struct{ extension Expression }

type ifOp struct {
	condition rules.Rule
	then      types.FileOperation
	els       types.FileOperation
}

type noOp struct{ expression Expression }

type sequenceOp struct{ ops []types.FileOperation }

// SetName replaces the destination's final path component with the
// expression's value. Absence leaves the path untouched.
func SetName(name Expression) types.FileOperation {
	return setNameOp{name: name}
}

// SetStem replaces the destination's name while preserving its current
// extension. Absence leaves the path untouched.
func SetStem(stem Expression) types.FileOperation {
	return setStemOp{stem: stem}
}

// SetExtension replaces the destination's extension; an empty value
// removes it. Absence leaves the path untouched.
func SetExtension(extension Expression) types.FileOperation {
	return setExtensionOp{extension: extension}
}

// IfOperation resolves condition against the full destination path and
// runs the matching branch; els may be nil
func IfOperation(condition rules.Rule, then, els types.FileOperation) types.FileOperation {
	return ifOp{condition: condition, then: then, els: els}
}

// NoOp evaluates an expression purely for its side effects (variable
// assignment) and never reports a change
func NoOp(expression Expression) types.FileOperation {
	return noOp{expression: expression}
}

// Sequence runs every operation in order, aggregating change flags.
// A no-op step never short-circuits the rest.
func Sequence(ops ...types.FileOperation) types.FileOperation {
	return sequenceOp{ops: ops}
}

func (o setNameOp) Apply(env types.Env) (bool, error) {
	name, ok, err := Eval(o.name, env)
	if err != nil || !ok {
		return false, err
	}

	file := env.CurrentFile()
	file.Destination = withFileName(file.Destination, name)
	return true, nil
}

func (o setStemOp) Apply(env types.Env) (bool, error) {
	stem, ok, err := Eval(o.stem, env)
	if err != nil || !ok {
		return false, err
	}

	file := env.CurrentFile()
	if ext, hasExt := extensionOf(file.Destination); hasExt {
		file.Destination = withFileName(file.Destination, stem+"."+ext)
	} else {
		file.Destination = withFileName(file.Destination, stem)
	}
	return true, nil
}

func (o setExtensionOp) Apply(env types.Env) (bool, error) {
	ext, ok, err := Eval(o.extension, env)
	if err != nil || !ok {
		return false, err
	}

	file := env.CurrentFile()
	dest, changed := withExtension(file.Destination, ext)
	file.Destination = dest
	return changed, nil
}

func (o ifOp) Apply(env types.Env) (bool, error) {
	if rules.Resolve(o.condition, env.CurrentFile().Destination) {
		return o.then.Apply(env)
	}
	if o.els != nil {
		return o.els.Apply(env)
	}
	return false, nil
}

func (o noOp) Apply(env types.Env) (bool, error) {
	if _, _, err := Eval(o.expression, env); err != nil {
		return false, err
	}
	return false, nil
}

func (o sequenceOp) Apply(env types.Env) (bool, error) {
	changed := false
	for _, op := range o.ops {
		c, err := op.Apply(env)
		if err != nil {
			return changed, err
		}
		changed = changed || c
	}
	return changed, nil
}
