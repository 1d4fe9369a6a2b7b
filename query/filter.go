package query

import (
	"fmt"
	"math"

	"github.com/signadot/praat-format/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter returns the frames of src for which the boolean expression code
// holds. The expression sees "time", every frame field by name, and one
// map per formant slot ("f1", "f2", ...) holding the slot's fields, for
// example
//
//	time > 0.5 && f1.frequency < 700 && intensity > 0.001
func Filter(src ir.FrameSource, code string) ([]*ir.Frame, error) {
	prg, err := Compile(code)
	if err != nil {
		return nil, err
	}
	res := []*ir.Frame{}
	for _, fr := range src.FrameList() {
		ok, err := Match(prg, fr)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, fr)
		}
	}
	return res, nil
}

// Compile compiles a filter expression.
func Compile(code string) (*vm.Program, error) {
	prg, err := expr.Compile(code, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExpr, err)
	}
	return prg, nil
}

// Match runs a compiled filter against fr.
func Match(prg *vm.Program, fr *ir.Frame) (bool, error) {
	out, err := expr.Run(prg, Env(fr))
	if err != nil {
		return false, fmt.Errorf("%w: at %s: %w", ErrExpr, ir.FormatFloat(fr.Time), err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("%w: got %T, want bool", ErrExpr, out)
	}
	return ok, nil
}

// Env returns the expression environment of fr.
func Env(fr *ir.Frame) map[string]any {
	env := map[string]any{}
	fr.Fields.Each(func(k string, v ir.Value) {
		env[k] = v.Any()
	})
	for i, slot := range fr.Formants {
		m := map[string]any{}
		slot.Each(func(k string, v ir.Value) {
			m[k] = v.Any()
		})
		env[ir.FormantName(i+1)] = m
	}
	env["time"] = fr.Time
	return env
}

// undefined is how Praat writes a value it could not compute.
const undefined = "--undefined--"

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.AllowUndefinedVariables(),
		expr.Function("isnan", func(params ...any) (any, error) {
			switch x := params[0].(type) {
			case float64:
				return math.IsNaN(x), nil
			case string:
				return x == undefined, nil
			}
			return false, nil
		},
			new(func(any) bool)),
	}
}
