// Package deform maps every block of a region to a source block through a
// user-supplied Lisp expression, the way selection-driven "deform" edits
// work: the expression reads the scaled coordinates x, y and z and returns
// the coordinates to copy from.
//
// Expressions run on the zygomys interpreter. Each point gets a fresh
// sandboxed environment, so an expression cannot leak state from one block
// to the next and a hostile script cannot reach the filesystem.
package deform

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/akmonengine/chisel"
	"github.com/akmonengine/chisel/block"
	"github.com/akmonengine/chisel/region"
	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/go-gl/mathgl/mgl64"
)

// Mode selects the coordinate system the expression works in.
type Mode int

const (
	// ModeUnitCube maps the region's bounding box onto [-1, 1] on every
	// axis: zero is the box center, one unit is the half-extent.
	ModeUnitCube Mode = iota
	// ModeRawCoord passes world coordinates through unscaled.
	ModeRawCoord
	// ModeOffset measures world coordinates relative to a caller origin.
	ModeOffset
)

// Mapping records that the block at To takes the content of the block at
// From.
type Mapping struct {
	To   block.Vector3
	From block.Vector3
}

// Deform is one deformation order: an expression, the coordinate mode it
// expects, and the origin used by ModeOffset.
type Deform struct {
	Expr   string
	Mode   Mode
	Origin block.Vector3
	// Workers bounds the evaluation goroutines; zero means one.
	Workers int
}

// Apply evaluates the expression once per region point and returns the
// resulting mappings in point-scan order. The first evaluation error wins;
// outstanding points are skipped rather than evaluated.
func (d Deform) Apply(r region.Region) ([]Mapping, error) {
	zero, unit := d.coordinates(r)
	points := slices.Collect(r.Points())

	workers := max(1, d.Workers)

	type outcome struct {
		mapping Mapping
		err     error
	}

	var failed atomic.Bool
	results := chisel.TaskCollect(workers, points, func(p block.Vector3) outcome {
		if failed.Load() {
			return outcome{err: errSkipped}
		}
		from, err := d.evalPoint(p, zero, unit)
		if err != nil {
			failed.Store(true)
			return outcome{err: err}
		}
		return outcome{mapping: Mapping{To: p, From: from}}
	})

	mappings := make([]Mapping, 0, len(results))
	for _, res := range results {
		if res.err != nil && res.err != errSkipped {
			return nil, res.err
		}
	}
	for _, res := range results {
		if res.err == nil {
			mappings = append(mappings, res.mapping)
		}
	}
	return mappings, nil
}

// errSkipped marks points abandoned after another point already failed.
var errSkipped = fmt.Errorf("evaluation skipped")

// coordinates resolves the mode into the zero point and the per-axis unit.
func (d Deform) coordinates(r region.Region) (zero, unit mgl64.Vec3) {
	switch d.Mode {
	case ModeUnitCube:
		min := r.MinimumPoint().Vec3()
		max := r.MaximumPoint().Vec3()
		zero = min.Add(max).Mul(0.5)
		unit = max.Sub(zero)
		// Flat axes would make the scaling divide by zero.
		for i := 0; i < 3; i++ {
			if unit[i] == 0 {
				unit[i] = 1
			}
		}
	case ModeOffset:
		zero = d.Origin.Vec3()
		unit = mgl64.Vec3{1, 1, 1}
	default:
		unit = mgl64.Vec3{1, 1, 1}
	}
	return zero, unit
}

// evalPoint runs the expression for one block position in a fresh sandbox
// and converts the result back to a world position.
func (d Deform) evalPoint(p block.Vector3, zero, unit mgl64.Vec3) (from block.Vector3, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during evaluation at %v: %v", p, r)
		}
	}()

	scaled := p.Vec3().Sub(zero)
	scaled = mgl64.Vec3{scaled.X() / unit.X(), scaled.Y() / unit.Y(), scaled.Z() / unit.Z()}

	env := zygo.NewZlispSandbox()
	defer env.Stop()
	registerVec3(env)

	source := prelude(scaled) + d.Expr
	if err := env.LoadString(source); err != nil {
		return block.Vector3{}, evalError(err)
	}
	result, err := env.Run()
	if err != nil {
		return block.Vector3{}, evalError(err)
	}

	value, err := toVec3(result)
	if err != nil {
		return block.Vector3{}, fmt.Errorf("expression result: %w", err)
	}

	world := mgl64.Vec3{
		value.X()*unit.X() + zero.X() + 0.5,
		value.Y()*unit.Y() + zero.Y() + 0.5,
		value.Z()*unit.Z() + zero.Z() + 0.5,
	}
	return block.FromVec3(world), nil
}

// prelude binds the scaled coordinates as x, y and z.
func prelude(scaled mgl64.Vec3) string {
	return fmt.Sprintf("(def x %s)\n(def y %s)\n(def z %s)\n",
		formatFloat(scaled.X()), formatFloat(scaled.Y()), formatFloat(scaled.Z()))
}

// formatFloat renders a float as a literal zygomys accepts; plain decimal
// notation, never exponents.
func formatFloat(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// sexpVec3 carries a vector value through the interpreter; it is what the
// (vec3 x y z) builtin returns.
type sexpVec3 struct {
	vec mgl64.Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %v %v %v)", v.vec.X(), v.vec.Y(), v.vec.Z())
}

func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// registerVec3 adds the (vec3 x y z) constructor to the environment.
func registerVec3(env *zygo.Zlisp) {
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		var vec mgl64.Vec3
		for i, arg := range args {
			v, err := toFloat64(arg)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vec3: argument %d: %w", i+1, err)
			}
			vec[i] = v
		}
		return &sexpVec3{vec: vec}, nil
	})
}

// toVec3 coerces an expression result into a vector: a vec3 value, or a
// 3-element list or array of numbers.
func toVec3(s zygo.Sexp) (mgl64.Vec3, error) {
	switch v := s.(type) {
	case *sexpVec3:
		return v.vec, nil
	case *zygo.SexpPair:
		return elementsToVec3(zygo.ListToArray(v))
	case *zygo.SexpArray:
		return elementsToVec3(v.Val, nil)
	}
	return mgl64.Vec3{}, fmt.Errorf("expected (vec3 ...) or a 3-element list, got %T", s)
}

func elementsToVec3(elems []zygo.Sexp, err error) (mgl64.Vec3, error) {
	if err != nil {
		return mgl64.Vec3{}, err
	}
	if len(elems) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("expected 3 coordinates, got %d", len(elems))
	}
	var vec mgl64.Vec3
	for i, elem := range elems {
		v, convErr := toFloat64(elem)
		if convErr != nil {
			return mgl64.Vec3{}, fmt.Errorf("coordinate %d: %w", i+1, convErr)
		}
		vec[i] = v
	}
	return vec, nil
}

// toFloat64 extracts a number from a Sexp.
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T", s)
}

// linePattern matches zygomys messages of the form "Error on line N: ...".
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// evalError rewraps an interpreter error, keeping the source line when the
// interpreter reports one. The prelude occupies lines 1-3, so user lines
// are shifted back by that much.
func evalError(err error) error {
	msg := err.Error()
	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		if line > 3 {
			line -= 3
		}
		return fmt.Errorf("expression line %d: %s", line, strings.TrimSpace(m[2]))
	}
	return fmt.Errorf("expression: %s", strings.TrimSpace(msg))
}
