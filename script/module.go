// Package script runs tengo scripts with a "geom" module for rectangle
// queries, so hit regions and layouts can be computed outside Go.
package script

import (
	"github.com/d5/tengo/v2"
	"github.com/milk9111/gfxbind/geom"
)

// scriptRect is the rectangle type scripts compute with; tengo numbers are
// float64.
type scriptRect = geom.Rect[float64]

// GeomModule returns the attributes of the builtin "geom" module.
func GeomModule() map[string]tengo.Object {
	return map[string]tengo.Object{
		"rect": &tengo.UserFunction{Name: "rect", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 4 {
				return nil, tengo.ErrWrongNumArguments
			}
			var v [4]float64
			for i, a := range args {
				f, ok := tengo.ToFloat64(a)
				if !ok {
					return nil, tengo.ErrInvalidArgumentType{Name: argName(i), Expected: "int/float", Found: a.TypeName()}
				}
				v[i] = f
			}
			return rectObject(geom.NewRect(v[0], v[1], v[2], v[3])), nil
		}},
		"contains": &tengo.UserFunction{Name: "contains", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 3 {
				return nil, tengo.ErrWrongNumArguments
			}
			r, err := rectArg(args, 0)
			if err != nil {
				return nil, err
			}
			var p [2]float64
			for i, a := range args[1:] {
				f, ok := tengo.ToFloat64(a)
				if !ok {
					return nil, tengo.ErrInvalidArgumentType{Name: argName(i + 1), Expected: "int/float", Found: a.TypeName()}
				}
				p[i] = f
			}
			return boolObject(r.Contains(p[0], p[1])), nil
		}},
		"intersects": &tengo.UserFunction{Name: "intersects", Value: func(args ...tengo.Object) (tengo.Object, error) {
			a, b, err := rectPair(args)
			if err != nil {
				return nil, err
			}
			return rectObject(a.Intersects(b)), nil
		}},
		"is_intersecting": &tengo.UserFunction{Name: "is_intersecting", Value: func(args ...tengo.Object) (tengo.Object, error) {
			a, b, err := rectPair(args)
			if err != nil {
				return nil, err
			}
			return boolObject(a.IsIntersecting(b)), nil
		}},
		"is_zero": &tengo.UserFunction{Name: "is_zero", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			r, err := rectArg(args, 0)
			if err != nil {
				return nil, err
			}
			return boolObject(r.IsZero()), nil
		}},
		"normalize": &tengo.UserFunction{Name: "normalize", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			r, err := rectArg(args, 0)
			if err != nil {
				return nil, err
			}
			return rectObject(r.Normalized()), nil
		}},
	}
}

func rectPair(args []tengo.Object) (scriptRect, scriptRect, error) {
	if len(args) != 2 {
		return scriptRect{}, scriptRect{}, tengo.ErrWrongNumArguments
	}
	a, err := rectArg(args, 0)
	if err != nil {
		return scriptRect{}, scriptRect{}, err
	}
	b, err := rectArg(args, 1)
	if err != nil {
		return scriptRect{}, scriptRect{}, err
	}
	return a, b, nil
}

func rectArg(args []tengo.Object, i int) (scriptRect, error) {
	r, ok := rectFromObject(args[i])
	if !ok {
		return scriptRect{}, tengo.ErrInvalidArgumentType{Name: argName(i), Expected: "rect", Found: args[i].TypeName()}
	}
	return r, nil
}

// rectFromObject accepts a {left, top, width, height} map or a four element
// array.
func rectFromObject(obj tengo.Object) (scriptRect, bool) {
	var fields map[string]tengo.Object
	switch v := obj.(type) {
	case *tengo.Map:
		fields = v.Value
	case *tengo.ImmutableMap:
		fields = v.Value
	case *tengo.Array:
		return rectFromValues(v.Value)
	case *tengo.ImmutableArray:
		return rectFromValues(v.Value)
	default:
		return scriptRect{}, false
	}
	vals := make([]tengo.Object, 0, 4)
	for _, k := range []string{"left", "top", "width", "height"} {
		o, ok := fields[k]
		if !ok {
			return scriptRect{}, false
		}
		vals = append(vals, o)
	}
	return rectFromValues(vals)
}

func rectFromValues(vals []tengo.Object) (scriptRect, bool) {
	if len(vals) != 4 {
		return scriptRect{}, false
	}
	var f [4]float64
	for i, o := range vals {
		v, ok := tengo.ToFloat64(o)
		if !ok {
			return scriptRect{}, false
		}
		f[i] = v
	}
	return geom.NewRect(f[0], f[1], f[2], f[3]), true
}

func rectObject(r scriptRect) *tengo.Map {
	return &tengo.Map{Value: map[string]tengo.Object{
		"left":   &tengo.Float{Value: r.Left},
		"top":    &tengo.Float{Value: r.Top},
		"width":  &tengo.Float{Value: r.Width},
		"height": &tengo.Float{Value: r.Height},
	}}
}

func boolObject(b bool) tengo.Object {
	if b {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func argName(i int) string {
	switch i {
	case 0:
		return "first"
	case 1:
		return "second"
	case 2:
		return "third"
	default:
		return "fourth"
	}
}
