package script

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/gfxbind/geom"
	"github.com/milk9111/gfxbind/logging"
)

// Runtime compiles and runs scripts. Compiled programs are cached by name
// and cloned per run, so one Runtime can serve concurrent callers.
type Runtime struct {
	mu    sync.Mutex
	cache map[string]cachedScript
}

type cachedScript struct {
	src      string
	vars     string
	compiled *tengo.Compiled
}

func NewRuntime() *Runtime {
	return &Runtime{cache: map[string]cachedScript{}}
}

// Run executes src with vars defined as globals. FloatRect values and maps
// of them are passed as geom rect maps.
func (rt *Runtime) Run(ctx context.Context, name string, src []byte, vars map[string]any) (*Result, error) {
	compiled, err := rt.compile(name, src, vars)
	if err != nil {
		return nil, err
	}
	for k, v := range vars {
		if err := compiled.Set(k, toObject(v)); err != nil {
			return nil, fmt.Errorf("script: %s: set %s: %w", name, k, err)
		}
	}
	if err := compiled.RunContext(ctx); err != nil {
		return nil, fmt.Errorf("script: run %s: %w", name, err)
	}
	return &Result{compiled: compiled}, nil
}

func (rt *Runtime) compile(name string, src []byte, vars map[string]any) (*tengo.Compiled, error) {
	key := varKey(vars)

	rt.mu.Lock()
	c, ok := rt.cache[name]
	rt.mu.Unlock()
	if ok && c.src == string(src) && c.vars == key {
		return c.compiled.Clone(), nil
	}

	s := tengo.NewScript(src)
	modules := stdlib.GetModuleMap(stdlib.AllModuleNames()...)
	modules.AddBuiltinModule("geom", GeomModule())
	s.SetImports(modules)
	for k, v := range vars {
		if err := s.Add(k, toObject(v)); err != nil {
			return nil, fmt.Errorf("script: %s: add %s: %w", name, k, err)
		}
	}

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	logging.With("script").Debug("compiled", "name", name)

	rt.mu.Lock()
	rt.cache[name] = cachedScript{src: string(src), vars: key, compiled: compiled}
	rt.mu.Unlock()
	return compiled.Clone(), nil
}

func varKey(vars map[string]any) string {
	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return fmt.Sprint(names)
}

func toObject(v any) any {
	switch val := v.(type) {
	case geom.FloatRect:
		return rectObject(geom.Convert[float64](val))
	case geom.IntRect:
		return rectObject(geom.Convert[float64](val))
	case map[string]geom.FloatRect:
		m := &tengo.Map{Value: make(map[string]tengo.Object, len(val))}
		for k, r := range val {
			m.Value[k] = rectObject(geom.Convert[float64](r))
		}
		return m
	default:
		return v
	}
}

// Result exposes a finished run's globals.
type Result struct {
	compiled *tengo.Compiled
}

func (r *Result) IsDefined(name string) bool {
	return r.compiled.IsDefined(name)
}

// Value returns a global converted to plain Go values.
func (r *Result) Value(name string) any {
	return r.compiled.Get(name).Value()
}

func (r *Result) Bool(name string) bool {
	return r.compiled.Get(name).Bool()
}

// Rect returns a global holding a geom rect.
func (r *Result) Rect(name string) (geom.FloatRect, error) {
	if !r.compiled.IsDefined(name) {
		return geom.FloatRect{}, fmt.Errorf("script: %s is not defined", name)
	}
	rect, ok := rectFromObject(r.compiled.Get(name).Object())
	if !ok {
		return geom.FloatRect{}, fmt.Errorf("script: %s is not a rect", name)
	}
	return geom.Convert[float32](rect), nil
}

// Regions returns a global holding a map of named rects.
func (r *Result) Regions(name string) (map[string]geom.FloatRect, error) {
	if !r.compiled.IsDefined(name) {
		return nil, fmt.Errorf("script: %s is not defined", name)
	}
	var fields map[string]tengo.Object
	switch v := r.compiled.Get(name).Object().(type) {
	case *tengo.Map:
		fields = v.Value
	case *tengo.ImmutableMap:
		fields = v.Value
	default:
		return nil, fmt.Errorf("script: %s is not a map", name)
	}
	out := make(map[string]geom.FloatRect, len(fields))
	for k, o := range fields {
		rect, ok := rectFromObject(o)
		if !ok {
			return nil, fmt.Errorf("script: %s[%q] is not a rect", name, k)
		}
		out[k] = geom.Convert[float32](rect)
	}
	return out, nil
}
