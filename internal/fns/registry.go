package fns

import "fmt"

// Registry maps function names to implementations. It is filled once at
// engine construction and read-only afterwards.
type Registry struct {
	funcs map[string]Func
}

func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

func (r *Registry) Register(f Func) error {
	if _, ok := r.funcs[f.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrFuncExists, f.Name())
	}
	r.funcs[f.Name()] = f
	return nil
}

func (r *Registry) Lookup(name string) (Func, error) {
	f, ok := r.funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFuncNotFound, name)
	}
	return f, nil
}

// Names lists registered function names, unordered.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		out = append(out, name)
	}
	return out
}
