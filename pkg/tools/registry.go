package tools

// Registry is a static, read-only mapping from action name to tool.
// It is built once at startup and shared by every plan step; lookups by
// unknown name return an absence signal rather than panicking so callers
// can synthesize a "tool not found" outcome.
type Registry struct {
	byName map[string]Tool
	order  []string
}

// NewRegistry builds a registry from the given tools. Later registrations
// with a duplicate name replace earlier ones.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{byName: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		if _, exists := r.byName[t.Name()]; !exists {
			r.order = append(r.order, t.Name())
		}
		r.byName[t.Name()] = t
	}
	return r
}

// Lookup returns the tool registered under name, and whether it exists.
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// List returns all tools in registration order.
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.byName)
}
