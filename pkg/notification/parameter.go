package notification

import "slices"

// Parameter is a named value that templates can reference.
// Label is a human readable caption shown in template editors.
type Parameter struct {
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Value any    `json:"value" yaml:"value"`
}

// Parameters is an ordered parameter list.
type Parameters []Parameter

// Get returns the parameter with the given name.
func (ps Parameters) Get(name string) (Parameter, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// Set replaces the parameter with the same name or appends a new one.
func (ps Parameters) Set(p Parameter) Parameters {
	for i := range ps {
		if ps[i].Name == p.Name {
			ps[i] = p
			return ps
		}
	}
	return append(ps, p)
}

// Map returns name -> value pairs for template binding.
func (ps Parameters) Map() map[string]any {
	m := make(map[string]any, len(ps))
	for _, p := range ps {
		m[p.Name] = p.Value
	}
	return m
}

// Names returns parameter names in order.
func (ps Parameters) Names() []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}

// Clone copies the list. Values are copied shallowly.
func (ps Parameters) Clone() Parameters {
	return slices.Clone(ps)
}

// ParameterSpec declares one template parameter backed by a field of T.
type ParameterSpec[T any] struct {
	Name  string
	Label string
	Value func(T) any
}

// ParameterTable is the static parameter declaration of a notification type.
// Tables are declared once per type at package level.
type ParameterTable[T any] []ParameterSpec[T]

// Extract evaluates the declared parameters against v and appends extra
// parameters whose names are not declared by the table.
func (t ParameterTable[T]) Extract(v T, extra Parameters) Parameters {
	out := make(Parameters, 0, len(t)+len(extra))
	for _, spec := range t {
		out = append(out, Parameter{Name: spec.Name, Label: spec.Label, Value: spec.Value(v)})
	}
	for _, p := range extra {
		if t.declares(p.Name) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (t ParameterTable[T]) declares(name string) bool {
	for _, spec := range t {
		if spec.Name == name {
			return true
		}
	}
	return false
}
