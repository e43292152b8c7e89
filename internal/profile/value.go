package profile

// Value holds a setting as either a scalar string or an ordered list of strings.
// List values come from indexed keys such as "cookie_invalidate[]".
type Value struct {
	scalar string
	items  []string
	list   bool
}

// Scalar creates a single-valued setting.
func Scalar(s string) Value {
	return Value{scalar: s}
}

// List creates a multi-valued setting preserving the order of items.
func List(items ...string) Value {
	return Value{items: append([]string{}, items...), list: true}
}

// IsList reports whether the value was declared with indexed keys.
func (v Value) IsList() bool {
	return v.list
}

// String returns the scalar text. Lists have no scalar form and yield "".
func (v Value) String() string {
	if v.list {
		return ""
	}
	return v.scalar
}

// Items returns a copy of the list entries, or nil for scalar values.
func (v Value) Items() []string {
	if !v.list {
		return nil
	}
	return append([]string{}, v.items...)
}

// Interface returns the value as a string or a []string.
func (v Value) Interface() any {
	if v.list {
		return v.Items()
	}
	return v.scalar
}

// MarshalYAML renders scalars as YAML strings and lists as sequences.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}

func (v Value) appendItems(items ...string) Value {
	out := List(v.items...)
	out.items = append(out.items, items...)
	return out
}

// Settings maps setting keys to their values for a single profile.
type Settings map[string]Value

// Lookup returns the value stored under key.
func (s Settings) Lookup(key string) (Value, bool) {
	v, ok := s[key]
	return v, ok
}

// Clone creates a deep copy so that later mutations do not leak between profiles.
func (s Settings) Clone() Settings {
	out := make(Settings, len(s))
	for k, v := range s {
		if v.list {
			v = List(v.items...)
		}
		out[k] = v
	}
	return out
}

// Map converts the settings into plain Go values keyed by setting name.
func (s Settings) Map() map[string]any {
	out := make(map[string]any, len(s))
	for k, v := range s {
		out[k] = v.Interface()
	}
	return out
}

func (s Settings) merge(src Settings) {
	for k, v := range src.Clone() {
		s[k] = v
	}
}
