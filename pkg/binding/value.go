package binding

import (
	"slices"
	"strings"
)

type ValueKind int

const (
	NullKind ValueKind = iota
	StringKind
	BoolKind
	ListKind
)

// Value is a bound argument or option: null, a string, a boolean or an
// ordered list of strings.
type Value struct {
	kind ValueKind
	str  string
	b    bool
	list []string
}

func Null() Value {
	return Value{kind: NullKind}
}

func String(s string) Value {
	return Value{kind: StringKind, str: s}
}

func Bool(b bool) Value {
	return Value{kind: BoolKind, b: b}
}

func List(items []string) Value {
	return Value{kind: ListKind, list: slices.Clone(items)}
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == NullKind
}

func (v Value) String() string {
	switch v.kind {
	case StringKind:
		return v.str
	case BoolKind:
		if v.b {
			return "true"
		}
		return "false"
	case ListKind:
		return strings.Join(v.list, " ")
	default:
		return ""
	}
}

func (v Value) Bool() bool {
	switch v.kind {
	case BoolKind:
		return v.b
	case StringKind:
		return v.str != ""
	case ListKind:
		return len(v.list) > 0
	default:
		return false
	}
}

func (v Value) List() []string {
	switch v.kind {
	case ListKind:
		return slices.Clone(v.list)
	case StringKind:
		return []string{v.str}
	default:
		return nil
	}
}

// Any returns nil, string, bool or []string.
func (v Value) Any() any {
	switch v.kind {
	case StringKind:
		return v.str
	case BoolKind:
		return v.b
	case ListKind:
		if v.list == nil {
			return []string{}
		}
		return slices.Clone(v.list)
	default:
		return nil
	}
}

func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case StringKind:
		return v.str == other.str
	case BoolKind:
		return v.b == other.b
	case ListKind:
		return slices.Equal(v.list, other.list)
	default:
		return true
	}
}

// Values is an ordered, read-only name to Value mapping.
type Values struct {
	names  []string
	values map[string]Value
}

func (vs *Values) set(name string, v Value) {
	if vs.values == nil {
		vs.values = make(map[string]Value)
	}
	if _, exists := vs.values[name]; !exists {
		vs.names = append(vs.names, name)
	}
	vs.values[name] = v
}

func (vs Values) Get(name string) (Value, bool) {
	v, ok := vs.values[name]
	return v, ok
}

func (vs Values) Has(name string) bool {
	_, ok := vs.values[name]
	return ok
}

func (vs Values) Names() []string {
	return slices.Clone(vs.names)
}

func (vs Values) Len() int {
	return len(vs.names)
}

func (vs Values) Map() map[string]any {
	out := make(map[string]any, len(vs.names))
	for _, name := range vs.names {
		out[name] = vs.values[name].Any()
	}
	return out
}

// Input is the result of binding tokens against a signature.
type Input struct {
	Arguments Values
	Options   Values
}
