package signature

type Kind int

const (
	Positional Kind = iota
	Flag
)

func (k Kind) String() string {
	if k == Flag {
		return "flag"
	}
	return "positional"
}

// FieldSpec is one parsed clause of a signature.
type FieldSpec struct {
	Name      string
	ShortName string
	Kind      Kind

	// HasDefault is set by '='. A nil Default with HasDefault means the
	// clause was declared as "name=" with no value.
	HasDefault bool
	Default    *string

	Optional bool
	Variadic bool

	// NullDefault marks a flag declared with '?': left out, it binds to
	// null instead of false.
	NullDefault bool

	// NeedsValue marks a flag declared with '=': it is bound to a string
	// instead of a boolean.
	NeedsValue bool

	Description *string
}

func (f FieldSpec) IsFlag() bool {
	return f.Kind == Flag
}

// Spec is the parsed form of a signature pattern. Both slices keep
// declaration order.
type Spec struct {
	Arguments []FieldSpec
	Options   []FieldSpec
}

func (s Spec) Argument(name string) (FieldSpec, bool) {
	return find(s.Arguments, name)
}

func (s Spec) Option(name string) (FieldSpec, bool) {
	return find(s.Options, name)
}

// Merge returns a new Spec holding the fields of s followed by the fields of
// other. A field of other replaces the field of s with the same name in place.
func (s Spec) Merge(other Spec) Spec {
	return Spec{
		Arguments: mergeFields(s.Arguments, other.Arguments),
		Options:   mergeFields(s.Options, other.Options),
	}
}

func (s *Spec) add(f FieldSpec, position int) error {
	target := &s.Arguments
	if f.IsFlag() {
		target = &s.Options
	}

	if _, exists := find(*target, f.Name); exists {
		return ErrMalformedSignature.
			WithDetail("position", position).
			WithDetail("reason", "duplicate "+f.Kind.String()+" "+f.Name)
	}
	if f.ShortName != "" {
		for _, existing := range *target {
			if existing.ShortName == f.ShortName {
				return ErrMalformedSignature.
					WithDetail("position", position).
					WithDetail("reason", "duplicate alias "+f.ShortName)
			}
		}
	}

	*target = append(*target, f)
	return nil
}

func find(fields []FieldSpec, name string) (FieldSpec, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

func mergeFields(base, overlay []FieldSpec) []FieldSpec {
	merged := make([]FieldSpec, 0, len(base)+len(overlay))
	merged = append(merged, base...)

	for _, f := range overlay {
		replaced := false
		for i := range merged {
			if merged[i].Name == f.Name {
				merged[i] = f
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, f)
		}
	}
	return merged
}
