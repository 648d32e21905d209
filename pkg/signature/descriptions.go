package signature

// Described is the help text of one field. A nil Description means the
// clause had no ':' section.
type Described struct {
	Name        string
	ShortName   string
	Description *string
}

// Text returns the description or the empty string.
func (d Described) Text() string {
	if d.Description == nil {
		return ""
	}
	return *d.Description
}

type Descriptions struct {
	Arguments []Described
	Options   []Described
}

func (d Descriptions) Argument(name string) (Described, bool) {
	return findDescribed(d.Arguments, name)
}

func (d Descriptions) Option(name string) (Described, bool) {
	return findDescribed(d.Options, name)
}

// ParseDescriptions extracts only the human readable part of a signature.
func ParseDescriptions(text string) (Descriptions, error) {
	spec, err := Parse(text)
	if err != nil {
		return Descriptions{}, err
	}
	return spec.Descriptions(), nil
}

func (s Spec) Descriptions() Descriptions {
	return Descriptions{
		Arguments: describe(s.Arguments),
		Options:   describe(s.Options),
	}
}

func describe(fields []FieldSpec) []Described {
	out := make([]Described, 0, len(fields))
	for _, f := range fields {
		out = append(out, Described{
			Name:        f.Name,
			ShortName:   f.ShortName,
			Description: f.Description,
		})
	}
	return out
}

func findDescribed(items []Described, name string) (Described, bool) {
	for _, d := range items {
		if d.Name == name {
			return d, true
		}
	}
	return Described{}, false
}
