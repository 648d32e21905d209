package signature

import (
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		signature string
		base      string
		pattern   string
	}{
		{name: "base only", signature: "list", base: "list", pattern: ""},
		{name: "base and pattern", signature: "migrate {--force}", base: "migrate", pattern: "{--force}"},
		{name: "multiline", signature: "test \n  { a: First }\n  { b }", base: "test", pattern: "{ a: First }\n  { b }"},
		{name: "leading space", signature: "  seed {x}", base: "seed", pattern: "{x}"},
		{name: "empty", signature: "", base: "", pattern: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, pattern := Split(tt.signature)
			if base != tt.base {
				t.Errorf("expected base %q, got %q", tt.base, base)
			}
			if pattern != tt.pattern {
				t.Errorf("expected pattern %q, got %q", tt.pattern, pattern)
			}
		})
	}
}

func TestParse_Positional(t *testing.T) {
	spec, err := Parse("{a} {b?} {c=bar} {users*} {d=}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(spec.Arguments) != 5 {
		t.Fatalf("expected 5 arguments, got %d", len(spec.Arguments))
	}
	if len(spec.Options) != 0 {
		t.Errorf("expected no options, got %d", len(spec.Options))
	}

	names := []string{"a", "b", "c", "users", "d"}
	for i, name := range names {
		if spec.Arguments[i].Name != name {
			t.Errorf("expected argument %d to be %q, got %q", i, name, spec.Arguments[i].Name)
		}
		if spec.Arguments[i].Kind != Positional {
			t.Errorf("expected %q to be positional", name)
		}
	}

	a := spec.Arguments[0]
	if a.Optional || a.HasDefault || a.Variadic {
		t.Errorf("expected a to be a plain required argument, got %+v", a)
	}

	b := spec.Arguments[1]
	if !b.Optional || b.Default != nil {
		t.Errorf("expected b to be optional with null default, got %+v", b)
	}

	c := spec.Arguments[2]
	if !c.Optional || !c.HasDefault || c.Default == nil || *c.Default != "bar" {
		t.Errorf("expected c to default to bar, got %+v", c)
	}

	users := spec.Arguments[3]
	if !users.Variadic || users.Optional {
		t.Errorf("expected users to be a required variadic, got %+v", users)
	}

	d := spec.Arguments[4]
	if !d.Optional || !d.HasDefault || d.Default != nil {
		t.Errorf("expected d to be optional with null default, got %+v", d)
	}
}

func TestParse_Options(t *testing.T) {
	spec, err := Parse("{--foo} {--F|bar=} {--baz=qux} {-b} {-c|long}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(spec.Arguments) != 0 {
		t.Errorf("expected no arguments, got %d", len(spec.Arguments))
	}

	tests := []struct {
		name       string
		short      string
		needsValue bool
		def        *string
	}{
		{name: "foo"},
		{name: "bar", short: "F", needsValue: true},
		{name: "baz", needsValue: true, def: strPtr("qux")},
		{name: "b", short: "b"},
		{name: "long", short: "c"},
	}

	if len(spec.Options) != len(tests) {
		t.Fatalf("expected %d options, got %d", len(tests), len(spec.Options))
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt := spec.Options[i]
			if opt.Name != tt.name {
				t.Errorf("expected name %q, got %q", tt.name, opt.Name)
			}
			if opt.ShortName != tt.short {
				t.Errorf("expected short %q, got %q", tt.short, opt.ShortName)
			}
			if opt.NeedsValue != tt.needsValue {
				t.Errorf("expected needsValue %v, got %v", tt.needsValue, opt.NeedsValue)
			}
			if !opt.IsFlag() || !opt.Optional {
				t.Errorf("expected optional flag, got %+v", opt)
			}
			switch {
			case tt.def == nil && opt.Default != nil:
				t.Errorf("expected null default, got %q", *opt.Default)
			case tt.def != nil && (opt.Default == nil || *opt.Default != *tt.def):
				t.Errorf("expected default %q, got %v", *tt.def, opt.Default)
			}
		})
	}
}

func TestParse_IgnoresBaseAndOuterText(t *testing.T) {
	spec, err := Parse("migrate:rollback {--step=1 : Number of batches} trailing words")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	step, ok := spec.Option("step")
	if !ok {
		t.Fatal("expected step option")
	}
	if step.Default == nil || *step.Default != "1" {
		t.Errorf("expected default 1, got %v", step.Default)
	}
	if step.Description == nil || *step.Description != "Number of batches" {
		t.Errorf("expected description, got %v", step.Description)
	}
}

func TestParse_SameNameForArgumentAndOption(t *testing.T) {
	spec, err := Parse("{name} {--name=}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := spec.Argument("name"); !ok {
		t.Error("expected argument name")
	}
	if _, ok := spec.Option("name"); !ok {
		t.Error("expected option name")
	}
}

func TestParse_SkipsUnknownCharacters(t *testing.T) {
	spec, err := Parse("{ user_name# }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Arguments[0].Name != "username" {
		t.Errorf("expected non identifier characters to be skipped, got %q", spec.Arguments[0].Name)
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "missing closing brace", text: "{a} {b"},
		{name: "missing brace after description", text: "{a: never closed"},
		{name: "missing brace after default", text: "{a=foo"},
		{name: "empty clause", text: "{ }"},
		{name: "dashes only", text: "{--}"},
		{name: "duplicate argument", text: "{a} {a?}"},
		{name: "duplicate option", text: "{--a} {--a=}"},
		{name: "duplicate alias", text: "{--x|one} {--x|two}"},
		{name: "long alias", text: "{--xy|name}"},
		{name: "alias on positional", text: "{x|name}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrMalformedSignature) {
				t.Errorf("expected ErrMalformedSignature, got %v", err)
			}
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for malformed signature")
		}
	}()
	MustParse("{a")
}

func TestGlobal(t *testing.T) {
	help, ok := Global.Option("help")
	if !ok || help.ShortName != "h" || help.NeedsValue {
		t.Errorf("expected boolean help option with alias h, got %+v", help)
	}
	verbose, ok := Global.Option("verbose")
	if !ok || verbose.ShortName != "v" {
		t.Errorf("expected verbose option with alias v, got %+v", verbose)
	}
}

func TestSpec_Merge(t *testing.T) {
	own := MustParse("{file} {--verbose=: Verbosity level} {--force}")

	merged := Global.Merge(own)

	if len(merged.Arguments) != 1 || merged.Arguments[0].Name != "file" {
		t.Errorf("expected file argument, got %+v", merged.Arguments)
	}

	names := make([]string, 0, len(merged.Options))
	for _, o := range merged.Options {
		names = append(names, o.Name)
	}
	expected := []string{"help", "verbose", "force"}
	if len(names) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("expected %v, got %v", expected, names)
		}
	}

	verbose, _ := merged.Option("verbose")
	if !verbose.NeedsValue {
		t.Error("expected command declaration to replace the global one")
	}
	if len(Global.Options) != 2 {
		t.Error("expected Global to stay untouched")
	}
}

func TestParse_OptionalFlagHasNullDefault(t *testing.T) {
	spec := MustParse("test {--foo} {--bar?: Second option} {x?}")

	foo, _ := spec.Option("foo")
	if foo.NullDefault {
		t.Error("expected plain flag to default to false")
	}
	bar, _ := spec.Option("bar")
	if !bar.NullDefault {
		t.Errorf("expected null default on --bar?, got %+v", bar)
	}
	x, _ := spec.Argument("x")
	if x.NullDefault {
		t.Error("expected positional arguments to leave NullDefault unset")
	}
}
