package css_test

import (
	"testing"

	"cssc/css"
)

func TestCombinator_String(t *testing.T) {
	tests := []struct {
		comb css.Combinator
		want string
	}{
		{css.Descendant, " "},
		{css.Child, ">"},
		{css.Adjacent, "+"},
		{css.Sibling, "~"},
		{css.Combinator(42), ""},
	}
	for _, tt := range tests {
		if got := tt.comb.String(); got != tt.want {
			t.Errorf("Combinator(%d).String() = %q, want %q", int(tt.comb), got, tt.want)
		}
	}
}

func TestParseCombinator(t *testing.T) {
	tests := []struct {
		in   string
		want css.Combinator
	}{
		{"descendant", css.Descendant},
		{" ", css.Descendant},
		{"child", css.Child},
		{">", css.Child},
		{"adjacent", css.Adjacent},
		{"+", css.Adjacent},
		{"sibling", css.Sibling},
		{"~", css.Sibling},
		{"Child", css.Child},
		{"  sibling ", css.Sibling},
	}
	for _, tt := range tests {
		got, err := css.ParseCombinator(tt.in)
		if err != nil {
			t.Errorf("ParseCombinator(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCombinator(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseCombinator_Unknown(t *testing.T) {
	for _, in := range []string{"", "descendent", ">>", "general"} {
		if _, err := css.ParseCombinator(in); err == nil {
			t.Errorf("ParseCombinator(%q) expected error", in)
		}
	}
}
