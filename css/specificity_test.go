package css_test

import (
	"testing"

	"cssb/css"
)

func TestSelector_Specificity(t *testing.T) {
	tests := []struct {
		name string
		sel  css.Selector
		want css.Specificity
	}{
		{"empty", css.Selector{}, css.Specificity{0, 0, 0}},
		{"element", css.Element("p"), css.Specificity{0, 0, 1}},
		{"id", css.ID("main"), css.Specificity{1, 0, 0}},
		{"classes", css.Class("a").Class("b"), css.Specificity{0, 2, 0}},
		{
			"mixed",
			css.Element("a").ID("x").Class("c").Attr("href").PseudoClass("hover").PseudoElement("before"),
			css.Specificity{1, 3, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Specificity(); got != tt.want {
				t.Errorf("Specificity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpecificity_Less(t *testing.T) {
	tests := []struct {
		a, b css.Specificity
		want bool
	}{
		{css.Specificity{0, 0, 1}, css.Specificity{0, 1, 0}, true},
		{css.Specificity{0, 1, 0}, css.Specificity{1, 0, 0}, true},
		{css.Specificity{1, 0, 0}, css.Specificity{0, 9, 9}, false},
		{css.Specificity{0, 1, 1}, css.Specificity{0, 1, 1}, false},
		{css.Specificity{0, 1, 0}, css.Specificity{0, 1, 1}, true},
	}

	for _, tt := range tests {
		if got := tt.a.Less(tt.b); got != tt.want {
			t.Errorf("%v.Less(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSpecificity_Add(t *testing.T) {
	got := css.Specificity{1, 0, 2}.Add(css.Specificity{0, 3, 1})
	if want := (css.Specificity{1, 3, 3}); got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
}

func TestIdent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Main Section", "main-section"},
		{"What's New?", "whats-new"},
		{"42nd item", "_42nd-item"},
		{"", "_"},
	}

	for _, tt := range tests {
		if got := css.Ident(tt.in); got != tt.want {
			t.Errorf("Ident(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
