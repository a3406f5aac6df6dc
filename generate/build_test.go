package generate_test

import (
	"strings"
	"testing"

	"go.uber.org/multierr"

	"cssb/common"
	"cssb/generate"
)

const sampleDefs = `
selectors:
  - name: box
    element: div
    id: main
    classes: [container, draggable]
  - name: link
    element: a
    attrs: ['href$=".png"']
    pseudo_classes: [focus]
  - name: pair
    combine: {left: box, combinator: "+", right: link}
`

func TestLoadDefinitions(t *testing.T) {
	defs, err := generate.LoadDefinitions([]byte(sampleDefs))
	if err != nil {
		t.Fatalf("LoadDefinitions() failed: %v", err)
	}
	if len(defs.Selectors) != 3 {
		t.Fatalf("got %d definitions, want 3", len(defs.Selectors))
	}
	if defs.Selectors[2].Combine == nil {
		t.Error("combined definition not decoded")
	}
}

func TestLoadDefinitions_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown field", "selectors:\n  - name: a\n    elem: div\n"},
		{"missing name", "selectors:\n  - element: div\n"},
		{"not yaml", ":{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := generate.LoadDefinitions([]byte(tt.in)); err == nil {
				t.Errorf("LoadDefinitions(%q) succeeded, want error", tt.in)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	defs, err := generate.LoadDefinitions([]byte(sampleDefs))
	if err != nil {
		t.Fatalf("LoadDefinitions() failed: %v", err)
	}

	results, err := generate.Build(defs, generate.Options{})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	want := []generate.Result{
		{Name: "box", Selector: "div#main.container.draggable"},
		{Name: "link", Selector: `a[href$=".png"]:focus`},
		{Name: "pair", Selector: `div#main.container.draggable + a[href$=".png"]:focus`},
	}
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("result[%d] = %+v, want %+v", i, results[i], want[i])
		}
	}
}

func TestBuild_PartialFailure(t *testing.T) {
	defs, err := generate.LoadDefinitions([]byte(`
selectors:
  - name: ok
    element: p
  - name: ok
    element: q
  - name: dangling
    combine: {left: nowhere, combinator: ">", right: ok}
`))
	if err != nil {
		t.Fatalf("LoadDefinitions() failed: %v", err)
	}

	results, err := generate.Build(defs, generate.Options{})
	if err == nil {
		t.Fatal("Build() succeeded, want accumulated errors")
	}
	if got := len(multierr.Errors(err)); got != 2 {
		t.Errorf("got %d accumulated errors, want 2: %v", got, err)
	}
	if len(results) != 1 || results[0].Name != "ok" {
		t.Errorf("results = %+v, want only %q", results, "ok")
	}
}

func TestBuild_SanitizeAndSort(t *testing.T) {
	defs, err := generate.LoadDefinitions([]byte(`
selectors:
  - name: item10
    classes: ["Second Item"]
  - name: item2
    id: "42 Things"
`))
	if err != nil {
		t.Fatalf("LoadDefinitions() failed: %v", err)
	}

	results, err := generate.Build(defs, generate.Options{Sanitize: true, Sort: true})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	// natural order puts item2 before item10
	if results[0].Name != "item2" || results[1].Name != "item10" {
		t.Errorf("sort order = [%s %s], want [item2 item10]", results[0].Name, results[1].Name)
	}
	if results[0].Selector != "#_42-things" {
		t.Errorf("sanitized id = %q, want %q", results[0].Selector, "#_42-things")
	}
	if results[1].Selector != ".second-item" {
		t.Errorf("sanitized class = %q, want %q", results[1].Selector, ".second-item")
	}
}

func TestBuild_PerDefinitionSanitizeOverride(t *testing.T) {
	off := false
	defs := &generate.Definitions{Selectors: []generate.Definition{
		{Name: "raw", Classes: []string{"Keep Me"}, Sanitize: &off},
	}}

	results, err := generate.Build(defs, generate.Options{Sanitize: true})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if results[0].Selector != ".Keep Me" {
		t.Errorf("selector = %q, want raw class preserved", results[0].Selector)
	}
}

func TestRender(t *testing.T) {
	results := []generate.Result{
		{Name: "box", Selector: "div#main"},
		{Name: "link", Selector: "a:focus"},
	}

	text, err := generate.Render(results, common.OutputFmtText)
	if err != nil {
		t.Fatalf("Render(text) failed: %v", err)
	}
	if got, want := string(text), "div#main\na:focus\n"; got != want {
		t.Errorf("Render(text) = %q, want %q", got, want)
	}

	cssOut, err := generate.Render(results, common.OutputFmtCss)
	if err != nil {
		t.Fatalf("Render(css) failed: %v", err)
	}
	for _, want := range []string{"/* box */", "div#main {\n}", "/* link */", "a:focus {\n}"} {
		if !strings.Contains(string(cssOut), want) {
			t.Errorf("Render(css) misses %q in %q", want, cssOut)
		}
	}

	jsonOut, err := generate.Render(results, common.OutputFmtJson)
	if err != nil {
		t.Fatalf("Render(json) failed: %v", err)
	}
	want := `[{"name":"box","selector":"div#main"},{"name":"link","selector":"a:focus"}]` + "\n"
	if string(jsonOut) != want {
		t.Errorf("Render(json) = %q, want %q", jsonOut, want)
	}
}
