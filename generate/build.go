package generate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/multierr"

	"cssb/common"
	"cssb/css"
	"cssb/jsonx"
)

// Options controls building and rendering of a definitions document.
type Options struct {
	Sanitize bool // run class and id names through css.Ident by default
	Sort     bool // order results by definition name, natural order
}

// Result is one successfully built selector.
type Result struct {
	Name     string `json:"name"`
	Selector string `json:"selector"`
}

// Build resolves definitions in document order. Combined definitions may
// reference any name defined before them. Failed definitions are skipped and
// their errors accumulated; successfully built selectors are still returned.
func Build(defs *Definitions, opts Options) ([]Result, error) {
	var (
		results []Result
		errs    error
	)
	byName := make(map[string]css.Stringifier, len(defs.Selectors))

	for _, d := range defs.Selectors {
		if _, exists := byName[d.Name]; exists {
			errs = multierr.Append(errs, fmt.Errorf("duplicate selector name %q", d.Name))
			continue
		}

		sel, err := buildOne(d, byName, opts)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("selector %q: %w", d.Name, err))
			continue
		}

		rendered, err := sel.Stringify()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("selector %q: %w", d.Name, err))
			continue
		}

		byName[d.Name] = sel
		results = append(results, Result{Name: d.Name, Selector: rendered})
	}

	if opts.Sort {
		sort.Slice(results, func(i, j int) bool {
			return natural.Less(results[i].Name, results[j].Name)
		})
	}
	return results, errs
}

// buildOne builds a single definition, resolving combined references against
// previously built selectors.
func buildOne(d Definition, byName map[string]css.Stringifier, opts Options) (css.Stringifier, error) {
	if d.Combine != nil {
		left, ok := byName[d.Combine.Left]
		if !ok {
			return nil, fmt.Errorf("unknown selector reference %q", d.Combine.Left)
		}
		right, ok := byName[d.Combine.Right]
		if !ok {
			return nil, fmt.Errorf("unknown selector reference %q", d.Combine.Right)
		}
		return css.Combine(left, d.Combine.Combinator, right), nil
	}

	sanitize := opts.Sanitize
	if d.Sanitize != nil {
		sanitize = *d.Sanitize
	}
	name := func(v string) string {
		if sanitize {
			return css.Ident(v)
		}
		return v
	}

	sel := css.Selector{}
	if d.Element != "" {
		sel = sel.Element(d.Element)
	}
	if d.ID != "" {
		sel = sel.ID(name(d.ID))
	}
	for _, c := range d.Classes {
		sel = sel.Class(name(c))
	}
	for _, a := range d.Attrs {
		sel = sel.Attr(a)
	}
	for _, p := range d.PseudoClasses {
		sel = sel.PseudoClass(p)
	}
	if d.PseudoElement != "" {
		sel = sel.PseudoElement(d.PseudoElement)
	}
	if err := sel.Err(); err != nil {
		return nil, err
	}
	return sel, nil
}

// Render serializes results in the requested output format.
func Render(results []Result, format common.OutputFmt) ([]byte, error) {
	switch format {
	case common.OutputFmtText:
		var b strings.Builder
		for _, r := range results {
			b.WriteString(r.Selector)
			b.WriteByte('\n')
		}
		return []byte(b.String()), nil

	case common.OutputFmtCss:
		// empty rule skeletons, ready to be filled in
		var b strings.Builder
		for i, r := range results {
			fmt.Fprintf(&b, "/* %s */\n%s {\n}\n", r.Name, r.Selector)
			if i < len(results)-1 {
				b.WriteByte('\n')
			}
		}
		return []byte(b.String()), nil

	case common.OutputFmtJson:
		out, err := jsonx.Marshal(results)
		if err != nil {
			return nil, err
		}
		return append([]byte(out), '\n'), nil

	default:
		return nil, fmt.Errorf("unsupported output format %s", format)
	}
}
