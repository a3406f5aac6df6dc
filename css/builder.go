// Package css builds, parses and compares CSS selector strings.
package css

import (
	"strings"

	"go.uber.org/multierr"
)

// part identifies a simple selector component and doubles as its CSS order
// rank: parts must be populated in increasing rank.
type part int

const (
	partNone part = iota
	partElement
	partID
	partClass
	partAttr
	partPseudoClass
	partPseudoElement
)

func (p part) String() string {
	switch p {
	case partElement:
		return "element"
	case partID:
		return "id"
	case partClass:
		return "class"
	case partAttr:
		return "attribute"
	case partPseudoClass:
		return "pseudo-class"
	case partPseudoElement:
		return "pseudo-element"
	default:
		return "none"
	}
}

// Stringifier is the capability shared by simple and combined selectors.
type Stringifier interface {
	Stringify() (string, error)
}

// Selector is an immutable simple selector value. The zero value is an empty
// selector; every builder method returns a new value and never mutates its
// receiver, so intermediate values can be reused as branch points.
//
// A violated ordering or occurrence rule makes the returned value carry a
// sticky error: later calls keep the first error and Stringify reports it.
type Selector struct {
	element       string
	id            string
	classes       []string
	attrs         []string
	pseudoClasses []string
	pseudoElement string

	last part // highest-rank part populated so far
	err  error
}

// Free functions mirror the builder entry points for starting a chain.

func Element(v string) Selector       { return Selector{}.Element(v) }
func ID(v string) Selector            { return Selector{}.ID(v) }
func Class(v string) Selector         { return Selector{}.Class(v) }
func Attr(v string) Selector          { return Selector{}.Attr(v) }
func PseudoClass(v string) Selector   { return Selector{}.PseudoClass(v) }
func PseudoElement(v string) Selector { return Selector{}.PseudoElement(v) }

// check validates that part p may be populated next. once marks
// single-occurrence parts; populated tells whether p is already set.
func (s Selector) check(p part, populated bool) error {
	if s.err != nil {
		return s.err
	}
	if populated {
		return &DuplicateError{Part: p.String()}
	}
	if s.last > p {
		return &OrderError{Part: p.String(), After: s.last.String()}
	}
	return nil
}

// fail returns a copy of s carrying err as its sticky error.
func (s Selector) fail(err error) Selector {
	s.err = err
	return s
}

// Element returns a copy of s with the element name set.
func (s Selector) Element(v string) Selector {
	if err := s.check(partElement, s.element != ""); err != nil {
		return s.fail(err)
	}
	s.element = v
	s.last = partElement
	return s
}

// ID returns a copy of s with the id set.
func (s Selector) ID(v string) Selector {
	if err := s.check(partID, s.id != ""); err != nil {
		return s.fail(err)
	}
	s.id = v
	s.last = partID
	return s
}

// Class returns a copy of s with v appended to the class list.
func (s Selector) Class(v string) Selector {
	if err := s.check(partClass, false); err != nil {
		return s.fail(err)
	}
	s.classes = appendCopy(s.classes, v)
	s.last = partClass
	return s
}

// Attr returns a copy of s with v appended to the attribute list. Note that
// Stringify renders only the first attribute, see there.
func (s Selector) Attr(v string) Selector {
	if err := s.check(partAttr, false); err != nil {
		return s.fail(err)
	}
	s.attrs = appendCopy(s.attrs, v)
	s.last = partAttr
	return s
}

// PseudoClass returns a copy of s with v appended to the pseudo-class list.
func (s Selector) PseudoClass(v string) Selector {
	if err := s.check(partPseudoClass, false); err != nil {
		return s.fail(err)
	}
	s.pseudoClasses = appendCopy(s.pseudoClasses, v)
	s.last = partPseudoClass
	return s
}

// PseudoElement returns a copy of s with the pseudo-element set.
func (s Selector) PseudoElement(v string) Selector {
	if err := s.check(partPseudoElement, s.pseudoElement != ""); err != nil {
		return s.fail(err)
	}
	s.pseudoElement = v
	s.last = partPseudoElement
	return s
}

// Err returns the sticky error, if any.
func (s Selector) Err() error {
	return s.err
}

// Stringify renders the selector in fixed CSS order: element, #id, .class
// for every class, [attr] for the FIRST attribute only, :pseudo-class for
// every pseudo-class, ::pseudo-element. Attributes past the first are kept
// in the value but not rendered.
func (s Selector) Stringify() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	var b strings.Builder
	b.WriteString(s.element)
	if s.id != "" {
		b.WriteByte('#')
		b.WriteString(s.id)
	}
	for _, c := range s.classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	if len(s.attrs) > 0 {
		b.WriteByte('[')
		b.WriteString(s.attrs[0])
		b.WriteByte(']')
	}
	for _, p := range s.pseudoClasses {
		b.WriteByte(':')
		b.WriteString(p)
	}
	if s.pseudoElement != "" {
		b.WriteString("::")
		b.WriteString(s.pseudoElement)
	}
	return b.String(), nil
}

// String implements fmt.Stringer; it returns an empty string for a selector
// carrying an error.
func (s Selector) String() string {
	out, _ := s.Stringify()
	return out
}

// Combined is two selectors joined by a combinator. It holds the prejoined
// string, not the children, and implements the same Stringifier capability.
type Combined struct {
	joined string
	err    error
}

// Combine joins left and right with the given combinator as
// "left combinator right". The combinator is taken verbatim, no validation
// is performed. Errors carried by either side propagate into the result.
func Combine(left Stringifier, combinator string, right Stringifier) Combined {
	ls, lerr := left.Stringify()
	rs, rerr := right.Stringify()
	if err := multierr.Append(lerr, rerr); err != nil {
		return Combined{err: err}
	}
	return Combined{joined: ls + " " + combinator + " " + rs}
}

// Stringify returns the precomputed joined string.
func (c Combined) Stringify() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.joined, nil
}

// String implements fmt.Stringer.
func (c Combined) String() string {
	return c.joined
}

// Err returns the propagated child error, if any.
func (c Combined) Err() error {
	return c.err
}

// appendCopy appends v to a fresh copy of xs so sibling selector values
// never share backing arrays.
func appendCopy(xs []string, v string) []string {
	out := make([]string, len(xs)+1)
	copy(out, xs)
	out[len(xs)] = v
	return out
}
