package css

import "fmt"

// DuplicateError is returned when a selector part that may occur at most once
// (element, id, pseudo-element) is set a second time.
type DuplicateError struct {
	Part string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("selector part %q may occur at most once", e.Part)
}

// OrderError is returned when a selector part is set after a part that must
// follow it in CSS order (element, id, class, attribute, pseudo-class,
// pseudo-element).
type OrderError struct {
	Part  string // part being set
	After string // later-order part already present
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("selector part %q cannot be set after %q", e.Part, e.After)
}
