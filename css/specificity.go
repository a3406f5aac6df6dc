package css

// Specificity is the CSS specificity as defined in
// https://www.w3.org/TR/selectors/#specificity-rules
// with the convention Specificity = [A,B,C].
type Specificity [3]int

// Less returns true if s < other (strictly), false otherwise.
func (s Specificity) Less(other Specificity) bool {
	for i := range s {
		if s[i] < other[i] {
			return true
		}
		if s[i] > other[i] {
			return false
		}
	}
	return false
}

// Add sums two specificities component-wise.
func (s Specificity) Add(other Specificity) Specificity {
	for i, sp := range other {
		s[i] += sp
	}
	return s
}

// Specificity computes the specificity of a simple selector: id counts into
// A, classes, attributes and pseudo-classes into B, element and
// pseudo-element into C. A selector carrying an error has zero specificity.
func (s Selector) Specificity() Specificity {
	if s.err != nil {
		return Specificity{}
	}
	var sp Specificity
	if s.id != "" {
		sp[0]++
	}
	sp[1] = len(s.classes) + len(s.attrs) + len(s.pseudoClasses)
	if s.element != "" {
		sp[2]++
	}
	if s.pseudoElement != "" {
		sp[2]++
	}
	return sp
}
