// Package generate turns named selector definitions into CSS selector text.
package generate

import (
	"bytes"
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// CombineDef joins two previously defined selectors by name.
type CombineDef struct {
	Left       string `yaml:"left"`
	Combinator string `yaml:"combinator"`
	Right      string `yaml:"right"`
}

// Definition describes a single named selector. Either the simple selector
// fields or Combine is used, not both.
type Definition struct {
	Name          string      `yaml:"name"`
	Element       string      `yaml:"element,omitempty"`
	ID            string      `yaml:"id,omitempty"`
	Classes       []string    `yaml:"classes,omitempty"`
	Attrs         []string    `yaml:"attrs,omitempty"`
	PseudoClasses []string    `yaml:"pseudo_classes,omitempty"`
	PseudoElement string      `yaml:"pseudo_element,omitempty"`
	Sanitize      *bool       `yaml:"sanitize,omitempty"`
	Combine       *CombineDef `yaml:"combine,omitempty"`
}

// Definitions is the top level of a selector definitions file.
type Definitions struct {
	Selectors []Definition `yaml:"selectors"`
}

// LoadDefinitions decodes a YAML definitions document. Unknown fields are
// rejected so typos in part names do not silently drop selector parts.
func LoadDefinitions(data []byte) (*Definitions, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	defs := &Definitions{}
	if err := dec.Decode(defs); err != nil {
		return nil, fmt.Errorf("failed to decode selector definitions: %w", err)
	}
	for i, d := range defs.Selectors {
		if d.Name == "" {
			return nil, fmt.Errorf("selector definition #%d has no name", i+1)
		}
	}
	return defs, nil
}
