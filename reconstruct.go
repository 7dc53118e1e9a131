package classifile

import (
	"fmt"
	"strings"
)

// ArgumentCountError reports a ReconstructWith call whose value count does
// not match the filename's visible element count.
type ArgumentCountError struct {
	Want int
	Got  int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("expected %d element values, got %d", e.Want, e.Got)
}

// Element is one visible (non-separator, non-extension) component of a
// parsed filename, carrying its ordered picker suggestions.
type Element struct {
	Current      string      `json:"current"`
	Kind         ElementKind `json:"kind"`
	ElementIndex int         `json:"element-index"`
	Suggestions  []string    `json:"suggestions"`
}

// ParsedFilename is the UI-facing view of a filename: visible elements plus
// the captured separators and extension needed to rebuild the string.
type ParsedFilename struct {
	Original string    `json:"original"`
	Elements []Element `json:"elements"`
	// Extension is the captured tail: any trailing separators plus the
	// extension with its leading dot (e.g. ".jpg"), empty when absent
	Extension string `json:"extension"`

	prefix     string   // separators before the first visible element
	separators []string // separator runs between consecutive visible elements
	template   string   // fasttemplate form, e.g. "{{e0}}_{{e1}}.jpg"
}

// NewParsedFilename builds the reconstruction view from a parsed name.
// Suggestions are left empty; ParseCurrent fills them from a model.
func NewParsedFilename(p ParsedName) ParsedFilename {
	pf := ParsedFilename{Original: p.Original}
	pending := ""
	for i := 0; i < len(p.Components); i++ {
		c := p.Components[i]
		if c.Type == TypeSep {
			pending += c.Value
			continue
		}
		if c.Type == TypeExt {
			pf.Extension = pending + c.Value
			pending = ""
			continue
		}
		if len(pf.Elements) == 0 {
			pf.prefix = pending
		} else {
			pf.separators = append(pf.separators, pending)
		}
		pending = ""
		pf.Elements = append(pf.Elements, Element{
			Current:      c.Value,
			Kind:         kindForRole(c.Role),
			ElementIndex: len(pf.Elements),
		})
	}
	// separators after the last element but before no extension; a name with
	// no visible elements at all is pure prefix, not an extension
	if pending != "" {
		if len(pf.Elements) == 0 {
			pf.prefix += pending
		} else {
			pf.Extension = pending + pf.Extension
		}
	}
	pf.template = buildTemplate(&pf)
	return pf
}

func buildTemplate(pf *ParsedFilename) string {
	var b strings.Builder
	b.WriteString(pf.prefix)
	for i := range pf.Elements {
		b.WriteString(ParenthesisOpen + elementVar(i) + ParenthesisClose)
		if i < len(pf.separators) {
			b.WriteString(pf.separators[i])
		}
	}
	b.WriteString(pf.Extension)
	return b.String()
}

// Template returns the fasttemplate form of the filename with one
// placeholder per visible element (e.g. "{{e0}}_{{e1}}.jpg").
func (pf *ParsedFilename) Template() string {
	return pf.template
}

// ReconstructWith rebuilds the filename from new element values, preserving
// the original separators and extension. The value count must equal the
// visible element count.
func (pf *ParsedFilename) ReconstructWith(values []string) (string, error) {
	if len(values) != len(pf.Elements) {
		return "", &ArgumentCountError{Want: len(pf.Elements), Got: len(values)}
	}
	vars := make(map[string]interface{}, len(values))
	for i, v := range values {
		vars[elementVar(i)] = v
	}
	return Replace(pf.template, vars), nil
}

// Reconstruct rebuilds the filename from the current element values; the
// result always equals the original string.
func (pf *ParsedFilename) Reconstruct() string {
	values := make([]string, len(pf.Elements))
	for i, el := range pf.Elements {
		values[i] = el.Current
	}
	out, _ := pf.ReconstructWith(values)
	return out
}

// ParseCurrent parses a filename and fills every element with its ordered
// picker suggestions from the best-matching group, in a single call.
func (m *Model) ParseCurrent(name string) ParsedFilename {
	query := ParseWithOptions(name, m.config.TokenizerOptions())
	pf := NewParsedFilename(query)
	group, score := m.BestMatch(query)

	elementIndex := 0
	for _, c := range query.Components {
		if c.Type == TypeSep || c.Type == TypeExt {
			continue
		}
		el := &pf.Elements[elementIndex]
		if group != nil && score >= 0 && c.Position < len(group.PositionStats) {
			s := &group.PositionStats[c.Position]
			el.Kind = kindForRole(s.Role)
			el.Suggestions = s.PlainSuggestions(c.Value, false)
		} else {
			el.Suggestions = []string{c.Value}
		}
		elementIndex++
	}
	return pf
}
