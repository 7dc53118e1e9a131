package classifile

// ElementKind distinguishes picker elements backed by a predictable pattern
// (sequential index, date) from free values ordered by frequency.
type ElementKind string

const (
	KindPattern ElementKind = "pattern"
	KindValue   ElementKind = "value"
)

func kindForRole(role RoleTag) ElementKind {
	if role == RoleIndex || role == RoleDate {
		return KindPattern
	}
	return KindValue
}

// PositionPrediction carries the scored suggestions of one component
// position.
type PositionPrediction struct {
	Position    int          `json:"position"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Prediction is the answer to a by-name query: the matched signature plus a
// scored suggestion list per position. An unmatched query carries its own
// signature and no positions.
type Prediction struct {
	Signature Signature            `json:"signature"`
	Positions []PositionPrediction `json:"positions"`
}

// PredictByName parses the query filename, picks the best-fitting group and
// returns scored suggestions for every position of that group. A negative
// best score yields an empty prediction paired with the query's own
// signature.
func (m *Model) PredictByName(name string) Prediction {
	query := ParseWithOptions(name, m.config.TokenizerOptions())
	group, score := m.BestMatch(query)
	if group == nil || score < 0 {
		return Prediction{Signature: query.Signature, Positions: []PositionPrediction{}}
	}
	positions := make([]PositionPrediction, 0, len(group.PositionStats))
	for i := range group.PositionStats {
		s := &group.PositionStats[i]
		positions = append(positions, PositionPrediction{
			Position:    s.Position,
			Suggestions: s.ScoredSuggestions(m.config.MaxScoredSuggestions),
		})
	}
	return Prediction{Signature: group.Signature, Positions: positions}
}

// ElementSuggestions carries the ordered candidates of one visible element
// (separators and extension excluded).
type ElementSuggestions struct {
	ElementIndex int         `json:"element-index"`
	Kind         ElementKind `json:"kind"`
	Suggestions  []string    `json:"suggestions"`
}

// OrdinalPrediction is the answer to a by-ordinal query: plain-ordered
// suggestions for every visible element of the reference file.
type OrdinalPrediction struct {
	Signature Signature            `json:"signature"`
	Elements  []ElementSuggestions `json:"elements"`
}

// PredictByOrdinal addresses a file by ordinal into the first group's file
// list and produces plain-ordered suggestions per visible element. An
// ordinal beyond the list uses the last known file as reference with
// next-first ordering; an existing ordinal forces each current value to the
// front.
func (m *Model) PredictByOrdinal(ordinal int) OrdinalPrediction {
	if len(m.ordered) == 0 {
		return OrdinalPrediction{}
	}
	group := m.ordered[0]
	if ordinal < 0 {
		ordinal = 0
	}
	pastEnd := ordinal >= len(group.Files)
	ref := group.Files[len(group.Files)-1]
	if !pastEnd {
		ref = group.Files[ordinal]
	}

	elements := make([]ElementSuggestions, 0, len(ref.Components))
	elementIndex := 0
	for _, c := range ref.Components {
		if c.Type == TypeSep || c.Type == TypeExt {
			continue
		}
		var suggestions []string
		kind := KindValue
		if c.Position < len(group.PositionStats) {
			s := &group.PositionStats[c.Position]
			suggestions = s.PlainSuggestions(c.Value, pastEnd)
			kind = kindForRole(s.Role)
		} else {
			suggestions = []string{c.Value}
		}
		elements = append(elements, ElementSuggestions{
			ElementIndex: elementIndex,
			Kind:         kind,
			Suggestions:  suggestions,
		})
		elementIndex++
	}
	return OrdinalPrediction{Signature: group.Signature, Elements: elements}
}

// GetElementSuggestions restricts output to a single element's plain-ordered
// candidate list, elementIndex counting only non-separator, non-extension
// components of the query filename.
func (m *Model) GetElementSuggestions(name string, elementIndex int) []string {
	query := ParseWithOptions(name, m.config.TokenizerOptions())
	component, ok := visibleComponent(query, elementIndex)
	if !ok {
		return nil
	}
	group, score := m.BestMatch(query)
	if group == nil || score < 0 || component.Position >= len(group.PositionStats) {
		return []string{component.Value}
	}
	return group.PositionStats[component.Position].PlainSuggestions(component.Value, false)
}

// visibleComponent resolves an element index to the underlying component.
func visibleComponent(p ParsedName, elementIndex int) (Component, bool) {
	if elementIndex < 0 {
		return Component{}, false
	}
	i := 0
	for _, c := range p.Components {
		if c.Type == TypeSep || c.Type == TypeExt {
			continue
		}
		if i == elementIndex {
			return c, true
		}
		i++
	}
	return Component{}, false
}

// PatternInfo describes one pattern group for pattern pickers.
type PatternInfo struct {
	Signature    string   `json:"signature"`
	FileCount    int      `json:"file-count"`
	ExampleFiles []string `json:"example-files"`
}

// Patterns lists every pattern group in the model with up to three example
// files each, sorted by canonical signature.
func (m *Model) Patterns() []PatternInfo {
	infos := make([]PatternInfo, 0, len(m.ordered))
	for _, group := range m.ordered {
		examples := make([]string, 0, 3)
		for _, f := range group.Files {
			if len(examples) == 3 {
				break
			}
			examples = append(examples, f.Original)
		}
		infos = append(infos, PatternInfo{
			Signature:    group.Signature.Canonical,
			FileCount:    len(group.Files),
			ExampleFiles: examples,
		})
	}
	return infos
}

// PositionInfo describes one position of the pattern a filename matches,
// for building a UI widget per position.
type PositionInfo struct {
	Position      int      `json:"position"`
	Type          string   `json:"type"`
	Role          string   `json:"role"`
	Format        string   `json:"format,omitempty"`
	ValueCount    int      `json:"value-count"`
	ExampleValues []string `json:"example-values"`
}

// PatternPositions returns metadata about every position of the group the
// query filename best matches. Nil when no group matches confidently.
func (m *Model) PatternPositions(name string) []PositionInfo {
	query := ParseWithOptions(name, m.config.TokenizerOptions())
	group, score := m.BestMatch(query)
	if group == nil || score < 0 {
		return nil
	}
	infos := make([]PositionInfo, 0, len(group.PositionStats))
	for i := range group.PositionStats {
		s := &group.PositionStats[i]
		examples := s.rankedValues()
		if len(examples) > 5 {
			examples = examples[:5]
		}
		infos = append(infos, PositionInfo{
			Position:      s.Position,
			Type:          s.Type.String(),
			Role:          s.Role.String(),
			Format:        s.Format,
			ValueCount:    len(s.DistinctValues),
			ExampleValues: examples,
		})
	}
	return infos
}

// ValueFrequency pairs an observed value with its occurrence count.
type ValueFrequency struct {
	Value     string `json:"value"`
	Frequency int    `json:"frequency"`
}

// PositionValues returns every distinct value observed at a position of the
// best-matching group, by descending frequency then ascending value. Useful
// for populating a combo box with the full history.
func (m *Model) PositionValues(name string, position int) []ValueFrequency {
	query := ParseWithOptions(name, m.config.TokenizerOptions())
	group, score := m.BestMatch(query)
	if group == nil || score < 0 || position < 0 || position >= len(group.PositionStats) {
		return nil
	}
	s := &group.PositionStats[position]
	values := make([]ValueFrequency, 0, len(s.DistinctValues))
	for _, v := range s.rankedValues() {
		values = append(values, ValueFrequency{Value: v, Frequency: s.DistinctValues[v]})
	}
	return values
}
