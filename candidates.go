package classifile

// Candidates generates whole-filename suggestions for a query by taking the
// cross product of every element's ordered picker suggestions and rendering
// each combination through the filename's template. The query itself is
// excluded and duplicates are purged. limit caps the output (0 = no limit).
func (m *Model) Candidates(name string, limit int) []string {
	query := ParseWithOptions(name, m.config.TokenizerOptions())
	group, score := m.BestMatch(query)
	if group == nil || score < 0 {
		return nil
	}
	pf := m.ParseCurrent(name)
	if len(pf.Elements) == 0 {
		return nil
	}

	keys := make([]string, 0, len(pf.Elements))
	values := make(map[string][]string, len(pf.Elements))
	for i, el := range pf.Elements {
		keys = append(keys, elementVar(i))
		values[elementVar(i)] = el.Suggestions
	}
	payloads := NewIndexMap(keys, values)

	seen := map[string]struct{}{name: {}}
	var results []string
	done := false
	callbackFunc := func(varMap map[string]interface{}) {
		if done {
			return
		}
		candidate := Replace(pf.template, varMap)
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}
		results = append(results, candidate)
		if limit > 0 && len(results) >= limit {
			done = true
		}
	}
	ClusterBomb(payloads, callbackFunc, []string{})
	return results
}

// ClusterBomb walks the full cross product of payload values with variable
// length vectors, invoking the callback once per combination.
//
// The vector grows by one payload per recursion level; once it covers all
// but the last payload, the final level iterates the remaining values and
// emits a complete variable map per entry.
func ClusterBomb(payloads *IndexMap, callback func(varMap map[string]interface{}), vector []string) {
	if payloads.Cap() == 0 {
		return
	}

	if len(vector) == payloads.Cap()-1 {
		// end of vector: only the last payload value is missing
		vectorMap := map[string]interface{}{}
		for k, v := range vector {
			vectorMap[payloads.KeyAtNth(k)] = v
		}
		index := len(vector)
		for _, elem := range payloads.GetNth(index) {
			vectorMap[payloads.KeyAtNth(index)] = elem
			callback(vectorMap)
		}
		return
	}

	index := len(vector)
	for _, v := range payloads.GetNth(index) {
		var tmp []string
		if len(vector) > 0 {
			tmp = append(tmp, vector...)
		}
		tmp = append(tmp, v)
		ClusterBomb(payloads, callback, tmp)
	}
}

// IndexMap lets the elements of a string-slice map be retrieved by a fixed
// index. The key order is supplied by the caller so iteration stays
// deterministic.
type IndexMap struct {
	values  map[string][]string
	indexes map[int]string
}

func (o *IndexMap) GetNth(n int) []string {
	return o.values[o.indexes[n]]
}

func (o *IndexMap) Cap() int {
	return len(o.values)
}

// KeyAtNth returns key present at Nth position
func (o *IndexMap) KeyAtNth(n int) string {
	return o.indexes[n]
}

// NewIndexMap returns type such that elements of map can be retrieved by a fixed index
func NewIndexMap(keys []string, values map[string][]string) *IndexMap {
	indexes := map[int]string{}
	for i, k := range keys {
		indexes[i] = k
	}
	return &IndexMap{values: values, indexes: indexes}
}
