package classifile

import (
	"runtime"
	"sort"
	"sync"

	radix "github.com/armon/go-radix"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/utils/errkit"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

var (
	ErrNoNames = errkit.New("no filenames provided to build model")
)

// Options configures model construction.
type Options struct {
	// Names is the filename collection to analyze
	Names []string
	// Config overrides engine settings, DefaultConfig when nil
	Config *Config
	// Workers bounds concurrent filename parsing (default: NumCPU)
	Workers int
}

func (o *Options) applyDefaults() {
	if o.Config == nil {
		cfg := DefaultConfig
		o.Config = &cfg
	}
	o.Config.applyDefaults()
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
}

// Model groups a filename collection by structural signature and holds the
// per-position statistics of every group. Read-only after construction;
// rebuilding means calling New/BuildModel again with a new collection.
type Model struct {
	config  *Config
	tree    *radix.Tree     // canonical signature -> *PatternGroup
	ordered []*PatternGroup // groups sorted by canonical signature
}

// BuildModel analyzes a filename collection with default options.
func BuildModel(names []string) (*Model, error) {
	return New(&Options{Names: names})
}

// New builds a model from options: parse every name, group by canonical
// signature, aggregate per-position statistics and infer roles/formats.
func New(opts *Options) (*Model, error) {
	if len(opts.Names) == 0 {
		return nil, ErrNoNames
	}
	opts.applyDefaults()

	// purge duplicates if any
	names := sliceutil.Dedupe(opts.Names)
	if len(names) != len(opts.Names) {
		gologger.Warning().Msgf("%v duplicate filenames found in input. purging them..", len(opts.Names)-len(names))
	}

	parsed := parseAll(names, opts)

	// group by canonical signature preserving input order within groups
	byCanonical := make(map[string]*PatternGroup)
	for _, p := range parsed {
		group, ok := byCanonical[p.Signature.Canonical]
		if !ok {
			group = &PatternGroup{Signature: p.Signature}
			byCanonical[p.Signature.Canonical] = group
		}
		group.Files = append(group.Files, p)
	}

	m := &Model{
		config: opts.Config,
		tree:   radix.New(),
	}
	for canonical, group := range byCanonical {
		group.PositionStats = buildPositionStats(group, opts.Config)
		m.tree.Insert(canonical, group)
	}
	// radix walk visits keys in sorted order, which fixes group iteration
	// order across runs
	m.tree.Walk(func(_ string, v interface{}) bool {
		m.ordered = append(m.ordered, v.(*PatternGroup))
		return false
	})
	return m, nil
}

// parseAll parses filenames concurrently, results indexed by input position
// so grouping stays deterministic.
func parseAll(names []string, opts *Options) []ParsedName {
	tokOpts := opts.Config.TokenizerOptions()
	parsed := make([]ParsedName, len(names))
	var wg sync.WaitGroup
	sem := make(chan struct{}, opts.Workers)
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			sem <- struct{}{}
			parsed[i] = ParseWithOptions(name, tokOpts)
			<-sem
		}(i, name)
	}
	wg.Wait()
	return parsed
}

// buildPositionStats computes the aggregate for every position from 0 to the
// group's maximum component count. Files shorter than a position simply do
// not contribute there (ragged support).
func buildPositionStats(group *PatternGroup, cfg *Config) []PositionStats {
	maxLen := 0
	for _, f := range group.Files {
		maxLen = maxInt(maxLen, len(f.Components))
	}
	stats := make([]PositionStats, 0, maxLen)
	for p := 0; p < maxLen; p++ {
		s := PositionStats{
			Position:       p,
			DistinctValues: make(map[string]int),
		}
		typeCounts := make(map[TypeTag]int)
		for _, f := range group.Files {
			if p >= len(f.Components) {
				continue
			}
			c := f.Components[p]
			typeCounts[c.Type]++
			s.DistinctValues[c.Value]++
			s.Total++
		}
		s.Type = dominantType(typeCounts)
		if s.Type == TypeNumeric {
			for _, v := range sortedKeys(s.DistinctValues) {
				count := s.DistinctValues[v]
				if n, ok := parseBig(v); ok {
					for i := 0; i < count; i++ {
						s.NumericValues = append(s.NumericValues, n)
					}
				}
			}
		}
		s.Role = inferRole(&s, cfg.DensityThreshold)
		s.Format = inferFormat(&s)
		stats = append(stats, s)
	}
	return stats
}

// dominantType picks the most frequent type; ties resolve to the first tag
// in declaration order (alpha < numeric < date < alphanum < sep < ext).
func dominantType(counts map[TypeTag]int) TypeTag {
	tags := make([]TypeTag, 0, len(counts))
	for t := range counts {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	best, bestCount := TypeAlpha, -1
	for _, t := range tags {
		if counts[t] > bestCount {
			best, bestCount = t, counts[t]
		}
	}
	return best
}

// Groups returns all pattern groups sorted by canonical signature.
func (m *Model) Groups() []*PatternGroup {
	return m.ordered
}

// Group looks up the pattern group for a canonical signature.
func (m *Model) Group(canonical string) (*PatternGroup, bool) {
	v, ok := m.tree.Get(canonical)
	if !ok {
		return nil, false
	}
	return v.(*PatternGroup), true
}

// GroupsWithPrefix returns the groups whose canonical signature starts with
// the given prefix, in sorted order. Lets a UI narrow patterns by their
// leading tags (e.g. "WORD|SEP(_)").
func (m *Model) GroupsWithPrefix(prefix string) []*PatternGroup {
	var groups []*PatternGroup
	m.tree.WalkPrefix(prefix, func(_ string, v interface{}) bool {
		groups = append(groups, v.(*PatternGroup))
		return false
	})
	return groups
}
