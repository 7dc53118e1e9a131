package classifile

import (
	"math/big"
	"strings"
)

// TypeTag classifies a single filename component.
// The declaration order doubles as the deterministic priority used when
// breaking ties for the dominant type at a position (lower wins).
type TypeTag int

const (
	// TypeAlpha represents all-letter tokens (e.g., "IMG", "report")
	TypeAlpha TypeTag = iota
	// TypeNumeric represents all-digit tokens (e.g., "001", "42")
	TypeNumeric
	// TypeDate represents 8-digit tokens treated as compact dates (e.g., "20240301")
	TypeDate
	// TypeAlphanum represents mixed letter/digit tokens (e.g., "v2beta")
	TypeAlphanum
	// TypeSep represents single separator characters (e.g., "_", "-")
	TypeSep
	// TypeExt represents the detected extension token (e.g., "jpg")
	TypeExt
)

// String returns string representation of TypeTag
func (t TypeTag) String() string {
	switch t {
	case TypeAlpha:
		return "alpha"
	case TypeNumeric:
		return "numeric"
	case TypeDate:
		return "date"
	case TypeAlphanum:
		return "alphanum"
	case TypeSep:
		return "sep"
	case TypeExt:
		return "ext"
	default:
		return "unknown"
	}
}

// signatureTag maps a component to its signature element.
// Separator tags embed the literal character so grouping stays sensitive
// to exact separator usage.
func signatureTag(c Component) string {
	switch c.Type {
	case TypeAlpha:
		return "WORD"
	case TypeNumeric:
		return "NUM"
	case TypeDate:
		return "DATE"
	case TypeAlphanum:
		return "ALNUM"
	case TypeExt:
		return "EXT"
	case TypeSep:
		return "SEP(" + c.Value + ")"
	default:
		return "UNKNOWN"
	}
}

// RoleTag is the semantic classification of a position's values across a group.
type RoleTag int

const (
	// RoleUnknown is the fallback when no stronger rule applies
	RoleUnknown RoleTag = iota
	// RoleConstant marks positions with a single observed value (and all separators/extensions)
	RoleConstant
	// RoleIndex marks dense numeric sequences (e.g., 001, 002, 003)
	RoleIndex
	// RoleDate marks date-typed positions
	RoleDate
)

// String returns string representation of RoleTag
func (r RoleTag) String() string {
	switch r {
	case RoleConstant:
		return "constant"
	case RoleIndex:
		return "index"
	case RoleDate:
		return "date"
	default:
		return "unknown"
	}
}

// Component is a typed, role-annotated, positioned token of a filename.
// Position is a 0-based index into the full component sequence, separators
// and extension included. Components are immutable once produced.
type Component struct {
	Value    string
	Type     TypeTag
	Role     RoleTag
	Position int
}

// Signature summarizes a filename's structural shape. Two filenames have
// the same shape iff their Canonical strings are equal.
type Signature struct {
	Elements  []string
	Canonical string
}

func newSignature(components []Component) Signature {
	elements := make([]string, 0, len(components))
	for _, c := range components {
		elements = append(elements, signatureTag(c))
	}
	return Signature{
		Elements:  elements,
		Canonical: strings.Join(elements, "|"),
	}
}

// ParsedName is a filename parsed into positioned components plus its
// signature. Produced fresh on demand; never mutated.
type ParsedName struct {
	Original   string
	Components []Component
	Signature  Signature
}

// PositionStats aggregates the values observed at one component position
// across all files of a pattern group that have a component there.
type PositionStats struct {
	Position int
	// Type is the dominant type among contributing components,
	// ties broken by TypeTag declaration order
	Type TypeTag
	Role RoleTag
	// Format is a rendering hint: a zero-pad verb like "%03d" for uniform
	// width numerics, or a date layout name ("yyyyMMdd", "yyyy-MM-dd").
	// Empty when no format could be inferred.
	Format string
	// DistinctValues maps each observed raw value to its occurrence count
	DistinctValues map[string]int
	// NumericValues holds the parsed values when Type is numeric.
	// Arbitrary precision: embedded indices may exceed fixed-width ranges.
	NumericValues []*big.Int
	// Total is the number of contributing files at this position
	Total int
}

// PatternGroup is the set of filenames sharing one canonical signature,
// plus the per-position statistics derived from them.
type PatternGroup struct {
	Signature     Signature
	Files         []ParsedName
	PositionStats []PositionStats
}
