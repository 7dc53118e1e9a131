package classifile

import (
	"strings"
	"unicode"
)

// TokenizerOptions configures how raw filenames are split into components.
// The separator set and extension length bounds are injectable rather than
// package globals so hosts can localize them and tests can tighten them.
type TokenizerOptions struct {
	// Separators is the set of characters treated as one-character
	// separator components
	Separators string
	// ExtMinLen/ExtMaxLen bound the accepted extension length (alnum chars
	// after the final dot)
	ExtMinLen int
	ExtMaxLen int
}

// DefaultTokenizerOptions returns the tokenizer settings used by Parse.
func DefaultTokenizerOptions() *TokenizerOptions {
	return &TokenizerOptions{
		Separators: defaultSeparators,
		ExtMinLen:  defaultExtMinLen,
		ExtMaxLen:  defaultExtMaxLen,
	}
}

// Parse tokenizes and classifies a filename using the default options.
// Parsing never fails: degenerate inputs (empty string, separators only)
// produce zero or near-zero components.
func Parse(name string) ParsedName {
	return ParseWithOptions(name, DefaultTokenizerOptions())
}

// ParseWithOptions tokenizes and classifies a filename into an ordered
// component list plus its structural signature.
//
// ALGORITHM:
//  1. Detect an extension: the substring after the last dot, if that dot is
//     neither the first nor last character and the candidate is 1-5 (per
//     options) alphanumeric characters.
//  2. Split the base left to right, emitting each separator character as its
//     own one-character token and flushing accumulated runs between them.
//  3. Refine every non-separator run: split on camelCase boundaries, then
//     into maximal digit/non-digit runs ("File001A" -> "File", "001", "A").
//  4. Append the extension's own dot separator and the extension token, then
//     assign sequential positions in emission order.
func ParseWithOptions(name string, opts *TokenizerOptions) ParsedName {
	if opts == nil {
		opts = DefaultTokenizerOptions()
	}
	base, ext := splitExtension(name, opts)

	raw := make([]string, 0, 8)
	seps := make(map[int]struct{}) // indexes in raw that are separators
	var run []rune
	flush := func() {
		if len(run) > 0 {
			for _, sub := range refineToken(string(run)) {
				raw = append(raw, sub)
			}
			run = run[:0]
		}
	}
	for _, r := range base {
		if strings.ContainsRune(opts.Separators, r) {
			flush()
			seps[len(raw)] = struct{}{}
			raw = append(raw, string(r))
			continue
		}
		run = append(run, r)
	}
	flush()

	components := make([]Component, 0, len(raw)+2)
	for i, tok := range raw {
		if _, ok := seps[i]; ok {
			components = append(components, Component{
				Value:    tok,
				Type:     TypeSep,
				Role:     RoleConstant,
				Position: len(components),
			})
			continue
		}
		components = append(components, Component{
			Value:    tok,
			Type:     classifyToken(tok),
			Role:     RoleUnknown,
			Position: len(components),
		})
	}
	if ext != "" {
		components = append(components, Component{
			Value:    ".",
			Type:     TypeSep,
			Role:     RoleConstant,
			Position: len(components),
		})
		components = append(components, Component{
			Value:    ext,
			Type:     TypeExt,
			Role:     RoleConstant,
			Position: len(components),
		})
	}

	return ParsedName{
		Original:   name,
		Components: components,
		Signature:  newSignature(components),
	}
}

// splitExtension separates the extension from the base name.
// The dot must be neither first nor last, and the candidate must be
// alphanumeric within the configured length bounds; otherwise the whole
// name is the base ("archive.tar.gz" keeps only "gz" as extension,
// ".hidden" and "name." have none).
func splitExtension(name string, opts *TokenizerOptions) (base, ext string) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 || idx == len(name)-1 {
		return name, ""
	}
	candidate := name[idx+1:]
	if !isExtension(candidate, opts) {
		return name, ""
	}
	return name[:idx], candidate
}

func isExtension(s string, opts *TokenizerOptions) bool {
	if len(s) < opts.ExtMinLen || len(s) > opts.ExtMaxLen {
		return false
	}
	for _, r := range s {
		if !isASCIIAlnum(r) {
			return false
		}
	}
	return true
}

// refineToken splits a separator-free run on camelCase boundaries, then each
// piece into maximal runs alternating between digit and non-digit characters.
func refineToken(token string) []string {
	result := make([]string, 0, 2)
	for _, piece := range splitCamelCase(token) {
		result = append(result, splitDigitRuns(piece)...)
	}
	return result
}

// splitCamelCase splits at every lowercase letter immediately followed by an
// uppercase letter. Scripts without case never split here.
func splitCamelCase(token string) []string {
	runes := []rune(token)
	parts := make([]string, 0, 2)
	start := 0
	for i := 1; i < len(runes); i++ {
		if unicode.IsLower(runes[i-1]) && unicode.IsUpper(runes[i]) {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	parts = append(parts, string(runes[start:]))
	return parts
}

// splitDigitRuns splits a token into maximal digit / non-digit runs.
//
// EXAMPLE:
//
//	"File001A" -> ["File", "001", "A"]  (after camel split "File001A" stays whole)
//	"001" -> ["001"]
func splitDigitRuns(token string) []string {
	if token == "" {
		return nil
	}
	runes := []rune(token)
	parts := make([]string, 0, 2)
	start := 0
	for i := 1; i < len(runes); i++ {
		if isASCIIDigit(runes[i]) != isASCIIDigit(runes[i-1]) {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	parts = append(parts, string(runes[start:]))
	return parts
}

// classifyToken assigns the primitive type of a non-separator,
// non-extension token. Digits are ASCII only (numeric values must parse as
// integers); letters follow the Unicode Letter category.
func classifyToken(token string) TypeTag {
	if isAllDigits(token) {
		if len(token) == 8 {
			return TypeDate
		}
		return TypeNumeric
	}
	if isAllLetters(token) {
		return TypeAlpha
	}
	return TypeAlphanum
}
