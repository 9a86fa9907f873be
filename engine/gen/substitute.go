// Package gen contains the procedural generators: pure functions that
// combine a deterministic stream, the template library, and a generation
// context into concrete entities. A generator that finds no applicable
// template returns (zero, false), never an error.
package gen

import (
	"regexp"
	"sort"
)

var tokenRe = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_]*)\}\}`)

// Substitute replaces every {{identifier}} token with its value from vars.
// Unresolved tokens are left verbatim, so partially-specified variable
// maps still produce readable output. This is contract, not a fallback.
func Substitute(s string, vars map[string]string) string {
	return tokenRe.ReplaceAllStringFunc(s, func(tok string) string {
		key := tok[2 : len(tok)-2]
		if v, ok := vars[key]; ok {
			return v
		}
		return tok
	})
}

// sortedKeys returns map keys in stable order. Generators iterate maps
// through this so draw sequences are reproducible.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
