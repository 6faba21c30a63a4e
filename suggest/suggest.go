package suggest

import "github.com/agext/levenshtein"

// Name suggests a declared name that closely matches want.
//
// The maximum allowed difference scales with the length of the input; the
// heuristic may change and should not be relied on. If no candidate is close
// enough, an empty string is returned.
func Name(want string, candidates []string) string {
	// Maximum characters that can differ.
	maxDist := len(want) / 4
	if maxDist == 0 {
		maxDist = 1
	}

	best := ""
	bestDist := maxDist + 1

	for _, cand := range candidates {
		if cand == want {
			return want
		}
		if d := levenshtein.Distance(want, cand, nil); d < bestDist {
			best = cand
			bestDist = d
		}
	}

	return best
}
