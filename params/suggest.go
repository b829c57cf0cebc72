package params

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the defined path closest to a mistyped one. Prefix
// matches win; otherwise the smallest edit distance within a length-scaled
// limit is chosen, ties going to the earlier definition.
func (s *Store) Suggest(path string) (string, bool) {
	path = strings.ToLower(strings.TrimSpace(path))
	if path == "" {
		return "", false
	}
	if _, ok := s.entries[path]; ok {
		return path, true
	}

	best, bestDist := "", -1
	for _, cand := range s.order {
		if strings.HasPrefix(cand, path) && len(path) >= 2 {
			return cand, true
		}
		dist := levenshtein.ComputeDistance(path, cand)
		if dist > suggestLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best, bestDist >= 0
}

func suggestLimit(length int) int {
	switch {
	case length <= 6:
		return 1
	case length <= 12:
		return 2
	default:
		return 3
	}
}
