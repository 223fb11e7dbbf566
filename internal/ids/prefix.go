package ids

import "strings"

// NormalizeUnique lowercases ids, dropping empties and duplicates while
// preserving order.
func NormalizeUnique(ids []string) []string {
	result := make([]string, 0, len(ids))
	seen := make(map[string]bool)
	for _, id := range ids {
		idLower := strings.ToLower(id)
		if idLower == "" || seen[idLower] {
			continue
		}
		seen[idLower] = true
		result = append(result, idLower)
	}
	return result
}

// MatchPrefix finds the id matching a prefix, case-insensitively. The ids
// slice must already be normalized (see NormalizeUnique). An exact match
// wins over a shared prefix.
func MatchPrefix(ids []string, prefix string) (match string, found, ambiguous bool) {
	prefix = strings.ToLower(prefix)

	var matches []string
	for _, id := range ids {
		if id == prefix {
			return id, true, false
		}
		if strings.HasPrefix(id, prefix) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", false, false
	case 1:
		return matches[0], true, false
	default:
		return "", true, true
	}
}

// UniquePrefixLengths returns the shortest unique prefix length for each ID.
// Input ids are normalized first, so lookups are case-insensitive.
func UniquePrefixLengths(ids []string) map[string]int {
	ids = NormalizeUnique(ids)
	lengths := make(map[string]int, len(ids))
	for _, id := range ids {
		lengths[id] = uniquePrefixLength(id, ids)
	}
	return lengths
}

func uniquePrefixLength(id string, ids []string) int {
	for length := 1; length <= len(id); length++ {
		prefix := id[:length]
		unique := true
		for _, other := range ids {
			if other == id {
				continue
			}
			if strings.HasPrefix(other, prefix) {
				unique = false
				break
			}
		}
		if unique {
			return length
		}
	}

	return len(id)
}
