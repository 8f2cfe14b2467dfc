package service

import (
	"sort"
)

// rank orders scored configurations ascending by score vector, breaks ties by
// the canonical count ordering (descending denomination, descending count) and
// truncates to maxVariants. The resulting order is total: repeated runs over
// identical input produce byte-identical output.
func rank(scored []ScoredConfiguration, maxVariants int) []ScoredConfiguration {
	deduped := scored[:0]
	seen := make(map[string]struct{}, len(scored))
	for _, sc := range scored {
		key := sc.Config.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, sc)
	}

	sort.Slice(deduped, func(i, j int) bool {
		if deduped[i].Score != deduped[j].Score {
			return deduped[i].Score.Less(deduped[j].Score)
		}
		return deduped[i].Config.Compare(deduped[j].Config) < 0
	})

	if maxVariants > 0 && len(deduped) > maxVariants {
		deduped = deduped[:maxVariants]
	}
	return deduped
}
