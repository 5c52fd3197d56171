package fontface

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar"
)

// ExpandSources resolves glob patterns (with "**" support) to regular files, in
// pattern order, each pattern's matches sorted. Duplicates keep their first
// position.
func ExpandSources(patterns []string) ([]string, error) {
	var (
		files []string
		seen  = make(map[string]struct{})
	)
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			if info, err := os.Stat(m); err != nil || !info.Mode().IsRegular() {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	return files, nil
}
