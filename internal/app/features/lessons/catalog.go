// internal/app/features/lessons/catalog.go
package lessons

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
)

// BuildCatalog scans dir for files named <prefix><N><ext> and returns the
// day numbers found, ascending and duplicate-free. Entries that do not
// match the pattern are ignored. A missing directory is the valid
// "nothing published yet" state and yields an empty catalog, not an error.
//
// The catalog is rebuilt from the filesystem on every request, so newly
// dropped lesson files show up without a restart.
func BuildCatalog(dir, prefix, ext string) ([]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read lessons dir %s: %w", dir, err)
	}

	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `(\d+)` + regexp.QuoteMeta(ext) + `$`)

	var days []int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := pattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			// \d+ longer than an int; not a lesson file we can address.
			continue
		}
		days = append(days, n)
	}

	sort.Ints(days)

	// Distinct filenames cannot yield the same number unless zero-padded
	// variants coexist (day1 and day01); collapse those.
	out := days[:0]
	for i, d := range days {
		if i == 0 || d != days[i-1] {
			out = append(out, d)
		}
	}
	return out, nil
}
