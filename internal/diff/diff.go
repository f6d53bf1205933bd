package diff

import (
	"fmt"
	"strings"
)

// Stats contains line-level statistics for a unified diff
type Stats struct {
	Additions int
	Deletions int
}

// ParseStats counts the added and deleted lines in a unified diff as returned
// by the GitHub diff media type. File header lines ("+++", "---") are not
// counted as changes.
func ParseStats(unified string) Stats {
	var stats Stats

	for _, line := range strings.Split(unified, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			continue
		case strings.HasPrefix(line, "+"):
			stats.Additions++
		case strings.HasPrefix(line, "-"):
			stats.Deletions++
		}
	}

	return stats
}

// String formats the stats the way git's --shortstat does, e.g. "+12 -3"
func (s Stats) String() string {
	return fmt.Sprintf("+%d -%d", s.Additions, s.Deletions)
}
