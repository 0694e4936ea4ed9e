package dedup

import (
	"strings"

	"newspulse/types"
)

// Key builds the duplicate-collapse key from a title and source: case-folded
// and whitespace-collapsed. URL is deliberately not part of the key because
// syndication partners republish the same story under different URLs.
func Key(title, source string) string {
	return normalize(title) + "|" + normalize(source)
}

// Collapse removes articles whose (title, source) key was already seen,
// keeping the first occurrence in input order. Input order is otherwise
// preserved, which later stages rely on for tie-breaking.
func Collapse(articles []*types.Article) []*types.Article {
	seen := make(map[string]struct{}, len(articles))
	out := make([]*types.Article, 0, len(articles))

	for _, a := range articles {
		if a == nil || a.Title == "" {
			continue
		}
		key := Key(a.Title, a.Source)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}
	return out
}

func normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	// collapse multiple whitespace
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
