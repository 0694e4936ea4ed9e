package classify

import "strings"

// CategoryUncategorized is assigned when no keyword bag matches. It is a
// valid category, not an error state.
const CategoryUncategorized = "uncategorized"

// categoryBag owns the keyword tokens for one category. Matching is
// case-insensitive substring matching against title + " " + summary.
type categoryBag struct {
	name   string
	tokens []string
}

// categories is declaration-ordered: when two bags score the same hit count,
// the earlier one wins.
var categories = []categoryBag{
	{
		name: "technology",
		tokens: []string{
			"ai", "artificial intelligence", "chip", "semiconductor", "startup",
			"app", "software", "cyber", "robot", "quantum", "smartphone",
			"gadget", "tech", "data centre", "data center", "cloud",
		},
	},
	{
		name: "business",
		tokens: []string{
			"market", "stock", "earnings", "ipo", "merger", "acquisition",
			"inflation", "economy", "gdp", "trade", "tariff", "bank",
			"investment", "crypto", "bitcoin", "layoff",
		},
	},
	{
		name: "entertainment",
		tokens: []string{
			"movie", "film", "box office", "album", "concert", "celebrity",
			"k-pop", "kpop", "netflix", "trailer", "premiere", "drama",
			"tiktok", "influencer", "mv", "아이돌",
		},
	},
	{
		name: "sports",
		tokens: []string{
			"match", "league", "cup", "olympic", "tournament", "goal",
			"championship", "grand prix", "f1", "nba", "fifa", "medal",
			"world record", "e스포츠", "esports",
		},
	},
	{
		name: "science",
		tokens: []string{
			"research", "study finds", "nasa", "space", "climate", "vaccine",
			"telescope", "species", "physics", "genome", "asteroid",
		},
	},
	{
		name: "politics",
		tokens: []string{
			"election", "parliament", "senate", "minister", "president",
			"policy", "sanction", "summit", "bill", "referendum", "campaign",
		},
	},
}

// Names returns the declared category names in declaration order.
func Names() []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = c.name
	}
	return out
}

// Classify assigns the category whose token bag yields the most substring
// hits against the given text. Ties go to the first-declared category; zero
// hits yields CategoryUncategorized. This is a deterministic heuristic, not
// a model; false positives are expected and acceptable.
func Classify(text string) string {
	lowered := strings.ToLower(text)

	best := CategoryUncategorized
	bestHits := 0
	for _, bag := range categories {
		hits := 0
		for _, token := range bag.tokens {
			if strings.Contains(lowered, token) {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			best = bag.name
		}
	}
	return best
}
