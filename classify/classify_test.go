package classify

import "testing"

func TestClassifyPicksDominantCategory(t *testing.T) {
	got := Classify("New semiconductor startup ships quantum software")
	if got != "technology" {
		t.Fatalf("expected technology, got %s", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify("STOCK MARKET RALLIES ON EARNINGS"); got != "business" {
		t.Fatalf("expected business, got %s", got)
	}
}

func TestClassifyZeroHitsIsUncategorized(t *testing.T) {
	if got := Classify("zzzz qqqq"); got != CategoryUncategorized {
		t.Fatalf("expected %s, got %s", CategoryUncategorized, got)
	}
}

func TestClassifyEmptyText(t *testing.T) {
	if got := Classify(""); got != CategoryUncategorized {
		t.Fatalf("expected %s for empty text, got %s", CategoryUncategorized, got)
	}
}

func TestClassifyTieGoesToFirstDeclared(t *testing.T) {
	// One technology token and one sports token: technology is declared
	// first, so it wins the tie.
	got := Classify("robot wins the cup")
	if got != "technology" {
		t.Fatalf("expected first-declared category to win tie, got %s", got)
	}
}

func TestNamesOrderMatchesDeclaration(t *testing.T) {
	names := Names()
	if len(names) == 0 || names[0] != "technology" {
		t.Fatalf("expected technology first, got %v", names)
	}
}
