package lexicon_test

import (
	"testing"

	"blackbeard/internal/lexicon"
)

func TestFoldLowercases(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Sold Out", "sold out"},
		{"TICKETS", "tickets"},
		{"already lower", "already lower"},
	}
	for _, tc := range cases {
		if got := lexicon.Fold(tc.in); got != tc.want {
			t.Errorf("Fold(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestContainsAny(t *testing.T) {
	terms := []string{"sold out", "waitlist"}
	if !lexicon.ContainsAny("show sold out in minutes", terms) {
		t.Error("expected match on sold out")
	}
	if lexicon.ContainsAny("plenty of seats left", terms) {
		t.Error("expected no match")
	}
	if lexicon.ContainsAny("anything", nil) {
		t.Error("empty term list should never match")
	}
}

func TestCountDistinct(t *testing.T) {
	terms := []string{"ticket", "tour", "venue"}
	got := lexicon.CountDistinct("tour tickets at the venue, tickets going fast", terms)
	if got != 3 {
		t.Fatalf("CountDistinct = %d, want 3", got)
	}
}

func TestCountOccurrencesSumsRepeats(t *testing.T) {
	terms := []string{"sold out"}
	got := lexicon.CountOccurrences("sold out, completely sold out", terms)
	if got != 2 {
		t.Fatalf("CountOccurrences = %d, want 2", got)
	}
}

func TestFirstMatchReturnsFirstTermInListOrder(t *testing.T) {
	terms := []string{"waitlist", "sold out"}
	term, ok := lexicon.FirstMatch("sold out with a waitlist", terms)
	if !ok || term != "waitlist" {
		t.Fatalf("FirstMatch = %q, %v; want waitlist", term, ok)
	}
	if _, ok := lexicon.FirstMatch("nothing here", terms); ok {
		t.Fatal("expected no match")
	}
}

func TestDefaultVocabulariesAreFolded(t *testing.T) {
	lex := lexicon.Default()
	for _, group := range [][]string{lex.Scarcity, lex.StrongScarcity, lex.Hard, lex.Soft, lex.NoiseMarkers, lex.OffRegionMarkers} {
		for _, term := range group {
			if term != lexicon.Fold(term) {
				t.Errorf("term %q is not case folded", term)
			}
		}
	}
	if len(lex.SearchQueries) == 0 {
		t.Fatal("expected default search queries")
	}
	if len(lex.SweepCommunities) == 0 {
		t.Fatal("expected default sweep communities")
	}
}
