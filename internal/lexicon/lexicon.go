// Package lexicon holds the keyword vocabularies that drive relevance
// classification, scoring, and entity extraction. The Lexicon value is
// built once and passed into the pipeline; callers must treat it as
// read-only.
package lexicon

import (
	"strings"

	"golang.org/x/text/cases"
)

// Lexicon bundles every vocabulary the pipeline consults. All terms are
// stored case folded; match text with Fold before comparing.
type Lexicon struct {
	// Scarcity terms feed the scarcity score component and the subreddit
	// sweep pre-filter.
	Scarcity []string
	// StrongScarcity is the subset of scarcity phrasing that overrides a
	// noise rejection in the classifier.
	StrongScarcity []string
	// Hard terms are explicit ticket/scarcity language. At least one is
	// mandatory for a mention to be event related.
	Hard []string
	// Soft terms are broader event-context language. At least two are
	// required to corroborate a hard term.
	Soft []string

	// NicheSports are the obscure-sport keywords that win the obscurity
	// bonus even when a large venue is mentioned.
	NicheSports []string
	// LargeVenues zero the obscurity bonus.
	LargeVenues []string

	// OffRegionMarkers reject mentions about non-target geographies.
	OffRegionMarkers []string
	// NoiseMarkers reject consumer/shopping content unless a strong
	// scarcity phrase is present.
	NoiseMarkers []string
	// BlockedCommunities are known off-topic communities.
	BlockedCommunities []string

	// GenericCommunities never name an event (marketplaces, city subs).
	GenericCommunities []string
	// ArtistCommunities map directly to an artist event.
	ArtistCommunities []string
	// TeamCommunities map directly to a team event.
	TeamCommunities []string

	// KnownVenues are literal venue names recognized without a
	// preposition pattern.
	KnownVenues []string

	// Category keyword groups, checked in order; first hit wins.
	Categories []Category

	// Event type keyword groups, checked comedian > artist > team > show.
	TypeComedian []string
	TypeArtist   []string
	TypeTeam     []string
	TypeShow     []string

	// NameDenylist holds previously observed extraction false positives.
	NameDenylist []string
	// BannedOpeners are sentence-opening words that disqualify a name
	// candidate.
	BannedOpeners []string
	// FunctionWords inside a candidate mark it as a sentence fragment.
	FunctionWords []string

	// SearchQueries drive the Reddit search phase of a scan.
	SearchQueries []string
	// SweepCommunities are polled for newest posts each scan.
	SweepCommunities []string
	// FanCommunities seed the Brave fan-chatter queries.
	FanCommunities []string
	// TargetCities scope web queries to the monitored region.
	TargetCities []string
}

// Category pairs a category name with its trigger keywords.
type Category struct {
	Name     string
	Keywords []string
}

var folder = cases.Fold()

// Fold lowercases text for vocabulary matching.
func Fold(text string) string {
	return folder.String(text)
}

// ContainsAny reports whether folded text contains any of the terms.
func ContainsAny(folded string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(folded, term) {
			return true
		}
	}
	return false
}

// CountDistinct returns how many of the terms occur in folded text at
// least once.
func CountDistinct(folded string, terms []string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(folded, term) {
			count++
		}
	}
	return count
}

// CountOccurrences sums non-overlapping occurrences of every term in
// folded text.
func CountOccurrences(folded string, terms []string) int {
	total := 0
	for _, term := range terms {
		total += strings.Count(folded, term)
	}
	return total
}

// FirstMatch returns the first term contained in folded text.
func FirstMatch(folded string, terms []string) (string, bool) {
	for _, term := range terms {
		if strings.Contains(folded, term) {
			return term, true
		}
	}
	return "", false
}
