// Package classify decides whether a raw mention is about a live
// ticketed event at all. It is the first and cheapest gate in the
// pipeline.
package classify

import (
	"blackbeard/internal/lexicon"
	"blackbeard/internal/mention"
)

// Classifier is a pure predicate over mentions. It holds no state
// beyond the vocabularies it was built with.
type Classifier struct {
	lex *lexicon.Lexicon
}

// New builds a classifier over the given vocabularies.
func New(lex *lexicon.Lexicon) *Classifier {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Classifier{lex: lex}
}

// IsEventRelated reports whether the mention plausibly concerns a
// scarce or sold-out live event.
//
// Rejection order: off-region markers, blocked communities, noise
// vocabulary (unless a strong scarcity phrase overrides it). What
// survives must contain at least one hard ticket term and at least two
// soft event terms.
func (c *Classifier) IsEventRelated(m mention.Mention) bool {
	folded := lexicon.Fold(m.Combined())

	if lexicon.ContainsAny(folded, c.lex.OffRegionMarkers) {
		return false
	}
	if m.Community != "" {
		community := lexicon.Fold(m.Community)
		for _, blocked := range c.lex.BlockedCommunities {
			if community == lexicon.Fold(blocked) {
				return false
			}
		}
	}
	if lexicon.ContainsAny(folded, c.lex.NoiseMarkers) &&
		!lexicon.ContainsAny(folded, c.lex.StrongScarcity) {
		return false
	}

	if !lexicon.ContainsAny(folded, c.lex.Hard) {
		return false
	}
	return lexicon.CountDistinct(folded, c.lex.Soft) >= 2
}

// Filter returns the mentions accepted by IsEventRelated, preserving
// order.
func (c *Classifier) Filter(mentions []mention.Mention) []mention.Mention {
	out := make([]mention.Mention, 0, len(mentions))
	for _, m := range mentions {
		if c.IsEventRelated(m) {
			out = append(out, m)
		}
	}
	return out
}
