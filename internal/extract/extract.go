// Package extract resolves a canonical event name, type, and optional
// venue for a cluster of mentions.
package extract

import (
	"regexp"
	"strings"

	"blackbeard/internal/lexicon"
	"blackbeard/internal/mention"
)

// EventType classifies what kind of act a cluster refers to.
type EventType string

const (
	TypeArtist   EventType = "artist"
	TypeTeam     EventType = "team"
	TypeComedian EventType = "comedian"
	TypeShow     EventType = "show"
	TypeEvent    EventType = "event"
)

// Result is the outcome of extraction for one cluster. An empty
// EventName means no grounded name was found; such clusters are
// dropped before scoring rather than labeled with a guess.
type Result struct {
	EventName     string
	EventType     EventType
	VenueName     string
	CommunityHint string
}

// Extractor runs the community table, the pattern cascade, and the
// venue/type classifiers.
type Extractor struct {
	lex   *lexicon.Lexicon
	rules []Rule
}

// New builds an extractor with the default rule cascade.
func New(lex *lexicon.Lexicon) *Extractor {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Extractor{lex: lex, rules: defaultRules()}
}

// Rules exposes the cascade order, mainly for tests.
func (e *Extractor) Rules() []Rule {
	return e.rules
}

var (
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	venuePattern  = regexp.MustCompile(`(?:at|@)\s+(?:the\s+)?([A-Z][A-Za-z0-9\s&\-'.]{3,30}?)(?:\s*[-–—,.]|\s+on\s|\s+in\s|$)`)
)

// Extract derives event identity for the cluster members. Resolution
// order: known community mapping, then the pattern cascade. There is no
// fallback; a cluster whose name cannot be grounded keeps an empty
// EventName.
func (e *Extractor) Extract(members []mention.Mention) Result {
	text := mention.CombinedText(members)
	folded := lexicon.Fold(text)

	res := Result{
		EventType:     e.classifyType(folded),
		VenueName:     e.extractVenue(text),
		CommunityHint: e.communityHint(members),
	}

	if name, typ, ok := e.fromCommunity(members); ok {
		res.EventName = name
		res.EventType = typ
		return res
	}

	for _, rule := range e.rules {
		candidate, ok := rule.TryMatch(text)
		if !ok {
			continue
		}
		if e.validName(candidate) {
			res.EventName = candidate
			return res
		}
	}
	return res
}

// Categorize assigns the coarse report category for the cluster text.
func (e *Extractor) Categorize(text string) string {
	folded := lexicon.Fold(text)
	for _, cat := range e.lex.Categories {
		if lexicon.ContainsAny(folded, cat.Keywords) {
			return cat.Name
		}
	}
	return "other"
}

func (e *Extractor) fromCommunity(members []mention.Mention) (string, EventType, bool) {
	for _, m := range members {
		if m.Community == "" {
			continue
		}
		for _, artist := range e.lex.ArtistCommunities {
			if m.Community == artist {
				return splitCamel(artist), TypeArtist, true
			}
		}
		for _, team := range e.lex.TeamCommunities {
			if m.Community == team {
				name := splitCamel(team)
				name = strings.ReplaceAll(name, "Tickets", "")
				name = strings.ReplaceAll(name, "tickets", "")
				return strings.TrimSpace(name), TypeTeam, true
			}
		}
	}
	return "", TypeEvent, false
}

// communityHint surfaces the first member community that is neither
// generic nor blocked. It is informational only and never becomes the
// event name.
func (e *Extractor) communityHint(members []mention.Mention) string {
	for _, m := range members {
		if len(m.Community) <= 2 {
			continue
		}
		if containsFold(e.lex.GenericCommunities, m.Community) {
			continue
		}
		if containsFold(e.lex.BlockedCommunities, m.Community) {
			continue
		}
		return m.Community
	}
	return ""
}

func (e *Extractor) validName(candidate string) bool {
	if len(candidate) < 4 || len(candidate) > 40 {
		return false
	}
	words := strings.Fields(candidate)
	if len(words) < 1 || len(words) > 5 {
		return false
	}
	first := lexicon.Fold(words[0])
	for _, opener := range e.lex.BannedOpeners {
		if first == opener {
			return false
		}
	}
	folded := lexicon.Fold(candidate)
	for _, w := range words {
		wf := lexicon.Fold(w)
		for _, fn := range e.lex.FunctionWords {
			if wf == fn {
				return false
			}
		}
	}
	for _, denied := range e.lex.NameDenylist {
		if folded == denied {
			return false
		}
	}
	return true
}

func (e *Extractor) extractVenue(text string) string {
	if match := venuePattern.FindStringSubmatch(text); match != nil {
		return strings.TrimSpace(match[1])
	}
	folded := lexicon.Fold(text)
	for _, venue := range e.lex.KnownVenues {
		if strings.Contains(folded, lexicon.Fold(venue)) {
			return venue
		}
	}
	return ""
}

func (e *Extractor) classifyType(folded string) EventType {
	switch {
	case lexicon.ContainsAny(folded, e.lex.TypeComedian):
		return TypeComedian
	case lexicon.ContainsAny(folded, e.lex.TypeArtist):
		return TypeArtist
	case lexicon.ContainsAny(folded, e.lex.TypeTeam):
		return TypeTeam
	case lexicon.ContainsAny(folded, e.lex.TypeShow):
		return TypeShow
	default:
		return TypeEvent
	}
}

func splitCamel(name string) string {
	return camelBoundary.ReplaceAllString(name, "$1 $2")
}

func containsFold(values []string, target string) bool {
	folded := lexicon.Fold(target)
	for _, v := range values {
		if lexicon.Fold(v) == folded {
			return true
		}
	}
	return false
}
