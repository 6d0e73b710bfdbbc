package extract

import (
	"regexp"
	"strings"
)

// Rule is one step of the name-extraction cascade. TryMatch returns a
// raw candidate; validation happens in the extractor so every rule
// shares the same acceptance criteria.
type Rule interface {
	Name() string
	TryMatch(text string) (string, bool)
}

type patternRule struct {
	name    string
	pattern *regexp.Regexp
}

func (r patternRule) Name() string { return r.name }

func (r patternRule) TryMatch(text string) (string, bool) {
	match := r.pattern.FindStringSubmatch(text)
	if match == nil || match[1] == "" {
		return "", false
	}
	candidate := strings.Join(strings.Fields(match[1]), " ")
	return candidate, candidate != ""
}

const nameBody = `[A-Za-z0-9\s&\-'.]{2,40}?`

// defaultRules is the ordered cascade; the first rule whose candidate
// validates wins.
func defaultRules() []Rule {
	return []Rule{
		patternRule{
			name:    "tour",
			pattern: regexp.MustCompile(`([A-Z]` + nameBody + `)\s+[Tt]our\b`),
		},
		patternRule{
			name:    "tickets-to",
			pattern: regexp.MustCompile(`[Tt]ickets?\s+(?:to|for)\s+(?:the\s+)?([A-Z]` + nameBody + `)(?:\s*[-–—]|\s*concert|\s*show|\s*game|\s*match|\s*tour|\s*at\s|\s*[,.])`),
		},
		patternRule{
			name:    "seeking",
			pattern: regexp.MustCompile(`(?:[Ll]ooking for|[Nn]eed|[Ww]ant|WTB)\s.*?(?:tickets?\s+(?:to|for)\s+)?(?:the\s+)?([A-Z]` + nameBody + `)(?:\s+concert|\s+show|\s+game|\s+tour|\s+tickets)`),
		},
		patternRule{
			name:    "tickets-sold",
			pattern: regexp.MustCompile(`([A-Z]` + nameBody + `)\s+(?:[Tt]ickets?|tix)\s+(?:sold|are|were)`),
		},
		patternRule{
			name:    "sold-out",
			pattern: regexp.MustCompile(`([A-Z]` + nameBody + `)\s+[Ss]old[\s-]*[Oo]ut`),
		},
		patternRule{
			name:    "sold-out-for",
			pattern: regexp.MustCompile(`[Ss]old[\s-]*[Oo]ut.*?\bfor\s+(?:the\s+)?([A-Z][A-Za-z0-9\s&\-'.]{2,40})`),
		},
	}
}
