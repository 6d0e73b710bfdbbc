// Package cluster groups classified mentions that appear to describe
// the same event.
package cluster

import (
	"regexp"
	"strings"

	"blackbeard/internal/lexicon"
	"blackbeard/internal/mention"
)

// Cluster is an ordered set of mentions sharing a key.
type Cluster struct {
	Key     string
	Members []mention.Mention
}

var (
	quotedPattern   = regexp.MustCompile(`"([^"]+)"`)
	nonKeyCharacter = regexp.MustCompile(`[^a-z0-9 ]`)
)

// Key derives the cluster key for a mention: the first quoted substring
// if one exists, otherwise the title; folded, stripped to alphanumerics
// and spaces, truncated to the first four tokens.
//
// The four-token truncation is deliberately coarse. Distinct events
// that open with the same words collide into one cluster; that
// imprecision is accepted rather than special-cased.
func Key(m mention.Mention) string {
	base := m.Title
	if match := quotedPattern.FindStringSubmatch(m.Combined()); match != nil {
		base = match[1]
	}
	if len(base) > 80 {
		base = base[:80]
	}
	normalized := nonKeyCharacter.ReplaceAllString(lexicon.Fold(base), "")
	tokens := strings.Fields(normalized)
	if len(tokens) > 4 {
		tokens = tokens[:4]
	}
	return strings.Join(tokens, " ")
}

// Group buckets mentions by key. Clusters are returned in order of
// first appearance and members keep their input order.
func Group(mentions []mention.Mention) []*Cluster {
	index := make(map[string]*Cluster, len(mentions))
	clusters := make([]*Cluster, 0, len(mentions))
	for _, m := range mentions {
		key := Key(m)
		if key == "" {
			continue
		}
		c, ok := index[key]
		if !ok {
			c = &Cluster{Key: key}
			index[key] = c
			clusters = append(clusters, c)
		}
		c.Members = append(c.Members, m)
	}
	return clusters
}
