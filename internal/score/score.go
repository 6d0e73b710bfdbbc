// Package score computes the composite urgency score for an event
// cluster.
package score

import (
	"time"

	"blackbeard/internal/lexicon"
	"blackbeard/internal/mention"
)

const (
	volumeCap     = 40
	velocityCap   = 20
	scarcityCap   = 25
	engagementCap = 10
	totalCap      = 100

	recentWindow = 24 * time.Hour
)

// Breakdown carries every score component plus the clamped total.
type Breakdown struct {
	Volume     int `json:"volume"`
	Velocity   int `json:"velocity"`
	Scarcity   int `json:"scarcity"`
	Obscurity  int `json:"obscurity"`
	Engagement int `json:"engagement"`
	Trend      int `json:"trend,omitempty"`

	Total        int `json:"total"`
	MentionCount int `json:"mention_count"`
}

// Engine scores clusters against a fixed vocabulary. The clock is
// injectable so velocity is testable without real wall time.
type Engine struct {
	lex *lexicon.Lexicon
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used for the velocity window.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New builds a scoring engine.
func New(lex *lexicon.Lexicon, opts ...Option) *Engine {
	if lex == nil {
		lex = lexicon.Default()
	}
	e := &Engine{lex: lex, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score computes the breakdown for the cluster members. Returns nil for
// an empty member list.
//
// Components: volume from mention count, velocity from mentions inside
// the last 24 hours, scarcity from total scarcity-phrase occurrences,
// an obscurity bonus (zeroed by large-venue language, restored to 15 by
// niche-sport language, which wins the conflict), and an engagement
// bonus from upvotes and comments. The total is clamped to 100.
func (e *Engine) Score(members []mention.Mention) *Breakdown {
	if len(members) == 0 {
		return nil
	}

	folded := lexicon.Fold(mention.CombinedText(members))

	volume := clamp(len(members)*5, volumeCap)

	now := e.now()
	recent := 0
	for _, m := range members {
		if m.CreatedAt != nil && now.Sub(*m.CreatedAt) < recentWindow {
			recent++
		}
	}
	velocity := clamp(recent*4, velocityCap)

	scarcity := clamp(lexicon.CountOccurrences(folded, e.lex.Scarcity)*2, scarcityCap)

	obscurity := 10
	if lexicon.ContainsAny(folded, e.lex.LargeVenues) {
		obscurity = 0
	}
	if lexicon.ContainsAny(folded, e.lex.NicheSports) {
		obscurity = 15
	}

	engagementRaw := 0
	for _, m := range members {
		engagementRaw += m.Engagement + 2*m.Comments
	}
	engagement := clamp(engagementRaw/10, engagementCap)

	b := &Breakdown{
		Volume:       volume,
		Velocity:     velocity,
		Scarcity:     scarcity,
		Obscurity:    obscurity,
		Engagement:   engagement,
		MentionCount: len(members),
	}
	b.Total = clamp(volume+velocity+scarcity+obscurity+engagement, totalCap)
	return b
}

// TrendBonus returns the post-hoc adjustment for trend verification:
// 20 when hot, 10 when merely trending, 0 otherwise.
func TrendBonus(hot, trending bool) int {
	switch {
	case hot:
		return 20
	case trending:
		return 10
	default:
		return 0
	}
}

// ApplyTrend folds a trend bonus into the breakdown and re-clamps the
// total.
func (b *Breakdown) ApplyTrend(bonus int) {
	if b == nil || bonus <= 0 {
		return
	}
	b.Trend = bonus
	b.Total = clamp(b.Total+bonus, totalCap)
}

func clamp(value, max int) int {
	if value > max {
		return max
	}
	if value < 0 {
		return 0
	}
	return value
}
