package report

import (
	"fmt"
	"strings"
)

// Formatter renders reports into the delivery-ready text block.
type Formatter struct {
	// HighUrgencyScore splits the scan sections; events at or above it
	// land in the urgent section.
	HighUrgencyScore int
}

// NewFormatter returns a formatter with the given urgency threshold.
func NewFormatter(highUrgencyScore int) *Formatter {
	if highUrgencyScore <= 0 {
		highUrgencyScore = 60
	}
	return &Formatter{HighUrgencyScore: highUrgencyScore}
}

var categoryEmoji = map[string]string{
	"comedy":   "🎤",
	"concerts": "🎵",
	"sports":   "🏆",
}

// FormatScan renders a scan report. Returns the empty string when the
// report contains no events; callers treat that as "nothing to send".
func (f *Formatter) FormatScan(r *Report) string {
	if r == nil || len(r.Events) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("🏴‍☠️ **BLACKBEARD SCAN REPORT**\n")
	fmt.Fprintf(&b, "*%s*\n", r.Timestamp.Format("Monday, January 2, 2006"))
	fmt.Fprintf(&b, "Found **%d** mentions across **%d** events\n", r.TotalMentions, r.EventsScored)
	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	urgent := make([]Event, 0, len(r.Events))
	informational := make([]Event, 0, len(r.Events))
	for _, e := range r.Events {
		if e.Score >= f.HighUrgencyScore {
			urgent = append(urgent, e)
		} else {
			informational = append(informational, e)
		}
	}

	rank := 0
	if len(urgent) > 0 {
		b.WriteString("**🔴 HIGH URGENCY:**\n\n")
		for _, e := range urgent {
			f.writeEvent(&b, e, rank)
			rank++
		}
	}
	if len(informational) > 0 {
		b.WriteString("**👀 ON THE RADAR:**\n\n")
		for _, e := range informational {
			f.writeEvent(&b, e, rank)
			rank++
		}
	}

	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&b, "*Scanned in %.1fs · Excludes venues >10k capacity*", r.Duration.Seconds())
	return b.String()
}

func (f *Formatter) writeEvent(b *strings.Builder, e Event, rank int) {
	emoji := categoryEmoji[e.Category]
	if emoji == "" {
		emoji = "🎟️"
	}
	fmt.Fprintf(b, "%s %s **%s**", medal(rank), emoji, e.DisplayName)
	if e.New {
		b.WriteString(" 🆕")
	}
	b.WriteString("\n")
	if e.EventName != "" && e.RawTitle != "" && e.RawTitle != e.DisplayName {
		fmt.Fprintf(b, "*\"%s\"*\n", truncate(e.RawTitle, 80))
	}
	fmt.Fprintf(b, "Score: **%d/100** · %d mentions · %s\n", e.Score, e.MentionCount, e.Category)
	if e.OfficialURL != "" {
		fmt.Fprintf(b, "🔍 [Official Page](%s)\n", e.OfficialURL)
	}
	if e.ResaleURL != "" {
		fmt.Fprintf(b, "🎟️ [Resale](%s)\n", e.ResaleURL)
	}
	links := e.Mentions
	if len(links) > 2 {
		links = links[:2]
	}
	for _, m := range links {
		fmt.Fprintf(b, "💬 <%s>\n", m.URL)
	}
	b.WriteString("\n")
}

// FormatWatchlist renders a watchlist report. Returns the empty string
// when there are no new finds.
func (f *Formatter) FormatWatchlist(r *Report) string {
	if r == nil || len(r.Finds) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("👀 **WATCHLIST ALERT** 🏴‍☠️\n\n")

	var dates, announcements []Find
	for _, find := range r.Finds {
		if find.Source == "seatgeek" {
			dates = append(dates, find)
		} else {
			announcements = append(announcements, find)
		}
	}

	if len(dates) > 0 {
		b.WriteString("**🎟️ NEW TOUR DATES:**\n")
		for _, find := range capFinds(dates, 15) {
			capStr := ""
			if find.Capacity > 0 {
				capStr = fmt.Sprintf(" (%d cap)", find.Capacity)
			}
			fmt.Fprintf(&b, "- **%s** [%s] — %s%s, %s %s\n", find.Artist, find.Tier, find.Venue, capStr, find.City, find.State)
			fmt.Fprintf(&b, "  📅 %s\n", find.Date)
			if find.URL != "" {
				fmt.Fprintf(&b, "  <%s>\n", find.URL)
			}
		}
		b.WriteString("\n")
	}

	if len(announcements) > 0 {
		b.WriteString("**📢 ANNOUNCEMENTS:**\n")
		for _, find := range capFinds(announcements, 10) {
			fmt.Fprintf(&b, "- **%s** [%s] — %s\n", find.Artist, find.Tier, find.Title)
			if find.URL != "" {
				fmt.Fprintf(&b, "  <%s>\n", find.URL)
			}
		}
	}

	return b.String()
}

func medal(rank int) string {
	switch rank {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	default:
		return fmt.Sprintf("**#%d**", rank+1)
	}
}

func capFinds(finds []Find, limit int) []Find {
	if len(finds) > limit {
		return finds[:limit]
	}
	return finds
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
