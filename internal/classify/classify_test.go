package classify_test

import (
	"testing"

	"blackbeard/internal/classify"
	"blackbeard/internal/mention"
)

func TestIsEventRelated(t *testing.T) {
	c := classify.New(nil)

	cases := []struct {
		name string
		m    mention.Mention
		want bool
	}{
		{
			name: "scarce concert post accepted",
			m: mention.Mention{
				Title: "Tame Impala tickets sold out in minutes",
				Text:  "Desperate for two, the whole tour is gone",
			},
			want: true,
		},
		{
			name: "off-region marker rejected",
			m: mention.Mention{
				Title: "Tickets sold out for the London show tonight",
			},
			want: false,
		},
		{
			name: "blocked community rejected",
			m: mention.Mention{
				Title:     "Need tickets to the watercooling expo show event",
				Community: "watercooling",
			},
			want: false,
		},
		{
			name: "shopping noise rejected",
			m: mention.Mention{
				Title: "Promo code for concert tickets, huge markdown on the show",
			},
			want: false,
		},
		{
			name: "strong scarcity overrides noise",
			m: mention.Mention{
				Title: "Markdown comedy show tickets instantly sold out at the venue",
			},
			want: true,
		},
		{
			name: "no hard ticket term rejected",
			m: mention.Mention{
				Title: "Great concert last night, the venue was packed for the show",
			},
			want: false,
		},
		{
			name: "hard term without soft corroboration rejected",
			m: mention.Mention{
				Title: "stubhub",
			},
			want: false,
		},
		{
			name: "empty mention rejected",
			m:    mention.Mention{},
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.IsEventRelated(tc.m); got != tc.want {
				t.Fatalf("IsEventRelated = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	c := classify.New(nil)
	mentions := []mention.Mention{
		{Title: "Tame Impala tickets sold out in minutes, whole tour gone"},
		{Title: "Nice weather today"},
		{Title: "Comedy show tickets sold out, resale prices are insane"},
	}
	out := c.Filter(mentions)
	if len(out) != 2 {
		t.Fatalf("expected 2 mentions, got %d", len(out))
	}
	if out[0].Title != mentions[0].Title || out[1].Title != mentions[2].Title {
		t.Fatalf("filter reordered mentions: %q, %q", out[0].Title, out[1].Title)
	}
}
