package domain

import "time"

// RankingInput asks for the engagement ranking of one actor's audience
type RankingInput struct {
	Actor string `json:"actor" validate:"required,actor_id" example:"alice.bsky.social"`
}

// Engager is one ranked audience member
type Engager struct {
	DID         string `json:"did" example:"did:plc:3ab7eqyn4tx5slake6zzrcwq"`
	Handle      string `json:"handle" example:"bob.bsky.social"`
	DisplayName string `json:"display_name,omitempty" example:"Bob"`
	Avatar      string `json:"avatar,omitempty"`

	Likes    int `json:"likes" example:"4"`
	Reposts  int `json:"reposts" example:"1"`
	Comments int `json:"comments" example:"2"`
	RawScore int `json:"raw_score" example:"12"`
	Score    int `json:"score" example:"100"`

	ViewerLiked    bool `json:"viewer_liked"`
	ViewerReplied  bool `json:"viewer_replied"`
	ViewerReposted bool `json:"viewer_reposted"`
}

// RankingOutput is the ranked audience for one run
type RankingOutput struct {
	RunID        string    `json:"run_id" example:"7f9c24e8-3b1a-4d5c-9e6f-2a8b7c1d0e4f"`
	Actor        string    `json:"actor" example:"alice.bsky.social"`
	GeneratedAt  time.Time `json:"generated_at"`
	PostsSampled int       `json:"posts_sampled" example:"37"`
	Engagers     []Engager `json:"engagers"`

	// Stale is surfaced on the response envelope, not the payload
	Stale bool `json:"-"`
}

// SuggestionsInput asks for follow suggestions seeded from one actor
type SuggestionsInput struct {
	Actor string `json:"actor" validate:"required,actor_id" example:"alice.bsky.social"`
}

// Suggestion is one recommended account
type Suggestion struct {
	DID         string `json:"did"`
	Handle      string `json:"handle" example:"carol.bsky.social"`
	DisplayName string `json:"display_name,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	Bio         string `json:"bio,omitempty"`

	Likes   int `json:"likes"`
	Reposts int `json:"reposts"`
	Replies int `json:"replies"`
	Posts   int `json:"posts"`
	Score   int `json:"score" example:"72"`
}

// SuggestionsOutput is the scored candidate list for one run
type SuggestionsOutput struct {
	RunID       string       `json:"run_id"`
	Actor       string       `json:"actor"`
	GeneratedAt time.Time    `json:"generated_at"`
	Examined    int          `json:"examined" example:"48"`
	Suggestions []Suggestion `json:"suggestions"`

	Stale bool `json:"-"`
}

// ActivityInput asks for an actor's posting rhythm
// TZ is an IANA zone name; empty falls back to the service default
type ActivityInput struct {
	Actor string `json:"actor" validate:"required,actor_id" example:"alice.bsky.social"`
	TZ    string `json:"tz,omitempty" validate:"omitempty,timezone" example:"Europe/Madrid"`
}

// StreakOut is the rolling daily activity window
// Days carries the post count per day, index 29 = today
type StreakOut struct {
	Current    int   `json:"current" example:"3"`
	ActiveDays int   `json:"active_days" example:"14"`
	Days       []int `json:"days"`
}

// PeakHour is one favored hour of the day
type PeakHour struct {
	Hour   int    `json:"hour" example:"14"`
	Minute int    `json:"minute" example:"30"`
	Count  int    `json:"count" example:"19"`
	Pct    int    `json:"pct" example:"38"`
	Label  string `json:"label" example:"14:30"`
}

// ActivityOutput is the posting rhythm profile for one run
type ActivityOutput struct {
	RunID       string     `json:"run_id"`
	Actor       string     `json:"actor"`
	GeneratedAt time.Time  `json:"generated_at"`
	TZ          string     `json:"tz" example:"UTC"`
	Streak      StreakOut  `json:"streak"`
	PeakHours   []PeakHour `json:"peak_hours"`

	Stale bool `json:"-"`
}
