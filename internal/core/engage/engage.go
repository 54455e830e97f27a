// Package engage aggregates per-actor interaction tallies into ranked
// engagement records with weighted, normalized scores
package engage

import (
	"math"
	"sort"
)

// Kind is the interaction variety being tallied
type Kind int

const (
	// KindLike is a like on one of the viewer's posts
	KindLike Kind = iota
	// KindRepost is a repost of one of the viewer's posts
	KindRepost
	// KindComment is a reply to one of the viewer's posts
	KindComment
)

// Weights holds the per-kind score multipliers
// reposts carry the most weight because they amplify reach,
// comments sit between reposts and likes
type Weights struct {
	Like    int
	Repost  int
	Comment int
}

// DefaultWeights is the standard scoring profile
var DefaultWeights = Weights{Like: 1, Repost: 4, Comment: 2}

// Profile is the minimal identity carried through aggregation
// the caller owns resolution of handles and avatars
type Profile struct {
	ID     string
	Handle string
	Name   string
	Avatar string
}

// Record is one ranked engager
type Record struct {
	Profile

	Likes    int
	Reposts  int
	Comments int

	// RawScore is the weighted sum of the tallies
	RawScore int
	// Score is RawScore scaled against the top engager to 0..100
	Score int

	// reciprocal interactions by the viewer toward this actor
	ViewerLiked   bool
	ViewerReplied bool
	// TODO: populate once the reposted-by-viewer lookup lands in the feed client
	ViewerReposted bool
}

// Aggregator tallies interactions keyed by actor id
// first-seen order is preserved so equal scores rank deterministically
type Aggregator struct {
	weights Weights
	order   []string
	byActor map[string]*Record
}

// New returns an Aggregator using w, or DefaultWeights when w is zero
func New(w Weights) *Aggregator {
	if w == (Weights{}) {
		w = DefaultWeights
	}
	return &Aggregator{
		weights: w,
		byActor: map[string]*Record{},
	}
}

// Observe tallies one interaction by p
func (a *Aggregator) Observe(p Profile, kind Kind) {
	rec, ok := a.byActor[p.ID]
	if !ok {
		rec = &Record{Profile: p}
		a.byActor[p.ID] = rec
		a.order = append(a.order, p.ID)
	}
	// keep the richest identity we have seen for this actor
	if rec.Handle == "" && p.Handle != "" {
		rec.Handle, rec.Name, rec.Avatar = p.Handle, p.Name, p.Avatar
	}
	switch kind {
	case KindLike:
		rec.Likes++
	case KindRepost:
		rec.Reposts++
	case KindComment:
		rec.Comments++
	}
}

// MarkViewerLiked flags that the viewer has liked content by actor id
func (a *Aggregator) MarkViewerLiked(id string) {
	if rec, ok := a.byActor[id]; ok {
		rec.ViewerLiked = true
	}
}

// MarkViewerReplied flags that the viewer has replied to actor id
func (a *Aggregator) MarkViewerReplied(id string) {
	if rec, ok := a.byActor[id]; ok {
		rec.ViewerReplied = true
	}
}

// Len reports how many distinct actors have been observed
func (a *Aggregator) Len() int { return len(a.byActor) }

// Records computes scores and returns engagers ranked best first
// returns an empty slice when nothing was observed
func (a *Aggregator) Records() []Record {
	out := make([]Record, 0, len(a.order))
	maxRaw := 0
	for _, id := range a.order {
		rec := *a.byActor[id]
		rec.RawScore = rec.Likes*a.weights.Like +
			rec.Reposts*a.weights.Repost +
			rec.Comments*a.weights.Comment
		if rec.RawScore > maxRaw {
			maxRaw = rec.RawScore
		}
		out = append(out, rec)
	}
	for i := range out {
		out[i].Score = normalize(out[i].RawScore, maxRaw)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RawScore > out[j].RawScore
	})
	return out
}

// normalize scales raw against the observed maximum to 0..100
// a zero maximum means nobody scored, so everything stays at zero
func normalize(raw, maxRaw int) int {
	if maxRaw == 0 {
		return 0
	}
	return int(math.Round(float64(raw) / float64(maxRaw) * 100))
}
