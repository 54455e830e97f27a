// Package suggest screens and scores second-degree follow candidates
// discovered by fanning out from a seed actor's follower graph
package suggest

import (
	"math"
	"sort"
)

const (
	// MaxSeedFollowers caps how many of the seed's followers are fanned out
	MaxSeedFollowers = 50
	// MaxFanFollowers caps how many followers are examined per fan-out actor
	MaxFanFollowers = 20
	// MaxCandidates caps how many candidates are accepted for scoring
	MaxCandidates = 50
	// TopN is how many ranked suggestions are returned
	TopN = 10
)

// Profile is the candidate identity surfaced to callers
type Profile struct {
	ID     string
	Handle string
	Name   string
	Avatar string
	Bio    string
}

// Screener admits candidates while rejecting the seed, anyone the seed
// already follows or is followed by, duplicates, and overflow past the cap
type Screener struct {
	seen     map[string]struct{}
	accepted int
}

// NewScreener seeds the exclusion set with the actor and both sides of
// their existing graph
func NewScreener(seed string, followers, following []string) *Screener {
	s := &Screener{seen: make(map[string]struct{}, 1+len(followers)+len(following))}
	s.seen[seed] = struct{}{}
	for _, id := range followers {
		s.seen[id] = struct{}{}
	}
	for _, id := range following {
		s.seen[id] = struct{}{}
	}
	return s
}

// Admit reports whether id should be scored as a candidate
// an admitted id is recorded so later sightings are rejected as duplicates
func (s *Screener) Admit(id string) bool {
	if s.accepted >= MaxCandidates {
		return false
	}
	if _, dup := s.seen[id]; dup {
		return false
	}
	s.seen[id] = struct{}{}
	s.accepted++
	return true
}

// Full reports whether the candidate cap has been reached
func (s *Screener) Full() bool { return s.accepted >= MaxCandidates }

// Engagement is the activity sample a candidate is scored on
type Engagement struct {
	Likes   int
	Reposts int
	Replies int
	Posts   int
}

// Score rates a candidate 0..100 from interactions received per post
// replies weigh most since they signal conversation, then reposts, then likes
func Score(e Engagement) int {
	if e.Posts <= 0 {
		return 0
	}
	raw := float64(e.Likes+e.Reposts*2+e.Replies*3) / float64(e.Posts) * 10
	s := int(math.Round(raw))
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// Candidate is a screened profile with its engagement sample and score
type Candidate struct {
	Profile
	Engagement

	Score int
}

// Rank sorts candidates best first and returns at most n
// ties keep their discovery order
func Rank(cands []Candidate, n int) []Candidate {
	out := make([]Candidate, len(cands))
	copy(out, cands)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
