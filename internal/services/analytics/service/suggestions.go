package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"skypulse/internal/core/suggest"
	perr "skypulse/internal/platform/errors"
	"skypulse/internal/platform/logger"
	"skypulse/internal/platform/metrics"
	"skypulse/internal/services/analytics/domain"
)

// Suggestions recommends accounts two hops out in the follower graph,
// scored by how much interaction their recent posts attract
func (s *Svc) Suggestions(ctx context.Context, in domain.SuggestionsInput) (domain.SuggestionsOutput, error) {
	out, stale, err := cached(ctx, s, "suggestions", in.Actor, func(ctx context.Context) (domain.SuggestionsOutput, error) {
		return s.buildSuggestions(ctx, in.Actor)
	})
	if err != nil {
		return domain.SuggestionsOutput{}, err
	}
	out.Stale = stale
	return out, nil
}

func (s *Svc) buildSuggestions(ctx context.Context, actor string) (domain.SuggestionsOutput, error) {
	defer metrics.ObserveRun("suggestions", time.Now())

	runID := uuid.NewString()
	ctx = logger.WithRun(ctx, runID, actor)
	log := logger.C(ctx)

	prof, err := s.feed.Profile(ctx, actor)
	if err != nil {
		return domain.SuggestionsOutput{}, err
	}

	// the exclusion set drains both lists to the item cap, not one page:
	// a suggestion must never echo an account the seed already follows
	followers, err := s.allFollowers(ctx, prof.DID)
	if err != nil {
		return domain.SuggestionsOutput{}, err
	}
	following, err := s.allFollowing(ctx, prof.DID)
	if err != nil {
		return domain.SuggestionsOutput{}, err
	}

	scr := suggest.NewScreener(prof.DID, dids(followers), dids(following))

	fan := followers
	if len(fan) > suggest.MaxSeedFollowers {
		fan = fan[:suggest.MaxSeedFollowers]
	}

	var (
		mu       sync.Mutex
		admitted []domain.Actor
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for _, f := range fan {
		g.Go(func() error {
			mu.Lock()
			full := scr.Full()
			mu.Unlock()
			if full {
				return nil
			}
			page, err := s.feed.Followers(gctx, f.DID, "", suggest.MaxFanFollowers)
			if err != nil {
				// deleted or suspended accounts drop out of the fan-out
				if perr.IsCode(err, perr.ErrorCodeNotFound) {
					return nil
				}
				return err
			}
			mu.Lock()
			for _, cand := range page.Actors {
				if scr.Admit(cand.DID) {
					admitted = append(admitted, cand)
				}
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.SuggestionsOutput{}, err
	}
	log.Info().Int("admitted", len(admitted)).Msg("suggestion candidates screened")

	cands := make([]suggest.Candidate, len(admitted))
	g2, g2ctx := errgroup.WithContext(ctx)
	g2.SetLimit(s.cfg.Workers)
	for i, cand := range admitted {
		g2.Go(func() error {
			page, err := s.feed.AuthorFeed(g2ctx, cand.DID, "", suggest.MaxFanFollowers, false)
			if err != nil {
				if perr.IsCode(err, perr.ErrorCodeNotFound) {
					return nil
				}
				return err
			}
			var e suggest.Engagement
			for _, p := range page.Posts {
				if p.IsRepost {
					continue
				}
				e.Likes += p.Likes
				e.Reposts += p.Reposts
				e.Replies += p.Replies
				e.Posts++
			}
			cands[i] = suggest.Candidate{
				Profile: suggest.Profile{
					ID:     cand.DID,
					Handle: cand.Handle,
					Name:   cand.DisplayName,
					Avatar: cand.Avatar,
					Bio:    cand.Bio,
				},
				Engagement: e,
				Score:      suggest.Score(e),
			}
			return nil
		})
	}
	if err := g2.Wait(); err != nil {
		return domain.SuggestionsOutput{}, err
	}

	// drop slots skipped by the not-found path
	scored := cands[:0]
	for _, c := range cands {
		if c.ID != "" {
			scored = append(scored, c)
		}
	}
	top := suggest.Rank(scored, suggest.TopN)

	out := domain.SuggestionsOutput{
		RunID:       runID,
		Actor:       actor,
		GeneratedAt: s.clk.Now(),
		Examined:    len(admitted),
		Suggestions: make([]domain.Suggestion, 0, len(top)),
	}
	for _, c := range top {
		out.Suggestions = append(out.Suggestions, domain.Suggestion{
			DID:         c.ID,
			Handle:      c.Handle,
			DisplayName: c.Name,
			Avatar:      c.Avatar,
			Bio:         c.Bio,
			Likes:       c.Likes,
			Reposts:     c.Reposts,
			Replies:     c.Replies,
			Posts:       c.Posts,
			Score:       c.Score,
		})
	}
	log.Info().Int("suggestions", len(out.Suggestions)).Msg("suggestion run complete")
	return out, nil
}

func dids(actors []domain.Actor) []string {
	out := make([]string, 0, len(actors))
	for _, a := range actors {
		out = append(out, a.DID)
	}
	return out
}
