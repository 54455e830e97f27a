package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"skypulse/internal/core/engage"
	perr "skypulse/internal/platform/errors"
	"skypulse/internal/platform/logger"
	"skypulse/internal/platform/metrics"
	"skypulse/internal/services/analytics/domain"
)

// EngagementRanking ranks the actors who interacted with in.Actor's recent
// posts, weighted by interaction kind and normalized against the top engager
func (s *Svc) EngagementRanking(ctx context.Context, in domain.RankingInput) (domain.RankingOutput, error) {
	out, stale, err := cached(ctx, s, "ranking", in.Actor, func(ctx context.Context) (domain.RankingOutput, error) {
		return s.buildRanking(ctx, in.Actor)
	})
	if err != nil {
		return domain.RankingOutput{}, err
	}
	out.Stale = stale
	return out, nil
}

// postTally is one post's interactions, collected off the fan-out
type postTally struct {
	likes     []domain.LikeEvent
	reposters []domain.Actor
	replies   []domain.Reply
}

func (s *Svc) buildRanking(ctx context.Context, actor string) (domain.RankingOutput, error) {
	defer metrics.ObserveRun("ranking", time.Now())

	runID := uuid.NewString()
	ctx = logger.WithRun(ctx, runID, actor)
	log := logger.C(ctx)

	prof, err := s.feed.Profile(ctx, actor)
	if err != nil {
		return domain.RankingOutput{}, err
	}

	posts, err := s.recentPosts(ctx, prof.DID, false)
	if err != nil {
		return domain.RankingOutput{}, err
	}
	log.Info().Int("posts", len(posts)).Msg("ranking run sampling posts")

	tallies := make([]postTally, len(posts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for i, p := range posts {
		g.Go(func() error {
			// posts deleted mid-run drop out of the tally
			likes, err := s.allLikers(gctx, p.URI)
			if err != nil {
				if perr.IsCode(err, perr.ErrorCodeNotFound) {
					return nil
				}
				return err
			}
			reposters, err := s.allReposters(gctx, p.URI)
			if err != nil {
				if perr.IsCode(err, perr.ErrorCodeNotFound) {
					return nil
				}
				return err
			}
			replies, err := s.feed.Replies(gctx, p.URI, 2)
			if err != nil {
				if perr.IsCode(err, perr.ErrorCodeNotFound) {
					return nil
				}
				return err
			}
			tallies[i] = postTally{likes: likes, reposters: reposters, replies: replies}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// a canceled run never publishes partial tallies
		return domain.RankingOutput{}, err
	}

	agg := engage.New(engage.Weights{})
	for _, t := range tallies {
		for _, l := range t.likes {
			agg.Observe(profileOf(l.Actor), engage.KindLike)
		}
		for _, a := range t.reposters {
			agg.Observe(profileOf(a), engage.KindRepost)
		}
		for _, r := range t.replies {
			if r.Author.DID == prof.DID {
				continue
			}
			agg.Observe(profileOf(r.Author), engage.KindComment)
			// the viewer replying back is visible one level down the thread
			for _, child := range r.Replies {
				if child.Author.DID == prof.DID {
					agg.MarkViewerReplied(r.Author.DID)
					break
				}
			}
		}
	}

	s.markViewerLikes(ctx, prof.DID, agg)

	recs := agg.Records()
	engagers := make([]domain.Engager, 0, len(recs))
	for _, r := range recs {
		engagers = append(engagers, domain.Engager{
			DID:            r.ID,
			Handle:         r.Handle,
			DisplayName:    r.Name,
			Avatar:         r.Avatar,
			Likes:          r.Likes,
			Reposts:        r.Reposts,
			Comments:       r.Comments,
			RawScore:       r.RawScore,
			Score:          r.Score,
			ViewerLiked:    r.ViewerLiked,
			ViewerReplied:  r.ViewerReplied,
			ViewerReposted: r.ViewerReposted,
		})
	}
	log.Info().Int("engagers", agg.Len()).Msg("ranking run complete")

	return domain.RankingOutput{
		RunID:        runID,
		Actor:        actor,
		GeneratedAt:  s.clk.Now(),
		PostsSampled: len(posts),
		Engagers:     engagers,
	}, nil
}

// markViewerLikes is best effort; the likes feed needs an authed session
// and the ranking is still useful without it
func (s *Svc) markViewerLikes(ctx context.Context, viewerDID string, agg *engage.Aggregator) {
	page, err := s.feed.ViewerLikes(ctx, viewerDID, "", s.cfg.PageSize)
	if err != nil {
		logger.C(ctx).Debug().Err(err).Msg("viewer likes unavailable, skipping reciprocity marks")
		return
	}
	for _, p := range page.Posts {
		agg.MarkViewerLiked(p.Author.DID)
	}
}

func profileOf(a domain.Actor) engage.Profile {
	return engage.Profile{ID: a.DID, Handle: a.Handle, Name: a.DisplayName, Avatar: a.Avatar}
}
