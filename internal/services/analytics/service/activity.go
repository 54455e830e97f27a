package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"skypulse/internal/core/activity"
	perr "skypulse/internal/platform/errors"
	"skypulse/internal/platform/logger"
	"skypulse/internal/platform/metrics"
	"skypulse/internal/services/analytics/domain"
)

// ActivityProfile reports an actor's posting streak and the hours of day
// their audience interacts, in the requested timezone
func (s *Svc) ActivityProfile(ctx context.Context, in domain.ActivityInput) (domain.ActivityOutput, error) {
	loc := s.cfg.DefaultTZ
	if in.TZ != "" {
		l, err := time.LoadLocation(in.TZ)
		if err != nil {
			return domain.ActivityOutput{}, perr.InvalidArgf("unknown timezone %q", in.TZ)
		}
		loc = l
	}

	key := in.Actor + "@" + loc.String()
	out, stale, err := cached(ctx, s, "activity", key, func(ctx context.Context) (domain.ActivityOutput, error) {
		return s.buildActivity(ctx, in.Actor, loc)
	})
	if err != nil {
		return domain.ActivityOutput{}, err
	}
	out.Stale = stale
	return out, nil
}

func (s *Svc) buildActivity(ctx context.Context, actor string, loc *time.Location) (domain.ActivityOutput, error) {
	defer metrics.ObserveRun("activity", time.Now())

	runID := uuid.NewString()
	ctx = logger.WithRun(ctx, runID, actor)
	log := logger.C(ctx)

	prof, err := s.feed.Profile(ctx, actor)
	if err != nil {
		return domain.ActivityOutput{}, err
	}

	// replies count toward the posting streak, the binner samples originals
	posts, err := s.recentPosts(ctx, prof.DID, true)
	if err != nil {
		return domain.ActivityOutput{}, err
	}

	postTimes := make([]time.Time, 0, len(posts))
	for _, p := range posts {
		postTimes = append(postTimes, p.CreatedAt)
	}
	streak := activity.BuildStreak(s.clk.Now(), loc, postTimes)

	sample := make([]domain.Post, 0, s.cfg.ActivitySample)
	for _, p := range posts {
		if p.IsReply {
			continue
		}
		sample = append(sample, p)
		if len(sample) >= s.cfg.ActivitySample {
			break
		}
	}

	events := make([][]time.Time, len(sample))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for i, p := range sample {
		g.Go(func() error {
			// posts deleted mid-run contribute no events
			var ts []time.Time
			likes, err := s.allLikers(gctx, p.URI)
			if err != nil {
				if perr.IsCode(err, perr.ErrorCodeNotFound) {
					return nil
				}
				return err
			}
			for _, l := range likes {
				if !l.OccurredAt.IsZero() {
					ts = append(ts, l.OccurredAt)
				}
			}
			replies, err := s.feed.Replies(gctx, p.URI, 1)
			if err != nil {
				if perr.IsCode(err, perr.ErrorCodeNotFound) {
					return nil
				}
				return err
			}
			for _, r := range replies {
				if !r.CreatedAt.IsZero() {
					ts = append(ts, r.CreatedAt)
				}
			}
			events[i] = ts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.ActivityOutput{}, err
	}

	var all []time.Time
	for _, ts := range events {
		all = append(all, ts...)
	}
	bins := activity.TopHours(all, loc, activity.TopBinCount)

	out := domain.ActivityOutput{
		RunID:       runID,
		Actor:       actor,
		GeneratedAt: s.clk.Now(),
		TZ:          loc.String(),
		Streak: domain.StreakOut{
			Current:    streak.Current,
			ActiveDays: streak.Active,
			Days:       streak.Days[:],
		},
		PeakHours: make([]domain.PeakHour, 0, len(bins)),
	}
	for _, b := range bins {
		out.PeakHours = append(out.PeakHours, domain.PeakHour{
			Hour:   b.Hour,
			Minute: b.Minute,
			Count:  b.Count,
			Pct:    b.Pct,
			Label:  b.At(s.clk.Now(), loc).Format("15:04"),
		})
	}
	log.Info().
		Int("streak", streak.Current).
		Int("peak_hours", len(out.PeakHours)).
		Int("events", len(all)).
		Msg("activity run complete")
	return out, nil
}
