package service

import (
	"context"

	"skypulse/internal/platform/metrics"
	"skypulse/internal/platform/ratelimit"
	"skypulse/internal/platform/retry"
	"skypulse/internal/services/analytics/domain"
)

// limitedFeed gates every feed call through the local fixed-window limiter
// a rejected call never reaches the network
type limitedFeed struct {
	next domain.FeedPort
	lim  *ratelimit.Limiter
}

func newLimited(next domain.FeedPort, lim *ratelimit.Limiter) domain.FeedPort {
	return &limitedFeed{next: next, lim: lim}
}

func (f *limitedFeed) admit() error {
	err := f.lim.Admit()
	metrics.RateBudget.Set(float64(f.lim.Remaining()))
	if err != nil {
		metrics.RateLimited.Inc()
		return err
	}
	return nil
}

func (f *limitedFeed) Profile(ctx context.Context, actor string) (domain.Actor, error) {
	if err := f.admit(); err != nil {
		return domain.Actor{}, err
	}
	return f.next.Profile(ctx, actor)
}

func (f *limitedFeed) AuthorFeed(ctx context.Context, actor, cursor string, limit int, includeReplies bool) (domain.FeedPage, error) {
	if err := f.admit(); err != nil {
		return domain.FeedPage{}, err
	}
	return f.next.AuthorFeed(ctx, actor, cursor, limit, includeReplies)
}

func (f *limitedFeed) Likers(ctx context.Context, postURI, cursor string, limit int) (domain.LikesPage, error) {
	if err := f.admit(); err != nil {
		return domain.LikesPage{}, err
	}
	return f.next.Likers(ctx, postURI, cursor, limit)
}

func (f *limitedFeed) Reposters(ctx context.Context, postURI, cursor string, limit int) (domain.ActorsPage, error) {
	if err := f.admit(); err != nil {
		return domain.ActorsPage{}, err
	}
	return f.next.Reposters(ctx, postURI, cursor, limit)
}

func (f *limitedFeed) Replies(ctx context.Context, postURI string, depth int) ([]domain.Reply, error) {
	if err := f.admit(); err != nil {
		return nil, err
	}
	return f.next.Replies(ctx, postURI, depth)
}

func (f *limitedFeed) Followers(ctx context.Context, actor, cursor string, limit int) (domain.ActorsPage, error) {
	if err := f.admit(); err != nil {
		return domain.ActorsPage{}, err
	}
	return f.next.Followers(ctx, actor, cursor, limit)
}

func (f *limitedFeed) Following(ctx context.Context, actor, cursor string, limit int) (domain.ActorsPage, error) {
	if err := f.admit(); err != nil {
		return domain.ActorsPage{}, err
	}
	return f.next.Following(ctx, actor, cursor, limit)
}

func (f *limitedFeed) ViewerLikes(ctx context.Context, actor, cursor string, limit int) (domain.FeedPage, error) {
	if err := f.admit(); err != nil {
		return domain.FeedPage{}, err
	}
	return f.next.ViewerLikes(ctx, actor, cursor, limit)
}

// retriedFeed replays transient failures with backoff
// limiter rejections are not transient and pass through untouched
type retriedFeed struct {
	next domain.FeedPort
	pol  *retry.Policy
}

func newRetried(next domain.FeedPort, pol *retry.Policy) domain.FeedPort {
	return &retriedFeed{next: next, pol: pol}
}

func (f *retriedFeed) Profile(ctx context.Context, actor string) (domain.Actor, error) {
	return retry.Result(ctx, f.pol, "profile", func(ctx context.Context) (domain.Actor, error) {
		return f.next.Profile(ctx, actor)
	})
}

func (f *retriedFeed) AuthorFeed(ctx context.Context, actor, cursor string, limit int, includeReplies bool) (domain.FeedPage, error) {
	return retry.Result(ctx, f.pol, "author_feed", func(ctx context.Context) (domain.FeedPage, error) {
		return f.next.AuthorFeed(ctx, actor, cursor, limit, includeReplies)
	})
}

func (f *retriedFeed) Likers(ctx context.Context, postURI, cursor string, limit int) (domain.LikesPage, error) {
	return retry.Result(ctx, f.pol, "likers", func(ctx context.Context) (domain.LikesPage, error) {
		return f.next.Likers(ctx, postURI, cursor, limit)
	})
}

func (f *retriedFeed) Reposters(ctx context.Context, postURI, cursor string, limit int) (domain.ActorsPage, error) {
	return retry.Result(ctx, f.pol, "reposters", func(ctx context.Context) (domain.ActorsPage, error) {
		return f.next.Reposters(ctx, postURI, cursor, limit)
	})
}

func (f *retriedFeed) Replies(ctx context.Context, postURI string, depth int) ([]domain.Reply, error) {
	return retry.Result(ctx, f.pol, "replies", func(ctx context.Context) ([]domain.Reply, error) {
		return f.next.Replies(ctx, postURI, depth)
	})
}

func (f *retriedFeed) Followers(ctx context.Context, actor, cursor string, limit int) (domain.ActorsPage, error) {
	return retry.Result(ctx, f.pol, "followers", func(ctx context.Context) (domain.ActorsPage, error) {
		return f.next.Followers(ctx, actor, cursor, limit)
	})
}

func (f *retriedFeed) Following(ctx context.Context, actor, cursor string, limit int) (domain.ActorsPage, error) {
	return retry.Result(ctx, f.pol, "following", func(ctx context.Context) (domain.ActorsPage, error) {
		return f.next.Following(ctx, actor, cursor, limit)
	})
}

func (f *retriedFeed) ViewerLikes(ctx context.Context, actor, cursor string, limit int) (domain.FeedPage, error) {
	return retry.Result(ctx, f.pol, "viewer_likes", func(ctx context.Context) (domain.FeedPage, error) {
		return f.next.ViewerLikes(ctx, actor, cursor, limit)
	})
}
