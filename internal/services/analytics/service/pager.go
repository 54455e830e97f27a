package service

import (
	"context"

	"skypulse/internal/platform/logger"
	"skypulse/internal/services/analytics/domain"
)

// recentPosts pages through an author feed until one of the ceilings trips:
// the item cap, the age cutoff, or an exhausted cursor
// reposts are dropped since they carry someone else's interactions
func (s *Svc) recentPosts(ctx context.Context, actor string, includeReplies bool) ([]domain.Post, error) {
	cutoff := s.clk.Now().Add(-s.cfg.MaxAge)

	var out []domain.Post
	cursor := ""
	for {
		page, err := s.feed.AuthorFeed(ctx, actor, cursor, s.cfg.PageSize, includeReplies)
		if err != nil {
			return nil, err
		}
		for _, p := range page.Posts {
			if p.IsRepost {
				continue
			}
			if p.CreatedAt.Before(cutoff) {
				logger.C(ctx).Debug().
					Str("actor", actor).
					Int("posts", len(out)).
					Msg("pager hit age cutoff")
				return out, nil
			}
			out = append(out, p)
			if len(out) >= s.cfg.MaxItems {
				logger.C(ctx).Debug().
					Str("actor", actor).
					Int("posts", len(out)).
					Msg("pager hit item cap")
				return out, nil
			}
		}
		if page.Cursor == "" || len(page.Posts) == 0 {
			return out, nil
		}
		cursor = page.Cursor
	}
}

// allLikers drains the likers of one post up to the item cap
func (s *Svc) allLikers(ctx context.Context, postURI string) ([]domain.LikeEvent, error) {
	var out []domain.LikeEvent
	cursor := ""
	for {
		page, err := s.feed.Likers(ctx, postURI, cursor, s.cfg.PageSize)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Likes...)
		if page.Cursor == "" || len(page.Likes) == 0 || len(out) >= s.cfg.MaxItems {
			return out, nil
		}
		cursor = page.Cursor
	}
}

// allReposters drains the reposters of one post up to the item cap
func (s *Svc) allReposters(ctx context.Context, postURI string) ([]domain.Actor, error) {
	var out []domain.Actor
	cursor := ""
	for {
		page, err := s.feed.Reposters(ctx, postURI, cursor, s.cfg.PageSize)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Actors...)
		if page.Cursor == "" || len(page.Actors) == 0 || len(out) >= s.cfg.MaxItems {
			return out, nil
		}
		cursor = page.Cursor
	}
}

// allFollowers drains an actor's follower list up to the item cap
func (s *Svc) allFollowers(ctx context.Context, actor string) ([]domain.Actor, error) {
	var out []domain.Actor
	cursor := ""
	for {
		page, err := s.feed.Followers(ctx, actor, cursor, s.cfg.PageSize)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Actors...)
		if page.Cursor == "" || len(page.Actors) == 0 || len(out) >= s.cfg.MaxItems {
			return out, nil
		}
		cursor = page.Cursor
	}
}

// allFollowing drains an actor's follow list up to the item cap
func (s *Svc) allFollowing(ctx context.Context, actor string) ([]domain.Actor, error) {
	var out []domain.Actor
	cursor := ""
	for {
		page, err := s.feed.Following(ctx, actor, cursor, s.cfg.PageSize)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Actors...)
		if page.Cursor == "" || len(page.Actors) == 0 || len(out) >= s.cfg.MaxItems {
			return out, nil
		}
		cursor = page.Cursor
	}
}
