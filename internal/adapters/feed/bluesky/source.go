package bluesky

import (
	"context"

	"skypulse/internal/platform/metrics"
	"skypulse/internal/services/analytics/domain"
)

// Source adapts the XRPC client to the analytics feed port
type Source struct{ c *Client }

// NewSource constructs a Source using the given client
func NewSource(c *Client) *Source { return &Source{c: c} }

// Profile performs app.bsky.actor.getProfile
func (s *Source) Profile(ctx context.Context, actor string) (domain.Actor, error) {
	a, err := s.c.Profile(ctx, actor)
	if err != nil {
		return domain.Actor{}, countErr("getProfile", err)
	}
	metrics.FeedPages.WithLabelValues("getProfile").Inc()
	return mapActor(a), nil
}

// AuthorFeed performs app.bsky.feed.getAuthorFeed
func (s *Source) AuthorFeed(ctx context.Context, actor, cursor string, limit int, includeReplies bool) (domain.FeedPage, error) {
	filter := "posts_no_replies"
	if includeReplies {
		filter = "posts_with_replies"
	}
	page, err := s.c.AuthorFeed(ctx, actor, cursor, limit, filter)
	if err != nil {
		return domain.FeedPage{}, countErr("getAuthorFeed", err)
	}
	metrics.FeedPages.WithLabelValues("getAuthorFeed").Inc()
	out := domain.FeedPage{Cursor: page.Cursor, Posts: make([]domain.Post, 0, len(page.Feed))}
	for _, it := range page.Feed {
		out.Posts = append(out.Posts, mapPost(it))
	}
	return out, nil
}

// Likers performs app.bsky.feed.getLikes
func (s *Source) Likers(ctx context.Context, postURI, cursor string, limit int) (domain.LikesPage, error) {
	page, err := s.c.Likes(ctx, postURI, cursor, limit)
	if err != nil {
		return domain.LikesPage{}, countErr("getLikes", err)
	}
	metrics.FeedPages.WithLabelValues("getLikes").Inc()
	out := domain.LikesPage{Cursor: page.Cursor, Likes: make([]domain.LikeEvent, 0, len(page.Likes))}
	for _, l := range page.Likes {
		at := l.CreatedAt
		if at.IsZero() {
			at = l.IndexedAt
		}
		out.Likes = append(out.Likes, domain.LikeEvent{Actor: mapActor(l.Actor), OccurredAt: at})
	}
	return out, nil
}

// Reposters performs app.bsky.feed.getRepostedBy
func (s *Source) Reposters(ctx context.Context, postURI, cursor string, limit int) (domain.ActorsPage, error) {
	page, err := s.c.RepostedBy(ctx, postURI, cursor, limit)
	if err != nil {
		return domain.ActorsPage{}, countErr("getRepostedBy", err)
	}
	metrics.FeedPages.WithLabelValues("getRepostedBy").Inc()
	return domain.ActorsPage{Cursor: page.Cursor, Actors: mapActors(page.RepostedBy)}, nil
}

// Replies performs app.bsky.feed.getPostThread and flattens the first level
func (s *Source) Replies(ctx context.Context, postURI string, depth int) ([]domain.Reply, error) {
	th, err := s.c.PostThread(ctx, postURI, depth)
	if err != nil {
		return nil, countErr("getPostThread", err)
	}
	metrics.FeedPages.WithLabelValues("getPostThread").Inc()
	return mapReplies(th.Replies), nil
}

// Followers performs app.bsky.graph.getFollowers
func (s *Source) Followers(ctx context.Context, actor, cursor string, limit int) (domain.ActorsPage, error) {
	page, err := s.c.Followers(ctx, actor, cursor, limit)
	if err != nil {
		return domain.ActorsPage{}, countErr("getFollowers", err)
	}
	metrics.FeedPages.WithLabelValues("getFollowers").Inc()
	return domain.ActorsPage{Cursor: page.Cursor, Actors: mapActors(page.Followers)}, nil
}

// Following performs app.bsky.graph.getFollows
func (s *Source) Following(ctx context.Context, actor, cursor string, limit int) (domain.ActorsPage, error) {
	page, err := s.c.Follows(ctx, actor, cursor, limit)
	if err != nil {
		return domain.ActorsPage{}, countErr("getFollows", err)
	}
	metrics.FeedPages.WithLabelValues("getFollows").Inc()
	return domain.ActorsPage{Cursor: page.Cursor, Actors: mapActors(page.Follows)}, nil
}

// ViewerLikes performs app.bsky.feed.getActorLikes
func (s *Source) ViewerLikes(ctx context.Context, actor, cursor string, limit int) (domain.FeedPage, error) {
	q := pageQuery(actor, cursor, limit)
	var page FeedPage
	if err := s.c.get(ctx, "app.bsky.feed.getActorLikes", q, &page); err != nil {
		return domain.FeedPage{}, countErr("getActorLikes", err)
	}
	metrics.FeedPages.WithLabelValues("getActorLikes").Inc()
	out := domain.FeedPage{Cursor: page.Cursor, Posts: make([]domain.Post, 0, len(page.Feed))}
	for _, it := range page.Feed {
		out.Posts = append(out.Posts, mapPost(it))
	}
	return out, nil
}

// Ping checks remote liveness
func (s *Source) Ping(ctx context.Context) error { return s.c.Ping(ctx) }

func countErr(endpoint string, err error) error {
	metrics.FeedErrors.WithLabelValues(endpoint, errKind(err)).Inc()
	return err
}

func mapActor(a Actor) domain.Actor {
	return domain.Actor{
		DID:            a.DID,
		Handle:         a.Handle,
		DisplayName:    a.DisplayName,
		Avatar:         a.Avatar,
		Bio:            a.Description,
		FollowersCount: a.FollowersCount,
		FollowsCount:   a.FollowsCount,
		PostsCount:     a.PostsCount,
	}
}

func mapActors(as []Actor) []domain.Actor {
	out := make([]domain.Actor, 0, len(as))
	for _, a := range as {
		out = append(out, mapActor(a))
	}
	return out
}

func mapPost(it FeedItem) domain.Post {
	p := it.Post
	created := p.Record.CreatedAt
	if created.IsZero() {
		created = p.IndexedAt
	}
	return domain.Post{
		URI:       p.URI,
		Author:    mapActor(p.Author),
		Text:      p.Record.Text,
		CreatedAt: created,
		Likes:     p.LikeCount,
		Reposts:   p.RepostCount,
		Replies:   p.ReplyCount,
		IsReply:   p.IsReply(),
		IsRepost:  it.IsRepost(),
	}
}

func mapReplies(in []ThreadView) []domain.Reply {
	out := make([]domain.Reply, 0, len(in))
	for _, tv := range in {
		if tv.Post == nil {
			continue
		}
		created := tv.Post.Record.CreatedAt
		if created.IsZero() {
			created = tv.Post.IndexedAt
		}
		out = append(out, domain.Reply{
			Author:    mapActor(tv.Post.Author),
			CreatedAt: created,
			Replies:   mapReplies(tv.Replies),
		})
	}
	return out
}
