package bluesky

import (
	"context"
	"net/url"
	"strconv"
)

// Profile fetches app.bsky.actor.getProfile for a handle or DID
func (c *Client) Profile(ctx context.Context, actor string) (Actor, error) {
	q := url.Values{"actor": {actor}}
	var out Actor
	if err := c.get(ctx, "app.bsky.actor.getProfile", q, &out); err != nil {
		return Actor{}, err
	}
	return out, nil
}

// AuthorFeed fetches one page of app.bsky.feed.getAuthorFeed
// filter narrows the feed, e.g. posts_no_replies; empty keeps the default
func (c *Client) AuthorFeed(ctx context.Context, actor, cursor string, limit int, filter string) (FeedPage, error) {
	q := url.Values{"actor": {actor}}
	pageParams(q, cursor, limit)
	if filter != "" {
		q.Set("filter", filter)
	}
	var out FeedPage
	if err := c.get(ctx, "app.bsky.feed.getAuthorFeed", q, &out); err != nil {
		return FeedPage{}, err
	}
	return out, nil
}

// Likes fetches one page of app.bsky.feed.getLikes for a post URI
func (c *Client) Likes(ctx context.Context, uri, cursor string, limit int) (LikesPage, error) {
	q := url.Values{"uri": {uri}}
	pageParams(q, cursor, limit)
	var out LikesPage
	if err := c.get(ctx, "app.bsky.feed.getLikes", q, &out); err != nil {
		return LikesPage{}, err
	}
	return out, nil
}

// RepostedBy fetches one page of app.bsky.feed.getRepostedBy for a post URI
func (c *Client) RepostedBy(ctx context.Context, uri, cursor string, limit int) (RepostedByPage, error) {
	q := url.Values{"uri": {uri}}
	pageParams(q, cursor, limit)
	var out RepostedByPage
	if err := c.get(ctx, "app.bsky.feed.getRepostedBy", q, &out); err != nil {
		return RepostedByPage{}, err
	}
	return out, nil
}

// PostThread fetches app.bsky.feed.getPostThread down to depth
func (c *Client) PostThread(ctx context.Context, uri string, depth int) (ThreadView, error) {
	q := url.Values{"uri": {uri}}
	if depth > 0 {
		q.Set("depth", strconv.Itoa(depth))
	}
	var out threadEnvelope
	if err := c.get(ctx, "app.bsky.feed.getPostThread", q, &out); err != nil {
		return ThreadView{}, err
	}
	return out.Thread, nil
}

// Followers fetches one page of app.bsky.graph.getFollowers
func (c *Client) Followers(ctx context.Context, actor, cursor string, limit int) (FollowersPage, error) {
	q := url.Values{"actor": {actor}}
	pageParams(q, cursor, limit)
	var out FollowersPage
	if err := c.get(ctx, "app.bsky.graph.getFollowers", q, &out); err != nil {
		return FollowersPage{}, err
	}
	return out, nil
}

// Follows fetches one page of app.bsky.graph.getFollows
func (c *Client) Follows(ctx context.Context, actor, cursor string, limit int) (FollowsPage, error) {
	q := url.Values{"actor": {actor}}
	pageParams(q, cursor, limit)
	var out FollowsPage
	if err := c.get(ctx, "app.bsky.graph.getFollows", q, &out); err != nil {
		return FollowsPage{}, err
	}
	return out, nil
}

func pageParams(q url.Values, cursor string, limit int) {
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
}
