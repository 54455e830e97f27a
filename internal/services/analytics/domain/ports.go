package domain

import "context"

// FeedPort is the read surface of the remote social feed
// implementations do one network call per method and classify failures;
// retries, throttling, and caching are layered on by the service
type FeedPort interface {
	// Profile resolves a handle or DID to a full profile
	Profile(ctx context.Context, actor string) (Actor, error)

	// AuthorFeed returns one page of an actor's posts, newest first
	AuthorFeed(ctx context.Context, actor, cursor string, limit int, includeReplies bool) (FeedPage, error)

	// Likers returns one page of like events for a post
	Likers(ctx context.Context, postURI, cursor string, limit int) (LikesPage, error)

	// Reposters returns one page of actors who reposted a post
	Reposters(ctx context.Context, postURI, cursor string, limit int) (ActorsPage, error)

	// Replies returns the reply tree under a post down to depth
	Replies(ctx context.Context, postURI string, depth int) ([]Reply, error)

	// Followers returns one page of actors following actor
	Followers(ctx context.Context, actor, cursor string, limit int) (ActorsPage, error)

	// Following returns one page of actors that actor follows
	Following(ctx context.Context, actor, cursor string, limit int) (ActorsPage, error)

	// ViewerLikes returns one page of posts the actor has liked
	// needs an authed session for actors other than the session owner
	ViewerLikes(ctx context.Context, actor, cursor string, limit int) (FeedPage, error)
}

// Pinger reports remote feed liveness for readiness checks
type Pinger interface {
	Ping(ctx context.Context) error
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	EngagementRanking(ctx context.Context, in RankingInput) (RankingOutput, error)
	Suggestions(ctx context.Context, in SuggestionsInput) (SuggestionsOutput, error)
	ActivityProfile(ctx context.Context, in ActivityInput) (ActivityOutput, error)
}
