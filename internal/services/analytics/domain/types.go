// Package domain holds the analytics contracts shared by transport, service,
// and the feed adapter
package domain

import "time"

// Actor is a feed identity
type Actor struct {
	DID            string `json:"did"`
	Handle         string `json:"handle"`
	DisplayName    string `json:"display_name,omitempty"`
	Avatar         string `json:"avatar,omitempty"`
	Bio            string `json:"bio,omitempty"`
	FollowersCount int    `json:"followers_count,omitempty"`
	FollowsCount   int    `json:"follows_count,omitempty"`
	PostsCount     int    `json:"posts_count,omitempty"`
}

// Post is one authored post with its received interaction counts
type Post struct {
	URI       string    `json:"uri"`
	Author    Actor     `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Likes     int       `json:"likes"`
	Reposts   int       `json:"reposts"`
	Replies   int       `json:"replies"`
	IsReply   bool      `json:"is_reply,omitempty"`
	IsRepost  bool      `json:"is_repost,omitempty"`
}

// FeedPage is one page of an author feed
type FeedPage struct {
	Posts  []Post
	Cursor string
}

// LikeEvent is one like with the moment it happened
type LikeEvent struct {
	Actor      Actor
	OccurredAt time.Time
}

// LikesPage is one page of likers for a post
type LikesPage struct {
	Likes  []LikeEvent
	Cursor string
}

// ActorsPage is one page of a follower or following listing
type ActorsPage struct {
	Actors []Actor
	Cursor string
}

// Reply is one reply in a post's thread, with its own children
type Reply struct {
	Author    Actor
	CreatedAt time.Time
	Replies   []Reply
}
