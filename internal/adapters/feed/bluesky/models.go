package bluesky

import "time"

// Actor is a partial profile document with the fields we use
type Actor struct {
	DID            string    `json:"did"`
	Handle         string    `json:"handle"`
	DisplayName    string    `json:"displayName"`
	Avatar         string    `json:"avatar"`
	Description    string    `json:"description"`
	FollowersCount int       `json:"followersCount"`
	FollowsCount   int       `json:"followsCount"`
	PostsCount     int       `json:"postsCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// PostRecord is the authored record embedded in a post view
type PostRecord struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	Reply     *struct {
		Parent struct {
			URI string `json:"uri"`
		} `json:"parent"`
	} `json:"reply,omitempty"`
}

// Post is a partial post view
type Post struct {
	URI         string     `json:"uri"`
	CID         string     `json:"cid"`
	Author      Actor      `json:"author"`
	Record      PostRecord `json:"record"`
	LikeCount   int        `json:"likeCount"`
	RepostCount int        `json:"repostCount"`
	ReplyCount  int        `json:"replyCount"`
	IndexedAt   time.Time  `json:"indexedAt"`
}

// IsReply reports whether the post replies to another post
func (p Post) IsReply() bool { return p.Record.Reply != nil }

// FeedItem is one entry of an author feed
type FeedItem struct {
	Post   Post `json:"post"`
	Reason *struct {
		Type string `json:"$type"`
		By   Actor  `json:"by"`
	} `json:"reason,omitempty"`
}

// IsRepost reports whether the feed item is a repost rather than an original
func (f FeedItem) IsRepost() bool { return f.Reason != nil }

// FeedPage is one page of app.bsky.feed.getAuthorFeed
type FeedPage struct {
	Feed   []FeedItem `json:"feed"`
	Cursor string     `json:"cursor"`
}

// Like is one entry of app.bsky.feed.getLikes
type Like struct {
	Actor     Actor     `json:"actor"`
	CreatedAt time.Time `json:"createdAt"`
	IndexedAt time.Time `json:"indexedAt"`
}

// LikesPage is one page of app.bsky.feed.getLikes
type LikesPage struct {
	Likes  []Like `json:"likes"`
	Cursor string `json:"cursor"`
}

// RepostedByPage is one page of app.bsky.feed.getRepostedBy
type RepostedByPage struct {
	RepostedBy []Actor `json:"repostedBy"`
	Cursor     string  `json:"cursor"`
}

// FollowersPage is one page of app.bsky.graph.getFollowers
type FollowersPage struct {
	Followers []Actor `json:"followers"`
	Cursor    string  `json:"cursor"`
}

// FollowsPage is one page of app.bsky.graph.getFollows
type FollowsPage struct {
	Follows []Actor `json:"follows"`
	Cursor  string  `json:"cursor"`
}

// ThreadView is the recursive reply tree of app.bsky.feed.getPostThread
type ThreadView struct {
	Post    *Post        `json:"post,omitempty"`
	Replies []ThreadView `json:"replies,omitempty"`
}

// threadEnvelope wraps the thread root
type threadEnvelope struct {
	Thread ThreadView `json:"thread"`
}
