package store

// The persisted state layout is a flat namespace of string keys, one per
// entity class. Readers must tolerate a missing or malformed value for any
// key by substituting its documented default.
const (
	// KeyPosts holds the published corpus, newest-first. Default: empty list.
	KeyPosts = "posts"
	// KeyBookmarks holds the bookmarked slug set. Default: empty list.
	KeyBookmarks = "bookmarks"
	// KeyLikes holds the per-slug like counters. Default: empty map.
	KeyLikes = "likes"
	// KeySubmissions holds the pending submission queue, newest-first.
	// Default: empty list.
	KeySubmissions = "submissions"
	// KeyLearningTrack holds per-track completed milestone sets. Default:
	// empty map.
	KeyLearningTrack = "learningTrack"
	// KeyFontScale holds the reader's font size multiplier. Default: 1.0.
	KeyFontScale = "fontScale"
	// KeyDarkMode holds the dark mode preference. Default: false.
	KeyDarkMode = "darkMode"
	// KeyReviewToken holds the last credential the reviewer unlocked with.
	// Default: empty string.
	KeyReviewToken = "reviewToken"

	// commentKeyPrefix scopes comment threads per post slug.
	commentKeyPrefix = "comments:"
)

// CommentsKey returns the storage key for a post's comment thread.
func CommentsKey(slug string) string {
	return commentKeyPrefix + slug
}
