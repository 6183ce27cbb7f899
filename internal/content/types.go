package content

import "time"

// Post is a published article in the corpus. Posts are immutable once
// published except by explicit replacement; the core never deletes them.
type Post struct {
	// Slug is the unique, stable identifier across the corpus.
	Slug    string    `json:"slug"`
	Title   string    `json:"title"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
	Hero    string    `json:"hero"`
	Tags    []string  `json:"tags"`
	Minutes int       `json:"minutes"`
	Body    string    `json:"body"`
}

// HasTag reports exact tag membership.
func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Comment is one entry in a post's append-only, newest-first thread.
type Comment struct {
	// ID is the creation timestamp in milliseconds, monotonic within a
	// session.
	ID   int64     `json:"id"`
	Name string    `json:"name"`
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

// Progress is a sparse completion record per learning track. An absent
// track key means zero progress.
type Progress map[string][]string

// Completed reports whether the milestone is recorded for the track.
func (p Progress) Completed(track, milestone string) bool {
	for _, m := range p[track] {
		if m == milestone {
			return true
		}
	}
	return false
}

// FilterByTag returns the posts carrying the exact tag, preserving input
// order. An empty tag selects everything. The filter is orthogonal to
// fuzzy search and composes with it by intersection before ranking.
func FilterByTag(posts []Post, tag string) []Post {
	if tag == "" {
		return posts
	}
	out := make([]Post, 0, len(posts))
	for _, post := range posts {
		if post.HasTag(tag) {
			out = append(out, post)
		}
	}
	return out
}
