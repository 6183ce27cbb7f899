package interfaces

// SearchIndex answers fuzzy free-text queries over the published corpus.
// The index is a projection of the corpus: any corpus mutation must be
// followed by Rebuild before the next query, staleness is a correctness
// bug rather than an approximation.
type SearchIndex interface {
	// Rebuild replaces the indexed documents with the supplied corpus.
	Rebuild(posts []SearchDocument)
	// Search returns the slugs of matching posts ranked by relevance. An
	// empty query returns every indexed slug in corpus order.
	Search(query string) []string
}

// SearchDocument is the indexed projection of a post.
type SearchDocument struct {
	Slug  string
	Title string
	Tags  []string
	Body  string
}
