package search

import (
	"testing"

	"github.com/pryank18/ArchaeologyWala/pkg/interfaces"
)

func corpus() []interfaces.SearchDocument {
	return []interfaces.SearchDocument{
		{
			Slug:  "pottery-101",
			Title: "Pottery 101",
			Tags:  []string{"ceramics", "typology"},
			Body:  "An introduction to wheel-thrown wares and kiln firing.",
		},
		{
			Slug:  "reading-stratigraphy",
			Title: "Reading Stratigraphy",
			Tags:  []string{"fieldwork"},
			Body:  "How excavators interpret layered deposits in a trench.",
		},
		{
			Slug:  "bronze-hoards",
			Title: "Bronze Hoards of the Deccan",
			Tags:  []string{"metallurgy"},
			Body:  "Hoard deposition patterns and axe typologies.",
		},
	}
}

func TestEmptyQueryReturnsWholeCorpus(t *testing.T) {
	idx := New()
	idx.Rebuild(corpus())

	got := idx.Search("")
	if len(got) != 3 {
		t.Fatalf("expected full corpus for empty query, got %#v", got)
	}
	if got[0] != "pottery-101" || got[1] != "reading-stratigraphy" || got[2] != "bronze-hoards" {
		t.Fatalf("expected corpus order preserved, got %#v", got)
	}

	if got := idx.Search("   "); len(got) != 3 {
		t.Fatalf("whitespace query must behave like empty, got %#v", got)
	}
}

func TestSearchMatchesTitleTagsAndBody(t *testing.T) {
	idx := New()
	idx.Rebuild(corpus())

	if got := idx.Search("pottery"); len(got) == 0 || got[0] != "pottery-101" {
		t.Fatalf("title match failed: %#v", got)
	}
	if got := idx.Search("metallurgy"); len(got) != 1 || got[0] != "bronze-hoards" {
		t.Fatalf("tag match failed: %#v", got)
	}
	if got := idx.Search("trench"); len(got) != 1 || got[0] != "reading-stratigraphy" {
		t.Fatalf("body match failed: %#v", got)
	}
}

func TestSearchToleratesTypos(t *testing.T) {
	idx := New()
	idx.Rebuild(corpus())

	// One substitution away from "pottery".
	if got := idx.Search("pottary"); len(got) == 0 || got[0] != "pottery-101" {
		t.Fatalf("typo match failed: %#v", got)
	}
}

func TestSearchRanksTitleAboveBody(t *testing.T) {
	idx := New()
	idx.Rebuild([]interfaces.SearchDocument{
		{Slug: "mentions-bronze", Title: "Survey methods", Body: "a passing note on bronze"},
		{Slug: "bronze-title", Title: "Bronze casting", Body: "crucibles and molds"},
	})

	got := idx.Search("bronze")
	if len(got) != 2 || got[0] != "bronze-title" {
		t.Fatalf("expected title hit ranked first, got %#v", got)
	}
}

func TestSearchRequiresEveryTerm(t *testing.T) {
	idx := New()
	idx.Rebuild(corpus())

	if got := idx.Search("pottery zeppelin"); len(got) != 0 {
		t.Fatalf("expected no results when a term cannot match, got %#v", got)
	}
}

func TestRebuildReplacesDocuments(t *testing.T) {
	idx := New()
	idx.Rebuild(corpus())

	idx.Rebuild([]interfaces.SearchDocument{
		{Slug: "only-one", Title: "Only One", Body: "short"},
	})

	if got := idx.Search(""); len(got) != 1 || got[0] != "only-one" {
		t.Fatalf("expected rebuilt index, got %#v", got)
	}
	if got := idx.Search("pottery"); len(got) != 0 {
		t.Fatalf("stale documents must be gone after rebuild, got %#v", got)
	}
}

func TestMaxResultsCapsRanking(t *testing.T) {
	idx := New(WithMaxResults(1))
	idx.Rebuild(corpus())

	if got := idx.Search("typology"); len(got) != 1 {
		t.Fatalf("expected capped results, got %#v", got)
	}
}
