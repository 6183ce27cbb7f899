package wala

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/pryank18/ArchaeologyWala/internal/store"
)

func newModule(t *testing.T, mutate func(*Config)) *Module {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Review.Token = "trowel-and-brush"
	if mutate != nil {
		mutate(&cfg)
	}
	module, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })
	return module
}

func TestModuleRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Driver = "postgres"
	if _, err := New(context.Background(), cfg); err == nil {
		t.Fatal("expected config validation failure")
	}
}

func TestModuleSeedAndSearch(t *testing.T) {
	module := newModule(t, nil)
	ctx := context.Background()

	seeds := fstest.MapFS{
		"posts/pottery.md": &fstest.MapFile{Data: []byte(`---
title: Pottery 101
author: Priya
date: 2026-01-10
tags: [ceramics]
---
Sorting sherds by fabric and firing temperature.`)},
		"posts/survey.md": &fstest.MapFile{Data: []byte(`---
title: Walking the survey grid
author: Priya
date: 2026-02-01
tags: [fieldwork]
---
Transects, test pits, and a lot of patience.`)},
	}

	added, err := module.LoadSeed(ctx, seeds)
	if err != nil {
		t.Fatalf("LoadSeed: %v", err)
	}
	if added != 2 {
		t.Fatalf("expected 2 seeded posts, got %d", added)
	}

	// Empty query reproduces the corpus newest-first.
	all := module.Search("")
	if len(all) != 2 || all[0] != "walking-the-survey-grid" {
		t.Fatalf("unexpected empty-query result: %#v", all)
	}

	// A typo still finds the pottery post.
	if got := module.Search("pottary"); len(got) == 0 || got[0] != "pottery-101" {
		t.Fatalf("expected fuzzy match on pottery-101, got %#v", got)
	}

	// Tag filter composes with ranking.
	if got := module.SearchTagged(ctx, "", "fieldwork"); len(got) != 1 || got[0] != "walking-the-survey-grid" {
		t.Fatalf("unexpected tagged result: %#v", got)
	}
}

func TestModuleEditorialPipeline(t *testing.T) {
	module := newModule(t, nil)
	ctx := context.Background()

	submit := func() int64 {
		sub, err := module.Submissions().Submit(ctx, SubmitRequest{
			Name:  "Meera",
			Email: "meera@example.com",
			Title: "Kiln firings of the Deccan",
			Tags:  "ceramics, kilns",
			Body:  strings.Repeat("Reduction firing leaves a grey core. ", 40),
			Agree: true,
		})
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		return sub.ID
	}

	// Without a session the editorial commands are inert.
	id := submit()
	if err := module.Commands().ApproveSubmission(ctx, ApproveSubmissionCommand{SubmissionID: id}); err != nil {
		t.Fatalf("locked approve must be inert, got %v", err)
	}
	if got := module.Submissions().Pending(ctx); len(got) != 1 {
		t.Fatalf("locked approve must not drain the queue, got %#v", got)
	}

	if _, err := module.Unlock(ctx, "wrong-token"); err == nil {
		t.Fatal("expected unlock rejection")
	}
	session, err := module.Unlock(ctx, "trowel-and-brush")
	if err != nil {
		t.Fatalf("Unlock: %v", err)
	}

	if err := module.Commands().ApproveSubmission(ctx, ApproveSubmissionCommand{SubmissionID: id, Session: session}); err != nil {
		t.Fatalf("ApproveSubmission: %v", err)
	}
	if !module.Content().HasSlug("kiln-firings-of-the-deccan") {
		t.Fatal("approved submission must join the corpus")
	}

	// The index picks up the new post without an explicit rebuild.
	if got := module.Search("kiln"); len(got) == 0 || got[0] != "kiln-firings-of-the-deccan" {
		t.Fatalf("expected approved post in the index, got %#v", got)
	}

	// Reject drains the queue without publishing.
	id = submit()
	if err := module.Commands().RejectSubmission(ctx, RejectSubmissionCommand{SubmissionID: id, Session: session}); err != nil {
		t.Fatalf("RejectSubmission: %v", err)
	}
	if got := module.Submissions().Pending(ctx); len(got) != 0 {
		t.Fatalf("rejected submission must leave the queue, got %#v", got)
	}
}

func TestReviewCredentialSurvivesRestart(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "wala.db")
	ctx := context.Background()

	first := newModule(t, func(cfg *Config) {
		cfg.Storage.Driver = "sqlite"
		cfg.Storage.DSN = dsn
	})
	if _, err := first.Unlock(ctx, "trowel-and-brush"); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if got := store.Load(ctx, first.Store(), store.KeyReviewToken, ""); got != "trowel-and-brush" {
		t.Fatalf("expected accepted credential persisted, got %q", got)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// A fresh construction without a configured token falls back to the
	// persisted credential.
	second := newModule(t, func(cfg *Config) {
		cfg.Storage.Driver = "sqlite"
		cfg.Storage.DSN = dsn
		cfg.Review.Token = ""
	})
	if _, err := second.Unlock(ctx, "wrong-token"); err == nil {
		t.Fatal("expected unlock rejection for a stale candidate")
	}
	if _, err := second.Unlock(ctx, "trowel-and-brush"); err != nil {
		t.Fatalf("expected persisted credential to unlock, got %v", err)
	}
}

func TestModulePreviewAnnotatesGlossary(t *testing.T) {
	module := newModule(t, nil)

	html, err := module.Preview("We catalogued the sherds in situ.")
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if !strings.Contains(string(html), `class="glossary-term"`) {
		t.Fatalf("expected glossary annotation, got %s", html)
	}
}

func TestModuleInteractionCommands(t *testing.T) {
	module := newModule(t, nil)
	ctx := context.Background()

	if err := module.Content().AddPost(ctx, Post{Slug: "pottery-101", Title: "Pottery 101"}); err != nil {
		t.Fatalf("AddPost: %v", err)
	}

	if err := module.Commands().ToggleBookmark(ctx, ToggleBookmarkCommand{Slug: "pottery-101"}); err != nil {
		t.Fatalf("ToggleBookmark: %v", err)
	}
	if err := module.Commands().ToggleBookmark(ctx, ToggleBookmarkCommand{Slug: "pottery-101"}); err != nil {
		t.Fatalf("ToggleBookmark: %v", err)
	}
	if got := module.Content().Bookmarks(ctx); len(got) != 0 {
		t.Fatalf("double toggle must restore state, got %#v", got)
	}

	if err := module.Commands().LikePost(ctx, LikePostCommand{Slug: "pottery-101"}); err != nil {
		t.Fatalf("LikePost: %v", err)
	}
	if got := module.Content().Likes(ctx)["pottery-101"]; got != 1 {
		t.Fatalf("expected one like, got %d", got)
	}
}
