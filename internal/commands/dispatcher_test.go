package commands

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/pryank18/ArchaeologyWala/internal/content"
	"github.com/pryank18/ArchaeologyWala/internal/review"
	"github.com/pryank18/ArchaeologyWala/internal/store"
	"github.com/pryank18/ArchaeologyWala/internal/submissions"
	"github.com/pryank18/ArchaeologyWala/internal/workflow"
)

const testToken = "trowel-and-brush"

type dispatcherFixture struct {
	dispatcher *Dispatcher
	corpus     *content.Service
	queue      *submissions.Service
	gate       *review.Gate
}

func newDispatcherFixture(t *testing.T) *dispatcherFixture {
	t.Helper()
	ctx := context.Background()
	st := store.New(store.NewMemoryProvider())
	corpus := content.New(ctx, st)
	gate := review.NewGate(testToken)
	queue := submissions.New(ctx, st, corpus, gate, workflow.New())
	return &dispatcherFixture{
		dispatcher: NewDispatcher(corpus, queue, nil),
		corpus:     corpus,
		queue:      queue,
		gate:       gate,
	}
}

func (f *dispatcherFixture) enqueue(t *testing.T) int64 {
	t.Helper()
	sub, err := f.queue.Submit(context.Background(), submissions.SubmitRequest{
		Name:  "Meera",
		Email: "meera@example.com",
		Title: "Stratigraphy basics",
		Body:  "Layer by layer.",
		Agree: true,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	return sub.ID
}

func TestDispatcherToggleBookmark(t *testing.T) {
	f := newDispatcherFixture(t)
	ctx := context.Background()

	if err := f.dispatcher.ToggleBookmark(ctx, ToggleBookmarkCommand{Slug: "stratigraphy-basics"}); err != nil {
		t.Fatalf("ToggleBookmark: %v", err)
	}
	if got := f.corpus.Bookmarks(ctx); len(got) != 1 {
		t.Fatalf("expected one bookmark, got %#v", got)
	}
}

func TestDispatcherRejectsInvalidMessage(t *testing.T) {
	f := newDispatcherFixture(t)

	err := f.dispatcher.LikePost(context.Background(), LikePostCommand{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestDispatcherApproveWithoutSessionIsInert(t *testing.T) {
	f := newDispatcherFixture(t)
	ctx := context.Background()
	id := f.enqueue(t)

	if err := f.dispatcher.ApproveSubmission(ctx, ApproveSubmissionCommand{SubmissionID: id}); err != nil {
		t.Fatalf("locked approval must be a silent no-op, got %v", err)
	}
	if got := f.queue.Pending(ctx); len(got) != 1 {
		t.Fatalf("locked approval must not drain the queue, got %#v", got)
	}
	if got := f.corpus.Posts(ctx); len(got) != 0 {
		t.Fatalf("locked approval must not publish, got %#v", got)
	}
}

func TestDispatcherApproveWithSessionPublishes(t *testing.T) {
	f := newDispatcherFixture(t)
	ctx := context.Background()
	id := f.enqueue(t)

	session, err := f.gate.Unlock(testToken)
	if err != nil {
		t.Fatalf("Unlock: %v", err)
	}

	if err := f.dispatcher.ApproveSubmission(ctx, ApproveSubmissionCommand{SubmissionID: id, Session: session}); err != nil {
		t.Fatalf("ApproveSubmission: %v", err)
	}
	if !f.corpus.HasSlug("stratigraphy-basics") {
		t.Fatalf("approved submission must join the corpus")
	}
	if got := f.queue.Pending(ctx); len(got) != 0 {
		t.Fatalf("approved submission must leave the queue, got %#v", got)
	}
}

func TestDispatcherRejectWithoutSessionIsInert(t *testing.T) {
	f := newDispatcherFixture(t)
	ctx := context.Background()
	id := f.enqueue(t)

	if err := f.dispatcher.RejectSubmission(ctx, RejectSubmissionCommand{SubmissionID: id}); err != nil {
		t.Fatalf("locked rejection must be a silent no-op, got %v", err)
	}
	if got := f.queue.Pending(ctx); len(got) != 1 {
		t.Fatalf("locked rejection must not drain the queue, got %#v", got)
	}
}

func TestDispatcherSubmitValidatesAgreement(t *testing.T) {
	f := newDispatcherFixture(t)

	err := f.dispatcher.SubmitSubmission(context.Background(), SubmitSubmissionCommand{
		Name:  "Meera",
		Email: "meera@example.com",
		Title: "Stratigraphy basics",
		Body:  "Layer by layer.",
	})
	if err == nil {
		t.Fatal("expected validation error without agreement")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if got := f.queue.Pending(context.Background()); len(got) != 0 {
		t.Fatalf("failed submit must not enqueue, got %#v", got)
	}
}

func TestDispatcherAddComment(t *testing.T) {
	f := newDispatcherFixture(t)
	ctx := context.Background()

	if err := f.dispatcher.AddComment(ctx, AddCommentCommand{
		Slug: "stratigraphy-basics",
		Name: "Asha",
		Text: "Very clear write-up.",
	}); err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if got := f.corpus.Comments(ctx, "stratigraphy-basics"); len(got) != 1 {
		t.Fatalf("expected one comment, got %#v", got)
	}
}
