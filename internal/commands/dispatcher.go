package commands

import (
	"context"

	"github.com/pryank18/ArchaeologyWala/internal/content"
	"github.com/pryank18/ArchaeologyWala/internal/submissions"
	"github.com/pryank18/ArchaeologyWala/pkg/interfaces"
)

// Dispatcher is the single state-change entry point. Every mutation travels
// through a command message so validation, logging, and error categorisation
// are applied uniformly.
type Dispatcher struct {
	toggleBookmark *ToggleBookmarkHandler
	likePost       *LikePostHandler
	addComment     *AddCommentHandler
	submit         *SubmitSubmissionHandler
	approve        *ApproveSubmissionHandler
	reject         *RejectSubmissionHandler
}

// NewDispatcher wires the mutation handlers to their services.
func NewDispatcher(corpus *content.Service, queue *submissions.Service, logger interfaces.Logger) *Dispatcher {
	return &Dispatcher{
		toggleBookmark: NewToggleBookmarkHandler(corpus, logger),
		likePost:       NewLikePostHandler(corpus, logger),
		addComment:     NewAddCommentHandler(corpus, logger),
		submit:         NewSubmitSubmissionHandler(queue, logger),
		approve:        NewApproveSubmissionHandler(queue, logger),
		reject:         NewRejectSubmissionHandler(queue, logger),
	}
}

// ToggleBookmark dispatches a bookmark toggle.
func (d *Dispatcher) ToggleBookmark(ctx context.Context, msg ToggleBookmarkCommand) error {
	return d.toggleBookmark.Execute(ctx, msg)
}

// LikePost dispatches a like increment.
func (d *Dispatcher) LikePost(ctx context.Context, msg LikePostCommand) error {
	return d.likePost.Execute(ctx, msg)
}

// AddComment dispatches a comment append.
func (d *Dispatcher) AddComment(ctx context.Context, msg AddCommentCommand) error {
	return d.addComment.Execute(ctx, msg)
}

// SubmitSubmission dispatches a submission intake.
func (d *Dispatcher) SubmitSubmission(ctx context.Context, msg SubmitSubmissionCommand) error {
	return d.submit.Execute(ctx, msg)
}

// ApproveSubmission dispatches an approval. Without an unlocked session the
// command is an inert no-op.
func (d *Dispatcher) ApproveSubmission(ctx context.Context, msg ApproveSubmissionCommand) error {
	return d.approve.Execute(ctx, msg)
}

// RejectSubmission dispatches a rejection. Without an unlocked session the
// command is an inert no-op.
func (d *Dispatcher) RejectSubmission(ctx context.Context, msg RejectSubmissionCommand) error {
	return d.reject.Execute(ctx, msg)
}
