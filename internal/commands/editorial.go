package commands

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pryank18/ArchaeologyWala/internal/review"
	"github.com/pryank18/ArchaeologyWala/internal/submissions"
	"github.com/pryank18/ArchaeologyWala/pkg/interfaces"
)

const (
	submitSubmissionMessageType  = "wala.submissions.submit"
	approveSubmissionMessageType = "wala.submissions.approve"
	rejectSubmissionMessageType  = "wala.submissions.reject"
)

// SubmitSubmissionCommand enqueues a reader submission for review.
type SubmitSubmissionCommand struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Affiliation string `json:"affiliation,omitempty"`
	Title       string `json:"title"`
	Tags        string `json:"tags,omitempty"`
	Cover       string `json:"cover,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Body        string `json:"body"`
	Agree       bool   `json:"agree"`
}

// Type implements command.Message.
func (SubmitSubmissionCommand) Type() string { return submitSubmissionMessageType }

// Validate delegates to the submission request contract so the message and
// the service agree on what a submittable draft looks like.
func (m SubmitSubmissionCommand) Validate() error {
	return m.request().Validate()
}

func (m SubmitSubmissionCommand) request() submissions.SubmitRequest {
	return submissions.SubmitRequest{
		Name:        m.Name,
		Email:       m.Email,
		Affiliation: m.Affiliation,
		Title:       m.Title,
		Tags:        m.Tags,
		Cover:       m.Cover,
		Summary:     m.Summary,
		Body:        m.Body,
		Agree:       m.Agree,
	}
}

// SubmitSubmissionHandler enqueues submissions via the submissions service.
type SubmitSubmissionHandler struct {
	inner *Handler[SubmitSubmissionCommand]
}

// NewSubmitSubmissionHandler constructs a handler wired to the submissions service.
func NewSubmitSubmissionHandler(service *submissions.Service, logger interfaces.Logger, opts ...HandlerOption[SubmitSubmissionCommand]) *SubmitSubmissionHandler {
	exec := func(ctx context.Context, msg SubmitSubmissionCommand) error {
		_, err := service.Submit(ctx, msg.request())
		return err
	}

	handlerOpts := []HandlerOption[SubmitSubmissionCommand]{
		WithLogger[SubmitSubmissionCommand](logger),
		WithOperation[SubmitSubmissionCommand]("submissions.submit"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SubmitSubmissionHandler{inner: NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[SubmitSubmissionCommand].Execute.
func (h *SubmitSubmissionHandler) Execute(ctx context.Context, msg SubmitSubmissionCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ApproveSubmissionCommand promotes a pending submission into a post.
type ApproveSubmissionCommand struct {
	SubmissionID int64           `json:"submission_id"`
	Session      *review.Session `json:"-"`
}

// Type implements command.Message.
func (ApproveSubmissionCommand) Type() string { return approveSubmissionMessageType }

// Validate ensures the message identifies a submission. The session is
// deliberately not validated here: a missing session makes the command inert
// rather than invalid.
func (m ApproveSubmissionCommand) Validate() error {
	errs := validation.Errors{}
	if m.SubmissionID <= 0 {
		errs["submission_id"] = validation.NewError("wala.submissions.approve.id_required", "submission_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApproveSubmissionHandler promotes submissions via the submissions service.
// A locked review gate downgrades the command to a logged no-op.
type ApproveSubmissionHandler struct {
	inner *Handler[ApproveSubmissionCommand]
}

// NewApproveSubmissionHandler constructs a handler wired to the submissions service.
func NewApproveSubmissionHandler(service *submissions.Service, logger interfaces.Logger, opts ...HandlerOption[ApproveSubmissionCommand]) *ApproveSubmissionHandler {
	exec := func(ctx context.Context, msg ApproveSubmissionCommand) error {
		_, err := service.Approve(ctx, msg.SubmissionID, msg.Session)
		return swallowLockedGate(err, logger, "submission approval ignored: review gate locked")
	}

	handlerOpts := []HandlerOption[ApproveSubmissionCommand]{
		WithLogger[ApproveSubmissionCommand](logger),
		WithOperation[ApproveSubmissionCommand]("submissions.approve"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ApproveSubmissionHandler{inner: NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ApproveSubmissionCommand].Execute.
func (h *ApproveSubmissionHandler) Execute(ctx context.Context, msg ApproveSubmissionCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RejectSubmissionCommand removes a pending submission from the queue.
type RejectSubmissionCommand struct {
	SubmissionID int64           `json:"submission_id"`
	Session      *review.Session `json:"-"`
}

// Type implements command.Message.
func (RejectSubmissionCommand) Type() string { return rejectSubmissionMessageType }

// Validate ensures the message identifies a submission.
func (m RejectSubmissionCommand) Validate() error {
	errs := validation.Errors{}
	if m.SubmissionID <= 0 {
		errs["submission_id"] = validation.NewError("wala.submissions.reject.id_required", "submission_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RejectSubmissionHandler removes submissions via the submissions service.
// A locked review gate downgrades the command to a logged no-op.
type RejectSubmissionHandler struct {
	inner *Handler[RejectSubmissionCommand]
}

// NewRejectSubmissionHandler constructs a handler wired to the submissions service.
func NewRejectSubmissionHandler(service *submissions.Service, logger interfaces.Logger, opts ...HandlerOption[RejectSubmissionCommand]) *RejectSubmissionHandler {
	exec := func(ctx context.Context, msg RejectSubmissionCommand) error {
		err := service.Reject(ctx, msg.SubmissionID, msg.Session)
		return swallowLockedGate(err, logger, "submission rejection ignored: review gate locked")
	}

	handlerOpts := []HandlerOption[RejectSubmissionCommand]{
		WithLogger[RejectSubmissionCommand](logger),
		WithOperation[RejectSubmissionCommand]("submissions.reject"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RejectSubmissionHandler{inner: NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[RejectSubmissionCommand].Execute.
func (h *RejectSubmissionHandler) Execute(ctx context.Context, msg RejectSubmissionCommand) error {
	return h.inner.Execute(ctx, msg)
}

// swallowLockedGate converts a locked-gate failure into an inert success so
// the mutation pipeline treats it as a no-op.
func swallowLockedGate(err error, logger interfaces.Logger, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, review.ErrReviewLocked) {
		if logger != nil {
			logger.Warn(msg)
		}
		return nil
	}
	return err
}
