package commands

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pryank18/ArchaeologyWala/internal/content"
	"github.com/pryank18/ArchaeologyWala/pkg/interfaces"
)

const (
	toggleBookmarkMessageType = "wala.content.toggle_bookmark"
	likePostMessageType       = "wala.content.like_post"
	addCommentMessageType     = "wala.content.add_comment"
)

// ToggleBookmarkCommand flips the bookmark state of a post slug.
type ToggleBookmarkCommand struct {
	Slug string `json:"slug"`
}

// Type implements command.Message.
func (ToggleBookmarkCommand) Type() string { return toggleBookmarkMessageType }

// Validate ensures the message carries a slug.
func (m ToggleBookmarkCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Slug) == "" {
		errs["slug"] = validation.NewError("wala.content.toggle_bookmark.slug_required", "slug is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToggleBookmarkHandler flips bookmarks via the content service.
type ToggleBookmarkHandler struct {
	inner *Handler[ToggleBookmarkCommand]
}

// NewToggleBookmarkHandler constructs a handler wired to the content service.
func NewToggleBookmarkHandler(service *content.Service, logger interfaces.Logger, opts ...HandlerOption[ToggleBookmarkCommand]) *ToggleBookmarkHandler {
	exec := func(ctx context.Context, msg ToggleBookmarkCommand) error {
		service.ToggleBookmark(ctx, msg.Slug)
		return nil
	}

	handlerOpts := []HandlerOption[ToggleBookmarkCommand]{
		WithLogger[ToggleBookmarkCommand](logger),
		WithOperation[ToggleBookmarkCommand]("content.toggle_bookmark"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ToggleBookmarkHandler{inner: NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ToggleBookmarkCommand].Execute.
func (h *ToggleBookmarkHandler) Execute(ctx context.Context, msg ToggleBookmarkCommand) error {
	return h.inner.Execute(ctx, msg)
}

// LikePostCommand increments the like counter of a post slug.
type LikePostCommand struct {
	Slug string `json:"slug"`
}

// Type implements command.Message.
func (LikePostCommand) Type() string { return likePostMessageType }

// Validate ensures the message carries a slug.
func (m LikePostCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Slug) == "" {
		errs["slug"] = validation.NewError("wala.content.like_post.slug_required", "slug is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LikePostHandler increments like counters via the content service.
type LikePostHandler struct {
	inner *Handler[LikePostCommand]
}

// NewLikePostHandler constructs a handler wired to the content service.
func NewLikePostHandler(service *content.Service, logger interfaces.Logger, opts ...HandlerOption[LikePostCommand]) *LikePostHandler {
	exec := func(ctx context.Context, msg LikePostCommand) error {
		service.Like(ctx, msg.Slug)
		return nil
	}

	handlerOpts := []HandlerOption[LikePostCommand]{
		WithLogger[LikePostCommand](logger),
		WithOperation[LikePostCommand]("content.like_post"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &LikePostHandler{inner: NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[LikePostCommand].Execute.
func (h *LikePostHandler) Execute(ctx context.Context, msg LikePostCommand) error {
	return h.inner.Execute(ctx, msg)
}

// AddCommentCommand appends a comment to a post thread.
type AddCommentCommand struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	Text string `json:"text"`
}

// Type implements command.Message.
func (AddCommentCommand) Type() string { return addCommentMessageType }

// Validate ensures the message carries the fields the thread requires.
func (m AddCommentCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Slug) == "" {
		errs["slug"] = validation.NewError("wala.content.add_comment.slug_required", "slug is required")
	}
	if strings.TrimSpace(m.Name) == "" {
		errs["name"] = validation.NewError("wala.content.add_comment.name_required", "name is required")
	}
	if strings.TrimSpace(m.Text) == "" {
		errs["text"] = validation.NewError("wala.content.add_comment.text_required", "text is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AddCommentHandler appends comments via the content service.
type AddCommentHandler struct {
	inner *Handler[AddCommentCommand]
}

// NewAddCommentHandler constructs a handler wired to the content service.
func NewAddCommentHandler(service *content.Service, logger interfaces.Logger, opts ...HandlerOption[AddCommentCommand]) *AddCommentHandler {
	exec := func(ctx context.Context, msg AddCommentCommand) error {
		_, err := service.AddComment(ctx, msg.Slug, msg.Name, msg.Text)
		return err
	}

	handlerOpts := []HandlerOption[AddCommentCommand]{
		WithLogger[AddCommentCommand](logger),
		WithOperation[AddCommentCommand]("content.add_comment"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &AddCommentHandler{inner: NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[AddCommentCommand].Execute.
func (h *AddCommentHandler) Execute(ctx context.Context, msg AddCommentCommand) error {
	return h.inner.Execute(ctx, msg)
}
