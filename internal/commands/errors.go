package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes carried by wrapped dispatcher errors. Hosts key retry and
// reporting decisions off these identifiers rather than the message text.
const (
	codeDispatchInvalid  = "WALA_DISPATCH_INVALID"
	codeDispatchCanceled = "WALA_DISPATCH_CANCELED"
	codeDispatchTimeout  = "WALA_DISPATCH_TIMEOUT"
	codeDispatchContext  = "WALA_DISPATCH_CONTEXT"
	codeDispatchFailed   = "WALA_DISPATCH_FAILED"
)

// dispatchValidationError categorises a rejected message. Errors a handler
// already wrapped pass through untouched so the innermost category wins.
func dispatchValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "dispatch rejected an invalid message").
		WithTextCode(codeDispatchInvalid)
}

// dispatchContextError categorises a context failure observed around handler
// execution, distinguishing cancellation from deadline expiry.
func dispatchContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "dispatch canceled before the handler finished").
			WithTextCode(codeDispatchCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "dispatch deadline exceeded").
			WithTextCode(codeDispatchTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "dispatch context failed").
			WithTextCode(codeDispatchContext)
	}
}

// dispatchExecuteError categorises a handler failure.
func dispatchExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "dispatch handler failed").
		WithTextCode(codeDispatchFailed)
}
