package submissions

import "errors"

var (
	// ErrSubmissionNotFound indicates the id does not match a pending submission.
	ErrSubmissionNotFound = errors.New("submissions: submission not found")
)
