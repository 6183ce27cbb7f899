package submissions

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// StatusPending is the only persisted submission status; reviewed
// submissions leave the queue instead of changing status in place.
const StatusPending = "pending"

// Submission is a reader-contributed draft awaiting editorial review.
type Submission struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Affiliation string    `json:"affiliation,omitempty"`
	Title       string    `json:"title"`
	Tags        string    `json:"tags,omitempty"`
	Cover       string    `json:"cover,omitempty"`
	Summary     string    `json:"summary,omitempty"`
	Body        string    `json:"body"`
	Agree       bool      `json:"agree"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
}

// SubmitRequest carries the fields a contributor fills in.
type SubmitRequest struct {
	Name        string
	Email       string
	Affiliation string
	Title       string
	Tags        string
	Cover       string
	Summary     string
	Body        string
	Agree       bool
}

// Validate enforces the submission contract: identity and content fields are
// required, the email must parse, and the terms box must be ticked.
func (r SubmitRequest) Validate() error {
	return validation.Errors{
		"name":  validation.Validate(r.Name, validation.Required),
		"email": validation.Validate(r.Email, validation.Required, is.Email),
		"title": validation.Validate(r.Title, validation.Required),
		"body":  validation.Validate(r.Body, validation.Required),
		"agree": validation.Validate(r.Agree, validation.Required.Error("terms must be accepted")),
	}.Filter()
}
