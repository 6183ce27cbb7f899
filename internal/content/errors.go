package content

import "errors"

var (
	ErrSlugRequired = errors.New("content: slug is required")
	ErrSlugInvalid  = errors.New("content: slug contains invalid characters")
	ErrSlugExists   = errors.New("content: slug already exists")
	ErrPostNotFound = errors.New("content: post not found")
)
