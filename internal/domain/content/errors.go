package content

import "errors"

var (
	ErrTitleRequired    = errors.New("title is required")
	ErrNameRequired     = errors.New("name is required")
	ErrCommentRequired  = errors.New("comment is required")
	ErrQuestionRequired = errors.New("question is required")
	ErrAnswerRequired   = errors.New("answer is required")
	ErrImageURLRequired = errors.New("image URL is required")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")

	ErrInvalidContentRow = errors.New("invalid content row")
	ErrNotFound          = errors.New("content not found")
)
