package content

import (
	"strings"
	"time"
)

// FAQ is one frequently-asked-question entry. The answer is stored as
// markdown; rendering to sanitized HTML happens in the application layer.
type FAQ struct {
	id           uint
	question     string
	answer       string
	displayOrder int
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewFAQ creates a new active FAQ entry.
func NewFAQ(question, answer string, displayOrder int) (*FAQ, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrQuestionRequired
	}
	if strings.TrimSpace(answer) == "" {
		return nil, ErrAnswerRequired
	}

	now := time.Now().UTC()
	return &FAQ{
		question:     question,
		answer:       answer,
		displayOrder: displayOrder,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructFAQ rebuilds an FAQ from persistence.
func ReconstructFAQ(id uint, question, answer string, displayOrder int, active bool, createdAt, updatedAt time.Time) (*FAQ, error) {
	if id == 0 {
		return nil, ErrInvalidContentRow
	}
	if question == "" {
		return nil, ErrQuestionRequired
	}

	return &FAQ{
		id:           id,
		question:     question,
		answer:       answer,
		displayOrder: displayOrder,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// Update replaces the editable fields.
func (f *FAQ) Update(question, answer string, displayOrder int, active bool) error {
	if strings.TrimSpace(question) == "" {
		return ErrQuestionRequired
	}
	if strings.TrimSpace(answer) == "" {
		return ErrAnswerRequired
	}

	f.question = question
	f.answer = answer
	f.displayOrder = displayOrder
	f.active = active
	f.updatedAt = time.Now().UTC()
	return nil
}

// Deactivate soft-deletes the FAQ.
func (f *FAQ) Deactivate() {
	f.active = false
	f.updatedAt = time.Now().UTC()
}

// SetDisplayOrder moves the FAQ within the section.
func (f *FAQ) SetDisplayOrder(order int) {
	f.displayOrder = order
	f.updatedAt = time.Now().UTC()
}

// SetID sets the row ID (only for persistence layer use)
func (f *FAQ) SetID(id uint) error {
	if f.id != 0 {
		return ErrInvalidContentRow
	}
	f.id = id
	return nil
}

func (f *FAQ) ID() uint             { return f.id }
func (f *FAQ) Question() string     { return f.question }
func (f *FAQ) Answer() string       { return f.answer }
func (f *FAQ) DisplayOrder() int    { return f.displayOrder }
func (f *FAQ) IsActive() bool       { return f.active }
func (f *FAQ) CreatedAt() time.Time { return f.createdAt }
func (f *FAQ) UpdatedAt() time.Time { return f.updatedAt }
