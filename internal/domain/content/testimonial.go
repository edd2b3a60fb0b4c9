package content

import (
	"strings"
	"time"
)

// Testimonial is one student testimonial shown on the landing page.
type Testimonial struct {
	id           uint
	name         string
	comment      string
	avatarURL    string
	rating       int
	displayOrder int
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewTestimonial creates a new active testimonial. Rating is 1 to 5 stars.
func NewTestimonial(name, comment, avatarURL string, rating, displayOrder int) (*Testimonial, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(comment) == "" {
		return nil, ErrCommentRequired
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	now := time.Now().UTC()
	return &Testimonial{
		name:         name,
		comment:      comment,
		avatarURL:    avatarURL,
		rating:       rating,
		displayOrder: displayOrder,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructTestimonial rebuilds a testimonial from persistence.
func ReconstructTestimonial(id uint, name, comment, avatarURL string, rating, displayOrder int, active bool, createdAt, updatedAt time.Time) (*Testimonial, error) {
	if id == 0 {
		return nil, ErrInvalidContentRow
	}
	if name == "" {
		return nil, ErrNameRequired
	}

	return &Testimonial{
		id:           id,
		name:         name,
		comment:      comment,
		avatarURL:    avatarURL,
		rating:       rating,
		displayOrder: displayOrder,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// Update replaces the editable fields.
func (t *Testimonial) Update(name, comment, avatarURL string, rating, displayOrder int, active bool) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(comment) == "" {
		return ErrCommentRequired
	}
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	t.name = name
	t.comment = comment
	t.avatarURL = avatarURL
	t.rating = rating
	t.displayOrder = displayOrder
	t.active = active
	t.updatedAt = time.Now().UTC()
	return nil
}

// Deactivate soft-deletes the testimonial.
func (t *Testimonial) Deactivate() {
	t.active = false
	t.updatedAt = time.Now().UTC()
}

// SetDisplayOrder moves the testimonial within the section.
func (t *Testimonial) SetDisplayOrder(order int) {
	t.displayOrder = order
	t.updatedAt = time.Now().UTC()
}

// SetID sets the row ID (only for persistence layer use)
func (t *Testimonial) SetID(id uint) error {
	if t.id != 0 {
		return ErrInvalidContentRow
	}
	t.id = id
	return nil
}

func (t *Testimonial) ID() uint             { return t.id }
func (t *Testimonial) Name() string         { return t.name }
func (t *Testimonial) Comment() string      { return t.comment }
func (t *Testimonial) AvatarURL() string    { return t.avatarURL }
func (t *Testimonial) Rating() int          { return t.rating }
func (t *Testimonial) DisplayOrder() int    { return t.displayOrder }
func (t *Testimonial) IsActive() bool       { return t.active }
func (t *Testimonial) CreatedAt() time.Time { return t.createdAt }
func (t *Testimonial) UpdatedAt() time.Time { return t.updatedAt }
