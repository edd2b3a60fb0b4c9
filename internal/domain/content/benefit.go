// Package content provides domain models for the marketing-site content:
// benefits, testimonials, FAQs, and partner support logos. All content is
// soft-deleted: delete means active=false, and public listings only show
// active rows ordered by display order.
package content

import (
	"strings"
	"time"
)

// Benefit is one entry of the landing page's benefits section.
type Benefit struct {
	id           uint
	title        string
	description  string
	displayOrder int
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewBenefit creates a new active benefit.
func NewBenefit(title, description string, displayOrder int) (*Benefit, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}

	now := time.Now().UTC()
	return &Benefit{
		title:        title,
		description:  description,
		displayOrder: displayOrder,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructBenefit rebuilds a benefit from persistence.
func ReconstructBenefit(id uint, title, description string, displayOrder int, active bool, createdAt, updatedAt time.Time) (*Benefit, error) {
	if id == 0 {
		return nil, ErrInvalidContentRow
	}
	if title == "" {
		return nil, ErrTitleRequired
	}

	return &Benefit{
		id:           id,
		title:        title,
		description:  description,
		displayOrder: displayOrder,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// Update replaces the editable fields.
func (b *Benefit) Update(title, description string, displayOrder int, active bool) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}

	b.title = title
	b.description = description
	b.displayOrder = displayOrder
	b.active = active
	b.updatedAt = time.Now().UTC()
	return nil
}

// Deactivate soft-deletes the benefit.
func (b *Benefit) Deactivate() {
	b.active = false
	b.updatedAt = time.Now().UTC()
}

// SetDisplayOrder moves the benefit within the section.
func (b *Benefit) SetDisplayOrder(order int) {
	b.displayOrder = order
	b.updatedAt = time.Now().UTC()
}

// SetID sets the row ID (only for persistence layer use)
func (b *Benefit) SetID(id uint) error {
	if b.id != 0 {
		return ErrInvalidContentRow
	}
	b.id = id
	return nil
}

func (b *Benefit) ID() uint             { return b.id }
func (b *Benefit) Title() string        { return b.title }
func (b *Benefit) Description() string  { return b.description }
func (b *Benefit) DisplayOrder() int    { return b.displayOrder }
func (b *Benefit) IsActive() bool       { return b.active }
func (b *Benefit) CreatedAt() time.Time { return b.createdAt }
func (b *Benefit) UpdatedAt() time.Time { return b.updatedAt }
