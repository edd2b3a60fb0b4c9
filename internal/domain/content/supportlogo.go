package content

import (
	"strings"
	"time"
)

// SupportLogo is one partner/supporter logo. Image upload is handled
// elsewhere; the domain only stores the resulting URLs.
type SupportLogo struct {
	id           uint
	name         string
	imageURL     string
	websiteURL   string
	displayOrder int
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewSupportLogo creates a new active support logo.
func NewSupportLogo(name, imageURL, websiteURL string, displayOrder int) (*SupportLogo, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(imageURL) == "" {
		return nil, ErrImageURLRequired
	}

	now := time.Now().UTC()
	return &SupportLogo{
		name:         name,
		imageURL:     imageURL,
		websiteURL:   websiteURL,
		displayOrder: displayOrder,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructSupportLogo rebuilds a support logo from persistence.
func ReconstructSupportLogo(id uint, name, imageURL, websiteURL string, displayOrder int, active bool, createdAt, updatedAt time.Time) (*SupportLogo, error) {
	if id == 0 {
		return nil, ErrInvalidContentRow
	}
	if name == "" {
		return nil, ErrNameRequired
	}

	return &SupportLogo{
		id:           id,
		name:         name,
		imageURL:     imageURL,
		websiteURL:   websiteURL,
		displayOrder: displayOrder,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// Update replaces the editable fields.
func (l *SupportLogo) Update(name, imageURL, websiteURL string, displayOrder int, active bool) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(imageURL) == "" {
		return ErrImageURLRequired
	}

	l.name = name
	l.imageURL = imageURL
	l.websiteURL = websiteURL
	l.displayOrder = displayOrder
	l.active = active
	l.updatedAt = time.Now().UTC()
	return nil
}

// Deactivate soft-deletes the support logo.
func (l *SupportLogo) Deactivate() {
	l.active = false
	l.updatedAt = time.Now().UTC()
}

// SetDisplayOrder moves the logo within the section.
func (l *SupportLogo) SetDisplayOrder(order int) {
	l.displayOrder = order
	l.updatedAt = time.Now().UTC()
}

// SetID sets the row ID (only for persistence layer use)
func (l *SupportLogo) SetID(id uint) error {
	if l.id != 0 {
		return ErrInvalidContentRow
	}
	l.id = id
	return nil
}

func (l *SupportLogo) ID() uint             { return l.id }
func (l *SupportLogo) Name() string         { return l.name }
func (l *SupportLogo) ImageURL() string     { return l.imageURL }
func (l *SupportLogo) WebsiteURL() string   { return l.websiteURL }
func (l *SupportLogo) DisplayOrder() int    { return l.displayOrder }
func (l *SupportLogo) IsActive() bool       { return l.active }
func (l *SupportLogo) CreatedAt() time.Time { return l.createdAt }
func (l *SupportLogo) UpdatedAt() time.Time { return l.updatedAt }
