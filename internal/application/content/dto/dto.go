// Package dto defines request and response shapes for the content services.
package dto

// BenefitResponse is the public representation of a benefit.
type BenefitResponse struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
	Active       bool   `json:"active"`
}

// CreateBenefitRequest creates a new benefit.
type CreateBenefitRequest struct {
	Title        string `json:"title" validate:"required,max=255"`
	Description  string `json:"description" validate:"max=2000"`
	DisplayOrder int    `json:"displayOrder" validate:"gte=0"`
}

// UpdateBenefitRequest replaces a benefit's editable fields.
type UpdateBenefitRequest struct {
	Title        string `json:"title" validate:"required,max=255"`
	Description  string `json:"description" validate:"max=2000"`
	DisplayOrder int    `json:"displayOrder" validate:"gte=0"`
	Active       bool   `json:"active"`
}

// TestimonialResponse is the public representation of a testimonial.
type TestimonialResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Comment      string `json:"comment"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
	Rating       int    `json:"rating"`
	DisplayOrder int    `json:"displayOrder"`
	Active       bool   `json:"active"`
}

// CreateTestimonialRequest creates a new testimonial.
type CreateTestimonialRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Comment      string `json:"comment" validate:"required,max=2000"`
	AvatarURL    string `json:"avatarUrl" validate:"omitempty,url,max=512"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	DisplayOrder int    `json:"displayOrder" validate:"gte=0"`
}

// UpdateTestimonialRequest replaces a testimonial's editable fields.
type UpdateTestimonialRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Comment      string `json:"comment" validate:"required,max=2000"`
	AvatarURL    string `json:"avatarUrl" validate:"omitempty,url,max=512"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	DisplayOrder int    `json:"displayOrder" validate:"gte=0"`
	Active       bool   `json:"active"`
}

// FAQResponse is the public representation of a FAQ entry. Answer carries
// the raw markdown source; AnswerHTML carries the rendered, sanitized HTML.
type FAQResponse struct {
	ID           uint   `json:"id"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	AnswerHTML   string `json:"answerHtml"`
	DisplayOrder int    `json:"displayOrder"`
	Active       bool   `json:"active"`
}

// CreateFAQRequest creates a new FAQ entry.
type CreateFAQRequest struct {
	Question     string `json:"question" validate:"required,max=512"`
	Answer       string `json:"answer" validate:"required,max=10000"`
	DisplayOrder int    `json:"displayOrder" validate:"gte=0"`
}

// UpdateFAQRequest replaces a FAQ entry's editable fields.
type UpdateFAQRequest struct {
	Question     string `json:"question" validate:"required,max=512"`
	Answer       string `json:"answer" validate:"required,max=10000"`
	DisplayOrder int    `json:"displayOrder" validate:"gte=0"`
	Active       bool   `json:"active"`
}

// SupportLogoResponse is the public representation of a support logo.
type SupportLogoResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	ImageURL     string `json:"imageUrl"`
	WebsiteURL   string `json:"websiteUrl,omitempty"`
	DisplayOrder int    `json:"displayOrder"`
	Active       bool   `json:"active"`
}

// CreateSupportLogoRequest creates a new support logo.
type CreateSupportLogoRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	ImageURL     string `json:"imageUrl" validate:"required,url,max=512"`
	WebsiteURL   string `json:"websiteUrl" validate:"omitempty,url,max=512"`
	DisplayOrder int    `json:"displayOrder" validate:"gte=0"`
}

// UpdateSupportLogoRequest replaces a support logo's editable fields.
type UpdateSupportLogoRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	ImageURL     string `json:"imageUrl" validate:"required,url,max=512"`
	WebsiteURL   string `json:"websiteUrl" validate:"omitempty,url,max=512"`
	DisplayOrder int    `json:"displayOrder" validate:"gte=0"`
	Active       bool   `json:"active"`
}

// ReorderRequest assigns new display positions. IDs are listed in the
// desired order; position is the index in the list.
type ReorderRequest struct {
	IDs []uint `json:"ids" validate:"required,min=1,dive,gt=0"`
}
