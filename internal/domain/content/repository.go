package content

import "context"

// BenefitRepository is the persistence port for benefits.
type BenefitRepository interface {
	Create(ctx context.Context, benefit *Benefit) error
	Update(ctx context.Context, benefit *Benefit) error
	GetByID(ctx context.Context, id uint) (*Benefit, error)
	ListActive(ctx context.Context) ([]*Benefit, error)
	ListActiveByIDs(ctx context.Context, ids []uint) ([]*Benefit, error)
}

// TestimonialRepository is the persistence port for testimonials.
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *Testimonial) error
	Update(ctx context.Context, testimonial *Testimonial) error
	GetByID(ctx context.Context, id uint) (*Testimonial, error)
	ListActive(ctx context.Context) ([]*Testimonial, error)
	ListActiveByIDs(ctx context.Context, ids []uint) ([]*Testimonial, error)
}

// FAQRepository is the persistence port for FAQs.
type FAQRepository interface {
	Create(ctx context.Context, faq *FAQ) error
	Update(ctx context.Context, faq *FAQ) error
	GetByID(ctx context.Context, id uint) (*FAQ, error)
	ListActive(ctx context.Context) ([]*FAQ, error)
	ListActiveByIDs(ctx context.Context, ids []uint) ([]*FAQ, error)
}

// SupportLogoRepository is the persistence port for support logos.
type SupportLogoRepository interface {
	Create(ctx context.Context, logo *SupportLogo) error
	Update(ctx context.Context, logo *SupportLogo) error
	GetByID(ctx context.Context, id uint) (*SupportLogo, error)
	ListActive(ctx context.Context) ([]*SupportLogo, error)
	ListActiveByIDs(ctx context.Context, ids []uint) ([]*SupportLogo, error)
}
