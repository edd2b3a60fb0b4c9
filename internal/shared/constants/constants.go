package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	// Content Types
	ContentTypeJSON = "application/json"

	// Database table names
	TableVisitorSessions = "visitor_sessions"
	TableBenefits        = "benefits"
	TableTestimonials    = "testimonials"
	TableFAQs            = "faqs"
	TableSupportLogos    = "support_logos"
	TableTranslations    = "translations"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
