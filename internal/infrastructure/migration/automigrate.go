package migration

import (
	"github.com/ilmpay/ilmpay/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model the development
// auto-migration strategy manages.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.VisitorSessionModel{},
		&models.BenefitModel{},
		&models.TestimonialModel{},
		&models.FAQModel{},
		&models.SupportLogoModel{},
		&models.TranslationModel{},
	}
}
