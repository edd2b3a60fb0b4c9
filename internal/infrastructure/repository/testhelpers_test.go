package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ilmpay/ilmpay/internal/infrastructure/persistence/models"
)

// newTestDB opens an isolated in-memory SQLite database with the schema
// migrated. The pure-Go driver keeps repository tests free of cgo.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&models.VisitorSessionModel{},
		&models.BenefitModel{},
		&models.TestimonialModel{},
		&models.FAQModel{},
		&models.SupportLogoModel{},
		&models.TranslationModel{},
	))

	return gdb
}

func utcTime(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
}
