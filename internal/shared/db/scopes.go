// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"gorm.io/gorm"
)

// ActiveContent is a GORM scope that filters for non-soft-deleted content
// rows. Content entities carry an `active` flag instead of a deleted_at
// column; delete means active=false.
//
// Example usage:
//
//	db.Model(&BenefitModel{}).Scopes(db.ActiveContent()).Find(&results)
func ActiveContent() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("active = ?", true)
	}
}

// OrderedByDisplay is a GORM scope that orders content rows by their
// display_order column ascending.
func OrderedByDisplay() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC")
	}
}
