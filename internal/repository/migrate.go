package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every repository model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&sessionModel{},
		&workOrderModel{},
		&commentModel{},
		&costEntryModel{},
		&maintenanceModel{},
		&notificationModel{},
		&settingsModel{},
		&counterModel{},
	)
}
