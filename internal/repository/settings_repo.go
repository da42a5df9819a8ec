package repository

import (
	"context"
	"time"

	"maintdesk/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

type settingsModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	CompanyName    string    `gorm:"column:company_name"`
	LogoURL        *string   `gorm:"column:logo_url"`
	PrimaryColor   string    `gorm:"column:primary_color"`
	SecondaryColor string    `gorm:"column:secondary_color"`
	Timezone       string    `gorm:"column:timezone"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (settingsModel) TableName() string { return "company_settings" }

func toDomainSettings(m settingsModel) *domain.CompanySettings {
	var logo string
	if m.LogoURL != nil {
		logo = *m.LogoURL
	}
	return &domain.CompanySettings{
		ID:             m.ID,
		CompanyName:    m.CompanyName,
		LogoURL:        logo,
		PrimaryColor:   m.PrimaryColor,
		SecondaryColor: m.SecondaryColor,
		Timezone:       m.Timezone,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.CompanySettings, error) {
	var m settingsModel
	tx := r.db.WithContext(ctx).Where("id = ?", domain.CompanySettingsID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSettings(m), nil
}

func (r *SettingsRepository) Create(ctx context.Context, s *domain.CompanySettings) error {
	var logo *string
	if s.LogoURL != "" {
		v := s.LogoURL
		logo = &v
	}
	m := settingsModel{
		ID:             s.ID,
		CompanyName:    s.CompanyName,
		LogoURL:        logo,
		PrimaryColor:   s.PrimaryColor,
		SecondaryColor: s.SecondaryColor,
		Timezone:       s.Timezone,
		UpdatedAt:      s.UpdatedAt,
	}
	// Two readers can race on first access; the later insert is a no-op.
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSettings(m)
	return nil
}

func (r *SettingsRepository) UpdateFields(ctx context.Context, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&settingsModel{}).
		Where("id = ?", domain.CompanySettingsID).
		Updates(fields).Error
}
