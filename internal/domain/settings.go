package domain

import "time"

// CompanySettingsID is the fixed id of the singleton settings row.
const CompanySettingsID = "company_settings"

type CompanySettings struct {
	ID             string    `json:"id"`
	CompanyName    string    `json:"company_name"`
	LogoURL        string    `json:"logo_url,omitempty"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	Timezone       string    `json:"timezone"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DefaultCompanySettings are persisted on first read.
func DefaultCompanySettings() *CompanySettings {
	return &CompanySettings{
		ID:             CompanySettingsID,
		CompanyName:    "My Company",
		PrimaryColor:   "#3b82f6",
		SecondaryColor: "#10b981",
		Timezone:       "UTC",
	}
}
