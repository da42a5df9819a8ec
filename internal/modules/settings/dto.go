package settings

type UpdateSettingsRequest struct {
	CompanyName    *string `json:"company_name"`
	LogoURL        *string `json:"logo_url"`
	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`
	Timezone       *string `json:"timezone"`
}
