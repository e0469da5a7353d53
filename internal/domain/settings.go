package domain

import "time"

// SiteSetting is one operator-editable key/value row. SMTP, theme, SEO and
// contact details all live here so operators can change them without a
// redeploy.
type SiteSetting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Well-known setting keys.
const (
	SettingSMTPHost     = "smtp_host"
	SettingSMTPPort     = "smtp_port"
	SettingSMTPUser     = "smtp_user"
	SettingSMTPPassword = "smtp_password"
	SettingSMTPFrom     = "smtp_from"
	SettingSiteTitle    = "site_title"
	SettingSiteTagline  = "site_tagline"
	SettingContactPhone = "contact_phone"
	SettingContactEmail = "contact_email"
	SettingAddress      = "address"
	SettingOpeningHours = "opening_hours"
	SettingThemeAccent  = "theme_accent"
)
