package models

// Setting stores small persistent key/value configuration in SQLite.
// It is intentionally generic so new preferences need no schema change.
type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}

// Seeded defaults inserted at first startup.
const (
	SettingKeyWeeklyTarget = "weekly_target"
	SettingKeyDarkMode     = "dark_mode"

	DefaultWeeklyTarget = "204213.29"
	DefaultDarkMode     = "false"
)
