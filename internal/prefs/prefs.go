package prefs

import (
	"strings"
)

// Settings is the key/value storage prefs are kept in.
type Settings interface {
	GetSetting(key string) (string, bool, error)
	SetSetting(key, value string) error
}

// Prefs represents persisted UI preferences.
type Prefs struct {
	DarkTheme bool
	ThemeSet  bool
}

const keyDarkTheme = "ui.darkTheme"

// Load reads preferences. Unreadable values are treated as unset.
func Load(s Settings) Prefs {
	var p Prefs
	if s == nil {
		return p
	}
	if v, ok, err := s.GetSetting(keyDarkTheme); err == nil && ok {
		p.ThemeSet = true
		p.DarkTheme = parseBool(v)
	}
	return p
}

// SaveDarkTheme persists the theme choice.
func SaveDarkTheme(s Settings, dark bool) error {
	if s == nil {
		return nil
	}
	return s.SetSetting(keyDarkTheme, boolStr(dark))
}

// ResolveDark picks the theme: an explicit "dark"/"light" wins, then the
// saved preference, then light.
func ResolveDark(explicit string, p Prefs) bool {
	switch strings.ToLower(strings.TrimSpace(explicit)) {
	case "dark":
		return true
	case "light":
		return false
	}
	if p.ThemeSet {
		return p.DarkTheme
	}
	return false
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func boolStr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
