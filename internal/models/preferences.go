package models

import "fmt"

// Preference options offered on the settings page.
var (
	Themes    = []string{"Light", "Dark", "Auto"}
	Languages = []string{"Français", "English"}
)

// Preferences holds the user-selectable settings page options.
type Preferences struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// DefaultPreferences returns the settings page initial selections.
func DefaultPreferences() Preferences {
	return Preferences{Theme: "Dark", Language: "Français"}
}

// Validate checks both selections against the offered options.
func (p Preferences) Validate() error {
	if !contains(Themes, p.Theme) {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, p.Theme)
	}
	if !contains(Languages, p.Language) {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, p.Language)
	}
	return nil
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
