package models

import (
	"errors"
	"testing"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		input   string
		want    Page
		wantErr bool
	}{
		{"home", PageHome, false},
		{"dashboard", PageDashboard, false},
		{"settings", PageSettings, false},
		{"profile", "", true},
		{"", "", true},
		{"Home", "", true}, // page IDs are exact, unlike config enums
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePage(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownPage) {
					t.Fatalf("ParsePage(%q) error = %v, want ErrUnknownPage", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePage(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePage(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNavigationItems(t *testing.T) {
	items := NavigationItems(PageDashboard)

	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}

	wantOrder := []Page{PageHome, PageDashboard, PageSettings}
	for i, want := range wantOrder {
		if items[i].ID != want {
			t.Errorf("items[%d].ID = %q, want %q", i, items[i].ID, want)
		}
		if items[i].Label == "" {
			t.Errorf("items[%d].Label is empty", i)
		}
		wantCurrent := want == PageDashboard
		if items[i].Current != wantCurrent {
			t.Errorf("items[%d].Current = %v, want %v", i, items[i].Current, wantCurrent)
		}
	}
}

func TestPreferences_Validate(t *testing.T) {
	tests := []struct {
		name    string
		prefs   Preferences
		wantErr error
	}{
		{"defaults valid", DefaultPreferences(), nil},
		{"light english", Preferences{Theme: "Light", Language: "English"}, nil},
		{"unknown theme", Preferences{Theme: "Solarized", Language: "English"}, ErrInvalidTheme},
		{"unknown language", Preferences{Theme: "Auto", Language: "Deutsch"}, ErrInvalidLanguage},
		{"empty", Preferences{}, ErrInvalidTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.prefs.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() returned error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		fn   func(error) bool
		want bool
	}{
		{"unknown page is not found", ErrUnknownPage, IsNotFoundError, true},
		{"invalid theme is validation", ErrInvalidTheme, IsValidationError, true},
		{"session expired is auth", ErrSessionExpired, IsAuthError, true},
		{"not found is not auth", ErrNotFound, IsAuthError, false},
		{"nil is nothing", nil, IsNotFoundError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.err); got != tt.want {
				t.Errorf("classification = %v, want %v", got, tt.want)
			}
		})
	}
}
