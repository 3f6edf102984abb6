package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mvp-tools/dashboard_backend/internal/config"
	"github.com/mvp-tools/dashboard_backend/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		AppName:  "Streamlit MVP",
		AppEnv:   config.EnvDevelopment,
		Debug:    true,
		LogLevel: config.LevelInfo,
	}
}

func newPagesRouter() *gin.Engine {
	router := gin.New()
	api := router.Group("/api/v1")
	NewPagesHandler(testConfig()).RegisterRoutes(api)
	return router
}

func TestPagesHandler_Home(t *testing.T) {
	router := newPagesRouter()

	req := httptest.NewRequest("GET", "/api/v1/pages/home", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var page HomePage
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if page.Title != "Streamlit MVP" {
		t.Errorf("Title = %q, want app name", page.Title)
	}
	if len(page.QuickStats) != 3 {
		t.Errorf("len(QuickStats) = %d, want 3", len(page.QuickStats))
	}
	if len(page.QuickActions) != 2 {
		t.Errorf("len(QuickActions) = %d, want 2", len(page.QuickActions))
	}
	// Anonymous request shows no signed-in users
	if page.QuickStats[0].Value != "0" {
		t.Errorf("Users stat = %q, want 0", page.QuickStats[0].Value)
	}
}

func TestPagesHandler_Dashboard(t *testing.T) {
	router := newPagesRouter()

	req := httptest.NewRequest("GET", "/api/v1/pages/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var page DashboardPage
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(page.Series) != 3 {
		t.Fatalf("len(Series) = %d, want 3", len(page.Series))
	}
	for _, s := range page.Series {
		if len(s.Values) != chartRows {
			t.Errorf("series %q has %d values, want %d", s.Name, len(s.Values), chartRows)
		}
	}
	wantNames := []string{"A", "B", "C"}
	for i, want := range wantNames {
		if page.Series[i].Name != want {
			t.Errorf("Series[%d].Name = %q, want %q", i, page.Series[i].Name, want)
		}
	}
	if page.MemUsage == "" {
		t.Error("MemUsage is empty")
	}
}

func TestPagesHandler_Settings(t *testing.T) {
	router := newPagesRouter()

	req := httptest.NewRequest("GET", "/api/v1/pages/settings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var page SettingsPage
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if page.AppName != "Streamlit MVP" {
		t.Errorf("AppName = %q, want app name", page.AppName)
	}
	if page.Environment != config.EnvDevelopment {
		t.Errorf("Environment = %q, want development", page.Environment)
	}
	if !page.Debug {
		t.Error("Debug = false, want true")
	}
	if len(page.Themes) == 0 || len(page.Languages) == 0 {
		t.Error("Themes/Languages options missing")
	}
}

func TestPagesHandler_UnknownPage(t *testing.T) {
	router := newPagesRouter()

	req := httptest.NewRequest("GET", "/api/v1/pages/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestPagesHandler_Navigation(t *testing.T) {
	router := newPagesRouter()

	req := httptest.NewRequest("GET", "/api/v1/navigation?current=dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response struct {
		Items []models.NavigationItem `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(response.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(response.Items))
	}
	if response.Items[0].ID != models.PageHome {
		t.Errorf("Items[0].ID = %q, want home first", response.Items[0].ID)
	}
	if !response.Items[1].Current {
		t.Error("dashboard item not marked current")
	}
}

func TestPagesHandler_Navigation_DefaultsToHome(t *testing.T) {
	router := newPagesRouter()

	req := httptest.NewRequest("GET", "/api/v1/navigation", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response struct {
		Items []models.NavigationItem `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !response.Items[0].Current {
		t.Error("home item not marked current by default")
	}
}

func TestPagesHandler_Navigation_InvalidCurrent(t *testing.T) {
	router := newPagesRouter()

	req := httptest.NewRequest("GET", "/api/v1/navigation?current=profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
