package handlers

import (
	"math/rand"
	"net/http"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mvp-tools/dashboard_backend/internal/config"
	"github.com/mvp-tools/dashboard_backend/internal/middleware"
	"github.com/mvp-tools/dashboard_backend/internal/models"
	"github.com/mvp-tools/dashboard_backend/internal/utils"
)

// Sample chart dimensions, matching the placeholder dashboard.
const (
	chartRows = 20
)

var chartColumns = []string{"A", "B", "C"}

// PagesHandler serves the dashboard page payloads and the sidebar
// navigation model.
type PagesHandler struct {
	cfg       *config.Config
	startTime time.Time
	served    atomic.Int64
}

// NewPagesHandler creates a new pages handler
func NewPagesHandler(cfg *config.Config) *PagesHandler {
	return &PagesHandler{
		cfg:       cfg,
		startTime: time.Now(),
	}
}

// QuickStat is one headline metric on the home page.
type QuickStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta"`
}

// HomePage is the home page payload.
type HomePage struct {
	Title        string        `json:"title"`
	Tagline      string        `json:"tagline"`
	Welcome      string        `json:"welcome"`
	QuickStats   []QuickStat   `json:"quick_stats"`
	QuickActions []models.Page `json:"quick_actions"`
}

// ChartSeries is one named column of sample chart data.
type ChartSeries struct {
	Name      string    `json:"name"`
	Values    []float64 `json:"values"`
	LastValue float64   `json:"last_value"`
	ChangePct float64   `json:"change_pct"`
}

// DashboardPage is the dashboard page payload.
type DashboardPage struct {
	Notice   string        `json:"notice"`
	Series   []ChartSeries `json:"series"`
	Uptime   string        `json:"uptime"`
	MemUsage string        `json:"mem_usage"`
}

// SettingsPage is the settings page payload.
type SettingsPage struct {
	AppName     string             `json:"app_name"`
	Environment config.Environment `json:"environment"`
	Debug       bool               `json:"debug"`
	Themes      []string           `json:"themes"`
	Languages   []string           `json:"languages"`
	Preferences models.Preferences `json:"preferences"`
}

// Page handles GET /pages/:page
// @Summary Page payload
// @Description Returns the data for one dashboard page (home, dashboard or settings)
// @Tags Pages
// @Produce json
// @Param page path string true "Page identifier"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /pages/{page} [get]
func (h *PagesHandler) Page(c *gin.Context) {
	page, err := models.ParsePage(c.Param("page"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": err.Error(),
		})
		return
	}

	h.served.Add(1)

	switch page {
	case models.PageHome:
		c.JSON(http.StatusOK, h.homePage(c))
	case models.PageDashboard:
		c.JSON(http.StatusOK, h.dashboardPage())
	case models.PageSettings:
		c.JSON(http.StatusOK, h.settingsPage())
	}
}

func (h *PagesHandler) homePage(c *gin.Context) HomePage {
	users := "0"
	if _, ok := middleware.GetUser(c); ok {
		users = "1"
	}

	return HomePage{
		Title:   h.cfg.AppName,
		Tagline: "Build Systems, Not Just Apps",
		Welcome: "Welcome to your dashboard. Use the sidebar to explore.",
		QuickStats: []QuickStat{
			{Label: "Users", Value: users, Delta: "+0"},
			{Label: "Requests", Value: strconv.FormatInt(h.served.Load(), 10), Delta: "+0"},
			{Label: "Uptime", Value: "100%", Delta: "0%"},
		},
		QuickActions: []models.Page{models.PageDashboard, models.PageSettings},
	}
}

func (h *PagesHandler) dashboardPage() DashboardPage {
	series := make([]ChartSeries, len(chartColumns))
	for i, name := range chartColumns {
		values := make([]float64, chartRows)
		var cum float64
		for j := range values {
			cum += rand.NormFloat64()
			values[j] = cum
		}
		prev := values[chartRows-2]
		last := values[chartRows-1]
		series[i] = ChartSeries{
			Name:      name,
			Values:    values,
			LastValue: last,
			ChangePct: utils.Percentage(last-prev, prev, 2),
		}
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return DashboardPage{
		Notice:   "Dashboard under construction - add your metrics here!",
		Series:   series,
		Uptime:   time.Since(h.startTime).Round(time.Second).String(),
		MemUsage: utils.FormatFileSize(int64(memStats.Alloc)),
	}
}

func (h *PagesHandler) settingsPage() SettingsPage {
	return SettingsPage{
		AppName:     h.cfg.AppName,
		Environment: h.cfg.AppEnv,
		Debug:       h.cfg.Debug,
		Themes:      models.Themes,
		Languages:   models.Languages,
		Preferences: models.DefaultPreferences(),
	}
}

// Navigation handles GET /navigation
// @Summary Sidebar navigation
// @Description Returns the ordered sidebar menu with the current page marked
// @Tags Pages
// @Produce json
// @Param current query string false "Current page identifier" default(home)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /navigation [get]
func (h *PagesHandler) Navigation(c *gin.Context) {
	current := models.PageHome
	if raw := c.Query("current"); raw != "" {
		page, err := models.ParsePage(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_input",
				"message": err.Error(),
			})
			return
		}
		current = page
	}

	c.JSON(http.StatusOK, gin.H{
		"items": models.NavigationItems(current),
	})
}

// RegisterRoutes registers page routes on the API group.
func (h *PagesHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/pages/:page", h.Page)
	api.GET("/navigation", h.Navigation)
}
