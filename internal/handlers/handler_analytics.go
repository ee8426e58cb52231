package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/finance_dashboard_app/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard_app/internal/dto"
	"github.com/SscSPs/finance_dashboard_app/internal/middleware"
	"github.com/SscSPs/finance_dashboard_app/internal/platform/config"
	"github.com/SscSPs/finance_dashboard_app/internal/utils/analytics"
	"github.com/gin-gonic/gin"
)

// analyticsHandler serves the derived views over a user's ledger.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
	cfg              *config.Config
}

// newAnalyticsHandler creates a new analyticsHandler.
func newAnalyticsHandler(as portssvc.AnalyticsSvcFacade, cfg *config.Config) *analyticsHandler {
	return &analyticsHandler{
		analyticsService: as,
		cfg:              cfg,
	}
}

// registerAnalyticsRoutes registers routes related to ledger analytics.
func registerAnalyticsRoutes(rg *gin.RouterGroup, cfg *config.Config, analyticsService portssvc.AnalyticsSvcFacade) {
	h := newAnalyticsHandler(analyticsService, cfg)

	analyticsGroup := rg.Group("/analytics")
	{
		analyticsGroup.GET("/summary", h.getSummary)
		analyticsGroup.GET("/monthly", h.getMonthly)
		analyticsGroup.GET("/categories", h.getCategories)
		analyticsGroup.GET("/recurring", h.getRecurring)
		analyticsGroup.GET("/anomalies", h.getAnomalies)
		analyticsGroup.GET("/forecast", h.getForecast)
		analyticsGroup.GET("/dashboard", h.getDashboard)
	}
}

// anomalyConfig builds detection thresholds from config defaults with
// optional per-request query overrides.
func (h *analyticsHandler) anomalyConfig(c *gin.Context) analytics.AnomalyConfig {
	cfg := analytics.AnomalyConfig{
		ModerateZ:  h.cfg.AnomalyModerateZ,
		SevereZ:    h.cfg.AnomalySevereZ,
		MinSamples: h.cfg.AnomalyMinSamples,
	}
	if v, err := strconv.ParseFloat(c.Query("moderateZ"), 64); err == nil && v > 0 {
		cfg.ModerateZ = v
	}
	if v, err := strconv.ParseFloat(c.Query("severeZ"), 64); err == nil && v > 0 {
		cfg.SevereZ = v
	}
	if v, err := strconv.Atoi(c.Query("minSamples")); err == nil && v > 0 {
		cfg.MinSamples = v
	}
	return cfg
}

// forecastWindow reads the window override, falling back to the configured
// default.
func (h *analyticsHandler) forecastWindow(c *gin.Context) int {
	if v, err := strconv.Atoi(c.Query("window")); err == nil && v > 0 {
		return v
	}
	return h.cfg.ForecastWindow
}

func (h *analyticsHandler) userID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

func (h *analyticsHandler) fail(c *gin.Context, err error, msg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Error(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// getSummary godoc
// @Summary Ledger totals
// @Description Returns total income, total expenses and net savings
// @Tags analytics
// @Produce  json
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Security BearerAuth
// @Router /analytics/summary [get]
func (h *analyticsHandler) getSummary(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err, "Failed to compute summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(*summary))
}

// getMonthly godoc
// @Summary Monthly aggregates
// @Description Returns per-month income, expense and savings in chronological order
// @Tags analytics
// @Produce  json
// @Success 200 {array} dto.MonthlyAggregateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute monthly aggregates"
// @Security BearerAuth
// @Router /analytics/monthly [get]
func (h *analyticsHandler) getMonthly(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	monthly, err := h.analyticsService.GetMonthlyAggregates(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err, "Failed to compute monthly aggregates")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlyAggregateResponses(monthly))
}

// getCategories godoc
// @Summary Category totals
// @Description Returns income and expense per category label. Multi-label transactions count fully toward each of their labels.
// @Tags analytics
// @Produce  json
// @Success 200 {array} dto.CategorySummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute category totals"
// @Security BearerAuth
// @Router /analytics/categories [get]
func (h *analyticsHandler) getCategories(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	categories, err := h.analyticsService.GetCategorySummaries(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err, "Failed to compute category totals")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategorySummaryResponses(categories))
}

// getRecurring godoc
// @Summary Recurring payment patterns
// @Description Returns groups of transactions with a shared normalized description and regular spacing
// @Tags analytics
// @Produce  json
// @Success 200 {array} dto.RecurringPatternResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to detect recurring patterns"
// @Security BearerAuth
// @Router /analytics/recurring [get]
func (h *analyticsHandler) getRecurring(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	patterns, err := h.analyticsService.GetRecurringPatterns(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err, "Failed to detect recurring patterns")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecurringPatternResponses(patterns))
}

// getAnomalies godoc
// @Summary Spending anomalies
// @Description Returns expense outliers graded by z-score within their category
// @Tags analytics
// @Produce  json
// @Param   moderateZ query number false "Z-score threshold for moderate severity"
// @Param   severeZ query number false "Z-score threshold for severe severity"
// @Param   minSamples query int false "Minimum expenses per category before scoring"
// @Success 200 {array} dto.AnomalyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to detect anomalies"
// @Security BearerAuth
// @Router /analytics/anomalies [get]
func (h *analyticsHandler) getAnomalies(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	anomalies, err := h.analyticsService.GetAnomalies(c.Request.Context(), userID, h.anomalyConfig(c))
	if err != nil {
		h.fail(c, err, "Failed to detect anomalies")
		return
	}
	c.JSON(http.StatusOK, dto.ToAnomalyResponses(anomalies))
}

// getForecast godoc
// @Summary Next-month projection
// @Description Projects income, expense and savings for the month after the latest observed month using a moving average. Returns 204 when there is no history.
// @Tags analytics
// @Produce  json
// @Param   window query int false "Number of trailing months to average"
// @Success 200 {object} dto.ForecastResponse
// @Success 204 "No history to project from"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build forecast"
// @Security BearerAuth
// @Router /analytics/forecast [get]
func (h *analyticsHandler) getForecast(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	point, err := h.analyticsService.GetForecast(c.Request.Context(), userID, h.forecastWindow(c))
	if err != nil {
		h.fail(c, err, "Failed to build forecast")
		return
	}
	if point == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.ToForecastResponse(point))
}

// getDashboard godoc
// @Summary Full dashboard report
// @Description Returns every derived view computed from a single ledger snapshot
// @Tags analytics
// @Produce  json
// @Param   moderateZ query number false "Z-score threshold for moderate severity"
// @Param   severeZ query number false "Z-score threshold for severe severity"
// @Param   minSamples query int false "Minimum expenses per category before scoring"
// @Param   window query int false "Number of trailing months to average for the forecast"
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Security BearerAuth
// @Router /analytics/dashboard [get]
func (h *analyticsHandler) getDashboard(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	report, err := h.analyticsService.GetDashboard(c.Request.Context(), userID, h.anomalyConfig(c), h.forecastWindow(c))
	if err != nil {
		h.fail(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(*report))
}
