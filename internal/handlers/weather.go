package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/raghhhava7/Devclimate-BE/internal/middleware"
	"github.com/raghhhava7/Devclimate-BE/internal/service"
	"github.com/raghhhava7/Devclimate-BE/internal/weather"
)

// WeatherHandler handles weather lookup and search history HTTP requests.
type WeatherHandler struct {
	weatherService service.WeatherService
	historyService service.HistoryService
}

// NewWeatherHandler creates a new WeatherHandler instance.
func NewWeatherHandler(weatherService service.WeatherService, historyService service.HistoryService) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		historyService: historyService,
	}
}

// Current godoc
// @Summary Current weather for a city
// @Description Look up current weather and record it in the caller's history
// @Tags weather
// @Security BearerAuth
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} models.WeatherSearch
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /weather/current/{city} [get]
func (h *WeatherHandler) Current(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "authorization required")
		return
	}

	search, err := h.weatherService.Lookup(c.Request.Context(), c.Param("city"), identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCity):
			RespondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, weather.ErrCityNotFound):
			RespondError(c, http.StatusNotFound, err.Error())
		default:
			LogAndRespondError(c, http.StatusInternalServerError, err, "weather lookup failed")
		}
		return
	}

	c.JSON(http.StatusOK, search)
}

// History godoc
// @Summary Paginated search history
// @Description Return the caller's search history, newest first
// @Tags weather
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 5)"
// @Success 200 {object} service.HistoryPage
// @Router /weather [get]
func (h *WeatherHandler) History(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "authorization required")
		return
	}

	// Non-numeric values fall back to the service defaults.
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.historyService.List(c.Request.Context(), identity.UserID, page, limit)
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to load search history")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Delete godoc
// @Summary Delete a search record
// @Description Delete one of the caller's own search records
// @Tags weather
// @Security BearerAuth
// @Produce json
// @Param searchId path string true "Search record id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /weather/{searchId} [delete]
func (h *WeatherHandler) Delete(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "authorization required")
		return
	}

	err := h.historyService.Delete(c.Request.Context(), c.Param("searchId"), identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSearchID):
			RespondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrSearchNotFound):
			RespondError(c, http.StatusNotFound, err.Error())
		default:
			LogAndRespondError(c, http.StatusInternalServerError, err, "failed to delete search")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "search deleted successfully"})
}
