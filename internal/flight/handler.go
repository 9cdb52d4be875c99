package flight

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const searchSucceededMessage = "Flight data fetched successfully"

type FlightHandler struct {
	service *Service
}

func NewFlightHandler(s *Service) *FlightHandler {
	return &FlightHandler{
		service: s,
	}
}

func (h *FlightHandler) RegisterRoutes(router *gin.Engine) {
	flights := router.Group("/v1/flights")
	flights.POST("/search", h.SearchFlightsHandler)
	flights.GET("/searches/:id", h.GetSearchHandler)
}

// SearchFlightsHandler godoc
// @Summary      Search flights
// @Description  Forwards the search to the upstream flight API and returns normalized itineraries with the raw response
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body SearchForm true "Search form"
// @Success      200 {object} SearchResponse
// @Failure      400 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /v1/flights/search [post]
func (h *FlightHandler) SearchFlightsHandler(c *gin.Context) {
	var form SearchForm
	if err := c.ShouldBindJSON(&form); err != nil {
		sendError(c, newValidationError(err))
		return
	}

	input, err := form.ToInput()
	if err != nil {
		sendError(c, newValidationError(err))
		return
	}

	result, err := h.service.Search(c.Request.Context(), input)
	if err != nil {
		if result != nil {
			c.Header("X-Search-ID", result.SearchID)
		}
		sendError(c, err)
		return
	}

	resp := SearchResponse{
		SearchID:    result.SearchID,
		Message:     searchSucceededMessage,
		Itineraries: result.Itineraries,
		Raw:         result.Envelope,
	}
	if resp.Itineraries == nil {
		resp.Itineraries = []Itinerary{}
	}
	if len(resp.Itineraries) == 0 {
		resp.EmptyMessage = EmptyResultMessage
	}

	c.Header("X-Search-ID", result.SearchID)
	c.JSON(http.StatusOK, resp)
}

// GetSearchHandler godoc
// @Summary      Raw search response
// @Description  Returns the stored payload and upstream envelope of a recent search
// @Tags         flights
// @Produce      json
// @Param        id path string true "Search ID"
// @Success      200 {object} SearchRecord
// @Failure      404 {object} map[string]string
// @Router       /v1/flights/searches/{id} [get]
func (h *FlightHandler) GetSearchHandler(c *gin.Context) {
	record, err := h.service.GetSearch(c.Request.Context(), c.Param("id"))
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func sendError(c *gin.Context, err error) {
	var appErr *AppError

	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"code":    ErrorCodeInternalFailure,
		"details": err.Error(),
	})
}
