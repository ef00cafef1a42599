package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"planmyitinerary/internal/models/request_models"
	"planmyitinerary/internal/services"
	"planmyitinerary/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a new itinerary
// @Description Generate a day-by-day itinerary for a destination, enrich it with place details and photos, and persist it
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.ItineraryRequest true "Itinerary generation payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if fieldErrs := req.Validate(time.Now()); len(fieldErrs) > 0 {
		utils.RespondFieldErrors(c, fieldErrs)
		return
	}

	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), accountID, &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, itinerary, "Itinerary created and saved successfully!")
}

// GetRecentItineraries godoc
// @Summary Get recent itineraries
// @Description Fetch the newest itineraries of the authenticated user
// @Tags Itinerary
// @Produce json
// @Param num_of_itinerary query int false "Number of itineraries" default(5)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/recent [get]
func (i *ItineraryController) GetRecentItineraries(c *gin.Context) {
	countStr := c.DefaultQuery("num_of_itinerary", strconv.Itoa(services.DefaultRecentItineraryCount))
	count, err := strconv.Atoi(countStr)
	if err != nil || count <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "num_of_itinerary must be a positive integer")
		return
	}

	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	itineraries, err := i.itineraryService.GetRecentItineraries(c.Request.Context(), accountID, count)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Recent itineraries retrieved successfully")
}

// GetItineraryDetail godoc
// @Summary Get itinerary details by ID
// @Description Fetch one itinerary with its activities grouped by day, each carrying place details and images
// @Tags Itinerary
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [get]
func (i *ItineraryController) GetItineraryDetail(c *gin.Context) {
	itineraryID := c.Param("itineraryId")
	if itineraryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	itinerary, err := i.itineraryService.GetItineraryDetail(c.Request.Context(), itineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary details retrieved successfully")
}
