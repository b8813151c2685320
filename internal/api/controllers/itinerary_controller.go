package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"itinera/internal/models/request_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
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
// @Summary Generate an itinerary
// @Description Build a day-by-day itinerary of city stops, POIs and transfers for a country
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip request"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /itineraries [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itinerary generated successfully")
}

// PreviewTuning godoc
// @Summary Preview trip tuning
// @Description Show the stop count, nights per stop and POIs per day derived for a pace and trip length
// @Tags Itinerary
// @Produce json
// @Param pace query string false "relaxed, balanced or fast" default(balanced)
// @Param days query int true "Trip length in days"
// @Success 200 {object} trip_models.TripTuning
// @Failure 400 {object} utils.APIResponse
// @Router /tuning [get]
func (i *ItineraryController) PreviewTuning(c *gin.Context) {
	days, err := strconv.Atoi(c.Query("days"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid days")
		return
	}

	tuning, err := i.itineraryService.PreviewTuning(c.Query("pace"), days)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tuning, "Tuning derived successfully")
}

// ListInterests godoc
// @Summary List interests and paces
// @Tags Itinerary
// @Produce json
// @Success 200 {object} response_models.VocabularyResponse
// @Router /interests [get]
func (i *ItineraryController) ListInterests(c *gin.Context) {
	utils.RespondSuccess(c, i.itineraryService.Vocabulary(), "Interests fetched successfully")
}
