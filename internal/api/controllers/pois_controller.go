package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itinera/internal/models/request_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

type POIsController struct {
	poiService services.POIServiceInterface
}

func NewPOIsController(poiService services.POIServiceInterface) *POIsController {
	return &POIsController{
		poiService: poiService,
	}
}

// GetPoisByCountry godoc
// @Summary Get POIs by country
// @Description Fetch the candidate POIs for a country; regional spellings are accepted
// @Tags POI
// @Produce json
// @Param country path string true "Country name"
// @Success 200 {object} response_models.CountryPoisResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /pois/{country} [get]
func (p *POIsController) GetPoisByCountry(c *gin.Context) {
	country := c.Param("country")
	if country == "" {
		utils.RespondError(c, http.StatusBadRequest, "Country is required")
		return
	}

	pois, err := p.poiService.GetPoisByCountry(c.Request.Context(), country)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pois, "POIs fetched successfully")
}

// UpsertPoi godoc
// @Summary Create or update a catalog POI
// @Tags POI
// @Accept json
// @Produce json
// @Param request body request_models.UpsertPoiRequest true "POI"
// @Success 200 {object} trip_models.Poi
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/pois [post]
func (p *POIsController) UpsertPoi(c *gin.Context) {
	var req request_models.UpsertPoiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	poi, err := p.poiService.UpsertPoi(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, poi, "POI saved successfully")
}

// DeletePoi godoc
// @Summary Delete a catalog POI
// @Tags POI
// @Produce json
// @Param id path string true "POI ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/pois/{id} [delete]
func (p *POIsController) DeletePoi(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "POI ID is required")
		return
	}

	if err := p.poiService.DeletePoi(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "POI deleted successfully")
}
