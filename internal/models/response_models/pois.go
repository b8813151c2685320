package response_models

import "itinera/internal/models/trip_models"

type CountryPoisResponse struct {
	Country string            `json:"country"`
	Count   int               `json:"count"`
	Pois    []trip_models.Poi `json:"pois"`
}
