package response_models

import "itinera/internal/models/trip_models"

type ItineraryResponse struct {
	Tuning      trip_models.TripTuning  `json:"tuning"`
	Preferences trip_models.Preferences `json:"preferences"`
	Itinerary   trip_models.Itinerary   `json:"itinerary"`
}

type VocabularyResponse struct {
	Interests []trip_models.Interest `json:"interests"`
	Paces     []trip_models.Pace     `json:"paces"`
	MinDays   int                    `json:"min_days"`
	MaxDays   int                    `json:"max_days"`
}
