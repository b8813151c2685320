package request_models

type PreferencesRequest struct {
	Interests []string `json:"interests"`
	Pace      string   `json:"pace"`
}

// GenerateItineraryRequest omits preferences to get the defaults
// (nature + culture, balanced).
type GenerateItineraryRequest struct {
	Country     string              `json:"country"`
	Days        int                 `json:"days"`
	Preferences *PreferencesRequest `json:"preferences"`
}
