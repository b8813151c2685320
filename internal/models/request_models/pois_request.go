package request_models

type UpsertPoiRequest struct {
	ID          string   `json:"id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	City        string   `json:"city" binding:"required"`
	Country     string   `json:"country" binding:"required"`
	Latitude    float64  `json:"latitude" binding:"min=-90,max=90"`
	Longitude   float64  `json:"longitude" binding:"min=-180,max=180"`
	Tags        []string `json:"tags"`
	Popularity  int      `json:"popularity" binding:"min=0,max=100"`
	DurationMin int      `json:"duration_min" binding:"required,gt=0"`
}
