package db_models

import (
	"strings"

	"github.com/lib/pq"

	"itinera/internal/models/trip_models"
)

// POI is a catalog row. Slug is the stable public id (e.g. "co-bog-1").
type POI struct {
	BaseModel
	Slug        string `gorm:"uniqueIndex;not null"`
	Name        string `gorm:"not null"`
	City        string `gorm:"index:idx_poi_country_city"`
	Country     string `gorm:"index:idx_poi_country_city"`
	CountryKey  string `gorm:"index;not null;default:''"`
	Latitude    float64
	Longitude   float64
	Tags        pq.StringArray `gorm:"type:text[]"`
	Popularity  int
	DurationMin int
}

func (POI) TableName() string {
	return "pois"
}

func (p POI) ToTripPoi() trip_models.Poi {
	tags := make([]trip_models.Interest, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, trip_models.Interest(t))
	}
	return trip_models.Poi{
		ID:          p.Slug,
		Name:        p.Name,
		City:        p.City,
		Country:     p.Country,
		Location:    trip_models.LatLng{Lat: p.Latitude, Lng: p.Longitude},
		Tags:        tags,
		Popularity:  p.Popularity,
		DurationMin: p.DurationMin,
	}
}

func POIFromTrip(p trip_models.Poi) POI {
	tags := make(pq.StringArray, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, strings.ToLower(string(t)))
	}
	return POI{
		Slug:        p.ID,
		Name:        p.Name,
		City:        p.City,
		Country:     p.Country,
		CountryKey:  trip_models.CountryKey(p.Country),
		Latitude:    p.Location.Lat,
		Longitude:   p.Location.Lng,
		Tags:        tags,
		Popularity:  p.Popularity,
		DurationMin: p.DurationMin,
	}
}
