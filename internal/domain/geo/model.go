// internal/domain/geo/model.go

package geo

import (
	"context"
	"math"
	"strings"
	"time"

	"newsdash/internal/domain/news"
)

// Location represents a geographic point.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Hotspot is a geographic point with an intensity value representing
// conflict severity. Intensity drives marker size on the map panel.
type Hotspot struct {
	ID                string
	Name              string
	Location          Location
	Intensity         float64 // 0-100
	PrimaryCategory   news.Category
	SecondaryCategory news.Category
	PriorityScore     float64
	UpdatedAt         time.Time
}

func (h Hotspot) Categories() (news.Category, news.Category) {
	return h.PrimaryCategory, h.SecondaryCategory
}

func (h Hotspot) Priority() float64 { return h.PriorityScore }

func (h Hotspot) Timestamp() time.Time { return h.UpdatedAt }

func (h Hotspot) SearchText() string { return strings.ToLower(h.Name) }

// Coordinates satisfies the filter pipeline's locatable check.
func (h Hotspot) Coordinates() (lat, lng float64) {
	return h.Location.Latitude, h.Location.Longitude
}

// RegionThreshold is the coordinate-degree distance within which a hotspot
// counts as belonging to a region. A crude proxy for region membership, not
// geodesic distance.
const RegionThreshold = 50.0

// regionCenters maps each region selector to its reference coordinate.
var regionCenters = map[news.Region]Location{
	news.RegionUS:           {Latitude: 39.8, Longitude: -98.6},
	news.RegionEurope:       {Latitude: 50.1, Longitude: 14.3},
	news.RegionAsia:         {Latitude: 34.0, Longitude: 100.6},
	news.RegionMiddleEast:   {Latitude: 29.3, Longitude: 42.5},
	news.RegionLatinAmerica: {Latitude: -15.6, Longitude: -56.1},
}

// RegionCenter returns the reference coordinate for a region. ok is false
// for global or unknown regions, which apply no geographic constraint.
func RegionCenter(rg news.Region) (Location, bool) {
	loc, ok := regionCenters[rg]
	return loc, ok
}

// Distance returns the Euclidean distance between two points in raw
// coordinate degrees.
func Distance(a, b Location) float64 {
	dLat := a.Latitude - b.Latitude
	dLng := a.Longitude - b.Longitude
	return math.Sqrt(dLat*dLat + dLng*dLng)
}

// InRegion reports whether the location falls within the region's threshold
// distance. Global always matches.
func InRegion(loc Location, rg news.Region) bool {
	center, ok := RegionCenter(rg)
	if !ok {
		return true
	}
	return Distance(loc, center) <= RegionThreshold
}

// Repository supplies the map panel's hotspot collection.
type Repository interface {
	Hotspots(ctx context.Context, c news.Criteria) ([]Hotspot, error)
}
