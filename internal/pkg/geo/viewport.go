package geo

import "github.com/tourguide-client/internal/domain"

const (
	// PaddingFactor растягивает область, чтобы точки не прижимались к краям.
	PaddingFactor = 1.5

	// MinSpan — минимальный размах по оси, когда все точки совпадают.
	MinSpan = 0.05

	defaultCenterLat = 40.7128
	defaultCenterLng = -74.0060
	defaultSpan      = 0.05
)

// Viewport — область карты: центр плюс размах по широте и долготе.
type Viewport struct {
	Center  domain.Location `json:"center"`
	LatSpan float64         `json:"lat_span"`
	LngSpan float64         `json:"lng_span"`
}

// DefaultViewport возвращает область по умолчанию для тура без POI.
func DefaultViewport() Viewport {
	return Viewport{
		Center:  domain.Location{Lat: defaultCenterLat, Lng: defaultCenterLng},
		LatSpan: defaultSpan,
		LngSpan: defaultSpan,
	}
}

// ComputeViewport вычисляет область карты, вмещающую все точки маршрута.
// Функция чистая и детерминированная; порядок точек не влияет на результат.
func ComputeViewport(points []domain.Location) Viewport {
	if len(points) == 0 {
		return DefaultViewport()
	}

	minLat, maxLat := points[0].Lat, points[0].Lat
	minLng, maxLng := points[0].Lng, points[0].Lng
	for _, p := range points[1:] {
		if p.Lat < minLat {
			minLat = p.Lat
		}
		if p.Lat > maxLat {
			maxLat = p.Lat
		}
		if p.Lng < minLng {
			minLng = p.Lng
		}
		if p.Lng > maxLng {
			maxLng = p.Lng
		}
	}

	latSpan := (maxLat - minLat) * PaddingFactor
	lngSpan := (maxLng - minLng) * PaddingFactor
	if latSpan == 0 {
		latSpan = MinSpan
	}
	if lngSpan == 0 {
		lngSpan = MinSpan
	}

	return Viewport{
		Center: domain.Location{
			Lat: (minLat + maxLat) / 2,
			Lng: (minLng + maxLng) / 2,
		},
		LatSpan: latSpan,
		LngSpan: lngSpan,
	}
}

// Contains reports whether the point lies inside the viewport.
func (v Viewport) Contains(p domain.Location) bool {
	return p.Lat >= v.Center.Lat-v.LatSpan/2 &&
		p.Lat <= v.Center.Lat+v.LatSpan/2 &&
		p.Lng >= v.Center.Lng-v.LngSpan/2 &&
		p.Lng <= v.Center.Lng+v.LngSpan/2
}

// ValidateCoordinates проверяет валидность координат.
func ValidateCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
