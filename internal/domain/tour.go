package domain

import "time"

// Location — географическая координата точки маршрута.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Difficulty — уровень сложности тура.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
	DifficultyUnknown  Difficulty = "unknown"
)

// ParseDifficulty нормализует значение сложности, пришедшее с сервера.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyModerate, DifficultyHard:
		return Difficulty(s)
	default:
		return DifficultyUnknown
	}
}

// Категории туров. CategoryAll — sentinel для списка без фильтра.
const (
	CategoryWalking = "walking"
	CategoryCycling = "cycling"
	CategoryMixed   = "mixed"
	CategoryAll     = "all"
)

// ValidCategory reports whether the category filter is one of the
// recognized values. Empty string and "all" mean no filter.
func ValidCategory(category string) bool {
	switch category {
	case "", CategoryAll, CategoryWalking, CategoryCycling, CategoryMixed:
		return true
	default:
		return false
	}
}

// PointOfInterest — остановка на маршруте тура.
// Order совпадает с позицией в points_of_interest и задаёт нумерацию маркеров.
type PointOfInterest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    Location `json:"location"`
	Order       int      `json:"order"`
	Image       *string  `json:"image,omitempty"`
	AudioURL    *string  `json:"audio_url,omitempty"`
}

// Tour — полное описание тура вместе с упорядоченным списком POI.
type Tour struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	Difficulty       Difficulty        `json:"difficulty"`
	Duration         string            `json:"duration"`
	Distance         string            `json:"distance"`
	Category         string            `json:"category"`
	Image            *string           `json:"image,omitempty"`
	PointsOfInterest []PointOfInterest `json:"points_of_interest"`
	Rating           float64           `json:"rating"`
	ReviewsCount     int               `json:"reviews_count"`
	CreatedAt        *time.Time        `json:"created_at,omitempty"`
}

// TourSummary — элемент списка туров, без POI.
type TourSummary struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Difficulty   Difficulty `json:"difficulty"`
	Duration     string     `json:"duration"`
	Distance     string     `json:"distance"`
	Category     string     `json:"category"`
	Image        *string    `json:"image,omitempty"`
	Rating       float64    `json:"rating"`
	ReviewsCount int        `json:"reviews_count"`
}

// RouteCoordinates возвращает координаты POI в порядке маршрута.
func (t *Tour) RouteCoordinates() []Location {
	coords := make([]Location, 0, len(t.PointsOfInterest))
	for _, poi := range t.PointsOfInterest {
		coords = append(coords, poi.Location)
	}
	return coords
}
