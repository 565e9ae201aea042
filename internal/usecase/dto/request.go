package dto

// Запросы dev-сервера. Формат повторяет публичное API тур-сервиса.

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type EnrollRequest struct {
	TourID string `json:"tour_id" validate:"required"`
}

// LocationInput не ограничивает диапазон на уровне тегов:
// координаты проверяются geo.ValidateCoordinates с отдельной ошибкой.
type LocationInput struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type LocationUpdateRequest struct {
	TourID   string        `json:"tour_id" validate:"required"`
	Location LocationInput `json:"location"`
}

type CreateTourPOI struct {
	ID          string        `json:"id"`
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description"`
	Location    LocationInput `json:"location"`
	Order       int           `json:"order" validate:"min=0"`
	Image       *string       `json:"image,omitempty"`
}

type CreateTourRequest struct {
	Name             string          `json:"name" validate:"required"`
	Description      string          `json:"description" validate:"required"`
	Difficulty       string          `json:"difficulty" validate:"required,oneof=easy moderate hard"`
	Duration         string          `json:"duration" validate:"required"`
	Distance         string          `json:"distance" validate:"required"`
	Category         string          `json:"category" validate:"required,tour_category"`
	Image            *string         `json:"image,omitempty"`
	PointsOfInterest []CreateTourPOI `json:"points_of_interest" validate:"dive"`
	Rating           float64         `json:"rating" validate:"min=0,max=5"`
	ReviewsCount     int             `json:"reviews_count" validate:"min=0"`
}
