package dto

import "github.com/tourguide-client/internal/domain"

// MyTourItem — запись пользователя вместе с деталями тура.
// Tour равен nil, когда детали загрузить не удалось: сама запись
// при этом остаётся в списке.
type MyTourItem struct {
	Enrollment domain.Enrollment `json:"enrollment"`
	Tour       *domain.Tour      `json:"tour,omitempty"`
}
