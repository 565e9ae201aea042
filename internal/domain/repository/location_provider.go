package repository

import (
	"context"

	"github.com/tourguide-client/internal/domain"
)

// LocationProvider — доступ к геопозиции устройства.
// Отказ в разрешении и сбой запроса — разные исходы: для карты оба
// означают «позиции нет», но только отказ блокирует запись на тур.
type LocationProvider interface {
	// RequestPermission запрашивает разрешение на геолокацию.
	// false без ошибки означает явный отказ пользователя.
	RequestPermission(ctx context.Context) (bool, error)

	// CurrentLocation возвращает текущую позицию устройства.
	// Вызывается только после выданного разрешения.
	CurrentLocation(ctx context.Context) (domain.Location, error)
}
