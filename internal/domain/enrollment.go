package domain

import "time"

// EnrollmentStatus — статус прохождения тура.
type EnrollmentStatus string

const (
	EnrollmentNotStarted EnrollmentStatus = "not_started"
	EnrollmentInProgress EnrollmentStatus = "in_progress"
	EnrollmentCompleted  EnrollmentStatus = "completed"
)

// Enrollment — запись о записи пользователя на тур.
// Progress имеет смысл только при статусе in_progress.
type Enrollment struct {
	ID          string           `json:"id"`
	TourID      string           `json:"tour_id"`
	UserID      string           `json:"user_id"`
	Status      EnrollmentStatus `json:"status"`
	Progress    int              `json:"progress"`
	StartedAt   time.Time        `json:"started_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
}

// IsEnrolled reports whether any enrollment references the tour.
// Membership is existence-only: a completed enrollment still counts,
// so completed tours show as non-re-enrollable.
func IsEnrolled(tourID string, records []Enrollment) bool {
	for _, r := range records {
		if r.TourID == tourID {
			return true
		}
	}
	return false
}

// LocationSample — точка трека пользователя внутри тура.
type LocationSample struct {
	UserID    string    `json:"user_id"`
	TourID    string    `json:"tour_id"`
	Location  Location  `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}
