package errors

import "net/http"

var (
	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrTourNotFound = New(
		"TOUR_NOT_FOUND",
		"Tour not found",
		http.StatusNotFound,
	)

	ErrAlreadyEnrolled = New(
		"ALREADY_ENROLLED",
		"Already enrolled in this tour",
		http.StatusConflict,
	)

	ErrNetwork = New(
		"NETWORK_ERROR",
		"Could not reach the tour service",
		http.StatusServiceUnavailable,
	)

	ErrServer = New(
		"SERVER_ERROR",
		"Tour service returned an error",
		http.StatusBadGateway,
	)

	ErrLocationPermissionDenied = New(
		"LOCATION_PERMISSION_DENIED",
		"Location permission is required to start a tour",
		http.StatusForbidden,
	)

	ErrLocationUnavailable = New(
		"LOCATION_UNAVAILABLE",
		"Current location could not be determined",
		http.StatusServiceUnavailable,
	)

	ErrInvalidCategory = New(
		"INVALID_CATEGORY",
		"Invalid tour category",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		http.StatusUnauthorized,
	)

	ErrEmailTaken = New(
		"EMAIL_TAKEN",
		"Email already registered",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
