package errors

import "net/http"

var (
	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Place not found",
		http.StatusNotFound,
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"User not found",
		http.StatusNotFound,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Missing or invalid credentials",
		http.StatusUnauthorized,
	)

	ErrInvalidTag = New(
		"INVALID_TAG",
		"Unknown feature tag",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrStorageError = New(
		"STORAGE_ERROR",
		"Photo storage operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
