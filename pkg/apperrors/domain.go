package apperrors

import "net/http"

// Predefined errors for the common, static failure modes.

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

// --- Startups ---

var ErrNotStartupFounder = New(
	CodeForbidden,
	"startup",
	"Only the startup founder may perform this operation",
	http.StatusForbidden,
)

var ErrStartupLimitReached = New(
	CodeLimitExceeded,
	"startup",
	"Startup limit reached: a founder may have at most 5 active startups",
	http.StatusBadRequest,
)

var ErrFounderRoleRequired = New(
	CodeForbidden,
	"startup",
	"Only entrepreneurs can create startups",
	http.StatusForbidden,
)

var ErrPitchDeckRequired = New(
	CodeValidationFailed,
	"startup",
	"Pitch deck file is required",
	http.StatusBadRequest,
)

var ErrDemoVideoTooLarge = New(
	CodeValidationFailed,
	"startup",
	"Demo video exceeds the 50MB limit",
	http.StatusBadRequest,
)

// --- Messaging ---

var ErrMessageToSelf = New(
	CodeInvalidOperation,
	"messaging",
	"Sender and recipient must be distinct users",
	http.StatusBadRequest,
)

// --- Files ---

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

// ErrNotFound converts a repository not-found error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}
