package weather

// User-visible messages for pipeline failures. They are surfaced verbatim in
// the dashboard's error banner.
const (
	MsgGeocodingFailed = "Failed to search for the city."
	MsgNoResults       = "No results found for that city."
	MsgWeatherFailed   = "Failed to load weather data."
)

// FetchError is a transport failure or non-success response from an upstream
// endpoint. Terminal for the operation; never retried.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError wraps cause under the given user-visible message.
func NewFetchError(message string, cause error) *FetchError {
	return &FetchError{Message: message, Err: cause}
}

// NotFoundError means the upstream answered cleanly but with an empty result
// set.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFoundError returns a NotFoundError with the given user-visible
// message.
func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}
