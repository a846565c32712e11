package res

// ErrorRes is the error unit returned by services.
// StatusCode is the HTTP status the controller must answer with.
type ErrorRes struct {
	Err        error
	StatusCode int
}

func (e *ErrorRes) Error() string {
	return e.Err.Error()
}
