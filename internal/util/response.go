package util

// ErrorBody is the uniform error payload returned by every handler.
type ErrorBody struct {
	Error string `json:"error"`
}

func Error(message string) ErrorBody {
	return ErrorBody{Error: message}
}
