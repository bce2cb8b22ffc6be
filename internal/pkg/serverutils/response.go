// FILE: internal/pkg/serverutils/response.go
package serverutils

// Response is the success envelope returned by every handler.
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(message string, data interface{}) Response {
	return Response{
		Message: message,
		Data:    data,
	}
}

// ErrorBody is the error envelope produced by the error middleware and
// by handlers that respond with a status directly.
type ErrorBody struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func ErrorResponse(code int, message string) ErrorBody {
	return ErrorBody{
		Code:    code,
		Status:  "error",
		Message: message,
	}
}
