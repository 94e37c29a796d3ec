package dto

// Response is the uniform success envelope: success mirrors statusCode < 400.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// ErrorResponse is the failure envelope; data is always null.
type ErrorResponse struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Errors     []string    `json:"errors"`
	Data       interface{} `json:"data"`
	Success    bool        `json:"success"`
}

func NewResponse(statusCode int, data interface{}, message string) Response {
	return Response{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}

func NewErrorResponse(statusCode int, message string, details []string) ErrorResponse {
	if details == nil {
		details = []string{}
	}
	return ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
		Errors:     details,
		Data:       nil,
		Success:    false,
	}
}
