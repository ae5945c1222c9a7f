package dto

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ConsentRequiredResponse is the structured rejection returned when an
// AI-analysis operation runs without current consent. It is not a
// generic error: clients use it to trigger the re-consent flow.
type ConsentRequiredResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	ConsentRequired bool   `json:"consent_required"`
	RequiredVersion string `json:"required_version"`
}

func Err(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

func OK(data interface{}) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

func Msg(message string) SuccessResponse {
	return SuccessResponse{Success: true, Message: message}
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

type PagedResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}
