package httpserver

import (
	"net/http"
	"strconv"
)

const (
	_defaultPage  = 1
	_defaultLimit = 10
	_maxLimit     = 100
)

// PaginationParams holds the page/limit pair extracted from a request
type PaginationParams struct {
	Page  int
	Limit int
}

// PaginationMeta describes the pagination section of a paginated response
type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// PaginatedResponse is the envelope for list endpoints
type PaginatedResponse struct {
	Data       any            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// ExtractPaginationParams reads page and limit query parameters, falling back
// to defaults for missing or out-of-range values
func ExtractPaginationParams(r *http.Request) PaginationParams {
	params := PaginationParams{
		Page:  _defaultPage,
		Limit: _defaultLimit,
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			params.Page = page
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 && limit <= _maxLimit {
			params.Limit = limit
		}
	}

	return params
}

// Offset returns the record offset for the current page
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ReplyWithPaginatedData writes data wrapped in the pagination envelope
func ReplyWithPaginatedData(w http.ResponseWriter, statusCode int, data any, total int, params PaginationParams) {
	totalPages := total / params.Limit
	if total%params.Limit > 0 {
		totalPages++
	}

	ReplyJSONResponse(w, statusCode, PaginatedResponse{
		Data: data,
		Pagination: PaginationMeta{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}
