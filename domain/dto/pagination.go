package dto

import (
	"fmt"
	"strconv"
	"strings"

	"videotube/domain/apperror"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10

	SortAsc  = "asc"
	SortDesc = "desc"
)

// PageRequest is the shared pagination contract for every listing endpoint.
// Sort fields are whitelisted per entity at parse time; anything outside the
// enumeration is rejected instead of being forwarded to the store.
type PageRequest struct {
	Page     int
	Limit    int
	SortBy   string
	SortType string
	Query    string
}

// ParsePageRequest validates raw query parameters. Empty values fall back to
// the defaults; malformed or non-positive numbers and unknown sort fields fail
// with a 400.
func ParsePageRequest(page, limit, sortBy, sortType, query string, allowedSort ...string) (PageRequest, error) {
	req := PageRequest{
		Page:     DefaultPage,
		Limit:    DefaultLimit,
		SortBy:   "createdAt",
		SortType: SortDesc,
		Query:    strings.TrimSpace(query),
	}

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return req, apperror.BadRequest("page must be a positive integer")
		}
		req.Page = n
	}
	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 {
			return req, apperror.BadRequest("limit must be a positive integer")
		}
		req.Limit = n
	}
	if sortBy != "" {
		ok := false
		for _, field := range allowedSort {
			if field == sortBy {
				ok = true
				break
			}
		}
		if !ok {
			return req, apperror.BadRequest(
				fmt.Sprintf("sortBy must be one of [%s]", strings.Join(allowedSort, ", ")))
		}
		req.SortBy = sortBy
	}
	switch sortType {
	case "":
	case SortAsc, SortDesc:
		req.SortType = sortType
	default:
		return req, apperror.BadRequest("sortType must be asc or desc")
	}

	return req, nil
}

// Skip is the number of documents to skip for the requested page.
func (r PageRequest) Skip() int64 {
	return int64(r.Page-1) * int64(r.Limit)
}

// SortDirection maps asc/desc to the store's 1/-1 convention.
func (r PageRequest) SortDirection() int {
	if r.SortType == SortAsc {
		return 1
	}
	return -1
}

// Page is the common paginated response body.
type Page[T any] struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	Items       []T   `json:"items"`
}

// NewPage assembles the envelope; totalPages is ceil(totalCount/limit).
func NewPage[T any](req PageRequest, totalCount int64, items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := totalCount / int64(req.Limit)
	if totalCount%int64(req.Limit) != 0 {
		totalPages++
	}
	return Page[T]{
		CurrentPage: req.Page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		Items:       items,
	}
}
