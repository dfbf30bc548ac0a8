package utils

import (
	"net/http"
	"strconv"

	"mbote-service/internal/pkg/dto/requests"
)

// BuildPaginationRequest reads ?page= and ?pageSize= with sane defaults.
func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return &requests.Pagination{Page: page, PageSize: pageSize}
}
