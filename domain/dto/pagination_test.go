package dto_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"videotube/domain/apperror"
	"videotube/domain/dto"
)

func TestParsePageRequest_Defaults(t *testing.T) {
	req, err := dto.ParsePageRequest("", "", "", "", "", "createdAt")
	assert.NoError(t, err)
	assert.Equal(t, dto.DefaultPage, req.Page)
	assert.Equal(t, dto.DefaultLimit, req.Limit)
	assert.Equal(t, "createdAt", req.SortBy)
	assert.Equal(t, dto.SortDesc, req.SortType)
}

func TestParsePageRequest_InvalidNumbers(t *testing.T) {
	cases := []struct{ page, limit string }{
		{"0", ""},
		{"-1", ""},
		{"abc", ""},
		{"", "0"},
		{"", "nope"},
	}
	for _, tc := range cases {
		_, err := dto.ParsePageRequest(tc.page, tc.limit, "", "", "", "createdAt")
		assert.Error(t, err, "page=%q limit=%q", tc.page, tc.limit)
		assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))
	}
}

func TestParsePageRequest_SortWhitelist(t *testing.T) {
	req, err := dto.ParsePageRequest("", "", "views", "asc", "", "createdAt", "views")
	assert.NoError(t, err)
	assert.Equal(t, "views", req.SortBy)
	assert.Equal(t, dto.SortAsc, req.SortType)

	_, err = dto.ParsePageRequest("", "", "password", "", "", "createdAt", "views")
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))

	_, err = dto.ParsePageRequest("", "", "", "sideways", "", "createdAt")
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.StatusCode(err))
}

func TestPageRequest_SkipAndDirection(t *testing.T) {
	req := dto.PageRequest{Page: 3, Limit: 10, SortType: dto.SortAsc}
	assert.Equal(t, int64(20), req.Skip())
	assert.Equal(t, 1, req.SortDirection())

	req.SortType = dto.SortDesc
	assert.Equal(t, -1, req.SortDirection())
}

func TestNewPage_CeilTotalPages(t *testing.T) {
	req := dto.PageRequest{Page: 1, Limit: 10}

	page := dto.NewPage(req, 0, []string(nil))
	assert.Equal(t, int64(0), page.TotalPages)
	assert.NotNil(t, page.Items)

	page = dto.NewPage(req, 10, []string{"a"})
	assert.Equal(t, int64(1), page.TotalPages)

	page = dto.NewPage(req, 11, []string{"a"})
	assert.Equal(t, int64(2), page.TotalPages)
}
