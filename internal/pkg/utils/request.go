package utils

import (
	"net/http"
	"strconv"
)

// ParsePageParam reads the "page" query parameter, defaulting to the first page.
func ParsePageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
