package http

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/domain"
)

// parsePage reads optional limit/offset query parameters. Absent parameters
// stay nil so the services can tell "no limit" apart from an explicit zero.
func parsePage(q url.Values) (domain.Page, error) {
	var page domain.Page

	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return domain.Page{}, fmt.Errorf("limit must be a non-negative integer")
		}
		page.Limit = &v
	}
	if raw := q.Get("offset"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return domain.Page{}, fmt.Errorf("offset must be a non-negative integer")
		}
		page.Offset = &v
	}
	return page, nil
}
