package request

import (
	"net/url"

	"admin-panel/pkg/utils"
)

// ListRequest carries the query string of every list endpoint.
type ListRequest struct {
	Page     int
	Limit    int
	Search   string
	Status   string
	Category string
}

// ParseListRequest reads search, status, category, page and limit.
// Missing, non-numeric or non-positive page/limit fall back to the defaults.
func ParseListRequest(query url.Values) ListRequest {
	return ListRequest{
		Page:     utils.ParseInt(query.Get("page"), utils.DefaultPage),
		Limit:    utils.ParseInt(query.Get("limit"), utils.DefaultLimit),
		Search:   query.Get("search"),
		Status:   query.Get("status"),
		Category: query.Get("category"),
	}
}

func (p ListRequest) Offset() int {
	return utils.CalculateOffset(p.PageNumber(), p.PageSize())
}

func (p ListRequest) PageNumber() int {
	if p.Page < 1 {
		return utils.DefaultPage
	}
	return p.Page
}

func (p ListRequest) PageSize() int {
	if p.Limit < 1 {
		return utils.DefaultLimit
	}
	if p.Limit > utils.MaxLimit {
		return utils.MaxLimit
	}
	return p.Limit
}
