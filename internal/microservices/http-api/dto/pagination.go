package dto

import "bloghub/internal/microservices/http-api/models"

const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// PageRequest is the page/limit/offset triple accepted by every list query.
// Offset is added on top of the page boundary.
type PageRequest struct {
	Page   int
	Limit  int
	Offset int
}

// NewPageRequest applies defaults to the optional GraphQL arguments and
// clamps out-of-range values.
func NewPageRequest(page, limit, offset *int32) PageRequest {
	req := PageRequest{Page: DefaultPage, Limit: DefaultLimit}
	if page != nil {
		req.Page = int(*page)
	}
	if limit != nil {
		req.Limit = int(*limit)
	}
	if offset != nil {
		req.Offset = int(*offset)
	}
	return req.normalize()
}

func (p PageRequest) normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Skip is the number of rows to pass over: (page-1)*limit + offset.
func (p PageRequest) Skip() int {
	return (p.Page-1)*p.Limit + p.Offset
}

// PostPage is one page of posts plus the size of the whole filtered set.
type PostPage struct {
	Posts      []models.Post
	TotalCount int64
}
