package response

import "admin-panel/pkg/utils"

type ListResponse[T any] struct {
	Items      []T            `json:"items"`
	Pagination PaginationMeta `json:"pagination"`
}

type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func NewListResponse[T any](items []T, page, limit int, total int64) *ListResponse[T] {
	if items == nil {
		items = []T{}
	}

	return &ListResponse[T]{
		Items: items,
		Pagination: PaginationMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: utils.CalculateTotalPages(total, limit),
		},
	}
}
