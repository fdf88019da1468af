package model

// Page is the envelope every list endpoint of the API returns.
type Page[T any] struct {
	Messages        []string `json:"messages"`
	Succeeded       bool     `json:"succeeded"`
	Data            []T      `json:"data"`
	CurrentPage     int      `json:"currentPage"`
	TotalPages      int      `json:"totalPages"`
	TotalCount      int      `json:"totalCount"`
	PageSize        int      `json:"pageSize"`
	HasPreviousPage bool     `json:"hasPreviousPage"`
	HasNextPage     bool     `json:"hasNextPage"`
}

func (p *Page[T]) PreviousPage() int {
	if p.CurrentPage <= 1 {
		return 1
	}
	return p.CurrentPage - 1
}

func (p *Page[T]) NextPage() int {
	return p.CurrentPage + 1
}

// Result wraps a single record.
type Result[T any] struct {
	Messages  []string `json:"messages"`
	Succeeded bool     `json:"succeeded"`
	Data      T        `json:"data"`
}

type DTO struct {
	ID             int           `json:"id,omitempty"`
	CreatedOn      LocalDateTime `json:"createdOn,omitempty"`
	LastModifiedOn LocalDateTime `json:"lastModifiedOn,omitempty"`
}

// Toast is a one-shot notification shown on the next rendered page.
type Toast struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

const (
	ToastSuccess = "success"
	ToastError   = "error"
)
