package pagination

// Page is the envelope every paginated response uses. Page numbers are
// zero-based.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
}

func New[T any](content []T, page, size int, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}
	return &Page[T]{Content: content, Page: page, Size: size, TotalElements: total}
}
