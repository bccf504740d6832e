package request

const (
	DefaultPageSize = 5
	MaxPageSize     = 10
)

// Pagination is shared by the list endpoints: fixed default page size,
// capped maximum.
type Pagination struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

func (p *Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
