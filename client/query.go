package client

import (
	"net/url"
	"strconv"
	"strings"
)

const DefaultPageSize = 10

// ListQuery holds the paging parameters every list endpoint accepts.
type ListQuery struct {
	Keyword    string
	PageNumber int
	PageSize   int
	OrderBy    string
	IsExport   bool
	Extra      url.Values
}

func (q ListQuery) Values() url.Values {
	v := url.Values{}
	v.Set("Keyword", strings.TrimSpace(q.Keyword))
	page := q.PageNumber
	if page <= 0 {
		page = 1
	}
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	v.Set("PageNumber", strconv.Itoa(page))
	v.Set("PageSize", strconv.Itoa(size))
	order := q.OrderBy
	if order == "" {
		order = "id"
	}
	v.Set("OrderBy", order)
	if q.IsExport {
		v.Set("IsExport", "true")
	}
	for k, vals := range q.Extra {
		for _, val := range vals {
			v.Add(k, val)
		}
	}
	return v
}

// All returns a query for every record, used for selects and exports.
func All() ListQuery {
	return ListQuery{PageNumber: 1, PageSize: 50, IsExport: true}
}

func idQuery(key string, id int) url.Values {
	return url.Values{key: []string{strconv.Itoa(id)}}
}
