package search

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/techblog/internal/client/client"
	"github.com/dmitrijs2005/techblog/internal/client/models"
)

type Sort string

const (
	SortLatest  Sort = "latest"
	SortOldest  Sort = "oldest"
	SortPopular Sort = "popular"
	SortTitle   Sort = "title"
)

// Sorts lists the accepted sort orders.
var Sorts = []Sort{SortLatest, SortOldest, SortPopular, SortTitle}

// ParseSort maps s to a known order, defaulting to SortLatest.
func ParseSort(s string) Sort {
	switch Sort(strings.ToLower(strings.TrimSpace(s))) {
	case SortOldest:
		return SortOldest
	case SortPopular:
		return SortPopular
	case SortTitle:
		return SortTitle
	default:
		return SortLatest
	}
}

// URL parameter names.
const (
	ParamTerm     = "q"
	ParamCategory = "category"
	ParamSort     = "sort"
	ParamPage     = "page"
)

// Query is the snapshot sent with one list request.
type Query struct {
	Term     string
	Category string
	Sort     Sort
	Page     int
}

func DefaultQuery() Query {
	return Query{Category: client.CategoryAll, Sort: SortLatest, Page: 1}
}

func normalizeCategory(c string) string {
	c = strings.TrimSpace(c)
	if c == "" {
		return client.CategoryAll
	}
	return c
}

// Blank reports whether the term is empty after trimming.
func (q Query) Blank() bool {
	return strings.TrimSpace(q.Term) == ""
}

// Params builds the list request for q.
func (q Query) Params(limit int, includeUnpublished bool) models.ListParams {
	return models.ListParams{
		Search:             strings.TrimSpace(q.Term),
		Category:           q.Category,
		Sort:               string(q.Sort),
		Page:               q.Page,
		Limit:              limit,
		IncludeUnpublished: includeUnpublished,
	}
}

// Values encodes q for a shareable URL. Default values are left out.
func (q Query) Values() url.Values {
	v := url.Values{}
	if t := strings.TrimSpace(q.Term); t != "" {
		v.Set(ParamTerm, t)
	}
	if q.Category != "" && q.Category != client.CategoryAll {
		v.Set(ParamCategory, q.Category)
	}
	if q.Sort != "" && q.Sort != SortLatest {
		v.Set(ParamSort, string(q.Sort))
	}
	if q.Page > 1 {
		v.Set(ParamPage, strconv.Itoa(q.Page))
	}
	return v
}

// QueryFromValues is the inverse of Values. Missing or malformed values
// fall back to the defaults.
func QueryFromValues(v url.Values) Query {
	q := DefaultQuery()
	q.Term = strings.TrimSpace(v.Get(ParamTerm))
	q.Category = normalizeCategory(v.Get(ParamCategory))
	q.Sort = ParseSort(v.Get(ParamSort))
	if p, err := strconv.Atoi(v.Get(ParamPage)); err == nil && p > 0 {
		q.Page = p
	}
	return q
}
