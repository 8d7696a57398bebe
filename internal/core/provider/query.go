package provider

import (
	"net/url"
	"strconv"
)

// Query builds an upstream query string holding only populated fields.
type Query struct {
	values url.Values
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// Int sets key when v is non-zero.
func (q *Query) Int(key string, v int) *Query {
	if v != 0 {
		q.values.Set(key, strconv.Itoa(v))
	}
	return q
}

// String sets key when v is non-empty.
func (q *Query) String(key, v string) *Query {
	if v != "" {
		q.values.Set(key, v)
	}
	return q
}

// Values returns the accumulated parameters.
func (q *Query) Values() url.Values {
	return q.values
}
