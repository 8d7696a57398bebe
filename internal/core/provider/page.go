package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Page is a list response. It renders as {"data": [...], "meta": {...}},
// or as [] when there are no items.
type Page struct {
	Data []json.RawMessage `json:"data"`
	Meta json.RawMessage   `json:"meta,omitempty"`
}

// MarshalJSON renders an empty page as an empty list.
func (p Page) MarshalJSON() ([]byte, error) {
	if len(p.Data) == 0 {
		return []byte("[]"), nil
	}
	type plain Page
	return json.Marshal(plain(p))
}

// Empty reports whether the page holds no items.
func (p Page) Empty() bool {
	return len(p.Data) == 0
}

// NewPage repackages a {data, meta} body. A bare array body becomes the data with no meta.
// Any other well-formed body, including one whose data is not a list, is an empty page.
func NewPage(body json.RawMessage) (Page, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Page{}, nil
	}
	if !json.Valid(trimmed) {
		return Page{}, fmt.Errorf("decode paged body: invalid JSON")
	}

	if trimmed[0] == '[' {
		return decodeItems(trimmed, nil)
	}
	if trimmed[0] != '{' {
		return Page{}, nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
		Meta json.RawMessage `json:"meta"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return Page{}, fmt.Errorf("decode paged body: %w", err)
	}
	data := bytes.TrimSpace(envelope.Data)
	if len(data) == 0 || data[0] != '[' {
		return Page{}, nil
	}
	return decodeItems(data, envelope.Meta)
}

func decodeItems(list []byte, meta json.RawMessage) (Page, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(list, &items); err != nil {
		return Page{}, fmt.Errorf("decode list body: %w", err)
	}
	if len(items) == 0 {
		return Page{}, nil
	}
	return Page{Data: items, Meta: meta}, nil
}

// NewListPage wraps a bare array body with caller-supplied metadata.
func NewListPage(body json.RawMessage, meta any) (Page, error) {
	page, err := NewPage(body)
	if err != nil || page.Empty() {
		return page, err
	}
	if page.Meta == nil && meta != nil {
		encoded, err := json.Marshal(meta)
		if err != nil {
			return Page{}, fmt.Errorf("encode page meta: %w", err)
		}
		page.Meta = encoded
	}
	return page, nil
}
