package cosmos

import "net/http"

// Item is one document plus the provenance of the response that produced it.
// The body and the headers together carry enough information to address the
// item for replace or delete without re-deriving its link: the service stamps
// a "_self" pseudo-field onto stored documents.
type Item struct {
	// Value is the document body.
	Value map[string]any
	// ResponseHeaders are the headers of the response this item came from,
	// including the session token.
	ResponseHeaders http.Header
}

func newItem(headers http.Header, data map[string]any) *Item {
	return &Item{Value: data, ResponseHeaders: headers}
}

// ID returns the document's "id" field, or "" if absent.
func (i *Item) ID() string {
	if v, ok := i.Value["id"].(string); ok {
		return v
	}
	return ""
}

// SelfLink returns the document's "_self" pseudo-field, or "" if absent.
func (i *Item) SelfLink() string {
	if v, ok := i.Value["_self"].(string); ok {
		return v
	}
	return ""
}

// Get returns the value of a document field, or nil if absent.
func (i *Item) Get(key string) any {
	return i.Value[key]
}
