package domain

import (
	"fmt"
)

// Document is a schemaless record as exchanged with the document store.
type Document map[string]any

// ID returns the store-assigned identifier as text, looking at "_id" first
// and "id" second. It returns "" when neither key holds a usable value.
func (d Document) ID() string {
	for _, key := range []string{"_id", "id"} {
		v, ok := d[key]
		if !ok || v == nil {
			continue
		}
		var id string
		switch t := v.(type) {
		case string:
			id = t
		case fmt.Stringer:
			id = t.String()
		default:
			id = fmt.Sprint(t)
		}
		if id != "" {
			return id
		}
	}
	return ""
}

// Clone returns a shallow copy of d.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Matches reports whether every key in filter equals the value in d.
func (d Document) Matches(filter Document) bool {
	for k, want := range filter {
		got, ok := d[k]
		if !ok || fmt.Sprint(got) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}
