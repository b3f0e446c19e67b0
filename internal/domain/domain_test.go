package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type hexID string

func (h hexID) String() string { return string(h) }

func TestDocument_ID(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{"mongo style", Document{"_id": "65f0c0ffee"}, "65f0c0ffee"},
		{"sql style", Document{"id": "3f1c0a52-9c1e-4a53-9d1f-8f7f1d1b2c3d"}, "3f1c0a52-9c1e-4a53-9d1f-8f7f1d1b2c3d"},
		{"prefers _id", Document{"_id": "a", "id": "b"}, "a"},
		{"falls back when _id empty", Document{"_id": "", "id": "b"}, "b"},
		{"stringer", Document{"_id": hexID("abc")}, "abc"},
		{"numeric", Document{"id": 42}, "42"},
		{"nil", Document{"_id": nil}, ""},
		{"missing", Document{"name": "Anna"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.doc.ID())
		})
	}
}

func TestDocument_Matches(t *testing.T) {
	doc := Document{"status": "new", "guests": 50}

	assert.True(t, doc.Matches(nil))
	assert.True(t, doc.Matches(Document{"status": "new"}))
	assert.True(t, doc.Matches(Document{"guests": 50}))
	assert.False(t, doc.Matches(Document{"status": "done"}))
	assert.False(t, doc.Matches(Document{"location": "Bregenz"}))
}

func TestInquiry_Document(t *testing.T) {
	inq := &Inquiry{
		Name:      "Anna Huber",
		Email:     "anna@example.com",
		Phone:     "+43664123456",
		EventDate: "2025-12-24",
		Guests:    50,
		Location:  "Bregenz",
		EventType: "wedding",
	}
	inq.Enrich(time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600)))

	doc := inq.Document()
	assert.Equal(t, StatusNew, doc["status"])
	assert.Equal(t, "2025-01-02T02:04:05.000000Z", doc["created_at"])
	assert.Nil(t, doc["message"])
	assert.Contains(t, doc, "message")
	assert.Equal(t, 50, doc["guests"])

	parsed, err := time.Parse(TimestampLayout, doc["created_at"].(string))
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(inq.CreatedAt))
}

func TestRegions_List(t *testing.T) {
	names := []string{"Bregenz", "Dornbirn"}
	r := NewRegions(names)
	names[0] = "changed"

	first := r.List()
	first[1] = "mutated"

	assert.Equal(t, []string{"Bregenz", "Dornbirn"}, r.List())
	assert.Equal(t, []string{}, NewRegions(nil).List())
}
