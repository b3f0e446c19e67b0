package domain

import (
	"encoding/json"
	"time"
)

// InquiryCollection is the document store collection holding inquiries.
const InquiryCollection = "inquiry"

// Inquiry statuses
const (
	// StatusNew is assigned to every stored inquiry on creation.
	StatusNew = "new"
	// StatusReceived is reported back to the caller after a successful submission.
	StatusReceived = "received"
)

// TimestampLayout is the ISO-8601 layout used for created_at.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// InquiryPayload is an event booking inquiry as submitted by a prospective
// customer. Pointer fields distinguish missing values from zero values.
// Guests is kept raw so whole numbers sent as floats or numeric strings can be
// accepted.
type InquiryPayload struct {
	Name      *string         `json:"name"`
	Email     *string         `json:"email"`
	Phone     *string         `json:"phone"`
	EventDate *string         `json:"event_date"`
	Guests    json.RawMessage `json:"guests"`
	Location  *string         `json:"location"`
	EventType *string         `json:"event_type"`
	Message   *string         `json:"message"`
}

// Inquiry is a validated, normalized event booking inquiry.
type Inquiry struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	EventDate string    `json:"event_date"`
	Guests    int       `json:"guests"`
	Location  string    `json:"location"`
	EventType string    `json:"event_type"`
	Message   *string   `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Enrich stamps the system-assigned fields on a freshly validated inquiry.
func (i *Inquiry) Enrich(now time.Time) {
	i.Status = StatusNew
	i.CreatedAt = now.UTC()
}

// Document converts the inquiry to the document written to the store.
// created_at is stored as ISO-8601 text and an absent message as null.
func (i *Inquiry) Document() Document {
	var message any
	if i.Message != nil {
		message = *i.Message
	}
	return Document{
		"name":       i.Name,
		"email":      i.Email,
		"phone":      i.Phone,
		"event_date": i.EventDate,
		"guests":     i.Guests,
		"location":   i.Location,
		"event_type": i.EventType,
		"message":    message,
		"status":     i.Status,
		"created_at": i.CreatedAt.Format(TimestampLayout),
	}
}

// InquiryResult is returned to the caller after a successful submission.
type InquiryResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
