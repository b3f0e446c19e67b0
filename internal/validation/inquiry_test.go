package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vivopizza/internal/domain"
	apperrors "vivopizza/pkg/errors"
)

func ptr[T any](v T) *T { return &v }

func validPayload() *domain.InquiryPayload {
	return &domain.InquiryPayload{
		Name:      ptr("Anna Huber"),
		Email:     ptr("anna@example.com"),
		Phone:     ptr("+43664123456"),
		EventDate: ptr("2025-12-24"),
		Guests:    json.RawMessage("50"),
		Location:  ptr("Bregenz"),
		EventType: ptr("wedding"),
	}
}

func requireFieldError(t *testing.T, err error, field string, rule apperrors.Rule) {
	t.Helper()
	verr, ok := apperrors.AsValidation(err)
	require.True(t, ok, "expected validation error, got %v", err)
	for _, f := range verr.Fields {
		if f.Field == field {
			assert.Equal(t, rule, f.Rule, "rule for %s", field)
			return
		}
	}
	t.Fatalf("expected violation on %q, got %+v", field, verr.Fields)
}

func TestValidateInquiry_Valid(t *testing.T) {
	inq, err := ValidateInquiry(validPayload())
	require.NoError(t, err)

	assert.Equal(t, "Anna Huber", inq.Name)
	assert.Equal(t, "anna@example.com", inq.Email)
	assert.Equal(t, 50, inq.Guests)
	assert.Nil(t, inq.Message)
	assert.Empty(t, inq.Status)
	assert.True(t, inq.CreatedAt.IsZero())
}

func TestValidateInquiry_Normalizes(t *testing.T) {
	p := validPayload()
	p.Name = ptr("  Anna Huber  ")
	p.Email = ptr(" Anna.Huber@Example.COM ")
	p.Message = ptr("  Bitte mit vegetarischer Option  ")

	inq, err := ValidateInquiry(p)
	require.NoError(t, err)

	assert.Equal(t, "Anna Huber", inq.Name)
	assert.Equal(t, "Anna.Huber@example.com", inq.Email)
	require.NotNil(t, inq.Message)
	assert.Equal(t, "Bitte mit vegetarischer Option", *inq.Message)
}

func TestValidateInquiry_Message(t *testing.T) {
	tests := []struct {
		name    string
		message *string
		wantNil bool
		wantErr bool
	}{
		{name: "absent", message: nil, wantNil: true},
		{name: "blank", message: ptr("   "), wantNil: true},
		{name: "max length", message: ptr(strings.Repeat("m", MessageMaxLength))},
		{name: "too long", message: ptr(strings.Repeat("m", MessageMaxLength+1)), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			p.Message = tt.message

			inq, err := ValidateInquiry(p)
			if tt.wantErr {
				requireFieldError(t, err, "message", apperrors.RuleMaxLength)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNil, inq.Message == nil)
		})
	}
}

func TestValidateInquiry_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *domain.InquiryPayload)
		field  string
		rule   apperrors.Rule
	}{
		{name: "guests 1", mutate: func(p *domain.InquiryPayload) { p.Guests = json.RawMessage("1") }},
		{name: "guests 1000", mutate: func(p *domain.InquiryPayload) { p.Guests = json.RawMessage("1000") }},
		{name: "guests 0", mutate: func(p *domain.InquiryPayload) { p.Guests = json.RawMessage("0") }, field: "guests", rule: apperrors.RuleMinimum},
		{name: "guests 1001", mutate: func(p *domain.InquiryPayload) { p.Guests = json.RawMessage("1001") }, field: "guests", rule: apperrors.RuleMaximum},
		{name: "guests negative", mutate: func(p *domain.InquiryPayload) { p.Guests = json.RawMessage("-5") }, field: "guests", rule: apperrors.RuleMinimum},
		{name: "name 2", mutate: func(p *domain.InquiryPayload) { p.Name = ptr("Al") }},
		{name: "name 120", mutate: func(p *domain.InquiryPayload) { p.Name = ptr(strings.Repeat("n", 120)) }},
		{name: "name 120 multibyte", mutate: func(p *domain.InquiryPayload) { p.Name = ptr(strings.Repeat("ü", 120)) }},
		{name: "name 2 with trailing space", mutate: func(p *domain.InquiryPayload) { p.Name = ptr("A ") }},
		{name: "name padded to 5", mutate: func(p *domain.InquiryPayload) { p.Name = ptr("  A  ") }},
		{name: "name blank", mutate: func(p *domain.InquiryPayload) { p.Name = ptr("   ") }, field: "name", rule: apperrors.RuleRequired},
		{name: "name 120 plus padding", mutate: func(p *domain.InquiryPayload) { p.Name = ptr(" " + strings.Repeat("n", 120)) }, field: "name", rule: apperrors.RuleMaxLength},
		{name: "name 1", mutate: func(p *domain.InquiryPayload) { p.Name = ptr("A") }, field: "name", rule: apperrors.RuleMinLength},
		{name: "name 121", mutate: func(p *domain.InquiryPayload) { p.Name = ptr(strings.Repeat("n", 121)) }, field: "name", rule: apperrors.RuleMaxLength},
		{name: "phone 5", mutate: func(p *domain.InquiryPayload) { p.Phone = ptr("12345") }},
		{name: "phone 4", mutate: func(p *domain.InquiryPayload) { p.Phone = ptr("1234") }, field: "phone", rule: apperrors.RuleMinLength},
		{name: "phone 41", mutate: func(p *domain.InquiryPayload) { p.Phone = ptr(strings.Repeat("1", 41)) }, field: "phone", rule: apperrors.RuleMaxLength},
		{name: "location 200", mutate: func(p *domain.InquiryPayload) { p.Location = ptr(strings.Repeat("l", 200)) }},
		{name: "location 201", mutate: func(p *domain.InquiryPayload) { p.Location = ptr(strings.Repeat("l", 201)) }, field: "location", rule: apperrors.RuleMaxLength},
		{name: "event_type 1", mutate: func(p *domain.InquiryPayload) { p.EventType = ptr("x") }, field: "event_type", rule: apperrors.RuleMinLength},
		{name: "event_type 101", mutate: func(p *domain.InquiryPayload) { p.EventType = ptr(strings.Repeat("e", 101)) }, field: "event_type", rule: apperrors.RuleMaxLength},
		{name: "event_date blank", mutate: func(p *domain.InquiryPayload) { p.EventDate = ptr("  ") }, field: "event_date", rule: apperrors.RuleRequired},
		{name: "event_date human readable", mutate: func(p *domain.InquiryPayload) { p.EventDate = ptr("Heiligabend 2025") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(p)

			_, err := ValidateInquiry(p)
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			requireFieldError(t, err, tt.field, tt.rule)
		})
	}
}

func TestValidateInquiry_Email(t *testing.T) {
	valid := []string{"anna@example.com", "anna.huber+events@vivo-pizza.at", "jürgen@example.at", "anna@münchen.de"}
	invalid := []string{
		"not-an-email", "anna@", "@example.com", "anna@example", "anna@example.", "anna@.example.com",
		"Anna <anna@example.com>", "anna@example.com (Anna)", "anna huber@example.com",
	}

	for _, email := range valid {
		p := validPayload()
		p.Email = ptr(email)
		_, err := ValidateInquiry(p)
		assert.NoError(t, err, email)
	}
	for _, email := range invalid {
		p := validPayload()
		p.Email = ptr(email)
		_, err := ValidateInquiry(p)
		requireFieldError(t, err, "email", apperrors.RuleFormat)
	}
}

func TestValidateInquiry_EmailDomainLowercased(t *testing.T) {
	p := validPayload()
	p.Email = ptr("Jürgen.Mayr@Vivo-Pizza.AT")

	inq, err := ValidateInquiry(p)
	require.NoError(t, err)
	assert.Equal(t, "Jürgen.Mayr@vivo-pizza.at", inq.Email)
}

func TestValidateInquiry_Guests(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		rule apperrors.Rule
	}{
		{raw: `50`, want: 50},
		{raw: `"50"`, want: 50},
		{raw: `" 50 "`, want: 50},
		{raw: `50.0`, want: 50},
		{raw: `"50.0"`, want: 50},
		{raw: `1e2`, want: 100},
		{raw: `null`, rule: apperrors.RuleRequired},
		{raw: `"fifty"`, rule: apperrors.RuleType},
		{raw: `""`, rule: apperrors.RuleType},
		{raw: `12.5`, rule: apperrors.RuleType},
		{raw: `"12.5"`, rule: apperrors.RuleType},
		{raw: `true`, rule: apperrors.RuleType},
		{raw: `[50]`, rule: apperrors.RuleType},
		{raw: `{}`, rule: apperrors.RuleType},
		{raw: `"0x32"`, rule: apperrors.RuleType},
		{raw: `0.0`, rule: apperrors.RuleMinimum},
		{raw: `"1001"`, rule: apperrors.RuleMaximum},
		{raw: `1e400`, rule: apperrors.RuleType},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			p := validPayload()
			p.Guests = json.RawMessage(tt.raw)

			inq, err := ValidateInquiry(p)
			if tt.rule != "" {
				requireFieldError(t, err, "guests", tt.rule)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, inq.Guests)
		})
	}
}

// Scenario B
func TestValidateInquiry_InvalidEmail(t *testing.T) {
	p := validPayload()
	p.Email = ptr("not-an-email")

	_, err := ValidateInquiry(p)
	requireFieldError(t, err, "email", apperrors.RuleFormat)

	verr, _ := apperrors.AsValidation(err)
	assert.Len(t, verr.Fields, 1)
}

// Scenario C
func TestValidateInquiry_MissingGuests(t *testing.T) {
	p := validPayload()
	p.Guests = nil

	_, err := ValidateInquiry(p)
	requireFieldError(t, err, "guests", apperrors.RuleRequired)
}

func TestValidateInquiry_AllMissing(t *testing.T) {
	_, err := ValidateInquiry(&domain.InquiryPayload{})

	verr, ok := apperrors.AsValidation(err)
	require.True(t, ok)

	fields := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		fields[i] = f.Field
		assert.Equal(t, apperrors.RuleRequired, f.Rule)
	}
	assert.Equal(t, []string{"name", "email", "phone", "event_date", "guests", "location", "event_type"}, fields)

	_, err = ValidateInquiry(nil)
	assert.True(t, apperrors.IsValidation(err))
}

func TestFromDecodeError(t *testing.T) {
	decode := func(body string) error {
		var p domain.InquiryPayload
		return FromDecodeError(&p, json.NewDecoder(strings.NewReader(body)).Decode(&p))
	}

	assert.NoError(t, decode(`{"guests": 50}`))
	assert.NoError(t, decode(`{"guests": "many"}`))

	requireFieldError(t, decode(`{"name": 42}`), "name", apperrors.RuleType)
	requireFieldError(t, decode(`{"message": false}`), "message", apperrors.RuleType)

	err := decode(`{"name":`)
	assert.True(t, apperrors.IsBadRequest(err))
	assert.False(t, apperrors.IsValidation(err))

	assert.True(t, apperrors.IsBadRequest(decode(``)))
	assert.True(t, apperrors.IsBadRequest(decode(`[1,2]`)))
}

func TestFromDecodeError_KeepsOtherViolations(t *testing.T) {
	body := `{"name":"A","email":42,"phone":"+43664123456","event_date":"2025-12-24","guests":"x","location":"Bregenz","event_type":"wedding"}`

	var p domain.InquiryPayload
	err := FromDecodeError(&p, json.NewDecoder(strings.NewReader(body)).Decode(&p))

	verr, ok := apperrors.AsValidation(err)
	require.True(t, ok, "expected validation error, got %v", err)
	assert.Equal(t, []apperrors.FieldError{
		{Field: "name", Rule: apperrors.RuleMinLength, Message: "must be at least 2 characters"},
		{Field: "email", Rule: apperrors.RuleType, Message: "must be a string"},
		{Field: "guests", Rule: apperrors.RuleType, Message: "must be an integer"},
	}, verr.Fields)
}
