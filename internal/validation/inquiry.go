// Package validation checks inquiry submissions against their field
// constraints and normalizes them into domain values.
package validation

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	goa "goa.design/goa/v3/pkg"

	"vivopizza/internal/domain"
	apperrors "vivopizza/pkg/errors"
)

// Field bounds, inclusive.
const (
	NameMinLength      = 2
	NameMaxLength      = 120
	PhoneMinLength     = 5
	PhoneMaxLength     = 40
	GuestsMin          = 1
	GuestsMax          = 1000
	LocationMinLength  = 2
	LocationMaxLength  = 200
	EventTypeMinLength = 2
	EventTypeMaxLength = 100
	MessageMaxLength   = 2000
)

// numberLiteral matches a JSON number, also when it arrives quoted.
var numberLiteral = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// ValidateInquiry checks p and returns the normalized inquiry. On failure it
// returns a *errors.ValidationError naming every offending field in the
// order the fields are declared.
func ValidateInquiry(p *domain.InquiryPayload) (*domain.Inquiry, error) {
	return validate(p, "")
}

func validate(p *domain.InquiryPayload, mistyped string) (*domain.Inquiry, error) {
	if p == nil {
		p = &domain.InquiryPayload{}
	}
	c := &checker{mistyped: mistyped}

	inq := &domain.Inquiry{
		Name:      c.text("name", p.Name, NameMinLength, NameMaxLength),
		Email:     c.email("email", p.Email),
		Phone:     c.text("phone", p.Phone, PhoneMinLength, PhoneMaxLength),
		EventDate: c.text("event_date", p.EventDate, 1, 0),
		Guests:    c.guests("guests", p.Guests),
		Location:  c.text("location", p.Location, LocationMinLength, LocationMaxLength),
		EventType: c.text("event_type", p.EventType, EventTypeMinLength, EventTypeMaxLength),
		Message:   c.message("message", p.Message),
	}

	if err := c.verr.ErrOrNil(); err != nil {
		return nil, err
	}
	return inq, nil
}

// checker collects field violations. mistyped names a field the decoder
// could not assign because the JSON value had the wrong type.
type checker struct {
	verr     apperrors.ValidationError
	mistyped string
}

func (c *checker) wrongType(name string) bool {
	if name != c.mistyped {
		return false
	}
	c.verr.Add(name, apperrors.RuleType, "must be %s", expectedType(name))
	return true
}

// text checks the length of v as submitted, in characters, and returns it
// trimmed. maxLen <= 0 means unbounded.
func (c *checker) text(name string, v *string, minLen, maxLen int) string {
	if c.wrongType(name) {
		return ""
	}
	if v == nil {
		c.verr.Add(name, apperrors.RuleRequired, "is required")
		return ""
	}
	s := strings.TrimSpace(*v)
	n := utf8.RuneCountInString(*v)
	switch {
	case s == "" && minLen > 0:
		c.verr.Add(name, apperrors.RuleRequired, "must not be empty")
	case n < minLen:
		c.verr.Add(name, apperrors.RuleMinLength, "must be at least %d characters", minLen)
	case maxLen > 0 && n > maxLen:
		c.verr.Add(name, apperrors.RuleMaxLength, "must be at most %d characters", maxLen)
	}
	return s
}

func (c *checker) email(name string, v *string) string {
	if c.wrongType(name) {
		return ""
	}
	if v == nil {
		c.verr.Add(name, apperrors.RuleRequired, "is required")
		return ""
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		c.verr.Add(name, apperrors.RuleRequired, "must not be empty")
		return s
	}
	if !validEmail(name, s) {
		c.verr.Add(name, apperrors.RuleFormat, "must be a valid email address")
		return s
	}
	at := strings.LastIndex(s, "@")
	return s[:at+1] + strings.ToLower(s[at+1:])
}

// validEmail accepts a bare addr-spec whose domain has at least one dot.
// Display names, comments and quoted local parts are rejected.
func validEmail(name, s string) bool {
	if err := goa.ValidateFormat(name, s, goa.FormatEmail); err != nil {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	host := s[strings.LastIndex(s, "@")+1:]
	return strings.Contains(host, ".") && !strings.HasPrefix(host, ".") && !strings.HasSuffix(host, ".")
}

// guests accepts a JSON number or numeric string holding a whole number.
func (c *checker) guests(name string, raw json.RawMessage) int {
	if c.wrongType(name) {
		return 0
	}
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		c.verr.Add(name, apperrors.RuleRequired, "is required")
		return 0
	}
	n, ok := parseWholeNumber(s)
	if !ok {
		c.verr.Add(name, apperrors.RuleType, "must be %s", expectedType(name))
		return 0
	}
	switch {
	case n < GuestsMin:
		c.verr.Add(name, apperrors.RuleMinimum, "must be at least %d", GuestsMin)
	case n > GuestsMax:
		c.verr.Add(name, apperrors.RuleMaximum, "must be at most %d", GuestsMax)
	default:
		return int(n)
	}
	return 0
}

func parseWholeNumber(s string) (float64, bool) {
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal([]byte(s), &str); err != nil {
			return 0, false
		}
		s = strings.TrimSpace(str)
	}
	if !numberLiteral.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return f, true
}

// message normalizes an absent, null or blank message to nil.
func (c *checker) message(name string, v *string) *string {
	if c.wrongType(name) || v == nil {
		return nil
	}
	if utf8.RuneCountInString(*v) > MessageMaxLength {
		c.verr.Add(name, apperrors.RuleMaxLength, "must be at most %d characters", MessageMaxLength)
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

// FromDecodeError classifies an error returned while decoding a request body
// into p. A type mismatch on a known field becomes a field-level
// ValidationError merged with the violations of the partially decoded p;
// anything else is reported as a malformed body.
func FromDecodeError(p *domain.InquiryPayload, err error) error {
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		if _, verr := validate(p, typeErr.Field); verr != nil {
			return verr
		}
		return apperrors.NewFieldError(typeErr.Field, apperrors.RuleType, "must be "+expectedType(typeErr.Field))
	}
	if errors.Is(err, io.EOF) {
		return apperrors.New(apperrors.ErrCodeBadRequest, "request body is empty")
	}
	return apperrors.Wrap(apperrors.ErrCodeBadRequest, "request body is not valid JSON", err)
}

func expectedType(field string) string {
	if field == "guests" {
		return "an integer"
	}
	return "a string"
}
