// Package param converts between request/response wire values and domain types.
package param

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ascend/internal/apperr"
)

// ID parses the {id} path parameter.
func ID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, apperr.NewValidationError("id", "must be a valid UUID")
	}

	return id, nil
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and keeps the calendar
// day only, as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}

	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// Date parses an optional date field named field.
func Date(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}

	t, err := ParseDate(*s)
	if err != nil {
		return nil, apperr.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}

	return &t, nil
}

// QueryDate reads an optional YYYY-MM-DD query parameter.
func QueryDate(r *http.Request, name string) (*time.Time, error) {
	s := r.URL.Query().Get(name)
	return Date(name, &s)
}

func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}

	return new(FormatDate(*t))
}

// Money renders an amount with exactly two decimals as a JSON number.
func Money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

// NullableString tells an absent JSON field apart from an explicit null.
// Set is true whenever the field was present; Value is nil for null.
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(b []byte) error {
	n.Set = true

	if string(b) == "null" {
		n.Value = nil
		return nil
	}

	return json.Unmarshal(b, &n.Value)
}

// Cleared reports whether the field was sent as null or an empty string.
func (n NullableString) Cleared() bool {
	return n.Set && (n.Value == nil || *n.Value == "")
}
