package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator checks the shape of a decoded JSON payload and returns every
// problem found, not just the first.
type Validator func(payload map[string]interface{}) []FieldError

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9+\-\s()]{6,20}$`)
)

func stringField(m map[string]interface{}, key string) (string, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return strings.TrimSpace(s), ok
}

func numberField(m map[string]interface{}, key string) (float64, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, false
	}
	// encoding/json decodes every number as float64
	n, ok := v.(float64)
	return n, ok
}

func requireString(m map[string]interface{}, key string, minLen int, errs []FieldError) []FieldError {
	s, ok := stringField(m, key)
	if !ok || s == "" {
		return append(errs, FieldError{Field: key, Message: fmt.Sprintf("%s is required", key)})
	}
	if len(s) < minLen {
		return append(errs, FieldError{Field: key, Message: fmt.Sprintf("%s must be at least %d characters", key, minLen)})
	}
	return errs
}

// parseDate accepts "2006-01-02" or RFC3339 and normalizes to start of day.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return now.New(t).BeginningOfDay(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// ValidateBooking checks a public booking inquiry.
func ValidateBooking(payload map[string]interface{}) []FieldError {
	var errs []FieldError

	errs = requireString(payload, "guest_name", 2, errs)

	email, ok := stringField(payload, "guest_email")
	if !ok || email == "" {
		errs = append(errs, FieldError{Field: "guest_email", Message: "guest_email is required"})
	} else if !emailRe.MatchString(email) {
		errs = append(errs, FieldError{Field: "guest_email", Message: "guest_email must be a valid email address"})
	}

	if phone, ok := stringField(payload, "guest_phone"); ok && phone != "" && !phoneRe.MatchString(phone) {
		errs = append(errs, FieldError{Field: "guest_phone", Message: "guest_phone must be a valid phone number"})
	}

	if guests, ok := numberField(payload, "guests"); ok {
		if guests < 1 || guests > 10 {
			errs = append(errs, FieldError{Field: "guests", Message: "guests must be between 1 and 10"})
		}
	}

	checkInStr, _ := stringField(payload, "check_in")
	checkOutStr, _ := stringField(payload, "check_out")

	var checkIn, checkOut time.Time
	var inErr, outErr error

	if checkInStr == "" {
		errs = append(errs, FieldError{Field: "check_in", Message: "check_in is required"})
	} else if checkIn, inErr = parseDate(checkInStr); inErr != nil {
		errs = append(errs, FieldError{Field: "check_in", Message: "check_in must be a valid date"})
	}

	if checkOutStr == "" {
		errs = append(errs, FieldError{Field: "check_out", Message: "check_out is required"})
	} else if checkOut, outErr = parseDate(checkOutStr); outErr != nil {
		errs = append(errs, FieldError{Field: "check_out", Message: "check_out must be a valid date"})
	}

	// cross-field rule: checkout strictly after checkin
	if inErr == nil && outErr == nil && checkInStr != "" && checkOutStr != "" {
		if !checkOut.After(checkIn) {
			errs = append(errs, FieldError{Field: "check_out", Message: "check_out must be after check_in"})
		}
	}

	return errs
}

// ValidateRoom checks an admin room create payload.
func ValidateRoom(payload map[string]interface{}) []FieldError {
	var errs []FieldError

	errs = requireString(payload, "name", 2, errs)
	errs = requireString(payload, "slug", 2, errs)

	if price, ok := numberField(payload, "price"); ok && price < 0 {
		errs = append(errs, FieldError{Field: "price", Message: "price must not be negative"})
	}
	if capacity, ok := numberField(payload, "capacity"); ok {
		if capacity < 1 || capacity > 20 {
			errs = append(errs, FieldError{Field: "capacity", Message: "capacity must be between 1 and 20"})
		}
	}

	return errs
}

// ValidateContact checks a public contact-form submission.
func ValidateContact(payload map[string]interface{}) []FieldError {
	var errs []FieldError

	errs = requireString(payload, "name", 2, errs)

	email, ok := stringField(payload, "email")
	if !ok || email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if !emailRe.MatchString(email) {
		errs = append(errs, FieldError{Field: "email", Message: "email must be a valid email address"})
	}

	if phone, ok := stringField(payload, "phone"); ok && phone != "" && !phoneRe.MatchString(phone) {
		errs = append(errs, FieldError{Field: "phone", Message: "phone must be a valid phone number"})
	}

	errs = requireString(payload, "message", 5, errs)

	return errs
}

// ValidateTestimonial checks an admin testimonial payload.
func ValidateTestimonial(payload map[string]interface{}) []FieldError {
	var errs []FieldError

	errs = requireString(payload, "guest_name", 2, errs)
	errs = requireString(payload, "text", 5, errs)

	if rating, ok := numberField(payload, "rating"); ok {
		if rating < 1 || rating > 5 {
			errs = append(errs, FieldError{Field: "rating", Message: "rating must be between 1 and 5"})
		}
	}

	return errs
}

// ValidateBlogPost checks an admin blog post create payload.
func ValidateBlogPost(payload map[string]interface{}) []FieldError {
	var errs []FieldError

	errs = requireString(payload, "title", 2, errs)
	errs = requireString(payload, "slug", 2, errs)

	return errs
}
