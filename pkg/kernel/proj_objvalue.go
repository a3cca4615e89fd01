package kernel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type Email string

// Normalize lower-cases and trims the address; emails are stored this way
func (e Email) Normalize() Email {
	return Email(strings.ToLower(strings.TrimSpace(string(e))))
}

func (e Email) String() string { return string(e) }

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
)

// StringList accepts either a JSON string or a JSON array of strings.
// A nil StringList means the field was absent (or an empty string was sent);
// an empty JSON array yields a non-nil empty list.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*l = nil
			return nil
		}
		*l = StringList{s}
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("expected string or array of strings: %w", err)
	}
	if items == nil {
		items = []string{}
	}
	*l = items
	return nil
}

// Strings returns a copy as a plain slice, never nil
func (l StringList) Strings() []string {
	out := make([]string, len(l))
	copy(out, l)
	return out
}

// FlexString accepts a JSON string or number and keeps its textual form
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// FlexNumber accepts a JSON number or a numeric string such as "6"
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("expected a number: %q", data)
	}
	*n = FlexNumber(v)
	return nil
}

func (n FlexNumber) Int() int { return int(n) }
