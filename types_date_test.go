package finboard

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2024-01-15", NewDate(2024, time.January, 15), false},
		{"2024-7-1", NewDate(2024, time.July, 1), false},
		{" 2024-01-15 ", NewDate(2024, time.January, 15), false},
		{"invalid-date", Date{}, true},
		{"15/01/2024", Date{}, true},
		{"", Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDate_Normalizes(t *testing.T) {
	// Out-of-range day rolls over to the next month.
	if got, want := NewDate(2024, time.January, 32), NewDate(2024, time.February, 1); got != want {
		t.Errorf("NewDate(2024, 1, 32) = %v, want %v", got, want)
	}
	if got, want := NewDate(2024, time.February, 28).Add(2), NewDate(2024, time.March, 1); got != want {
		t.Errorf("Add(2) over a leap February = %v, want %v", got, want)
	}
}

func TestDate_Ordering(t *testing.T) {
	a := NewDate(2024, time.January, 15)
	b := NewDate(2024, time.January, 16)
	if !a.Before(b) || b.Before(a) {
		t.Error("Before is inconsistent")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After is inconsistent")
	}
	if a.Before(a) || a.After(a) {
		t.Error("a day is neither before nor after itself")
	}
}

func TestDate_JSON(t *testing.T) {
	day := NewDate(2024, time.July, 1)
	data, err := json.Marshal(day)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got, want := string(data), `"2024-07-01"`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != day {
		t.Errorf("round trip = %v, want %v", back, day)
	}

	if err := json.Unmarshal([]byte(`"01/07/2024"`), &back); err == nil {
		t.Error("Unmarshal should reject non-ISO dates")
	}
}
