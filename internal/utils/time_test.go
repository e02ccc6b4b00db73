package utils

import "testing"

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"13:30", 810, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"8am", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeToMinutes(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimeToMinutes(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeToMinutes(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFormatMinutesRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 480, 810, 1225, 1439} {
		formatted := FormatMinutes(minutes)
		back, err := ParseTimeToMinutes(formatted)
		if err != nil {
			t.Errorf("FormatMinutes(%d) = %q does not parse: %v", minutes, formatted, err)
			continue
		}
		if back != minutes {
			t.Errorf("round trip %d -> %q -> %d", minutes, formatted, back)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if !ValidateTimeFormat("09:30") || ValidateTimeFormat("9:30pm") {
		t.Error("time format validation misbehaved")
	}
	if !ValidateDateFormat("2026-03-01") || ValidateDateFormat("03/01/2026") {
		t.Error("date format validation misbehaved")
	}
}
