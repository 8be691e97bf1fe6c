package diag

import "testing"

func TestCodeTitleIsStableReasonTag(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{ParseInvalidNumber, "Invalid subtitle number"},
		{ParseMissingTime, "Missing time line"},
		{ParseMissingArrow, "Missing ' --> '"},
		{TimeInvalidHours, "Invalid hours"},
		{TimeInvalidMinutes, "Invalid minutes"},
		{TimeInvalidSeconds, "Invalid seconds"},
		{TimeInvalidMillis, "Invalid millis"},
		{ShiftNegativeResult, "NegativeResult"},
	}
	for _, tt := range tests {
		if got := tt.code.Title(); got != tt.want {
			t.Errorf("Title(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{ParseInvalidNumber, "SRT1001"},
		{TimeInvalidSeconds, "TIM2003"},
		{ShiftNegativeResult, "SHF3001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("ID(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
