package util

import (
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TM_TEST_STR", "  value ")
	if got := GetEnv("TM_TEST_STR", "x"); got != "value" {
		t.Errorf("GetEnv = %q", got)
	}
	t.Setenv("TM_TEST_STR", "   ")
	if got := GetEnv("TM_TEST_STR", "x"); got != "x" {
		t.Errorf("blank GetEnv = %q", got)
	}
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"", true, true},
		{"true", false, true},
		{"YES", false, true},
		{" on ", false, true},
		{"1", false, true},
		{"false", true, false},
		{"Off", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		t.Setenv("TM_TEST_BOOL", tt.value)
		if got := ParseBoolEnv("TM_TEST_BOOL", tt.def); got != tt.want {
			t.Errorf("ParseBoolEnv(%q, %v) = %v, want %v", tt.value, tt.def, got, tt.want)
		}
	}
}

func TestParseIntEnv(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"", 10},
		{"25", 25},
		{" 3 ", 3},
		{"0", 10},
		{"-4", 10},
		{"ten", 10},
	}
	for _, tt := range tests {
		t.Setenv("TM_TEST_INT", tt.value)
		if got := ParseIntEnv("TM_TEST_INT", 10); got != tt.want {
			t.Errorf("ParseIntEnv(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestParseDurationEnv(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"", time.Minute},
		{"90", 90 * time.Second},
		{"6h", 6 * time.Hour},
		{"1m30s", 90 * time.Second},
		{"-5s", time.Minute},
		{"soon", time.Minute},
	}
	for _, tt := range tests {
		t.Setenv("TM_TEST_DUR", tt.value)
		if got := ParseDurationEnv("TM_TEST_DUR", time.Minute); got != tt.want {
			t.Errorf("ParseDurationEnv(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
