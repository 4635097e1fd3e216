package timecode

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00:00,000", 0},
		{"00:00:01,500", 1500},
		{"00:01:00,001", 60001},
		{"01:02:03,456", 3723456},
		{" 00:00:05,250 ", 5250},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "00:00", "00:00:00.000", "aa:bb:cc,ddd", "00:00:xx,000"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) expected error, got nil", in)
		}
	}
}

func TestFormatSRT(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00:00,000"},
		{1500, "00:00:01,500"},
		{3723456, "01:02:03,456"},
		{-10, "00:00:00,000"},
	}
	for _, tt := range tests {
		if got := FormatSRT(tt.in); got != tt.want {
			t.Errorf("FormatSRT(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatVTT(t *testing.T) {
	if got := FormatVTT(5250); got != "00:00:05.250" {
		t.Errorf("FormatVTT(5250) = %q, want 00:00:05.250", got)
	}
}

func TestFormatASS(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0:00:00.00"},
		{1.5, "0:00:01.50"},
		{3723.456, "1:02:03.46"},
		{-3, "0:00:00.00"},
		// rounding up across the centisecond boundary clamps to 99
		{59.999, "0:00:59.99"},
	}
	for _, tt := range tests {
		if got := FormatASS(tt.in); got != tt.want {
			t.Errorf("FormatASS(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, ms := range []int{0, 1, 999, 1000, 61001, 3600000, 86399999} {
		got, err := Parse(FormatSRT(ms))
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", ms, err)
		}
		if got != ms {
			t.Errorf("round trip of %d = %d", ms, got)
		}
	}
}
