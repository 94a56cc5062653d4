package utils

import "testing"

func TestParseTime(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"09:05:00", 545},
		{"09:05", 545},
		{"00:00:00", 0},
		{"23:59:59", 1439},
		{"12:30", 750},
	}
	for _, tc := range cases {
		if got := ParseTime(tc.in); got != tc.want {
			t.Errorf("ParseTime(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseTimeMalformed(t *testing.T) {
	if got := ParseTime("nonsense"); got != 0 {
		t.Errorf("ParseTime on malformed input = %d, want 0", got)
	}
}

func TestFormatTime(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{545, "09:05:00"},
		{0, "00:00:00"},
		{1439, "23:59:00"},
		{600, "10:00:00"},
	}
	for _, tc := range cases {
		if got := FormatTime(tc.in); got != tc.want {
			t.Errorf("FormatTime(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTimeRoundTrip(t *testing.T) {
	for m := 0; m < 1440; m++ {
		if got := ParseTime(FormatTime(m)); got != m {
			t.Fatalf("round trip failed for %d: got %d", m, got)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	if got := AddMinutes(540, 30); got != 570 {
		t.Errorf("AddMinutes(540, 30) = %d, want 570", got)
	}
	if got := AddMinutes(0, -15); got != -15 {
		t.Errorf("AddMinutes(0, -15) = %d, want -15", got)
	}
}
