package availability

import "testing"

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		a0, a1, b0, b1 int
		want           bool
	}{
		{"disjoint before", 540, 570, 600, 630, false},
		{"touching end to start", 540, 600, 600, 630, false},
		{"touching start to end", 600, 630, 540, 600, false},
		{"partial overlap", 585, 615, 600, 630, true},
		{"contained", 600, 615, 540, 660, true},
		{"containing", 540, 660, 600, 615, true},
		{"identical", 600, 630, 600, 630, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a0, tc.a1, tc.b0, tc.b1); got != tc.want {
				t.Fatalf("Overlaps(%d,%d,%d,%d) = %v, want %v", tc.a0, tc.a1, tc.b0, tc.b1, got, tc.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"12:30", 750, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9:00", 0, true},
		{"0900", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"12:3a", 0, true},
		{" 9:00", 0, true},
		{"09:5 ", 0, true},
		{"1a:00", 0, true},
		{"-1:00", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseClock(%q): expected error", tc.in)
			}
			if _, ok := err.(*ValidationError); !ok {
				t.Fatalf("ParseClock(%q): expected *ValidationError, got %T", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseClock(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(540); got != "09:00" {
		t.Fatalf(`FormatClock(540) = %q, want "09:00"`, got)
	}
	if got := FormatClock(1439); got != "23:59" {
		t.Fatalf(`FormatClock(1439) = %q, want "23:59"`, got)
	}
	if got := FormatClock(0); got != "00:00" {
		t.Fatalf(`FormatClock(0) = %q, want "00:00"`, got)
	}
}
