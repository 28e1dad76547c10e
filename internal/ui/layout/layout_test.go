package layout

import "testing"

func TestFormatClock(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{754, "12:34"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{6000 * 60, "100:00:00"},
		{-5, "0:00"},
	}

	for _, c := range cases {
		if got := FormatClock(c.seconds); got != c.want {
			t.Errorf("FormatClock(%d) = %q, want %q", c.seconds, got, c.want)
		}
	}
}

func TestIsTooSmall(t *testing.T) {
	if IsTooSmall(80, 24) {
		t.Error("80x24 is the minimum, not too small")
	}
	if !IsTooSmall(79, 24) {
		t.Error("expected 79x24 to be too small")
	}
	if !IsTooSmall(80, 23) {
		t.Error("expected 80x23 to be too small")
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 24 {
		t.Errorf("expected 24, got %d", got)
	}
	if got := ContentHeight(3); got != 0 {
		t.Errorf("expected clamp to 0, got %d", got)
	}
}
