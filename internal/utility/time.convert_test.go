package utility

import (
	"testing"
	"time"
)

func TestCombineDayAndWallTime(t *testing.T) {
	got, err := CombineDayAndWallTime("2026-03-02", "11:30")
	if err != nil {
		t.Fatalf("CombineDayAndWallTime lỗi: %v", err)
	}

	want := time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC).UnixMilli()
	if got != want {
		t.Errorf("CombineDayAndWallTime = %d, want %d", got, want)
	}
}

func TestCombineDayAndWallTime_InputKhongHopLe(t *testing.T) {
	cases := []struct {
		name    string
		dayKey  string
		wall    string
	}{
		{"ngày sai định dạng", "02/03/2026", "11:30"},
		{"giờ sai định dạng", "2026-03-02", "11h30"},
		{"ngày rỗng", "", "11:30"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := CombineDayAndWallTime(tc.dayKey, tc.wall); err == nil {
				t.Errorf("input không hợp lệ phải trả lỗi")
			}
		})
	}
}

func TestWeekdayAndHourOf(t *testing.T) {
	// 2026-03-02 là thứ Hai
	milli := time.Date(2026, 3, 2, 14, 45, 0, 0, time.UTC).UnixMilli()

	weekday, hour := WeekdayAndHourOf(milli)
	if weekday != 1 {
		t.Errorf("weekday = %d, want 1 (thứ Hai)", weekday)
	}
	if hour != 14 {
		t.Errorf("hour = %d, want 14", hour)
	}
}

func TestDayKeyRoundTrip(t *testing.T) {
	parsed, err := ParseDayKey("2026-03-02")
	if err != nil {
		t.Fatalf("ParseDayKey lỗi: %v", err)
	}
	if got := FormatDayKey(parsed); got != "2026-03-02" {
		t.Errorf("FormatDayKey = %q, want %q", got, "2026-03-02")
	}
}

func TestMinutesToDuration(t *testing.T) {
	if got := MinutesToDuration(30); got != 30*time.Minute {
		t.Errorf("MinutesToDuration(30) = %v, want %v", got, 30*time.Minute)
	}
}
