package utility

import (
	"fmt"
	"time"
)

// Các layout thời gian dùng chung trong hệ thống
const (
	DayKeyLayout   = "2006-01-02" // Khóa theo ngày của task
	WallTimeLayout = "15:04"      // Giờ trong ngày (check-in/check-out)
)

// ParseDayKey parse chuỗi ngày "2006-01-02" thành time.Time (00:00 UTC)
// @params - chuỗi ngày cần parse
// @returns - time.Time và lỗi nếu có
func ParseDayKey(dayKey string) (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyLayout, dayKey, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("day key không hợp lệ %q: %w", dayKey, err)
	}
	return t, nil
}

// FormatDayKey chuyển time.Time thành khóa ngày "2006-01-02" (theo UTC)
func FormatDayKey(t time.Time) string {
	return t.UTC().Format(DayKeyLayout)
}

// CombineDayAndWallTime ghép khóa ngày với giờ trong ngày ("15:04")
// thành mốc thời gian UnixMilli. Mọi phép cộng trừ thời gian trong hệ thống
// đều đi qua time.Time / time.Duration, không thao tác trên chuỗi.
//
// @params - dayKey: khóa ngày "2006-01-02"; wallTime: giờ trong ngày "15:04"
// @returns - mốc thời gian UnixMilli và lỗi nếu có
func CombineDayAndWallTime(dayKey string, wallTime string) (int64, error) {
	day, err := ParseDayKey(dayKey)
	if err != nil {
		return 0, err
	}
	wt, err := time.ParseInLocation(WallTimeLayout, wallTime, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("wall time không hợp lệ %q: %w", wallTime, err)
	}
	combined := day.Add(time.Duration(wt.Hour())*time.Hour + time.Duration(wt.Minute())*time.Minute)
	return combined.UnixMilli(), nil
}

// WeekdayAndHourOf trả về (weekday 0-6, hour 0-23) của một mốc UnixMilli theo UTC
// Dùng cho bucket của assignment pattern
func WeekdayAndHourOf(unixMilli int64) (int, int) {
	t := time.UnixMilli(unixMilli).UTC()
	return int(t.Weekday()), t.Hour()
}

// MinutesToDuration chuyển số phút (int) thành time.Duration
func MinutesToDuration(minutes int) time.Duration {
	return time.Duration(minutes) * time.Minute
}
