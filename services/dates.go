package services

import "time"

// TruncateDay cắt giờ phút giây, giữ lại ngày theo location của t
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay so sánh hai thời điểm theo ngày
func SameDay(a, b time.Time) bool {
	return TruncateDay(a).Equal(TruncateDay(b))
}

// DayInRange kiểm tra ngày của t nằm trong [from, to] (cắt theo ngày, bao cả hai đầu)
func DayInRange(t, from, to time.Time) bool {
	day := TruncateDay(t)
	return !day.Before(TruncateDay(from)) && !day.After(TruncateDay(to))
}

// NightsBetween số đêm giữa hai ngày theo chênh lệch ngày lịch, tối thiểu 1
func NightsBetween(checkIn, checkOut time.Time) int {
	nights := int(TruncateDay(checkOut).Sub(TruncateDay(checkIn)).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// EachDay duyệt từng ngày trong [from, to], gọi fn với ngày đã cắt
func EachDay(from, to time.Time, fn func(day time.Time)) {
	for d := TruncateDay(from); !d.After(TruncateDay(to)); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}
