package services

import (
	"testing"
	"time"

	"hms/constants"
	"hms/models"
)

func TestCheckSlaBreaches(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	minutesAgo := func(m int) time.Time { return now.Add(-time.Duration(m) * time.Minute) }

	rules := []models.SlaRule{
		{Category: "Housekeeping", TimeLimitMinutes: 30},
		{Category: "Maintenance", TimeLimitMinutes: 60},
	}

	requests := []models.ServiceRequest{
		{ID: 1, Name: "Dọn phòng 101", Category: "Housekeeping", Status: constants.RequestStatusPending, CreatedAt: minutesAgo(45)},
		{ID: 2, Name: "Dọn phòng 102", Category: "Housekeeping", Status: constants.RequestStatusPending, CreatedAt: minutesAgo(10)},
		{ID: 3, Name: "Sửa điều hòa", Category: "Maintenance", Status: constants.RequestStatusInProgress, CreatedAt: minutesAgo(90)},
		// Completed ra khỏi diện quét dù quá hạn từ lâu
		{ID: 4, Name: "Dọn phòng 103", Category: "Housekeeping", Status: constants.RequestStatusCompleted, CreatedAt: minutesAgo(500)},
		// Category không có rule thì không bao giờ cảnh báo
		{ID: 5, Name: "Gọi taxi", Category: "Concierge", Status: constants.RequestStatusPending, CreatedAt: minutesAgo(500)},
		// Khẩn cấp luôn cảnh báo kể cả khi vừa tạo và không có rule
		{ID: 6, Name: "Cháy bếp", Category: "Safety", Status: constants.RequestStatusPending, IsEmergency: true, CreatedAt: minutesAgo(1)},
	}

	alerts := CheckSlaBreaches(requests, rules, now)

	if len(alerts) != 3 {
		t.Fatalf("len(alerts) = %d, want 3: %+v", len(alerts), alerts)
	}

	// Khẩn cấp đứng đầu
	if alerts[0].Type != AlertTypeEmergency || alerts[0].RequestID != 6 {
		t.Errorf("alerts[0] = %+v, want emergency request 6", alerts[0])
	}

	// Còn lại theo thời gian chờ giảm dần
	if alerts[1].RequestID != 3 || alerts[2].RequestID != 1 {
		t.Errorf("thứ tự breach sai: %d, %d (want 3, 1)", alerts[1].RequestID, alerts[2].RequestID)
	}

	if alerts[2].LimitMinutes != 30 || alerts[2].OverdueMinutes != 15 {
		t.Errorf("alerts[2] limit/overdue = %d/%v, want 30/15", alerts[2].LimitMinutes, alerts[2].OverdueMinutes)
	}
}

func TestCheckSlaBreachesExactCategoryMatch(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	rules := []models.SlaRule{{Category: "Housekeeping", TimeLimitMinutes: 5}}
	requests := []models.ServiceRequest{
		// So khớp đúng chuỗi: "housekeeping" thường không khớp rule "Housekeeping"
		{ID: 1, Category: "housekeeping", Status: constants.RequestStatusPending, CreatedAt: now.Add(-2 * time.Hour)},
	}

	if alerts := CheckSlaBreaches(requests, rules, now); len(alerts) != 0 {
		t.Errorf("category khác hoa thường không được khớp rule, got %+v", alerts)
	}
}

func TestCheckSlaBreachesAtExactLimit(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	rules := []models.SlaRule{{Category: "Housekeeping", TimeLimitMinutes: 30}}
	requests := []models.ServiceRequest{
		{ID: 1, Category: "Housekeeping", Status: constants.RequestStatusPending, CreatedAt: now.Add(-30 * time.Minute)},
	}

	// Đúng bằng giới hạn thì chưa breach, phải vượt qua mới cảnh báo
	if alerts := CheckSlaBreaches(requests, rules, now); len(alerts) != 0 {
		t.Errorf("đúng giới hạn chưa phải breach, got %+v", alerts)
	}
}
