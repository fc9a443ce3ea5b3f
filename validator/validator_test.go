package validator

import (
	"testing"
	"time"

	"hms/models"
)

func TestValidateStay(t *testing.T) {
	checkIn := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)

	valid := models.Stay{
		GuestName:    "Nguyễn Văn A",
		RoomID:       1,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		RoomCharge:   500,
	}

	if err := ValidateStay(&valid); err != nil {
		t.Errorf("stay hợp lệ bị từ chối: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(s *models.Stay)
	}{
		{"missing guest name", func(s *models.Stay) { s.GuestName = "" }},
		{"missing room", func(s *models.Stay) { s.RoomID = 0 }},
		{"zero dates", func(s *models.Stay) { s.CheckInDate = time.Time{} }},
		{"check-out not after check-in", func(s *models.Stay) { s.CheckOutDate = s.CheckInDate }},
		{"negative charge", func(s *models.Stay) { s.RoomCharge = -1 }},
		{"negative paid amount", func(s *models.Stay) { s.PaidAmount = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay := valid
			tt.mutate(&stay)
			if err := ValidateStay(&stay); err == nil {
				t.Error("ValidateStay() phải trả lỗi")
			}
		})
	}
}

func TestValidateServiceRequest(t *testing.T) {
	stayID := uint(1)

	valid := models.ServiceRequest{
		Name:     "Dọn phòng",
		Category: "Housekeeping",
		Price:    0,
	}
	if err := ValidateServiceRequest(&valid); err != nil {
		t.Errorf("request hợp lệ bị từ chối: %v", err)
	}

	billable := models.ServiceRequest{
		Name:     "Club Sandwich",
		Category: "F&B",
		Price:    120,
		Billable: true,
	}
	if err := ValidateServiceRequest(&billable); err == nil {
		t.Error("request billable không có stay phải trả lỗi")
	}

	billable.StayID = &stayID
	if err := ValidateServiceRequest(&billable); err != nil {
		t.Errorf("request billable có stay bị từ chối: %v", err)
	}
}

func TestValidateShift(t *testing.T) {
	tests := []struct {
		name    string
		shift   models.Shift
		wantErr bool
	}{
		{"valid", models.Shift{Name: "Ca sáng", StartTime: "06:00", EndTime: "14:00"}, false},
		{"midnight boundary", models.Shift{Name: "Ca đêm", StartTime: "22:00", EndTime: "06:00"}, false},
		{"missing name", models.Shift{StartTime: "06:00", EndTime: "14:00"}, true},
		{"bad hour", models.Shift{Name: "Ca lạ", StartTime: "25:00", EndTime: "14:00"}, true},
		{"bad format", models.Shift{Name: "Ca lạ", StartTime: "6am", EndTime: "14:00"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShift(&tt.shift)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateShift() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDepartment(t *testing.T) {
	dept := models.Department{Name: "Housekeeping", ManagedCategories: []byte(`["Housekeeping","Laundry"]`)}
	if err := ValidateDepartment(&dept); err != nil {
		t.Errorf("phòng ban hợp lệ bị từ chối: %v", err)
	}

	bad := models.Department{Name: "Housekeeping", ManagedCategories: []byte(`"not an array"`)}
	if err := ValidateDepartment(&bad); err == nil {
		t.Error("category không phải mảng phải trả lỗi")
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("25/12/2026")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if parsed.Day() != 25 || parsed.Month() != time.December || parsed.Year() != 2026 {
		t.Errorf("ParseDate() = %v", parsed)
	}

	// dd/mm/yyyy, không phải mm/dd/yyyy
	if _, err := ParseDate("12/25/2026"); err == nil {
		t.Error("tháng 25 phải trả lỗi")
	}
	if _, err := ParseDate("2026-12-25"); err == nil {
		t.Error("định dạng ISO phải trả lỗi")
	}
}
