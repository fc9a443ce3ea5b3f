package services

import (
	"testing"
	"time"

	"hms/constants"
	"hms/models"
)

func TestNormalizeServiceName(t *testing.T) {
	tests := []struct {
		in       string
		wantName string
		wantQty  int
	}{
		{"Club Sandwich (x3)", "Club Sandwich", 3},
		{"Club Sandwich", "Club Sandwich", 1},
		{"Phở bò (x12)", "Phở bò", 12},
		{"Giặt ủi (xyz)", "Giặt ủi (xyz)", 1},
		{"(x2)", "(x2)", 1},
		{"Trà đá (x0)", "Trà đá", 1},
	}

	for _, tt := range tests {
		name, qty := NormalizeServiceName(tt.in)
		if name != tt.wantName || qty != tt.wantQty {
			t.Errorf("NormalizeServiceName(%q) = (%q, %d), want (%q, %d)",
				tt.in, name, qty, tt.wantName, tt.wantQty)
		}
	}
}

func checkout(date time.Time, total float64, services ...models.BillLineItem) models.CheckedOutStay {
	return models.CheckedOutStay{
		CheckOutDate: date,
		FinalBill: models.FinalBill{
			RoomCharge: total - lineTotal(services),
			Nights:     1,
			Services:   services,
			Total:      total,
		},
	}
}

func lineTotal(items []models.BillLineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price
	}
	return sum
}

func TestBuildRevenueSummaryZeroFill(t *testing.T) {
	from := day(2026, time.January, 1)
	to := day(2026, time.January, 7)

	summary := BuildRevenueSummary(nil, nil, nil, from, to)

	if summary.TotalRevenue != 0 {
		t.Errorf("TotalRevenue = %v, want 0", summary.TotalRevenue)
	}
	if len(summary.Daily) != 7 {
		t.Fatalf("len(Daily) = %d, want 7", len(summary.Daily))
	}
	for i, d := range summary.Daily {
		if d.Revenue != 0 || d.Checkouts != 0 {
			t.Errorf("Daily[%d] = %+v, want zero entry", i, d)
		}
	}
	if summary.Daily[0].Date != "2026-01-01" || summary.Daily[6].Date != "2026-01-07" {
		t.Errorf("khoảng ngày sai: %s .. %s", summary.Daily[0].Date, summary.Daily[6].Date)
	}
}

func TestBuildRevenueSummaryAggregation(t *testing.T) {
	from := day(2026, time.January, 1)
	to := day(2026, time.January, 31)

	checkouts := []models.CheckedOutStay{
		checkout(day(2026, time.January, 5), 1000,
			models.BillLineItem{Name: "Club Sandwich (x3)", Category: "F&B", Price: 360},
		),
		checkout(day(2026, time.January, 10), 800,
			models.BillLineItem{Name: "Club Sandwich (x2)", Category: "F&B", Price: 240},
			models.BillLineItem{Name: "Laundry", Category: "Housekeeping", Price: 100},
		),
		// Hóa đơn tổng bằng 0 bị loại hẳn
		checkout(day(2026, time.January, 12), 0,
			models.BillLineItem{Name: "Spa", Category: "Wellness", Price: 50},
		),
		// Ngoài khoảng ngày
		checkout(day(2026, time.February, 2), 500),
	}

	summary := BuildRevenueSummary(checkouts, nil, nil, from, to)

	if summary.TotalRevenue != 1800 {
		t.Errorf("TotalRevenue = %v, want 1800", summary.TotalRevenue)
	}
	if summary.ServiceRevenue != 700 {
		t.Errorf("ServiceRevenue = %v, want 700", summary.ServiceRevenue)
	}
	if summary.NightsSold != 2 {
		t.Errorf("NightsSold = %d, want 2", summary.NightsSold)
	}

	// Hai đơn "Club Sandwich (xN)" gộp thành một dòng, số lượng cộng dồn
	var club *ServiceStat
	for i := range summary.Services {
		if summary.Services[i].Name == "Club Sandwich" {
			club = &summary.Services[i]
		}
	}
	if club == nil {
		t.Fatal("không tìm thấy dòng Club Sandwich")
	}
	if club.Requests != 5 {
		t.Errorf("Club Sandwich requests = %d, want 5", club.Requests)
	}
	if club.Revenue != 600 {
		t.Errorf("Club Sandwich revenue = %v, want 600", club.Revenue)
	}

	for _, stat := range summary.Services {
		if stat.Name == "Spa" {
			t.Error("dịch vụ của hóa đơn tổng 0 không được vào thống kê")
		}
	}
}

func TestBuildRevenueSummaryRestaurantAttribution(t *testing.T) {
	from := day(2026, time.January, 1)
	to := day(2026, time.January, 31)

	restaurantID := uint(7)
	checkouts := []models.CheckedOutStay{
		checkout(day(2026, time.January, 5), 500,
			models.BillLineItem{Name: "Phở bò", Category: "F&B", Price: 90, RestaurantID: &restaurantID},
			models.BillLineItem{Name: "Laundry", Category: "Housekeeping", Price: 60},
		),
	}

	summary := BuildRevenueSummary(checkouts, nil, map[uint]string{7: "Sky Bistro"}, from, to)

	categories := make(map[string]float64)
	for _, cat := range summary.Categories {
		categories[cat.Category] = cat.Revenue
	}

	if categories["Sky Bistro"] != 90 {
		t.Errorf("doanh thu Sky Bistro = %v, want 90", categories["Sky Bistro"])
	}
	if categories["Housekeeping"] != 60 {
		t.Errorf("doanh thu Housekeeping = %v, want 60", categories["Housekeeping"])
	}
	if _, ok := categories["F&B"]; ok {
		t.Error("món có nhà hàng không được rơi vào nhóm F&B chung")
	}
}

func TestBuildRevenueSummaryCorporateOrders(t *testing.T) {
	from := day(2026, time.January, 1)
	to := day(2026, time.January, 31)

	paidInRange := day(2026, time.January, 15)
	paidOutOfRange := day(2026, time.February, 15)

	orders := []models.BilledOrder{
		{Amount: 2000, Status: constants.BilledOrderPaid, PaidDate: &paidInRange},
		{Amount: 900, Status: constants.BilledOrderPaid, PaidDate: &paidOutOfRange},
		{Amount: 700, Status: constants.BilledOrderPending},
	}

	summary := BuildRevenueSummary(nil, orders, nil, from, to)

	if summary.CorporateRevenue != 2000 {
		t.Errorf("CorporateRevenue = %v, want 2000", summary.CorporateRevenue)
	}
	if summary.TotalRevenue != 2000 {
		t.Errorf("TotalRevenue = %v, want 2000", summary.TotalRevenue)
	}

	// Đơn Paid trong khoảng phải nằm đúng ngày thanh toán trên biểu đồ
	for _, d := range summary.Daily {
		if d.Date == "2026-01-15" && d.Revenue != 2000 {
			t.Errorf("Daily[2026-01-15].Revenue = %v, want 2000", d.Revenue)
		}
	}
}

func TestBuildRevenueSummaryADR(t *testing.T) {
	from := day(2026, time.January, 1)
	to := day(2026, time.January, 31)

	checkouts := []models.CheckedOutStay{
		{
			CheckOutDate: day(2026, time.January, 5),
			FinalBill:    models.FinalBill{RoomCharge: 600, Nights: 3, Total: 600},
		},
		{
			CheckOutDate: day(2026, time.January, 8),
			FinalBill:    models.FinalBill{RoomCharge: 400, Nights: 2, Total: 400},
		},
	}

	summary := BuildRevenueSummary(checkouts, nil, nil, from, to)

	if summary.NightsSold != 5 {
		t.Fatalf("NightsSold = %d, want 5", summary.NightsSold)
	}
	if summary.ADR != 200 {
		t.Errorf("ADR = %v, want 200", summary.ADR)
	}
}
