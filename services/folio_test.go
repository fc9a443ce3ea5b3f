package services

import (
	"math"
	"testing"

	"hms/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateFolio(t *testing.T) {
	tests := []struct {
		name  string
		input FolioInput
		want  FolioTotals
	}{
		{
			name: "room with services, charge and tax on same base",
			input: FolioInput{
				RoomRate: 400,
				Nights:   2,
				Services: []models.BillLineItem{
					{Name: "Club Sandwich", Price: 120},
					{Name: "Laundry", Price: 80},
				},
				ServiceChargeRate: 10,
				GstRate:           18,
				PaidAmount:        200,
			},
			want: FolioTotals{
				RoomTotal:           800,
				ServiceTotal:        200,
				Subtotal:            1000,
				ServiceChargeAmount: 100,
				GstAmount:           180,
				Total:               1280,
				PaidAmount:          200,
				Balance:             1080,
			},
		},
		{
			name: "zero rates leave total equal to subtotal",
			input: FolioInput{
				RoomRate: 500,
				Nights:   3,
				Services: []models.BillLineItem{{Name: "Spa", Price: 250}},
			},
			want: FolioTotals{
				RoomTotal:    1500,
				ServiceTotal: 250,
				Subtotal:     1750,
				Total:        1750,
				Balance:      1750,
			},
		},
		{
			name:  "nights below one count as one",
			input: FolioInput{RoomRate: 300, Nights: 0},
			want: FolioTotals{
				RoomTotal: 300,
				Subtotal:  300,
				Total:     300,
				Balance:   300,
			},
		},
		{
			name: "gst is not compounded on the service charge",
			input: FolioInput{
				RoomRate:          1000,
				Nights:            1,
				ServiceChargeRate: 10,
				GstRate:           10,
			},
			want: FolioTotals{
				RoomTotal:           1000,
				Subtotal:            1000,
				ServiceChargeAmount: 100,
				GstAmount:           100, // 10% của 1000, không phải của 1100
				Total:               1200,
				Balance:             1200,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateFolio(tt.input)
			if !almostEqual(got.RoomTotal, tt.want.RoomTotal) ||
				!almostEqual(got.ServiceTotal, tt.want.ServiceTotal) ||
				!almostEqual(got.Subtotal, tt.want.Subtotal) ||
				!almostEqual(got.ServiceChargeAmount, tt.want.ServiceChargeAmount) ||
				!almostEqual(got.GstAmount, tt.want.GstAmount) ||
				!almostEqual(got.Total, tt.want.Total) ||
				!almostEqual(got.Balance, tt.want.Balance) {
				t.Errorf("CalculateFolio() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
