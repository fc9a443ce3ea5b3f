package services

import (
	"hms/models"
)

// FolioInput dữ liệu tính folio cho một kỳ ở
type FolioInput struct {
	RoomRate          float64 // Giá mỗi đêm
	Nights            int     // Đã tính tối thiểu 1 đêm
	Services          []models.BillLineItem
	ServiceChargeRate float64 // %
	GstRate           float64 // %
	PaidAmount        float64
}

// FolioTotals kết quả tính folio
type FolioTotals struct {
	RoomTotal           float64 `json:"roomTotal"`
	ServiceTotal        float64 `json:"serviceTotal"`
	Subtotal            float64 `json:"subtotal"`
	ServiceChargeAmount float64 `json:"serviceChargeAmount"`
	GstAmount           float64 `json:"gstAmount"`
	Total               float64 `json:"total"`
	PaidAmount          float64 `json:"paidAmount"`
	Balance             float64 `json:"balance"`
}

// CalculateFolio tính hóa đơn hiện tại của một kỳ ở.
// Thứ tự cố định: subtotal = tiền phòng + tiền dịch vụ, phí dịch vụ và thuế
// đều tính trên subtotal (thuế không tính chồng lên phí dịch vụ).
func CalculateFolio(input FolioInput) FolioTotals {
	nights := input.Nights
	if nights < 1 {
		nights = 1
	}

	roomTotal := input.RoomRate * float64(nights)

	var serviceTotal float64
	for _, item := range input.Services {
		serviceTotal += item.Price
	}

	subtotal := roomTotal + serviceTotal
	serviceChargeAmount := subtotal * input.ServiceChargeRate / 100
	gstAmount := subtotal * input.GstRate / 100
	total := subtotal + serviceChargeAmount + gstAmount

	return FolioTotals{
		RoomTotal:           roomTotal,
		ServiceTotal:        serviceTotal,
		Subtotal:            subtotal,
		ServiceChargeAmount: serviceChargeAmount,
		GstAmount:           gstAmount,
		Total:               total,
		PaidAmount:          input.PaidAmount,
		Balance:             total - input.PaidAmount,
	}
}
