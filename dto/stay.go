package dto

import (
	"time"

	"hms/models"
	"hms/services"
)

type CreateStayRequest struct {
	RoomID            uint    `json:"roomId" binding:"required"`
	GuestName         string  `json:"guestName" binding:"required"`
	GuestPhone        string  `json:"guestPhone"`
	GuestEmail        string  `json:"guestEmail"`
	CheckInDate       string  `json:"checkInDate" binding:"required"` // dd/mm/yyyy
	CheckOutDate      string  `json:"checkOutDate" binding:"required"`
	RoomCharge        float64 `json:"roomCharge"`
	PaidAmount        float64 `json:"paidAmount"`
	CorporateClientID *uint   `json:"corporateClientId,omitempty"`
}

// CreateGroupStayRequest đặt nhiều phòng một lần, stay đầu là Master
type CreateGroupStayRequest struct {
	RoomIDs      []uint  `json:"roomIds" binding:"required"`
	GuestName    string  `json:"guestName" binding:"required"`
	GuestPhone   string  `json:"guestPhone"`
	GuestEmail   string  `json:"guestEmail"`
	CheckInDate  string  `json:"checkInDate" binding:"required"`
	CheckOutDate string  `json:"checkOutDate" binding:"required"`
	RoomCharge   float64 `json:"roomCharge"` // Tổng cho cả nhóm, chia đều theo phòng
	PaidAmount   float64 `json:"paidAmount"`
}

type RecordPaymentRequest struct {
	StayID uint    `json:"stayId" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

type StayResponse struct {
	ID            uint       `json:"id"`
	RoomID        uint       `json:"roomId"`
	RoomNumber    string     `json:"roomNumber"`
	StayCode      string     `json:"stayCode"`
	GuestName     string     `json:"guestName"`
	GuestPhone    string     `json:"guestPhone,omitempty"`
	GuestEmail    string     `json:"guestEmail,omitempty"`
	CheckInDate   time.Time  `json:"checkInDate"`
	CheckOutDate  time.Time  `json:"checkOutDate"`
	Status        string     `json:"status"`
	RoomCharge    float64    `json:"roomCharge"`
	PaidAmount    float64    `json:"paidAmount"`
	GroupID       *string    `json:"groupId,omitempty"`
	ActualCheckIn *time.Time `json:"actualCheckIn,omitempty"`
}

// FolioResponse folio hiện tại của một stay
type FolioResponse struct {
	StayID   uint                  `json:"stayId"`
	Totals   services.FolioTotals  `json:"totals"`
	Services []models.BillLineItem `json:"services"`
}
