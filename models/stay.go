package models

import (
	"time"
)

type Stay struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	HotelID           uint       `json:"hotelId" gorm:"index"`
	RoomID            uint       `json:"roomId" gorm:"index"`
	StayCode          string     `json:"stayCode" gorm:"unique;size:36"` // Mã dùng cho guest login
	GuestName         string     `json:"guestName"`
	GuestPhone        string     `json:"guestPhone,omitempty"`
	GuestEmail        string     `json:"guestEmail,omitempty"`
	CheckInDate       time.Time  `json:"checkInDate"`
	CheckOutDate      time.Time  `json:"checkOutDate"`
	Status            string     `json:"status" gorm:"default:Booked"` // Booked / Checked In / Checked Out / Master
	RoomCharge        float64    `json:"roomCharge"` // Tổng tiền phòng cho cả kỳ ở
	PaidAmount        float64    `json:"paidAmount"`
	GroupID           *string    `json:"groupId,omitempty" gorm:"index"` // Liên kết booking theo nhóm
	MasterStayID      *uint      `json:"masterStayId,omitempty"` // Stay gốc khi thanh toán gộp
	CorporateClientID *uint      `json:"corporateClientId,omitempty"` // Công nợ doanh nghiệp thay vì thu khách
	ActualCheckIn     *time.Time `json:"actualCheckIn,omitempty"`
	ActualCheckOut    *time.Time `json:"actualCheckOut,omitempty"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
