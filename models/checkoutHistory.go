package models

import "time"

// BillLineItem một dòng dịch vụ trong hóa đơn cuối
type BillLineItem struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	RestaurantID *uint   `json:"restaurantId,omitempty"`
}

// FinalBill hóa đơn chốt tại thời điểm trả phòng, không bao giờ sửa lại
type FinalBill struct {
	RoomCharge          float64        `json:"roomCharge"`
	Nights              int            `json:"nights"`
	Services            []BillLineItem `json:"services" gorm:"serializer:json;type:json"`
	Subtotal            float64        `json:"subtotal"`
	ServiceChargeRate   float64        `json:"serviceChargeRate"`
	ServiceChargeAmount float64        `json:"serviceChargeAmount"`
	GstRate             float64        `json:"gstRate"`
	GstAmount           float64        `json:"gstAmount"`
	PaidAmount          float64        `json:"paidAmount"`
	Total               float64        `json:"total"`
}

type CheckedOutStay struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	HotelID      uint      `json:"hotelId" gorm:"index"`
	StayID       uint      `json:"stayId"`
	RoomID       uint      `json:"roomId"`
	RoomNumber   string    `json:"roomNumber"`
	RoomCategory string    `json:"roomCategory"`
	GuestName    string    `json:"guestName"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate" gorm:"index"`
	FinalBill    FinalBill `json:"finalBill" gorm:"embedded;embeddedPrefix:bill_"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
