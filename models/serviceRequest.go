package models

import "time"

type ServiceRequest struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	HotelID      uint       `json:"hotelId" gorm:"index"`
	StayID       *uint      `json:"stayId,omitempty" gorm:"index"` // Gắn với stay nếu tính tiền vào folio
	RoomID       *uint      `json:"roomId,omitempty"`
	Name         string     `json:"name"` // Với đơn từ guest portal có hậu tố " (xN)"
	Category     string     `json:"category"` // Khớp SLA rule theo đúng tên
	Price        float64    `json:"price"`
	Billable     bool       `json:"billable"`
	IsEmergency  bool       `json:"isEmergency"`
	RestaurantID *uint      `json:"restaurantId,omitempty"` // Món F&B quy về nhà hàng khi thống kê
	Status       string     `json:"status" gorm:"default:Pending"` // Pending / In Progress / Completed
	Notes        string     `json:"notes"`
	AssignedTo   *uint      `json:"assignedTo,omitempty"` // TeamMember
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
