package models

import (
	"encoding/json"
	"time"
)

type TeamMember struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	HotelID    uint      `json:"hotelId" gorm:"index"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	Department string    `json:"department"` // Liên kết theo tên, đổi tên phòng ban sẽ đứt liên kết
	ShiftID    *uint     `json:"shiftId,omitempty"`
	Status     int       `json:"status" gorm:"default:1"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type Shift struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	HotelID   uint      `json:"hotelId" gorm:"index"`
	Name      string    `json:"name"`
	StartTime string    `json:"startTime"` // "HH:MM"
	EndTime   string    `json:"endTime"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type Department struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	HotelID           uint            `json:"hotelId" gorm:"index"`
	Name              string          `json:"name"`
	ManagedCategories json.RawMessage `json:"managedCategories" gorm:"type:json"` // Danh sách tên category phụ trách
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

type SlaRule struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	HotelID          uint      `json:"hotelId" gorm:"index"`
	Category         string    `json:"category"` // Khớp ServiceRequest.Category theo đúng chuỗi
	TimeLimitMinutes int       `json:"timeLimitMinutes"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
