package models

import (
	"time"
)

type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string    `gorm:"default:New User" json:"name"`
	Email         string    `gorm:"unique" json:"email"`
	Password      string    `json:"password"`
	IsVerified    bool      `gorm:"default:false" json:"is_verified"`
	Code          string    `json:"code"`
	CodeCreatedAt time.Time `gorm:"autoCreateTime" json:"codeCreatedAt"`
	PhoneNumber   string    `gorm:"unique;type:varchar(11);not null" json:"phoneNumber"`
	Avatar        string    `json:"avatar"`
	Role          int       `gorm:"default:0" json:"role"` // 1: super admin, 2: franchise owner, 3: hotel admin, 4: staff
	Status        int       `gorm:"default:0" json:"status"`
	HotelID       *uint     `json:"hotelId,omitempty" gorm:"index"` // Tenant của user, nil với super admin
	OwnerID       *uint     `json:"ownerId,omitempty"` // Franchise owner quản lý hotel admin
}
