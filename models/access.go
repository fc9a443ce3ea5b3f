package models

import "time"

// AccessRequest yêu cầu cấp quyền truy cập vào một khách sạn
type AccessRequest struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	HotelID   uint      `json:"hotelId" gorm:"index"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Delegate tài khoản được ủy quyền quản lý khách sạn.
// Duyệt một AccessRequest sẽ tạo Delegate và xóa request trong cùng transaction.
type Delegate struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	HotelID   uint      `json:"hotelId" gorm:"index"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
