package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Room struct {
	RoomId           uint              `json:"id" gorm:"primaryKey"`
	HotelID          uint              `json:"hotelId" gorm:"index"`
	RoomNumber       string            `json:"roomNumber"`
	Category         string            `json:"category"` // Tên loại phòng, khớp với Department.ManagedCategories theo tên
	Price            float64           `json:"price"` // Giá mỗi đêm
	Description      string            `json:"description"`
	Floor            int               `json:"floor"`
	Status           string            `json:"status" gorm:"default:Available"` // Trạng thái gốc, không tin khi hiển thị
	LastCheckOutDate *time.Time        `json:"lastCheckOutDate"` // Ngày trả phòng gần nhất, dùng suy ra trạng thái Cleaning
	Img              json.RawMessage   `json:"img" gorm:"type:json"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
	Stays            []Stay            `json:"stays" gorm:"foreignKey:RoomID"`
	OutOfOrderBlocks []OutOfOrderBlock `json:"outOfOrderBlocks" gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateStatus() error {
	switch r.Status {
	case "Available", "Occupied", "Cleaning", "Out of Order":
		return nil
	}
	return fmt.Errorf("invalid status: %s", r.Status)
}
