package models

import "time"

type InventoryItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	HotelID      uint      `json:"hotelId" gorm:"index"`
	Name         string    `json:"name"`
	Unit         string    `json:"unit"`
	Quantity     int       `json:"quantity"`
	ReorderLevel int       `json:"reorderLevel"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// LowStock tính tại thời điểm đọc, không lưu
func (i *InventoryItem) LowStock() bool {
	return i.Quantity <= i.ReorderLevel
}
