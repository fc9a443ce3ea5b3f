package models

import (
	"fmt"
	"time"
)

type Hotel struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name"`
	Code              string    `json:"code" gorm:"unique;size:20"` // Mã khách sạn duy nhất
	Address           string    `json:"address"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	OwnerID           uint      `json:"ownerId"` // Chủ franchise
	ServiceChargeRate float64   `json:"serviceChargeRate" gorm:"default:0"` // Phí dịch vụ %
	GstRate           float64   `json:"gstRate" gorm:"default:0"`           // Thuế %
	Status            int       `json:"status" gorm:"default:1"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (h *Hotel) ValidateRates() error {
	if h.ServiceChargeRate < 0 || h.ServiceChargeRate > 100 {
		return fmt.Errorf("invalid service charge rate: %.2f, must be between 0 and 100", h.ServiceChargeRate)
	}
	if h.GstRate < 0 || h.GstRate > 100 {
		return fmt.Errorf("invalid gst rate: %.2f, must be between 0 and 100", h.GstRate)
	}
	return nil
}
