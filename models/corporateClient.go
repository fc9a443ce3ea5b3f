package models

import "time"

type CorporateClient struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	HotelID      uint          `json:"hotelId" gorm:"index"`
	Name         string        `json:"name"`
	ContactName  string        `json:"contactName"`
	ContactEmail string        `json:"contactEmail"`
	ContactPhone string        `json:"contactPhone"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	BilledOrders []BilledOrder `json:"billedOrders" gorm:"foreignKey:ClientID"`
}

type BilledOrder struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	ClientID    uint       `json:"clientId" gorm:"index"`
	StayID      *uint      `json:"stayId,omitempty"` // Kỳ ở được chuyển công nợ, nếu có
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status" gorm:"default:Pending"` // Pending / Paid
	PaidDate    *time.Time `json:"paidDate,omitempty"` // Chỉ đặt khi chuyển sang Paid
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// OutstandingBalance tổng các đơn chưa thanh toán của client
func (c *CorporateClient) OutstandingBalance() float64 {
	var total float64
	for _, order := range c.BilledOrders {
		if order.Status == "Pending" {
			total += order.Amount
		}
	}
	return total
}
