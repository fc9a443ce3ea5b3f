package dto

import "time"

type CreateCorporateClientRequest struct {
	Name         string `json:"name" binding:"required"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

type CreateBilledOrderRequest struct {
	ClientID    uint    `json:"clientId" binding:"required"`
	StayID      *uint   `json:"stayId,omitempty"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
}

type MarkOrderPaidRequest struct {
	OrderID uint `json:"id" binding:"required"`
}

type CorporateClientResponse struct {
	ID                 uint                  `json:"id"`
	Name               string                `json:"name"`
	ContactName        string                `json:"contactName"`
	ContactEmail       string                `json:"contactEmail"`
	ContactPhone       string                `json:"contactPhone"`
	OutstandingBalance float64               `json:"outstandingBalance"`
	BilledOrders       []BilledOrderResponse `json:"billedOrders,omitempty"`
}

type BilledOrderResponse struct {
	ID          uint       `json:"id"`
	ClientID    uint       `json:"clientId"`
	StayID      *uint      `json:"stayId,omitempty"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	PaidDate    *time.Time `json:"paidDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
