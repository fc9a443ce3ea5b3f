package dto

import "time"

type CreateServiceRequestInput struct {
	StayID       *uint   `json:"stayId,omitempty"`
	RoomID       *uint   `json:"roomId,omitempty"`
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Price        float64 `json:"price"`
	Billable     bool    `json:"billable"`
	IsEmergency  bool    `json:"isEmergency"`
	RestaurantID *uint   `json:"restaurantId,omitempty"`
	Notes        string  `json:"notes"`
}

type UpdateRequestStatusInput struct {
	RequestID  uint   `json:"id" binding:"required"`
	Status     string `json:"status" binding:"required"`
	AssignedTo *uint  `json:"assignedTo,omitempty"`
}

// GuestOrderItem một dòng trong giỏ hàng của guest portal
type GuestOrderItem struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

// GuestOrderInput giỏ hàng guest gửi lên, mỗi dòng thành một yêu cầu dịch vụ
type GuestOrderInput struct {
	Items []GuestOrderItem `json:"items" binding:"required"`
	Notes string           `json:"notes"`
}

type ServiceRequestResponse struct {
	ID           uint       `json:"id"`
	StayID       *uint      `json:"stayId,omitempty"`
	RoomID       *uint      `json:"roomId,omitempty"`
	RoomNumber   string     `json:"roomNumber,omitempty"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Price        float64    `json:"price"`
	Billable     bool       `json:"billable"`
	IsEmergency  bool       `json:"isEmergency"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}
