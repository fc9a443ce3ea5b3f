package dto

import (
	"encoding/json"
	"time"

	"hms/models"
)

type CreateRoomRequest struct {
	RoomNumber  string          `json:"roomNumber" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Price       float64         `json:"price"`
	Floor       int             `json:"floor"`
	Description string          `json:"description"`
	Img         json.RawMessage `json:"img"`
}

type UpdateRoomRequest struct {
	RoomID      uint            `json:"id" binding:"required"`
	RoomNumber  string          `json:"roomNumber"`
	Category    string          `json:"category"`
	Price       float64         `json:"price"`
	Floor       int             `json:"floor"`
	Description string          `json:"description"`
	Img         json.RawMessage `json:"img"`
}

type ChangeRoomStatusRequest struct {
	RoomID uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type OutOfOrderRequest struct {
	RoomID   uint   `json:"roomId" binding:"required"`
	FromDate string `json:"fromDate" binding:"required"` // dd/mm/yyyy
	ToDate   string `json:"toDate" binding:"required"`
	Reason   string `json:"reason"`
}

// RoomResponse phòng kèm trạng thái hiển thị luôn được tính lại
type RoomResponse struct {
	ID               uint                     `json:"id"`
	RoomNumber       string                   `json:"roomNumber"`
	Category         string                   `json:"category"`
	Price            float64                  `json:"price"`
	Floor            int                      `json:"floor"`
	Description      string                   `json:"description"`
	DisplayStatus    string                   `json:"displayStatus"`
	LastCheckOutDate *time.Time               `json:"lastCheckOutDate,omitempty"`
	CurrentStay      *StaySummary             `json:"currentStay,omitempty"`
	OutOfOrderBlocks []models.OutOfOrderBlock `json:"outOfOrderBlocks,omitempty"`
}

type StaySummary struct {
	ID           uint      `json:"id"`
	GuestName    string    `json:"guestName"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	Status       string    `json:"status"`
}
