package models

import "time"

type OutOfOrderBlock struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RoomID    uint      `json:"roomId" gorm:"index"`
	FromDate  time.Time `json:"fromDate" gorm:"index"`
	ToDate    time.Time `json:"toDate" gorm:"index"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
