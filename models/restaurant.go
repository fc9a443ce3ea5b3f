package models

import "time"

type Restaurant struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	HotelID   uint       `json:"hotelId" gorm:"index"`
	Name      string     `json:"name"`
	Cuisine   string     `json:"cuisine"`
	OpenTime  string     `json:"openTime"`
	CloseTime string     `json:"closeTime"`
	Status    int        `json:"status" gorm:"default:1"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	MenuItems []MenuItem `json:"menuItems" gorm:"foreignKey:RestaurantID"`
}

type MenuItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurantId" gorm:"index"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	Description  string    `json:"description"`
	Available    bool      `json:"available" gorm:"default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
