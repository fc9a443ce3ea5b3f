package dto

import "time"

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // Email hoặc số điện thoại
	Password   string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Name        string `json:"name"`
	Role        int    `json:"role"`
	HotelID     *uint  `json:"hotelId,omitempty"`
}

type GoogleAuthInput struct {
	IdToken string `json:"idToken" binding:"required"`
}

type GuestLoginInput struct {
	StayCode string `json:"stayCode" binding:"required"`
}

type UserLoginResponse struct {
	UserID       uint      `json:"userId"`
	UserName     string    `json:"userName"`
	UserEmail    string    `json:"userEmail"`
	UserVerified bool      `json:"userVerified"`
	UserPhone    string    `json:"userPhone"`
	UserRole     int       `json:"userRole"`
	HotelID      *uint     `json:"hotelId,omitempty"`
	UserAvatar   string    `json:"userAvatar"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type GuestLoginResponse struct {
	StayID       uint      `json:"stayId"`
	HotelID      uint      `json:"hotelId"`
	GuestName    string    `json:"guestName"`
	RoomID       uint      `json:"roomId"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
}
