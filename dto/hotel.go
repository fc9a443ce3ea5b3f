package dto

type CreateHotelRequest struct {
	Name    string `json:"name" binding:"required"`
	Code    string `json:"code" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	OwnerID uint   `json:"ownerId"`
}

type UpdateHotelSettingsRequest struct {
	ServiceChargeRate *float64 `json:"serviceChargeRate,omitempty"`
	GstRate           *float64 `json:"gstRate,omitempty"`
}

type CreateAccessRequestInput struct {
	HotelID uint   `json:"hotelId" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name" binding:"required"`
	Role    string `json:"role"`
	Message string `json:"message"`
}

type CreateRestaurantRequest struct {
	Name      string `json:"name" binding:"required"`
	Cuisine   string `json:"cuisine"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

type CreateMenuItemRequest struct {
	RestaurantID uint    `json:"restaurantId" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
}

type CreateInventoryItemRequest struct {
	Name         string `json:"name" binding:"required"`
	Unit         string `json:"unit"`
	Quantity     int    `json:"quantity"`
	ReorderLevel int    `json:"reorderLevel"`
}

type AdjustInventoryRequest struct {
	ItemID uint `json:"id" binding:"required"`
	Delta  int  `json:"delta" binding:"required"`
}

type SendInvoiceRequest struct {
	CheckoutID uint   `json:"checkoutId" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
}
