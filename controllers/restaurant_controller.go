package controllers

import (
	"strconv"

	"hms/config"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

func GetRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := config.DB.Preload("MenuItems").
		Where("hotel_id = ?", currentHotelID(c)).
		Order("name").Find(&restaurants).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, restaurants, len(restaurants))
}

func CreateRestaurant(c *gin.Context) {
	var input dto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	restaurant := models.Restaurant{
		HotelID:   currentHotelID(c),
		Name:      input.Name,
		Cuisine:   input.Cuisine,
		OpenTime:  input.OpenTime,
		CloseTime: input.CloseTime,
	}

	if err := config.DB.Create(&restaurant).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, restaurant)
}

func DeleteRestaurant(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := config.DB.Where("id = ? AND hotel_id = ?", restaurantID, currentHotelID(c)).
		Delete(&models.Restaurant{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func CreateMenuItem(c *gin.Context) {
	var input dto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.Where("id = ? AND hotel_id = ?", input.RestaurantID, currentHotelID(c)).
		First(&restaurant).Error; err != nil {
		response.BadRequest(c, "Nhà hàng không tồn tại")
		return
	}

	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         input.Name,
		Category:     input.Category,
		Price:        input.Price,
		Description:  input.Description,
		Available:    true,
	}

	if err := config.DB.Create(&item).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, item)
}

func UpdateMenuItemAvailability(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var input struct {
		Available bool `json:"available"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var item models.MenuItem
	if err := config.DB.
		Joins("JOIN restaurants ON restaurants.id = menu_items.restaurant_id").
		Where("menu_items.id = ? AND restaurants.hotel_id = ?", itemID, currentHotelID(c)).
		First(&item).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Model(&models.MenuItem{}).Where("id = ?", item.ID).
		Update("available", input.Available).Error; err != nil {
		response.ServerError(c)
		return
	}

	item.Available = input.Available
	response.Success(c, item)
}

func DeleteMenuItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var item models.MenuItem
	if err := config.DB.
		Joins("JOIN restaurants ON restaurants.id = menu_items.restaurant_id").
		Where("menu_items.id = ? AND restaurants.hotel_id = ?", itemID, currentHotelID(c)).
		First(&item).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Delete(&models.MenuItem{}, item.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// SearchMenu tìm món theo tên hoặc loại, chấp nhận gõ không dấu và sai
// chính tả nhẹ, dùng cho cả guest portal lẫn lễ tân
func SearchMenu(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Thiếu từ khóa tìm kiếm")
		return
	}

	var items []models.MenuItem
	if err := config.DB.
		Joins("JOIN restaurants ON restaurants.id = menu_items.restaurant_id").
		Where("restaurants.hotel_id = ? AND menu_items.available = ?", currentHotelID(c), true).
		Find(&items).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := services.SearchMenuItems(query, items)
	response.SuccessWithTotal(c, results, len(results))
}
