package controllers

import (
	"strconv"

	"hms/config"
	"hms/dto"
	"hms/models"
	"hms/response"

	"github.com/gin-gonic/gin"
)

func GetInventory(c *gin.Context) {
	var items []models.InventoryItem
	if err := config.DB.Where("hotel_id = ?", currentHotelID(c)).
		Order("name").Find(&items).Error; err != nil {
		response.ServerError(c)
		return
	}

	type itemWithFlag struct {
		models.InventoryItem
		LowStock bool `json:"lowStock"`
	}

	results := make([]itemWithFlag, 0, len(items))
	for _, item := range items {
		results = append(results, itemWithFlag{
			InventoryItem: item,
			LowStock:      item.LowStock(),
		})
	}

	response.SuccessWithTotal(c, results, len(results))
}

func CreateInventoryItem(c *gin.Context) {
	var input dto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Quantity < 0 || input.ReorderLevel < 0 {
		response.BadRequest(c, "Số lượng không được âm")
		return
	}

	item := models.InventoryItem{
		HotelID:      currentHotelID(c),
		Name:         input.Name,
		Unit:         input.Unit,
		Quantity:     input.Quantity,
		ReorderLevel: input.ReorderLevel,
	}

	if err := config.DB.Create(&item).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, item)
}

// AdjustInventory cộng hoặc trừ tồn kho theo delta, không cho âm
func AdjustInventory(c *gin.Context) {
	var input dto.AdjustInventoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var item models.InventoryItem
	if err := config.DB.Where("id = ? AND hotel_id = ?", input.ItemID, currentHotelID(c)).
		First(&item).Error; err != nil {
		response.NotFound(c)
		return
	}

	newQuantity := item.Quantity + input.Delta
	if newQuantity < 0 {
		response.BadRequest(c, "Tồn kho không đủ để trừ")
		return
	}

	if err := config.DB.Model(&models.InventoryItem{}).Where("id = ?", item.ID).
		Update("quantity", newQuantity).Error; err != nil {
		response.ServerError(c)
		return
	}

	item.Quantity = newQuantity
	response.Success(c, item)
}

func DeleteInventoryItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := config.DB.Where("id = ? AND hotel_id = ?", itemID, currentHotelID(c)).
		Delete(&models.InventoryItem{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
