package controllers

import (
	"strconv"

	"hms/config"
	"hms/constants"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

// GetHotels super admin thấy tất cả, franchise owner chỉ thấy các
// khách sạn của mình
func GetHotels(c *gin.Context) {
	query := config.DB.Model(&models.Hotel{})
	if c.GetInt("userRole") == constants.RoleFranchiseOwner {
		query = query.Where("owner_id = ?", c.GetUint("userID"))
	}

	var hotels []models.Hotel
	if err := query.Order("name").Find(&hotels).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, hotels, len(hotels))
}

func GetHotelDetail(c *gin.Context) {
	hotelID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, hotelID).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Hotel admin và staff chỉ xem được khách sạn trong token
	role := c.GetInt("userRole")
	if role != constants.RoleSuperAdmin && role != constants.RoleFranchiseOwner &&
		currentHotelID(c) != hotel.ID {
		response.Forbidden(c)
		return
	}

	response.Success(c, hotel)
}

func CreateHotel(c *gin.Context) {
	var input dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var count int64
	config.DB.Model(&models.Hotel{}).Where("code = ?", input.Code).Count(&count)
	if count > 0 {
		response.BadRequest(c, "Mã khách sạn đã tồn tại")
		return
	}

	ownerID := input.OwnerID
	if c.GetInt("userRole") == constants.RoleFranchiseOwner {
		ownerID = c.GetUint("userID")
	}

	hotel := models.Hotel{
		Name:    input.Name,
		Code:    input.Code,
		Address: input.Address,
		Phone:   input.Phone,
		Email:   input.Email,
		OwnerID: ownerID,
	}

	if err := config.DB.Create(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, hotel)
}

// UpdateHotelSettings đổi tỷ lệ phí dịch vụ và thuế. Chỉ ảnh hưởng folio
// tính từ lúc đổi trở đi, hóa đơn đã chốt giữ nguyên tỷ lệ cũ.
func UpdateHotelSettings(c *gin.Context) {
	var input dto.UpdateHotelSettingsRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotelID := currentHotelID(c)

	var hotel models.Hotel
	if err := config.DB.First(&hotel, hotelID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.ServiceChargeRate != nil {
		hotel.ServiceChargeRate = *input.ServiceChargeRate
	}
	if input.GstRate != nil {
		hotel.GstRate = *input.GstRate
	}

	if err := hotel.ValidateRates(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateHotelCache(hotelID, CachePrefix)
	response.Success(c, hotel)
}

func ChangeHotelStatus(c *gin.Context) {
	hotelID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var input struct {
		Status int `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, hotelID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Model(&models.Hotel{}).Where("id = ?", hotel.ID).
		Update("status", input.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	hotel.Status = input.Status
	response.Success(c, hotel)
}
