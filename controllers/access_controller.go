package controllers

import (
	"strconv"

	"hms/config"
	"hms/dto"
	"hms/models"
	"hms/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateAccessRequest người ngoài xin quyền truy cập vào một khách sạn,
// chờ admin duyệt
func CreateAccessRequest(c *gin.Context) {
	var input dto.CreateAccessRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, input.HotelID).Error; err != nil {
		response.BadRequest(c, "Khách sạn không tồn tại")
		return
	}

	var pending int64
	config.DB.Model(&models.AccessRequest{}).
		Where("hotel_id = ? AND email = ?", input.HotelID, input.Email).Count(&pending)
	if pending > 0 {
		response.BadRequest(c, "Đã có yêu cầu đang chờ duyệt cho email này")
		return
	}

	req := models.AccessRequest{
		HotelID: input.HotelID,
		Email:   input.Email,
		Name:    input.Name,
		Role:    input.Role,
		Message: input.Message,
	}

	if err := config.DB.Create(&req).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, req)
}

func GetAccessRequests(c *gin.Context) {
	var requests []models.AccessRequest
	if err := config.DB.Where("hotel_id = ?", currentHotelID(c)).
		Order("created_at").Find(&requests).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, requests, len(requests))
}

// ApproveAccessRequest duyệt yêu cầu: tạo Delegate và xóa request trong
// cùng một transaction, không bao giờ tồn tại trạng thái nửa chừng
func ApproveAccessRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	hotelID := currentHotelID(c)

	var req models.AccessRequest
	if err := config.DB.Where("id = ? AND hotel_id = ?", requestID, hotelID).First(&req).Error; err != nil {
		response.NotFound(c)
		return
	}

	var delegate models.Delegate
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		delegate = models.Delegate{
			HotelID: req.HotelID,
			Email:   req.Email,
			Name:    req.Name,
			Role:    req.Role,
		}
		if err := tx.Create(&delegate).Error; err != nil {
			return err
		}
		return tx.Delete(&models.AccessRequest{}, req.ID).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, delegate)
}

func DenyAccessRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := config.DB.Where("id = ? AND hotel_id = ?", requestID, currentHotelID(c)).
		Delete(&models.AccessRequest{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func GetDelegates(c *gin.Context) {
	var delegates []models.Delegate
	if err := config.DB.Where("hotel_id = ?", currentHotelID(c)).
		Order("created_at").Find(&delegates).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, delegates, len(delegates))
}

func RevokeDelegate(c *gin.Context) {
	delegateID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := config.DB.Where("id = ? AND hotel_id = ?", delegateID, currentHotelID(c)).
		Delete(&models.Delegate{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
