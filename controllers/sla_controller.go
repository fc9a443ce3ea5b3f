package controllers

import (
	"strconv"
	"time"

	"hms/config"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/services/logger"
	"hms/validator"

	"github.com/gin-gonic/gin"
)

func GetSlaRules(c *gin.Context) {
	var rules []models.SlaRule
	if err := config.DB.Where("hotel_id = ?", currentHotelID(c)).
		Order("category").Find(&rules).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, rules, len(rules))
}

func CreateSlaRule(c *gin.Context) {
	var input dto.CreateSlaRuleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotelID := currentHotelID(c)

	// Mỗi category chỉ có một rule cho một hotel
	var count int64
	config.DB.Model(&models.SlaRule{}).
		Where("hotel_id = ? AND category = ?", hotelID, input.Category).Count(&count)
	if count > 0 {
		response.BadRequest(c, "Category này đã có rule SLA")
		return
	}

	rule := models.SlaRule{
		HotelID:          hotelID,
		Category:         input.Category,
		TimeLimitMinutes: input.TimeLimitMinutes,
	}

	if err := validator.ValidateSlaRule(&rule); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&rule).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, rule)
}

func UpdateSlaRule(c *gin.Context) {
	ruleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	hotelID := currentHotelID(c)

	var rule models.SlaRule
	if err := config.DB.Where("id = ? AND hotel_id = ?", ruleID, hotelID).First(&rule).Error; err != nil {
		response.NotFound(c)
		return
	}

	var input dto.CreateSlaRuleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rule.Category = input.Category
	rule.TimeLimitMinutes = input.TimeLimitMinutes

	if err := validator.ValidateSlaRule(&rule); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&rule).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, rule)
}

func DeleteSlaRule(c *gin.Context) {
	ruleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := config.DB.Where("id = ? AND hotel_id = ?", ruleID, currentHotelID(c)).
		Delete(&models.SlaRule{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// GetCurrentAlerts tính cảnh báo SLA tại thời điểm gọi. Không có bảng
// cảnh báo: yêu cầu hoàn thành hoặc rule đổi thì cảnh báo tự biến mất.
func GetCurrentAlerts(c *gin.Context) {
	alertService := services.NewAlertService(services.AlertServiceOptions{
		DB:     config.DB,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})

	alerts, err := alertService.CurrentAlerts(currentHotelID(c), time.Now())
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, alerts, len(alerts))
}
