package controllers

import (
	"strconv"
	"time"

	"hms/config"
	"hms/constants"
	"hms/dto"
	"hms/models"
	"hms/response"

	"github.com/gin-gonic/gin"
)

func buildClientResponse(client models.CorporateClient, includeOrders bool) dto.CorporateClientResponse {
	resp := dto.CorporateClientResponse{
		ID:                 client.ID,
		Name:               client.Name,
		ContactName:        client.ContactName,
		ContactEmail:       client.ContactEmail,
		ContactPhone:       client.ContactPhone,
		OutstandingBalance: client.OutstandingBalance(),
	}

	if includeOrders {
		for _, order := range client.BilledOrders {
			resp.BilledOrders = append(resp.BilledOrders, dto.BilledOrderResponse{
				ID:          order.ID,
				ClientID:    order.ClientID,
				StayID:      order.StayID,
				Description: order.Description,
				Amount:      order.Amount,
				Status:      order.Status,
				PaidDate:    order.PaidDate,
				CreatedAt:   order.CreatedAt,
			})
		}
	}

	return resp
}

func GetCorporateClients(c *gin.Context) {
	var clients []models.CorporateClient
	if err := config.DB.Preload("BilledOrders").
		Where("hotel_id = ?", currentHotelID(c)).
		Order("name").Find(&clients).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.CorporateClientResponse, 0, len(clients))
	for _, client := range clients {
		results = append(results, buildClientResponse(client, false))
	}

	response.SuccessWithTotal(c, results, len(results))
}

func GetCorporateClientDetail(c *gin.Context) {
	clientID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var client models.CorporateClient
	if err := config.DB.Preload("BilledOrders").
		Where("id = ? AND hotel_id = ?", clientID, currentHotelID(c)).
		First(&client).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, buildClientResponse(client, true))
}

func CreateCorporateClient(c *gin.Context) {
	var input dto.CreateCorporateClientRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	client := models.CorporateClient{
		HotelID:      currentHotelID(c),
		Name:         input.Name,
		ContactName:  input.ContactName,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
	}

	if err := config.DB.Create(&client).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, client)
}

// CreateBilledOrder ghi một khoản công nợ cho khách doanh nghiệp,
// thường là folio của stay được chuyển sang công nợ thay vì thu trực tiếp
func CreateBilledOrder(c *gin.Context) {
	var input dto.CreateBilledOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Amount <= 0 {
		response.BadRequest(c, "Số tiền phải lớn hơn 0")
		return
	}

	hotelID := currentHotelID(c)

	var client models.CorporateClient
	if err := config.DB.Where("id = ? AND hotel_id = ?", input.ClientID, hotelID).First(&client).Error; err != nil {
		response.BadRequest(c, "Khách hàng doanh nghiệp không tồn tại")
		return
	}

	order := models.BilledOrder{
		ClientID:    client.ID,
		StayID:      input.StayID,
		Description: input.Description,
		Amount:      input.Amount,
		Status:      constants.BilledOrderPending,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, order)
}

// MarkOrderPaid chuyển đơn công nợ sang Paid và đóng dấu ngày thanh toán.
// Doanh thu doanh nghiệp chỉ được tính vào thống kê kể từ ngày này.
func MarkOrderPaid(c *gin.Context) {
	var input dto.MarkOrderPaidRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotelID := currentHotelID(c)

	var order models.BilledOrder
	if err := config.DB.
		Joins("JOIN corporate_clients ON corporate_clients.id = billed_orders.client_id").
		Where("billed_orders.id = ? AND corporate_clients.hotel_id = ?", input.OrderID, hotelID).
		First(&order).Error; err != nil {
		response.NotFound(c)
		return
	}

	if order.Status == constants.BilledOrderPaid {
		response.BadRequest(c, "Đơn đã được thanh toán trước đó")
		return
	}

	now := time.Now()
	if err := config.DB.Model(&models.BilledOrder{}).Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":    constants.BilledOrderPaid,
			"paid_date": &now,
		}).Error; err != nil {
		response.ServerError(c)
		return
	}

	order.Status = constants.BilledOrderPaid
	order.PaidDate = &now
	response.Success(c, order)
}

func DeleteCorporateClient(c *gin.Context) {
	clientID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	hotelID := currentHotelID(c)

	var client models.CorporateClient
	if err := config.DB.Preload("BilledOrders").
		Where("id = ? AND hotel_id = ?", clientID, hotelID).
		First(&client).Error; err != nil {
		response.NotFound(c)
		return
	}

	if client.OutstandingBalance() > 0 {
		response.BadRequest(c, "Khách hàng còn công nợ chưa thanh toán, không thể xóa")
		return
	}

	if err := config.DB.Delete(&models.CorporateClient{}, client.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
