package controllers

import (
	"fmt"
	"strconv"
	"time"

	"hms/config"
	"hms/constants"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func buildRequestResponse(req models.ServiceRequest, roomNumber string) dto.ServiceRequestResponse {
	return dto.ServiceRequestResponse{
		ID:          req.ID,
		StayID:      req.StayID,
		RoomID:      req.RoomID,
		RoomNumber:  roomNumber,
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Billable:    req.Billable,
		IsEmergency: req.IsEmergency,
		Status:      req.Status,
		Notes:       req.Notes,
		CreatedAt:   req.CreatedAt,
		CompletedAt: req.CompletedAt,
	}
}

func GetServiceRequests(c *gin.Context) {
	hotelID := currentHotelID(c)

	query := config.DB.Model(&models.ServiceRequest{}).Where("hotel_id = ?", hotelID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var requests []models.ServiceRequest
	if err := query.Order("is_emergency DESC, created_at ASC").Find(&requests).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Map số phòng một lần thay vì query từng request
	roomNumbers := make(map[uint]string)
	var rooms []models.Room
	config.DB.Select("room_id, room_number").Where("hotel_id = ?", hotelID).Find(&rooms)
	for _, room := range rooms {
		roomNumbers[room.RoomId] = room.RoomNumber
	}

	results := make([]dto.ServiceRequestResponse, 0, len(requests))
	for _, req := range requests {
		roomNumber := ""
		if req.RoomID != nil {
			roomNumber = roomNumbers[*req.RoomID]
		}
		results = append(results, buildRequestResponse(req, roomNumber))
	}

	response.SuccessWithTotal(c, results, len(results))
}

func CreateServiceRequest(c *gin.Context) {
	var input dto.CreateServiceRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotelID := currentHotelID(c)

	if input.StayID != nil {
		var stay models.Stay
		if err := config.DB.Where("id = ? AND hotel_id = ?", *input.StayID, hotelID).First(&stay).Error; err != nil {
			response.BadRequest(c, "Kỳ ở không tồn tại trong khách sạn")
			return
		}
		if input.RoomID == nil {
			input.RoomID = &stay.RoomID
		}
	}

	req := models.ServiceRequest{
		HotelID:      hotelID,
		StayID:       input.StayID,
		RoomID:       input.RoomID,
		Name:         input.Name,
		Category:     input.Category,
		Price:        input.Price,
		Billable:     input.Billable,
		IsEmergency:  input.IsEmergency,
		RestaurantID: input.RestaurantID,
		Notes:        input.Notes,
		Status:       constants.RequestStatusPending,
	}

	if err := validator.ValidateServiceRequest(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&req).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, req)
}

// UpdateRequestStatus chuyển trạng thái yêu cầu. Khi sang Completed thì
// đóng dấu thời điểm hoàn thành, từ đó yêu cầu ra khỏi diện quét SLA.
func UpdateRequestStatus(c *gin.Context) {
	var input dto.UpdateRequestStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	switch input.Status {
	case constants.RequestStatusPending, constants.RequestStatusInProgress, constants.RequestStatusCompleted:
	default:
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	hotelID := currentHotelID(c)

	var req models.ServiceRequest
	if err := config.DB.Where("id = ? AND hotel_id = ?", input.RequestID, hotelID).First(&req).Error; err != nil {
		response.NotFound(c)
		return
	}

	updates := map[string]interface{}{"status": input.Status}
	if input.Status == constants.RequestStatusCompleted {
		now := time.Now()
		updates["completed_at"] = &now
	}
	if input.AssignedTo != nil {
		updates["assigned_to"] = input.AssignedTo
	}

	if err := config.DB.Model(&models.ServiceRequest{}).Where("id = ?", req.ID).
		Updates(updates).Error; err != nil {
		response.ServerError(c)
		return
	}

	config.DB.First(&req, req.ID)
	response.Success(c, req)
}

func DeleteServiceRequest(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := config.DB.Where("id = ? AND hotel_id = ?", requestID, currentHotelID(c)).
		Delete(&models.ServiceRequest{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// CreateGuestOrder nhận giỏ hàng từ guest portal. Mỗi dòng trong giỏ
// thành một yêu cầu dịch vụ riêng, tên mang hậu tố " (xN)" và giá là
// đơn giá nhân số lượng, tính thẳng vào folio của stay trong token.
func CreateGuestOrder(c *gin.Context) {
	var input dto.GuestOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if len(input.Items) == 0 {
		response.BadRequest(c, "Giỏ hàng trống")
		return
	}

	hotelID := currentHotelID(c)
	stayID := c.GetUint("stayID")
	if stayID == 0 {
		response.Forbidden(c)
		return
	}

	var stay models.Stay
	if err := config.DB.Where("id = ? AND hotel_id = ? AND status = ?",
		stayID, hotelID, constants.StayStatusCheckedIn).First(&stay).Error; err != nil {
		response.BadRequest(c, "Kỳ ở không còn hoạt động")
		return
	}

	var created []models.ServiceRequest
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for _, line := range input.Items {
			if line.Quantity < 1 {
				return fmt.Errorf("số lượng không hợp lệ cho món %d", line.MenuItemID)
			}

			var item models.MenuItem
			if err := tx.Joins("JOIN restaurants ON restaurants.id = menu_items.restaurant_id").
				Where("menu_items.id = ? AND restaurants.hotel_id = ?", line.MenuItemID, hotelID).
				First(&item).Error; err != nil {
				return fmt.Errorf("món %d không tồn tại", line.MenuItemID)
			}
			if !item.Available {
				return fmt.Errorf("món %s hiện không phục vụ", item.Name)
			}

			name := item.Name
			if line.Quantity > 1 {
				name = fmt.Sprintf("%s (x%d)", item.Name, line.Quantity)
			}

			req := models.ServiceRequest{
				HotelID:      hotelID,
				StayID:       &stay.ID,
				RoomID:       &stay.RoomID,
				Name:         name,
				Category:     item.Category,
				Price:        item.Price * float64(line.Quantity),
				Billable:     true,
				RestaurantID: &item.RestaurantID,
				Notes:        input.Notes,
				Status:       constants.RequestStatusPending,
			}
			if err := tx.Create(&req).Error; err != nil {
				return err
			}
			created = append(created, req)
		}
		return nil
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, created)
}

// GetGuestRequests danh sách yêu cầu của chính stay trong token guest
func GetGuestRequests(c *gin.Context) {
	stayID := c.GetUint("stayID")
	if stayID == 0 {
		response.Forbidden(c)
		return
	}

	var requests []models.ServiceRequest
	if err := config.DB.Where("stay_id = ?", stayID).
		Order("created_at DESC").Find(&requests).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, requests, len(requests))
}

// GetRequestsForDepartment lọc yêu cầu theo các category mà phòng ban
// của thành viên phụ trách
func GetRequestsForDepartment(c *gin.Context) {
	hotelID := currentHotelID(c)
	departmentName := c.Query("department")
	if departmentName == "" {
		response.BadRequest(c, "Thiếu tên phòng ban")
		return
	}

	var dept models.Department
	if err := config.DB.Where("hotel_id = ? AND name = ?", hotelID, departmentName).First(&dept).Error; err != nil {
		response.NotFound(c)
		return
	}

	categories, err := services.ParseManagedCategories(dept.ManagedCategories)
	if err != nil || len(categories) == 0 {
		response.SuccessWithTotal(c, []models.ServiceRequest{}, 0)
		return
	}

	var requests []models.ServiceRequest
	if err := config.DB.Where("hotel_id = ? AND category IN ?", hotelID, categories).
		Order("is_emergency DESC, created_at ASC").Find(&requests).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, requests, len(requests))
}
