package controllers

import (
	"fmt"
	"log"
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
)

// CachePrefix prefix chung cho mọi cache key của hệ thống
const CachePrefix = "hms"

func currentHotelID(c *gin.Context) uint {
	return c.GetUint("hotelID")
}

func buildRoomResponse(room models.Room, now time.Time) dto.RoomResponse {
	resp := dto.RoomResponse{
		ID:               room.RoomId,
		RoomNumber:       room.RoomNumber,
		Category:         room.Category,
		Price:            room.Price,
		Floor:            room.Floor,
		Description:      room.Description,
		DisplayStatus:    services.RoomDisplayStatus(room, now),
		LastCheckOutDate: room.LastCheckOutDate,
		OutOfOrderBlocks: room.OutOfOrderBlocks,
	}

	// Kèm stay đang ở hoặc sắp nhận phòng hôm nay nếu có
	for _, stay := range room.Stays {
		if stay.Status == constants.StayStatusCheckedIn ||
			(stay.Status == constants.StayStatusBooked && services.SameDay(stay.CheckInDate, now)) {
			resp.CurrentStay = &dto.StaySummary{
				ID:           stay.ID,
				GuestName:    stay.GuestName,
				CheckInDate:  stay.CheckInDate,
				CheckOutDate: stay.CheckOutDate,
				Status:       stay.Status,
			}
			break
		}
	}

	return resp
}

// GetAllRooms trả về danh sách phòng của hotel, trạng thái hiển thị luôn
// được tính lại tại thời điểm đọc chứ không lấy từ cột status
func GetAllRooms(c *gin.Context) {
	hotelID := currentHotelID(c)

	var rooms []models.Room

	cacheKey := fmt.Sprintf("%s:hotel:%d:rooms", CachePrefix, hotelID)
	rdb, err := config.ConnectRedis()
	if err == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &rooms); err != nil {
			log.Printf("Lỗi khi lấy dữ liệu phòng từ Redis: %v", err)
		}
	}

	if len(rooms) == 0 {
		if err := config.DB.
			Preload("Stays", "status IN ?", []string{constants.StayStatusBooked, constants.StayStatusCheckedIn}).
			Preload("OutOfOrderBlocks").
			Where("hotel_id = ?", hotelID).
			Order("room_number").
			Find(&rooms).Error; err != nil {
			response.ServerError(c)
			return
		}

		if rdb != nil {
			if err := services.SetToRedis(config.Ctx, rdb, cacheKey, rooms, 10*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu dữ liệu phòng vào Redis: %v", err)
			}
		}
	}

	now := time.Now()
	results := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		results = append(results, buildRoomResponse(room, now))
	}

	response.SuccessWithTotal(c, results, len(results))
}

func GetRoomDetail(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.
		Preload("Stays", "status IN ?", []string{constants.StayStatusBooked, constants.StayStatusCheckedIn}).
		Preload("OutOfOrderBlocks").
		Where("room_id = ? AND hotel_id = ?", roomID, currentHotelID(c)).
		First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, buildRoomResponse(room, time.Now()))
}

func CreateRoom(c *gin.Context) {
	var input dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotelID := currentHotelID(c)

	var count int64
	config.DB.Model(&models.Room{}).Where("hotel_id = ? AND room_number = ?", hotelID, input.RoomNumber).Count(&count)
	if count > 0 {
		response.BadRequest(c, "Số phòng đã tồn tại trong khách sạn")
		return
	}

	room := models.Room{
		HotelID:     hotelID,
		RoomNumber:  input.RoomNumber,
		Category:    input.Category,
		Price:       input.Price,
		Floor:       input.Floor,
		Description: input.Description,
		Img:         input.Img,
		Status:      constants.RoomDisplayAvailable,
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateHotelCache(hotelID, CachePrefix)
	response.Created(c, room)
}

func UpdateRoom(c *gin.Context) {
	var input dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotelID := currentHotelID(c)

	var room models.Room
	if err := config.DB.Where("room_id = ? AND hotel_id = ?", input.RoomID, hotelID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.RoomNumber != "" {
		room.RoomNumber = input.RoomNumber
	}
	if input.Category != "" {
		room.Category = input.Category
	}
	if input.Price > 0 {
		room.Price = input.Price
	}
	if input.Floor != 0 {
		room.Floor = input.Floor
	}
	if input.Description != "" {
		room.Description = input.Description
	}
	if len(input.Img) > 0 {
		room.Img = input.Img
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateHotelCache(hotelID, CachePrefix)
	response.Success(c, room)
}

// ChangeRoomStatus đổi trạng thái gốc của phòng. Trạng thái này chỉ là
// fallback, khi hiển thị vẫn bị trạng thái suy ra từ stay và lịch ghi đè.
func ChangeRoomStatus(c *gin.Context) {
	var input dto.ChangeRoomStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotelID := currentHotelID(c)

	var room models.Room
	if err := config.DB.Where("room_id = ? AND hotel_id = ?", input.RoomID, hotelID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.Status = input.Status
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	if err := config.DB.Model(&models.Room{}).Where("room_id = ?", room.RoomId).
		Update("status", input.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateHotelCache(hotelID, CachePrefix)
	response.Success(c, room)
}

func DeleteRoom(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	hotelID := currentHotelID(c)

	var activeStays int64
	config.DB.Model(&models.Stay{}).
		Where("room_id = ? AND status IN ?", roomID,
			[]string{constants.StayStatusBooked, constants.StayStatusCheckedIn}).
		Count(&activeStays)
	if activeStays > 0 {
		response.BadRequest(c, "Phòng còn kỳ ở chưa kết thúc, không thể xóa")
		return
	}

	if err := config.DB.Where("room_id = ? AND hotel_id = ?", roomID, hotelID).
		Delete(&models.Room{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateHotelCache(hotelID, CachePrefix)
	response.Success(c, nil)
}

// CreateOutOfOrderBlock chặn phòng trong một khoảng ngày để bảo trì.
// Trong khoảng này trạng thái Out of Order đè lên mọi trạng thái khác.
func CreateOutOfOrderBlock(c *gin.Context) {
	var input dto.OutOfOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotelID := currentHotelID(c)

	var room models.Room
	if err := config.DB.Where("room_id = ? AND hotel_id = ?", input.RoomID, hotelID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	fromDate, err := validator.ParseDate(input.FromDate)
	if err != nil {
		response.BadRequest(c, "Ngày bắt đầu không hợp lệ, dùng định dạng dd/mm/yyyy")
		return
	}
	toDate, err := validator.ParseDate(input.ToDate)
	if err != nil {
		response.BadRequest(c, "Ngày kết thúc không hợp lệ, dùng định dạng dd/mm/yyyy")
		return
	}

	block := models.OutOfOrderBlock{
		RoomID:   room.RoomId,
		FromDate: fromDate,
		ToDate:   toDate,
		Reason:   input.Reason,
	}
	if err := validator.ValidateOutOfOrderBlock(&block); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&block).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateHotelCache(hotelID, CachePrefix)
	response.Created(c, block)
}

func DeleteOutOfOrderBlock(c *gin.Context) {
	blockID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	hotelID := currentHotelID(c)

	var block models.OutOfOrderBlock
	if err := config.DB.
		Joins("JOIN rooms ON rooms.room_id = out_of_order_blocks.room_id").
		Where("out_of_order_blocks.id = ? AND rooms.hotel_id = ?", blockID, hotelID).
		First(&block).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Delete(&models.OutOfOrderBlock{}, block.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateHotelCache(hotelID, CachePrefix)
	response.Success(c, nil)
}
