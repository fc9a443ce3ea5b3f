package controllers

import (
	"strconv"
	"strings"
	"time"

	"hms/builders"
	"hms/commands"
	"hms/config"
	"hms/constants"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// generateStayCode sinh mã ngắn cho guest login, 8 ký tự in hoa
func generateStayCode() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

func buildStayResponse(stay models.Stay, roomNumber string) dto.StayResponse {
	return dto.StayResponse{
		ID:            stay.ID,
		RoomID:        stay.RoomID,
		RoomNumber:    roomNumber,
		StayCode:      stay.StayCode,
		GuestName:     stay.GuestName,
		GuestPhone:    stay.GuestPhone,
		GuestEmail:    stay.GuestEmail,
		CheckInDate:   stay.CheckInDate,
		CheckOutDate:  stay.CheckOutDate,
		Status:        stay.Status,
		RoomCharge:    stay.RoomCharge,
		PaidAmount:    stay.PaidAmount,
		GroupID:       stay.GroupID,
		ActualCheckIn: stay.ActualCheckIn,
	}
}

func GetAllStays(c *gin.Context) {
	hotelID := currentHotelID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := config.DB.Model(&models.Stay{}).Where("hotel_id = ?", hotelID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var stays []models.Stay
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&stays).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, stays, page, limit, int(total))
}

func GetStayDetail(c *gin.Context) {
	stayID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID kỳ ở không hợp lệ")
		return
	}

	var stay models.Stay
	if err := config.DB.Where("id = ? AND hotel_id = ?", stayID, currentHotelID(c)).First(&stay).Error; err != nil {
		response.NotFound(c)
		return
	}

	var room models.Room
	config.DB.First(&room, stay.RoomID)

	response.Success(c, buildStayResponse(stay, room.RoomNumber))
}

// CreateStay tạo booking cho một phòng. Phòng đang out of order trong
// khoảng ở sẽ bị từ chối ngay từ lúc đặt.
func CreateStay(c *gin.Context) {
	var input dto.CreateStayRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotelID := currentHotelID(c)

	checkIn, err := validator.ParseDate(input.CheckInDate)
	if err != nil {
		response.BadRequest(c, "Ngày nhận phòng không hợp lệ, dùng định dạng dd/mm/yyyy")
		return
	}
	checkOut, err := validator.ParseDate(input.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "Ngày trả phòng không hợp lệ, dùng định dạng dd/mm/yyyy")
		return
	}

	var room models.Room
	if err := config.DB.Preload("OutOfOrderBlocks").
		Where("room_id = ? AND hotel_id = ?", input.RoomID, hotelID).
		First(&room).Error; err != nil {
		response.BadRequest(c, "Phòng không tồn tại trong khách sạn")
		return
	}

	for _, block := range room.OutOfOrderBlocks {
		if !checkOut.Before(services.TruncateDay(block.FromDate)) && !checkIn.After(services.TruncateDay(block.ToDate)) {
			response.BadRequest(c, "Phòng đang bảo trì trong khoảng ngày này")
			return
		}
	}

	// Chặn đặt trùng với stay còn hoạt động của cùng phòng
	var overlapping int64
	config.DB.Model(&models.Stay{}).
		Where("room_id = ? AND status IN ?", room.RoomId,
			[]string{constants.StayStatusBooked, constants.StayStatusCheckedIn}).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Count(&overlapping)
	if overlapping > 0 {
		response.BadRequest(c, "Phòng đã có kỳ ở trùng khoảng ngày này")
		return
	}

	roomCharge := input.RoomCharge
	if roomCharge == 0 {
		roomCharge = room.Price * float64(services.NightsBetween(checkIn, checkOut))
	}

	builder := builders.NewStayBuilder().
		WithHotel(hotelID).
		WithRoom(room.RoomId).
		WithGuestInfo(input.GuestName, input.GuestPhone, input.GuestEmail).
		WithDates(checkIn, checkOut).
		WithStatus(constants.StayStatusBooked).
		WithCharge(roomCharge, input.PaidAmount).
		WithStayCode(generateStayCode())

	if input.CorporateClientID != nil {
		var client models.CorporateClient
		if err := config.DB.Where("id = ? AND hotel_id = ?", *input.CorporateClientID, hotelID).
			First(&client).Error; err != nil {
			response.BadRequest(c, "Khách hàng doanh nghiệp không tồn tại")
			return
		}
		builder = builder.WithCorporateClient(client.ID)
	}

	stay := builder.Build()
	if err := validator.ValidateStay(stay); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	createCmd := commands.NewCreateStayCommand(stay, config.DB)
	if err := createCmd.Execute(); err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateHotelCache(hotelID, CachePrefix)
	response.Created(c, buildStayResponse(*stay, room.RoomNumber))
}

// CreateGroupStay đặt nhiều phòng một lần. Stay đầu tiên là Master,
// các stay còn lại trỏ về nó, tiền phòng chia đều theo số phòng.
func CreateGroupStay(c *gin.Context) {
	var input dto.CreateGroupStayRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if len(input.RoomIDs) < 2 {
		response.BadRequest(c, "Booking nhóm cần ít nhất 2 phòng")
		return
	}

	hotelID := currentHotelID(c)

	checkIn, err := validator.ParseDate(input.CheckInDate)
	if err != nil {
		response.BadRequest(c, "Ngày nhận phòng không hợp lệ, dùng định dạng dd/mm/yyyy")
		return
	}
	checkOut, err := validator.ParseDate(input.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "Ngày trả phòng không hợp lệ, dùng định dạng dd/mm/yyyy")
		return
	}

	var rooms []models.Room
	if err := config.DB.Where("room_id IN ? AND hotel_id = ?", input.RoomIDs, hotelID).
		Find(&rooms).Error; err != nil || len(rooms) != len(input.RoomIDs) {
		response.BadRequest(c, "Một hoặc nhiều phòng không tồn tại trong khách sạn")
		return
	}

	groupID := uuid.NewString()
	chargePerRoom := input.RoomCharge / float64(len(rooms))

	var created []models.Stay
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var masterID *uint
		for i, room := range rooms {
			roomCharge := chargePerRoom
			if input.RoomCharge == 0 {
				roomCharge = room.Price * float64(services.NightsBetween(checkIn, checkOut))
			}

			builder := builders.NewStayBuilder().
				WithHotel(hotelID).
				WithRoom(room.RoomId).
				WithGuestInfo(input.GuestName, input.GuestPhone, input.GuestEmail).
				WithDates(checkIn, checkOut).
				WithCharge(roomCharge, 0).
				WithStayCode(generateStayCode()).
				WithGroup(groupID, masterID)

			if i == 0 {
				// Stay Master gánh phần thanh toán gộp của cả nhóm
				builder = builder.WithStatus(constants.StayStatusMaster).WithCharge(roomCharge, input.PaidAmount)
			} else {
				builder = builder.WithStatus(constants.StayStatusBooked)
			}

			stay := builder.Build()
			if err := validator.ValidateStay(stay); err != nil {
				return err
			}
			if err := tx.Create(stay).Error; err != nil {
				return err
			}
			if i == 0 {
				masterID = &stay.ID
			}
			created = append(created, *stay)
		}
		return nil
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	services.InvalidateHotelCache(hotelID, CachePrefix)
	response.Created(c, gin.H{
		"groupId": groupID,
		"stays":   created,
	})
}

func CheckInStay(c *gin.Context) {
	stayID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID kỳ ở không hợp lệ")
		return
	}

	hotelID := currentHotelID(c)

	var stay models.Stay
	if err := config.DB.Where("id = ? AND hotel_id = ?", stayID, hotelID).First(&stay).Error; err != nil {
		response.NotFound(c)
		return
	}

	updated, err := services.CheckInStay(config.DB, stay.ID, time.Now())
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	services.InvalidateHotelCache(hotelID, CachePrefix)
	response.Success(c, updated)
}

// CheckOutStay trả phòng: chốt hóa đơn, ghi lịch sử, tạo task dọn phòng
// và đổi trạng thái stay trong một transaction duy nhất
func CheckOutStay(c *gin.Context) {
	stayID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID kỳ ở không hợp lệ")
		return
	}

	hotelID := currentHotelID(c)

	var stay models.Stay
	if err := config.DB.Where("id = ? AND hotel_id = ?", stayID, hotelID).First(&stay).Error; err != nil {
		response.NotFound(c)
		return
	}

	checkout, err := services.CheckOutStay(config.DB, stay.ID, time.Now())
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	services.InvalidateHotelCache(hotelID, CachePrefix)
	response.Success(c, checkout)
}

// GetStayFolio tính folio hiện tại của một stay, luôn tính lại từ dữ liệu
// gốc chứ không đọc số đã lưu
func GetStayFolio(c *gin.Context) {
	stayID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID kỳ ở không hợp lệ")
		return
	}

	hotelID := currentHotelID(c)

	// Guest chỉ xem được folio của chính kỳ ở trong token
	if c.GetInt("userRole") == constants.RoleGuest && c.GetUint("stayID") != uint(stayID) {
		response.Forbidden(c)
		return
	}

	var stay models.Stay
	if err := config.DB.Where("id = ? AND hotel_id = ?", stayID, hotelID).First(&stay).Error; err != nil {
		response.NotFound(c)
		return
	}

	totals, items, err := services.LoadStayFolio(config.DB, stay)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.FolioResponse{
		StayID:   stay.ID,
		Totals:   totals,
		Services: items,
	})
}

func RecordPayment(c *gin.Context) {
	var input dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Amount <= 0 {
		response.BadRequest(c, "Số tiền thanh toán phải lớn hơn 0")
		return
	}

	hotelID := currentHotelID(c)

	var stay models.Stay
	if err := config.DB.Where("id = ? AND hotel_id = ?", input.StayID, hotelID).First(&stay).Error; err != nil {
		response.NotFound(c)
		return
	}

	if stay.Status == constants.StayStatusCheckedOut {
		response.BadRequest(c, "Kỳ ở đã trả phòng, không ghi thêm thanh toán")
		return
	}

	stay.PaidAmount += input.Amount
	updateCmd := commands.NewUpdateStayCommand(&stay, config.DB)
	if err := updateCmd.Execute(); err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateHotelCache(hotelID, CachePrefix)
	response.Success(c, stay)
}

func GetCheckoutHistory(c *gin.Context) {
	hotelID := currentHotelID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	config.DB.Model(&models.CheckedOutStay{}).Where("hotel_id = ?", hotelID).Count(&total)

	var checkouts []models.CheckedOutStay
	if err := config.DB.Where("hotel_id = ?", hotelID).
		Order("check_out_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&checkouts).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, checkouts, page, limit, int(total))
}

func GetCheckoutDetail(c *gin.Context) {
	checkoutID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var checkout models.CheckedOutStay
	if err := config.DB.Where("id = ? AND hotel_id = ?", checkoutID, currentHotelID(c)).
		First(&checkout).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, checkout)
}

// SendInvoice gửi hóa đơn đã chốt qua email cho khách
func SendInvoice(c *gin.Context) {
	var input dto.SendInvoiceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotelID := currentHotelID(c)

	var checkout models.CheckedOutStay
	if err := config.DB.Where("id = ? AND hotel_id = ?", input.CheckoutID, hotelID).
		First(&checkout).Error; err != nil {
		response.NotFound(c)
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, hotelID).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.SendInvoiceEmail(input.Email, checkout.GuestName, hotel.Name, checkout.FinalBill); err != nil {
		response.BadRequest(c, "Gửi email hóa đơn thất bại: "+err.Error())
		return
	}

	response.Success(c, gin.H{"sentTo": input.Email})
}
