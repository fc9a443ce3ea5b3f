package services

import (
	"errors"
	"fmt"
	"time"

	"hms/config"
	"hms/constants"
	"hms/models"

	"gorm.io/gorm"
)

// LoadStayFolio nạp dữ liệu và tính folio hiện tại cho một stay.
// Các dòng dịch vụ là request billable gắn với stay; tỷ lệ phí lấy từ hotel.
func LoadStayFolio(db *gorm.DB, stay models.Stay) (FolioTotals, []models.BillLineItem, error) {
	var hotel models.Hotel
	if err := db.First(&hotel, stay.HotelID).Error; err != nil {
		return FolioTotals{}, nil, err
	}

	var requests []models.ServiceRequest
	if err := db.Where("stay_id = ? AND billable = ?", stay.ID, true).Find(&requests).Error; err != nil {
		return FolioTotals{}, nil, err
	}

	items := make([]models.BillLineItem, 0, len(requests))
	for _, req := range requests {
		items = append(items, models.BillLineItem{
			Name:         req.Name,
			Category:     req.Category,
			Price:        req.Price,
			RestaurantID: req.RestaurantID,
		})
	}

	nights := NightsBetween(stay.CheckInDate, stay.CheckOutDate)

	var room models.Room
	if err := db.First(&room, stay.RoomID).Error; err != nil {
		return FolioTotals{}, nil, err
	}

	roomRate := room.Price
	if stay.RoomCharge > 0 {
		// Giá chốt lúc đặt được ưu tiên hơn giá phòng hiện tại
		roomRate = stay.RoomCharge / float64(nights)
	}

	totals := CalculateFolio(FolioInput{
		RoomRate:          roomRate,
		Nights:            nights,
		Services:          items,
		ServiceChargeRate: hotel.ServiceChargeRate,
		GstRate:           hotel.GstRate,
		PaidAmount:        stay.PaidAmount,
	})

	return totals, items, nil
}

// CheckOutStay thực hiện trả phòng trong một transaction duy nhất:
// chốt FinalBill thành bản ghi lịch sử bất biến, đóng dấu ngày trả phòng lên
// phòng, tạo yêu cầu dọn phòng và chuyển stay sang Checked Out.
func CheckOutStay(db *gorm.DB, stayID uint, now time.Time) (models.CheckedOutStay, error) {
	var stay models.Stay
	if err := db.First(&stay, stayID).Error; err != nil {
		return models.CheckedOutStay{}, err
	}

	if stay.Status != constants.StayStatusCheckedIn {
		return models.CheckedOutStay{}, errors.New("stay chưa check in, không thể trả phòng")
	}

	totals, items, err := LoadStayFolio(db, stay)
	if err != nil {
		return models.CheckedOutStay{}, err
	}

	var room models.Room
	if err := db.First(&room, stay.RoomID).Error; err != nil {
		return models.CheckedOutStay{}, err
	}

	var hotel models.Hotel
	if err := db.First(&hotel, stay.HotelID).Error; err != nil {
		return models.CheckedOutStay{}, err
	}

	checkout := models.CheckedOutStay{
		HotelID:      stay.HotelID,
		StayID:       stay.ID,
		RoomID:       room.RoomId,
		RoomNumber:   room.RoomNumber,
		RoomCategory: room.Category,
		GuestName:    stay.GuestName,
		CheckInDate:  stay.CheckInDate,
		CheckOutDate: now,
		FinalBill: models.FinalBill{
			RoomCharge:          totals.RoomTotal,
			Nights:              NightsBetween(stay.CheckInDate, stay.CheckOutDate),
			Services:            items,
			Subtotal:            totals.Subtotal,
			ServiceChargeRate:   hotel.ServiceChargeRate,
			ServiceChargeAmount: totals.ServiceChargeAmount,
			GstRate:             hotel.GstRate,
			GstAmount:           totals.GstAmount,
			PaidAmount:          stay.PaidAmount,
			Total:               totals.Total,
		},
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&checkout).Error; err != nil {
			return err
		}

		checkOutDay := TruncateDay(now)
		if err := tx.Model(&models.Room{}).Where("room_id = ?", room.RoomId).
			Update("last_check_out_date", checkOutDay).Error; err != nil {
			return err
		}

		// Task dọn phòng nội bộ sau trả phòng, không tính tiền
		cleaning := models.ServiceRequest{
			HotelID:  stay.HotelID,
			RoomID:   &room.RoomId,
			Name:     "Dọn phòng " + room.RoomNumber,
			Category: "Housekeeping",
			Billable: false,
			Status:   constants.RequestStatusPending,
		}
		if err := tx.Create(&cleaning).Error; err != nil {
			return err
		}

		return tx.Model(&models.Stay{}).Where("id = ?", stay.ID).
			Updates(map[string]interface{}{
				"status":           constants.StayStatusCheckedOut,
				"actual_check_out": now,
			}).Error
	})
	if err != nil {
		return models.CheckedOutStay{}, err
	}

	return checkout, nil
}

// CheckInStay chuyển stay sang Checked In và ghi giờ nhận phòng thực tế
func CheckInStay(db *gorm.DB, stayID uint, now time.Time) (models.Stay, error) {
	var stay models.Stay
	if err := db.First(&stay, stayID).Error; err != nil {
		return stay, err
	}

	if stay.Status != constants.StayStatusBooked {
		return stay, errors.New("stay không ở trạng thái Booked")
	}

	if err := db.Model(&models.Stay{}).Where("id = ?", stay.ID).
		Updates(map[string]interface{}{
			"status":          constants.StayStatusCheckedIn,
			"actual_check_in": now,
		}).Error; err != nil {
		return stay, err
	}

	stay.Status = constants.StayStatusCheckedIn
	stay.ActualCheckIn = &now
	return stay, nil
}

// InvalidateHotelCache xóa cache danh sách của một hotel sau khi ghi
func InvalidateHotelCache(hotelID uint, prefix string) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	_ = DeleteKeysByPattern(config.Ctx, rdb, fmt.Sprintf("%s:hotel:%d:*", prefix, hotelID))
}
