package services

import (
	"time"

	"hms/constants"
	"hms/models"
)

// RoomDisplayStatus suy ra trạng thái hiển thị của phòng tại thời điểm now.
// Thứ tự ưu tiên cố định, khớp điều kiện đầu tiên thì dừng:
//  1. Out of Order: now nằm trong một block bảo trì
//  2. Occupied: có stay Checked In và now trong [checkIn, checkOut)
//  3. Cleaning: ngày trả phòng gần nhất là hôm nay (suy từ LastCheckOutDate,
//     không có ticket dọn phòng riêng nên phòng đã dọn xong vẫn báo Cleaning hết ngày)
//  4. Waiting for Check-in: có stay nhận phòng hôm nay nhưng chưa check in
//  5. Reserved: có stay với ngày nhận phòng trong tương lai
//  6. Ngược lại dùng trạng thái gốc đã lưu
func RoomDisplayStatus(room models.Room, now time.Time) string {
	today := TruncateDay(now)

	for _, block := range room.OutOfOrderBlocks {
		if DayInRange(today, block.FromDate, block.ToDate) {
			return constants.RoomDisplayOutOfOrder
		}
	}

	for _, stay := range room.Stays {
		if stay.Status != constants.StayStatusCheckedIn {
			continue
		}
		if !today.Before(TruncateDay(stay.CheckInDate)) && today.Before(TruncateDay(stay.CheckOutDate)) {
			return constants.RoomDisplayOccupied
		}
	}

	if room.LastCheckOutDate != nil && SameDay(*room.LastCheckOutDate, today) {
		return constants.RoomDisplayCleaning
	}

	for _, stay := range room.Stays {
		if stay.Status == constants.StayStatusBooked && SameDay(stay.CheckInDate, today) {
			return constants.RoomDisplayWaiting
		}
	}

	for _, stay := range room.Stays {
		if stay.Status == constants.StayStatusBooked && TruncateDay(stay.CheckInDate).After(today) {
			return constants.RoomDisplayReserved
		}
	}

	if room.Status != "" {
		return room.Status
	}
	return constants.RoomDisplayAvailable
}
