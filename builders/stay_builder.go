package builders

import (
	"time"

	"hms/models"
)

// StayBuilder giúp tạo stay theo từng bước
type StayBuilder struct {
	stay *models.Stay
}

// NewStayBuilder tạo instance mới của StayBuilder
func NewStayBuilder() *StayBuilder {
	return &StayBuilder{
		stay: &models.Stay{},
	}
}

// WithHotel gắn tenant
func (b *StayBuilder) WithHotel(hotelID uint) *StayBuilder {
	b.stay.HotelID = hotelID
	return b
}

// WithRoom gắn phòng
func (b *StayBuilder) WithRoom(roomID uint) *StayBuilder {
	b.stay.RoomID = roomID
	return b
}

// WithGuestInfo thêm thông tin khách
func (b *StayBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *StayBuilder {
	b.stay.GuestName = guestName
	b.stay.GuestPhone = guestPhone
	b.stay.GuestEmail = guestEmail
	return b
}

// WithDates thêm ngày nhận và trả phòng
func (b *StayBuilder) WithDates(checkIn, checkOut time.Time) *StayBuilder {
	b.stay.CheckInDate = checkIn
	b.stay.CheckOutDate = checkOut
	return b
}

// WithStatus thêm trạng thái
func (b *StayBuilder) WithStatus(status string) *StayBuilder {
	b.stay.Status = status
	return b
}

// WithCharge thêm tiền phòng và tiền đã trả
func (b *StayBuilder) WithCharge(roomCharge, paidAmount float64) *StayBuilder {
	b.stay.RoomCharge = roomCharge
	b.stay.PaidAmount = paidAmount
	return b
}

// WithStayCode gắn mã guest login
func (b *StayBuilder) WithStayCode(code string) *StayBuilder {
	b.stay.StayCode = code
	return b
}

// WithGroup liên kết booking nhóm
func (b *StayBuilder) WithGroup(groupID string, masterStayID *uint) *StayBuilder {
	b.stay.GroupID = &groupID
	b.stay.MasterStayID = masterStayID
	return b
}

// WithCorporateClient chuyển công nợ sang client doanh nghiệp
func (b *StayBuilder) WithCorporateClient(clientID uint) *StayBuilder {
	b.stay.CorporateClientID = &clientID
	return b
}

// Build tạo stay hoàn chỉnh
func (b *StayBuilder) Build() *models.Stay {
	return b.stay
}
