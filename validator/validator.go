package validator

import (
	"encoding/json"
	"regexp"
	"time"

	"hms/errors"
	"hms/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
var timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	return nil
}

// ValidateStay validate thông tin kỳ ở trước khi tạo booking
func ValidateStay(stay *models.Stay) error {
	if stay.GuestName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}

	if stay.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeInvalidRoomID, "Thiếu phòng cho kỳ ở", nil)
	}

	if stay.CheckInDate.IsZero() || stay.CheckOutDate.IsZero() {
		return errors.NewAppError(errors.ErrCodeInvalidDates, "Thiếu ngày nhận hoặc trả phòng", nil)
	}

	if !stay.CheckOutDate.After(stay.CheckInDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDates, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	if stay.RoomCharge < 0 || stay.PaidAmount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền không được âm", nil)
	}

	return nil
}

// ValidateServiceRequest validate yêu cầu dịch vụ
func ValidateServiceRequest(req *models.ServiceRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên yêu cầu không được để trống", nil)
	}

	if req.Category == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Category không được để trống", nil)
	}

	if req.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá không được âm", nil)
	}

	if req.Billable && req.StayID == nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Yêu cầu tính tiền phải gắn với một kỳ ở", nil)
	}

	return nil
}

// ValidateSlaRule validate rule SLA
func ValidateSlaRule(rule *models.SlaRule) error {
	if rule.Category == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Category không được để trống", nil)
	}

	if rule.TimeLimitMinutes <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giới hạn phút phải lớn hơn 0", nil)
	}

	return nil
}

// ValidateShift validate ca làm việc, giờ theo định dạng HH:MM
func ValidateShift(shift *models.Shift) error {
	if shift.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên ca không được để trống", nil)
	}

	if !timeRegex.MatchString(shift.StartTime) || !timeRegex.MatchString(shift.EndTime) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Giờ bắt đầu/kết thúc phải theo định dạng HH:MM", nil)
	}

	return nil
}

// ValidateDepartment validate phòng ban, danh sách category phải là mảng JSON chuỗi
func ValidateDepartment(dept *models.Department) error {
	if dept.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên phòng ban không được để trống", nil)
	}

	if len(dept.ManagedCategories) > 0 {
		var categories []string
		if err := json.Unmarshal(dept.ManagedCategories, &categories); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Danh sách category không hợp lệ", err)
		}
	}

	return nil
}

// ValidateOutOfOrderBlock validate block bảo trì
func ValidateOutOfOrderBlock(block *models.OutOfOrderBlock) error {
	if block.FromDate.IsZero() || block.ToDate.IsZero() {
		return errors.NewAppError(errors.ErrCodeInvalidDates, "Thiếu ngày bắt đầu hoặc kết thúc", nil)
	}

	if block.ToDate.Before(block.FromDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDates, "Ngày kết thúc phải từ ngày bắt đầu trở đi", nil)
	}

	return nil
}

// ParseDate chuyển chuỗi dd/mm/yyyy thành time.Time
func ParseDate(dateStr string) (time.Time, error) {
	parsedDate, err := time.Parse("02/01/2006", dateStr)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày không hợp lệ, định dạng: dd/mm/yyyy", err)
	}
	return parsedDate, nil
}
