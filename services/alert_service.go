package services

import (
	"time"
	_ "time/tzdata"

	"hms/constants"
	"hms/models"
	"hms/services/logger"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

const DefaultTimezone = "Asia/Ho_Chi_Minh"

// AlertServiceOptions cấu hình cho AlertService
type AlertServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// AlertService tính lại cảnh báo SLA cho từng hotel
type AlertService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewAlertService(opts AlertServiceOptions) *AlertService {
	return &AlertService{
		db:  opts.DB,
		log: opts.Logger,
	}
}

// CurrentAlerts tính danh sách cảnh báo hiện tại cho một hotel
func (s *AlertService) CurrentAlerts(hotelID uint, now time.Time) ([]SlaAlert, error) {
	var requests []models.ServiceRequest
	if err := s.db.Where("hotel_id = ? AND status IN ?", hotelID,
		[]string{constants.RequestStatusPending, constants.RequestStatusInProgress}).
		Find(&requests).Error; err != nil {
		return nil, err
	}

	var rules []models.SlaRule
	if err := s.db.Where("hotel_id = ?", hotelID).Find(&rules).Error; err != nil {
		return nil, err
	}

	return CheckSlaBreaches(requests, rules, now), nil
}

// BroadcastSlaAlerts tính cảnh báo cho mọi hotel còn yêu cầu mở và broadcast
func (s *AlertService) BroadcastSlaAlerts(m *melody.Melody, broadcast func(m *melody.Melody, hotelID uint, alerts interface{}) error) error {
	var hotelIDs []uint
	if err := s.db.Model(&models.ServiceRequest{}).
		Where("status IN ?", []string{constants.RequestStatusPending, constants.RequestStatusInProgress}).
		Distinct("hotel_id").
		Pluck("hotel_id", &hotelIDs).Error; err != nil {
		return err
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return err
	}
	now := time.Now().In(loc)

	for _, hotelID := range hotelIDs {
		alerts, err := s.CurrentAlerts(hotelID, now)
		if err != nil {
			s.log.Error("Lỗi tính cảnh báo cho hotel %d: %v", hotelID, err)
			continue
		}
		if len(alerts) == 0 {
			continue
		}
		if err := broadcast(m, hotelID, alerts); err != nil {
			s.log.Error("Lỗi broadcast cảnh báo cho hotel %d: %v", hotelID, err)
		}
	}

	return nil
}

// AlertServiceAdapter cho jobs.SlaChecker, hàm broadcast được bơm từ ngoài
// để services không phụ thuộc vào package jobs
type AlertServiceAdapter struct {
	service   *AlertService
	broadcast func(m *melody.Melody, hotelID uint, alerts interface{}) error
}

func NewAlertServiceAdapter(service *AlertService, broadcast func(m *melody.Melody, hotelID uint, alerts interface{}) error) *AlertServiceAdapter {
	return &AlertServiceAdapter{service: service, broadcast: broadcast}
}

func (a *AlertServiceAdapter) BroadcastSlaAlerts(m *melody.Melody) error {
	return a.service.BroadcastSlaAlerts(m, a.broadcast)
}
