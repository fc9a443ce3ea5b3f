package services

import (
	"fmt"
	"time"

	"hms/config"
	"hms/constants"
	"hms/models"
	"hms/services/logger"

	"gorm.io/gorm"
)

// RevenueCacheTTL thời gian sống của cache thống kê doanh thu
const RevenueCacheTTL = 6 * time.Hour

// AnalyticsService tổng hợp doanh thu từ DB và làm nóng cache định kỳ
type AnalyticsService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewAnalyticsService(db *gorm.DB, log logger.Logger) *AnalyticsService {
	return &AnalyticsService{db: db, log: log}
}

// RevenueCacheKey key cache cho một khoảng thống kê của một hotel
func RevenueCacheKey(hotelID uint, from, to time.Time) string {
	return fmt.Sprintf("hms:hotel:%d:revenue:%s:%s",
		hotelID, from.Format("2006-01-02"), to.Format("2006-01-02"))
}

// LoadRevenueSummary đọc dữ liệu trả phòng, công nợ doanh nghiệp và tên
// nhà hàng của hotel rồi tổng hợp doanh thu trong khoảng ngày
func (s *AnalyticsService) LoadRevenueSummary(hotelID uint, from, to time.Time) (RevenueSummary, error) {
	var checkouts []models.CheckedOutStay
	if err := s.db.Where("hotel_id = ? AND check_out_date >= ? AND check_out_date < ?",
		hotelID, TruncateDay(from), TruncateDay(to).AddDate(0, 0, 1)).
		Find(&checkouts).Error; err != nil {
		return RevenueSummary{}, err
	}

	var orders []models.BilledOrder
	if err := s.db.
		Joins("JOIN corporate_clients ON corporate_clients.id = billed_orders.client_id").
		Where("corporate_clients.hotel_id = ? AND billed_orders.status = ?", hotelID, constants.BilledOrderPaid).
		Where("billed_orders.paid_date IS NOT NULL").
		Find(&orders).Error; err != nil {
		return RevenueSummary{}, err
	}

	var restaurants []models.Restaurant
	if err := s.db.Where("hotel_id = ?", hotelID).Find(&restaurants).Error; err != nil {
		return RevenueSummary{}, err
	}
	restaurantNames := make(map[uint]string, len(restaurants))
	for _, r := range restaurants {
		restaurantNames[r.ID] = r.Name
	}

	return BuildRevenueSummary(checkouts, orders, restaurantNames, from, to), nil
}

// WarmRevenueCache tính lại thống kê 30 ngày gần nhất cho mọi hotel
// và ghi vào Redis, chạy bởi cron lúc 0h mỗi ngày
func (s *AnalyticsService) WarmRevenueCache() error {
	var hotelIDs []uint
	if err := s.db.Model(&models.Hotel{}).Pluck("id", &hotelIDs).Error; err != nil {
		return err
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return err
	}
	to := TruncateDay(time.Now().In(loc))
	from := to.AddDate(0, 0, -29)

	for _, hotelID := range hotelIDs {
		summary, err := s.LoadRevenueSummary(hotelID, from, to)
		if err != nil {
			s.log.Error("Lỗi tổng hợp doanh thu cho hotel %d: %v", hotelID, err)
			continue
		}
		key := RevenueCacheKey(hotelID, from, to)
		if err := SetToRedis(config.Ctx, config.RedisClient, key, summary, RevenueCacheTTL); err != nil {
			s.log.Error("Lỗi ghi cache doanh thu cho hotel %d: %v", hotelID, err)
		}
	}

	s.log.Info("Đã làm nóng cache doanh thu cho %d hotel", len(hotelIDs))
	return nil
}
