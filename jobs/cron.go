package jobs

import (
	"encoding/json"
	"log"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// SlaChecker định nghĩa interface cho việc tính lại cảnh báo SLA
type SlaChecker interface {
	BroadcastSlaAlerts(m *melody.Melody) error
}

// AnalyticsWarmer định nghĩa interface cho việc làm nóng cache thống kê
type AnalyticsWarmer interface {
	WarmRevenueCache() error
}

var slaChecker SlaChecker
var analyticsWarmer AnalyticsWarmer

// SetSlaChecker thiết lập implementation cho SlaChecker
func SetSlaChecker(checker SlaChecker) {
	slaChecker = checker
}

// SetAnalyticsWarmer thiết lập implementation cho AnalyticsWarmer
func SetAnalyticsWarmer(warmer AnalyticsWarmer) {
	analyticsWarmer = warmer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Tính lại cảnh báo SLA mỗi 30 giây và broadcast qua websocket.
	// Không lưu trạng thái cảnh báo: điều kiện hết thì cảnh báo tự biến mất
	_, err := c.AddFunc("@every 30s", func() {
		if slaChecker == nil {
			return
		}
		if err := slaChecker.BroadcastSlaAlerts(m); err != nil {
			log.Printf("Lỗi khi tính cảnh báo SLA: %v", err)
		}
	})
	if err != nil {
		return err
	}

	// Cron job chạy lúc 0h mỗi ngày làm nóng lại cache thống kê doanh thu
	_, err = c.AddFunc("0 0 * * *", func() {
		if analyticsWarmer == nil {
			return
		}
		if err := analyticsWarmer.WarmRevenueCache(); err != nil {
			log.Printf("Lỗi khi làm nóng cache thống kê: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// BroadcastAlerts gửi danh sách cảnh báo hiện tại tới mọi client đang kết nối
func BroadcastAlerts(m *melody.Melody, hotelID uint, alerts interface{}) error {
	payload, err := json.Marshal(map[string]interface{}{
		"type":    "sla_alerts",
		"hotelId": hotelID,
		"alerts":  alerts,
	})
	if err != nil {
		return err
	}
	return m.Broadcast(payload)
}
