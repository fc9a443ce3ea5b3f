package services

import (
	"sort"
	"time"

	"hms/constants"
	"hms/models"
)

// Alert type
const (
	AlertTypeEmergency = "emergency"
	AlertTypeSlaBreach = "sla_breach"
)

// SlaAlert một cảnh báo tại thời điểm kiểm tra, không lưu và không dismiss được:
// điều kiện hết thì cảnh báo tự biến mất ở lần tính sau
type SlaAlert struct {
	Type           string  `json:"type"`
	RequestID      uint    `json:"requestId"`
	RequestName    string  `json:"requestName"`
	Category       string  `json:"category"`
	ElapsedMinutes float64 `json:"elapsedMinutes"`
	LimitMinutes   int     `json:"limitMinutes,omitempty"`
	OverdueMinutes float64 `json:"overdueMinutes,omitempty"`
}

// CheckSlaBreaches tính lại toàn bộ cảnh báo cho danh sách yêu cầu dịch vụ.
// Yêu cầu khẩn cấp bỏ qua SLA và luôn nổi lên đầu; yêu cầu thường chỉ cảnh báo
// khi Pending/In Progress và quá giới hạn phút của rule khớp đúng tên category.
func CheckSlaBreaches(requests []models.ServiceRequest, rules []models.SlaRule, now time.Time) []SlaAlert {
	limitByCategory := make(map[string]int, len(rules))
	for _, rule := range rules {
		limitByCategory[rule.Category] = rule.TimeLimitMinutes
	}

	var alerts []SlaAlert
	for _, req := range requests {
		if req.Status != constants.RequestStatusPending && req.Status != constants.RequestStatusInProgress {
			continue
		}

		elapsed := now.Sub(req.CreatedAt).Minutes()

		if req.IsEmergency {
			alerts = append(alerts, SlaAlert{
				Type:           AlertTypeEmergency,
				RequestID:      req.ID,
				RequestName:    req.Name,
				Category:       req.Category,
				ElapsedMinutes: elapsed,
			})
			continue
		}

		limit, ok := limitByCategory[req.Category]
		if !ok {
			continue
		}
		if elapsed > float64(limit) {
			alerts = append(alerts, SlaAlert{
				Type:           AlertTypeSlaBreach,
				RequestID:      req.ID,
				RequestName:    req.Name,
				Category:       req.Category,
				ElapsedMinutes: elapsed,
				LimitMinutes:   limit,
				OverdueMinutes: elapsed - float64(limit),
			})
		}
	}

	// Khẩn cấp trước, trong cùng loại thì quá hạn lâu hơn lên trước
	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].Type != alerts[j].Type {
			return alerts[i].Type == AlertTypeEmergency
		}
		return alerts[i].ElapsedMinutes > alerts[j].ElapsedMinutes
	})

	return alerts
}
