package services

import (
	"regexp"
	"sort"
	"strconv"
	"time"

	"hms/constants"
	"hms/models"
)

// DailyRevenue một điểm trên biểu đồ doanh thu theo ngày
type DailyRevenue struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue"`
	Checkouts int    `json:"checkouts"`
}

// ServiceStat thống kê theo từng dịch vụ đã chuẩn hóa tên
type ServiceStat struct {
	Name     string  `json:"name"`
	Requests int     `json:"requests"`
	Revenue  float64 `json:"revenue"`
}

// CategoryStat thống kê doanh thu dịch vụ theo nhóm
type CategoryStat struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

// RevenueSummary kết quả tổng hợp doanh thu trong một khoảng ngày
type RevenueSummary struct {
	TotalRevenue     float64        `json:"totalRevenue"`
	RoomRevenue      float64        `json:"roomRevenue"`
	ServiceRevenue   float64        `json:"serviceRevenue"`
	CorporateRevenue float64        `json:"corporateRevenue"`
	NightsSold       int            `json:"nightsSold"`
	ADR              float64        `json:"adr"`
	Daily            []DailyRevenue `json:"daily"`
	Categories       []CategoryStat `json:"categories"`
	Services         []ServiceStat  `json:"services"`
}

var quantitySuffixRe = regexp.MustCompile(`^(.*) \(x(\d+)\)$`)

// NormalizeServiceName tách hậu tố số lượng " (xN)" khỏi tên dịch vụ,
// trả về tên gốc và số lượng (1 nếu không có hậu tố)
func NormalizeServiceName(name string) (string, int) {
	match := quantitySuffixRe.FindStringSubmatch(name)
	if len(match) != 3 {
		return name, 1
	}
	qty, err := strconv.Atoi(match[2])
	if err != nil || qty < 1 {
		return match[1], 1
	}
	return match[1], qty
}

// BuildRevenueSummary gộp doanh thu từ hai nguồn độc lập: lịch sử trả phòng
// (lọc theo ngày trả phòng trong khoảng, bỏ hẳn các hóa đơn tổng bằng 0) và
// đơn công nợ doanh nghiệp (chỉ đơn Paid, lọc theo ngày thanh toán).
// Chuỗi ngày luôn đủ mọi ngày trong khoảng, ngày không có doanh thu là 0.
func BuildRevenueSummary(
	checkouts []models.CheckedOutStay,
	corporateOrders []models.BilledOrder,
	restaurantNames map[uint]string,
	from, to time.Time,
) RevenueSummary {
	summary := RevenueSummary{}

	// Zero-fill đủ mọi ngày trong khoảng trước khi cộng dồn
	indexByDate := make(map[string]int)
	EachDay(from, to, func(day time.Time) {
		key := day.Format("2006-01-02")
		indexByDate[key] = len(summary.Daily)
		summary.Daily = append(summary.Daily, DailyRevenue{Date: key})
	})

	serviceStats := make(map[string]*ServiceStat)
	categoryStats := make(map[string]*CategoryStat)

	for _, checkout := range checkouts {
		if !DayInRange(checkout.CheckOutDate, from, to) {
			continue
		}
		// Kỳ ở giá trị 0 bị loại hẳn khỏi thống kê
		if checkout.FinalBill.Total <= 0 {
			continue
		}

		summary.TotalRevenue += checkout.FinalBill.Total
		summary.RoomRevenue += checkout.FinalBill.RoomCharge
		summary.NightsSold += checkout.FinalBill.Nights

		for _, item := range checkout.FinalBill.Services {
			summary.ServiceRevenue += item.Price

			name, qty := NormalizeServiceName(item.Name)
			stat, ok := serviceStats[name]
			if !ok {
				stat = &ServiceStat{Name: name}
				serviceStats[name] = stat
			}
			stat.Requests += qty
			stat.Revenue += item.Price

			// Món F&B quy về tên nhà hàng thay vì nhóm chung
			category := item.Category
			if item.RestaurantID != nil {
				if restaurantName, ok := restaurantNames[*item.RestaurantID]; ok && restaurantName != "" {
					category = restaurantName
				}
			}
			catStat, ok := categoryStats[category]
			if !ok {
				catStat = &CategoryStat{Category: category}
				categoryStats[category] = catStat
			}
			catStat.Revenue += item.Price
		}

		key := TruncateDay(checkout.CheckOutDate).Format("2006-01-02")
		if idx, ok := indexByDate[key]; ok {
			summary.Daily[idx].Revenue += checkout.FinalBill.Total
			summary.Daily[idx].Checkouts++
		}
	}

	for _, order := range corporateOrders {
		if order.Status != constants.BilledOrderPaid || order.PaidDate == nil {
			continue
		}
		if !DayInRange(*order.PaidDate, from, to) {
			continue
		}

		summary.TotalRevenue += order.Amount
		summary.CorporateRevenue += order.Amount

		key := TruncateDay(*order.PaidDate).Format("2006-01-02")
		if idx, ok := indexByDate[key]; ok {
			summary.Daily[idx].Revenue += order.Amount
		}
	}

	if summary.NightsSold > 0 {
		summary.ADR = summary.RoomRevenue / float64(summary.NightsSold)
	}

	for _, stat := range serviceStats {
		summary.Services = append(summary.Services, *stat)
	}
	sort.Slice(summary.Services, func(i, j int) bool {
		if summary.Services[i].Revenue != summary.Services[j].Revenue {
			return summary.Services[i].Revenue > summary.Services[j].Revenue
		}
		return summary.Services[i].Name < summary.Services[j].Name
	})

	for _, stat := range categoryStats {
		summary.Categories = append(summary.Categories, *stat)
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		if summary.Categories[i].Revenue != summary.Categories[j].Revenue {
			return summary.Categories[i].Revenue > summary.Categories[j].Revenue
		}
		return summary.Categories[i].Category < summary.Categories[j].Category
	})

	return summary
}
