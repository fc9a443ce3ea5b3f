package controllers

import (
	"log"
	"time"

	"hms/config"
	"hms/response"
	"hms/services"
	"hms/services/logger"
	"hms/validator"

	"github.com/gin-gonic/gin"
)

// GetRevenueSummary tổng hợp doanh thu trong khoảng fromDate..toDate
// (dd/mm/yyyy). Kết quả được cache theo hotel và khoảng ngày, request
// ghi sẽ xóa cache qua InvalidateHotelCache.
func GetRevenueSummary(c *gin.Context) {
	hotelID := currentHotelID(c)

	fromStr := c.Query("fromDate")
	toStr := c.Query("toDate")
	if fromStr == "" || toStr == "" {
		response.BadRequest(c, "fromDate và toDate là bắt buộc")
		return
	}

	from, err := validator.ParseDate(fromStr)
	if err != nil {
		response.BadRequest(c, "fromDate không hợp lệ, dùng định dạng dd/mm/yyyy")
		return
	}
	to, err := validator.ParseDate(toStr)
	if err != nil {
		response.BadRequest(c, "toDate không hợp lệ, dùng định dạng dd/mm/yyyy")
		return
	}
	if to.Before(from) {
		response.BadRequest(c, "toDate phải sau hoặc bằng fromDate")
		return
	}

	cacheKey := services.RevenueCacheKey(hotelID, from, to)
	rdb, err := config.ConnectRedis()
	if err == nil {
		var cached services.RevenueSummary
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &cached); err == nil && len(cached.Daily) > 0 {
			response.Success(c, cached)
			return
		}
	}

	analytics := services.NewAnalyticsService(config.DB, logger.NewDefaultLogger(logger.InfoLevel))
	summary, err := analytics.LoadRevenueSummary(hotelID, from, to)
	if err != nil {
		response.ServerError(c)
		return
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, summary, 30*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu thống kê vào Redis: %v", err)
		}
	}

	response.Success(c, summary)
}

// GetTodaySummary số liệu nhanh cho dashboard: doanh thu và lượt trả
// phòng của ngày hôm nay
func GetTodaySummary(c *gin.Context) {
	hotelID := currentHotelID(c)
	today := services.TruncateDay(time.Now())

	analytics := services.NewAnalyticsService(config.DB, logger.NewDefaultLogger(logger.InfoLevel))
	summary, err := analytics.LoadRevenueSummary(hotelID, today, today)
	if err != nil {
		response.ServerError(c)
		return
	}

	checkouts := 0
	if len(summary.Daily) > 0 {
		checkouts = summary.Daily[0].Checkouts
	}

	response.Success(c, gin.H{
		"date":         today.Format("2006-01-02"),
		"totalRevenue": summary.TotalRevenue,
		"checkouts":    checkouts,
		"nightsSold":   summary.NightsSold,
	})
}
