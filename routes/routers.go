package routes

import (
	"context"
	"net/http"

	"hms/config"
	"hms/controllers"
	middlewares "hms/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	router.Use(middlewares.SessionMiddleware())

	v1 := router.Group("/api/v1")

	// Auth: ba cổng đăng nhập staff/owner/admin dùng chung, guest đi
	// đường riêng bằng mã kỳ ở
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.POST("/auth/guest", controllers.GuestLogin)
	v1.GET("/verify-email", controllers.VerifyEmail)

	staff := middlewares.AuthMiddleware(1, 2, 3, 4)
	admin := middlewares.AuthMiddleware(1, 2, 3)
	owner := middlewares.AuthMiddleware(1, 2)
	guest := middlewares.AuthMiddleware(0)
	tenant := middlewares.TenantMiddleware()

	// Phòng và trạng thái hiển thị
	v1.GET("/rooms", staff, tenant, controllers.GetAllRooms)
	v1.GET("/rooms/:id", staff, tenant, controllers.GetRoomDetail)
	v1.POST("/rooms", admin, tenant, controllers.CreateRoom)
	v1.PUT("/roomUpdate", admin, tenant, controllers.UpdateRoom)
	v1.PUT("/roomStatus", staff, tenant, controllers.ChangeRoomStatus)
	v1.DELETE("/rooms/:id", admin, tenant, controllers.DeleteRoom)
	v1.POST("/outOfOrder", admin, tenant, controllers.CreateOutOfOrderBlock)
	v1.DELETE("/outOfOrder/:id", admin, tenant, controllers.DeleteOutOfOrderBlock)

	// Kỳ ở
	v1.GET("/stays", staff, tenant, controllers.GetAllStays)
	v1.GET("/stays/:id", staff, tenant, controllers.GetStayDetail)
	v1.POST("/stays", staff, tenant, controllers.CreateStay)
	v1.POST("/stays/group", staff, tenant, controllers.CreateGroupStay)
	v1.POST("/stays/:id/checkin", staff, tenant, controllers.CheckInStay)
	v1.POST("/stays/:id/checkout", staff, tenant, controllers.CheckOutStay)
	v1.GET("/stays/:id/folio", middlewares.AuthMiddleware(0, 1, 2, 3, 4), tenant, controllers.GetStayFolio)
	v1.POST("/payments", staff, tenant, controllers.RecordPayment)

	// Lịch sử trả phòng và hóa đơn
	v1.GET("/checkouts", staff, tenant, controllers.GetCheckoutHistory)
	v1.GET("/checkouts/:id", staff, tenant, controllers.GetCheckoutDetail)
	v1.POST("/invoices/send", staff, tenant, controllers.SendInvoice)

	// Yêu cầu dịch vụ
	v1.GET("/requests", staff, tenant, controllers.GetServiceRequests)
	v1.GET("/requests/department", staff, tenant, controllers.GetRequestsForDepartment)
	v1.POST("/requests", staff, tenant, controllers.CreateServiceRequest)
	v1.PUT("/requestStatus", staff, tenant, controllers.UpdateRequestStatus)
	v1.DELETE("/requests/:id", admin, tenant, controllers.DeleteServiceRequest)

	// Guest portal
	v1.POST("/guest/orders", guest, tenant, controllers.CreateGuestOrder)
	v1.GET("/guest/requests", guest, tenant, controllers.GetGuestRequests)
	v1.GET("/guest/menu", guest, tenant, controllers.SearchMenu)

	// Khách doanh nghiệp và công nợ
	v1.GET("/corporate", staff, tenant, controllers.GetCorporateClients)
	v1.GET("/corporate/:id", staff, tenant, controllers.GetCorporateClientDetail)
	v1.POST("/corporate", admin, tenant, controllers.CreateCorporateClient)
	v1.DELETE("/corporate/:id", admin, tenant, controllers.DeleteCorporateClient)
	v1.POST("/billedOrders", staff, tenant, controllers.CreateBilledOrder)
	v1.PUT("/billedOrders/paid", staff, tenant, controllers.MarkOrderPaid)

	// Thống kê doanh thu
	v1.GET("/revenue", admin, tenant, controllers.GetRevenueSummary)
	v1.GET("/today", staff, tenant, controllers.GetTodaySummary)

	// Đội ngũ, ca làm việc, phòng ban
	v1.GET("/team", staff, tenant, controllers.GetTeamMembers)
	v1.POST("/team", admin, tenant, controllers.CreateTeamMember)
	v1.PUT("/team/:id", admin, tenant, controllers.UpdateTeamMember)
	v1.DELETE("/team/:id", admin, tenant, controllers.DeleteTeamMember)
	v1.GET("/shifts", staff, tenant, controllers.GetShifts)
	v1.POST("/shifts", admin, tenant, controllers.CreateShift)
	v1.DELETE("/shifts/:id", admin, tenant, controllers.DeleteShift)
	v1.GET("/departments", staff, tenant, controllers.GetDepartments)
	v1.POST("/departments", admin, tenant, controllers.CreateDepartment)
	v1.DELETE("/departments/:id", admin, tenant, controllers.DeleteDepartment)
	v1.PUT("/departments/reassign", admin, tenant, controllers.ReassignMembers)

	// SLA
	v1.GET("/sla", admin, tenant, controllers.GetSlaRules)
	v1.POST("/sla", admin, tenant, controllers.CreateSlaRule)
	v1.PUT("/sla/:id", admin, tenant, controllers.UpdateSlaRule)
	v1.DELETE("/sla/:id", admin, tenant, controllers.DeleteSlaRule)
	v1.GET("/alerts", staff, tenant, controllers.GetCurrentAlerts)

	// Quyền truy cập
	v1.POST("/accessRequests", controllers.CreateAccessRequest)
	v1.GET("/accessRequests", admin, tenant, controllers.GetAccessRequests)
	v1.POST("/accessRequests/:id/approve", admin, tenant, controllers.ApproveAccessRequest)
	v1.DELETE("/accessRequests/:id", admin, tenant, controllers.DenyAccessRequest)
	v1.GET("/delegates", admin, tenant, controllers.GetDelegates)
	v1.DELETE("/delegates/:id", admin, tenant, controllers.RevokeDelegate)

	// Nhà hàng và thực đơn
	v1.GET("/restaurants", staff, tenant, controllers.GetRestaurants)
	v1.POST("/restaurants", admin, tenant, controllers.CreateRestaurant)
	v1.DELETE("/restaurants/:id", admin, tenant, controllers.DeleteRestaurant)
	v1.POST("/menuItems", admin, tenant, controllers.CreateMenuItem)
	v1.PUT("/menuItems/:id/availability", staff, tenant, controllers.UpdateMenuItemAvailability)
	v1.DELETE("/menuItems/:id", admin, tenant, controllers.DeleteMenuItem)
	v1.GET("/menu/search", staff, tenant, controllers.SearchMenu)

	// Kho
	v1.GET("/inventory", staff, tenant, controllers.GetInventory)
	v1.POST("/inventory", admin, tenant, controllers.CreateInventoryItem)
	v1.PUT("/inventory/adjust", staff, tenant, controllers.AdjustInventory)
	v1.DELETE("/inventory/:id", admin, tenant, controllers.DeleteInventoryItem)

	// Khách sạn (super admin / franchise owner)
	v1.GET("/hotels", owner, controllers.GetHotels)
	v1.GET("/hotels/:id", staff, controllers.GetHotelDetail)
	v1.POST("/hotels", owner, controllers.CreateHotel)
	v1.PUT("/hotelSettings", admin, tenant, controllers.UpdateHotelSettings)
	v1.PUT("/hotels/:id/status", middlewares.AuthMiddleware(1), controllers.ChangeHotelStatus)

	v1.POST("/img/multi-upload", admin, func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	//ws
	v1.GET("/test-broadcast", middlewares.AuthMiddleware(1), func(c *gin.Context) {
		message := []byte("Thông báo từ backend: kiểm tra kênh cảnh báo")
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})

}
