package middleware

import (
	"strings"

	"hms/errors"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware xử lý authentication
func AuthMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userInfo, err := services.GetUserInfoFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Kiểm tra role nếu có yêu cầu
		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == userInfo.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		// Lưu thông tin user vào context
		c.Set("userID", userInfo.UserId)
		c.Set("userRole", userInfo.Role)
		c.Set("hotelID", userInfo.HotelId)
		c.Set("stayID", userInfo.StayId)
		c.Next()
	}
}

// TenantMiddleware chặn request không mang hotelID trong token
func TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		hotelID, exists := c.Get("hotelID")
		if !exists || hotelID.(uint) == 0 {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// ErrorHandler xử lý lỗi
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Kiểm tra lỗi
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			if appErr, ok := err.(*errors.AppError); ok {
				response.Error(c, 0, appErr.Message)
				return
			}

			response.ServerError(c)
		}
	}
}
