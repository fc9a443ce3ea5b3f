package controllers

import (
	"context"
	"errors"
	"strings"
	"time"

	"hms/config"
	"hms/constants"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	payload, err := idtoken.Validate(context.Background(), tokenId, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// Login xử lý đăng nhập cho cả ba cổng: super admin, franchise owner và
// hotel admin/staff dùng chung một endpoint, role trong token quyết định quyền
func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	var user models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}
	if user.HotelID != nil {
		userInfo.HotelId = *user.HotelID
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3, true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userResponse := dto.UserLoginResponse{
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		UserVerified: user.IsVerified,
		UserPhone:    user.PhoneNumber,
		UserRole:     user.Role,
		HotelID:      user.HotelID,
		UserAvatar:   user.Avatar,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	response.Success(c, gin.H{
		"user_info":   userResponse,
		"accessToken": accessToken,
	})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

func VerifyEmail(c *gin.Context) {
	code := c.Query("token")
	if code == "" {
		response.BadRequest(c, "Cần mã xác thực")
		return
	}

	var user models.User
	result := config.DB.Where("code = ?", code).First(&user)
	if result.Error != nil {
		response.BadRequest(c, "Có lỗi xảy ra khi xác minh email")
		return
	}

	// Mã xác thực hết hạn sau 5 phút
	if time.Since(user.CodeCreatedAt) > 5*time.Minute {
		response.BadRequest(c, "Mã xác thực đã hết hạn. Vui lòng yêu cầu mã mới.")
		return
	}

	user.IsVerified = true
	user.Code = ""
	config.DB.Save(&user)

	response.Success(c, user)
}

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.CreateUser(models.User{
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Name:        input.Name,
		Role:        input.Role,
		HotelID:     input.HotelID,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, user)
}

func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payload, err := verifyGoogleIDToken(input.IdToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if !verified {
		response.BadRequest(c, "Email chưa được Google xác thực")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		// Tài khoản Google mới chỉ được vào khi đã có lời mời qua Delegate
		var delegate models.Delegate
		if err := config.DB.Where("email = ?", email).First(&delegate).Error; err != nil {
			response.BadRequest(c, "Tài khoản chưa được cấp quyền truy cập")
			return
		}

		name, _ := payload.Claims["name"].(string)
		avatar, _ := payload.Claims["picture"].(string)
		user = models.User{
			Email:      email,
			Name:       name,
			Avatar:     avatar,
			IsVerified: true,
			Role:       constants.RoleStaff,
			HotelID:    &delegate.HotelID,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}
	if user.HotelID != nil {
		userInfo.HotelId = *user.HotelID
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3, true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	services.SetTokenCookies(c, accessToken)

	response.Success(c, gin.H{
		"user_info": dto.UserLoginResponse{
			UserID:       user.ID,
			UserName:     user.Name,
			UserEmail:    user.Email,
			UserVerified: user.IsVerified,
			UserRole:     user.Role,
			HotelID:      user.HotelID,
			UserAvatar:   user.Avatar,
			CreatedAt:    user.CreatedAt,
			UpdatedAt:    user.UpdatedAt,
		},
		"accessToken": accessToken,
	})
}

// GuestLogin đăng nhập cổng khách bằng mã kỳ ở, không cần mật khẩu.
// Chỉ stay đang Checked In mới đăng nhập được, token mang role guest
// cùng stayId và hotelId để giới hạn phạm vi truy cập.
func GuestLogin(c *gin.Context) {
	var input dto.GuestLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	stay, err := services.FindActiveStayByCode(strings.TrimSpace(input.StayCode))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userInfo := services.UserInfo{
		UserId:  0,
		Role:    constants.RoleGuest,
		HotelId: stay.HotelID,
		StayId:  stay.ID,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24, true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"stay_info": dto.GuestLoginResponse{
			StayID:       stay.ID,
			HotelID:      stay.HotelID,
			GuestName:    stay.GuestName,
			RoomID:       stay.RoomID,
			CheckInDate:  stay.CheckInDate,
			CheckOutDate: stay.CheckOutDate,
		},
		"accessToken": accessToken,
	})
}
