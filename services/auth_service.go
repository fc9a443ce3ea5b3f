package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"hms/config"
	"hms/constants"
	"hms/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId  uint `json:"userid"`
	Role    int  `json:"role"`
	HotelId uint `json:"hotelId,omitempty"`
	StayId  uint `json:"stayId,omitempty"` // Chỉ dùng cho token guest
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func generateVerificationCode() (string, error) {
	code := ""

	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}

	return code, nil
}

func sendVerificationEmail(email string, token string) error {
	subject := "Subject: Mã xác thực tài khoản\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Mã xác thực</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Chúng tôi đã nhận yêu cầu mã dùng một lần để dùng cho tài khoản của bạn.</p>
			<p>Mã dùng một lần của bạn là: <strong>%s</strong></p>
			<p>Nếu không yêu cầu mã này thì bạn có thể bỏ qua email này một cách an toàn.</p>
			<p>Xin cám ơn,<br>Nhóm tài khoản</p>
		</body>
		</html>
	`, email, token)

	return SendMail([]string{email}, subject, body)
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
var refreshSecretKey = []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))

func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	var secretKeyToUse []byte
	if isAccessToken {
		secretKeyToUse = secretKey
	} else {
		secretKeyToUse = refreshSecretKey
	}

	return token.SignedString(secretKeyToUse)
}

func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		true,
		false,
	)
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	err := config.DB.Where("email = ?", email).First(&user).Error
	return user, err
}

func GetUserByPhoneNumber(phone string) (models.User, error) {
	var user models.User
	err := config.DB.Where("phone_number = ?", phone).First(&user).Error
	return user, err
}

func CreateUser(input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" || input.PhoneNumber == "" {
		return models.User{}, errors.New("không được để trống email, password, phone")
	}

	existingEmail, err := GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", existingEmail.Email)
	}

	existingPhone, err := GetUserByPhoneNumber(input.PhoneNumber)
	if err == nil {
		return models.User{}, fmt.Errorf("số điện thoại %s đã được sử dụng", existingPhone.PhoneNumber)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	token, err := generateVerificationCode()
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:         input.Email,
		Password:      hashedPassword,
		PhoneNumber:   input.PhoneNumber,
		IsVerified:    false,
		Code:          token,
		CodeCreatedAt: time.Now(),
		Role:          input.Role,
		HotelID:       input.HotelID,
		OwnerID:       input.OwnerID,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
		Name:          input.Name,
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	if err := sendVerificationEmail(input.Email, token); err != nil {
		// Gửi mail lỗi không chặn việc tạo tài khoản
		fmt.Printf("Lỗi gửi email xác thực cho %s: %v\n", input.Email, err)
	}

	return user, nil
}

// FindActiveStayByCode tra cứu stay đang Checked In theo mã, dùng cho guest login
func FindActiveStayByCode(stayCode string) (models.Stay, error) {
	var stay models.Stay
	err := config.DB.Where("stay_code = ? AND status = ?", stayCode, constants.StayStatusCheckedIn).First(&stay).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return stay, errors.New("không tìm thấy kỳ ở đang hoạt động với mã này")
	}
	return stay, err
}
