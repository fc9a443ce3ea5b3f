package services

import (
	"encoding/json"
	"hms/errors"
	"strings"

	"github.com/dgrijalva/jwt-go"
)

func decodeClaims(tokenString string) (jwt.MapClaims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}

	// Giải mã phần payload của token
	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể giải mã token", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể parse token", err)
	}

	return claimsMap, nil
}

// GetUserInfoFromToken lấy toàn bộ thông tin user từ token
func GetUserInfoFromToken(tokenString string) (UserInfo, error) {
	claimsMap, err := decodeClaims(tokenString)
	if err != nil {
		return UserInfo{}, err
	}

	userInfoRaw, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy thông tin user trong token", nil)
	}

	userID, okID := userInfoRaw["userid"].(float64)
	if !okID {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy ID user trong token", nil)
	}

	role, okRole := userInfoRaw["role"].(float64)
	if !okRole {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy role trong token", nil)
	}

	info := UserInfo{
		UserId: uint(userID),
		Role:   int(role),
	}

	if hotelID, ok := userInfoRaw["hotelId"].(float64); ok {
		info.HotelId = uint(hotelID)
	}
	if stayID, ok := userInfoRaw["stayId"].(float64); ok {
		info.StayId = uint(stayID)
	}

	return info, nil
}

// GetUserIDFromToken lấy userID và role từ token
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	info, err := GetUserInfoFromToken(tokenString)
	if err != nil {
		return 0, 0, err
	}
	return info.UserId, info.Role, nil
}

// GetHotelIDFromToken lấy hotelID của tenant từ token
func GetHotelIDFromToken(tokenString string) (uint, error) {
	info, err := GetUserInfoFromToken(tokenString)
	if err != nil {
		return 0, err
	}
	return info.HotelId, nil
}
