package services

import (
	"testing"
)

func TestGetUserInfoFromToken(t *testing.T) {
	userInfo := UserInfo{
		UserId:  42,
		Role:    3,
		HotelId: 7,
	}

	token, err := GenerateToken(userInfo, 60, true)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	got, err := GetUserInfoFromToken(token)
	if err != nil {
		t.Fatalf("GetUserInfoFromToken() error = %v", err)
	}

	if got.UserId != 42 || got.Role != 3 || got.HotelId != 7 {
		t.Errorf("GetUserInfoFromToken() = %+v, want %+v", got, userInfo)
	}
	if got.StayId != 0 {
		t.Errorf("StayId = %d, want 0 khi token không mang stay", got.StayId)
	}
}

func TestGetUserInfoFromGuestToken(t *testing.T) {
	userInfo := UserInfo{
		UserId:  0,
		Role:    0,
		HotelId: 7,
		StayId:  15,
	}

	token, err := GenerateToken(userInfo, 60, true)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	got, err := GetUserInfoFromToken(token)
	if err != nil {
		t.Fatalf("GetUserInfoFromToken() error = %v", err)
	}

	if got.StayId != 15 || got.HotelId != 7 || got.Role != 0 {
		t.Errorf("GetUserInfoFromToken() = %+v, want %+v", got, userInfo)
	}
}

func TestGetUserInfoFromTokenRejectsGarbage(t *testing.T) {
	tests := []string{
		"",
		"not-a-token",
		"a.b",
		"a.b.c.d",
		"xxx.yyy.zzz",
	}

	for _, token := range tests {
		if _, err := GetUserInfoFromToken(token); err == nil {
			t.Errorf("token %q phải bị từ chối", token)
		}
	}
}
