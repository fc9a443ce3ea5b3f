package services

import (
	"testing"

	"hms/models"
)

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Phở Bò", "pho bo"},
		{"  Cà Phê Sữa  ", "ca phe sua"},
		{"Club Sandwich", "club sandwich"},
	}

	for _, tt := range tests {
		if got := NormalizeInput(tt.in); got != tt.want {
			t.Errorf("NormalizeInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if got := calculateSimilarity("pho bo", "pho bo"); got != 1.0 {
		t.Errorf("chuỗi giống nhau phải ra 1.0, got %v", got)
	}
	if got := calculateSimilarity("", ""); got != 1.0 {
		t.Errorf("hai chuỗi rỗng phải ra 1.0, got %v", got)
	}
	if got := calculateSimilarity("pho bo", "xyz"); got > 0.5 {
		t.Errorf("chuỗi khác hẳn nhau phải điểm thấp, got %v", got)
	}
}

func TestSearchMenuItems(t *testing.T) {
	items := []models.MenuItem{
		{ID: 1, Name: "Phở Bò", Category: "Noodles", Available: true},
		{ID: 2, Name: "Phở Gà", Category: "Noodles", Available: true},
		{ID: 3, Name: "Club Sandwich", Category: "Snacks", Available: true},
		{ID: 4, Name: "Phở Tái", Category: "Noodles", Available: false},
	}

	results := SearchMenuItems("pho", items)

	if len(results) == 0 {
		t.Fatal("tìm 'pho' phải ra kết quả")
	}

	for _, r := range results {
		if r.MenuItem.ID == 4 {
			t.Error("món hết hàng không được vào kết quả")
		}
		if r.Score <= 0 {
			t.Errorf("kết quả phải có điểm dương, got %+v", r)
		}
	}

	// Điểm giảm dần
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("kết quả không được sắp theo điểm giảm dần: %+v", results)
		}
	}

	// Gõ không dấu vẫn khớp tên có dấu
	found := false
	for _, r := range results {
		if r.MenuItem.ID == 1 || r.MenuItem.ID == 2 {
			found = true
		}
	}
	if !found {
		t.Error("query không dấu phải khớp được món có dấu")
	}
}
