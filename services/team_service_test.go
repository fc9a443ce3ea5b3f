package services

import (
	"testing"

	"hms/models"
)

func TestCanDeleteDepartment(t *testing.T) {
	members := []models.TeamMember{
		{Name: "An", Department: "Housekeeping"},
		{Name: "Bình", Department: "Housekeeping"},
		{Name: "Chi", Department: "Front Desk"},
		{Name: "Dũng", Department: ""},
	}

	if CanDeleteDepartment(members, "Housekeeping") {
		t.Error("phòng ban còn 2 nhân viên không được xóa")
	}
	if got := MembersInDepartment(members, "Housekeeping"); got != 2 {
		t.Errorf("MembersInDepartment = %d, want 2", got)
	}

	if !CanDeleteDepartment(members, "Maintenance") {
		t.Error("phòng ban không có ai phải xóa được")
	}

	// So theo tên, khác hoa thường là phòng ban khác
	if !CanDeleteDepartment(members, "housekeeping") {
		t.Error("tên khác hoa thường không được tính là cùng phòng ban")
	}
}

func TestParseManagedCategories(t *testing.T) {
	categories, err := ParseManagedCategories([]byte(`["Housekeeping","Maintenance"]`))
	if err != nil {
		t.Fatalf("ParseManagedCategories() error = %v", err)
	}
	if len(categories) != 2 || categories[0] != "Housekeeping" {
		t.Errorf("categories = %v", categories)
	}

	if categories, err := ParseManagedCategories(nil); err != nil || categories != nil {
		t.Errorf("ParseManagedCategories(nil) = %v, %v", categories, err)
	}

	if _, err := ParseManagedCategories([]byte(`{"not":"array"}`)); err == nil {
		t.Error("JSON không phải mảng phải trả lỗi")
	}
}
