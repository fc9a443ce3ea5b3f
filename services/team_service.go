package services

import (
	"encoding/json"

	"hms/models"
)

// ParseManagedCategories giải mã danh sách category của phòng ban
func ParseManagedCategories(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var categories []string
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// MembersInDepartment đếm số nhân viên đang thuộc một phòng ban, so theo tên
func MembersInDepartment(members []models.TeamMember, departmentName string) int {
	count := 0
	for _, member := range members {
		if member.Department == departmentName {
			count++
		}
	}
	return count
}

// CanDeleteDepartment phòng ban chỉ được xóa khi không còn ai trực thuộc;
// còn người thì phải chuyển hết sang phòng ban khác trước
func CanDeleteDepartment(members []models.TeamMember, departmentName string) bool {
	return MembersInDepartment(members, departmentName) == 0
}
