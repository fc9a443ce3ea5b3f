package dto

type CreateTeamMemberRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Department string `json:"department"`
	ShiftID    *uint  `json:"shiftId,omitempty"`
}

type CreateShiftRequest struct {
	Name      string `json:"name" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

type CreateDepartmentRequest struct {
	Name              string   `json:"name" binding:"required"`
	ManagedCategories []string `json:"managedCategories"`
}

// ReassignMembersRequest chuyển toàn bộ nhân viên từ một phòng ban sang phòng ban khác
type ReassignMembersRequest struct {
	FromDepartment string `json:"fromDepartment" binding:"required"`
	ToDepartment   string `json:"toDepartment" binding:"required"`
}

type CreateSlaRuleRequest struct {
	Category         string `json:"category" binding:"required"`
	TimeLimitMinutes int    `json:"timeLimitMinutes" binding:"required"`
}
