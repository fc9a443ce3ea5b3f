package controllers

import (
	"encoding/json"
	"strconv"

	"hms/config"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetTeamMembers(c *gin.Context) {
	hotelID := currentHotelID(c)

	query := config.DB.Where("hotel_id = ?", hotelID)
	if dept := c.Query("department"); dept != "" {
		query = query.Where("department = ?", dept)
	}

	var members []models.TeamMember
	if err := query.Order("name").Find(&members).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, members, len(members))
}

func CreateTeamMember(c *gin.Context) {
	var input dto.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotelID := currentHotelID(c)

	if input.Department != "" {
		var count int64
		config.DB.Model(&models.Department{}).
			Where("hotel_id = ? AND name = ?", hotelID, input.Department).Count(&count)
		if count == 0 {
			response.BadRequest(c, "Phòng ban không tồn tại")
			return
		}
	}

	member := models.TeamMember{
		HotelID:    hotelID,
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Role:       input.Role,
		Department: input.Department,
		ShiftID:    input.ShiftID,
	}

	if err := config.DB.Create(&member).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, member)
}

func UpdateTeamMember(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	hotelID := currentHotelID(c)

	var member models.TeamMember
	if err := config.DB.Where("id = ? AND hotel_id = ?", memberID, hotelID).First(&member).Error; err != nil {
		response.NotFound(c)
		return
	}

	var input dto.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member.Name = input.Name
	member.Email = input.Email
	member.Phone = input.Phone
	member.Role = input.Role
	member.Department = input.Department
	member.ShiftID = input.ShiftID

	if err := config.DB.Save(&member).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, member)
}

func DeleteTeamMember(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := config.DB.Where("id = ? AND hotel_id = ?", memberID, currentHotelID(c)).
		Delete(&models.TeamMember{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func GetShifts(c *gin.Context) {
	var shifts []models.Shift
	if err := config.DB.Where("hotel_id = ?", currentHotelID(c)).
		Order("start_time").Find(&shifts).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, shifts, len(shifts))
}

func CreateShift(c *gin.Context) {
	var input dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	shift := models.Shift{
		HotelID:   currentHotelID(c),
		Name:      input.Name,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	}

	if err := validator.ValidateShift(&shift); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&shift).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, shift)
}

func DeleteShift(c *gin.Context) {
	shiftID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	hotelID := currentHotelID(c)

	var assigned int64
	config.DB.Model(&models.TeamMember{}).
		Where("hotel_id = ? AND shift_id = ?", hotelID, shiftID).Count(&assigned)
	if assigned > 0 {
		response.BadRequest(c, "Ca làm việc còn nhân viên, không thể xóa")
		return
	}

	if err := config.DB.Where("id = ? AND hotel_id = ?", shiftID, hotelID).
		Delete(&models.Shift{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func GetDepartments(c *gin.Context) {
	hotelID := currentHotelID(c)

	var departments []models.Department
	if err := config.DB.Where("hotel_id = ?", hotelID).Order("name").Find(&departments).Error; err != nil {
		response.ServerError(c)
		return
	}

	var members []models.TeamMember
	config.DB.Where("hotel_id = ?", hotelID).Find(&members)

	type departmentWithCount struct {
		models.Department
		MemberCount int `json:"memberCount"`
	}

	results := make([]departmentWithCount, 0, len(departments))
	for _, dept := range departments {
		results = append(results, departmentWithCount{
			Department:  dept,
			MemberCount: services.MembersInDepartment(members, dept.Name),
		})
	}

	response.SuccessWithTotal(c, results, len(results))
}

func CreateDepartment(c *gin.Context) {
	var input dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	categoriesJSON, err := json.Marshal(input.ManagedCategories)
	if err != nil {
		response.BadRequest(c, "Danh sách category không hợp lệ")
		return
	}

	dept := models.Department{
		HotelID:           currentHotelID(c),
		Name:              input.Name,
		ManagedCategories: categoriesJSON,
	}

	if err := validator.ValidateDepartment(&dept); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&dept).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, dept)
}

// DeleteDepartment chỉ xóa được phòng ban không còn nhân viên.
// Còn người thì trả lỗi kèm số lượng, client phải chuyển họ đi trước.
func DeleteDepartment(c *gin.Context) {
	deptID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	hotelID := currentHotelID(c)

	var dept models.Department
	if err := config.DB.Where("id = ? AND hotel_id = ?", deptID, hotelID).First(&dept).Error; err != nil {
		response.NotFound(c)
		return
	}

	var members []models.TeamMember
	config.DB.Where("hotel_id = ?", hotelID).Find(&members)

	if !services.CanDeleteDepartment(members, dept.Name) {
		count := services.MembersInDepartment(members, dept.Name)
		response.BadRequest(c, "Phòng ban còn "+strconv.Itoa(count)+" nhân viên, hãy chuyển họ sang phòng ban khác trước khi xóa")
		return
	}

	if err := config.DB.Delete(&models.Department{}, dept.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// ReassignMembers chuyển toàn bộ nhân viên của một phòng ban sang phòng
// ban khác trong một lần, dọn đường cho việc xóa phòng ban nguồn
func ReassignMembers(c *gin.Context) {
	var input dto.ReassignMembersRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotelID := currentHotelID(c)

	var target models.Department
	if err := config.DB.Where("hotel_id = ? AND name = ?", hotelID, input.ToDepartment).
		First(&target).Error; err != nil {
		response.BadRequest(c, "Phòng ban đích không tồn tại")
		return
	}

	var moved int64
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.TeamMember{}).
			Where("hotel_id = ? AND department = ?", hotelID, input.FromDepartment).
			Update("department", input.ToDepartment)
		moved = result.RowsAffected
		return result.Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"moved": moved})
}
