package commands

import (
	"hms/models"

	"gorm.io/gorm"
)

// StayCommand định nghĩa interface cho các command
type StayCommand interface {
	Execute() error
}

// CreateStayCommand command để tạo stay mới
type CreateStayCommand struct {
	stay *models.Stay
	db   *gorm.DB
}

func NewCreateStayCommand(stay *models.Stay, db *gorm.DB) *CreateStayCommand {
	return &CreateStayCommand{
		stay: stay,
		db:   db,
	}
}

func (c *CreateStayCommand) Execute() error {
	return c.db.Create(c.stay).Error
}

// UpdateStayCommand command để cập nhật stay
type UpdateStayCommand struct {
	stay *models.Stay
	db   *gorm.DB
}

func NewUpdateStayCommand(stay *models.Stay, db *gorm.DB) *UpdateStayCommand {
	return &UpdateStayCommand{
		stay: stay,
		db:   db,
	}
}

func (c *UpdateStayCommand) Execute() error {
	return c.db.Save(c.stay).Error
}

// DeleteStayCommand command để xóa stay
type DeleteStayCommand struct {
	stayID uint
	db     *gorm.DB
}

func NewDeleteStayCommand(stayID uint, db *gorm.DB) *DeleteStayCommand {
	return &DeleteStayCommand{
		stayID: stayID,
		db:     db,
	}
}

func (c *DeleteStayCommand) Execute() error {
	return c.db.Delete(&models.Stay{}, c.stayID).Error
}
