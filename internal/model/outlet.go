package model

type Outlet struct {
	BaseModel
	Location string `gorm:"type:varchar(255);not null" json:"location" validate:"required"`
	Link     string `gorm:"type:text" json:"link" validate:"required"` // External map URL
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

func (Outlet) TableName() string {
	return "outlets"
}
