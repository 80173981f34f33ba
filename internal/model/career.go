package model

type Career struct {
	BaseModel
	Image       string `gorm:"type:varchar(255)" json:"image"`
	Description string `gorm:"type:text;not null" json:"description" validate:"required"`
}

func (Career) TableName() string {
	return "careers"
}
