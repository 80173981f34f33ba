package model

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Menu struct {
	BaseModel
	MenuName string `gorm:"type:varchar(255);not null" json:"menu_name" validate:"required"`
	Image    string `gorm:"type:varchar(255)" json:"image"`
	Details  string `gorm:"type:text" json:"details" validate:"required"`
	Price    int64  `gorm:"not null" json:"price" validate:"required,gt=0"` // Rupiah, harus > 0
	Category string `gorm:"type:varchar(100);not null" json:"category" validate:"required"`
	Status   string `gorm:"type:varchar(10);default:'active'" json:"status" validate:"required,oneof=active inactive"`
}

func (Menu) TableName() string {
	return "menus"
}
