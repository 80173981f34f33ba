package model

type Promo struct {
	BaseModel
	PromoName string `gorm:"type:varchar(255);not null" json:"promo_name" validate:"required"`
	Image     string `gorm:"type:varchar(255)" json:"image"`
	Status    string `gorm:"type:varchar(10);default:'active'" json:"status" validate:"required,oneof=active inactive"`
}

func (Promo) TableName() string {
	return "promos"
}
