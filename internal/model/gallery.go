package model

// Gallery categories shown on the public site
const (
	GalleryTeam     = "Galeri Tim"
	GalleryCustomer = "Galeri Customer"
)

type Gallery struct {
	BaseModel
	Category    string `gorm:"type:varchar(50);not null" json:"category" validate:"required,oneof='Galeri Tim' 'Galeri Customer'"`
	Image       string `gorm:"type:varchar(255)" json:"image"`
	Description string `gorm:"type:text" json:"description" validate:"required"`
}

func (Gallery) TableName() string {
	return "galleries"
}
