package model

// Member represents a loyalty-program member.
//
// Invariant maintained by the service layer inside a DB transaction:
// Points = TotalPointsEarned - TotalPointsRedeemed, all three >= 0.
// The outlet name is denormalized next to OutletID at write time, the
// way the public site expects it.
type Member struct {
	BaseModel
	MemberCode          string `gorm:"type:varchar(20);uniqueIndex;not null" json:"member_code"`
	Name                string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Address             string `gorm:"type:text" json:"address" validate:"required"`
	NoWA                string `gorm:"column:no_wa;type:varchar(20);not null" json:"no_wa" validate:"required"`
	Outlet              string `gorm:"type:varchar(255)" json:"outlet"`
	OutletID            uint   `gorm:"not null;index" json:"outlet_id" validate:"required"`
	Points              int    `gorm:"default:0" json:"points"`
	TotalPointsEarned   int    `gorm:"default:0" json:"total_points_earned"`
	TotalPointsRedeemed int    `gorm:"default:0" json:"total_points_redeemed"`
}

func (Member) TableName() string {
	return "members"
}
