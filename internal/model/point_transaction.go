package model

import "time"

type PointTransactionType string

const (
	PointEarn   PointTransactionType = "earn"
	PointRedeem PointTransactionType = "redeem"
	PointReset  PointTransactionType = "reset"
)

// PointTransaction is one row of the member points ledger. BalanceAfter
// is the snapshot written in the same DB transaction as the counters.
type PointTransaction struct {
	ID           uint                 `gorm:"primaryKey" json:"id"`
	MemberID     uint                 `gorm:"not null;index" json:"member_id"`
	Member       *Member              `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Type         PointTransactionType `gorm:"type:varchar(10);not null" json:"type"`
	Amount       int                  `gorm:"not null" json:"amount"`
	BalanceAfter int                  `gorm:"not null" json:"balance_after"`
	Note         string               `gorm:"type:text" json:"note,omitempty"`
	CreatedBy    string               `json:"created_by,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

func (PointTransaction) TableName() string {
	return "point_transactions"
}
