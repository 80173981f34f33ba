package repository

import (
	"go-tursina-admin/internal/model"

	"gorm.io/gorm"
)

type MemberRepository interface {
	FindAll() ([]model.Member, error)
	FindByID(id uint) (*model.Member, error)
	FindByCode(code string) (*model.Member, error)
	Create(member *model.Member) error
	Update(member *model.Member) error
	Delete(id uint) error
	History(memberID uint) ([]model.PointTransaction, error)
}

type memberRepo struct {
	db *gorm.DB
}

func NewMemberRepo(db *gorm.DB) MemberRepository {
	return &memberRepo{db}
}

func (r *memberRepo) FindAll() ([]model.Member, error) {
	var members []model.Member
	if err := r.db.Order("id").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepo) FindByID(id uint) (*model.Member, error) {
	var member model.Member
	if err := r.db.First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepo) FindByCode(code string) (*model.Member, error) {
	var member model.Member
	if err := r.db.First(&member, "member_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepo) Create(member *model.Member) error {
	return r.db.Create(member).Error
}

func (r *memberRepo) Update(member *model.Member) error {
	return r.db.Save(member).Error
}

func (r *memberRepo) Delete(id uint) error {
	return r.db.Delete(&model.Member{}, "id = ?", id).Error
}

// History returns the point ledger newest-first.
func (r *memberRepo) History(memberID uint) ([]model.PointTransaction, error) {
	var txs []model.PointTransaction
	if err := r.db.Where("member_id = ?", memberID).Order("id DESC").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}
