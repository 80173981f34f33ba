package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-tursina-admin/internal/model"
	"go-tursina-admin/internal/repository"
	"go-tursina-admin/internal/ws"
	"go-tursina-admin/pkg/validator"
)

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrOutletNotFound     = errors.New("outlet not found")
	ErrInvalidPointAmount = errors.New("point amount must be a positive integer")
	ErrInsufficientPoints = errors.New("insufficient points balance")
)

type MemberService interface {
	CreateMember(req *MemberRequest, creator string) (*model.Member, error)
	UpdateMember(id uint, req *MemberRequest, updater string) (*model.Member, error)
	DeleteMember(id uint) error
	GetAllMembers() ([]model.Member, error)
	GetMemberByID(id uint) (*model.Member, error)
	AddPoints(id uint, amount int, note, actor string) (*model.Member, error)
	RedeemPoints(id uint, amount int, note, actor string) (*model.Member, error)
	ResetPoints(id uint, actor string) (*model.Member, error)
	PointsHistory(id uint) ([]model.PointTransaction, error)
}

// MemberRequest carries the full member payload: the panel always sends
// every field on update, not a partial patch.
type MemberRequest struct {
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address" validate:"required"`
	NoWA     string `json:"no_wa" validate:"required"`
	OutletID uint   `json:"outlet_id" validate:"required"`
}

type memberService struct {
	memberRepo repository.MemberRepository
	db         *gorm.DB
	hub        *ws.Hub
}

func NewMemberService(memberRepo repository.MemberRepository, db *gorm.DB, hub *ws.Hub) MemberService {
	return &memberService{
		memberRepo: memberRepo,
		db:         db,
		hub:        hub,
	}
}

// resolveOutlet returns the outlet name that gets denormalized onto the
// member row at write time.
func (s *memberService) resolveOutlet(outletID uint) (string, error) {
	var outlet model.Outlet
	if err := s.db.First(&outlet, "id = ?", outletID).Error; err != nil {
		return "", ErrOutletNotFound
	}
	return outlet.Location, nil
}

// newMemberCode generates a server-assigned membership code.
func (s *memberService) newMemberCode() string {
	for {
		code := "TSN-" + strings.ToUpper(uuid.New().String()[:8])
		if _, err := s.memberRepo.FindByCode(code); err != nil {
			return code
		}
	}
}

func (s *memberService) CreateMember(req *MemberRequest, creator string) (*model.Member, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	outletName, err := s.resolveOutlet(req.OutletID)
	if err != nil {
		return nil, err
	}

	member := &model.Member{
		MemberCode: s.newMemberCode(),
		Name:       req.Name,
		Address:    req.Address,
		NoWA:       req.NoWA,
		Outlet:     outletName,
		OutletID:   req.OutletID,
	}
	member.CreatedBy = creator
	member.UpdatedBy = creator

	if err := s.memberRepo.Create(member); err != nil {
		return nil, err
	}

	s.hub.NotifyResource("member", "created", member.ID)
	return member, nil
}

func (s *memberService) UpdateMember(id uint, req *MemberRequest, updater string) (*model.Member, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	member, err := s.memberRepo.FindByID(id)
	if err != nil {
		return nil, ErrMemberNotFound
	}

	outletName, err := s.resolveOutlet(req.OutletID)
	if err != nil {
		return nil, err
	}

	// Full-payload update: points counters are untouched here, only the
	// dedicated endpoints mutate the ledger.
	member.Name = req.Name
	member.Address = req.Address
	member.NoWA = req.NoWA
	member.OutletID = req.OutletID
	member.Outlet = outletName
	member.UpdatedBy = updater

	if err := s.memberRepo.Update(member); err != nil {
		return nil, err
	}

	s.hub.NotifyResource("member", "updated", member.ID)
	return member, nil
}

func (s *memberService) DeleteMember(id uint) error {
	if _, err := s.memberRepo.FindByID(id); err != nil {
		return ErrMemberNotFound
	}
	if err := s.memberRepo.Delete(id); err != nil {
		return err
	}
	s.hub.NotifyResource("member", "deleted", id)
	return nil
}

func (s *memberService) GetAllMembers() ([]model.Member, error) {
	return s.memberRepo.FindAll()
}

func (s *memberService) GetMemberByID(id uint) (*model.Member, error) {
	member, err := s.memberRepo.FindByID(id)
	if err != nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// AddPoints credits the member and writes the ledger row in one DB
// transaction. points = total_points_earned - total_points_redeemed
// holds at every commit point.
func (s *memberService) AddPoints(id uint, amount int, note, actor string) (*model.Member, error) {
	if amount <= 0 {
		return nil, ErrInvalidPointAmount
	}

	var updated *model.Member
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var member model.Member
		if err := tx.First(&member, "id = ?", id).Error; err != nil {
			return ErrMemberNotFound
		}

		member.Points += amount
		member.TotalPointsEarned += amount
		member.UpdatedBy = actor
		if err := tx.Save(&member).Error; err != nil {
			return err
		}

		ledger := model.PointTransaction{
			MemberID:     member.ID,
			Type:         model.PointEarn,
			Amount:       amount,
			BalanceAfter: member.Points,
			Note:         note,
			CreatedBy:    actor,
		}
		if err := tx.Create(&ledger).Error; err != nil {
			return err
		}

		updated = &member
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcastPoints(updated, actor)
	return updated, nil
}

// RedeemPoints debits the member. A redeem above the available balance
// is rejected before anything is written.
func (s *memberService) RedeemPoints(id uint, amount int, note, actor string) (*model.Member, error) {
	if amount <= 0 {
		return nil, ErrInvalidPointAmount
	}

	var updated *model.Member
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var member model.Member
		if err := tx.First(&member, "id = ?", id).Error; err != nil {
			return ErrMemberNotFound
		}

		if amount > member.Points {
			return ErrInsufficientPoints
		}

		member.Points -= amount
		member.TotalPointsRedeemed += amount
		member.UpdatedBy = actor
		if err := tx.Save(&member).Error; err != nil {
			return err
		}

		ledger := model.PointTransaction{
			MemberID:     member.ID,
			Type:         model.PointRedeem,
			Amount:       amount,
			BalanceAfter: member.Points,
			Note:         note,
			CreatedBy:    actor,
		}
		if err := tx.Create(&ledger).Error; err != nil {
			return err
		}

		updated = &member
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcastPoints(updated, actor)
	return updated, nil
}

// ResetPoints zeroes the balance and the running totals.
func (s *memberService) ResetPoints(id uint, actor string) (*model.Member, error) {
	var updated *model.Member
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var member model.Member
		if err := tx.First(&member, "id = ?", id).Error; err != nil {
			return ErrMemberNotFound
		}

		cleared := member.Points
		member.Points = 0
		member.TotalPointsEarned = 0
		member.TotalPointsRedeemed = 0
		member.UpdatedBy = actor
		if err := tx.Save(&member).Error; err != nil {
			return err
		}

		ledger := model.PointTransaction{
			MemberID:     member.ID,
			Type:         model.PointReset,
			Amount:       cleared,
			BalanceAfter: 0,
			CreatedBy:    actor,
		}
		if err := tx.Create(&ledger).Error; err != nil {
			return err
		}

		updated = &member
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcastPoints(updated, actor)
	return updated, nil
}

func (s *memberService) PointsHistory(id uint) ([]model.PointTransaction, error) {
	if _, err := s.memberRepo.FindByID(id); err != nil {
		return nil, ErrMemberNotFound
	}
	return s.memberRepo.History(id)
}

func (s *memberService) broadcastPoints(member *model.Member, actor string) {
	if s.hub == nil || member == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":      "points_update",
			"member_id": member.ID,
			"points":    member.Points,
			"actor":     actor,
		}
		msg, _ := json.Marshal(payload)
		s.hub.Broadcast <- msg
	}()
}
