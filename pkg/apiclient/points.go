package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidAmount: earn/redeem amounts must be positive integers.
	ErrInvalidAmount = errors.New("point amount must be a positive integer")
	// ErrInsufficientPoints: the redeem guard refuses to issue a
	// request that would overdraw the balance.
	ErrInsufficientPoints = errors.New("insufficient points balance")
)

// Members wraps the member resource with the points sub-ledger. The
// server's counters are authoritative; this side only sends deltas and
// previews.
type Members struct {
	*Resource[Member]
}

func NewMembers(c *Client) *Members {
	return &Members{Resource: NewResource[Member](c, "member", ValidateMemberForm)}
}

func (m *Members) pointsPath(id uint, action string) string {
	return fmt.Sprintf("members/%d/%s", id, action)
}

// AddPoints credits a member and refetches the list.
func (m *Members) AddPoints(member Member, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	_, err := m.client.sendJSON(http.MethodPost, m.pointsPath(member.ID, "add-points"), map[string]int{
		"points": amount,
	})
	if err != nil {
		return err
	}
	return m.Fetch()
}

// RedeemPoints debits a member. Blocked locally, with no request
// issued, when the balance is zero or the amount overdraws it.
func (m *Members) RedeemPoints(member Member, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if member.Points == 0 || amount > member.Points {
		return ErrInsufficientPoints
	}
	_, err := m.client.sendJSON(http.MethodPost, m.pointsPath(member.ID, "redeem-points"), map[string]int{
		"points": amount,
	})
	if err != nil {
		return err
	}
	return m.Fetch()
}

// ResetPoints zeroes a member's balance and totals.
func (m *Members) ResetPoints(member Member) error {
	_, err := m.client.sendJSON(http.MethodPost, m.pointsPath(member.ID, "reset-points"), nil)
	if err != nil {
		return err
	}
	return m.Fetch()
}

// PointsHistory returns the ledger, newest first.
func (m *Members) PointsHistory(id uint) ([]PointTransaction, error) {
	data, err := m.client.getJSON(m.pointsPath(id, "points-history"))
	if err != nil {
		return nil, err
	}
	var history []PointTransaction
	if uerr := unmarshalData(data, &history); uerr != nil {
		return nil, uerr
	}
	return history, nil
}

// PreviewBalance computes the display-only post-transaction balance.
// The authoritative value always comes from the next fetch.
func PreviewBalance(member Member, amount int, redeem bool) int {
	if redeem {
		return member.Points - amount
	}
	return member.Points + amount
}
