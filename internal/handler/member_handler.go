package handler

import (
	"errors"

	"go-tursina-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type MemberHandler struct {
	memberService service.MemberService
}

func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// PointsRequest is the body of the add/redeem endpoints; the client
// only ever sends deltas, never a target balance.
type PointsRequest struct {
	Points int    `json:"points"`
	Note   string `json:"note"`
}

func memberErrStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrMemberNotFound):
		return 404
	case errors.Is(err, service.ErrInsufficientPoints), errors.Is(err, service.ErrInvalidPointAmount):
		return 400
	default:
		return 400
	}
}

// GetMembers returns all members
// GET /api/member
func (h *MemberHandler) GetMembers(c *fiber.Ctx) error {
	members, err := h.memberService.GetAllMembers()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Failed to fetch members"})
	}
	return c.JSON(fiber.Map{"success": true, "data": members})
}

// CreateMember registers a new member with a server-assigned code
// POST /api/member
func (h *MemberHandler) CreateMember(c *fiber.Ctx) error {
	var req service.MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid JSON"})
	}

	member, err := h.memberService.CreateMember(&req, actor(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Member created successfully",
		"data":    member,
	})
}

// UpdateMember updates the full member payload
// PUT /api/member/:id
func (h *MemberHandler) UpdateMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid member ID"})
	}

	var req service.MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid JSON"})
	}

	member, err := h.memberService.UpdateMember(uint(id), &req, actor(c))
	if err != nil {
		return c.Status(memberErrStatus(err)).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Member updated successfully",
		"data":    member,
	})
}

// DeleteMember removes a member
// DELETE /api/member/:id
func (h *MemberHandler) DeleteMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid member ID"})
	}

	if err := h.memberService.DeleteMember(uint(id)); err != nil {
		return c.Status(memberErrStatus(err)).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Member deleted successfully"})
}

// AddPoints credits points to a member
// POST /api/members/:id/add-points
func (h *MemberHandler) AddPoints(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid member ID"})
	}

	var req PointsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid JSON"})
	}

	member, err := h.memberService.AddPoints(uint(id), req.Points, req.Note, actor(c))
	if err != nil {
		return c.Status(memberErrStatus(err)).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Points added successfully",
		"data":    member,
	})
}

// RedeemPoints debits points from a member
// POST /api/members/:id/redeem-points
func (h *MemberHandler) RedeemPoints(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid member ID"})
	}

	var req PointsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid JSON"})
	}

	member, err := h.memberService.RedeemPoints(uint(id), req.Points, req.Note, actor(c))
	if err != nil {
		return c.Status(memberErrStatus(err)).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Points redeemed successfully",
		"data":    member,
	})
}

// ResetPoints clears a member's balance and totals
// POST /api/members/:id/reset-points
func (h *MemberHandler) ResetPoints(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid member ID"})
	}

	member, err := h.memberService.ResetPoints(uint(id), actor(c))
	if err != nil {
		return c.Status(memberErrStatus(err)).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Points reset successfully",
		"data":    member,
	})
}

// PointsHistory returns the member's ledger, newest first
// GET /api/members/:id/points-history
func (h *MemberHandler) PointsHistory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid member ID"})
	}

	history, err := h.memberService.PointsHistory(uint(id))
	if err != nil {
		return c.Status(memberErrStatus(err)).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "data": history})
}
