package service

import (
	"errors"
	"fmt"

	"go-tursina-admin/internal/model"
	"go-tursina-admin/internal/repository"
	"go-tursina-admin/pkg/validator"
)

var (
	ErrEmailExists = errors.New("email already exists")
)

// DefaultPassword is assigned server-side when a user is created
// without one; it is never read back through the API.
const DefaultPassword = "tursina123"

type UserService interface {
	CreateUser(req *CreateUserRequest, creator string) (*model.User, error)
	UpdateUser(userID uint, req *UpdateUserRequest, updater string) (*model.User, error)
	UpdateStatus(userID uint, status, updater string) (*model.User, error)
	DeleteUser(userID uint) error
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uint) (*model.UserResponse, error)
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"` // Optional, default assigned server-side
	Role     string `json:"role" validate:"required,oneof=Admin Superadmin Membership"`
	Status   string `json:"status" validate:"required,oneof=active inactive"`
}

type UpdateUserRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"` // Optional
	Role     string  `json:"role" validate:"required,oneof=Admin Superadmin Membership"`
	Status   string  `json:"status" validate:"required,oneof=active inactive"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(req *CreateUserRequest, creator string) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	existing, _ := s.userRepo.FindByEmail(req.Email)
	if existing != nil {
		return nil, ErrEmailExists
	}

	user := &model.User{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Status: req.Status,
	}
	user.CreatedBy = creator
	user.UpdatedBy = creator

	password := req.Password
	if password == "" {
		password = DefaultPassword
	}
	if err := user.SetPassword(password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) UpdateUser(userID uint, req *UpdateUserRequest, updater string) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// Email change must not collide with another account
	if req.Email != user.Email {
		existing, _ := s.userRepo.FindByEmail(req.Email)
		if existing != nil {
			return nil, ErrEmailExists
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Role = req.Role
	user.Status = req.Status
	user.UpdatedBy = updater

	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, errors.New("failed to hash password")
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) UpdateStatus(userID uint, status, updater string) (*model.User, error) {
	if status != model.StatusActive && status != model.StatusInactive {
		return nil, errors.New("status must be 'active' or 'inactive'")
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user.Status = status
	user.UpdatedBy = updater
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(userID uint) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return ErrUserNotFound
	}
	return s.userRepo.Delete(userID)
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uint) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	response := user.ToResponse()
	return &response, nil
}
