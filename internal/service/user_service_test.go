package service_test

import (
	"testing"

	"go-tursina-admin/internal/model"
	"go-tursina-admin/internal/repository"
	"go-tursina-admin/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser_AssignsDefaultPassword(t *testing.T) {
	db := setupUserDB(t)
	svc := service.NewUserService(repository.NewUserRepo(db))

	user, err := svc.CreateUser(&service.CreateUserRequest{
		Name:   "Kasir Satu",
		Email:  "kasir@tursina.id",
		Role:   model.RoleMembership,
		Status: model.StatusActive,
	}, "superadmin")

	require.NoError(t, err)
	assert.True(t, user.CheckPassword(service.DefaultPassword))
	assert.Equal(t, "superadmin", user.CreatedBy)
}

func TestCreateUser_ExplicitPasswordWins(t *testing.T) {
	db := setupUserDB(t)
	svc := service.NewUserService(repository.NewUserRepo(db))

	user, err := svc.CreateUser(&service.CreateUserRequest{
		Name:     "Kasir Dua",
		Email:    "kasir2@tursina.id",
		Password: "pilihan-sendiri",
		Role:     model.RoleAdmin,
		Status:   model.StatusActive,
	}, "superadmin")

	require.NoError(t, err)
	assert.True(t, user.CheckPassword("pilihan-sendiri"))
	assert.False(t, user.CheckPassword(service.DefaultPassword))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db := setupUserDB(t)
	seedUser(t, db, "kasir@tursina.id", "rahasia123", model.StatusActive)
	svc := service.NewUserService(repository.NewUserRepo(db))

	_, err := svc.CreateUser(&service.CreateUserRequest{
		Name:   "Kasir Baru",
		Email:  "kasir@tursina.id",
		Role:   model.RoleAdmin,
		Status: model.StatusActive,
	}, "superadmin")

	assert.ErrorIs(t, err, service.ErrEmailExists)
}

func TestCreateUser_InvalidRole(t *testing.T) {
	db := setupUserDB(t)
	svc := service.NewUserService(repository.NewUserRepo(db))

	_, err := svc.CreateUser(&service.CreateUserRequest{
		Name:   "Kasir",
		Email:  "kasir@tursina.id",
		Role:   "Manager",
		Status: model.StatusActive,
	}, "superadmin")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "oneof")
}

func TestUpdateUser_EmailCollision(t *testing.T) {
	db := setupUserDB(t)
	seedUser(t, db, "a@tursina.id", "rahasia123", model.StatusActive)
	target := seedUser(t, db, "b@tursina.id", "rahasia123", model.StatusActive)
	svc := service.NewUserService(repository.NewUserRepo(db))

	_, err := svc.UpdateUser(target.ID, &service.UpdateUserRequest{
		Name:   target.Name,
		Email:  "a@tursina.id",
		Role:   target.Role,
		Status: target.Status,
	}, "superadmin")

	assert.ErrorIs(t, err, service.ErrEmailExists)
}

func TestUpdateUser_OptionalPassword(t *testing.T) {
	db := setupUserDB(t)
	user := seedUser(t, db, "kasir@tursina.id", "rahasia123", model.StatusActive)
	svc := service.NewUserService(repository.NewUserRepo(db))

	updated, err := svc.UpdateUser(user.ID, &service.UpdateUserRequest{
		Name:   "Nama Baru",
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
	}, "superadmin")

	require.NoError(t, err)
	assert.Equal(t, "Nama Baru", updated.Name)
	// No password in the payload: the old one still works
	assert.True(t, updated.CheckPassword("rahasia123"))

	newPassword := "rahasia456"
	updated, err = svc.UpdateUser(user.ID, &service.UpdateUserRequest{
		Name:     "Nama Baru",
		Email:    user.Email,
		Password: &newPassword,
		Role:     user.Role,
		Status:   user.Status,
	}, "superadmin")

	require.NoError(t, err)
	assert.True(t, updated.CheckPassword("rahasia456"))
}

func TestUpdateStatus_TogglesAndValidates(t *testing.T) {
	db := setupUserDB(t)
	user := seedUser(t, db, "kasir@tursina.id", "rahasia123", model.StatusActive)
	svc := service.NewUserService(repository.NewUserRepo(db))

	updated, err := svc.UpdateStatus(user.ID, model.StatusInactive, "superadmin")
	require.NoError(t, err)
	assert.Equal(t, model.StatusInactive, updated.Status)

	_, err = svc.UpdateStatus(user.ID, "banned", "superadmin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "active")
}

func TestDeleteUser_UnknownUser(t *testing.T) {
	db := setupUserDB(t)
	svc := service.NewUserService(repository.NewUserRepo(db))

	err := svc.DeleteUser(42)

	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestGetAllUsers_OmitsSensitiveFields(t *testing.T) {
	db := setupUserDB(t)
	seedUser(t, db, "kasir@tursina.id", "rahasia123", model.StatusActive)
	svc := service.NewUserService(repository.NewUserRepo(db))

	users, err := svc.GetAllUsers()

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "kasir@tursina.id", users[0].Email)
}
