package service_test

import (
	"testing"

	"go-tursina-admin/internal/model"
	"go-tursina-admin/internal/repository"
	"go-tursina-admin/internal/service"
	"go-tursina-admin/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupUserDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, password, status string) *model.User {
	t.Helper()
	user := &model.User{
		Name:   "Admin Tursina",
		Email:  email,
		Role:   model.RoleAdmin,
		Status: status,
	}
	require.NoError(t, user.SetPassword(password))
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestLogin_Success(t *testing.T) {
	db := setupUserDB(t)
	seedUser(t, db, "admin@tursina.id", "rahasia123", model.StatusActive)
	svc := service.NewAuthService(repository.NewUserRepo(db))

	resp, err := svc.Login("admin@tursina.id", "rahasia123")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@tursina.id", resp.User.Email)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)

	claims, err := jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.NotEmpty(t, claims.TokenVersion)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := setupUserDB(t)
	seedUser(t, db, "admin@tursina.id", "rahasia123", model.StatusActive)
	svc := service.NewAuthService(repository.NewUserRepo(db))

	_, err := svc.Login("admin@tursina.id", "salah")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	db := setupUserDB(t)
	svc := service.NewAuthService(repository.NewUserRepo(db))

	_, err := svc.Login("nobody@tursina.id", "rahasia123")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	db := setupUserDB(t)
	seedUser(t, db, "admin@tursina.id", "rahasia123", model.StatusInactive)
	svc := service.NewAuthService(repository.NewUserRepo(db))

	_, err := svc.Login("admin@tursina.id", "rahasia123")

	assert.ErrorIs(t, err, service.ErrUserInactive)
}

func TestLogin_RotatesTokenVersion(t *testing.T) {
	db := setupUserDB(t)
	user := seedUser(t, db, "admin@tursina.id", "rahasia123", model.StatusActive)
	svc := service.NewAuthService(repository.NewUserRepo(db))

	first, err := svc.Login("admin@tursina.id", "rahasia123")
	require.NoError(t, err)
	second, err := svc.Login("admin@tursina.id", "rahasia123")
	require.NoError(t, err)

	firstClaims, err := jwt.ValidateToken(first.Token)
	require.NoError(t, err)
	secondClaims, err := jwt.ValidateToken(second.Token)
	require.NoError(t, err)
	assert.NotEqual(t, firstClaims.TokenVersion, secondClaims.TokenVersion)

	// Only the latest version survives in the DB: the first session is dead
	var reloaded model.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, secondClaims.TokenVersion, reloaded.TokenVersion)
}

func TestLogout_InvalidatesStoredVersion(t *testing.T) {
	db := setupUserDB(t)
	user := seedUser(t, db, "admin@tursina.id", "rahasia123", model.StatusActive)
	svc := service.NewAuthService(repository.NewUserRepo(db))

	resp, err := svc.Login("admin@tursina.id", "rahasia123")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(user.ID))

	claims, err := jwt.ValidateToken(resp.Token)
	require.NoError(t, err)

	var reloaded model.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.NotEqual(t, claims.TokenVersion, reloaded.TokenVersion)
}

func TestChangePassword_Success(t *testing.T) {
	db := setupUserDB(t)
	user := seedUser(t, db, "admin@tursina.id", "rahasia123", model.StatusActive)
	svc := service.NewAuthService(repository.NewUserRepo(db))

	err := svc.ChangePassword(user.ID, "rahasia123", "rahasia456")

	require.NoError(t, err)
	var reloaded model.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.True(t, reloaded.CheckPassword("rahasia456"))
	assert.False(t, reloaded.CheckPassword("rahasia123"))
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	db := setupUserDB(t)
	user := seedUser(t, db, "admin@tursina.id", "rahasia123", model.StatusActive)
	svc := service.NewAuthService(repository.NewUserRepo(db))

	err := svc.ChangePassword(user.ID, "salah", "rahasia456")

	assert.ErrorIs(t, err, service.ErrWrongPassword)
}

func TestChangePassword_TooShort(t *testing.T) {
	db := setupUserDB(t)
	user := seedUser(t, db, "admin@tursina.id", "rahasia123", model.StatusActive)
	svc := service.NewAuthService(repository.NewUserRepo(db))

	err := svc.ChangePassword(user.ID, "rahasia123", "abc")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 6 characters")
}
