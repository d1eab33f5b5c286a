package services_test

import (
	"testing"

	"wardrobe/internal/models"
	"wardrobe/internal/repositories"
	"wardrobe/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newUserFixture registers one account against an in-memory repository
// and returns the profile service for it.
func newUserFixture(t *testing.T) (*services.UserService, *models.User) {
	t.Helper()

	repo := repositories.NewMockUserRepository()
	authService := services.NewAuthService(repo, nil, testJWTSecret, 60)
	user, err := authService.Register(services.RegisterInput{
		Username:  "wardrobefan",
		Password:  "password123",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)
	return services.NewUserService(repo), user
}

func TestUserService_Get(t *testing.T) {
	service, user := newUserFixture(t)

	fetched, err := service.Get(user.Username)
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)
	assert.Equal(t, models.RoleUser, fetched.Role)

	_, err = service.Get("nobody12345")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = service.Get("")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestUserService_UpdateMergesSetFields(t *testing.T) {
	service, user := newUserFixture(t)

	updated, err := service.Update(user.Username, models.UserPatch{
		FirstName: models.NewField("Grace"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Grace", updated.FirstName)
	// Unset fields are retained.
	assert.Equal(t, "Lovelace", updated.LastName)
	assert.Equal(t, "ada@example.com", updated.Email)
	assert.Equal(t, user.ID, updated.ID)
	assert.Equal(t, models.RoleUser, updated.Role)
}

func TestUserService_UpdateRehashesPassword(t *testing.T) {
	service, user := newUserFixture(t)

	updated, err := service.Update(user.Username, models.UserPatch{
		Password: models.NewField("newpassword"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, "newpassword", updated.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpassword")))
}

func TestUserService_UpdateShortPassword(t *testing.T) {
	service, user := newUserFixture(t)

	_, err := service.Update(user.Username, models.UserPatch{
		Password: models.NewField("1234567"),
	})
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "password", ve.Violations[0].Field)
}

func TestUserService_UpdateValidatesMergedRecord(t *testing.T) {
	service, user := newUserFixture(t)

	_, err := service.Update(user.Username, models.UserPatch{
		Email: models.NewField("not-an-email"),
	})
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Violations[0].Field)

	// The stored record is unchanged after the failed update.
	stored, err := service.Get(user.Username)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", stored.Email)
}

func TestUserService_UpdateSelfExcludedUniqueness(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	authService := services.NewAuthService(repo, nil, testJWTSecret, 60)
	service := services.NewUserService(repo)

	first, err := authService.Register(services.RegisterInput{
		Username:  "wardrobefan",
		Password:  "password123",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)
	_, err = authService.Register(services.RegisterInput{
		Username:  "othername",
		Password:  "password123",
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
	})
	require.NoError(t, err)

	// Re-submitting the own username passes.
	_, err = service.Update(first.Username, models.UserPatch{
		Username: models.NewField("wardrobefan"),
	})
	assert.NoError(t, err)

	// Taking the other account's email conflicts.
	_, err = service.Update(first.Username, models.UserPatch{
		Email: models.NewField("grace@example.com"),
	})
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestUserService_Delete(t *testing.T) {
	service, user := newUserFixture(t)

	require.NoError(t, service.Delete(user.Username))
	_, err := service.Get(user.Username)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, service.Delete(user.Username), models.ErrNotFound)
}
