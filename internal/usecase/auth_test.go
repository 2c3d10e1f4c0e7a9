//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"recarma/internal/domain/user"
	"recarma/internal/infra"
	"recarma/internal/pkg/jwt"
	"recarma/internal/pkg/password"
	"recarma/internal/usecase"
	"recarma/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]*storedUser
	byID    map[uuid.UUID]*storedUser
}

type storedUser struct {
	view *queries.AuthorizedUserView
	hash string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*storedUser),
		byID:    make(map[uuid.UUID]*storedUser),
	}
}

func (f *fakeUserRepo) add(name, email, rawPassword, role string, isActive bool) *queries.AuthorizedUserView {
	hash, err := password.HashPassword(rawPassword)
	if err != nil {
		panic(err)
	}
	view := &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Role:     role,
		IsActive: isActive,
	}
	stored := &storedUser{view: view, hash: hash}
	f.byEmail[email] = stored
	f.byID[view.ID] = stored
	return view
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	if _, exists := f.byEmail[u.Email().Value()]; exists {
		return infra.WrapRepoErr("email taken", nil, infra.KindDuplicateKey)
	}
	view := &queries.AuthorizedUserView{
		ID:       u.ID(),
		Name:     u.Name().Value(),
		Email:    u.Email().Value(),
		Role:     u.Role().String(),
		IsActive: u.IsActive(),
	}
	stored := &storedUser{view: view, hash: u.PasswordHash()}
	f.byEmail[view.Email] = stored
	f.byID[view.ID] = stored
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	stored, ok := f.byEmail[email.Value()]
	if !ok {
		return nil, "", infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return stored.view, stored.hash, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	stored, ok := f.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return stored.view, nil
}

func newAuthUseCase(repo *fakeUserRepo) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(repo, jwt.NewService("test-secret-key-for-unit-tests", time.Hour))
}

func TestRegister(t *testing.T) {
	params := usecase.RegisterParams{
		Name:     "Priya Sharma",
		Email:    "priya@example.com",
		Password: "s3curePass",
		Role:     "OWNER",
	}

	t.Run("success: session issued immediately", func(t *testing.T) {
		repo := newFakeUserRepo()
		result, err := newAuthUseCase(repo).Register(context.Background(), params)
		require.NoError(t, err)

		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, "priya@example.com", result.User.Email)
		assert.Equal(t, "OWNER", result.User.Role)
		assert.True(t, result.User.IsActive)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.add("Priya Sharma", "priya@example.com", "s3curePass", "OWNER", true)

		_, err := newAuthUseCase(repo).Register(context.Background(), params)
		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyRegistered)
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(p *usecase.RegisterParams)
			errIs  error
		}{
			{
				name:   "blank name",
				mutate: func(p *usecase.RegisterParams) { p.Name = "  " },
				errIs:  user.ErrEmptyName,
			},
			{
				name:   "bad email",
				mutate: func(p *usecase.RegisterParams) { p.Email = "not-an-email" },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "weak password",
				mutate: func(p *usecase.RegisterParams) { p.Password = "short" },
				errIs:  user.ErrPasswordTooWeak,
			},
			{
				name:   "unknown role",
				mutate: func(p *usecase.RegisterParams) { p.Role = "SUPERVISOR" },
				errIs:  user.ErrInvalidRole,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				p := params
				tc.mutate(&p)
				_, err := newAuthUseCase(newFakeUserRepo()).Register(context.Background(), p)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestLogin(t *testing.T) {
	credentials := func(t *testing.T, email, pass string) user.Credentials {
		t.Helper()
		c, err := user.NewCredentials(email, pass)
		require.NoError(t, err)
		return c
	}

	t.Run("success", func(t *testing.T) {
		repo := newFakeUserRepo()
		registered := repo.add("Priya Sharma", "priya@example.com", "s3curePass", "OWNER", true)

		result, err := newAuthUseCase(repo).Login(context.Background(), credentials(t, "priya@example.com", "s3curePass"))
		require.NoError(t, err)

		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, registered.ID, result.User.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := newAuthUseCase(newFakeUserRepo()).Login(context.Background(), credentials(t, "nobody@example.com", "s3curePass"))
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.add("Priya Sharma", "priya@example.com", "s3curePass", "OWNER", true)

		_, err := newAuthUseCase(repo).Login(context.Background(), credentials(t, "priya@example.com", "wrongPass1"))
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.add("Priya Sharma", "priya@example.com", "s3curePass", "OWNER", false)

		_, err := newAuthUseCase(repo).Login(context.Background(), credentials(t, "priya@example.com", "s3curePass"))
		assert.ErrorIs(t, err, usecase.ErrUserInactive)
	})
}

func TestValidateToken(t *testing.T) {
	t.Run("round trip preserves identity and role", func(t *testing.T) {
		repo := newFakeUserRepo()
		registered := repo.add("Raj Motors", "dealer@example.com", "s3curePass", "DEALER", true)
		auth := newAuthUseCase(repo)

		c, err := user.NewCredentials("dealer@example.com", "s3curePass")
		require.NoError(t, err)
		result, err := auth.Login(context.Background(), c)
		require.NoError(t, err)

		userID, role, err := auth.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, userID)
		assert.Equal(t, user.RoleDealer, role)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		auth := newAuthUseCase(newFakeUserRepo())
		_, _, err := auth.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, usecase.ErrTokenValidation)
	})

	t.Run("token signed with a different key rejected", func(t *testing.T) {
		other := jwt.NewService("some-other-secret-entirely", time.Hour)
		token, err := other.GenerateToken(uuid.New(), user.RoleOwner)
		require.NoError(t, err)

		auth := newAuthUseCase(newFakeUserRepo())
		_, _, err = auth.ValidateToken(token)
		assert.ErrorIs(t, err, usecase.ErrTokenValidation)
	})
}

func TestGetCurrentUser(t *testing.T) {
	repo := newFakeUserRepo()
	registered := repo.add("Priya Sharma", "priya@example.com", "s3curePass", "OWNER", true)
	auth := newAuthUseCase(repo)

	t.Run("success", func(t *testing.T) {
		view, err := auth.GetCurrentUser(context.Background(), registered.ID)
		require.NoError(t, err)
		assert.Equal(t, "priya@example.com", view.Email)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := auth.GetCurrentUser(context.Background(), uuid.New())
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
