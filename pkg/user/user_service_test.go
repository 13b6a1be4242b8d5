package user

import (
	"context"
	"sync"
	"testing"
	"time"

	"rhea-backend/domain"
	"rhea-backend/entities"
	"rhea-backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*entities.User{}}
}

func (f *fakeUserRepository) RegisterUser(_ context.Context, user *entities.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) CheckEmailExists(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.users[email]
	return ok, nil
}

type fakeMailer struct {
	sent chan string
}

func (m *fakeMailer) SendMail(string, string, string) error {
	return nil
}

func (m *fakeMailer) SendWelcome(toEmail string, _ string) error {
	m.sent <- toEmail
	return nil
}

func TestRegisterLoginMe(t *testing.T) {
	repo := newFakeUserRepository()
	mailer := &fakeMailer{sent: make(chan string, 1)}
	jwtService := jwt.NewJWTServiceWithSecret("secret")
	svc := NewUserService(repo, jwtService, mailer)
	ctx := context.Background()

	registered, err := svc.Register(ctx, domain.RegisterRequest{Name: "Ana", Email: " Ana@Example.com ", Password: "hunter2hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", registered.Email)
	assert.NotEqual(t, "hunter2hunter2", repo.users["ana@example.com"].Password)

	select {
	case to := <-mailer.sent:
		assert.Equal(t, "ana@example.com", to)
	case <-time.After(time.Second):
		t.Fatal("welcome mail not sent")
	}

	_, err = svc.Register(ctx, domain.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "another-password"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	login, err := svc.Login(ctx, domain.LoginRequest{Email: "ana@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)
	userID, role, err := jwtService.GetUserIDByToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, domain.RoleUser, role)

	me, err := svc.Me(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", me.Name)

	_, err = svc.Me(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
