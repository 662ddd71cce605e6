package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/immerseindia/backend/domain"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) Upsert(ctx context.Context, user *domain.User) error {
	r.byEmail[user.Email] = user
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *fakeSessionRepo) Get(ctx context.Context, id string) (*domain.Session, error) {
	if s, ok := r.sessions[id]; ok {
		return s, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (r *fakeSessionRepo) Save(ctx context.Context, session *domain.Session) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

func testUseCase(t *testing.T) (*UseCase, *fakeSessionRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	users := &fakeUserRepo{byEmail: map[string]*domain.User{
		"admin@immerse.in": {
			ID:           "u-admin",
			Email:        "admin@immerse.in",
			Role:         domain.RoleAdmin,
			PasswordHash: string(hash),
		},
	}}
	sessions := newFakeSessionRepo()
	uc := New(users, sessions, Config{
		Secret:     "test-secret",
		Issuer:     "immerse-india",
		SessionTTL: time.Hour,
	}, nil)
	return uc, sessions
}

func TestLoginIssuesTokenAndSession(t *testing.T) {
	uc, sessions := testUseCase(t)

	user, token, err := uc.Login(context.Background(), "admin@immerse.in", "secret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("role = %q", user.Role)
	}
	if len(sessions.sessions) != 1 {
		t.Fatalf("expected one cached session, got %d", len(sessions.sessions))
	}

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["user_id"] != "u-admin" || claims["role"] != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims["session_id"] == "" {
		t.Fatal("token must reference the cached session")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _ := testUseCase(t)

	_, _, err := uc.Login(context.Background(), "admin@immerse.in", "wrong")
	if !domain.IsDomainError(err, domain.ErrCodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	uc, _ := testUseCase(t)

	// Unknown email reads the same as a bad password.
	_, _, err := uc.Login(context.Background(), "ghost@immerse.in", "whatever")
	if !domain.IsDomainError(err, domain.ErrCodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestGetSessionExpiresStaleEntries(t *testing.T) {
	uc, sessions := testUseCase(t)

	sessions.sessions["stale"] = &domain.Session{
		ID:        "stale",
		UserID:    "u-admin",
		Role:      domain.RoleAdmin,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	if _, err := uc.GetSession(context.Background(), "stale"); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("expired session should read as not found, got %v", err)
	}
	if _, ok := sessions.sessions["stale"]; ok {
		t.Fatal("expired session should be deleted on read")
	}
}

func TestLogoutIsTerminal(t *testing.T) {
	uc, sessions := testUseCase(t)

	if _, _, err := uc.Login(context.Background(), "admin@immerse.in", "secret-pass"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	var sessionID string
	for id := range sessions.sessions {
		sessionID = id
	}

	if err := uc.Logout(context.Background(), sessionID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := uc.GetSession(context.Background(), sessionID); err == nil {
		t.Fatal("session must not resolve after logout")
	}
}
