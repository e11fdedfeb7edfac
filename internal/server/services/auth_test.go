package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"noteboard/internal/common"
	"noteboard/internal/server/auth"
	"noteboard/internal/server/config"
	"noteboard/internal/server/models"
	"noteboard/internal/server/repositories/accounts"
)

func newAuthService(t *testing.T, repo *fakeAccountsRepo) *AuthService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: 14 * 24 * time.Hour,
	}
	return NewAuthService(db, &fakeRepoManager{accounts: repo}, cfg)
}

func storedCredential(password string) *accounts.AccountCredential {
	salt := []byte("per-account-salt")
	return &accounts.AccountCredential{
		Account: models.Account{
			ID: "acc-1", Email: "alice@example.com",
			FirstName: "Alice", LastName: "Smith", Role: "admin",
		},
		SaltedHash: auth.DeriveVerifier([]byte(password), salt),
		Salt:       salt,
	}
}

func TestLogin_MissingParams(t *testing.T) {
	repo := &fakeAccountsRepo{}
	svc := newAuthService(t, repo)

	for _, tc := range []struct{ email, password string }{
		{"", "pw"},
		{"a@example.com", ""},
		{"", ""},
	} {
		_, err := svc.Login(context.Background(), tc.email, tc.password)
		if !errors.Is(err, common.ErrMissingParams) {
			t.Fatalf("(%q,%q): want common.ErrMissingParams, got %v", tc.email, tc.password, err)
		}
	}
	if repo.calls != 0 {
		t.Fatalf("store must not be touched on validation failure, got %d calls", repo.calls)
	}
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	unknown := newAuthService(t, &fakeAccountsRepo{getErr: common.ErrNotFound})
	_, errUnknown := unknown.Login(context.Background(), "ghost@example.com", "pw")

	wrongPw := newAuthService(t, &fakeAccountsRepo{getOut: storedCredential("right")})
	_, errWrong := wrongPw.Login(context.Background(), "alice@example.com", "wrong")

	if !errors.Is(errUnknown, common.ErrInvalidCredentials) {
		t.Fatalf("unknown email: want common.ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrong, common.ErrInvalidCredentials) {
		t.Fatalf("wrong password: want common.ErrInvalidCredentials, got %v", errWrong)
	}
	if errUnknown.Error() != errWrong.Error() {
		t.Fatalf("responses differ: %q vs %q", errUnknown, errWrong)
	}
}

func TestLogin_IntegrityFaultPassesThrough(t *testing.T) {
	svc := newAuthService(t, &fakeAccountsRepo{getErr: common.ErrIntegrity})

	_, err := svc.Login(context.Background(), "dup@example.com", "pw")
	if !errors.Is(err, common.ErrIntegrity) {
		t.Fatalf("want common.ErrIntegrity, got %v", err)
	}
}

func TestLogin_StoreErrorPassesThrough(t *testing.T) {
	boom := errors.New("connection refused")
	svc := newAuthService(t, &fakeAccountsRepo{getErr: boom})

	_, err := svc.Login(context.Background(), "a@example.com", "pw")
	if !errors.Is(err, boom) {
		t.Fatalf("want wrapped store error, got %v", err)
	}
	if errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatal("store faults must not masquerade as credential failures")
	}
}

func TestLogin_Success(t *testing.T) {
	svc := newAuthService(t, &fakeAccountsRepo{getOut: storedCredential("s3cret")})

	before := time.Now()
	res, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	if res.Account.ID != "acc-1" || res.Account.Email != "alice@example.com" {
		t.Fatalf("unexpected account: %+v", res.Account)
	}

	claims, err := auth.ParseClaims(res.AccessToken, []byte("k"))
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Name != "Alice Smith" || claims.Role != "admin" || claims.AccountID != "acc-1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	wantExp := before.Add(14 * 24 * time.Hour)
	exp := claims.ExpiresAt.Time
	if exp.Before(wantExp.Add(-5*time.Second)) || exp.After(wantExp.Add(5*time.Second)) {
		t.Fatalf("expiry %v not 14 days from issuance", exp)
	}
}
