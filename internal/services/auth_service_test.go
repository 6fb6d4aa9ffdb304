package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/zeetechinnovations/pet-adoption-portal/internal/dto"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/models"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), &fakeNotifier{})

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "correct horse",
		Name:     "Jane",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("token pair incomplete")
	}
	if resp.User.Email != "jane@example.com" {
		t.Errorf("user email = %q", resp.User.Email)
	}

	// The stored password is hashed, never plaintext.
	var stored models.User
	db.First(&stored, "email = ?", "jane@example.com")
	if stored.Password == "correct horse" {
		t.Error("password stored in plaintext")
	}

	if _, err := svc.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "correct horse"}); err != nil {
		t.Errorf("Login: %v", err)
	}
	if _, err := svc.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "correct horse"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), &fakeNotifier{})

	req := &dto.RegisterRequest{Email: "jane@example.com", Password: "correct horse"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(req); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second Register: err = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), &fakeNotifier{})

	_, err := svc.Register(&dto.RegisterRequest{Email: "jane@example.com", Password: "short"})
	if !errors.Is(err, ErrWeakPassword) {
		t.Errorf("err = %v, want ErrWeakPassword", err)
	}
}

func TestRefreshRotation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), &fakeNotifier{})

	resp, err := svc.Register(&dto.RegisterRequest{Email: "jane@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	rotated, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if rotated.RefreshToken == resp.RefreshToken {
		t.Error("refresh token not rotated")
	}

	// The old token is single-use.
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("replayed refresh: err = %v, want ErrInvalidToken", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), &fakeNotifier{})

	resp, err := svc.Register(&dto.RegisterRequest{Email: "jane@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("refresh after logout: err = %v, want ErrInvalidToken", err)
	}
}

// resetTokenFromEmail pulls the opaque token out of the reset link.
func resetTokenFromEmail(t *testing.T, body string) string {
	t.Helper()
	idx := strings.Index(body, "token=")
	if idx < 0 {
		t.Fatalf("no reset link in email body %q", body)
	}
	token := body[idx+len("token="):]
	if end := strings.IndexAny(token, " \n"); end >= 0 {
		token = token[:end]
	}
	return token
}

func TestPasswordResetFlow(t *testing.T) {
	db := newTestDB(t)
	notifier := &fakeNotifier{}
	svc := NewAuthService(db, testConfig(), notifier)

	if _, err := svc.Register(&dto.RegisterRequest{Email: "jane@example.com", Password: "correct horse"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.ForgotPassword(&dto.ForgotPasswordRequest{Email: "nobody@example.com"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown email: err = %v, want ErrNotFound", err)
	}

	if err := svc.ForgotPassword(&dto.ForgotPasswordRequest{Email: "jane@example.com"}); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(notifier.sent))
	}
	token := resetTokenFromEmail(t, notifier.sent[0].Body)

	if err := svc.ResetPassword(&dto.ResetPasswordRequest{
		Token: token, Password: "brand new pw", ConfirmPassword: "different",
	}); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("mismatch: err = %v, want ErrPasswordMismatch", err)
	}

	if err := svc.ResetPassword(&dto.ResetPasswordRequest{
		Token: token, Password: "brand new pw", ConfirmPassword: "brand new pw",
	}); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	// The token is single-use.
	if err := svc.ResetPassword(&dto.ResetPasswordRequest{
		Token: token, Password: "another pw 123", ConfirmPassword: "another pw 123",
	}); !errors.Is(err, ErrInvalidResetToken) {
		t.Errorf("replayed token: err = %v, want ErrInvalidResetToken", err)
	}

	if _, err := svc.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "correct horse"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("old password still works after reset")
	}
	if _, err := svc.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "brand new pw"}); err != nil {
		t.Errorf("login with new password: %v", err)
	}
}

func TestForgotPasswordSendFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), &fakeNotifier{failWith: errors.New("provider down")})

	if _, err := svc.Register(&dto.RegisterRequest{Email: "jane@example.com", Password: "correct horse"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := svc.ForgotPassword(&dto.ForgotPasswordRequest{Email: "jane@example.com"}); err == nil {
		t.Error("ForgotPassword succeeded with a dead mailer, want error")
	}
}

func TestDeleteAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), &fakeNotifier{})

	resp, err := svc.Register(&dto.RegisterRequest{Email: "jane@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.DeleteAccount(resp.User.ID, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if err := svc.DeleteAccount(resp.User.ID, "correct horse"); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}

	if _, err := svc.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "correct horse"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("login after deletion: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("refresh after deletion: err = %v, want ErrInvalidToken", err)
	}
}
