package user

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestRegister_HashesPassword(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	svc := NewService(repo)

	created, err := svc.Register(User{Name: "Asha", Email: "asha@example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected an assigned user id")
	}
	if created.Password == "s3cret" {
		t.Fatalf("password stored in plaintext")
	}
	if !strings.HasPrefix(created.Password, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", created.Password)
	}
	if bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret")) != nil {
		t.Fatalf("stored hash does not match the original password")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	if _, err := svc.Register(User{Name: "Asha", Email: "asha@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(User{Name: "Other", Email: "asha@example.com", Password: "different"}); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	if _, err := svc.Register(User{Name: "Asha", Email: "asha@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	u, err := svc.Authenticate("asha@example.com", "s3cret")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if u.Email != "asha@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}

	// wrong password and unknown email return the same error
	if _, err := svc.Authenticate("asha@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Authenticate("nobody@example.com", "s3cret"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
