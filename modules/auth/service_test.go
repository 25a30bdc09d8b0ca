package auth

import (
	"context"
	"errors"
	"net/mail"
	"testing"

	domain "github.com/example/task-tracker/domain/user"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return NewAuthService(NewUserRepository(db), NewPasswordHasher(), NewJWTManager(DefaultJWTConfig()))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice@example.com", "Alice", "supersecret")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Name != "Alice" {
		t.Errorf("expected name Alice, got %s", user.Name)
	}

	tokens, err := svc.Login(ctx, "alice@example.com", "supersecret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	claims, err := svc.ValidateToken(ctx, tokens.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Name != "Alice" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestRegisterRejectsEmptyName(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register(context.Background(), "bob@example.com", "   ", "supersecret")
	if !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "carol@example.com", "Carol", "supersecret"); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if _, err := svc.Register(ctx, "carol@example.com", "Carol Again", "supersecret"); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "dave@example.com", "Dave", "supersecret"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := svc.Login(ctx, "dave@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestEmailValidation(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{
			name:  "valid email",
			email: "user@example.com",
			want:  true,
		},
		{
			name:  "valid email with subdomain",
			email: "user@mail.example.com",
			want:  true,
		},
		{
			name:  "valid email with plus",
			email: "user+tag@example.com",
			want:  true,
		},
		{
			name:  "valid email with dots",
			email: "first.last@example.com",
			want:  true,
		},
		{
			name:  "missing @",
			email: "userexample.com",
			want:  false,
		},
		{
			name:  "missing domain",
			email: "user@",
			want:  false,
		},
		{
			name:  "missing local part",
			email: "@example.com",
			want:  false,
		},
		{
			name:  "empty string",
			email: "",
			want:  false,
		},
		{
			name:  "multiple @",
			email: "user@@example.com",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mail.ParseAddress(tt.email)
			got := err == nil
			if got != tt.want {
				t.Errorf("mail.ParseAddress(%q) valid = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestPasswordValidation(t *testing.T) {
	tests := []struct {
		name     string
		password string
		minValid bool
		maxValid bool
	}{
		{
			name:     "8 characters exactly",
			password: "12345678",
			minValid: true,
			maxValid: true,
		},
		{
			name:     "more than 8 characters",
			password: "password123",
			minValid: true,
			maxValid: true,
		},
		{
			name:     "7 characters",
			password: "1234567",
			minValid: false,
			maxValid: true,
		},
		{
			name:     "empty password",
			password: "",
			minValid: false,
			maxValid: true,
		},
		{
			name:     "1 character",
			password: "a",
			minValid: false,
			maxValid: true,
		},
		{
			name:     "72 characters exactly (bcrypt max)",
			password: "aaaaaaaabbbbbbbbccccccccddddddddeeeeeeeeffffffffgggggggghhhhhhhhiiiiiiii",
			minValid: true,
			maxValid: true,
		},
		{
			name:     "73 characters (over bcrypt limit)",
			password: "aaaaaaaabbbbbbbbccccccccddddddddeeeeeeeeffffffffgggggggghhhhhhhhiiiiiiiii",
			minValid: true,
			maxValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minValid := len(tt.password) >= 8
			if minValid != tt.minValid {
				t.Errorf("min length validation for %q = %v, want %v", tt.password, minValid, tt.minValid)
			}

			maxValid := len(tt.password) <= 72
			if maxValid != tt.maxValid {
				t.Errorf("max length validation for %q = %v, want %v", tt.password, maxValid, tt.maxValid)
			}
		})
	}
}
