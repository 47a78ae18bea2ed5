package services

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"campus_backend/apperr"
	"campus_backend/auth"
	"campus_backend/dto"
	"campus_backend/models"
)

var testSecret = []byte("test-secret")

func accountFixture(role models.Role) (*AccountService, *fakePersons) {
	people := newFakePersons()
	return NewAccountService(role, people, &fakeSequences{}, testSecret), people
}

func registration() dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName: "Nimal",
		LastName:  "Perera",
		Email:     "nimal@uni.lk",
		Address:   "Colombo",
		Phone:     "0771234567",
		Password:  "Passw0rd",
		DOB:       "1999-04-12",
	}
}

func TestRegisterAssignsSequentialIDs(t *testing.T) {
	svc, _ := accountFixture(models.RoleAdmin)

	first, err := svc.Register(context.Background(), registration())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if first.PersonID != "A1000" {
		t.Fatalf("expected A1000, got %q", first.PersonID)
	}

	second := registration()
	second.Email = "kamala@uni.lk"
	p, err := svc.Register(context.Background(), second)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if p.PersonID != "A1001" {
		t.Fatalf("expected A1001, got %q", p.PersonID)
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, people := accountFixture(models.RoleStudent)

	if _, err := svc.Register(context.Background(), registration()); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	stored := people.byEmail["nimal@uni.lk"]
	if stored.Password == "Passw0rd" {
		t.Fatal("password stored in plain text")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("Passw0rd")) != nil {
		t.Fatal("stored hash does not verify")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := accountFixture(models.RoleAdmin)

	if _, err := svc.Register(context.Background(), registration()); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	_, err := svc.Register(context.Background(), registration())
	appErr, okay := err.(*apperr.Error)
	if !okay || appErr.Message != "Admin already exists" {
		t.Fatalf("expected duplicate-email rejection, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
		want   *apperr.Error
	}{
		{"bad email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }, apperr.ErrInvalidEmail},
		{"bad phone", func(r *dto.RegisterRequest) { r.Phone = "12345" }, apperr.ErrInvalidPhone},
		{"weak password", func(r *dto.RegisterRequest) { r.Password = "password" }, apperr.ErrWeakPassword},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := accountFixture(models.RoleAdmin)
			req := registration()
			tc.mutate(&req)
			if _, err := svc.Register(context.Background(), req); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLoginIssuesRoleClaim(t *testing.T) {
	svc, _ := accountFixture(models.RoleFaculty)

	if _, err := svc.Register(context.Background(), registration()); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	token, err := svc.Login(context.Background(), dto.LoginRequest{Email: "nimal@uni.lk", Password: "Passw0rd"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	user, err := auth.Parse(testSecret, token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if user.FacultyID != "F1000" {
		t.Fatalf("expected facultyId F1000, got %q", user.FacultyID)
	}
	if user.AdminID != "" || user.StudentID != "" {
		t.Fatalf("token carries extra role claims: %+v", user)
	}
	if role, _ := user.Role(); role != models.RoleFaculty {
		t.Fatalf("expected faculty role, got %v", role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := accountFixture(models.RoleStudent)

	if _, err := svc.Register(context.Background(), registration()); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "nimal@uni.lk", Password: "Wr0ngPass"})
	if err != apperr.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAccountNotFound(t *testing.T) {
	svc, _ := accountFixture(models.RoleStudent)

	if _, err := svc.Get(context.Background(), "S9999"); err == nil {
		t.Fatal("expected not-found error")
	}
	if err := svc.Delete(context.Background(), "S9999"); err == nil {
		t.Fatal("expected not-found error")
	}
}
