package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/websaga/websaga-backend/internal/repos"
)

func newAuthFixture(t *testing.T) (AuthService, FacultyService) {
	t.Helper()
	gdb := testDB(t)
	log := testLogger(t)
	facultyRepo := repos.NewFacultyRepo(gdb, log)
	authSvc := NewAuthService(log, facultyRepo, "test-secret", time.Hour)
	facultySvc := NewFacultyService(log, facultyRepo)
	return authSvc, facultySvc
}

func seedFaculty(t *testing.T, facultySvc FacultyService, username, password string) {
	t.Helper()
	_, err := facultySvc.CreateFaculty(context.Background(), FacultyInput{
		UserType:  "Faculty",
		Honorific: "Dr.",
		Name:      "Jane Roe",
		EmpID:     "EMP001",
		Phone:     "9999999999",
		Email:     "jane@example.edu",
		Username:  username,
		Password:  password,
	})
	if err != nil {
		t.Fatalf("seed faculty: %v", err)
	}
}

func TestLoginSuccessIssuesParseableToken(t *testing.T) {
	authSvc, facultySvc := newAuthFixture(t)
	seedFaculty(t, facultySvc, "jroe", "s3cret-pass")

	faculty, token, err := authSvc.Login(context.Background(), "jroe", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if faculty.Username != "jroe" {
		t.Fatalf("faculty username: want=%q got=%q", "jroe", faculty.Username)
	}
	claims, err := authSvc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.FacultyID != faculty.ID {
		t.Fatalf("token subject: want=%d got=%d", faculty.ID, claims.FacultyID)
	}
	if claims.Role != "Faculty" {
		t.Fatalf("token role: want=%q got=%q", "Faculty", claims.Role)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	authSvc, facultySvc := newAuthFixture(t)
	seedFaculty(t, facultySvc, "jroe", "s3cret-pass")

	_, _, wrongPassErr := authSvc.Login(context.Background(), "jroe", "wrong")
	_, _, unknownUserErr := authSvc.Login(context.Background(), "nobody", "whatever")

	if !errors.Is(wrongPassErr, ErrInvalidCredentials) {
		t.Fatalf("wrong password: want ErrInvalidCredentials got %v", wrongPassErr)
	}
	if !errors.Is(unknownUserErr, ErrInvalidCredentials) {
		t.Fatalf("unknown user: want ErrInvalidCredentials got %v", unknownUserErr)
	}
	if wrongPassErr.Error() != unknownUserErr.Error() {
		t.Fatalf("credential failures must be identical: %q vs %q", wrongPassErr, unknownUserErr)
	}
}

func TestParseTokenRejectsTampering(t *testing.T) {
	authSvc, facultySvc := newAuthFixture(t)
	seedFaculty(t, facultySvc, "jroe", "s3cret-pass")

	_, token, err := authSvc.Login(context.Background(), "jroe", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := authSvc.ParseToken(token + "x"); err == nil {
		t.Fatalf("tampered token parsed without error")
	}
}
