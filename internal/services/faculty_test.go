package services

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/websaga/websaga-backend/internal/repos"
)

func TestCreateFacultyStoresHashNotPlaintext(t *testing.T) {
	gdb := testDB(t)
	log := testLogger(t)
	facultySvc := NewFacultyService(log, repos.NewFacultyRepo(gdb, log))

	created, err := facultySvc.CreateFaculty(context.Background(), FacultyInput{
		UserType:  "Admin",
		Honorific: "Dr.",
		Name:      "John Doe",
		EmpID:     "EMP100",
		Phone:     "8888888888",
		Email:     "john@example.edu",
		Username:  "jdoe",
		Password:  "plaintext-pass",
	})
	if err != nil {
		t.Fatalf("CreateFaculty: %v", err)
	}
	if created.PasswordHash == "plaintext-pass" {
		t.Fatalf("password stored as plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("plaintext-pass")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestUpdateFacultyRehashesPassword(t *testing.T) {
	gdb := testDB(t)
	log := testLogger(t)
	facultySvc := NewFacultyService(log, repos.NewFacultyRepo(gdb, log))
	ctx := context.Background()

	created, err := facultySvc.CreateFaculty(ctx, FacultyInput{
		UserType:  "Faculty",
		Honorific: "Mr.",
		Name:      "Sam Poe",
		EmpID:     "EMP200",
		Phone:     "7777777777",
		Email:     "sam@example.edu",
		Username:  "spoe",
		Password:  "old-pass",
	})
	if err != nil {
		t.Fatalf("CreateFaculty: %v", err)
	}

	updated, err := facultySvc.UpdateFaculty(ctx, created.ID, FacultyInput{
		UserType:  "Faculty",
		Honorific: "Mr.",
		Name:      "Sam Poe",
		EmpID:     "EMP200",
		Phone:     "7777777777",
		Email:     "sam@example.edu",
		Username:  "spoe",
		Password:  "new-pass",
	})
	if err != nil {
		t.Fatalf("UpdateFaculty: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-pass")); err != nil {
		t.Fatalf("updated hash does not verify new password: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("old-pass")); err == nil {
		t.Fatalf("old password still verifies after update")
	}
}
