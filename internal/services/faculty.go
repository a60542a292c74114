package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/websaga/websaga-backend/internal/platform/logger"
	"github.com/websaga/websaga-backend/internal/repos"
	"github.com/websaga/websaga-backend/internal/types"
)

// FacultyInput carries the plaintext password supplied by the caller.
// Only its bcrypt hash ever reaches the store.
type FacultyInput struct {
	UserType  string `json:"user_type" binding:"required"`
	BranchID  *uint  `json:"branch_id"`
	Honorific string `json:"honorific" binding:"required"`
	Name      string `json:"name" binding:"required"`
	EmpID     string `json:"empid" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type FacultyService interface {
	CreateFaculty(ctx context.Context, input FacultyInput) (*types.Faculty, error)
	GetFaculty(ctx context.Context, id uint) (*types.Faculty, error)
	ListFaculties(ctx context.Context, skip, limit int) ([]*types.Faculty, error)
	UpdateFaculty(ctx context.Context, id uint, input FacultyInput) (*types.Faculty, error)
	DeleteFaculty(ctx context.Context, id uint) (*types.Faculty, error)
}

type facultyService struct {
	log         *logger.Logger
	facultyRepo repos.FacultyRepo
}

func NewFacultyService(log *logger.Logger, facultyRepo repos.FacultyRepo) FacultyService {
	serviceLog := log.With("service", "FacultyService")
	return &facultyService{log: serviceLog, facultyRepo: facultyRepo}
}

func (fs *facultyService) CreateFaculty(ctx context.Context, input FacultyInput) (*types.Faculty, error) {
	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	faculty := &types.Faculty{
		UserType:     input.UserType,
		BranchID:     input.BranchID,
		Honorific:    input.Honorific,
		Name:         input.Name,
		EmpID:        input.EmpID,
		Phone:        input.Phone,
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hash,
		Status:       true,
	}
	return fs.facultyRepo.Create(ctx, nil, faculty)
}

func (fs *facultyService) GetFaculty(ctx context.Context, id uint) (*types.Faculty, error) {
	return fs.facultyRepo.GetByID(ctx, nil, id)
}

func (fs *facultyService) ListFaculties(ctx context.Context, skip, limit int) ([]*types.Faculty, error) {
	return fs.facultyRepo.List(ctx, nil, skip, limit)
}

func (fs *facultyService) UpdateFaculty(ctx context.Context, id uint, input FacultyInput) (*types.Faculty, error) {
	faculty, err := fs.facultyRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	faculty.UserType = input.UserType
	faculty.BranchID = input.BranchID
	faculty.Honorific = input.Honorific
	faculty.Name = input.Name
	faculty.EmpID = input.EmpID
	faculty.Phone = input.Phone
	faculty.Email = input.Email
	faculty.Username = input.Username
	faculty.PasswordHash = hash
	if err := fs.facultyRepo.Save(ctx, nil, faculty); err != nil {
		return nil, err
	}
	return faculty, nil
}

func (fs *facultyService) DeleteFaculty(ctx context.Context, id uint) (*types.Faculty, error) {
	return fs.facultyRepo.Delete(ctx, nil, id)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
