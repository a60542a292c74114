package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/websaga/websaga-backend/internal/repos"
	"github.com/websaga/websaga-backend/internal/types"
)

// MappingHandler exposes the branch-course and faculty-course bridge
// tables. Program-branch mappings stay store-only: they are owned by
// the branch service's synchronizer and have no direct routes.
type MappingHandler struct {
	branchCourseRepo  repos.BranchCourseMappingRepo
	facultyCourseRepo repos.FacultyCourseMappingRepo
}

func NewMappingHandler(branchCourseRepo repos.BranchCourseMappingRepo, facultyCourseRepo repos.FacultyCourseMappingRepo) *MappingHandler {
	return &MappingHandler{branchCourseRepo: branchCourseRepo, facultyCourseRepo: facultyCourseRepo}
}

func (mh *MappingHandler) ListBranchCourseMappings(c *gin.Context) {
	skip, limit := pagination(c)
	mappings, err := mh.branchCourseRepo.List(c.Request.Context(), nil, skip, limit)
	if err != nil {
		respondStoreError(c, "Branch-course mapping", err)
		return
	}
	c.JSON(http.StatusOK, mappings)
}

func (mh *MappingHandler) CreateBranchCourseMapping(c *gin.Context) {
	var req struct {
		BranchID               uint `json:"branch_id" binding:"required"`
		CourseID               uint `json:"course_id" binding:"required"`
		ProgramBranchMappingID uint `json:"program_branch_mapping_id" binding:"required"`
		RegulationID           uint `json:"regulation_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	mapping := &types.BranchCourseMapping{
		BranchID:               req.BranchID,
		CourseID:               req.CourseID,
		ProgramBranchMappingID: req.ProgramBranchMappingID,
		RegulationID:           req.RegulationID,
		Status:                 true,
	}
	created, err := mh.branchCourseRepo.Create(c.Request.Context(), nil, mapping)
	if err != nil {
		respondStoreError(c, "Branch-course mapping", err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (mh *MappingHandler) ListFacultyCourseMappings(c *gin.Context) {
	skip, limit := pagination(c)
	mappings, err := mh.facultyCourseRepo.List(c.Request.Context(), nil, skip, limit)
	if err != nil {
		respondStoreError(c, "Faculty-course mapping", err)
		return
	}
	c.JSON(http.StatusOK, mappings)
}

func (mh *MappingHandler) CreateFacultyCourseMapping(c *gin.Context) {
	var req struct {
		FacultyID    uint   `json:"faculty_id" binding:"required"`
		CourseID     uint   `json:"course_id" binding:"required"`
		CourseType   string `json:"course_type" binding:"required"`
		Year         string `json:"year" binding:"required"`
		Semester     string `json:"semester" binding:"required"`
		AcademicYear string `json:"academic_year" binding:"required"`
		ElectiveType string `json:"elective_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	mapping := &types.FacultyCourseMapping{
		FacultyID:    req.FacultyID,
		CourseID:     req.CourseID,
		CourseType:   req.CourseType,
		Year:         req.Year,
		Semester:     req.Semester,
		AcademicYear: req.AcademicYear,
		ElectiveType: req.ElectiveType,
		Status:       true,
	}
	created, err := mh.facultyCourseRepo.Create(c.Request.Context(), nil, mapping)
	if err != nil {
		respondStoreError(c, "Faculty-course mapping", err)
		return
	}
	c.JSON(http.StatusOK, created)
}
