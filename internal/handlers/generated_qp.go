package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/websaga/websaga-backend/internal/services"
	"github.com/websaga/websaga-backend/internal/types"
)

type GeneratedQPHandler struct {
	qpService services.GeneratedQPService
}

func NewGeneratedQPHandler(qpService services.GeneratedQPService) *GeneratedQPHandler {
	return &GeneratedQPHandler{qpService: qpService}
}

type generatedQPPayload struct {
	ProgramID      uint   `json:"program_id" binding:"required"`
	CourseID       uint   `json:"course_id" binding:"required"`
	AssessmentType string `json:"assessment_type" binding:"required"`
	DateOfExam     string `json:"date_of_exam" binding:"required"`
	RegulationID   uint   `json:"regulation_id" binding:"required"`
	Year           string `json:"year" binding:"required"`
	Semester       string `json:"semester" binding:"required"`
	AcademicYear   string `json:"academic_year" binding:"required"`
	Questions      string `json:"questions" binding:"required"`
	CreatedAt      string `json:"created_at"`
}

func (gh *GeneratedQPHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	qps, err := gh.qpService.ListGeneratedQPs(c.Request.Context(), skip, limit)
	if err != nil {
		respondStoreError(c, "Generated QP", err)
		return
	}
	c.JSON(http.StatusOK, qps)
}

func (gh *GeneratedQPHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	qp, err := gh.qpService.GetGeneratedQP(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, "Generated QP", err)
		return
	}
	c.JSON(http.StatusOK, qp)
}

func (gh *GeneratedQPHandler) Create(c *gin.Context) {
	var req generatedQPPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	qp := &types.GeneratedQP{
		ProgramID:      req.ProgramID,
		CourseID:       req.CourseID,
		AssessmentType: req.AssessmentType,
		DateOfExam:     req.DateOfExam,
		RegulationID:   req.RegulationID,
		Year:           req.Year,
		Semester:       req.Semester,
		AcademicYear:   req.AcademicYear,
		Questions:      req.Questions,
		CreatedAt:      req.CreatedAt,
	}
	created, err := gh.qpService.CreateGeneratedQP(c.Request.Context(), qp)
	if err != nil {
		respondStoreError(c, "Generated QP", err)
		return
	}
	c.JSON(http.StatusOK, created)
}
