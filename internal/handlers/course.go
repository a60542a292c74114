package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/websaga/websaga-backend/internal/repos"
	"github.com/websaga/websaga-backend/internal/types"
)

// CourseHandler serves the course resource plus its nested outcome and
// question collections.
type CourseHandler struct {
	courseRepo   repos.CourseRepo
	outcomeRepo  repos.CourseOutcomeRepo
	questionRepo repos.QuestionRepo
}

func NewCourseHandler(courseRepo repos.CourseRepo, outcomeRepo repos.CourseOutcomeRepo, questionRepo repos.QuestionRepo) *CourseHandler {
	return &CourseHandler{courseRepo: courseRepo, outcomeRepo: outcomeRepo, questionRepo: questionRepo}
}

type coursePayload struct {
	Name         string  `json:"name" binding:"required"`
	Code         string  `json:"code" binding:"required"`
	BranchID     uint    `json:"branch_id" binding:"required"`
	RegulationID uint    `json:"regulation_id" binding:"required"`
	Year         string  `json:"year" binding:"required"`
	Semester     string  `json:"semester" binding:"required"`
	CourseType   string  `json:"course_type" binding:"required"`
	ElectiveType string  `json:"elective_type" binding:"required"`
	Credits      float64 `json:"credits" binding:"required"`
}

func (ch *CourseHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	courses, err := ch.courseRepo.List(c.Request.Context(), nil, skip, limit)
	if err != nil {
		respondStoreError(c, "Course", err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (ch *CourseHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	course, err := ch.courseRepo.GetByID(c.Request.Context(), nil, id)
	if err != nil {
		respondStoreError(c, "Course", err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (ch *CourseHandler) Create(c *gin.Context) {
	var req coursePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	course := &types.Course{
		Name:         req.Name,
		Code:         req.Code,
		BranchID:     req.BranchID,
		RegulationID: req.RegulationID,
		Year:         req.Year,
		Semester:     req.Semester,
		CourseType:   req.CourseType,
		ElectiveType: req.ElectiveType,
		Credits:      req.Credits,
		Status:       true,
	}
	created, err := ch.courseRepo.Create(c.Request.Context(), nil, course)
	if err != nil {
		respondStoreError(c, "Course", err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (ch *CourseHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req coursePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	course, err := ch.courseRepo.GetByID(c.Request.Context(), nil, id)
	if err != nil {
		respondStoreError(c, "Course", err)
		return
	}
	course.Name = req.Name
	course.Code = req.Code
	course.BranchID = req.BranchID
	course.RegulationID = req.RegulationID
	course.Year = req.Year
	course.Semester = req.Semester
	course.CourseType = req.CourseType
	course.ElectiveType = req.ElectiveType
	course.Credits = req.Credits
	if err := ch.courseRepo.Save(c.Request.Context(), nil, course); err != nil {
		respondStoreError(c, "Course", err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (ch *CourseHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := ch.courseRepo.Delete(c.Request.Context(), nil, id); err != nil {
		respondStoreError(c, "Course", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}

func (ch *CourseHandler) ListOutcomes(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	outcomes, err := ch.outcomeRepo.ListByCourseID(c.Request.Context(), nil, id)
	if err != nil {
		respondStoreError(c, "Course outcome", err)
		return
	}
	c.JSON(http.StatusOK, outcomes)
}

func (ch *CourseHandler) CreateOutcome(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req struct {
		OutcomeText string `json:"outcome_text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	outcome := &types.CourseOutcome{CourseID: id, OutcomeText: req.OutcomeText, Status: true}
	created, err := ch.outcomeRepo.Create(c.Request.Context(), nil, outcome)
	if err != nil {
		respondStoreError(c, "Course outcome", err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (ch *CourseHandler) ListQuestions(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	skip, limit := pagination(c)
	questions, err := ch.questionRepo.ListByCourseID(c.Request.Context(), nil, id, skip, limit)
	if err != nil {
		respondStoreError(c, "Question", err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (ch *CourseHandler) CreateQuestion(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req struct {
		COID              uint    `json:"co_id" binding:"required"`
		BloomsLevelID     uint    `json:"blooms_level_id" binding:"required"`
		DifficultyLevelID uint    `json:"difficulty_level_id" binding:"required"`
		UnitID            uint    `json:"unit_id" binding:"required"`
		QuestionText      string  `json:"question_text" binding:"required"`
		Image             *string `json:"image"`
		Marks             float64 `json:"marks" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	question := &types.Question{
		CourseID:          id,
		COID:              req.COID,
		BloomsLevelID:     req.BloomsLevelID,
		DifficultyLevelID: req.DifficultyLevelID,
		UnitID:            req.UnitID,
		QuestionText:      req.QuestionText,
		Image:             req.Image,
		Marks:             req.Marks,
		Status:            true,
	}
	created, err := ch.questionRepo.Create(c.Request.Context(), nil, question)
	if err != nil {
		respondStoreError(c, "Question", err)
		return
	}
	c.JSON(http.StatusOK, created)
}
