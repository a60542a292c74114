package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/websaga/websaga-backend/internal/services"
)

type FacultyHandler struct {
	facultyService services.FacultyService
}

func NewFacultyHandler(facultyService services.FacultyService) *FacultyHandler {
	return &FacultyHandler{facultyService: facultyService}
}

func (fh *FacultyHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	faculties, err := fh.facultyService.ListFaculties(c.Request.Context(), skip, limit)
	if err != nil {
		respondStoreError(c, "Faculty", err)
		return
	}
	c.JSON(http.StatusOK, faculties)
}

func (fh *FacultyHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	faculty, err := fh.facultyService.GetFaculty(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, "Faculty", err)
		return
	}
	c.JSON(http.StatusOK, faculty)
}

func (fh *FacultyHandler) Create(c *gin.Context) {
	var req services.FacultyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	faculty, err := fh.facultyService.CreateFaculty(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, "Faculty", err)
		return
	}
	c.JSON(http.StatusOK, faculty)
}

func (fh *FacultyHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req services.FacultyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	faculty, err := fh.facultyService.UpdateFaculty(c.Request.Context(), id, req)
	if err != nil {
		respondStoreError(c, "Faculty", err)
		return
	}
	c.JSON(http.StatusOK, faculty)
}

func (fh *FacultyHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := fh.facultyService.DeleteFaculty(c.Request.Context(), id); err != nil {
		respondStoreError(c, "Faculty", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Faculty deleted"})
}
