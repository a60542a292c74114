package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/websaga/websaga-backend/internal/repos"
	"github.com/websaga/websaga-backend/internal/types"
)

type ProgramHandler struct {
	programRepo repos.ProgramRepo
}

func NewProgramHandler(programRepo repos.ProgramRepo) *ProgramHandler {
	return &ProgramHandler{programRepo: programRepo}
}

type programPayload struct {
	Name string `json:"name" binding:"required"`
}

func (ph *ProgramHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	programs, err := ph.programRepo.List(c.Request.Context(), nil, skip, limit)
	if err != nil {
		respondStoreError(c, "Program", err)
		return
	}
	c.JSON(http.StatusOK, programs)
}

func (ph *ProgramHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	program, err := ph.programRepo.GetByID(c.Request.Context(), nil, id)
	if err != nil {
		respondStoreError(c, "Program", err)
		return
	}
	c.JSON(http.StatusOK, program)
}

func (ph *ProgramHandler) Create(c *gin.Context) {
	var req programPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	program := &types.Program{Name: req.Name, Status: true}
	created, err := ph.programRepo.Create(c.Request.Context(), nil, program)
	if err != nil {
		respondStoreError(c, "Program", err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (ph *ProgramHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req programPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	program, err := ph.programRepo.GetByID(c.Request.Context(), nil, id)
	if err != nil {
		respondStoreError(c, "Program", err)
		return
	}
	program.Name = req.Name
	if err := ph.programRepo.Save(c.Request.Context(), nil, program); err != nil {
		respondStoreError(c, "Program", err)
		return
	}
	c.JSON(http.StatusOK, program)
}

func (ph *ProgramHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := ph.programRepo.Delete(c.Request.Context(), nil, id); err != nil {
		respondStoreError(c, "Program", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Program deleted"})
}
