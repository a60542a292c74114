package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/websaga/websaga-backend/internal/repos"
	"github.com/websaga/websaga-backend/internal/types"
)

type RegulationHandler struct {
	regulationRepo repos.RegulationRepo
}

func NewRegulationHandler(regulationRepo repos.RegulationRepo) *RegulationHandler {
	return &RegulationHandler{regulationRepo: regulationRepo}
}

type regulationPayload struct {
	Name string `json:"name" binding:"required"`
}

func (rh *RegulationHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	regulations, err := rh.regulationRepo.List(c.Request.Context(), nil, skip, limit)
	if err != nil {
		respondStoreError(c, "Regulation", err)
		return
	}
	c.JSON(http.StatusOK, regulations)
}

func (rh *RegulationHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	regulation, err := rh.regulationRepo.GetByID(c.Request.Context(), nil, id)
	if err != nil {
		respondStoreError(c, "Regulation", err)
		return
	}
	c.JSON(http.StatusOK, regulation)
}

func (rh *RegulationHandler) Create(c *gin.Context) {
	var req regulationPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	regulation := &types.Regulation{Name: req.Name, Status: true}
	created, err := rh.regulationRepo.Create(c.Request.Context(), nil, regulation)
	if err != nil {
		respondStoreError(c, "Regulation", err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (rh *RegulationHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req regulationPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	regulation, err := rh.regulationRepo.GetByID(c.Request.Context(), nil, id)
	if err != nil {
		respondStoreError(c, "Regulation", err)
		return
	}
	regulation.Name = req.Name
	if err := rh.regulationRepo.Save(c.Request.Context(), nil, regulation); err != nil {
		respondStoreError(c, "Regulation", err)
		return
	}
	c.JSON(http.StatusOK, regulation)
}

func (rh *RegulationHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := rh.regulationRepo.Delete(c.Request.Context(), nil, id); err != nil {
		respondStoreError(c, "Regulation", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Regulation deleted"})
}
