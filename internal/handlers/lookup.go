package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/websaga/websaga-backend/internal/repos"
	"github.com/websaga/websaga-backend/internal/types"
)

// LookupHandler serves the flat classification tables: blooms levels,
// difficulty levels and units. List and create only, as in the admin UI.
type LookupHandler struct {
	bloomsRepo     repos.BloomsLevelRepo
	difficultyRepo repos.DifficultyLevelRepo
	unitRepo       repos.UnitRepo
}

func NewLookupHandler(bloomsRepo repos.BloomsLevelRepo, difficultyRepo repos.DifficultyLevelRepo, unitRepo repos.UnitRepo) *LookupHandler {
	return &LookupHandler{bloomsRepo: bloomsRepo, difficultyRepo: difficultyRepo, unitRepo: unitRepo}
}

type lookupPayload struct {
	Name string `json:"name" binding:"required"`
}

func (lh *LookupHandler) ListBloomsLevels(c *gin.Context) {
	skip, limit := pagination(c)
	levels, err := lh.bloomsRepo.List(c.Request.Context(), nil, skip, limit)
	if err != nil {
		respondStoreError(c, "Blooms level", err)
		return
	}
	c.JSON(http.StatusOK, levels)
}

func (lh *LookupHandler) CreateBloomsLevel(c *gin.Context) {
	var req lookupPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	created, err := lh.bloomsRepo.Create(c.Request.Context(), nil, &types.BloomsLevel{Name: req.Name, Status: true})
	if err != nil {
		respondStoreError(c, "Blooms level", err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (lh *LookupHandler) ListDifficultyLevels(c *gin.Context) {
	skip, limit := pagination(c)
	levels, err := lh.difficultyRepo.List(c.Request.Context(), nil, skip, limit)
	if err != nil {
		respondStoreError(c, "Difficulty level", err)
		return
	}
	c.JSON(http.StatusOK, levels)
}

func (lh *LookupHandler) CreateDifficultyLevel(c *gin.Context) {
	var req lookupPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	created, err := lh.difficultyRepo.Create(c.Request.Context(), nil, &types.DifficultyLevel{Name: req.Name, Status: true})
	if err != nil {
		respondStoreError(c, "Difficulty level", err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (lh *LookupHandler) ListUnits(c *gin.Context) {
	skip, limit := pagination(c)
	units, err := lh.unitRepo.List(c.Request.Context(), nil, skip, limit)
	if err != nil {
		respondStoreError(c, "Unit", err)
		return
	}
	c.JSON(http.StatusOK, units)
}

func (lh *LookupHandler) CreateUnit(c *gin.Context) {
	var req lookupPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	created, err := lh.unitRepo.Create(c.Request.Context(), nil, &types.Unit{Name: req.Name, Status: true})
	if err != nil {
		respondStoreError(c, "Unit", err)
		return
	}
	c.JSON(http.StatusOK, created)
}
