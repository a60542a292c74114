package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/websaga/websaga-backend/internal/services"
)

type BranchHandler struct {
	branchService services.BranchService
}

func NewBranchHandler(branchService services.BranchService) *BranchHandler {
	return &BranchHandler{branchService: branchService}
}

func (bh *BranchHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	branches, err := bh.branchService.ListBranches(c.Request.Context(), skip, limit)
	if err != nil {
		respondStoreError(c, "Branch", err)
		return
	}
	c.JSON(http.StatusOK, branches)
}

func (bh *BranchHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	branch, err := bh.branchService.GetBranch(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, "Branch", err)
		return
	}
	c.JSON(http.StatusOK, branch)
}

func (bh *BranchHandler) Create(c *gin.Context) {
	var req services.BranchInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	branch, err := bh.branchService.CreateBranch(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, "Branch", err)
		return
	}
	c.JSON(http.StatusOK, branch)
}

func (bh *BranchHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req services.BranchInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	branch, err := bh.branchService.UpdateBranch(c.Request.Context(), id, req)
	if err != nil {
		respondStoreError(c, "Branch", err)
		return
	}
	c.JSON(http.StatusOK, branch)
}

func (bh *BranchHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := bh.branchService.DeleteBranch(c.Request.Context(), id); err != nil {
		respondStoreError(c, "Branch", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Branch deleted"})
}
