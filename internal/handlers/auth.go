package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/websaga/websaga-backend/internal/middleware"
	"github.com/websaga/websaga-backend/internal/services"
)

type AuthHandler struct {
	authService    services.AuthService
	facultyService services.FacultyService
}

func NewAuthHandler(authService services.AuthService, facultyService services.FacultyService) *AuthHandler {
	return &AuthHandler{authService: authService, facultyService: facultyService}
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}
	faculty, token, err := ah.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user": gin.H{
			"id":   faculty.ID,
			"name": faculty.Name,
			"role": faculty.UserType,
		},
		"token":      token,
		"expires_in": int(ah.authService.GetAccessTTL().Seconds()),
	})
}

// Me resolves the authenticated faculty from the claims the auth
// middleware stored on the request.
func (ah *AuthHandler) Me(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
		return
	}
	faculty, err := ah.facultyService.GetFaculty(c.Request.Context(), claims.FacultyID)
	if err != nil {
		respondStoreError(c, "Faculty", err)
		return
	}
	c.JSON(http.StatusOK, faculty)
}

// Users returns a compact directory of faculty login identities,
// paginated with skip/limit like every other list.
func (ah *AuthHandler) Users(c *gin.Context) {
	skip, limit := pagination(c)
	faculties, err := ah.facultyService.ListFaculties(c.Request.Context(), skip, limit)
	if err != nil {
		respondStoreError(c, "Faculty", err)
		return
	}
	out := make([]gin.H, 0, len(faculties))
	for _, f := range faculties {
		out = append(out, gin.H{
			"id":        f.ID,
			"name":      f.Name,
			"email":     f.Email,
			"user_type": f.UserType,
			"empid":     f.EmpID,
		})
	}
	c.JSON(http.StatusOK, out)
}
