package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JulieDelts/OnlineLearningPlatform/config"
	"github.com/JulieDelts/OnlineLearningPlatform/domain"
	"github.com/JulieDelts/OnlineLearningPlatform/dto"
	"github.com/JulieDelts/OnlineLearningPlatform/middleware"
	"github.com/JulieDelts/OnlineLearningPlatform/utils"
)

type UserHandler struct {
	userUC domain.UserUseCase
}

func NewUserHandler(r *gin.Engine, userUC domain.UserUseCase, jwtManager *utils.JWTManager) {
	handler := &UserHandler{userUC: userUC}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	public := r.Group("/api/users")
	{
		public.POST("/register", handler.Register)
		public.POST("/login", handler.Login)
	}

	authed := r.Group("/api/users")
	authed.Use(config.AuthMiddleware(jwtManager))
	{
		authed.PUT("/profile", handler.UpdateProfile)
		authed.PUT("/password", handler.UpdatePassword)
		authed.GET("/:uuid", handler.GetUserByUUID)
		authed.GET("/:uuid/courses", handler.GetTaughtCourses)
		authed.GET("/:uuid/enrollments", handler.GetEnrollments)
	}

	admin := r.Group("/api/users")
	admin.Use(config.AuthMiddleware(jwtManager), middleware.AdminOnly())
	{
		admin.GET("", handler.GetAllActiveUsers)
		admin.PATCH("/:uuid/role", handler.UpdateRole)
		admin.PATCH("/:uuid/deactivate", handler.DeactivateUser)
		admin.DELETE("/:uuid", handler.DeleteUser)
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "Register", err)
		return
	}

	user := dto.MapRegisterRequest(&req)
	uuid, err := h.userUC.Register(c.Request.Context(), &user)
	if err != nil {
		respondError(c, "Register", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusCreated, "Register", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    gin.H{"uuid": uuid},
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "Login", err)
		return
	}

	token, err := h.userUC.Authenticate(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		respondError(c, "Login", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "Login", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"access_token": token},
	})
}

func (h *UserHandler) GetAllActiveUsers(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	users, err := h.userUC.GetAllActiveUsers(c.Request.Context())
	if err != nil {
		respondError(c, "GetAllActiveUsers", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "GetAllActiveUsers", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.MapUserResponses(users),
	})
}

// GetUserByUUID returns the full profile. Only the owner or an admin may
// look at it.
func (h *UserHandler) GetUserByUUID(c *gin.Context) {
	name := utils.GetAPIHitter(c)
	uuid := c.Param("uuid")

	if requesterUUID(c) != uuid && requesterRole(c) != domain.RoleAdmin {
		respondError(c, "GetUserByUUID", domain.ErrForbidden)
		return
	}

	user, err := h.userUC.GetUserByUUID(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, "GetUserByUUID", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "GetUserByUUID", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.MapExtendedUserResponse(user),
	})
}

func (h *UserHandler) GetTaughtCourses(c *gin.Context) {
	name := utils.GetAPIHitter(c)
	uuid := c.Param("uuid")

	if requesterUUID(c) != uuid && requesterRole(c) != domain.RoleAdmin {
		respondError(c, "GetTaughtCourses", domain.ErrForbidden)
		return
	}

	courses, err := h.userUC.GetTaughtCoursesByUserUUID(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, "GetTaughtCourses", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "GetTaughtCourses", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.MapCourseResponses(courses),
	})
}

func (h *UserHandler) GetEnrollments(c *gin.Context) {
	name := utils.GetAPIHitter(c)
	uuid := c.Param("uuid")

	if requesterUUID(c) != uuid && requesterRole(c) != domain.RoleAdmin {
		respondError(c, "GetEnrollments", domain.ErrForbidden)
		return
	}

	enrollments, err := h.userUC.GetEnrollmentsByUserUUID(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, "GetEnrollments", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "GetEnrollments", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.MapCourseEnrollmentResponses(enrollments),
	})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "UpdateProfile", err)
		return
	}

	profile := dto.MapUpdateProfileRequest(&req)
	if err := h.userUC.UpdateProfile(c.Request.Context(), requesterUUID(c), profile); err != nil {
		respondError(c, "UpdateProfile", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "UpdateProfile", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
	})
}

func (h *UserHandler) UpdatePassword(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "UpdatePassword", err)
		return
	}

	err := h.userUC.UpdatePassword(c.Request.Context(), requesterUUID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		respondError(c, "UpdatePassword", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "UpdatePassword", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password updated successfully",
	})
}

func (h *UserHandler) UpdateRole(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "UpdateRole", err)
		return
	}

	if err := h.userUC.UpdateRole(c.Request.Context(), c.Param("uuid"), req.Role); err != nil {
		respondError(c, "UpdateRole", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "UpdateRole", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Role updated successfully",
	})
}

func (h *UserHandler) DeactivateUser(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	if err := h.userUC.DeactivateUser(c.Request.Context(), c.Param("uuid")); err != nil {
		respondError(c, "DeactivateUser", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "DeactivateUser", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User deactivated successfully",
	})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	if err := h.userUC.DeleteUser(c.Request.Context(), c.Param("uuid")); err != nil {
		respondError(c, "DeleteUser", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "DeleteUser", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User deleted successfully",
	})
}
