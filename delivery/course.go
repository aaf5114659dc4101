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

type CourseHandler struct {
	courseUC     domain.CourseUseCase
	enrollmentUC domain.EnrollmentUseCase
}

func NewCourseHandler(r *gin.Engine, courseUC domain.CourseUseCase, enrollmentUC domain.EnrollmentUseCase, jwtManager *utils.JWTManager) {
	handler := &CourseHandler{courseUC: courseUC, enrollmentUC: enrollmentUC}

	// The catalogue of active courses is the only public surface.
	r.GET("/api/courses", handler.GetAllActiveCourses)

	teacher := r.Group("/api/courses")
	teacher.Use(config.AuthMiddleware(jwtManager), middleware.TeacherOrAdmin())
	{
		teacher.POST("", handler.CreateCourse)
		teacher.GET("/:uuid", handler.GetFullCourse)
		teacher.GET("/:uuid/enrollments", handler.GetCourseEnrollments)
	}

	owner := r.Group("/api/courses")
	owner.Use(config.AuthMiddleware(jwtManager), middleware.TeacherOnly())
	{
		owner.PUT("/:uuid", handler.UpdateCourse)
		owner.PATCH("/:uuid/deactivate", handler.DeactivateCourse)
		owner.PATCH("/:uuid/attendance", handler.ControlAttendance)
		owner.PATCH("/:uuid/grade", handler.GradeStudent)
	}

	admin := r.Group("/api/courses")
	admin.Use(config.AuthMiddleware(jwtManager), middleware.AdminOnly())
	{
		admin.DELETE("/:uuid", handler.DeleteCourse)
	}

	student := r.Group("/api/courses")
	student.Use(config.AuthMiddleware(jwtManager), middleware.RequireRole(domain.RoleStudent, domain.RoleAdmin))
	{
		student.POST("/:uuid/enrollments", handler.Enroll)
		student.DELETE("/:uuid/enrollments/:user_uuid", handler.Disenroll)
		student.POST("/:uuid/review", handler.ReviewCourse)
	}
}

func (h *CourseHandler) GetAllActiveCourses(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	courses, err := h.courseUC.GetAllActiveCourses(c.Request.Context())
	if err != nil {
		respondError(c, "GetAllActiveCourses", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "GetAllActiveCourses", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.MapCourseResponses(courses),
	})
}

func (h *CourseHandler) GetFullCourse(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	course, err := h.courseUC.GetFullCourseByUUID(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		respondError(c, "GetFullCourse", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "GetFullCourse", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.MapExtendedCourseResponse(course),
	})
}

func (h *CourseHandler) GetCourseEnrollments(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	enrollments, err := h.courseUC.GetEnrollmentsByCourseUUID(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		respondError(c, "GetCourseEnrollments", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "GetCourseEnrollments", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.MapUserEnrollmentResponses(enrollments),
	})
}

// CreateCourse lets a teacher open a course for themselves; an admin may
// open one for any teacher.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "CreateCourse", err)
		return
	}

	if requesterRole(c) != domain.RoleAdmin && req.TeacherUUID != requesterUUID(c) {
		respondError(c, "CreateCourse", domain.ErrForbidden)
		return
	}

	course := dto.MapCreateCourseRequest(&req)
	uuid, err := h.courseUC.CreateCourse(c.Request.Context(), &course)
	if err != nil {
		respondError(c, "CreateCourse", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusCreated, "CreateCourse", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    gin.H{"uuid": uuid},
	})
}

func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "UpdateCourse", err)
		return
	}

	course := dto.MapUpdateCourseRequest(&req)
	err := h.courseUC.UpdateCourse(c.Request.Context(), c.Param("uuid"), course, requesterUUID(c))
	if err != nil {
		respondError(c, "UpdateCourse", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "UpdateCourse", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Course updated successfully",
	})
}

func (h *CourseHandler) DeactivateCourse(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	err := h.courseUC.DeactivateCourse(c.Request.Context(), c.Param("uuid"), requesterUUID(c))
	if err != nil {
		respondError(c, "DeactivateCourse", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "DeactivateCourse", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Course deactivated successfully",
	})
}

func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	if err := h.courseUC.DeleteCourse(c.Request.Context(), c.Param("uuid")); err != nil {
		respondError(c, "DeleteCourse", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "DeleteCourse", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Course deleted successfully",
	})
}

// Enroll signs a student up for a course. Students may only enroll
// themselves; an admin may enroll anyone.
func (h *CourseHandler) Enroll(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.EnrollmentManagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "Enroll", err)
		return
	}

	if requesterRole(c) != domain.RoleAdmin && req.UserUUID != requesterUUID(c) {
		respondError(c, "Enroll", domain.ErrForbidden)
		return
	}

	if err := h.enrollmentUC.Enroll(c.Request.Context(), c.Param("uuid"), req.UserUUID); err != nil {
		respondError(c, "Enroll", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusCreated, "Enroll", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Enrolled successfully",
	})
}

func (h *CourseHandler) Disenroll(c *gin.Context) {
	name := utils.GetAPIHitter(c)
	userUUID := c.Param("user_uuid")

	if requesterRole(c) != domain.RoleAdmin && userUUID != requesterUUID(c) {
		respondError(c, "Disenroll", domain.ErrForbidden)
		return
	}

	if err := h.enrollmentUC.Disenroll(c.Request.Context(), c.Param("uuid"), userUUID); err != nil {
		respondError(c, "Disenroll", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "Disenroll", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Disenrolled successfully",
	})
}

func (h *CourseHandler) ControlAttendance(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.ControlAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "ControlAttendance", err)
		return
	}

	err := h.enrollmentUC.ControlAttendance(c.Request.Context(), c.Param("uuid"), req.UserUUID, *req.Attendance, requesterUUID(c))
	if err != nil {
		respondError(c, "ControlAttendance", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "ControlAttendance", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Attendance updated successfully",
	})
}

func (h *CourseHandler) GradeStudent(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.GradeStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "GradeStudent", err)
		return
	}

	err := h.enrollmentUC.GradeStudent(c.Request.Context(), c.Param("uuid"), req.UserUUID, *req.Grade, requesterUUID(c))
	if err != nil {
		respondError(c, "GradeStudent", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "GradeStudent", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Grade updated successfully",
	})
}

func (h *CourseHandler) ReviewCourse(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.CourseReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "ReviewCourse", err)
		return
	}

	if requesterRole(c) != domain.RoleAdmin && req.UserUUID != requesterUUID(c) {
		respondError(c, "ReviewCourse", domain.ErrForbidden)
		return
	}

	if err := h.enrollmentUC.ReviewCourse(c.Request.Context(), c.Param("uuid"), req.UserUUID, req.Review); err != nil {
		respondError(c, "ReviewCourse", err)
		return
	}

	utils.PrintLogInfo(&name, http.StatusOK, "ReviewCourse", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Review submitted successfully",
	})
}
