package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/JulieDelts/OnlineLearningPlatform/domain"
	"github.com/JulieDelts/OnlineLearningPlatform/utils"
)

// statusFromError maps rule engine errors onto HTTP statuses. Anything the
// domain does not type is treated as an internal failure.
func statusFromError(err error) int {
	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case domain.IsConflict(err):
		return http.StatusConflict
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrWrongCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, operation string, err error) {
	name := utils.GetAPIHitter(c)
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = utils.TranslateDBError(err)
	}

	utils.PrintLogInfo(&name, status, operation, &err)
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

func respondBindError(c *gin.Context, operation string, err error) {
	name := utils.GetAPIHitter(c)

	var validationErrs validator.ValidationErrors
	message := "Invalid request body"
	if errors.As(err, &validationErrs) {
		message = utils.TranslateValidationError(validationErrs)
	}

	utils.PrintLogInfo(&name, http.StatusBadRequest, operation, &err)
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
	})
}

// requesterUUID reads the authenticated subject placed by the auth
// middleware. An empty string means the route was wired without it.
func requesterUUID(c *gin.Context) string {
	userUUID, exists := c.Get("userUUID")
	if !exists {
		return ""
	}
	uuid, _ := userUUID.(string)
	return uuid
}

func requesterRole(c *gin.Context) string {
	role, exists := c.Get("role")
	if !exists {
		return ""
	}
	roleStr, _ := role.(string)
	return roleStr
}
