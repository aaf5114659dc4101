package dto

import "github.com/JulieDelts/OnlineLearningPlatform/domain"

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=30"`
	LastName  string `json:"last_name" binding:"required,min=1,max=30"`
	Login     string `json:"login" binding:"required,min=5,max=10"`
	Password  string `json:"password" binding:"required,min=8,max=15"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,min=10,max=15"`
}

// MapRegisterRequest carries the plain password on the Password field; the
// user service replaces it with a hash before anything is persisted.
func MapRegisterRequest(req *RegisterRequest) domain.User {
	return domain.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Login:     req.Login,
		Password:  req.Password,
		Email:     req.Email,
		Phone:     req.Phone,
	}
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=30"`
	LastName  string `json:"last_name" binding:"required,min=1,max=30"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,min=10,max=15"`
}

func MapUpdateProfileRequest(req *UpdateProfileRequest) domain.User {
	return domain.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required,min=8,max=15"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=15"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,role"`
}

type UserResponse struct {
	UUID          string `json:"uuid"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Login         string `json:"login"`
	Role          string `json:"role"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	IsDeactivated bool   `json:"is_deactivated"`
}

func MapUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UUID:          user.UUID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Login:         user.Login,
		Role:          user.Role,
		Email:         user.Email,
		Phone:         user.Phone,
		IsDeactivated: user.IsDeactivated,
	}
}

func MapUserResponses(users []domain.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, MapUserResponse(&users[i]))
	}
	return responses
}

type ExtendedUserResponse struct {
	UserResponse
	TaughtCourses []CourseResponse           `json:"taught_courses"`
	Enrollments   []CourseEnrollmentResponse `json:"enrollments"`
}

func MapExtendedUserResponse(user *domain.User) ExtendedUserResponse {
	return ExtendedUserResponse{
		UserResponse:  MapUserResponse(user),
		TaughtCourses: MapCourseResponses(user.TaughtCourses),
		Enrollments:   MapCourseEnrollmentResponses(user.Enrollments),
	}
}
