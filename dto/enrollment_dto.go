package dto

import "github.com/JulieDelts/OnlineLearningPlatform/domain"

type EnrollmentManagementRequest struct {
	UserUUID string `json:"user_uuid" binding:"required,uuid"`
}

// Attendance and Grade are pointers so that a present zero survives the
// required binding check.
type ControlAttendanceRequest struct {
	UserUUID   string `json:"user_uuid" binding:"required,uuid"`
	Attendance *int   `json:"attendance" binding:"required,gte=0"`
}

type GradeStudentRequest struct {
	UserUUID string `json:"user_uuid" binding:"required,uuid"`
	Grade    *int   `json:"grade" binding:"required,gte=0,lte=10"`
}

type CourseReviewRequest struct {
	UserUUID string `json:"user_uuid" binding:"required,uuid"`
	Review   string `json:"review" binding:"required,min=1,max=1000"`
}

// CourseEnrollmentResponse is the student-side view of an enrollment.
type CourseEnrollmentResponse struct {
	CourseUUID    string  `json:"course_uuid"`
	CourseName    string  `json:"course_name"`
	Grade         *int    `json:"grade,omitempty"`
	Attendance    *int    `json:"attendance,omitempty"`
	StudentReview *string `json:"student_review,omitempty"`
}

func MapCourseEnrollmentResponse(enrollment *domain.Enrollment) CourseEnrollmentResponse {
	response := CourseEnrollmentResponse{
		CourseUUID:    enrollment.CourseUUID,
		Grade:         enrollment.Grade,
		Attendance:    enrollment.Attendance,
		StudentReview: enrollment.StudentReview,
	}

	if enrollment.Course != nil {
		response.CourseName = enrollment.Course.Name
	}

	return response
}

func MapCourseEnrollmentResponses(enrollments []domain.Enrollment) []CourseEnrollmentResponse {
	responses := make([]CourseEnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		responses = append(responses, MapCourseEnrollmentResponse(&enrollments[i]))
	}
	return responses
}

// UserEnrollmentResponse is the roster view a teacher sees for a course.
type UserEnrollmentResponse struct {
	UserUUID      string  `json:"user_uuid"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Grade         *int    `json:"grade,omitempty"`
	Attendance    *int    `json:"attendance,omitempty"`
	StudentReview *string `json:"student_review,omitempty"`
}

func MapUserEnrollmentResponse(enrollment *domain.Enrollment) UserEnrollmentResponse {
	response := UserEnrollmentResponse{
		UserUUID:      enrollment.UserUUID,
		Grade:         enrollment.Grade,
		Attendance:    enrollment.Attendance,
		StudentReview: enrollment.StudentReview,
	}

	if enrollment.User != nil {
		response.FirstName = enrollment.User.FirstName
		response.LastName = enrollment.User.LastName
	}

	return response
}

func MapUserEnrollmentResponses(enrollments []domain.Enrollment) []UserEnrollmentResponse {
	responses := make([]UserEnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		responses = append(responses, MapUserEnrollmentResponse(&enrollments[i]))
	}
	return responses
}
