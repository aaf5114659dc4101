package dto

import "github.com/JulieDelts/OnlineLearningPlatform/domain"

type CreateCourseRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=100"`
	Description     string `json:"description" binding:"required,min=1,max=1000"`
	NumberOfLessons int    `json:"number_of_lessons" binding:"required,gt=1"`
	TeacherUUID     string `json:"teacher_uuid" binding:"required,uuid"`
}

func MapCreateCourseRequest(req *CreateCourseRequest) domain.Course {
	return domain.Course{
		Name:            req.Name,
		Description:     req.Description,
		NumberOfLessons: req.NumberOfLessons,
		TeacherUUID:     req.TeacherUUID,
	}
}

type UpdateCourseRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=100"`
	Description     string `json:"description" binding:"omitempty,max=1000"`
	NumberOfLessons int    `json:"number_of_lessons" binding:"required,gt=1"`
}

func MapUpdateCourseRequest(req *UpdateCourseRequest) domain.Course {
	return domain.Course{
		Name:            req.Name,
		Description:     req.Description,
		NumberOfLessons: req.NumberOfLessons,
	}
}

type CourseResponse struct {
	UUID            string `json:"uuid"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	NumberOfLessons int    `json:"number_of_lessons"`
	IsDeactivated   bool   `json:"is_deactivated"`
	TeacherUUID     string `json:"teacher_uuid"`
}

func MapCourseResponse(course *domain.Course) CourseResponse {
	return CourseResponse{
		UUID:            course.UUID,
		Name:            course.Name,
		Description:     course.Description,
		NumberOfLessons: course.NumberOfLessons,
		IsDeactivated:   course.IsDeactivated,
		TeacherUUID:     course.TeacherUUID,
	}
}

func MapCourseResponses(courses []domain.Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		responses = append(responses, MapCourseResponse(&courses[i]))
	}
	return responses
}

type ExtendedCourseResponse struct {
	CourseResponse
	Teacher  *UserResponse  `json:"teacher,omitempty"`
	Students []UserResponse `json:"students"`
}

func MapExtendedCourseResponse(course *domain.Course) ExtendedCourseResponse {
	response := ExtendedCourseResponse{
		CourseResponse: MapCourseResponse(course),
		Students:       make([]UserResponse, 0, len(course.Enrollments)),
	}

	if course.Teacher != nil {
		teacher := MapUserResponse(course.Teacher)
		response.Teacher = &teacher
	}

	for i := range course.Enrollments {
		if course.Enrollments[i].User != nil {
			response.Students = append(response.Students, MapUserResponse(course.Enrollments[i].User))
		}
	}

	return response
}
