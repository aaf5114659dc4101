package domain

import (
	"errors"
	"fmt"
)

// Entity kinds used in not-found failures.
const (
	EntityUser       = "User"
	EntityCourse     = "Course"
	EntityEnrollment = "Enrollment"
)

// ErrForbidden is returned when the requester is authenticated but is not
// the actor allowed to perform the mutation.
var ErrForbidden = errors.New("the requester is not allowed to perform this operation")

// ErrWrongCredentials covers login and password-change credential mismatches.
var ErrWrongCredentials = errors.New("The credentials are not correct.")

// NotFoundError reports a missing User, Course or Enrollment. The message
// is stable; clients match on it.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s was not found.", e.Entity, e.Key)
}

// ConflictError reports an operation that would break a domain invariant:
// wrong role, deactivated entity, duplicate enrollment or login, an
// out-of-range value, or role-change ineligibility.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

func NewNotFound(entity, uuid string) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: "id " + uuid}
}

// NewEnrollmentNotFound keys the failure on the (course, user) pair since
// enrollments are addressed by it rather than by their own id.
func NewEnrollmentNotFound(courseUUID, userUUID string) *NotFoundError {
	return &NotFoundError{
		Entity: EntityEnrollment,
		Key:    fmt.Sprintf("user id %s and course id %s", userUUID, courseUUID),
	}
}

func NewConflict(format string, args ...any) *ConflictError {
	return &ConflictError{Reason: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}
