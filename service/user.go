package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/JulieDelts/OnlineLearningPlatform/domain"
	"github.com/JulieDelts/OnlineLearningPlatform/utils"
)

type userService struct {
	users       domain.UserRepository
	look        lookup
	accessToken *utils.JWTManager
}

func NewUserService(userRepo domain.UserRepository, accessToken *utils.JWTManager) domain.UserUseCase {
	return &userService{
		users:       userRepo,
		look:        lookup{users: userRepo},
		accessToken: accessToken,
	}
}

// Register creates the user with the default student role. The password
// arrives in plain text on the model and leaves as a bcrypt hash.
func (s *userService) Register(ctx context.Context, user *domain.User) (string, error) {
	existing, err := s.users.GetUserByLogin(ctx, user.Login)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.NewConflict("User with login %s already exists.", user.Login)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user.Password = string(hashed)
	user.Role = domain.RoleStudent
	user.IsDeactivated = false

	if err := s.users.CreateUser(ctx, user); err != nil {
		return "", err
	}

	return user.UUID, nil
}

// Authenticate never reveals whether the login or the password was wrong.
func (s *userService) Authenticate(ctx context.Context, login, password string) (string, error) {
	user, err := s.users.GetUserByLogin(ctx, login)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrWrongCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", domain.ErrWrongCredentials
	}

	return s.accessToken.GenerateToken(user.UUID, user.Role)
}

func (s *userService) GetAllActiveUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.GetAllActiveUsers(ctx)
}

func (s *userService) GetUserByUUID(ctx context.Context, uuid string) (*domain.User, error) {
	return s.look.userWithFullInfo(ctx, uuid)
}

func (s *userService) GetTaughtCoursesByUserUUID(ctx context.Context, uuid string) ([]domain.Course, error) {
	user, err := s.look.userWithFullInfo(ctx, uuid)
	if err != nil {
		return nil, err
	}

	if user.Role != domain.RoleTeacher {
		return nil, domain.NewConflict("The role of the user is not correct.")
	}

	return user.TaughtCourses, nil
}

func (s *userService) GetEnrollmentsByUserUUID(ctx context.Context, uuid string) ([]domain.Enrollment, error) {
	user, err := s.look.userWithFullInfo(ctx, uuid)
	if err != nil {
		return nil, err
	}

	if user.Role != domain.RoleStudent {
		return nil, domain.NewConflict("The role of the user is not correct.")
	}

	return user.Enrollments, nil
}

func (s *userService) UpdateProfile(ctx context.Context, uuid string, profile domain.User) error {
	user, err := s.look.user(ctx, uuid)
	if err != nil {
		return err
	}

	if user.IsDeactivated {
		return domain.NewConflict("User with id %s is deactivated.", user.UUID)
	}

	user.FirstName = profile.FirstName
	user.LastName = profile.LastName
	user.Email = profile.Email
	user.Phone = profile.Phone

	return s.users.UpdateUser(ctx, user)
}

func (s *userService) UpdatePassword(ctx context.Context, uuid, currentPassword, newPassword string) error {
	user, err := s.look.user(ctx, uuid)
	if err != nil {
		return err
	}

	if user.IsDeactivated {
		return domain.NewConflict("User with id %s is deactivated.", user.UUID)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)) != nil {
		return domain.ErrWrongCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)

	return s.users.UpdateUser(ctx, user)
}

// UpdateRole is the only operation allowed to change a role. Only a
// student with no enrollments qualifies.
func (s *userService) UpdateRole(ctx context.Context, uuid, newRole string) error {
	user, err := s.look.userWithFullInfo(ctx, uuid)
	if err != nil {
		return err
	}

	if user.IsDeactivated {
		return domain.NewConflict("User with id %s is deactivated.", user.UUID)
	}

	if user.Role != domain.RoleStudent || len(user.Enrollments) > 0 {
		return domain.NewConflict("User with id %s does not satisfy the requirements.", user.UUID)
	}

	user.Role = newRole

	return s.users.UpdateUser(ctx, user)
}

func (s *userService) DeactivateUser(ctx context.Context, uuid string) error {
	user, err := s.look.user(ctx, uuid)
	if err != nil {
		return err
	}

	user.IsDeactivated = true

	return s.users.UpdateUser(ctx, user)
}

func (s *userService) DeleteUser(ctx context.Context, uuid string) error {
	user, err := s.look.user(ctx, uuid)
	if err != nil {
		return err
	}

	return s.users.DeleteUser(ctx, user.UUID)
}
