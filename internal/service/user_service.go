package service

import (
	"context"

	"foodgram/internal/models"
	"foodgram/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// RegisterInput is the signup payload.
type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// UserService handles account creation, credential checks and profile reads.
type UserService struct {
	users   repository.UserRepository
	derived *DerivedState
}

func NewUserService(users repository.UserRepository, derived *DerivedState) *UserService {
	return &UserService{users: users, derived: derived}
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if input.Username == "" || input.Email == "" {
		return nil, models.NewValidationError("username and email are required")
	}
	if len(input.Password) < 8 {
		return nil, models.NewValidationError("password must be at least 8 characters")
	}

	if existing, err := s.users.GetByEmail(ctx, input.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("email is already registered", nil)
	}
	if existing, err := s.users.GetByUsername(ctx, input.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("username is already taken", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := models.User{
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Password:  string(hash),
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies the credentials and returns the account. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("invalid email or password")
	}
	return user, nil
}

func (s *UserService) GetProfile(ctx context.Context, viewerID, userID uint) (*UserView, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	subscribed, err := s.derived.IsSubscribed(ctx, viewerID, userID)
	if err != nil {
		return nil, err
	}
	view := userView(user, subscribed)
	return &view, nil
}

func (s *UserService) List(ctx context.Context, viewerID uint, limit, offset int) ([]UserView, int64, error) {
	users, total, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	views := make([]UserView, 0, len(users))
	for i := range users {
		subscribed, err := s.derived.IsSubscribed(ctx, viewerID, users[i].ID)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, userView(&users[i], subscribed))
	}
	return views, total, nil
}
