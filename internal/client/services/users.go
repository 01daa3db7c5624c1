package services

import (
	"context"
	"fmt"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/client"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/listing"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/validation"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/common"
)

// UserService covers admin user management and the caller's own profile.
// The users endpoint reports no total, so List results are never
// TotalKnown.
type UserService interface {
	List(ctx context.Context, q listing.Query) (listing.Result[models.User], error)
	Get(ctx context.Context, id string) (models.User, error)
	Create(ctx context.Context, in models.UserInput) (models.User, error)
	Update(ctx context.Context, id string, in models.UserInput) (models.User, error)
	// ToggleStatus flips u between active and inactive and returns the
	// updated user along with the backend's message.
	ToggleStatus(ctx context.Context, u models.User) (models.User, string, error)
	Delete(ctx context.Context, id string) error

	LoadProfile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, in models.ProfileInput) (models.User, error)
}

type userService struct {
	client client.Client
	store  SessionStore
}

func NewUserService(c client.Client, store SessionStore) UserService {
	return &userService{client: c, store: store}
}

func (s *userService) List(ctx context.Context, q listing.Query) (listing.Result[models.User], error) {
	users, err := s.client.ListUsers(ctx, client.ListParams{Page: q.Page, Limit: q.Limit, Search: q.Search})
	if err != nil {
		return listing.Result[models.User]{}, err
	}
	return listing.Result[models.User]{Items: users}, nil
}

func (s *userService) Get(ctx context.Context, id string) (models.User, error) {
	u, err := s.client.GetUser(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("get user %s: %w", id, err)
	}
	return u, nil
}

func (s *userService) Create(ctx context.Context, in models.UserInput) (models.User, error) {
	v, err := check(validation.CreateUserSchema, userValues(in))
	if err != nil {
		return models.User{}, err
	}
	u, err := s.client.CreateUser(ctx, userInput(v))
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *userService) Update(ctx context.Context, id string, in models.UserInput) (models.User, error) {
	v, err := check(validation.EditUserSchema, userValues(in))
	if err != nil {
		return models.User{}, err
	}
	u, err := s.client.UpdateUser(ctx, id, userInput(v))
	if err != nil {
		return models.User{}, fmt.Errorf("update user %s: %w", id, err)
	}
	if u.ID == "" {
		u.ID = id
	}
	return u, nil
}

func (s *userService) ToggleStatus(ctx context.Context, u models.User) (models.User, string, error) {
	msg, err := s.client.ToggleUserStatus(ctx, u.ID)
	if err != nil {
		return u, "", fmt.Errorf("toggle user %s: %w", u.ID, err)
	}
	u.Status = u.Status.Toggled()
	return u, msg, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}

// LoadProfile fetches the signed-in user's record.
func (s *userService) LoadProfile(ctx context.Context) (models.User, error) {
	me, err := s.currentUser(ctx)
	if err != nil {
		return models.User{}, err
	}
	return s.Get(ctx, me.ID)
}

// UpdateProfile saves the caller's own name and email and mirrors the change
// into the stored session so the navbar shows it at once.
func (s *userService) UpdateProfile(ctx context.Context, in models.ProfileInput) (models.User, error) {
	v, err := check(validation.ProfileSchema, validation.Values{
		"firstName": in.FirstName,
		"lastName":  in.LastName,
		"email":     in.Email,
	})
	if err != nil {
		return models.User{}, err
	}

	me, err := s.currentUser(ctx)
	if err != nil {
		return models.User{}, err
	}

	updated, err := s.client.UpdateUser(ctx, me.ID, models.UserInput{
		FirstName: v["firstName"],
		LastName:  v["lastName"],
		Email:     v["email"],
	})
	if err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}

	merged := me
	merged.FirstName = v["firstName"]
	merged.LastName = v["lastName"]
	merged.Email = v["email"]
	if updated.Role != "" {
		merged.Role = updated.Role
	}
	if updated.Status != "" {
		merged.Status = updated.Status
	}
	if err := s.store.UpdateUser(ctx, merged); err != nil {
		return models.User{}, err
	}
	return merged, nil
}

func (s *userService) currentUser(ctx context.Context) (models.User, error) {
	sess, err := s.store.Get(ctx)
	if err != nil {
		return models.User{}, err
	}
	if !sess.Authenticated() || sess.User.ID == "" {
		return models.User{}, common.ErrNoSession
	}
	return sess.User, nil
}

func userValues(in models.UserInput) validation.Values {
	return validation.Values{
		"firstName": in.FirstName,
		"lastName":  in.LastName,
		"email":     in.Email,
		"role":      string(in.Role),
	}
}

func userInput(v validation.Values) models.UserInput {
	return models.UserInput{
		FirstName: v["firstName"],
		LastName:  v["lastName"],
		Email:     v["email"],
		Role:      models.Role(v["role"]),
	}
}
