package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "stilrandevu/database/repository/user"
	"stilrandevu/models"
	"stilrandevu/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// RegisterUser creates an account, hashes the password and signs the user in.
func (s *DefaultUserService) RegisterUser(email, name, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	if existing, err := s.Repo.GetByEmail(email); err == nil && existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	} else if err != nil && !errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, fmt.Errorf("registration failed, please try again")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, err
	}

	return s.issueToken(usr)
}

// AuthenticateUser verifies credentials and issues a fresh session token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, fmt.Errorf("invalid email or password")
		}
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(usr)
}

// issueToken signs a JWT, stores its hash on the user record and primes the
// auth cache so the middleware can verify without a DB round trip.
func (s *DefaultUserService) issueToken(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSet(usr.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}

	ctx := context.Background()
	if err := utils.GetAuthCacheClient().Set(ctx, utils.AuthCachePrefix+usr.ID, tokenHash, time.Hour).Err(); err != nil {
		utils.GetLogger().Warn("failed to prime auth cache", zap.String("userID", usr.ID), zap.Error(err))
	}

	usr.PasswordHash = ""
	usr.TokenHash = ""
	return &AuthResponse{User: *usr, Token: token}, nil
}

func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	usr.PasswordHash = ""
	usr.TokenHash = ""
	return usr, nil
}

// UpdateDisplayName changes the user's display name.
func (s *DefaultUserService) UpdateDisplayName(id, name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return s.Repo.UpdateSet(id, bson.M{"name": name})
}

func (s *DefaultUserService) DeleteUser(id string) error {
	return s.Repo.Delete(id)
}

// RevokeToken invalidates the user's current session.
func (s *DefaultUserService) RevokeToken(id string) error {
	ctx := context.Background()
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+id).Err(); err != nil {
		utils.GetLogger().Warn("failed to evict auth cache entry", zap.String("userID", id), zap.Error(err))
	}
	return s.Repo.UpdateSet(id, bson.M{"tokenHash": ""})
}
