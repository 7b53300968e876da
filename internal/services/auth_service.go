package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/whyismeleige/rental-ads/internal/models"
	"github.com/whyismeleige/rental-ads/pkg/apperr"
	"github.com/whyismeleige/rental-ads/pkg/utils"
)

type AuthService struct {
	users  UserStore
	tokens *TokenManager
	cost   int
}

func NewAuthService(users UserStore, tokens *TokenManager, bcryptCost int) *AuthService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, tokens: tokens, cost: bcryptCost}
}

// Register creates a new user account and issues a token bound to it.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	fields := map[string]string{}
	if err := utils.ValidateName(req.Name); err != nil {
		fields["name"] = err.Error()
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		fields["email"] = err.Error()
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		fields["password"] = err.Error()
	}
	if len(fields) > 0 {
		return nil, apperr.Validation("invalid registration data", fields)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
		Avatar:       randomAvatar(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique email index catches registrations racing past the
		// pre-check above.
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Conflict("email already registered")
		}
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: user, Token: token}, nil
}

// Login authenticates a user by email and password. Unknown email and
// wrong password fail with the same message.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Authentication("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.Authentication("invalid email or password")
	}

	token, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: user, Token: token}, nil
}

// Profile loads the user bound to a verified token subject.
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.Authentication("invalid token subject")
	}
	user, err := s.users.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}

var avatarStyles = []string{
	"adventurer", "big-smile", "fun-emoji", "lorelei",
	"micah", "notionists", "pixel-art", "croodles",
}

// randomAvatar builds a placeholder avatar URL for accounts registered
// without one.
func randomAvatar() string {
	style := avatarStyles[rand.Intn(len(avatarStyles))]
	return fmt.Sprintf("https://api.dicebear.com/7.x/%s/svg?seed=%s", style, uuid.NewString())
}
