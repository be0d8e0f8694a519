package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shamshad-ansari/fitpro-backend/config"
	"github.com/shamshad-ansari/fitpro-backend/models"
	"github.com/shamshad-ansari/fitpro-backend/utils"
)

type AuthService struct {
	users     *mongo.Collection
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(db *mongo.Database, jwtSecret string, jwtTTL time.Duration) *AuthService {
	return &AuthService{
		users:     db.Collection(config.UsersCollection),
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

type SignupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2"`
	Password string `json:"password" binding:"required,min=6"`
	Age      int    `json:"age" binding:"omitempty,min=1"`
}

// Signup creates a user with a bcrypt password hash. A duplicate email
// yields a 409, whether detected by the pre-check or by the unique index
// under a concurrent signup.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.NewConflictError("Email already in use")
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &models.User{
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: hash,
		Age:          in.Age,
		FitnessLevel: "beginner",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.NewConflictError("Email already in use")
		}
		return nil, err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)

	return user, nil
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, *models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, utils.NewAuthError("Invalid email or password")
		}
		return "", nil, err
	}

	if !utils.CheckPasswordHash(in.Password, user.PasswordHash) {
		return "", nil, utils.NewAuthError("Invalid email or password")
	}

	token, err := utils.GenerateJWT(s.jwtSecret, user.ID.Hex(), user.Email, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}
