package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shamshad-ansari/fitpro-backend/config"
	"github.com/shamshad-ansari/fitpro-backend/models"
	"github.com/shamshad-ansari/fitpro-backend/utils"
)

type UserService struct {
	users    *mongo.Collection
	uploader *utils.S3Uploader // nil when avatar upload is not configured
}

func NewUserService(db *mongo.Database, uploader *utils.S3Uploader) *UserService {
	return &UserService{
		users:    db.Collection(config.UsersCollection),
		uploader: uploader,
	}
}

func (s *UserService) Me(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("User not found")
		}
		return nil, err
	}
	return &user, nil
}

type ProfileInput struct {
	Name         *string  `json:"name" binding:"omitempty,min=2"`
	Age          *int     `json:"age" binding:"omitempty,min=1"`
	Gender       *string  `json:"gender"`
	HeightCm     *float64 `json:"heightCm" binding:"omitempty,min=0"`
	WeightKg     *float64 `json:"weightKg" binding:"omitempty,min=0"`
	FitnessLevel *string  `json:"fitnessLevel" binding:"omitempty,oneof=beginner intermediate advanced"`
	AvatarURL    *string  `json:"avatarUrl"`
	// Base64 data-URL image, uploaded to S3 when configured.
	AvatarBase64 string `json:"avatarBase64"`
}

// UpdateProfile applies a partial profile update. Only fields present in
// the request are touched.
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, in ProfileInput) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}

	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Age != nil {
		set["age"] = *in.Age
	}
	if in.Gender != nil {
		set["gender"] = *in.Gender
	}
	if in.HeightCm != nil {
		set["heightCm"] = *in.HeightCm
	}
	if in.WeightKg != nil {
		set["weightKg"] = *in.WeightKg
	}
	if in.FitnessLevel != nil {
		set["fitnessLevel"] = *in.FitnessLevel
	}
	if in.AvatarURL != nil {
		set["avatarUrl"] = *in.AvatarURL
	}

	if in.AvatarBase64 != "" {
		if s.uploader == nil {
			return nil, utils.NewValidationError("Avatar upload is not configured", nil)
		}
		url, err := s.uploader.UploadBase64Image(ctx, in.AvatarBase64, userID.Hex())
		if err != nil {
			return nil, err
		}
		set["avatarUrl"] = url
	}

	return s.findAndUpdate(ctx, userID, bson.M{"$set": set})
}

type GoalsInput struct {
	GoalType       string  `json:"goalType" binding:"required,oneof=weight_loss muscle_gain maintenance"`
	TargetWeightKg float64 `json:"targetWeightKg" binding:"omitempty,min=0"`
	WeeklyWorkouts int     `json:"weeklyWorkouts" binding:"omitempty,min=0"`
}

func (s *UserService) SetGoals(ctx context.Context, userID primitive.ObjectID, in GoalsInput) (*models.User, error) {
	update := bson.M{"$set": bson.M{
		"goals": models.Goal{
			GoalType:       in.GoalType,
			TargetWeightKg: in.TargetWeightKg,
			WeeklyWorkouts: in.WeeklyWorkouts,
		},
		"updatedAt": time.Now().UTC(),
	}}
	return s.findAndUpdate(ctx, userID, update)
}

type TargetsInput struct {
	DailyCalorieTarget *float64 `json:"dailyCalorieTarget" binding:"omitempty,min=0"`
	ProteinG           *float64 `json:"proteinG" binding:"omitempty,min=0"`
	CarbsG             *float64 `json:"carbsG" binding:"omitempty,min=0"`
	FatsG              *float64 `json:"fatsG" binding:"omitempty,min=0"`
}

// SetTargets updates the daily calorie and macro targets consumed by the
// nutrition summary. Anything left unset keeps falling back to the
// defaults at read time.
func (s *UserService) SetTargets(ctx context.Context, userID primitive.ObjectID, in TargetsInput) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if in.DailyCalorieTarget != nil {
		set["dailyCalorieTarget"] = *in.DailyCalorieTarget
	}
	if in.ProteinG != nil {
		set["macroTargets.proteinG"] = *in.ProteinG
	}
	if in.CarbsG != nil {
		set["macroTargets.carbsG"] = *in.CarbsG
	}
	if in.FatsG != nil {
		set["macroTargets.fatsG"] = *in.FatsG
	}
	return s.findAndUpdate(ctx, userID, bson.M{"$set": set})
}

func (s *UserService) findAndUpdate(ctx context.Context, userID primitive.ObjectID, update bson.M) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := s.users.FindOneAndUpdate(ctx, bson.M{"_id": userID}, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("User not found")
		}
		return nil, err
	}
	return &user, nil
}
