package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shamshad-ansari/fitpro-backend/config"
	"github.com/shamshad-ansari/fitpro-backend/models"
	"github.com/shamshad-ansari/fitpro-backend/utils"
)

type NutritionService struct {
	meals *mongo.Collection
	users *mongo.Collection
}

func NewNutritionService(db *mongo.Database) *NutritionService {
	return &NutritionService{
		meals: db.Collection(config.MealsCollection),
		users: db.Collection(config.UsersCollection),
	}
}

// MealInput carries the macro fields untyped so malformed values coerce to
// 0 via ParseNum instead of failing the request.
type MealInput struct {
	Date        *time.Time `json:"date"`
	Type        string     `json:"type" binding:"omitempty,oneof=breakfast lunch dinner snack other"`
	Title       string     `json:"title"`
	Time        *time.Time `json:"time"`
	Description string     `json:"description"`
	Calories    any        `json:"calories"`
	ProteinG    any        `json:"proteinG"`
	CarbsG      any        `json:"carbsG"`
	FatsG       any        `json:"fatsG"`
}

// defaultMealTitle falls back to the capitalized meal type when the title
// is blank.
func defaultMealTitle(mealType, title string) string {
	title = strings.TrimSpace(title)
	if title != "" {
		return title
	}
	if mealType == "" {
		mealType = models.MealOther
	}
	return strings.ToUpper(mealType[:1]) + mealType[1:]
}

func (s *NutritionService) CreateMeal(ctx context.Context, userID primitive.ObjectID, in MealInput) (*models.Meal, error) {
	mealType := in.Type
	if mealType == "" {
		mealType = models.MealOther
	}

	date := time.Now().UTC()
	if in.Date != nil {
		date = in.Date.UTC()
	}

	now := time.Now().UTC()
	meal := &models.Meal{
		User:        userID,
		Date:        date,
		Type:        mealType,
		Title:       defaultMealTitle(mealType, in.Title),
		Time:        in.Time,
		Description: in.Description,
		Calories:    utils.ParseNum(in.Calories),
		ProteinG:    utils.ParseNum(in.ProteinG),
		CarbsG:      utils.ParseNum(in.CarbsG),
		FatsG:       utils.ParseNum(in.FatsG),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := s.meals.InsertOne(ctx, meal)
	if err != nil {
		return nil, err
	}
	meal.ID = res.InsertedID.(primitive.ObjectID)
	return meal, nil
}

func (s *NutritionService) ListMeals(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]models.Meal, error) {
	filter := bson.M{"user": userID}
	if dateFilter := rangeFilter(from, to); dateFilter != nil {
		filter["date"] = dateFilter
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "time", Value: -1}})
	cur, err := s.meals.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	meals := []models.Meal{}
	if err := cur.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// UpdateMeal applies a partial update, owner-scoped. A miss — absent or
// foreign — is a 404 either way.
func (s *NutritionService) UpdateMeal(ctx context.Context, userID, mealID primitive.ObjectID, in MealInput) (*models.Meal, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}

	if in.Date != nil {
		set["date"] = in.Date.UTC()
	}
	if in.Type != "" {
		set["type"] = in.Type
	}
	if in.Title != "" {
		set["title"] = in.Title
	}
	if in.Time != nil {
		set["time"] = *in.Time
	}
	if in.Description != "" {
		set["description"] = in.Description
	}
	if in.Calories != nil {
		set["calories"] = utils.ParseNum(in.Calories)
	}
	if in.ProteinG != nil {
		set["proteinG"] = utils.ParseNum(in.ProteinG)
	}
	if in.CarbsG != nil {
		set["carbsG"] = utils.ParseNum(in.CarbsG)
	}
	if in.FatsG != nil {
		set["fatsG"] = utils.ParseNum(in.FatsG)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var meal models.Meal
	err := s.meals.FindOneAndUpdate(ctx,
		bson.M{"_id": mealID, "user": userID},
		bson.M{"$set": set},
		opts,
	).Decode(&meal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("Meal not found")
		}
		return nil, err
	}
	return &meal, nil
}

func (s *NutritionService) DeleteMeal(ctx context.Context, userID, mealID primitive.ObjectID) error {
	res, err := s.meals.DeleteOne(ctx, bson.M{"_id": mealID, "user": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.NewNotFoundError("Meal not found")
	}
	return nil
}

// CalorieSummary is the calories section of the daily summary. Burned is a
// fixed zero: it is not derived from any activity source.
type CalorieSummary struct {
	Eaten     float64 `json:"eaten"`
	Burned    float64 `json:"burned"`
	Goal      float64 `json:"goal"`
	Remaining float64 `json:"remaining"`
}

type MacroSummary struct {
	Grams  float64 `json:"grams"`
	Target float64 `json:"target"`
}

type DailySummary struct {
	Date     string         `json:"date"`
	Calories CalorieSummary `json:"calories"`
	Macros   struct {
		Protein MacroSummary `json:"protein"`
		Carbs   MacroSummary `json:"carbs"`
		Fats    MacroSummary `json:"fats"`
	} `json:"macros"`
}

// GetDailySummary sums the day's meals and joins the user's configured
// targets (defaults when unset). A day with no meals yields eaten=0 and
// remaining=goal.
func (s *NutritionService) GetDailySummary(ctx context.Context, userID primitive.ObjectID, date time.Time) (*DailySummary, error) {
	start, end := utils.DayBounds(date)

	cur, err := s.meals.Find(ctx, bson.M{
		"user": userID,
		"date": bson.M{"$gte": start, "$lte": end},
	})
	if err != nil {
		return nil, err
	}
	meals := []models.Meal{}
	if err := cur.All(ctx, &meals); err != nil {
		return nil, err
	}
	totals := SumMeals(meals)

	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	targets := ResolveTargets(&user)

	eaten := math.Round(totals.Calories)

	out := &DailySummary{
		Date: utils.DayKey(date),
		Calories: CalorieSummary{
			Eaten:     eaten,
			Burned:    0,
			Goal:      targets.Calories,
			Remaining: targets.Calories - eaten,
		},
	}
	out.Macros.Protein = MacroSummary{Grams: math.Round(totals.ProteinG), Target: targets.ProteinG}
	out.Macros.Carbs = MacroSummary{Grams: math.Round(totals.CarbsG), Target: targets.CarbsG}
	out.Macros.Fats = MacroSummary{Grams: math.Round(totals.FatsG), Target: targets.FatsG}

	return out, nil
}
