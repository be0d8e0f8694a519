package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shamshad-ansari/fitpro-backend/middlewares"
	"github.com/shamshad-ansari/fitpro-backend/services"
	"github.com/shamshad-ansari/fitpro-backend/utils"
)

type WorkoutController struct {
	workouts *services.WorkoutService
}

func NewWorkoutController(workouts *services.WorkoutService) *WorkoutController {
	return &WorkoutController{workouts: workouts}
}

// ---------- Routines ----------

func (wc *WorkoutController) CreateRoutine(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	var input services.RoutineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	routine, err := wc.workouts.CreateRoutine(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, routine, "Routine created")
}

func (wc *WorkoutController) ListRoutines(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	includeArchived := c.Query("includeArchived") == "true"

	routines, err := wc.workouts.ListRoutines(c.Request.Context(), userID, includeArchived)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, routines, "")
}

func (wc *WorkoutController) GetRoutine(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	routineID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, utils.NewNotFoundError("Routine not found"))
		return
	}

	routine, err := wc.workouts.GetRoutine(c.Request.Context(), userID, routineID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, routine, "")
}

func (wc *WorkoutController) UpdateRoutine(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	routineID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, utils.NewNotFoundError("Routine not found"))
		return
	}

	var input services.RoutineUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	routine, err := wc.workouts.UpdateRoutine(c.Request.Context(), userID, routineID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, routine, "Routine updated")
}

func (wc *WorkoutController) ArchiveRoutine(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	routineID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, utils.NewNotFoundError("Routine not found"))
		return
	}

	if err := wc.workouts.ArchiveRoutine(c.Request.Context(), userID, routineID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, nil, "Routine archived")
}

// ---------- Sessions ----------

func (wc *WorkoutController) CreateSession(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	var input services.SessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := wc.workouts.CreateSession(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, session, "Workout session saved")
}

func (wc *WorkoutController) ListSessions(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	from, err := parseDateQuery(c, "from")
	if err != nil {
		respondError(c, err)
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		respondError(c, err)
		return
	}

	sessions, err := wc.workouts.ListSessions(c.Request.Context(), userID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, sessions, "")
}

func (wc *WorkoutController) GetSession(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	sessionID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, utils.NewNotFoundError("Session not found"))
		return
	}

	session, err := wc.workouts.GetSession(c.Request.Context(), userID, sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, session, "")
}

func (wc *WorkoutController) DeleteSession(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	sessionID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, utils.NewNotFoundError("Session not found"))
		return
	}

	if err := wc.workouts.DeleteSession(c.Request.Context(), userID, sessionID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, nil, "Session deleted")
}
