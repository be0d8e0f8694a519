package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shamshad-ansari/fitpro-backend/middlewares"
	"github.com/shamshad-ansari/fitpro-backend/services"
	"github.com/shamshad-ansari/fitpro-backend/utils"
)

type ExerciseController struct {
	exercises *services.ExerciseService
}

func NewExerciseController(exercises *services.ExerciseService) *ExerciseController {
	return &ExerciseController{exercises: exercises}
}

func (ec *ExerciseController) Log(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	var input services.ExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	log, err := ec.exercises.Log(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, log, "Exercise logged")
}

func (ec *ExerciseController) List(c *gin.Context) {
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

	logs, err := ec.exercises.List(c.Request.Context(), userID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, logs, "")
}

func (ec *ExerciseController) Last(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	log, err := ec.exercises.Last(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, log, "")
}

func (ec *ExerciseController) Summary(c *gin.Context) {
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

	buckets, err := ec.exercises.DailySummary(c.Request.Context(), userID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, buckets, "")
}
