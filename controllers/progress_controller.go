package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shamshad-ansari/fitpro-backend/middlewares"
	"github.com/shamshad-ansari/fitpro-backend/services"
	"github.com/shamshad-ansari/fitpro-backend/utils"
)

type ProgressController struct {
	progress *services.ProgressService
}

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{progress: progress}
}

func (pc *ProgressController) Upsert(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	var input services.ProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	doc, err := pc.progress.Upsert(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, doc, "Progress saved")
}

func (pc *ProgressController) List(c *gin.Context) {
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

	items, err := pc.progress.List(c.Request.Context(), userID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, items, "")
}

func (pc *ProgressController) Streak(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	streak, err := pc.progress.CurrentStreak(c.Request.Context(), userID, time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"streakDays": streak}, "")
}
