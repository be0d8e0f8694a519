package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shamshad-ansari/fitpro-backend/middlewares"
	"github.com/shamshad-ansari/fitpro-backend/services"
	"github.com/shamshad-ansari/fitpro-backend/utils"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (uc *UserController) GetMe(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	user, err := uc.users.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, user, "")
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := uc.users.UpdateProfile(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, user, "Profile updated")
}

func (uc *UserController) SetGoals(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	var input services.GoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := uc.users.SetGoals(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, user, "Goals updated")
}

func (uc *UserController) SetTargets(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	var input services.TargetsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := uc.users.SetTargets(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, user, "Nutrition targets updated")
}
