package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/AlexSec-DEV/BlackKeyv2/database"
	"github.com/AlexSec-DEV/BlackKeyv2/middleware"
	"github.com/AlexSec-DEV/BlackKeyv2/models"
	"github.com/AlexSec-DEV/BlackKeyv2/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Username    string `json:"username" validate:"required,username"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,pwdmin"`
	PhoneNumber string `json:"phoneNumber"`
	Country     string `json:"country"`
}

func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	db := database.DB
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	err := db.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error
	if err == nil {
		msg := "Username is already taken"
		if existing.Email == req.Email {
			msg = "Email is already registered"
		}
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: msg})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	user := models.User{
		Username:    req.Username,
		Email:       req.Email,
		Password:    string(hashed),
		Level:       1,
		NextLevelXP: 100,
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Country:     strings.TrimSpace(req.Country),
	}
	if err := db.Create(&user).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create account"})
		return
	}

	token, err := utils.GenerateAccessToken(user.ID, "user")
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Account created, please log in"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Account created",
		Data: map[string]interface{}{
			"access_token": token,
			"user":         user,
		},
	})
}
