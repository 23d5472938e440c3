package users

import (
	"net/http"

	"github.com/AlexSec-DEV/BlackKeyv2/database"
	"github.com/AlexSec-DEV/BlackKeyv2/models"
	"github.com/AlexSec-DEV/BlackKeyv2/utils"
)

// PaymentInfoHandler returns the active payment destinations shown on the
// deposit screen.
func PaymentInfoHandler(w http.ResponseWriter, r *http.Request) {
	var infos []models.PaymentInfo
	if err := database.DB.Where("is_active = ?", true).Find(&infos).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "OK", Data: infos})
}
