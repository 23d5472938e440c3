package users

import (
	"net/http"

	"github.com/AlexSec-DEV/BlackKeyv2/database"
	"github.com/AlexSec-DEV/BlackKeyv2/models"
	"github.com/AlexSec-DEV/BlackKeyv2/utils"
)

// PublicStatsHandler serves the landing-page counters. These are the
// admin-curated display numbers, not real aggregates.
func PublicStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := models.GetFakeStats(database.DB)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "OK", Data: stats})
}
