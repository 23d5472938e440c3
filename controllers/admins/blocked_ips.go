package admins

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/AlexSec-DEV/BlackKeyv2/database"
	"github.com/AlexSec-DEV/BlackKeyv2/middleware"
	"github.com/AlexSec-DEV/BlackKeyv2/models"
	"github.com/AlexSec-DEV/BlackKeyv2/utils"
)

// ListBlockedIPsHandler returns the IP block list, newest first.
func ListBlockedIPsHandler(w http.ResponseWriter, r *http.Request) {
	var blocked []models.BlockedIP
	if err := database.DB.Order("created_at DESC").Find(&blocked).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "OK", Data: blocked})
}

type BlockIPRequest struct {
	IPAddress string `json:"ipAddress" validate:"required"`
	Reason    string `json:"reason"`
}

// BlockIPHandler adds an address to the block list. Takes effect within the
// middleware cache window.
func BlockIPHandler(w http.ResponseWriter, r *http.Request) {
	var req BlockIPRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	ip := strings.TrimSpace(req.IPAddress)
	if net.ParseIP(ip) == nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid IP address"})
		return
	}

	adminID, _ := utils.GetUserID(r)
	blocked := models.BlockedIP{
		IPAddress: ip,
		Reason:    strings.TrimSpace(req.Reason),
		BlockedBy: adminID,
	}
	if err := database.DB.Create(&blocked).Error; err != nil {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "IP is already blocked"})
		return
	}

	middleware.InvalidateIPBlockCache()
	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{Success: true, Message: "IP blocked", Data: blocked})
}

// UnblockIPHandler removes an address from the block list.
func UnblockIPHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid id"})
		return
	}

	res := database.DB.Delete(&models.BlockedIP{}, id)
	if res.Error != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	if res.RowsAffected == 0 {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Blocked IP not found"})
		return
	}

	middleware.InvalidateIPBlockCache()
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "IP unblocked"})
}
