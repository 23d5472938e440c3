package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/AlexSec-DEV/BlackKeyv2/utils"
)

// LogoutHandler revokes the presented token's jti so it can no longer be
// used, even though it has not expired yet. Without a revocation store the
// logout is client-side only.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}
	tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	_, claims, err := utils.ValidateAccessToken(tokenStr)
	if err != nil {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid token"})
		return
	}

	if jti, ok := claims["jti"].(string); ok && jti != "" {
		ttl := time.Hour
		if expRaw, ok := claims["exp"].(float64); ok {
			if until := time.Until(time.Unix(int64(expRaw), 0)); until > 0 {
				ttl = until
			}
		}
		// best-effort when Redis is not configured
		_ = utils.RevokeJTI(jti, ttl)
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Logged out"})
}
