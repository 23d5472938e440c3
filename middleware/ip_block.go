package middleware

import (
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/AlexSec-DEV/BlackKeyv2/database"
	"github.com/AlexSec-DEV/BlackKeyv2/models"
	"github.com/AlexSec-DEV/BlackKeyv2/utils"
)

// IPBlockMiddleware rejects requests from addresses present in the
// blocked_ips table. Lookups are cached briefly so every request does not
// hit the database.

var (
	ipBlockMu      sync.Mutex
	ipBlockCache   = make(map[string]bool)
	ipBlockExpires time.Time
)

const ipBlockCacheTTL = 30 * time.Second

func blockedIPSet() map[string]bool {
	ipBlockMu.Lock()
	defer ipBlockMu.Unlock()
	if time.Now().Before(ipBlockExpires) {
		return ipBlockCache
	}
	var rows []models.BlockedIP
	if err := database.DB.Find(&rows).Error; err != nil {
		// keep serving the stale set on DB errors
		return ipBlockCache
	}
	set := make(map[string]bool, len(rows))
	for _, b := range rows {
		set[b.IPAddress] = true
	}
	ipBlockCache = set
	ipBlockExpires = time.Now().Add(ipBlockCacheTTL)
	return ipBlockCache
}

// InvalidateIPBlockCache forces the next request to reload the block list.
func InvalidateIPBlockCache() {
	ipBlockMu.Lock()
	defer ipBlockMu.Unlock()
	ipBlockExpires = time.Time{}
}

func IPBlockMiddleware(next http.Handler) http.Handler {
	var trustedCIDR []string
	if v := os.Getenv("TRUSTED_PROXIES"); v != "" {
		trustedCIDR = strings.Split(v, ",")
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIPGeneric(r, trustedCIDR)
		if blockedIPSet()[ip] {
			utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{
				Success: false,
				Message: "Access denied",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
