package types

import (
	"os"
	"strings"
)

const ContextUserKey = "user"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	ContactWeChat = "wechat"
	ContactPhone  = "phone"
)

var (
	// Default allowed origins for development
	defaultOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}

	AllowedOrigins = initAllowedOrigins()
)

// ReloadAllowedOrigins re-reads CLIENT_URL and ALLOWED_ORIGINS, for use after
// a .env file has been loaded.
func ReloadAllowedOrigins() {
	AllowedOrigins = initAllowedOrigins()
}

func initAllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		for _, origin := range strings.Split(allowedOrigins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
