package constants

import (
	"os"
	"strings"
)

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// GetCorsOrigins reads CORS_ORIGINS as a comma-separated list, with
// the same local-dev defaults the frontend expects.
func GetCorsOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		raw = "http://localhost:5173,http://localhost:3000"
	}

	var res []string
	for _, origin := range strings.Split(raw, ",") {
		res = append(res, strings.TrimSpace(origin))
	}
	return res
}
