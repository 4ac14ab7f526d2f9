package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetIDParam parses a numeric route parameter such as :client_id.
func GetIDParam(ctx *gin.Context, name, label string) (uint, error) {
	raw := ctx.Param(name)

	if raw == "" {
		return 0, fmt.Errorf("%s ID not found", label)
	}

	id, err := strconv.ParseUint(raw, 10, 32)

	if err != nil || id == 0 {
		return 0, fmt.Errorf("Invalid %s ID", label)
	}

	return uint(id), nil
}

func GetClientID(ctx *gin.Context) (uint, error) {
	return GetIDParam(ctx, "client_id", "Client")
}

func GetSessionID(ctx *gin.Context) (uint, error) {
	return GetIDParam(ctx, "session_id", "Session")
}

func GetDeckID(ctx *gin.Context) (uint, error) {
	return GetIDParam(ctx, "deck_id", "Deck")
}
