package response

import (
	"time"

	"admin-panel/pkg/utils"
)

type AuthResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	Admin     utils.Identity `json:"admin"`
}

type MeResponse struct {
	Admin utils.Identity `json:"admin"`
}
