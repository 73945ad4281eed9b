package utils

import (
	"brokerage-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateLeadID() string {
	return uuid.NewString()
}
