package utils

import (
	"github.com/google/uuid"
)

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}
