package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

func HashSHA256(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// GenerateObjectName returns a random blob name independent of the client file name.
func GenerateObjectName(extension string) string {
	if extension == "" {
		return uuid.New().String()
	}

	return fmt.Sprintf("%s.%s", uuid.New().String(), extension)
}
