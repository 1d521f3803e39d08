package utils

import "github.com/google/uuid"

const userIDPrefix = "user_"

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// GenerateUserID returns a prefixed user identifier, e.g.
// "user_018f1c2e-...". The prefix makes user IDs self-describing in logs
// and foreign-key columns.
func (g *UUIDGenerator) GenerateUserID() string {
	return userIDPrefix + g.Generate()
}
