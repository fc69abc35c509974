package archive

import "github.com/google/uuid"

// idGenerator creates string identifiers for backup manifests.
//
// It prefers UUID v7 (time-ordered) and falls back to a random UUID if v7
// generation fails. A v7 ID sorts roughly by creation time; a fallback
// random ID does not.
type idGenerator struct{}

func newIDGenerator() idGenerator {
	return idGenerator{}
}

func (idGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
