package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	key := GenerateCacheKey("answer", "question", "abc123")
	assert.Equal(t, "bezbot:answer:question:abc123", key)
}

func TestGenerateCacheKeyWithParams(t *testing.T) {
	key := GenerateCacheKey("answer", "question", "abc123", "v2", "en")
	assert.Equal(t, "bezbot:answer:question:abc123:v2_en", key)
}
