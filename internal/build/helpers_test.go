package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathParamNames(t *testing.T) {
	assert.Equal(t, []string{"id"}, pathParamNames("/users/{id}"))
	assert.Equal(t, []string{"org", "id"}, pathParamNames("/orgs/{org}/users/{id}"))
	assert.Empty(t, pathParamNames("/users"))
}

func TestIsReservedHeader(t *testing.T) {
	reserved := []string{"Accept", "Content-Type"}

	assert.True(t, isReservedHeader("accept", reserved))
	assert.True(t, isReservedHeader("Content-Type", reserved))
	assert.False(t, isReservedHeader("X-Request-Id", reserved))
}

func TestContains(t *testing.T) {
	assert.True(t, contains([]string{"a", "b"}, "b"))
	assert.False(t, contains([]string{"a", "b"}, "c"))
}
