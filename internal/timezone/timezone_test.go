package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("America/Sao_Paulo"))
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus_Mons"))
}

func TestLocationFallsBackToDefault(t *testing.T) {
	loc := Location("nonsense")
	assert.Equal(t, DefaultTimezone, loc.String())

	loc = Location("Europe/Lisbon")
	assert.Equal(t, "Europe/Lisbon", loc.String())
}
