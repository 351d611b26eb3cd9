package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairKey_Canonical(t *testing.T) {
	// (a,b) и (b,a) дают один и тот же ключ
	assert.Equal(t, PairKey("user-a", "user-b"), PairKey("user-b", "user-a"))
	assert.Equal(t, "user-a:user-b", PairKey("user-b", "user-a"))
	assert.NotEqual(t, PairKey("user-a", "user-b"), PairKey("user-a", "user-c"))
}

func TestDialog_Participants(t *testing.T) {
	d := &Dialog{UserOneID: "user-a", UserTwoID: "user-b"}

	assert.True(t, d.HasParticipant("user-a"))
	assert.True(t, d.HasParticipant("user-b"))
	assert.False(t, d.HasParticipant("user-c"))

	assert.Equal(t, "user-b", d.CompanionID("user-a"))
	assert.Equal(t, "user-a", d.CompanionID("user-b"))
}
