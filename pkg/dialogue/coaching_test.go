package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoachingRelatedKeywordHit(t *testing.T) {
	assert.True(t, IsCoachingRelated("my boss keeps piling on deadlines"))
	assert.True(t, IsCoachingRelated("STRESS has been building all month"))
}

func TestCoachingRelatedPersonalQuestion(t *testing.T) {
	assert.True(t, IsCoachingRelated("how do I handle this better"))
}

func TestCoachingRelatedRejectsUnrelated(t *testing.T) {
	assert.False(t, IsCoachingRelated("penguins live in antarctica"))
	assert.False(t, IsCoachingRelated("17 plus 25 equals 42"))
}
