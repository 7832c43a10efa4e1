package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIsValidPropertyCode(t *testing.T) {
	assert.True(t, IsValidPropertyCode("EGB-1000"))
	assert.True(t, IsValidPropertyCode(FormatPropertyCode(1234)))
	assert.False(t, IsValidPropertyCode("EGB-999"))
	assert.False(t, IsValidPropertyCode("PROP1000"))
	assert.False(t, IsValidPropertyCode("EGB-abc"))
}

func TestIsValidObjectID(t *testing.T) {
	assert.True(t, IsValidObjectID(primitive.NewObjectID().Hex()))
	assert.False(t, IsValidObjectID("nice-house"))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
