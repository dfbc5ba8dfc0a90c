package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUserEmailIndex_EnforcesUniqueEmail(t *testing.T) {
	idx := userEmailIndex()

	keys, ok := idx.Keys.(bson.D)
	require.True(t, ok)
	require.Len(t, keys, 1)
	assert.Equal(t, "email", keys[0].Key)
	assert.Equal(t, 1, keys[0].Value)

	require.NotNil(t, idx.Options)
	require.NotNil(t, idx.Options.Unique)
	assert.True(t, *idx.Options.Unique)
}
