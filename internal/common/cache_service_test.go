package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedProgress struct {
	MemberID  string `json:"member_id"`
	Step      string `json:"step"`
	Completed bool   `json:"completed"`
}

func TestCacheService_SetGetDelete(t *testing.T) {
	c := NewCacheService(60, 60)

	c.Set("REGISTRATION_1", cachedProgress{MemberID: "1", Step: "payment"}, time.Minute)

	val, found := c.Get("REGISTRATION_1")
	require.True(t, found)
	assert.Equal(t, cachedProgress{MemberID: "1", Step: "payment"}, val)

	c.Delete("REGISTRATION_1")
	_, found = c.Get("REGISTRATION_1")
	assert.False(t, found)
}

func TestCacheService_Expires(t *testing.T) {
	c := NewCacheService(60, 60)

	c.Set("short", "v", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, found := c.Get("short")
	assert.False(t, found)
}

func TestCacheService_NonPositiveTTLUsesDefault(t *testing.T) {
	c := NewCacheService(60, 60)

	c.Set("zero", "v", 0)
	c.Set("negative", "v", -time.Second)

	for _, key := range []string{"zero", "negative"} {
		_, exp, found := c.items.GetWithExpiration(key)
		require.True(t, found, key)
		assert.WithinDuration(t, time.Now().Add(time.Minute), exp, 5*time.Second, key)
	}
}

func TestDecodeCached(t *testing.T) {
	// Redis hands back generic JSON maps.
	generic := map[string]interface{}{"member_id": "7", "step": "confirmation", "completed": true}

	var got cachedProgress
	require.NoError(t, DecodeCached(generic, &got))
	assert.Equal(t, cachedProgress{MemberID: "7", Step: "confirmation", Completed: true}, got)

	// go-cache hands back the stored value itself.
	var same cachedProgress
	require.NoError(t, DecodeCached(got, &same))
	assert.Equal(t, got, same)

	assert.Error(t, DecodeCached(map[string]interface{}{"completed": "yes"}, &got))
}
