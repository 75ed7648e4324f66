package hashkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skyward-labs/skykit/pkg/hashkit"
)

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, hashkit.String("visit:1234"), hashkit.String("visit:1234"))
	assert.NotEqual(t, hashkit.String("visit:1234"), hashkit.String("visit:1235"))
	assert.Equal(t, hashkit.String(""), hashkit.String(""))
}

func TestStringBytesAgree(t *testing.T) {
	t.Parallel()

	assert.Equal(t, hashkit.String("detector"), hashkit.Bytes([]byte("detector")))
}

func TestUint64AndFloat64(t *testing.T) {
	t.Parallel()

	assert.Equal(t, hashkit.Uint64(42), hashkit.Uint64(42))
	assert.NotEqual(t, hashkit.Uint64(42), hashkit.Uint64(43))

	assert.Equal(t, hashkit.Float64(1.5), hashkit.Float64(1.5))
	assert.NotEqual(t, hashkit.Float64(1.5), hashkit.Float64(-1.5))
}

func TestCombine(t *testing.T) {
	t.Parallel()

	a := hashkit.String("visit")
	b := hashkit.Uint64(91827)

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, hashkit.Combine(0, a, b), hashkit.Combine(0, a, b))
	})

	t.Run("order sensitive", func(t *testing.T) {
		assert.NotEqual(t, hashkit.Combine(0, a, b), hashkit.Combine(0, b, a))
	})

	t.Run("seed sensitive", func(t *testing.T) {
		assert.NotEqual(t, hashkit.Combine(0, a), hashkit.Combine(1, a))
	})

	t.Run("empty returns seed", func(t *testing.T) {
		assert.Equal(t, uint64(99), hashkit.Combine(99))
	})
}
