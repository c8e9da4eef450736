package utils

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64Image(t *testing.T) {
	t.Parallel()

	u := New()
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	encoded := base64.StdEncoding.EncodeToString(payload)

	t.Run("bare base64", func(t *testing.T) {
		t.Parallel()

		decoded, err := u.DecodeBase64Image(encoded)
		require.NoError(t, err)
		assert.Equal(t, payload, decoded)
	})

	t.Run("data URL prefix", func(t *testing.T) {
		t.Parallel()

		decoded, err := u.DecodeBase64Image("data:image/jpeg;base64," + encoded)
		require.NoError(t, err)
		assert.Equal(t, payload, decoded)
	})

	t.Run("empty payload", func(t *testing.T) {
		t.Parallel()

		_, err := u.DecodeBase64Image("")
		assert.Error(t, err)
	})

	t.Run("invalid base64", func(t *testing.T) {
		t.Parallel()

		_, err := u.DecodeBase64Image("not base64 at all!!!")
		assert.Error(t, err)
	})
}

func TestNewULIDFromTimestamp(t *testing.T) {
	t.Parallel()

	u := New()

	first, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.Len(t, first, 26)

	second, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
