package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)

	assert.NoError(t, h.Compare(hash, "pw1"))
	assert.ErrorIs(t, h.Compare(hash, "pw2"), ErrPasswordMismatch)
}

func TestPasswordHasher_FreshSaltPerHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, h.Compare(first, "same"))
	assert.NoError(t, h.Compare(second, "same"))
}

func TestPasswordHasher_Cost(t *testing.T) {
	tests := []struct {
		name     string
		cost     int
		wantCost int
	}{
		{name: "explicit", cost: bcrypt.MinCost + 1, wantCost: bcrypt.MinCost + 1},
		{name: "zero falls back", cost: 0, wantCost: bcrypt.DefaultCost},
		{name: "too high falls back", cost: bcrypt.MaxCost + 1, wantCost: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPasswordHasher(tt.cost).(*bcryptHasher)
			assert.Equal(t, tt.wantCost, h.cost)
		})
	}
}

func TestPasswordHasher_TooLong(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	hash, err := h.Hash(strings.Repeat("a", 72))
	require.NoError(t, err)
	assert.ErrorIs(t, h.Compare(hash, strings.Repeat("a", 73)), ErrPasswordMismatch)
}

func TestPasswordHasher_MultibyteOverLimit(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	stored := strings.Repeat("a", 70) + "é" // 72 bytes
	hash, err := h.Hash(stored)
	require.NoError(t, err)
	require.NoError(t, h.Compare(hash, stored))

	// 72 runes but 73 bytes: bcrypt alone would accept it
	assert.ErrorIs(t, h.Compare(hash, stored+"x"), ErrPasswordMismatch)
}

func TestPasswordHasher_CorruptHash(t *testing.T) {
	err := NewPasswordHasher(bcrypt.MinCost).Compare("not-a-bcrypt-hash", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}
