package auth_test

import (
	"testing"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHashPassword 测试密码哈希与校验
func TestHashPassword(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, auth.VerifyPassword("secret123", hash))
	assert.False(t, auth.VerifyPassword("wrong", hash))
	assert.False(t, auth.VerifyPassword("secret123", "not-a-hash"))
}

// TestHashPasswordWithCost 测试自定义 bcrypt 代价
func TestHashPasswordWithCost(t *testing.T) {
	hash, err := auth.HashPasswordWithCost("secret123", 4)
	require.NoError(t, err)
	assert.True(t, auth.VerifyPassword("secret123", hash))
}

// TestHashPassword_SaltedUniqueness 测试同一密码两次哈希不同
func TestHashPassword_SaltedUniqueness(t *testing.T) {
	first, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	second, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
