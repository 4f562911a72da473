package auth_test

import (
	"testing"
	"time"

	"github.com/Sarthak-Jamdade/CEP-Review1/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTokenIssuer_IssueAndValidate 测试签发与验证令牌
func TestTokenIssuer_IssueAndValidate(t *testing.T) {
	issuer := auth.NewTokenIssuer("unit-test-secret", time.Hour)

	token, err := issuer.Issue(42, "student@pccoe.com", "STUDENT")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "student@pccoe.com", claims.Email)
	assert.Equal(t, "STUDENT", claims.Role)
}

// TestTokenIssuer_TTLFallback 测试非正 TTL 回退到默认值
func TestTokenIssuer_TTLFallback(t *testing.T) {
	issuer := auth.NewTokenIssuer("unit-test-secret", -time.Minute)

	token, err := issuer.Issue(1, "student@pccoe.com", "STUDENT")
	require.NoError(t, err)

	claims, err := issuer.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
}

// TestTokenIssuer_WrongSecret 测试错误密钥签发的令牌被拒绝
func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret-one", time.Hour)
	other := auth.NewTokenIssuer("secret-two", time.Hour)

	token, err := issuer.Issue(1, "student@pccoe.com", "STUDENT")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

// TestTokenIssuer_GarbageToken 测试非法令牌字符串
func TestTokenIssuer_GarbageToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("unit-test-secret", time.Hour)

	_, err := issuer.ValidateToken("not-a-jwt")
	assert.Error(t, err)

	_, err = issuer.ValidateToken("")
	assert.Error(t, err)
}
