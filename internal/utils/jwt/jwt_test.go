package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Generate(t *testing.T) {
	tests := []struct {
		name      string
		secretKey string
		tokenTTL  time.Duration
		userID    int64
		role      string
	}{
		{
			name:      "User token",
			secretKey: "test-secret-key",
			tokenTTL:  time.Hour,
			userID:    12345,
			role:      RoleUser,
		},
		{
			name:      "Admin token",
			secretKey: "another-secret",
			tokenTTL:  time.Minute * 30,
			userID:    99999,
			role:      RoleAdmin,
		},
		{
			name:      "Empty role defaults to user",
			secretKey: "secret",
			tokenTTL:  time.Hour,
			userID:    7,
			role:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.secretKey, tt.tokenTTL)
			token, err := m.Generate(tt.userID, tt.role)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := m.Validate(token)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, claims.UserID)
			if tt.role == "" {
				assert.Equal(t, RoleUser, claims.Role)
			} else {
				assert.Equal(t, tt.role, claims.Role)
			}
		})
	}
}

func TestManager_Validate(t *testing.T) {
	secretKey := "test-secret-key"
	tokenTTL := time.Hour
	userID := int64(12345)

	t.Run("Valid token", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate(userID, RoleAdmin)
		require.NoError(t, err)

		claims, err := m.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.True(t, claims.IsAdmin())
	})

	t.Run("Invalid token - wrong secret", func(t *testing.T) {
		m1 := NewManager(secretKey, tokenTTL)
		token, err := m1.Generate(userID, RoleUser)
		require.NoError(t, err)

		m2 := NewManager("wrong-secret", tokenTTL)
		_, err = m2.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Invalid token - malformed", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		_, err := m.Validate("invalid.token.string")
		assert.Error(t, err)
	})

	t.Run("Invalid token - empty", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		_, err := m.Validate("")
		assert.Error(t, err)
	})

	t.Run("Invalid token - no user", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate(0, RoleUser)
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		m := NewManager(secretKey, time.Nanosecond)
		token, err := m.Generate(userID, RoleUser)
		require.NoError(t, err)

		time.Sleep(time.Millisecond * 10)

		_, err = m.Validate(token)
		assert.Error(t, err)
	})
}

func TestManager_ValidateWithInvalidSigningMethod(t *testing.T) {
	m := NewManager("secret", time.Hour)

	_, err := m.Validate("eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJ1c2VyX2lkIjoxMjM0NX0.")
	assert.Error(t, err)
}

func BenchmarkManager_Validate(b *testing.B) {
	m := NewManager("test-secret-key", time.Hour)
	token, _ := m.Generate(12345, RoleUser)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Validate(token)
	}
}
