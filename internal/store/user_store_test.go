package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_NeverStoresPlaintext(t *testing.T) {
	users := NewUserStore(setupDB(t))

	user, err := users.Register("Alice", "CS101", "CSE", "alice@x.com", "secret1")
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	stored, err := users.FindByEmail("alice@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.Password)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.True(t, users.VerifyPassword(stored, "secret1"))
	assert.False(t, users.VerifyPassword(stored, "secret2"))
}

func TestRegister_LowercasesEmail(t *testing.T) {
	users := NewUserStore(setupDB(t))

	_, err := users.Register("Alice", "CS101", "CSE", "Alice@X.com", "secret1")
	require.NoError(t, err)

	stored, err := users.FindByEmail("ALICE@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", stored.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := NewUserStore(setupDB(t))

	_, err := users.Register("Alice", "CS101", "CSE", "alice@x.com", "secret1")
	require.NoError(t, err)

	_, err = users.Register("Mallory", "CS102", "ECE", "alice@x.com", "other")
	require.ErrorIs(t, err, ErrDuplicateEmail)

	// first record is unchanged
	stored, err := users.FindByEmail("alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", stored.Name)
	assert.Equal(t, "CS101", stored.RollNo)
}

func TestFindByEmail_NotFound(t *testing.T) {
	users := NewUserStore(setupDB(t))

	_, err := users.FindByEmail("nobody@x.com")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFindByID(t *testing.T) {
	users := NewUserStore(setupDB(t))

	user, err := users.Register("Alice", "CS101", "CSE", "alice@x.com", "secret1")
	require.NoError(t, err)

	stored, err := users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", stored.Email)

	_, err = users.FindByID(user.ID + 100)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAuthenticate(t *testing.T) {
	users := NewUserStore(setupDB(t))

	_, err := users.Register("Alice", "CS101", "CSE", "alice@x.com", "secret1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"correct credentials", "alice@x.com", "secret1", nil},
		{"wrong password", "alice@x.com", "secret2", ErrInvalidCredentials},
		{"unknown email", "bob@x.com", "secret1", ErrInvalidCredentials},
		{"unknown email with empty password", "bob@x.com", "", ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := users.Authenticate(tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Alice", user.Name)
			}
		})
	}
}
