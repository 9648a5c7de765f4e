package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalProviderAuthenticate(t *testing.T) {
	p := LocalProvider{}

	sess, err := p.Authenticate(context.Background(), "alex", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "alex", sess.User)
	assert.NotEmpty(t, sess.Token)
	assert.False(t, sess.CreatedAt.IsZero())

	// Tokens are minted per sign-in.
	again, err := p.Authenticate(context.Background(), "alex", "hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, sess.Token, again.Token)
}

func TestLocalProviderRejectsEmptyCredentials(t *testing.T) {
	p := LocalProvider{}

	_, err := p.Authenticate(context.Background(), "", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = p.Authenticate(context.Background(), "alex", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionPersistence(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Current()
	assert.ErrorIs(t, err, ErrNotSignedIn)

	sess, err := LocalProvider{}.Authenticate(context.Background(), "alex", "hunter2")
	require.NoError(t, err)
	require.NoError(t, Save(sess))

	current, err := Current()
	require.NoError(t, err)
	assert.Equal(t, sess.User, current.User)
	assert.Equal(t, sess.Token, current.Token)

	require.NoError(t, Clear())
	_, err = Current()
	assert.ErrorIs(t, err, ErrNotSignedIn)

	require.NoError(t, Clear()) // clearing twice is fine
}
