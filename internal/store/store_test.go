package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/metforge/steelctl/internal/session"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state", "steelctl.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTemp(t)

	sess := session.Session{
		Token:       "tok-123",
		BranchID:    "5",
		AccountType: session.AccountAdmin,
		Username:    "x",
	}
	require.NoError(t, s.SaveSession(sess))

	got, ok, err := s.LoadSession()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sess, got)

	require.NoError(t, s.ClearSession())
	_, ok, err = s.LoadSession()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadSessionEmpty(t *testing.T) {
	s := openTemp(t)
	_, ok, err := s.LoadSession()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadSessionPurgesHalfWrittenPair(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.SaveSession(session.Session{Token: "tok", Username: "x"}))

	// simulate a crash that lost the session object but kept the token
	require.NoError(t, s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Delete(keyUser)
	}))

	_, ok, err := s.LoadSession()
	require.NoError(t, err)
	assert.False(t, ok)

	// the stray token must be gone too
	err = s.db.View(func(tx *bolt.Tx) error {
		assert.Nil(t, tx.Bucket(bucketSession).Get(keyToken))
		return nil
	})
	require.NoError(t, err)
}

func TestLoadSessionPurgesMismatchedToken(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.SaveSession(session.Session{Token: "tok", Username: "x"}))

	require.NoError(t, s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put(keyToken, []byte("other"))
	}))

	_, ok, err := s.LoadSession()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCartRoundTrip(t *testing.T) {
	s := openTemp(t)

	var out []map[string]interface{}
	ok, err := s.LoadCart(&out)
	require.NoError(t, err)
	assert.False(t, ok)

	in := []map[string]interface{}{
		{"productId": "p1", "quantity": 3.0},
		{"productId": "p2", "quantity": 1.0},
	}
	require.NoError(t, s.SaveCart(in))

	ok, err = s.LoadCart(&out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)

	require.NoError(t, s.ClearCart())
	ok, err = s.LoadCart(&out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheRoundTrip(t *testing.T) {
	s := openTemp(t)

	type branch struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	in := []branch{{ID: "1", Name: "Merkez"}, {ID: "2", Name: "Depo"}}
	require.NoError(t, s.PutCache("branches", in))

	var out []branch
	ok, err := s.GetCache("branches", &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)

	require.NoError(t, s.DeleteCache("branches"))
	ok, err = s.GetCache("branches", &out)
	require.NoError(t, err)
	assert.False(t, ok)
}
