package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Without redis the store must behave as a no-op: nothing is ever revoked
// and Revoke silently succeeds.
func TestStore_NilClient(t *testing.T) {
	t.Parallel()

	s := NewStore(nil)
	ctx := context.Background()

	require.NoError(t, s.Revoke(ctx, "some-jti", time.Hour))
	require.False(t, s.IsRevoked(ctx, "some-jti"))
	require.False(t, s.IsRevoked(ctx, ""))
}
