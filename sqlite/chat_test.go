package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/litmap"
	"github.com/fwojciec/litmap/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatService_CreateMessage(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewChatService(setupTestDB(t))
		msg := &litmap.ChatMessage{Role: litmap.RoleUser, Text: "Who played here?", LandmarkID: "hr-apollo"}

		require.NoError(t, svc.CreateMessage(context.Background(), msg))
		assert.NotEmpty(t, msg.ID)
		assert.False(t, msg.CreatedAt.IsZero())
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewChatService(setupTestDB(t))
		err := svc.CreateMessage(context.Background(), &litmap.ChatMessage{Role: "system", Text: "x"})
		assert.Equal(t, litmap.EINVALID, litmap.ErrorCode(err))
	})
}

func TestChatService_FindMessages(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) *sqlite.ChatService {
		t.Helper()
		svc := sqlite.NewChatService(setupTestDB(t))
		ctx := context.Background()
		for _, m := range []*litmap.ChatMessage{
			{Role: litmap.RoleUser, Text: "first", LandmarkID: "hr-apollo"},
			{Role: litmap.RoleAssistant, Text: "second", LandmarkID: "hr-apollo", ElapsedMS: 900},
			{Role: litmap.RoleUser, Text: "third", LandmarkID: "cr-montgomery"},
		} {
			require.NoError(t, svc.CreateMessage(ctx, m))
		}
		return svc
	}

	t.Run("returns transcript in order", func(t *testing.T) {
		t.Parallel()

		msgs, err := setup(t).FindMessages(context.Background(), litmap.ChatFilter{})
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		assert.Equal(t, "first", msgs[0].Text)
		assert.Equal(t, "third", msgs[2].Text)
		assert.Equal(t, int64(900), msgs[1].ElapsedMS)
	})

	t.Run("limit keeps most recent", func(t *testing.T) {
		t.Parallel()

		msgs, err := setup(t).FindMessages(context.Background(), litmap.ChatFilter{Limit: 2})
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "second", msgs[0].Text)
		assert.Equal(t, "third", msgs[1].Text)
	})

	t.Run("filters by landmark", func(t *testing.T) {
		t.Parallel()

		id := "hr-apollo"
		msgs, err := setup(t).FindMessages(context.Background(), litmap.ChatFilter{LandmarkID: &id})
		require.NoError(t, err)
		assert.Len(t, msgs, 2)
	})
}

func TestChatService_ClearMessages(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewChatService(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, svc.CreateMessage(ctx, &litmap.ChatMessage{Role: litmap.RoleUser, Text: "hi"}))

	n, err := svc.ClearMessages(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	msgs, err := svc.FindMessages(ctx, litmap.ChatFilter{})
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
