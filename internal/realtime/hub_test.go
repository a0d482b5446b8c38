package realtime

import (
	"encoding/json"
	"testing"

	"writeflow-api/internal/models"

	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	messages [][]byte
}

func (f *fakeClient) Send(message []byte) bool {
	f.messages = append(f.messages, message)
	return true
}

func (f *fakeClient) Close() {}

func TestHub_NotifyFansOutOncePerUser(t *testing.T) {
	hub := &Hub{userIDToClients: make(map[string]map[Client]struct{})}

	adminConn := &fakeClient{}
	writerConn := &fakeClient{}
	hub.Register("admin", adminConn)
	hub.Register("sarah-wilson", writerConn)

	hub.Notify([]string{"admin", "sarah-wilson", "sarah-wilson", "offline-user"}, Event{
		Type:    EventTaskStatusChanged,
		TaskID:  "task-3",
		Status:  models.StatusApproved,
		ActorID: "admin",
	})

	require.Len(t, adminConn.messages, 1)
	require.Len(t, writerConn.messages, 1)

	var evt Event
	require.NoError(t, json.Unmarshal(writerConn.messages[0], &evt))
	require.Equal(t, EventTaskStatusChanged, evt.Type)
	require.Equal(t, "task-3", evt.TaskID)
	require.Equal(t, 1, evt.Version)
}

func TestHub_UnregisterStopsDelivery(t *testing.T) {
	hub := &Hub{userIDToClients: make(map[string]map[Client]struct{})}
	conn := &fakeClient{}
	hub.Register("mike-chen", conn)
	hub.Unregister("mike-chen", conn)

	hub.Broadcast("mike-chen", []byte("ping"))
	require.Empty(t, conn.messages)
}
