package socket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func startTestServer(t *testing.T) (*Hub, string) {
	t.Helper()
	hub := NewHub()
	go hub.Run()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		NewClient(hub, conn).Start()
	}))
	t.Cleanup(srv.Close)
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, have %d", n, hub.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	t.Parallel()

	hub, url := startTestServer(t)
	c1 := dial(t, url)
	c2 := dial(t, url)
	waitForClients(t, hub, 2)

	hub.Publish("inventory:created", map[string]interface{}{"id": 1})

	for _, conn := range []*websocket.Conn{c1, c2} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var ev Event
		require.NoError(t, conn.ReadJSON(&ev))
		require.Equal(t, "inventory:created", ev.Event)
	}
}

func TestHub_DeliveredExactlyOnce(t *testing.T) {
	t.Parallel()

	hub, url := startTestServer(t)
	conn := dial(t, url)
	waitForClients(t, hub, 1)

	hub.Publish("inventory:deleted", map[string]interface{}{"id": 7})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev Event
	require.NoError(t, conn.ReadJSON(&ev))
	require.Equal(t, "inventory:deleted", ev.Event)

	// Nothing else arrives.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	require.Error(t, conn.ReadJSON(&ev))
}

func TestHub_NoReplayForLateClients(t *testing.T) {
	t.Parallel()

	hub, url := startTestServer(t)
	early := dial(t, url)
	waitForClients(t, hub, 1)

	// Event fires while the late client is disconnected.
	hub.Publish("tool:deleted", map[string]interface{}{"id": 3})

	require.NoError(t, early.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev Event
	require.NoError(t, early.ReadJSON(&ev))

	late := dial(t, url)
	waitForClients(t, hub, 2)
	require.NoError(t, late.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	require.Error(t, late.ReadJSON(&ev), "late client must not see events published before it connected")
}

func TestHub_DisconnectUnregisters(t *testing.T) {
	t.Parallel()

	hub, url := startTestServer(t)
	conn := dial(t, url)
	waitForClients(t, hub, 1)

	require.NoError(t, conn.Close())
	waitForClients(t, hub, 0)

	// Publishing with nobody connected must not block or panic.
	hub.Publish("task:updated", nil)
}
