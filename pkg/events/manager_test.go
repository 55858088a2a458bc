package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier implements CatchupQuerier for tests, honoring
// afterSeq and limit the way the real log-backed querier does.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) EventsSince(_ context.Context, _ string, afterSeq, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []CatchupEvent
	for _, evt := range m.events {
		if evt.Sequence > afterSeq {
			out = append(out, evt)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func setupTestManager(t *testing.T, querier CatchupQuerier) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(querier, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func subscribe(t *testing.T, conn *websocket.Conn, channel string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, msg))

	confirm := readJSON(t, conn)
	require.Equal(t, "subscription.confirmed", confirm["type"])
	require.Equal(t, channel, confirm["channel"])
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_Subscribe(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	subscribe(t, conn, TaskChannel("test-123"))

	require.Eventually(t, func() bool {
		return manager.subscriberCount(TaskChannel("test-123")) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, manager.ActiveConnections())
}

func TestConnectionManager_Broadcast(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)

	channel := TaskChannel("broadcast-test")
	subscribe(t, conn1, channel)
	subscribe(t, conn2, channel)

	manager.Broadcast(channel, EventTaskStatusChanged, TaskStatusPayload{
		BasePayload: NewBase("broadcast-test"),
		Status:      "running",
	})

	for _, conn := range []*websocket.Conn{conn1, conn2} {
		msg := readJSON(t, conn)
		assert.Equal(t, EventTaskStatusChanged, msg["type"])
		assert.Equal(t, "broadcast-test", msg["task_id"])
		assert.Equal(t, "running", msg["status"])
	}
}

func TestConnectionManager_PingPong(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pingMsg, _ := json.Marshal(ClientMessage{Action: "ping"})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, pingMsg))

	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_AutoCatchupOnSubscribe(t *testing.T) {
	// Three persisted records exist before the client subscribes; all
	// arrive right after the confirmation without an explicit request.
	events := []CatchupEvent{
		{Sequence: 1, Payload: map[string]any{"type": EventTaskStageLog, "sequence": float64(1)}},
		{Sequence: 2, Payload: map[string]any{"type": EventTaskStageLog, "sequence": float64(2)}},
		{Sequence: 3, Payload: map[string]any{"type": EventTaskStageLog, "sequence": float64(3)}},
	}
	_, server := setupTestManager(t, &mockCatchupQuerier{events: events})

	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribe(t, conn, TaskChannel("catchup-test"))

	for i := 1; i <= 3; i++ {
		msg := readJSON(t, conn)
		assert.Equal(t, float64(i), msg["sequence"])
	}
}

func TestConnectionManager_CatchupAfterSequence(t *testing.T) {
	events := []CatchupEvent{
		{Sequence: 1, Payload: map[string]any{"type": EventTaskStageLog, "sequence": float64(1)}},
		{Sequence: 2, Payload: map[string]any{"type": EventTaskStageLog, "sequence": float64(2)}},
		{Sequence: 3, Payload: map[string]any{"type": EventTaskStageLog, "sequence": float64(3)}},
	}
	_, server := setupTestManager(t, &mockCatchupQuerier{events: events})

	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := TaskChannel("catchup-test")
	subscribe(t, conn, channel)
	for i := 0; i < 3; i++ {
		readJSON(t, conn) // auto-catchup replay
	}

	// Explicit catchup from sequence 2 returns only the newer record.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	after := 2
	catchupMsg, _ := json.Marshal(ClientMessage{Action: "catchup", Channel: channel, AfterSequence: &after})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, catchupMsg))

	msg := readJSON(t, conn)
	assert.Equal(t, float64(3), msg["sequence"])

	// Nothing further.
	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err)
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	manyEvents := make([]CatchupEvent, catchupLimit+5)
	for i := range manyEvents {
		manyEvents[i] = CatchupEvent{
			Sequence: i + 1,
			Payload:  map[string]any{"type": EventTaskStageLog, "sequence": float64(i + 1)},
		}
	}
	_, server := setupTestManager(t, &mockCatchupQuerier{events: manyEvents})

	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribe(t, conn, TaskChannel("overflow-test"))

	// Auto-catchup delivers up to the limit, then signals overflow.
	var overflowReceived bool
	for i := 0; i < catchupLimit+5; i++ {
		msg := readJSON(t, conn)
		if msg["type"] == "catchup.overflow" {
			overflowReceived = true
			assert.Equal(t, true, msg["has_more"])
			break
		}
	}
	assert.True(t, overflowReceived, "expected catchup.overflow message")
}

func TestConnectionManager_CatchupError(t *testing.T) {
	// A failing catchup query is logged, not fatal: the connection
	// stays usable.
	_, server := setupTestManager(t, &mockCatchupQuerier{err: fmt.Errorf("database unreachable")})

	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribe(t, conn, TaskChannel("err-test"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pingMsg, _ := json.Marshal(ClientMessage{Action: "ping"})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, pingMsg))
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_ConcurrentBroadcast(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := TaskChannel("concurrent-test")
	subscribe(t, conn, channel)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			manager.Broadcast(channel, EventTaskLogStream, LogStreamPayload{
				BasePayload: NewBase("concurrent-test"),
				LogID:       fmt.Sprintf("log-%d", idx),
				Delta:       "x",
			})
		}(i)
	}
	wg.Wait()

	received := 0
	var firstErr error
	for i := 0; i < 20; i++ {
		readCtx, readCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _, err := conn.Read(readCtx)
		readCancel()
		if err != nil {
			firstErr = err
			break
		}
		received++
	}
	assert.Equal(t, 20, received, "should receive all 20 broadcast messages; first error: %v", firstErr)
}

func TestConnectionManager_BroadcastToNonExistentChannel(t *testing.T) {
	manager, _ := setupTestManager(t, &mockCatchupQuerier{})

	assert.NotPanics(t, func() {
		manager.Broadcast(TaskChannel("nobody-listening"), EventTaskStatusChanged, TaskStatusPayload{})
	})
}

func TestConnectionManager_MultipleChannels(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribe(t, conn, TaskChannel("ch1"))
	subscribe(t, conn, TaskChannel("ch2"))

	manager.Broadcast(TaskChannel("ch1"), EventTaskStatusChanged, TaskStatusPayload{BasePayload: NewBase("ch1")})
	msg := readJSON(t, conn)
	assert.Equal(t, "ch1", msg["task_id"])

	manager.Broadcast(TaskChannel("ch2"), EventTaskStatusChanged, TaskStatusPayload{BasePayload: NewBase("ch2")})
	msg2 := readJSON(t, conn)
	assert.Equal(t, "ch2", msg2["task_id"])
}

func TestConnectionManager_Unsubscribe(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := TaskChannel("unsub-test")
	subscribe(t, conn, channel)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	unsubMsg, _ := json.Marshal(ClientMessage{Action: "unsubscribe", Channel: channel})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, unsubMsg))

	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 0
	}, 2*time.Second, 10*time.Millisecond)

	manager.Broadcast(channel, EventTaskStatusChanged, TaskStatusPayload{BasePayload: NewBase("unsub-test")})

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive message after unsubscribe")
}

func TestConnectionManager_BroadcastIsolation(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)

	subscribe(t, conn1, TaskChannel("ch1"))
	subscribe(t, conn2, TaskChannel("ch2"))

	manager.Broadcast(TaskChannel("ch1"), EventTaskStatusChanged, TaskStatusPayload{BasePayload: NewBase("ch1")})

	msg := readJSON(t, conn1)
	assert.Equal(t, "ch1", msg["task_id"])

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn2.Read(readCtx)
	assert.Error(t, err, "conn2 should not receive ch1 broadcast")
}

func TestConnectionManager_EmptyChannelValidation(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	after := 0
	for _, action := range []ClientMessage{
		{Action: "subscribe", Channel: ""},
		{Action: "unsubscribe", Channel: ""},
		{Action: "catchup", Channel: "", AfterSequence: &after},
	} {
		raw, _ := json.Marshal(action)
		require.NoError(t, conn.Write(ctx, websocket.MessageText, raw))
		msg := readJSON(t, conn)
		assert.Equal(t, "error", msg["type"])
		assert.Contains(t, msg["message"], "channel is required")
	}

	// Connection survives validation errors.
	pingMsg, _ := json.Marshal(ClientMessage{Action: "ping"})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, pingMsg))
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_SetListener(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 5*time.Second)
	assert.Nil(t, manager.listener)

	listener := NewNotifyListener("host=localhost", manager)
	manager.SetListener(listener)

	manager.listenerMu.RLock()
	assert.Equal(t, listener, manager.listener)
	manager.listenerMu.RUnlock()
}

func TestConnectionManager_CleanupOnDisconnect(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})

	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)

	_, _, err = conn.Read(ctx) // connection.established
	require.NoError(t, err)

	channel := TaskChannel("cleanup-test")
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, subMsg))
	_, _, err = conn.Read(ctx) // subscription.confirmed
	require.NoError(t, err)

	assert.Equal(t, 1, manager.ActiveConnections())

	conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0 && manager.subscriberCount(channel) == 0
	}, 2*time.Second, 10*time.Millisecond)

	assert.NotPanics(t, func() {
		manager.Broadcast(channel, EventTaskStatusChanged, TaskStatusPayload{})
	})
}
