package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/database"
	"github.com/stewardhq/steward/pkg/models"
	"github.com/stewardhq/steward/pkg/store"
	testdb "github.com/stewardhq/steward/test/database"
	"github.com/stewardhq/steward/test/util"
)

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	dbClient *database.Client
	logs     *store.LogStore
	sink     *Sink
	manager  *ConnectionManager
	listener *NotifyListener
	server   *httptest.Server
	taskID   string // pre-created Task (satisfies FK on log records)
	channel  string // task:<taskID>
}

// createTaskFixture inserts the template and task rows log records hang off.
func createTaskFixture(t *testing.T, dbClient *database.Client) string {
	t.Helper()
	ctx := context.Background()

	templateID := uuid.New().String()
	_, err := dbClient.TaskTemplate.Create().
		SetID(templateID).
		SetName("integration-" + templateID[:8]).
		SetStages([]models.StageDef{{Name: "implement", AgentRole: "developer", Order: 1}}).
		Save(ctx)
	require.NoError(t, err)

	taskID := uuid.New().String()
	_, err = dbClient.Task.Create().
		SetID(taskID).
		SetTitle("integration test task").
		SetTemplateID(templateID).
		Save(ctx)
	require.NoError(t, err)

	return taskID
}

// newWSServer exposes a ConnectionManager over a websocket httptest server.
func newWSServer(t *testing.T, manager *ConnectionManager) *httptest.Server {
	t.Helper()
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
	return server
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI):
// sink → NotifyBridge → pg_notify → NotifyListener → ConnectionManager.
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	taskID := createTaskFixture(t, dbClient)

	logStore := store.NewLogStore(dbClient.Client)
	bridge := NewNotifyBridge(dbClient.DB())
	sink := NewSink(logStore, bridge, SinkConfig{FlushInterval: 20 * time.Millisecond})
	t.Cleanup(func() { _ = sink.Drain(5 * time.Second) })

	manager := NewConnectionManager(NewLogCatchup(logStore), 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(context.Background()))
	manager.SetListener(listener)
	t.Cleanup(func() { listener.Stop(context.Background()) })

	return &streamingTestEnv{
		dbClient: dbClient,
		logs:     logStore,
		sink:     sink,
		manager:  manager,
		listener: listener,
		server:   newWSServer(t, manager),
		taskID:   taskID,
		channel:  TaskChannel(taskID),
	}
}

// connectWS opens a WebSocket to the test server. The connection is
// automatically closed on test cleanup.
func (env *streamingTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// writeClientMessage sends one ClientMessage to the server.
func writeClientMessage(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the env's channel and reads subscription.confirmed.
// LISTEN completes before the confirmation is sent, so no extra wait is
// needed before publishing.
func (env *streamingTestEnv) subscribeAndWait(t *testing.T) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: env.channel})

	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])
	require.True(t, env.listener.isListening(env.channel))

	return conn
}

// --- Tests ---

func TestIntegration_SinkPersistsAndNotifies(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	// Emit a create; the sink flushes it and broadcasts through pg_notify.
	logID := env.sink.EmitCreate(models.AppendLogRequest{
		TaskID:    env.taskID,
		EventType: "tool_execution",
		Source:    models.LogSourceTool,
		Status:    models.LogStatusRunning,
		Command:   "bash",
		Request:   "go test ./...",
	}, PriorityNormal)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTaskStageLog, msg["type"])
	assert.Equal(t, LogPhaseCreated, msg["phase"])
	assert.Equal(t, env.taskID, msg["task_id"])
	assert.Equal(t, logID, msg["log_id"])
	assert.Equal(t, float64(1), msg["sequence"])
	assert.Equal(t, "bash", msg["command"])
	assert.NotContains(t, msg, "request", "bodies must not ride broadcasts")

	// Patch the record; the broadcast carries only the patched fields.
	status := models.LogStatusSuccess
	summary := "all packages pass"
	var duration int64 = 1500
	env.sink.EmitUpdate(env.taskID, logID, models.StageLogUpdate{
		Status:     &status,
		Summary:    &summary,
		DurationMS: &duration,
	}, PriorityNormal)

	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTaskStageLog, msg["type"])
	assert.Equal(t, LogPhaseUpdated, msg["phase"])
	assert.Equal(t, logID, msg["log_id"])
	assert.Equal(t, "success", msg["status"])
	assert.Equal(t, "all packages pass", msg["summary"])
	assert.NotContains(t, msg, "sequence", "updates carry no sequence")

	// The record is durable with both writes applied.
	logs, total, err := env.logs.List(ctx, env.taskID, models.StageLogFilters{})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, logID, logs[0].ID)
	assert.Equal(t, models.LogStatusSuccess, logs[0].Status)
	assert.Equal(t, "all packages pass", logs[0].Summary)
	assert.Equal(t, "go test ./...", logs[0].Request, "request body is persisted even though it never rides broadcasts")
}

func TestIntegration_TransientEventDelivery(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	// Status changes go straight through the bridge without persistence.
	bridge := NewNotifyBridge(env.dbClient.DB())
	bridge.Broadcast(env.channel, EventTaskStatusChanged, TaskStatusPayload{
		BasePayload: NewBase(env.taskID),
		Status:      models.TaskStatusRunning,
	})

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTaskStatusChanged, msg["type"])
	assert.Equal(t, "running", msg["status"])
	assert.Equal(t, env.taskID, msg["task_id"])

	// Nothing lands in the log table.
	_, total, err := env.logs.List(ctx, env.taskID, models.StageLogFilters{})
	require.NoError(t, err)
	assert.Zero(t, total, "transient events must not be persisted")
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Pre-populate 3 log records through the sink.
	for i := 1; i <= 3; i++ {
		env.sink.EmitCreate(models.AppendLogRequest{
			TaskID:    env.taskID,
			EventType: "llm_turn",
			Source:    models.LogSourceLLM,
			Status:    models.LogStatusSuccess,
			Summary:   "turn summary",
		}, PriorityNormal)
	}
	require.Eventually(t, func() bool {
		_, total, err := env.logs.List(ctx, env.taskID, models.StageLogFilters{})
		return err == nil && total == 3
	}, 5*time.Second, 20*time.Millisecond, "sink should persist all records")

	// Connect a NEW WebSocket client (simulates reconnection).
	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe — auto-catchup replays all 3 records immediately.
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: env.channel})
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	for i := 1; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTaskStageLog, msg["type"])
		assert.Equal(t, LogPhaseCreated, msg["phase"])
		assert.Equal(t, float64(i), msg["sequence"])
	}

	// Explicit catchup after sequence 1 returns only records 2 and 3.
	after := 1
	writeClientMessage(t, conn, ClientMessage{Action: "catchup", Channel: env.channel, AfterSequence: &after})

	for i := 2; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, float64(i), msg["sequence"])
	}

	// No more messages — verify with short timeout.
	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}

func TestIntegration_OversizedEventTruncatedAndRecovered(t *testing.T) {
	env := setupStreamingTest(t)

	conn := env.subscribeAndWait(t)

	// A summary past the NOTIFY payload limit forces the bridge to send
	// the routing envelope instead of the full payload.
	bigSummary := strings.Repeat("x", 9000)
	logID := env.sink.EmitCreate(models.AppendLogRequest{
		TaskID:    env.taskID,
		EventType: "compression",
		Source:    models.LogSourceSystem,
		Status:    models.LogStatusSuccess,
		Summary:   bigSummary,
	}, PriorityNormal)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTaskStageLog, msg["type"])
	assert.Equal(t, env.taskID, msg["task_id"])
	assert.Equal(t, logID, msg["log_id"])
	assert.Equal(t, true, msg["truncated"])
	assert.Equal(t, float64(1), msg["sequence"])
	assert.NotContains(t, msg, "summary", "truncation envelope drops everything but routing fields")

	// Catchup is a direct WebSocket send, not bound by the NOTIFY limit,
	// so the client recovers the full record by sequence.
	after := 0
	writeClientMessage(t, conn, ClientMessage{Action: "catchup", Channel: env.channel, AfterSequence: &after})

	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTaskStageLog, msg["type"])
	assert.Equal(t, logID, msg["log_id"])
	assert.Equal(t, bigSummary, msg["summary"])
}

func TestIntegration_CrossReplicaDelivery(t *testing.T) {
	// Two replicas share one schema: replica A runs the sink that writes
	// and notifies, replica B serves the WebSocket client. Delivery
	// crosses process boundaries through pg_notify.
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	clientB := shared.NewClient(t)

	taskID := createTaskFixture(t, clientA)
	channel := TaskChannel(taskID)

	sinkA := NewSink(store.NewLogStore(clientA.Client), NewNotifyBridge(clientA.DB()),
		SinkConfig{FlushInterval: 20 * time.Millisecond})
	t.Cleanup(func() { _ = sinkA.Drain(5 * time.Second) })

	logStoreB := store.NewLogStore(clientB.Client)
	managerB := NewConnectionManager(NewLogCatchup(logStoreB), 5*time.Second)
	listenerB := NewNotifyListener(util.GetBaseConnectionString(t), managerB)
	require.NoError(t, listenerB.Start(context.Background()))
	managerB.SetListener(listenerB)
	t.Cleanup(func() { listenerB.Stop(context.Background()) })

	serverB := newWSServer(t, managerB)

	// Subscribe on replica B.
	url := "ws" + serverB.URL[len("http"):]
	dialCtx, dialCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer dialCancel()
	conn, _, err := websocket.Dial(dialCtx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Write on replica A; the event reaches B's client.
	logID := sinkA.EmitCreate(models.AppendLogRequest{
		TaskID:    taskID,
		EventType: "stage_start",
		Source:    models.LogSourceSystem,
		Status:    models.LogStatusRunning,
	}, PriorityHigh)

	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTaskStageLog, msg["type"])
	assert.Equal(t, logID, msg["log_id"])
	assert.Equal(t, taskID, msg["task_id"])

	// Replica B reads A's rows for catchup because both pools point at
	// the same schema.
	after := 0
	writeClientMessage(t, conn, ClientMessage{Action: "catchup", Channel: channel, AfterSequence: &after})
	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, logID, msg["log_id"])
	assert.Equal(t, float64(1), msg["sequence"])
}
