package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/pkg/models"
)

// Sink defaults, used when SinkConfig fields are zero.
const (
	defaultQueueSize     = 1024
	defaultBatchSize     = 50
	defaultFlushInterval = 200 * time.Millisecond
)

// LogWriter is the store surface the sink persists through.
// *store.LogStore implements it.
type LogWriter interface {
	AppendBatch(ctx context.Context, reqs []models.AppendLogRequest) ([]*models.StageLog, error)
	ApplyUpdates(ctx context.Context, updates map[string]models.StageLogUpdate) ([]string, error)
	ForgetTask(taskID string)
}

// SinkConfig tunes the sink's queue and flush cadence.
type SinkConfig struct {
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
}

// sinkOp is one queued operation: a create or an update, never both.
type sinkOp struct {
	create *models.AppendLogRequest

	taskID string
	logID  string
	update *models.StageLogUpdate
}

// Sink is the engine's write path for task log records: a bounded
// queue drained by one background worker that persists in batches and
// broadcasts each persisted record as task:stage_log.
//
// Ordering: per task, records are appended in emit order, and an
// update emitted after its create flushes after it because both flow
// through the same queue. Callers must not emit an update for a log id
// they did not obtain from EmitCreate.
//
// Failures degrade to logging. A failed create batch is dropped as a
// whole; updates are applied per record, so one bad patch drops only
// itself. The worker keeps running either way.
type Sink struct {
	logs LogWriter
	bc   Broadcaster

	ops           chan sinkOp
	batchSize     int
	flushInterval time.Duration

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}

	dropped atomic.Int64
}

// NewSink creates a sink and starts its worker. bc may be nil when
// broadcasting is disabled. Call Drain on shutdown.
func NewSink(logs LogWriter, bc Broadcaster, cfg SinkConfig) *Sink {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}
	if bc == nil {
		bc = NopBroadcaster{}
	}

	s := &Sink{
		logs:          logs,
		bc:            bc,
		ops:           make(chan sinkOp, cfg.QueueSize),
		batchSize:     cfg.BatchSize,
		flushInterval: cfg.FlushInterval,
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
	}
	go s.run()
	return s
}

// EmitCreate enqueues a log record and returns its id immediately. The
// id is synthesized here when the request carries none, so callers can
// emit updates against it before the record is persisted.
func (s *Sink) EmitCreate(req models.AppendLogRequest, priority Priority) string {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	s.enqueue(sinkOp{create: &req}, priority)
	return req.ID
}

// EmitUpdate enqueues a patch for a previously emitted record. The
// task id rides along for the broadcast after flush.
func (s *Sink) EmitUpdate(taskID, logID string, upd models.StageLogUpdate, priority Priority) {
	s.enqueue(sinkOp{taskID: taskID, logID: logID, update: &upd}, priority)
}

// enqueue places an op on the queue honoring the priority contract:
// low is dropped when the queue is full, high and normal block until
// capacity frees or the sink starts draining.
func (s *Sink) enqueue(op sinkOp, priority Priority) {
	if priority == PriorityLow {
		select {
		case s.ops <- op:
		default:
			n := s.dropped.Add(1)
			slog.Warn("Event sink queue full, dropping low-priority op",
				"dropped_total", n)
		}
		return
	}

	select {
	case <-s.stopCh:
		slog.Warn("Event sink draining, dropping op")
		return
	default:
	}

	select {
	case s.ops <- op:
	case <-s.stopCh:
		slog.Warn("Event sink draining, dropping op")
	}
}

// Drain stops intake, flushes everything queued and waits for the
// worker to exit, up to timeout. Safe to call more than once.
func (s *Sink) Drain(timeout time.Duration) error {
	s.stopOnce.Do(func() { close(s.stopCh) })

	select {
	case <-s.doneCh:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("event sink drain timed out after %s", timeout)
	}
}

// ForgetTask releases per-task state held for a finished task.
func (s *Sink) ForgetTask(taskID string) {
	s.logs.ForgetTask(taskID)
}

// QueueDepth returns the number of queued, unflushed ops.
func (s *Sink) QueueDepth() int {
	return len(s.ops)
}

// Dropped returns how many low-priority ops were dropped on overflow.
func (s *Sink) Dropped() int64 {
	return s.dropped.Load()
}

// run is the worker loop: collect ops until the batch fills or the
// flush interval elapses, then flush. On stop, drain the queue fully
// before exiting.
func (s *Sink) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.flushInterval)
	defer ticker.Stop()

	batch := make([]sinkOp, 0, s.batchSize)
	for {
		select {
		case op := <-s.ops:
			batch = append(batch, op)
			if len(batch) >= s.batchSize {
				s.flush(batch)
				batch = batch[:0]
			}

		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(batch)
				batch = batch[:0]
			}

		case <-s.stopCh:
			for {
				select {
				case op := <-s.ops:
					batch = append(batch, op)
					if len(batch) >= s.batchSize {
						s.flush(batch)
						batch = batch[:0]
					}
				default:
					if len(batch) > 0 {
						s.flush(batch)
					}
					return
				}
			}
		}
	}
}

// flush persists one batch: creates first, grouped per task into a
// single transaction each, then updates. Creates go first so an update
// whose create sits in the same batch lands after it. Each persisted
// record is broadcast on its task channel.
func (s *Sink) flush(batch []sinkOp) {
	// The store applies its own write timeouts.
	ctx := context.Background()

	var taskOrder []string
	creates := make(map[string][]models.AppendLogRequest)
	for _, op := range batch {
		if op.create == nil {
			continue
		}
		if _, ok := creates[op.create.TaskID]; !ok {
			taskOrder = append(taskOrder, op.create.TaskID)
		}
		creates[op.create.TaskID] = append(creates[op.create.TaskID], *op.create)
	}
	for _, taskID := range taskOrder {
		reqs := creates[taskID]
		logs, err := s.logs.AppendBatch(ctx, reqs)
		if err != nil {
			slog.Error("Failed to flush log creates",
				"task_id", taskID, "count", len(reqs), "error", err)
			continue
		}
		for _, lg := range logs {
			s.bc.Broadcast(TaskChannel(lg.TaskID), EventTaskStageLog, StageLogCreated(lg))
		}
	}

	// Later patches win field-wise when one record is updated twice in
	// a batch.
	updates := make(map[string]models.StageLogUpdate)
	updateTask := make(map[string]string)
	for _, op := range batch {
		if op.update == nil {
			continue
		}
		updateTask[op.logID] = op.taskID
		if prev, ok := updates[op.logID]; ok {
			updates[op.logID] = mergeLogUpdate(prev, *op.update)
		} else {
			updates[op.logID] = *op.update
		}
	}
	if len(updates) > 0 {
		applied, err := s.logs.ApplyUpdates(ctx, updates)
		if err != nil {
			slog.Error("Failed to flush some log updates",
				"failed", len(updates)-len(applied), "applied", len(applied), "error", err)
		}
		for _, logID := range applied {
			taskID := updateTask[logID]
			s.bc.Broadcast(TaskChannel(taskID), EventTaskStageLog, StageLogUpdated(taskID, logID, updates[logID]))
		}
	}
}

// mergeLogUpdate overlays src on dst: non-nil src fields win.
func mergeLogUpdate(dst, src models.StageLogUpdate) models.StageLogUpdate {
	if src.Status != nil {
		dst.Status = src.Status
	}
	if src.Response != nil {
		dst.Response = src.Response
	}
	if src.Result != nil {
		dst.Result = src.Result
	}
	if src.Summary != nil {
		dst.Summary = src.Summary
	}
	if src.DurationMS != nil {
		dst.DurationMS = src.DurationMS
	}
	return dst
}
