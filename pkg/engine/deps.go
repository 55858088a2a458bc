package engine

import (
	"context"
	"time"

	"github.com/stewardhq/steward/pkg/compress"
	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/executor"
	"github.com/stewardhq/steward/pkg/llm"
	"github.com/stewardhq/steward/pkg/memory"
	"github.com/stewardhq/steward/pkg/models"
	"github.com/stewardhq/steward/pkg/workspace"
)

// TaskStore is the engine's view of the task queue.
type TaskStore interface {
	ClaimOldestPending(ctx context.Context, workerID string) (*models.Task, error)
	Get(ctx context.Context, taskID string) (*models.Task, error)
	UpdateStatus(ctx context.Context, taskID string, to models.TaskStatus, errMsg string, from ...models.TaskStatus) error
	Heartbeat(ctx context.Context, taskID, workerID string) error
	FindStale(ctx context.Context, olderThan time.Duration) ([]*models.Task, error)
	Requeue(ctx context.Context, taskID string) error
	RecoverStale(ctx context.Context) (int, error)
	AddUsage(ctx context.Context, taskID string, tokens int, cost float64) (*models.Task, error)
	SetPlan(ctx context.Context, taskID, plan string) error
	AppendRoutingDecision(ctx context.Context, taskID string, decision models.RoutingDecision) error
	SetBranchName(ctx context.Context, taskID, branch string) error
	SetPRURL(ctx context.Context, taskID, url string) error
	CountActive(ctx context.Context) (int, error)
}

// StageStore persists per-stage execution state.
type StageStore interface {
	ListByTask(ctx context.Context, taskID string) ([]*models.Stage, error)
	BeginExecution(ctx context.Context, stageID string) (*models.Stage, error)
	Complete(ctx context.Context, stageID string, result models.StageCompletion) error
	Fail(ctx context.Context, stageID string, failure models.StageFailure) error
	Skip(ctx context.Context, stageID string) error
	ResetToPending(ctx context.Context, stageID string) error
	IncrementRetry(ctx context.Context, stageID string) (int, error)
}

// GateStore creates and polls human gates.
type GateStore interface {
	Create(ctx context.Context, req models.CreateGateRequest) (*models.Gate, error)
	Get(ctx context.Context, gateID string) (*models.Gate, error)
}

// BreakerStore records tripped circuit breakers.
type BreakerStore interface {
	Trip(ctx context.Context, taskID string, level int, triggeredBy, reason string) (*models.BreakerRecord, error)
}

// AuditStore records engine actions.
type AuditStore interface {
	Record(ctx context.Context, entry models.AuditEntry) error
}

// KPIStore records per-task metric samples.
type KPIStore interface {
	RecordBatch(ctx context.Context, records []models.KPIRecord) error
}

// SkillStore records gate-rejection lessons against agent roles.
type SkillStore interface {
	Record(ctx context.Context, entry models.SkillFeedbackEntry) (*models.SkillFeedbackEntry, error)
}

// Stores bundles the persistence surfaces the engine drives. The
// concrete pkg/store types satisfy every interface.
type Stores struct {
	Tasks    TaskStore
	Stages   StageStore
	Gates    GateStore
	Breakers BreakerStore
	Audits   AuditStore
	KPIs     KPIStore
	Skills   SkillStore
}

// Workspaces is the task isolation lifecycle. *workspace.Manager
// implements it.
type Workspaces interface {
	Setup(ctx context.Context, task *models.Task, project *models.Project) (*workspace.Workspace, error)
	CommitAndPush(ctx context.Context, ws *workspace.Workspace, message string) (bool, error)
	CreatePR(ctx context.Context, ws *workspace.Workspace, title, body string) (string, error)
	Cleanup(ctx context.Context, task *models.Task, ws *workspace.Workspace) error
	PruneStaleWorktrees(ctx context.Context) error
}

// LogEmitter is the sink surface engine lifecycle events go through.
// *events.Sink implements it.
type LogEmitter interface {
	EmitCreate(req models.AppendLogRequest, priority events.Priority) string
	EmitUpdate(taskID, logID string, upd models.StageLogUpdate, priority events.Priority)
}

// Compressor produces the three compression levels of a stage output.
type Compressor interface {
	Compress(ctx context.Context, stageName, text string) compress.Levels
}

// ContractExtractor turns raw stage output into a structured contract.
type ContractExtractor interface {
	Extract(ctx context.Context, kind models.StageKind, text string) *models.StructuredOutput
}

// MemoryStore is the per-project knowledge surface injected into
// prompts and appended to on gate rejections.
type MemoryStore interface {
	PromptBlock(projectID string) (string, error)
	Append(projectID string, bucket models.MemoryBucket, entries ...models.MemoryEntry) error
}

// LessonExtractor distills project knowledge from finished tasks and
// rejection comments. *memory.Extractor implements it.
type LessonExtractor interface {
	ExtractFromTask(ctx context.Context, task *models.Task, digests []memory.StageDigest)
	RejectionLesson(ctx context.Context, task *models.Task, stageName, comment string) models.MemoryEntry
}

// Notifier delivers terminal task outcomes.
type Notifier interface {
	TaskFinished(ctx context.Context, task *models.Task)
}

// Executors picks the executor for a stage: in-process against the LLM
// service, or delegated to the task's sandbox agent server.
type Executors interface {
	InProcess() executor.Executor
	Sandboxed(baseURL string) executor.Executor
}

// LLMExecutors is the production Executors implementation.
type LLMExecutors struct {
	inproc *executor.InProcess
}

// NewLLMExecutors builds executors over the given LLM client.
func NewLLMExecutors(client llm.Client) *LLMExecutors {
	return &LLMExecutors{inproc: executor.NewInProcess(client)}
}

// InProcess returns the shared in-process executor.
func (e *LLMExecutors) InProcess() executor.Executor { return e.inproc }

// Sandboxed returns an executor delegating to the sandbox agent server.
func (e *LLMExecutors) Sandboxed(baseURL string) executor.Executor {
	return executor.NewSandbox(baseURL)
}
