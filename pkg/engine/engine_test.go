package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/pkg/compress"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/executor"
	"github.com/stewardhq/steward/pkg/memory"
	"github.com/stewardhq/steward/pkg/models"
	"github.com/stewardhq/steward/pkg/store"
	"github.com/stewardhq/steward/pkg/workspace"
)

// ---- store fakes -----------------------------------------------------

type fakeTasks struct {
	mu       sync.Mutex
	task     *models.Task
	queue    []*models.Task
	statuses []models.TaskStatus
	active   int
}

func (f *fakeTasks) ClaimOldestPending(_ context.Context, workerID string) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queue) == 0 {
		return nil, store.ErrNoTasksAvailable
	}
	t := f.queue[0]
	f.queue = f.queue[1:]
	t.Status = models.TaskStatusClaimed
	t.ClaimedBy = workerID
	f.task = t
	return t, nil
}

func (f *fakeTasks) Get(context.Context, string) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *f.task
	return &cp, nil
}

func (f *fakeTasks) UpdateStatus(_ context.Context, _ string, to models.TaskStatus, errMsg string, from ...models.TaskStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(from) > 0 {
		ok := false
		for _, s := range from {
			if f.task.Status == s {
				ok = true
				break
			}
		}
		if !ok {
			return store.ErrConcurrentModification
		}
	}
	f.task.Status = to
	if errMsg != "" {
		f.task.Error = errMsg
	}
	f.statuses = append(f.statuses, to)
	return nil
}

func (f *fakeTasks) Heartbeat(context.Context, string, string) error { return nil }

func (f *fakeTasks) FindStale(context.Context, time.Duration) ([]*models.Task, error) {
	return nil, nil
}

func (f *fakeTasks) Requeue(context.Context, string) error    { return nil }
func (f *fakeTasks) RecoverStale(context.Context) (int, error) { return 0, nil }

func (f *fakeTasks) AddUsage(_ context.Context, _ string, tokens int, cost float64) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.task.TotalTokens += tokens
	f.task.TotalCost += cost
	cp := *f.task
	return &cp, nil
}

func (f *fakeTasks) SetPlan(_ context.Context, _ string, plan string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.task.Plan = plan
	return nil
}

func (f *fakeTasks) AppendRoutingDecision(_ context.Context, _ string, d models.RoutingDecision) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.task.RoutingDecisions = append(f.task.RoutingDecisions, d)
	return nil
}

func (f *fakeTasks) SetBranchName(_ context.Context, _ string, branch string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.task.BranchName = branch
	return nil
}

func (f *fakeTasks) SetPRURL(_ context.Context, _ string, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.task.PRURL = url
	return nil
}

func (f *fakeTasks) CountActive(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active, nil
}

func (f *fakeTasks) statusTrail() []models.TaskStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.TaskStatus(nil), f.statuses...)
}

func (f *fakeTasks) current() models.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.task
}

type fakeStages struct {
	mu     sync.Mutex
	byID   map[string]*models.Stage
	resets []string
}

func newFakeStages(task *models.Task) *fakeStages {
	f := &fakeStages{byID: make(map[string]*models.Stage)}
	for _, st := range task.Stages {
		f.byID[st.ID] = st
	}
	return f
}

func (f *fakeStages) ListByTask(context.Context, string) ([]*models.Stage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Stage
	for _, st := range f.byID {
		out = append(out, st)
	}
	return out, nil
}

func (f *fakeStages) BeginExecution(_ context.Context, stageID string) (*models.Stage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.byID[stageID]
	if !ok {
		return nil, store.ErrNotFound
	}
	if st.Status == models.StageStatusRunning {
		return nil, store.ErrConcurrentModification
	}
	st.Status = models.StageStatusRunning
	st.ExecutionCount++
	st.Error = ""
	st.FailureCategory = ""
	cp := *st
	return &cp, nil
}

func (f *fakeStages) Complete(_ context.Context, stageID string, result models.StageCompletion) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.byID[stageID]
	st.Status = models.StageStatusCompleted
	st.Output = result.Output
	st.Structured = result.Structured
	st.TokensUsed += result.TokensUsed
	st.TurnsUsed += result.TurnsUsed
	st.DurationMS = result.DurationMS
	st.Confidence = result.Confidence
	return nil
}

func (f *fakeStages) Fail(_ context.Context, stageID string, failure models.StageFailure) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.byID[stageID]
	st.Status = models.StageStatusFailed
	st.Error = failure.Error
	st.FailureCategory = failure.Category
	st.TokensUsed += failure.TokensUsed
	return nil
}

func (f *fakeStages) Skip(_ context.Context, stageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[stageID].Status = models.StageStatusSkipped
	return nil
}

func (f *fakeStages) ResetToPending(_ context.Context, stageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.byID[stageID]
	st.Status = models.StageStatusPending
	st.Output = ""
	st.Structured = nil
	f.resets = append(f.resets, st.Name)
	return nil
}

func (f *fakeStages) IncrementRetry(_ context.Context, stageID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.byID[stageID]
	st.RetryCount++
	return st.RetryCount, nil
}

// ---- gate fake -------------------------------------------------------

// fakeGates resolves each created gate with the next scripted verdict
// on its first poll; with an empty script gates stay pending.
type fakeGates struct {
	mu      sync.Mutex
	gates   map[string]*models.Gate
	created []models.CreateGateRequest
	script  []models.ResolveGateRequest
}

func newFakeGates(script ...models.ResolveGateRequest) *fakeGates {
	return &fakeGates{gates: make(map[string]*models.Gate), script: script}
}

func (f *fakeGates) Create(_ context.Context, req models.CreateGateRequest) (*models.Gate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g := &models.Gate{
		ID:         uuid.NewString(),
		TaskID:     req.TaskID,
		StageName:  req.StageName,
		AgentRole:  req.AgentRole,
		GateType:   req.GateType,
		Status:     models.GateStatusPending,
		RetryCount: req.RetryCount,
		IsDynamic:  req.IsDynamic,
		CreatedAt:  time.Now(),
	}
	f.gates[g.ID] = g
	f.created = append(f.created, req)
	return g, nil
}

func (f *fakeGates) Get(_ context.Context, gateID string) (*models.Gate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.gates[gateID]
	if !ok {
		return nil, store.ErrNotFound
	}
	if g.Status == models.GateStatusPending && len(f.script) > 0 {
		verdict := f.script[0]
		f.script = f.script[1:]
		g.Status = verdict.Status
		g.Reviewer = verdict.Reviewer
		g.Comment = verdict.Comment
		g.RevisedContent = verdict.RevisedContent
	}
	cp := *g
	return &cp, nil
}

// ---- remaining store fakes -------------------------------------------

type fakeBreakers struct {
	mu      sync.Mutex
	tripped []models.BreakerRecord
}

func (f *fakeBreakers) Trip(_ context.Context, taskID string, level int, triggeredBy, reason string) (*models.BreakerRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec := models.BreakerRecord{
		ID: uuid.NewString(), TaskID: taskID, Level: level,
		TriggeredBy: triggeredBy, Reason: reason, TriggeredAt: time.Now(),
	}
	f.tripped = append(f.tripped, rec)
	return &rec, nil
}

type fakeAudits struct {
	mu      sync.Mutex
	actions []string
}

func (f *fakeAudits) Record(_ context.Context, entry models.AuditEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions = append(f.actions, entry.Action)
	return nil
}

func (f *fakeAudits) has(action string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.actions {
		if a == action {
			return true
		}
	}
	return false
}

type fakeKPIs struct {
	mu      sync.Mutex
	records []models.KPIRecord
}

func (f *fakeKPIs) RecordBatch(_ context.Context, records []models.KPIRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, records...)
	return nil
}

type fakeSkills struct {
	mu      sync.Mutex
	entries []models.SkillFeedbackEntry
}

func (f *fakeSkills) Record(_ context.Context, entry models.SkillFeedbackEntry) (*models.SkillFeedbackEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry.ID = uuid.NewString()
	f.entries = append(f.entries, entry)
	return &entry, nil
}

// ---- workspace / executor / event fakes ------------------------------

type fakeWorkspaces struct {
	mu       sync.Mutex
	ws       *workspace.Workspace
	setupErr error
	pushed   bool
	prURL    string
	cleanups int
	commits  []string
}

func (f *fakeWorkspaces) Setup(context.Context, *models.Task, *models.Project) (*workspace.Workspace, error) {
	if f.setupErr != nil {
		return nil, f.setupErr
	}
	if f.ws == nil {
		f.ws = &workspace.Workspace{Dir: "/tmp/steward-test", Mode: workspace.ModeInProcess}
	}
	return f.ws, nil
}

func (f *fakeWorkspaces) CommitAndPush(_ context.Context, _ *workspace.Workspace, message string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commits = append(f.commits, message)
	return f.pushed, nil
}

func (f *fakeWorkspaces) CreatePR(context.Context, *workspace.Workspace, string, string) (string, error) {
	return f.prURL, nil
}

func (f *fakeWorkspaces) Cleanup(context.Context, *models.Task, *workspace.Workspace) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleanups++
	return nil
}

func (f *fakeWorkspaces) PruneStaleWorktrees(context.Context) error { return nil }

type execResult struct {
	res *executor.Result
	err error
}

// scriptExecutor replays per-stage results in order; stages without a
// script succeed with a canned output.
type scriptExecutor struct {
	mu      sync.Mutex
	calls   []executor.Request
	scripts map[string][]execResult
}

func newScriptExecutor() *scriptExecutor {
	return &scriptExecutor{scripts: make(map[string][]execResult)}
}

func (s *scriptExecutor) stage(name string, results ...execResult) *scriptExecutor {
	s.scripts[name] = append(s.scripts[name], results...)
	return s
}

func (s *scriptExecutor) Execute(_ context.Context, req executor.Request) (*executor.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, req)
	if queue := s.scripts[req.StageName]; len(queue) > 0 {
		next := queue[0]
		s.scripts[req.StageName] = queue[1:]
		return next.res, next.err
	}
	return &executor.Result{
		Text:        "output of " + req.StageName,
		TotalTokens: 100,
		Turns:       1,
	}, nil
}

func (s *scriptExecutor) requests() []executor.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]executor.Request(nil), s.calls...)
}

func (s *scriptExecutor) callsFor(stage string) []executor.Request {
	var out []executor.Request
	for _, req := range s.requests() {
		if req.StageName == stage {
			out = append(out, req)
		}
	}
	return out
}

type fakeExecutors struct {
	exec     *scriptExecutor
	sandboxd []string
}

func (f *fakeExecutors) InProcess() executor.Executor { return f.exec }

func (f *fakeExecutors) Sandboxed(baseURL string) executor.Executor {
	f.sandboxd = append(f.sandboxd, baseURL)
	return f.exec
}

type fakeSink struct {
	mu      sync.Mutex
	creates []models.AppendLogRequest
}

func (f *fakeSink) EmitCreate(req models.AppendLogRequest, _ events.Priority) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	f.creates = append(f.creates, req)
	return req.ID
}

func (f *fakeSink) EmitUpdate(string, string, models.StageLogUpdate, events.Priority) {}

func (f *fakeSink) eventTypes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.creates {
		out = append(out, c.EventType)
	}
	return out
}

type recBroadcaster struct {
	mu     sync.Mutex
	events []string // "channel/event"
}

func (b *recBroadcaster) Broadcast(channel, event string, _ any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, channel+"/"+event)
}

func (b *recBroadcaster) has(fragment string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range b.events {
		if strings.Contains(e, fragment) {
			return true
		}
	}
	return false
}

type fakeContracts struct {
	byText map[string]*models.StructuredOutput
}

func (f *fakeContracts) Extract(_ context.Context, _ models.StageKind, text string) *models.StructuredOutput {
	if s, ok := f.byText[text]; ok {
		return s
	}
	return &models.StructuredOutput{Summary: firstLine(text, 200), Status: "pass", Confidence: 0.9}
}

type fakeMemory struct {
	mu      sync.Mutex
	block   string
	entries map[models.MemoryBucket][]models.MemoryEntry
}

func (f *fakeMemory) PromptBlock(string) (string, error) { return f.block, nil }

func (f *fakeMemory) Append(_ string, bucket models.MemoryBucket, entries ...models.MemoryEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.entries == nil {
		f.entries = make(map[models.MemoryBucket][]models.MemoryEntry)
	}
	f.entries[bucket] = append(f.entries[bucket], entries...)
	return nil
}

type fakeLessons struct {
	mu        sync.Mutex
	extracted int
}

func (f *fakeLessons) ExtractFromTask(context.Context, *models.Task, []memory.StageDigest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.extracted++
}

func (f *fakeLessons) RejectionLesson(_ context.Context, _ *models.Task, stageName, comment string) models.MemoryEntry {
	return models.MemoryEntry{
		Content:    "lesson: " + comment,
		Confidence: 0.7,
		Tags:       []string{"gate-rejection", stageName},
	}
}

// ---- harness ---------------------------------------------------------

type harness struct {
	engine   *Engine
	cfg      *config.Config
	tasks    *fakeTasks
	stages   *fakeStages
	gates    *fakeGates
	breakers *fakeBreakers
	audits   *fakeAudits
	kpis     *fakeKPIs
	skills   *fakeSkills
	ws       *fakeWorkspaces
	exec     *scriptExecutor
	sink     *fakeSink
	bc       *recBroadcaster
	memory   *fakeMemory
	lessons  *fakeLessons
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Worker.GatePollIntervalSeconds = 0 // floored to a fast test poll
	cfg.Worker.GateMaxWaitSeconds = 5
	cfg.Worker.GateDefaultMaxRetries = 2
	cfg.Features.DynamicGates = false
	cfg.Features.InteractivePlanning = true
	return cfg
}

func newHarness(cfg *config.Config, task *models.Task, gates *fakeGates) *harness {
	h := &harness{
		cfg:      cfg,
		tasks:    &fakeTasks{task: task},
		stages:   newFakeStages(task),
		gates:    gates,
		breakers: &fakeBreakers{},
		audits:   &fakeAudits{},
		kpis:     &fakeKPIs{},
		skills:   &fakeSkills{},
		ws:       &fakeWorkspaces{},
		exec:     newScriptExecutor(),
		sink:     &fakeSink{},
		bc:       &recBroadcaster{},
		memory:   &fakeMemory{},
		lessons:  &fakeLessons{},
	}
	h.engine = New(Deps{
		Config: cfg,
		Stores: Stores{
			Tasks:    h.tasks,
			Stages:   h.stages,
			Gates:    h.gates,
			Breakers: h.breakers,
			Audits:   h.audits,
			KPIs:     h.kpis,
			Skills:   h.skills,
		},
		Executors:   &fakeExecutors{exec: h.exec},
		Workspaces:  h.ws,
		Sink:        h.sink,
		Broadcaster: h.bc,
		Compressor:  compress.New(nil, "", false),
		Contracts:   &fakeContracts{},
		Memory:      h.memory,
		Lessons:     h.lessons,
	})
	return h
}

func (h *harness) process() error {
	return h.engine.ProcessTask(context.Background(), h.tasks.task)
}

// ---- fixtures --------------------------------------------------------

func workspaceFixture(branch string) *workspace.Workspace {
	return &workspace.Workspace{
		Dir:    "/tmp/steward-test",
		Branch: branch,
		Mode:   workspace.ModeInProcess,
	}
}

func linearTemplate(defs ...models.StageDef) *models.Template {
	return &models.Template{
		ID:      uuid.NewString(),
		Name:    "feature-dev",
		Version: 1,
		Stages:  defs,
	}
}

func stageDef(name, role string, order int) models.StageDef {
	return models.StageDef{Name: name, AgentRole: role, Order: order}
}

func buildTask(tmpl *models.Template) *models.Task {
	task := &models.Task{
		ID:       uuid.NewString(),
		Title:    "add rate limiting",
		Status:   models.TaskStatusClaimed,
		Template: tmpl,
	}
	for _, def := range tmpl.Stages {
		task.Stages = append(task.Stages, &models.Stage{
			ID:        fmt.Sprintf("st-%s", def.Name),
			TaskID:    task.ID,
			Name:      def.Name,
			AgentRole: def.AgentRole,
			Status:    models.StageStatusPending,
			ExecOrder: def.Order,
		})
	}
	return task
}
