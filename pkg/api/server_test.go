package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/models"
	"github.com/stewardhq/steward/pkg/store"
)

// --- fakes ---

type fakeTaskStore struct {
	mu      sync.Mutex
	tasks   map[string]*models.Task
	nextID  int
	filters models.TaskFilters
}

func newFakeTaskStore(seed ...*models.Task) *fakeTaskStore {
	f := &fakeTaskStore{tasks: map[string]*models.Task{}}
	for _, t := range seed {
		f.tasks[t.ID] = t
	}
	return f
}

func (f *fakeTaskStore) Create(_ context.Context, req models.CreateTaskRequest) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if req.Title == "" {
		return nil, store.NewValidationError("title", "title is required")
	}
	f.nextID++
	task := &models.Task{
		ID:         fmt.Sprintf("task-%d", f.nextID),
		Title:      req.Title,
		TemplateID: req.TemplateID,
		ProjectID:  req.ProjectID,
		Status:     models.TaskStatusPending,
	}
	f.tasks[task.ID] = task
	return task, nil
}

func (f *fakeTaskStore) Get(_ context.Context, taskID string) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[taskID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return task, nil
}

func (f *fakeTaskStore) List(_ context.Context, filters models.TaskFilters) (*models.TaskList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = filters
	list := &models.TaskList{Limit: filters.Limit, Offset: filters.Offset}
	for _, t := range f.tasks {
		list.Tasks = append(list.Tasks, t)
	}
	list.TotalCount = len(list.Tasks)
	return list, nil
}

func (f *fakeTaskStore) UpdateStatus(_ context.Context, taskID string, to models.TaskStatus, errMsg string, from ...models.TaskStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[taskID]
	if !ok {
		return store.ErrNotFound
	}
	if len(from) > 0 {
		allowed := false
		for _, s := range from {
			if task.Status == s {
				allowed = true
			}
		}
		if !allowed {
			return store.ErrConcurrentModification
		}
	}
	task.Status = to
	task.Error = errMsg
	return nil
}

func (f *fakeTaskStore) SetPlan(_ context.Context, taskID, plan string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[taskID]
	if !ok {
		return store.ErrNotFound
	}
	task.Plan = plan
	return nil
}

type fakeGateStore struct {
	mu      sync.Mutex
	gates   map[string]*models.Gate
	filters models.GateFilters
}

func newFakeGateStore(seed ...*models.Gate) *fakeGateStore {
	f := &fakeGateStore{gates: map[string]*models.Gate{}}
	for _, g := range seed {
		f.gates[g.ID] = g
	}
	return f
}

func (f *fakeGateStore) Get(_ context.Context, gateID string) (*models.Gate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.gates[gateID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return g, nil
}

func (f *fakeGateStore) List(_ context.Context, filters models.GateFilters) ([]*models.Gate, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = filters
	var out []*models.Gate
	for _, g := range f.gates {
		if filters.TaskID != "" && g.TaskID != filters.TaskID {
			continue
		}
		if filters.Status != "" && string(g.Status) != filters.Status {
			continue
		}
		if filters.GateType != "" && string(g.GateType) != filters.GateType {
			continue
		}
		out = append(out, g)
	}
	return out, len(out), nil
}

func (f *fakeGateStore) Resolve(_ context.Context, gateID string, req models.ResolveGateRequest) (*models.Gate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.gates[gateID]
	if !ok {
		return nil, store.ErrNotFound
	}
	if g.Status != models.GateStatusPending {
		return nil, store.ErrGateResolved
	}
	g.Status = req.Status
	g.Reviewer = req.Reviewer
	g.Comment = req.Comment
	g.RevisedContent = req.RevisedContent
	return g, nil
}

func (f *fakeGateStore) CountPending(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, g := range f.gates {
		if g.Status == models.GateStatusPending {
			n++
		}
	}
	return n, nil
}

type fakeTemplateStore struct {
	mu        sync.Mutex
	templates map[string]*models.Template
	nextID    int
}

func newFakeTemplateStore(seed ...*models.Template) *fakeTemplateStore {
	f := &fakeTemplateStore{templates: map[string]*models.Template{}}
	for _, t := range seed {
		f.templates[t.ID] = t
	}
	return f
}

func (f *fakeTemplateStore) Create(_ context.Context, req models.CreateTemplateRequest) (*models.Template, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if req.Name == "" {
		return nil, store.NewValidationError("name", "name is required")
	}
	version := 1
	for _, t := range f.templates {
		if t.Name == req.Name && t.Version >= version {
			version = t.Version + 1
		}
	}
	f.nextID++
	tmpl := &models.Template{
		ID:          fmt.Sprintf("tmpl-%d", f.nextID),
		Name:        req.Name,
		Version:     version,
		Stages:      req.Stages,
		Gates:       req.Gates,
		Interactive: req.Interactive,
	}
	f.templates[tmpl.ID] = tmpl
	return tmpl, nil
}

func (f *fakeTemplateStore) Get(_ context.Context, templateID string) (*models.Template, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.templates[templateID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return t, nil
}

func (f *fakeTemplateStore) GetByName(_ context.Context, name string) (*models.Template, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var latest *models.Template
	for _, t := range f.templates {
		if t.Name == name && (latest == nil || t.Version > latest.Version) {
			latest = t
		}
	}
	if latest == nil {
		return nil, store.ErrNotFound
	}
	return latest, nil
}

func (f *fakeTemplateStore) List(_ context.Context) ([]*models.Template, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Template
	for _, t := range f.templates {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTemplateStore) ListVersions(_ context.Context, name string) ([]*models.Template, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Template
	for _, t := range f.templates {
		if t.Name == name {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeProjectStore struct {
	mu       sync.Mutex
	projects map[string]*models.Project
	nextID   int
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: map[string]*models.Project{}}
}

func (f *fakeProjectStore) Create(_ context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if req.Name == "" {
		return nil, store.NewValidationError("name", "name is required")
	}
	for _, p := range f.projects {
		if p.Name == req.Name {
			return nil, store.ErrAlreadyExists
		}
	}
	f.nextID++
	p := &models.Project{ID: fmt.Sprintf("proj-%d", f.nextID), Name: req.Name, RepoURL: req.RepoURL}
	f.projects[p.ID] = p
	return p, nil
}

func (f *fakeProjectStore) Get(_ context.Context, projectID string) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.projects[projectID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return p, nil
}

func (f *fakeProjectStore) List(_ context.Context) ([]*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Project
	for _, p := range f.projects {
		out = append(out, p)
	}
	return out, nil
}

type fakeTriggerStore struct {
	mu     sync.Mutex
	rules  map[string]*models.TriggerRule
	events []*models.TriggerEvent
	nextID int
}

func newFakeTriggerStore(seed ...*models.TriggerRule) *fakeTriggerStore {
	f := &fakeTriggerStore{rules: map[string]*models.TriggerRule{}}
	for _, r := range seed {
		f.rules[r.ID] = r
	}
	return f
}

func (f *fakeTriggerStore) CreateRule(_ context.Context, req models.CreateTriggerRuleRequest) (*models.TriggerRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if req.Name == "" {
		return nil, store.NewValidationError("name", "name is required")
	}
	if req.RuleType != models.RuleTypeCron && req.RuleType != models.RuleTypeWebhook {
		return nil, store.NewValidationError("rule_type", "rule_type must be cron or webhook")
	}
	f.nextID++
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	r := &models.TriggerRule{
		ID:         fmt.Sprintf("rule-%d", f.nextID),
		Name:       req.Name,
		RuleType:   req.RuleType,
		Expression: req.Expression,
		TemplateID: req.TemplateID,
		ProjectID:  req.ProjectID,
		Enabled:    enabled,
	}
	f.rules[r.ID] = r
	return r, nil
}

func (f *fakeTriggerStore) GetRule(_ context.Context, ruleID string) (*models.TriggerRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rules[ruleID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (f *fakeTriggerStore) ListRules(_ context.Context, enabledOnly bool) ([]*models.TriggerRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.TriggerRule
	for _, r := range f.rules {
		if enabledOnly && !r.Enabled {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeTriggerStore) SetRuleEnabled(_ context.Context, ruleID string, enabled bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rules[ruleID]
	if !ok {
		return store.ErrNotFound
	}
	r.Enabled = enabled
	return nil
}

func (f *fakeTriggerStore) DeleteRule(_ context.Context, ruleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rules[ruleID]; !ok {
		return store.ErrNotFound
	}
	delete(f.rules, ruleID)
	return nil
}

func (f *fakeTriggerStore) RecordEvent(_ context.Context, event models.TriggerEvent) (*models.TriggerEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	ev := event
	ev.ID = fmt.Sprintf("ev-%d", f.nextID)
	ev.Status = models.TriggerEventReceived
	f.events = append(f.events, &ev)
	return &ev, nil
}

func (f *fakeTriggerStore) MarkEventOutcome(_ context.Context, eventID string, status models.TriggerEventStatus, taskID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ev := range f.events {
		if ev.ID == eventID {
			ev.Status = status
			ev.TaskID = taskID
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeTriggerStore) ListEvents(_ context.Context, limit int) ([]*models.TriggerEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.events
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeTriggerStore) lastEvent() *models.TriggerEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.events) == 0 {
		return nil
	}
	return f.events[len(f.events)-1]
}

type fakeLogStore struct {
	mu      sync.Mutex
	logs    []*models.StageLog
	filters models.StageLogFilters
}

func (f *fakeLogStore) List(_ context.Context, taskID string, filters models.StageLogFilters) ([]*models.StageLog, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = filters
	var out []*models.StageLog
	for _, l := range f.logs {
		if l.TaskID == taskID {
			out = append(out, l)
		}
	}
	return out, len(out), nil
}

type fakeAuditStore struct {
	mu      sync.Mutex
	entries []models.AuditEntry
}

func (f *fakeAuditStore) Record(_ context.Context, entry models.AuditEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAuditStore) ListByTask(_ context.Context, taskID string, _ int) ([]*models.AuditEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.AuditEntry
	for i := range f.entries {
		if f.entries[i].TaskID == taskID {
			out = append(out, &f.entries[i])
		}
	}
	return out, nil
}

func (f *fakeAuditStore) has(action string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.entries {
		if e.Action == action {
			return true
		}
	}
	return false
}

type fakeBreakerStore struct {
	mu       sync.Mutex
	records  []*models.BreakerRecord
	resolved []string
}

func (f *fakeBreakerStore) ListByTask(_ context.Context, taskID string) ([]*models.BreakerRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.BreakerRecord
	for _, r := range f.records {
		if r.TaskID == taskID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeBreakerStore) Resolve(_ context.Context, breakerID, resolvedBy string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolved = append(f.resolved, breakerID+":"+resolvedBy)
	return nil
}

type fakePool struct {
	mu        sync.Mutex
	cancelled []string
	active    int
}

func (f *fakePool) CancelTask(taskID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, taskID)
	return true
}

func (f *fakePool) ActiveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

type recBroadcaster struct {
	mu     sync.Mutex
	events []string
}

func (r *recBroadcaster) Broadcast(channel, event string, _ any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, channel+"/"+event)
}

func (r *recBroadcaster) has(fragment string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e == fragment {
			return true
		}
	}
	return false
}

// --- harness ---

type apiFixture struct {
	tasks     *fakeTaskStore
	gates     *fakeGateStore
	templates *fakeTemplateStore
	projects  *fakeProjectStore
	triggers  *fakeTriggerStore
	logs      *fakeLogStore
	audits    *fakeAuditStore
	breakers  *fakeBreakerStore
	pool      *fakePool
	bc        *recBroadcaster
	server    *Server
	router    *gin.Engine
}

func newAPIFixture(cfg config.ServerConfig) *apiFixture {
	f := &apiFixture{
		tasks:     newFakeTaskStore(),
		gates:     newFakeGateStore(),
		templates: newFakeTemplateStore(),
		projects:  newFakeProjectStore(),
		triggers:  newFakeTriggerStore(),
		logs:      &fakeLogStore{},
		audits:    &fakeAuditStore{},
		breakers:  &fakeBreakerStore{},
		pool:      &fakePool{},
		bc:        &recBroadcaster{},
	}
	f.server = NewServer(Deps{
		Config:      cfg,
		Tasks:       f.tasks,
		Gates:       f.gates,
		Templates:   f.templates,
		Projects:    f.projects,
		Triggers:    f.triggers,
		Logs:        f.logs,
		Audits:      f.audits,
		Breakers:    f.breakers,
		Pool:        f.pool,
		Broadcaster: f.bc,
	})
	f.router = f.server.Router()
	return f
}

func (f *apiFixture) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
