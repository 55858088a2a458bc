// Package api exposes the HTTP and WebSocket surface: task submission
// and inspection, gate resolution, template and project management,
// trigger rules, per-task logs, and the live event stream. Handlers
// bind to narrow store interfaces so tests run without Postgres.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/models"
)

// TaskStore is the task surface the API drives.
type TaskStore interface {
	Create(ctx context.Context, req models.CreateTaskRequest) (*models.Task, error)
	Get(ctx context.Context, taskID string) (*models.Task, error)
	List(ctx context.Context, filters models.TaskFilters) (*models.TaskList, error)
	UpdateStatus(ctx context.Context, taskID string, to models.TaskStatus, errMsg string, from ...models.TaskStatus) error
	SetPlan(ctx context.Context, taskID, plan string) error
}

// GateStore is the gate surface the API drives.
type GateStore interface {
	Get(ctx context.Context, gateID string) (*models.Gate, error)
	List(ctx context.Context, filters models.GateFilters) ([]*models.Gate, int, error)
	Resolve(ctx context.Context, gateID string, req models.ResolveGateRequest) (*models.Gate, error)
	CountPending(ctx context.Context) (int, error)
}

// TemplateStore is the template surface the API drives. Templates are
// immutable; Create adds a new version.
type TemplateStore interface {
	Create(ctx context.Context, req models.CreateTemplateRequest) (*models.Template, error)
	Get(ctx context.Context, templateID string) (*models.Template, error)
	GetByName(ctx context.Context, name string) (*models.Template, error)
	List(ctx context.Context) ([]*models.Template, error)
	ListVersions(ctx context.Context, name string) ([]*models.Template, error)
}

// ProjectStore is the project surface the API drives.
type ProjectStore interface {
	Create(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error)
	Get(ctx context.Context, projectID string) (*models.Project, error)
	List(ctx context.Context) ([]*models.Project, error)
}

// TriggerStore is the trigger rule and event surface the API drives.
type TriggerStore interface {
	CreateRule(ctx context.Context, req models.CreateTriggerRuleRequest) (*models.TriggerRule, error)
	GetRule(ctx context.Context, ruleID string) (*models.TriggerRule, error)
	ListRules(ctx context.Context, enabledOnly bool) ([]*models.TriggerRule, error)
	SetRuleEnabled(ctx context.Context, ruleID string, enabled bool) error
	DeleteRule(ctx context.Context, ruleID string) error
	RecordEvent(ctx context.Context, event models.TriggerEvent) (*models.TriggerEvent, error)
	MarkEventOutcome(ctx context.Context, eventID string, status models.TriggerEventStatus, taskID string) error
	ListEvents(ctx context.Context, limit int) ([]*models.TriggerEvent, error)
}

// LogStore serves the persisted per-task event log.
type LogStore interface {
	List(ctx context.Context, taskID string, filters models.StageLogFilters) ([]*models.StageLog, int, error)
}

// AuditStore serves the per-task audit trail.
type AuditStore interface {
	Record(ctx context.Context, entry models.AuditEntry) error
	ListByTask(ctx context.Context, taskID string, limit int) ([]*models.AuditEntry, error)
}

// BreakerStore serves circuit breaker records.
type BreakerStore interface {
	ListByTask(ctx context.Context, taskID string) ([]*models.BreakerRecord, error)
	Resolve(ctx context.Context, breakerID, resolvedBy string) error
}

// Pool is the worker pool control surface.
type Pool interface {
	CancelTask(taskID string) bool
	ActiveCount() int
}

// WSManager runs the lifecycle of accepted WebSocket connections.
// *events.ConnectionManager implements it.
type WSManager interface {
	HandleConnection(ctx context.Context, conn *websocket.Conn)
	ActiveConnections() int
}

// Pinger reports database liveness for the health endpoints. *sql.DB
// satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Deps bundles the server's collaborators. Pool, WS, Broadcaster and
// DB may be nil; the corresponding surface degrades gracefully.
type Deps struct {
	Config      config.ServerConfig
	Tasks       TaskStore
	Gates       GateStore
	Templates   TemplateStore
	Projects    ProjectStore
	Triggers    TriggerStore
	Logs        LogStore
	Audits      AuditStore
	Breakers    BreakerStore
	Pool        Pool
	WS          WSManager
	Broadcaster events.Broadcaster
	DB          Pinger
}

// Server is the HTTP API server.
type Server struct {
	cfg       config.ServerConfig
	tasks     TaskStore
	gates     GateStore
	templates TemplateStore
	projects  ProjectStore
	triggers  TriggerStore
	logs      LogStore
	audits    AuditStore
	breakers  BreakerStore
	pool      Pool
	ws        WSManager
	bc        events.Broadcaster
	db        Pinger

	httpSrv *http.Server
}

// NewServer creates the API server from its dependency bundle.
func NewServer(deps Deps) *Server {
	bc := deps.Broadcaster
	if bc == nil {
		bc = events.NopBroadcaster{}
	}
	return &Server{
		cfg:       deps.Config,
		tasks:     deps.Tasks,
		gates:     deps.Gates,
		templates: deps.Templates,
		projects:  deps.Projects,
		triggers:  deps.Triggers,
		logs:      deps.Logs,
		audits:    deps.Audits,
		breakers:  deps.Breakers,
		pool:      deps.Pool,
		ws:        deps.WS,
		bc:        bc,
		db:        deps.DB,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/health", s.health)
	r.GET("/ready", s.ready)

	v1 := r.Group("/api/v1")
	if s.cfg.AuthToken != "" {
		v1.Use(bearerAuth(s.cfg.AuthToken))
	}

	v1.POST("/tasks", s.createTask)
	v1.GET("/tasks", s.listTasks)
	v1.GET("/tasks/:id", s.getTask)
	v1.POST("/tasks/:id/cancel", s.cancelTask)
	v1.GET("/tasks/:id/logs", s.listTaskLogs)
	v1.GET("/tasks/:id/audit", s.listTaskAudit)
	v1.GET("/tasks/:id/breakers", s.listTaskBreakers)
	v1.GET("/tasks/:id/plan", s.getPlan)
	v1.POST("/tasks/:id/plan/review", s.reviewPlan)

	v1.GET("/gates", s.listGates)
	v1.GET("/gates/:id", s.getGate)
	v1.POST("/gates/:id/resolve", s.resolveGate)

	v1.POST("/templates", s.createTemplate)
	v1.GET("/templates", s.listTemplates)
	v1.GET("/templates/:id", s.getTemplate)
	v1.GET("/templates/name/:name/versions", s.listTemplateVersions)

	v1.POST("/projects", s.createProject)
	v1.GET("/projects", s.listProjects)
	v1.GET("/projects/:id", s.getProject)

	v1.POST("/triggers/rules", s.createTriggerRule)
	v1.GET("/triggers/rules", s.listTriggerRules)
	v1.GET("/triggers/rules/:id", s.getTriggerRule)
	v1.PATCH("/triggers/rules/:id", s.patchTriggerRule)
	v1.DELETE("/triggers/rules/:id", s.deleteTriggerRule)
	v1.GET("/triggers/events", s.listTriggerEvents)
	v1.POST("/triggers/webhook/:rule", s.webhookTrigger)

	v1.GET("/ws", s.handleWS)

	return r
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	s.httpSrv = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("API server listening", "addr", s.cfg.Addr)
	err := s.httpSrv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
