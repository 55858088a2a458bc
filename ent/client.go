// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/stewardhq/steward/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stewardhq/steward/ent/auditlog"
	"github.com/stewardhq/steward/ent/circuitbreaker"
	"github.com/stewardhq/steward/ent/humangate"
	"github.com/stewardhq/steward/ent/kpimetric"
	"github.com/stewardhq/steward/ent/project"
	"github.com/stewardhq/steward/ent/skillfeedback"
	"github.com/stewardhq/steward/ent/stagelog"
	"github.com/stewardhq/steward/ent/task"
	"github.com/stewardhq/steward/ent/taskstage"
	"github.com/stewardhq/steward/ent/tasktemplate"
	"github.com/stewardhq/steward/ent/triggerevent"
	"github.com/stewardhq/steward/ent/triggerrule"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// CircuitBreaker is the client for interacting with the CircuitBreaker builders.
	CircuitBreaker *CircuitBreakerClient
	// HumanGate is the client for interacting with the HumanGate builders.
	HumanGate *HumanGateClient
	// KPIMetric is the client for interacting with the KPIMetric builders.
	KPIMetric *KPIMetricClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// SkillFeedback is the client for interacting with the SkillFeedback builders.
	SkillFeedback *SkillFeedbackClient
	// StageLog is the client for interacting with the StageLog builders.
	StageLog *StageLogClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskStage is the client for interacting with the TaskStage builders.
	TaskStage *TaskStageClient
	// TaskTemplate is the client for interacting with the TaskTemplate builders.
	TaskTemplate *TaskTemplateClient
	// TriggerEvent is the client for interacting with the TriggerEvent builders.
	TriggerEvent *TriggerEventClient
	// TriggerRule is the client for interacting with the TriggerRule builders.
	TriggerRule *TriggerRuleClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditLog = NewAuditLogClient(c.config)
	c.CircuitBreaker = NewCircuitBreakerClient(c.config)
	c.HumanGate = NewHumanGateClient(c.config)
	c.KPIMetric = NewKPIMetricClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.SkillFeedback = NewSkillFeedbackClient(c.config)
	c.StageLog = NewStageLogClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskStage = NewTaskStageClient(c.config)
	c.TaskTemplate = NewTaskTemplateClient(c.config)
	c.TriggerEvent = NewTriggerEventClient(c.config)
	c.TriggerRule = NewTriggerRuleClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		AuditLog:       NewAuditLogClient(cfg),
		CircuitBreaker: NewCircuitBreakerClient(cfg),
		HumanGate:      NewHumanGateClient(cfg),
		KPIMetric:      NewKPIMetricClient(cfg),
		Project:        NewProjectClient(cfg),
		SkillFeedback:  NewSkillFeedbackClient(cfg),
		StageLog:       NewStageLogClient(cfg),
		Task:           NewTaskClient(cfg),
		TaskStage:      NewTaskStageClient(cfg),
		TaskTemplate:   NewTaskTemplateClient(cfg),
		TriggerEvent:   NewTriggerEventClient(cfg),
		TriggerRule:    NewTriggerRuleClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		AuditLog:       NewAuditLogClient(cfg),
		CircuitBreaker: NewCircuitBreakerClient(cfg),
		HumanGate:      NewHumanGateClient(cfg),
		KPIMetric:      NewKPIMetricClient(cfg),
		Project:        NewProjectClient(cfg),
		SkillFeedback:  NewSkillFeedbackClient(cfg),
		StageLog:       NewStageLogClient(cfg),
		Task:           NewTaskClient(cfg),
		TaskStage:      NewTaskStageClient(cfg),
		TaskTemplate:   NewTaskTemplateClient(cfg),
		TriggerEvent:   NewTriggerEventClient(cfg),
		TriggerRule:    NewTriggerRuleClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditLog.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AuditLog, c.CircuitBreaker, c.HumanGate, c.KPIMetric, c.Project,
		c.SkillFeedback, c.StageLog, c.Task, c.TaskStage, c.TaskTemplate,
		c.TriggerEvent, c.TriggerRule,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AuditLog, c.CircuitBreaker, c.HumanGate, c.KPIMetric, c.Project,
		c.SkillFeedback, c.StageLog, c.Task, c.TaskStage, c.TaskTemplate,
		c.TriggerEvent, c.TriggerRule,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *CircuitBreakerMutation:
		return c.CircuitBreaker.mutate(ctx, m)
	case *HumanGateMutation:
		return c.HumanGate.mutate(ctx, m)
	case *KPIMetricMutation:
		return c.KPIMetric.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *SkillFeedbackMutation:
		return c.SkillFeedback.mutate(ctx, m)
	case *StageLogMutation:
		return c.StageLog.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskStageMutation:
		return c.TaskStage.mutate(ctx, m)
	case *TaskTemplateMutation:
		return c.TaskTemplate.mutate(ctx, m)
	case *TriggerEventMutation:
		return c.TriggerEvent.mutate(ctx, m)
	case *TriggerRuleMutation:
		return c.TriggerRule.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id string) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id string) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id string) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id string) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// CircuitBreakerClient is a client for the CircuitBreaker schema.
type CircuitBreakerClient struct {
	config
}

// NewCircuitBreakerClient returns a client for the CircuitBreaker from the given config.
func NewCircuitBreakerClient(c config) *CircuitBreakerClient {
	return &CircuitBreakerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `circuitbreaker.Hooks(f(g(h())))`.
func (c *CircuitBreakerClient) Use(hooks ...Hook) {
	c.hooks.CircuitBreaker = append(c.hooks.CircuitBreaker, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `circuitbreaker.Intercept(f(g(h())))`.
func (c *CircuitBreakerClient) Intercept(interceptors ...Interceptor) {
	c.inters.CircuitBreaker = append(c.inters.CircuitBreaker, interceptors...)
}

// Create returns a builder for creating a CircuitBreaker entity.
func (c *CircuitBreakerClient) Create() *CircuitBreakerCreate {
	mutation := newCircuitBreakerMutation(c.config, OpCreate)
	return &CircuitBreakerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CircuitBreaker entities.
func (c *CircuitBreakerClient) CreateBulk(builders ...*CircuitBreakerCreate) *CircuitBreakerCreateBulk {
	return &CircuitBreakerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CircuitBreakerClient) MapCreateBulk(slice any, setFunc func(*CircuitBreakerCreate, int)) *CircuitBreakerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CircuitBreakerCreateBulk{err: fmt.Errorf("calling to CircuitBreakerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CircuitBreakerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CircuitBreakerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CircuitBreaker.
func (c *CircuitBreakerClient) Update() *CircuitBreakerUpdate {
	mutation := newCircuitBreakerMutation(c.config, OpUpdate)
	return &CircuitBreakerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CircuitBreakerClient) UpdateOne(_m *CircuitBreaker) *CircuitBreakerUpdateOne {
	mutation := newCircuitBreakerMutation(c.config, OpUpdateOne, withCircuitBreaker(_m))
	return &CircuitBreakerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CircuitBreakerClient) UpdateOneID(id string) *CircuitBreakerUpdateOne {
	mutation := newCircuitBreakerMutation(c.config, OpUpdateOne, withCircuitBreakerID(id))
	return &CircuitBreakerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CircuitBreaker.
func (c *CircuitBreakerClient) Delete() *CircuitBreakerDelete {
	mutation := newCircuitBreakerMutation(c.config, OpDelete)
	return &CircuitBreakerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CircuitBreakerClient) DeleteOne(_m *CircuitBreaker) *CircuitBreakerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CircuitBreakerClient) DeleteOneID(id string) *CircuitBreakerDeleteOne {
	builder := c.Delete().Where(circuitbreaker.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CircuitBreakerDeleteOne{builder}
}

// Query returns a query builder for CircuitBreaker.
func (c *CircuitBreakerClient) Query() *CircuitBreakerQuery {
	return &CircuitBreakerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCircuitBreaker},
		inters: c.Interceptors(),
	}
}

// Get returns a CircuitBreaker entity by its id.
func (c *CircuitBreakerClient) Get(ctx context.Context, id string) (*CircuitBreaker, error) {
	return c.Query().Where(circuitbreaker.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CircuitBreakerClient) GetX(ctx context.Context, id string) *CircuitBreaker {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a CircuitBreaker.
func (c *CircuitBreakerClient) QueryTask(_m *CircuitBreaker) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(circuitbreaker.Table, circuitbreaker.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, circuitbreaker.TaskTable, circuitbreaker.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CircuitBreakerClient) Hooks() []Hook {
	return c.hooks.CircuitBreaker
}

// Interceptors returns the client interceptors.
func (c *CircuitBreakerClient) Interceptors() []Interceptor {
	return c.inters.CircuitBreaker
}

func (c *CircuitBreakerClient) mutate(ctx context.Context, m *CircuitBreakerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CircuitBreakerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CircuitBreakerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CircuitBreakerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CircuitBreakerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CircuitBreaker mutation op: %q", m.Op())
	}
}

// HumanGateClient is a client for the HumanGate schema.
type HumanGateClient struct {
	config
}

// NewHumanGateClient returns a client for the HumanGate from the given config.
func NewHumanGateClient(c config) *HumanGateClient {
	return &HumanGateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `humangate.Hooks(f(g(h())))`.
func (c *HumanGateClient) Use(hooks ...Hook) {
	c.hooks.HumanGate = append(c.hooks.HumanGate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `humangate.Intercept(f(g(h())))`.
func (c *HumanGateClient) Intercept(interceptors ...Interceptor) {
	c.inters.HumanGate = append(c.inters.HumanGate, interceptors...)
}

// Create returns a builder for creating a HumanGate entity.
func (c *HumanGateClient) Create() *HumanGateCreate {
	mutation := newHumanGateMutation(c.config, OpCreate)
	return &HumanGateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HumanGate entities.
func (c *HumanGateClient) CreateBulk(builders ...*HumanGateCreate) *HumanGateCreateBulk {
	return &HumanGateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HumanGateClient) MapCreateBulk(slice any, setFunc func(*HumanGateCreate, int)) *HumanGateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HumanGateCreateBulk{err: fmt.Errorf("calling to HumanGateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HumanGateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HumanGateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HumanGate.
func (c *HumanGateClient) Update() *HumanGateUpdate {
	mutation := newHumanGateMutation(c.config, OpUpdate)
	return &HumanGateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HumanGateClient) UpdateOne(_m *HumanGate) *HumanGateUpdateOne {
	mutation := newHumanGateMutation(c.config, OpUpdateOne, withHumanGate(_m))
	return &HumanGateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HumanGateClient) UpdateOneID(id string) *HumanGateUpdateOne {
	mutation := newHumanGateMutation(c.config, OpUpdateOne, withHumanGateID(id))
	return &HumanGateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HumanGate.
func (c *HumanGateClient) Delete() *HumanGateDelete {
	mutation := newHumanGateMutation(c.config, OpDelete)
	return &HumanGateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HumanGateClient) DeleteOne(_m *HumanGate) *HumanGateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HumanGateClient) DeleteOneID(id string) *HumanGateDeleteOne {
	builder := c.Delete().Where(humangate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HumanGateDeleteOne{builder}
}

// Query returns a query builder for HumanGate.
func (c *HumanGateClient) Query() *HumanGateQuery {
	return &HumanGateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHumanGate},
		inters: c.Interceptors(),
	}
}

// Get returns a HumanGate entity by its id.
func (c *HumanGateClient) Get(ctx context.Context, id string) (*HumanGate, error) {
	return c.Query().Where(humangate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HumanGateClient) GetX(ctx context.Context, id string) *HumanGate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a HumanGate.
func (c *HumanGateClient) QueryTask(_m *HumanGate) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(humangate.Table, humangate.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, humangate.TaskTable, humangate.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HumanGateClient) Hooks() []Hook {
	return c.hooks.HumanGate
}

// Interceptors returns the client interceptors.
func (c *HumanGateClient) Interceptors() []Interceptor {
	return c.inters.HumanGate
}

func (c *HumanGateClient) mutate(ctx context.Context, m *HumanGateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HumanGateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HumanGateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HumanGateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HumanGateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HumanGate mutation op: %q", m.Op())
	}
}

// KPIMetricClient is a client for the KPIMetric schema.
type KPIMetricClient struct {
	config
}

// NewKPIMetricClient returns a client for the KPIMetric from the given config.
func NewKPIMetricClient(c config) *KPIMetricClient {
	return &KPIMetricClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `kpimetric.Hooks(f(g(h())))`.
func (c *KPIMetricClient) Use(hooks ...Hook) {
	c.hooks.KPIMetric = append(c.hooks.KPIMetric, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `kpimetric.Intercept(f(g(h())))`.
func (c *KPIMetricClient) Intercept(interceptors ...Interceptor) {
	c.inters.KPIMetric = append(c.inters.KPIMetric, interceptors...)
}

// Create returns a builder for creating a KPIMetric entity.
func (c *KPIMetricClient) Create() *KPIMetricCreate {
	mutation := newKPIMetricMutation(c.config, OpCreate)
	return &KPIMetricCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KPIMetric entities.
func (c *KPIMetricClient) CreateBulk(builders ...*KPIMetricCreate) *KPIMetricCreateBulk {
	return &KPIMetricCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KPIMetricClient) MapCreateBulk(slice any, setFunc func(*KPIMetricCreate, int)) *KPIMetricCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KPIMetricCreateBulk{err: fmt.Errorf("calling to KPIMetricClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KPIMetricCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KPIMetricCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KPIMetric.
func (c *KPIMetricClient) Update() *KPIMetricUpdate {
	mutation := newKPIMetricMutation(c.config, OpUpdate)
	return &KPIMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KPIMetricClient) UpdateOne(_m *KPIMetric) *KPIMetricUpdateOne {
	mutation := newKPIMetricMutation(c.config, OpUpdateOne, withKPIMetric(_m))
	return &KPIMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KPIMetricClient) UpdateOneID(id string) *KPIMetricUpdateOne {
	mutation := newKPIMetricMutation(c.config, OpUpdateOne, withKPIMetricID(id))
	return &KPIMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KPIMetric.
func (c *KPIMetricClient) Delete() *KPIMetricDelete {
	mutation := newKPIMetricMutation(c.config, OpDelete)
	return &KPIMetricDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KPIMetricClient) DeleteOne(_m *KPIMetric) *KPIMetricDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KPIMetricClient) DeleteOneID(id string) *KPIMetricDeleteOne {
	builder := c.Delete().Where(kpimetric.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KPIMetricDeleteOne{builder}
}

// Query returns a query builder for KPIMetric.
func (c *KPIMetricClient) Query() *KPIMetricQuery {
	return &KPIMetricQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKPIMetric},
		inters: c.Interceptors(),
	}
}

// Get returns a KPIMetric entity by its id.
func (c *KPIMetricClient) Get(ctx context.Context, id string) (*KPIMetric, error) {
	return c.Query().Where(kpimetric.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KPIMetricClient) GetX(ctx context.Context, id string) *KPIMetric {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a KPIMetric.
func (c *KPIMetricClient) QueryTask(_m *KPIMetric) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(kpimetric.Table, kpimetric.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, kpimetric.TaskTable, kpimetric.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *KPIMetricClient) Hooks() []Hook {
	return c.hooks.KPIMetric
}

// Interceptors returns the client interceptors.
func (c *KPIMetricClient) Interceptors() []Interceptor {
	return c.inters.KPIMetric
}

func (c *KPIMetricClient) mutate(ctx context.Context, m *KPIMetricMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KPIMetricCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KPIMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KPIMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KPIMetricDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KPIMetric mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTasks queries the tasks edge of a Project.
func (c *ProjectClient) QueryTasks(_m *Project) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.TasksTable, project.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// SkillFeedbackClient is a client for the SkillFeedback schema.
type SkillFeedbackClient struct {
	config
}

// NewSkillFeedbackClient returns a client for the SkillFeedback from the given config.
func NewSkillFeedbackClient(c config) *SkillFeedbackClient {
	return &SkillFeedbackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skillfeedback.Hooks(f(g(h())))`.
func (c *SkillFeedbackClient) Use(hooks ...Hook) {
	c.hooks.SkillFeedback = append(c.hooks.SkillFeedback, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skillfeedback.Intercept(f(g(h())))`.
func (c *SkillFeedbackClient) Intercept(interceptors ...Interceptor) {
	c.inters.SkillFeedback = append(c.inters.SkillFeedback, interceptors...)
}

// Create returns a builder for creating a SkillFeedback entity.
func (c *SkillFeedbackClient) Create() *SkillFeedbackCreate {
	mutation := newSkillFeedbackMutation(c.config, OpCreate)
	return &SkillFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SkillFeedback entities.
func (c *SkillFeedbackClient) CreateBulk(builders ...*SkillFeedbackCreate) *SkillFeedbackCreateBulk {
	return &SkillFeedbackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillFeedbackClient) MapCreateBulk(slice any, setFunc func(*SkillFeedbackCreate, int)) *SkillFeedbackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillFeedbackCreateBulk{err: fmt.Errorf("calling to SkillFeedbackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillFeedbackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillFeedbackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SkillFeedback.
func (c *SkillFeedbackClient) Update() *SkillFeedbackUpdate {
	mutation := newSkillFeedbackMutation(c.config, OpUpdate)
	return &SkillFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillFeedbackClient) UpdateOne(_m *SkillFeedback) *SkillFeedbackUpdateOne {
	mutation := newSkillFeedbackMutation(c.config, OpUpdateOne, withSkillFeedback(_m))
	return &SkillFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillFeedbackClient) UpdateOneID(id string) *SkillFeedbackUpdateOne {
	mutation := newSkillFeedbackMutation(c.config, OpUpdateOne, withSkillFeedbackID(id))
	return &SkillFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SkillFeedback.
func (c *SkillFeedbackClient) Delete() *SkillFeedbackDelete {
	mutation := newSkillFeedbackMutation(c.config, OpDelete)
	return &SkillFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillFeedbackClient) DeleteOne(_m *SkillFeedback) *SkillFeedbackDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillFeedbackClient) DeleteOneID(id string) *SkillFeedbackDeleteOne {
	builder := c.Delete().Where(skillfeedback.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillFeedbackDeleteOne{builder}
}

// Query returns a query builder for SkillFeedback.
func (c *SkillFeedbackClient) Query() *SkillFeedbackQuery {
	return &SkillFeedbackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkillFeedback},
		inters: c.Interceptors(),
	}
}

// Get returns a SkillFeedback entity by its id.
func (c *SkillFeedbackClient) Get(ctx context.Context, id string) (*SkillFeedback, error) {
	return c.Query().Where(skillfeedback.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillFeedbackClient) GetX(ctx context.Context, id string) *SkillFeedback {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillFeedbackClient) Hooks() []Hook {
	return c.hooks.SkillFeedback
}

// Interceptors returns the client interceptors.
func (c *SkillFeedbackClient) Interceptors() []Interceptor {
	return c.inters.SkillFeedback
}

func (c *SkillFeedbackClient) mutate(ctx context.Context, m *SkillFeedbackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SkillFeedback mutation op: %q", m.Op())
	}
}

// StageLogClient is a client for the StageLog schema.
type StageLogClient struct {
	config
}

// NewStageLogClient returns a client for the StageLog from the given config.
func NewStageLogClient(c config) *StageLogClient {
	return &StageLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stagelog.Hooks(f(g(h())))`.
func (c *StageLogClient) Use(hooks ...Hook) {
	c.hooks.StageLog = append(c.hooks.StageLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stagelog.Intercept(f(g(h())))`.
func (c *StageLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.StageLog = append(c.inters.StageLog, interceptors...)
}

// Create returns a builder for creating a StageLog entity.
func (c *StageLogClient) Create() *StageLogCreate {
	mutation := newStageLogMutation(c.config, OpCreate)
	return &StageLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StageLog entities.
func (c *StageLogClient) CreateBulk(builders ...*StageLogCreate) *StageLogCreateBulk {
	return &StageLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StageLogClient) MapCreateBulk(slice any, setFunc func(*StageLogCreate, int)) *StageLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StageLogCreateBulk{err: fmt.Errorf("calling to StageLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StageLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StageLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StageLog.
func (c *StageLogClient) Update() *StageLogUpdate {
	mutation := newStageLogMutation(c.config, OpUpdate)
	return &StageLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StageLogClient) UpdateOne(_m *StageLog) *StageLogUpdateOne {
	mutation := newStageLogMutation(c.config, OpUpdateOne, withStageLog(_m))
	return &StageLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StageLogClient) UpdateOneID(id string) *StageLogUpdateOne {
	mutation := newStageLogMutation(c.config, OpUpdateOne, withStageLogID(id))
	return &StageLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StageLog.
func (c *StageLogClient) Delete() *StageLogDelete {
	mutation := newStageLogMutation(c.config, OpDelete)
	return &StageLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StageLogClient) DeleteOne(_m *StageLog) *StageLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StageLogClient) DeleteOneID(id string) *StageLogDeleteOne {
	builder := c.Delete().Where(stagelog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StageLogDeleteOne{builder}
}

// Query returns a query builder for StageLog.
func (c *StageLogClient) Query() *StageLogQuery {
	return &StageLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStageLog},
		inters: c.Interceptors(),
	}
}

// Get returns a StageLog entity by its id.
func (c *StageLogClient) Get(ctx context.Context, id string) (*StageLog, error) {
	return c.Query().Where(stagelog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StageLogClient) GetX(ctx context.Context, id string) *StageLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a StageLog.
func (c *StageLogClient) QueryTask(_m *StageLog) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stagelog.Table, stagelog.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stagelog.TaskTable, stagelog.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StageLogClient) Hooks() []Hook {
	return c.hooks.StageLog
}

// Interceptors returns the client interceptors.
func (c *StageLogClient) Interceptors() []Interceptor {
	return c.inters.StageLog
}

func (c *StageLogClient) mutate(ctx context.Context, m *StageLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StageLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StageLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StageLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StageLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StageLog mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTemplate queries the template edge of a Task.
func (c *TaskClient) QueryTemplate(_m *Task) *TaskTemplateQuery {
	query := (&TaskTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(tasktemplate.Table, tasktemplate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.TemplateTable, task.TemplateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProject queries the project edge of a Task.
func (c *TaskClient) QueryProject(_m *Task) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.ProjectTable, task.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStages queries the stages edge of a Task.
func (c *TaskClient) QueryStages(_m *Task) *TaskStageQuery {
	query := (&TaskStageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(taskstage.Table, taskstage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.StagesTable, task.StagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGates queries the gates edge of a Task.
func (c *TaskClient) QueryGates(_m *Task) *HumanGateQuery {
	query := (&HumanGateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(humangate.Table, humangate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.GatesTable, task.GatesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLogs queries the logs edge of a Task.
func (c *TaskClient) QueryLogs(_m *Task) *StageLogQuery {
	query := (&StageLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(stagelog.Table, stagelog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.LogsTable, task.LogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBreakers queries the breakers edge of a Task.
func (c *TaskClient) QueryBreakers(_m *Task) *CircuitBreakerQuery {
	query := (&CircuitBreakerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(circuitbreaker.Table, circuitbreaker.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.BreakersTable, task.BreakersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryKpis queries the kpis edge of a Task.
func (c *TaskClient) QueryKpis(_m *Task) *KPIMetricQuery {
	query := (&KPIMetricClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(kpimetric.Table, kpimetric.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.KpisTable, task.KpisColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TaskStageClient is a client for the TaskStage schema.
type TaskStageClient struct {
	config
}

// NewTaskStageClient returns a client for the TaskStage from the given config.
func NewTaskStageClient(c config) *TaskStageClient {
	return &TaskStageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskstage.Hooks(f(g(h())))`.
func (c *TaskStageClient) Use(hooks ...Hook) {
	c.hooks.TaskStage = append(c.hooks.TaskStage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskstage.Intercept(f(g(h())))`.
func (c *TaskStageClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskStage = append(c.inters.TaskStage, interceptors...)
}

// Create returns a builder for creating a TaskStage entity.
func (c *TaskStageClient) Create() *TaskStageCreate {
	mutation := newTaskStageMutation(c.config, OpCreate)
	return &TaskStageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskStage entities.
func (c *TaskStageClient) CreateBulk(builders ...*TaskStageCreate) *TaskStageCreateBulk {
	return &TaskStageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskStageClient) MapCreateBulk(slice any, setFunc func(*TaskStageCreate, int)) *TaskStageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskStageCreateBulk{err: fmt.Errorf("calling to TaskStageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskStageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskStageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskStage.
func (c *TaskStageClient) Update() *TaskStageUpdate {
	mutation := newTaskStageMutation(c.config, OpUpdate)
	return &TaskStageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskStageClient) UpdateOne(_m *TaskStage) *TaskStageUpdateOne {
	mutation := newTaskStageMutation(c.config, OpUpdateOne, withTaskStage(_m))
	return &TaskStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskStageClient) UpdateOneID(id string) *TaskStageUpdateOne {
	mutation := newTaskStageMutation(c.config, OpUpdateOne, withTaskStageID(id))
	return &TaskStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskStage.
func (c *TaskStageClient) Delete() *TaskStageDelete {
	mutation := newTaskStageMutation(c.config, OpDelete)
	return &TaskStageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskStageClient) DeleteOne(_m *TaskStage) *TaskStageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskStageClient) DeleteOneID(id string) *TaskStageDeleteOne {
	builder := c.Delete().Where(taskstage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskStageDeleteOne{builder}
}

// Query returns a query builder for TaskStage.
func (c *TaskStageClient) Query() *TaskStageQuery {
	return &TaskStageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskStage},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskStage entity by its id.
func (c *TaskStageClient) Get(ctx context.Context, id string) (*TaskStage, error) {
	return c.Query().Where(taskstage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskStageClient) GetX(ctx context.Context, id string) *TaskStage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TaskStage.
func (c *TaskStageClient) QueryTask(_m *TaskStage) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskstage.Table, taskstage.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskstage.TaskTable, taskstage.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskStageClient) Hooks() []Hook {
	return c.hooks.TaskStage
}

// Interceptors returns the client interceptors.
func (c *TaskStageClient) Interceptors() []Interceptor {
	return c.inters.TaskStage
}

func (c *TaskStageClient) mutate(ctx context.Context, m *TaskStageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskStageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskStageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskStageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskStage mutation op: %q", m.Op())
	}
}

// TaskTemplateClient is a client for the TaskTemplate schema.
type TaskTemplateClient struct {
	config
}

// NewTaskTemplateClient returns a client for the TaskTemplate from the given config.
func NewTaskTemplateClient(c config) *TaskTemplateClient {
	return &TaskTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tasktemplate.Hooks(f(g(h())))`.
func (c *TaskTemplateClient) Use(hooks ...Hook) {
	c.hooks.TaskTemplate = append(c.hooks.TaskTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tasktemplate.Intercept(f(g(h())))`.
func (c *TaskTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskTemplate = append(c.inters.TaskTemplate, interceptors...)
}

// Create returns a builder for creating a TaskTemplate entity.
func (c *TaskTemplateClient) Create() *TaskTemplateCreate {
	mutation := newTaskTemplateMutation(c.config, OpCreate)
	return &TaskTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskTemplate entities.
func (c *TaskTemplateClient) CreateBulk(builders ...*TaskTemplateCreate) *TaskTemplateCreateBulk {
	return &TaskTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskTemplateClient) MapCreateBulk(slice any, setFunc func(*TaskTemplateCreate, int)) *TaskTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskTemplateCreateBulk{err: fmt.Errorf("calling to TaskTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskTemplate.
func (c *TaskTemplateClient) Update() *TaskTemplateUpdate {
	mutation := newTaskTemplateMutation(c.config, OpUpdate)
	return &TaskTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskTemplateClient) UpdateOne(_m *TaskTemplate) *TaskTemplateUpdateOne {
	mutation := newTaskTemplateMutation(c.config, OpUpdateOne, withTaskTemplate(_m))
	return &TaskTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskTemplateClient) UpdateOneID(id string) *TaskTemplateUpdateOne {
	mutation := newTaskTemplateMutation(c.config, OpUpdateOne, withTaskTemplateID(id))
	return &TaskTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskTemplate.
func (c *TaskTemplateClient) Delete() *TaskTemplateDelete {
	mutation := newTaskTemplateMutation(c.config, OpDelete)
	return &TaskTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskTemplateClient) DeleteOne(_m *TaskTemplate) *TaskTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskTemplateClient) DeleteOneID(id string) *TaskTemplateDeleteOne {
	builder := c.Delete().Where(tasktemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskTemplateDeleteOne{builder}
}

// Query returns a query builder for TaskTemplate.
func (c *TaskTemplateClient) Query() *TaskTemplateQuery {
	return &TaskTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskTemplate entity by its id.
func (c *TaskTemplateClient) Get(ctx context.Context, id string) (*TaskTemplate, error) {
	return c.Query().Where(tasktemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskTemplateClient) GetX(ctx context.Context, id string) *TaskTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTasks queries the tasks edge of a TaskTemplate.
func (c *TaskTemplateClient) QueryTasks(_m *TaskTemplate) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tasktemplate.Table, tasktemplate.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tasktemplate.TasksTable, tasktemplate.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskTemplateClient) Hooks() []Hook {
	return c.hooks.TaskTemplate
}

// Interceptors returns the client interceptors.
func (c *TaskTemplateClient) Interceptors() []Interceptor {
	return c.inters.TaskTemplate
}

func (c *TaskTemplateClient) mutate(ctx context.Context, m *TaskTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskTemplate mutation op: %q", m.Op())
	}
}

// TriggerEventClient is a client for the TriggerEvent schema.
type TriggerEventClient struct {
	config
}

// NewTriggerEventClient returns a client for the TriggerEvent from the given config.
func NewTriggerEventClient(c config) *TriggerEventClient {
	return &TriggerEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `triggerevent.Hooks(f(g(h())))`.
func (c *TriggerEventClient) Use(hooks ...Hook) {
	c.hooks.TriggerEvent = append(c.hooks.TriggerEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `triggerevent.Intercept(f(g(h())))`.
func (c *TriggerEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TriggerEvent = append(c.inters.TriggerEvent, interceptors...)
}

// Create returns a builder for creating a TriggerEvent entity.
func (c *TriggerEventClient) Create() *TriggerEventCreate {
	mutation := newTriggerEventMutation(c.config, OpCreate)
	return &TriggerEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TriggerEvent entities.
func (c *TriggerEventClient) CreateBulk(builders ...*TriggerEventCreate) *TriggerEventCreateBulk {
	return &TriggerEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TriggerEventClient) MapCreateBulk(slice any, setFunc func(*TriggerEventCreate, int)) *TriggerEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TriggerEventCreateBulk{err: fmt.Errorf("calling to TriggerEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TriggerEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TriggerEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TriggerEvent.
func (c *TriggerEventClient) Update() *TriggerEventUpdate {
	mutation := newTriggerEventMutation(c.config, OpUpdate)
	return &TriggerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TriggerEventClient) UpdateOne(_m *TriggerEvent) *TriggerEventUpdateOne {
	mutation := newTriggerEventMutation(c.config, OpUpdateOne, withTriggerEvent(_m))
	return &TriggerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TriggerEventClient) UpdateOneID(id string) *TriggerEventUpdateOne {
	mutation := newTriggerEventMutation(c.config, OpUpdateOne, withTriggerEventID(id))
	return &TriggerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TriggerEvent.
func (c *TriggerEventClient) Delete() *TriggerEventDelete {
	mutation := newTriggerEventMutation(c.config, OpDelete)
	return &TriggerEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TriggerEventClient) DeleteOne(_m *TriggerEvent) *TriggerEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TriggerEventClient) DeleteOneID(id string) *TriggerEventDeleteOne {
	builder := c.Delete().Where(triggerevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TriggerEventDeleteOne{builder}
}

// Query returns a query builder for TriggerEvent.
func (c *TriggerEventClient) Query() *TriggerEventQuery {
	return &TriggerEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTriggerEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TriggerEvent entity by its id.
func (c *TriggerEventClient) Get(ctx context.Context, id string) (*TriggerEvent, error) {
	return c.Query().Where(triggerevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TriggerEventClient) GetX(ctx context.Context, id string) *TriggerEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRule queries the rule edge of a TriggerEvent.
func (c *TriggerEventClient) QueryRule(_m *TriggerEvent) *TriggerRuleQuery {
	query := (&TriggerRuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(triggerevent.Table, triggerevent.FieldID, id),
			sqlgraph.To(triggerrule.Table, triggerrule.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, triggerevent.RuleTable, triggerevent.RuleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TriggerEventClient) Hooks() []Hook {
	return c.hooks.TriggerEvent
}

// Interceptors returns the client interceptors.
func (c *TriggerEventClient) Interceptors() []Interceptor {
	return c.inters.TriggerEvent
}

func (c *TriggerEventClient) mutate(ctx context.Context, m *TriggerEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TriggerEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TriggerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TriggerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TriggerEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TriggerEvent mutation op: %q", m.Op())
	}
}

// TriggerRuleClient is a client for the TriggerRule schema.
type TriggerRuleClient struct {
	config
}

// NewTriggerRuleClient returns a client for the TriggerRule from the given config.
func NewTriggerRuleClient(c config) *TriggerRuleClient {
	return &TriggerRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `triggerrule.Hooks(f(g(h())))`.
func (c *TriggerRuleClient) Use(hooks ...Hook) {
	c.hooks.TriggerRule = append(c.hooks.TriggerRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `triggerrule.Intercept(f(g(h())))`.
func (c *TriggerRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.TriggerRule = append(c.inters.TriggerRule, interceptors...)
}

// Create returns a builder for creating a TriggerRule entity.
func (c *TriggerRuleClient) Create() *TriggerRuleCreate {
	mutation := newTriggerRuleMutation(c.config, OpCreate)
	return &TriggerRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TriggerRule entities.
func (c *TriggerRuleClient) CreateBulk(builders ...*TriggerRuleCreate) *TriggerRuleCreateBulk {
	return &TriggerRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TriggerRuleClient) MapCreateBulk(slice any, setFunc func(*TriggerRuleCreate, int)) *TriggerRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TriggerRuleCreateBulk{err: fmt.Errorf("calling to TriggerRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TriggerRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TriggerRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TriggerRule.
func (c *TriggerRuleClient) Update() *TriggerRuleUpdate {
	mutation := newTriggerRuleMutation(c.config, OpUpdate)
	return &TriggerRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TriggerRuleClient) UpdateOne(_m *TriggerRule) *TriggerRuleUpdateOne {
	mutation := newTriggerRuleMutation(c.config, OpUpdateOne, withTriggerRule(_m))
	return &TriggerRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TriggerRuleClient) UpdateOneID(id string) *TriggerRuleUpdateOne {
	mutation := newTriggerRuleMutation(c.config, OpUpdateOne, withTriggerRuleID(id))
	return &TriggerRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TriggerRule.
func (c *TriggerRuleClient) Delete() *TriggerRuleDelete {
	mutation := newTriggerRuleMutation(c.config, OpDelete)
	return &TriggerRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TriggerRuleClient) DeleteOne(_m *TriggerRule) *TriggerRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TriggerRuleClient) DeleteOneID(id string) *TriggerRuleDeleteOne {
	builder := c.Delete().Where(triggerrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TriggerRuleDeleteOne{builder}
}

// Query returns a query builder for TriggerRule.
func (c *TriggerRuleClient) Query() *TriggerRuleQuery {
	return &TriggerRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTriggerRule},
		inters: c.Interceptors(),
	}
}

// Get returns a TriggerRule entity by its id.
func (c *TriggerRuleClient) Get(ctx context.Context, id string) (*TriggerRule, error) {
	return c.Query().Where(triggerrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TriggerRuleClient) GetX(ctx context.Context, id string) *TriggerRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvents queries the events edge of a TriggerRule.
func (c *TriggerRuleClient) QueryEvents(_m *TriggerRule) *TriggerEventQuery {
	query := (&TriggerEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(triggerrule.Table, triggerrule.FieldID, id),
			sqlgraph.To(triggerevent.Table, triggerevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, triggerrule.EventsTable, triggerrule.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TriggerRuleClient) Hooks() []Hook {
	return c.hooks.TriggerRule
}

// Interceptors returns the client interceptors.
func (c *TriggerRuleClient) Interceptors() []Interceptor {
	return c.inters.TriggerRule
}

func (c *TriggerRuleClient) mutate(ctx context.Context, m *TriggerRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TriggerRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TriggerRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TriggerRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TriggerRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TriggerRule mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditLog, CircuitBreaker, HumanGate, KPIMetric, Project, SkillFeedback,
		StageLog, Task, TaskStage, TaskTemplate, TriggerEvent, TriggerRule []ent.Hook
	}
	inters struct {
		AuditLog, CircuitBreaker, HumanGate, KPIMetric, Project, SkillFeedback,
		StageLog, Task, TaskStage, TaskTemplate, TriggerEvent,
		TriggerRule []ent.Interceptor
	}
)
