// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stewardhq/steward/ent/auditlog"
	"github.com/stewardhq/steward/ent/circuitbreaker"
	"github.com/stewardhq/steward/ent/humangate"
	"github.com/stewardhq/steward/ent/kpimetric"
	"github.com/stewardhq/steward/ent/predicate"
	"github.com/stewardhq/steward/ent/project"
	"github.com/stewardhq/steward/ent/skillfeedback"
	"github.com/stewardhq/steward/ent/stagelog"
	"github.com/stewardhq/steward/ent/task"
	"github.com/stewardhq/steward/ent/taskstage"
	"github.com/stewardhq/steward/ent/tasktemplate"
	"github.com/stewardhq/steward/ent/triggerevent"
	"github.com/stewardhq/steward/ent/triggerrule"
	"github.com/stewardhq/steward/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditLog       = "AuditLog"
	TypeCircuitBreaker = "CircuitBreaker"
	TypeHumanGate      = "HumanGate"
	TypeKPIMetric      = "KPIMetric"
	TypeProject        = "Project"
	TypeSkillFeedback  = "SkillFeedback"
	TypeStageLog       = "StageLog"
	TypeTask           = "Task"
	TypeTaskStage      = "TaskStage"
	TypeTaskTemplate   = "TaskTemplate"
	TypeTriggerEvent   = "TriggerEvent"
	TypeTriggerRule    = "TriggerRule"
)

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	task_id       *string
	action        *string
	detail        *map[string]interface{}
	risk_level    *auditlog.RiskLevel
	actor         *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *AuditLogMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *AuditLogMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *AuditLogMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[auditlog.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *AuditLogMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *AuditLogMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, auditlog.FieldTaskID)
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetDetail sets the "detail" field.
func (m *AuditLogMutation) SetDetail(value map[string]interface{}) {
	m.detail = &value
}

// Detail returns the value of the "detail" field in the mutation.
func (m *AuditLogMutation) Detail() (r map[string]interface{}, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDetail(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *AuditLogMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[auditlog.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *AuditLogMutation) DetailCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *AuditLogMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, auditlog.FieldDetail)
}

// SetRiskLevel sets the "risk_level" field.
func (m *AuditLogMutation) SetRiskLevel(al auditlog.RiskLevel) {
	m.risk_level = &al
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *AuditLogMutation) RiskLevel() (r auditlog.RiskLevel, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldRiskLevel(ctx context.Context) (v auditlog.RiskLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *AuditLogMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetActor sets the "actor" field.
func (m *AuditLogMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditLogMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ClearActor clears the value of the "actor" field.
func (m *AuditLogMutation) ClearActor() {
	m.actor = nil
	m.clearedFields[auditlog.FieldActor] = struct{}{}
}

// ActorCleared returns if the "actor" field was cleared in this mutation.
func (m *AuditLogMutation) ActorCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldActor]
	return ok
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditLogMutation) ResetActor() {
	m.actor = nil
	delete(m.clearedFields, auditlog.FieldActor)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.task_id != nil {
		fields = append(fields, auditlog.FieldTaskID)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.detail != nil {
		fields = append(fields, auditlog.FieldDetail)
	}
	if m.risk_level != nil {
		fields = append(fields, auditlog.FieldRiskLevel)
	}
	if m.actor != nil {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldTaskID:
		return m.TaskID()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldDetail:
		return m.Detail()
	case auditlog.FieldRiskLevel:
		return m.RiskLevel()
	case auditlog.FieldActor:
		return m.Actor()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldTaskID:
		return m.OldTaskID(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldDetail:
		return m.OldDetail(ctx)
	case auditlog.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case auditlog.FieldActor:
		return m.OldActor(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldDetail:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case auditlog.FieldRiskLevel:
		v, ok := value.(auditlog.RiskLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case auditlog.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldTaskID) {
		fields = append(fields, auditlog.FieldTaskID)
	}
	if m.FieldCleared(auditlog.FieldDetail) {
		fields = append(fields, auditlog.FieldDetail)
	}
	if m.FieldCleared(auditlog.FieldActor) {
		fields = append(fields, auditlog.FieldActor)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldTaskID:
		m.ClearTaskID()
		return nil
	case auditlog.FieldDetail:
		m.ClearDetail()
		return nil
	case auditlog.FieldActor:
		m.ClearActor()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldTaskID:
		m.ResetTaskID()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldDetail:
		m.ResetDetail()
		return nil
	case auditlog.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case auditlog.FieldActor:
		m.ResetActor()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// CircuitBreakerMutation represents an operation that mutates the CircuitBreaker nodes in the graph.
type CircuitBreakerMutation struct {
	config
	op            Op
	typ           string
	id            *string
	level         *int
	addlevel      *int
	triggered_by  *string
	reason        *string
	triggered_at  *time.Time
	resolved_at   *time.Time
	resolved_by   *string
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*CircuitBreaker, error)
	predicates    []predicate.CircuitBreaker
}

var _ ent.Mutation = (*CircuitBreakerMutation)(nil)

// circuitbreakerOption allows management of the mutation configuration using functional options.
type circuitbreakerOption func(*CircuitBreakerMutation)

// newCircuitBreakerMutation creates new mutation for the CircuitBreaker entity.
func newCircuitBreakerMutation(c config, op Op, opts ...circuitbreakerOption) *CircuitBreakerMutation {
	m := &CircuitBreakerMutation{
		config:        c,
		op:            op,
		typ:           TypeCircuitBreaker,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCircuitBreakerID sets the ID field of the mutation.
func withCircuitBreakerID(id string) circuitbreakerOption {
	return func(m *CircuitBreakerMutation) {
		var (
			err   error
			once  sync.Once
			value *CircuitBreaker
		)
		m.oldValue = func(ctx context.Context) (*CircuitBreaker, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CircuitBreaker.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCircuitBreaker sets the old CircuitBreaker of the mutation.
func withCircuitBreaker(node *CircuitBreaker) circuitbreakerOption {
	return func(m *CircuitBreakerMutation) {
		m.oldValue = func(context.Context) (*CircuitBreaker, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CircuitBreakerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CircuitBreakerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CircuitBreaker entities.
func (m *CircuitBreakerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CircuitBreakerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CircuitBreakerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CircuitBreaker.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *CircuitBreakerMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *CircuitBreakerMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the CircuitBreaker entity.
// If the CircuitBreaker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitBreakerMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *CircuitBreakerMutation) ResetTaskID() {
	m.task = nil
}

// SetLevel sets the "level" field.
func (m *CircuitBreakerMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *CircuitBreakerMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the CircuitBreaker entity.
// If the CircuitBreaker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitBreakerMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *CircuitBreakerMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *CircuitBreakerMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *CircuitBreakerMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetTriggeredBy sets the "triggered_by" field.
func (m *CircuitBreakerMutation) SetTriggeredBy(s string) {
	m.triggered_by = &s
}

// TriggeredBy returns the value of the "triggered_by" field in the mutation.
func (m *CircuitBreakerMutation) TriggeredBy() (r string, exists bool) {
	v := m.triggered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredBy returns the old "triggered_by" field's value of the CircuitBreaker entity.
// If the CircuitBreaker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitBreakerMutation) OldTriggeredBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredBy: %w", err)
	}
	return oldValue.TriggeredBy, nil
}

// ResetTriggeredBy resets all changes to the "triggered_by" field.
func (m *CircuitBreakerMutation) ResetTriggeredBy() {
	m.triggered_by = nil
}

// SetReason sets the "reason" field.
func (m *CircuitBreakerMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *CircuitBreakerMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the CircuitBreaker entity.
// If the CircuitBreaker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitBreakerMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *CircuitBreakerMutation) ResetReason() {
	m.reason = nil
}

// SetTriggeredAt sets the "triggered_at" field.
func (m *CircuitBreakerMutation) SetTriggeredAt(t time.Time) {
	m.triggered_at = &t
}

// TriggeredAt returns the value of the "triggered_at" field in the mutation.
func (m *CircuitBreakerMutation) TriggeredAt() (r time.Time, exists bool) {
	v := m.triggered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredAt returns the old "triggered_at" field's value of the CircuitBreaker entity.
// If the CircuitBreaker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitBreakerMutation) OldTriggeredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredAt: %w", err)
	}
	return oldValue.TriggeredAt, nil
}

// ResetTriggeredAt resets all changes to the "triggered_at" field.
func (m *CircuitBreakerMutation) ResetTriggeredAt() {
	m.triggered_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *CircuitBreakerMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *CircuitBreakerMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the CircuitBreaker entity.
// If the CircuitBreaker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitBreakerMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *CircuitBreakerMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[circuitbreaker.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *CircuitBreakerMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[circuitbreaker.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *CircuitBreakerMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, circuitbreaker.FieldResolvedAt)
}

// SetResolvedBy sets the "resolved_by" field.
func (m *CircuitBreakerMutation) SetResolvedBy(s string) {
	m.resolved_by = &s
}

// ResolvedBy returns the value of the "resolved_by" field in the mutation.
func (m *CircuitBreakerMutation) ResolvedBy() (r string, exists bool) {
	v := m.resolved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedBy returns the old "resolved_by" field's value of the CircuitBreaker entity.
// If the CircuitBreaker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitBreakerMutation) OldResolvedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedBy: %w", err)
	}
	return oldValue.ResolvedBy, nil
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (m *CircuitBreakerMutation) ClearResolvedBy() {
	m.resolved_by = nil
	m.clearedFields[circuitbreaker.FieldResolvedBy] = struct{}{}
}

// ResolvedByCleared returns if the "resolved_by" field was cleared in this mutation.
func (m *CircuitBreakerMutation) ResolvedByCleared() bool {
	_, ok := m.clearedFields[circuitbreaker.FieldResolvedBy]
	return ok
}

// ResetResolvedBy resets all changes to the "resolved_by" field.
func (m *CircuitBreakerMutation) ResetResolvedBy() {
	m.resolved_by = nil
	delete(m.clearedFields, circuitbreaker.FieldResolvedBy)
}

// ClearTask clears the "task" edge to the Task entity.
func (m *CircuitBreakerMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[circuitbreaker.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *CircuitBreakerMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *CircuitBreakerMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *CircuitBreakerMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the CircuitBreakerMutation builder.
func (m *CircuitBreakerMutation) Where(ps ...predicate.CircuitBreaker) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CircuitBreakerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CircuitBreakerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CircuitBreaker, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CircuitBreakerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CircuitBreakerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CircuitBreaker).
func (m *CircuitBreakerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CircuitBreakerMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.task != nil {
		fields = append(fields, circuitbreaker.FieldTaskID)
	}
	if m.level != nil {
		fields = append(fields, circuitbreaker.FieldLevel)
	}
	if m.triggered_by != nil {
		fields = append(fields, circuitbreaker.FieldTriggeredBy)
	}
	if m.reason != nil {
		fields = append(fields, circuitbreaker.FieldReason)
	}
	if m.triggered_at != nil {
		fields = append(fields, circuitbreaker.FieldTriggeredAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, circuitbreaker.FieldResolvedAt)
	}
	if m.resolved_by != nil {
		fields = append(fields, circuitbreaker.FieldResolvedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CircuitBreakerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case circuitbreaker.FieldTaskID:
		return m.TaskID()
	case circuitbreaker.FieldLevel:
		return m.Level()
	case circuitbreaker.FieldTriggeredBy:
		return m.TriggeredBy()
	case circuitbreaker.FieldReason:
		return m.Reason()
	case circuitbreaker.FieldTriggeredAt:
		return m.TriggeredAt()
	case circuitbreaker.FieldResolvedAt:
		return m.ResolvedAt()
	case circuitbreaker.FieldResolvedBy:
		return m.ResolvedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CircuitBreakerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case circuitbreaker.FieldTaskID:
		return m.OldTaskID(ctx)
	case circuitbreaker.FieldLevel:
		return m.OldLevel(ctx)
	case circuitbreaker.FieldTriggeredBy:
		return m.OldTriggeredBy(ctx)
	case circuitbreaker.FieldReason:
		return m.OldReason(ctx)
	case circuitbreaker.FieldTriggeredAt:
		return m.OldTriggeredAt(ctx)
	case circuitbreaker.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case circuitbreaker.FieldResolvedBy:
		return m.OldResolvedBy(ctx)
	}
	return nil, fmt.Errorf("unknown CircuitBreaker field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CircuitBreakerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case circuitbreaker.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case circuitbreaker.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case circuitbreaker.FieldTriggeredBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredBy(v)
		return nil
	case circuitbreaker.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case circuitbreaker.FieldTriggeredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredAt(v)
		return nil
	case circuitbreaker.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case circuitbreaker.FieldResolvedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedBy(v)
		return nil
	}
	return fmt.Errorf("unknown CircuitBreaker field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CircuitBreakerMutation) AddedFields() []string {
	var fields []string
	if m.addlevel != nil {
		fields = append(fields, circuitbreaker.FieldLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CircuitBreakerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case circuitbreaker.FieldLevel:
		return m.AddedLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CircuitBreakerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case circuitbreaker.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	}
	return fmt.Errorf("unknown CircuitBreaker numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CircuitBreakerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(circuitbreaker.FieldResolvedAt) {
		fields = append(fields, circuitbreaker.FieldResolvedAt)
	}
	if m.FieldCleared(circuitbreaker.FieldResolvedBy) {
		fields = append(fields, circuitbreaker.FieldResolvedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CircuitBreakerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CircuitBreakerMutation) ClearField(name string) error {
	switch name {
	case circuitbreaker.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	case circuitbreaker.FieldResolvedBy:
		m.ClearResolvedBy()
		return nil
	}
	return fmt.Errorf("unknown CircuitBreaker nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CircuitBreakerMutation) ResetField(name string) error {
	switch name {
	case circuitbreaker.FieldTaskID:
		m.ResetTaskID()
		return nil
	case circuitbreaker.FieldLevel:
		m.ResetLevel()
		return nil
	case circuitbreaker.FieldTriggeredBy:
		m.ResetTriggeredBy()
		return nil
	case circuitbreaker.FieldReason:
		m.ResetReason()
		return nil
	case circuitbreaker.FieldTriggeredAt:
		m.ResetTriggeredAt()
		return nil
	case circuitbreaker.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case circuitbreaker.FieldResolvedBy:
		m.ResetResolvedBy()
		return nil
	}
	return fmt.Errorf("unknown CircuitBreaker field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CircuitBreakerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, circuitbreaker.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CircuitBreakerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case circuitbreaker.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CircuitBreakerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CircuitBreakerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CircuitBreakerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, circuitbreaker.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CircuitBreakerMutation) EdgeCleared(name string) bool {
	switch name {
	case circuitbreaker.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CircuitBreakerMutation) ClearEdge(name string) error {
	switch name {
	case circuitbreaker.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown CircuitBreaker unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CircuitBreakerMutation) ResetEdge(name string) error {
	switch name {
	case circuitbreaker.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown CircuitBreaker edge %s", name)
}

// HumanGateMutation represents an operation that mutates the HumanGate nodes in the graph.
type HumanGateMutation struct {
	config
	op              Op
	typ             string
	id              *string
	stage_name      *string
	agent_role      *string
	gate_type       *humangate.GateType
	status          *humangate.Status
	reviewer        *string
	comment         *string
	revised_content *string
	retry_count     *int
	addretry_count  *int
	is_dynamic      *bool
	created_at      *time.Time
	reviewed_at     *time.Time
	clearedFields   map[string]struct{}
	task            *string
	clearedtask     bool
	done            bool
	oldValue        func(context.Context) (*HumanGate, error)
	predicates      []predicate.HumanGate
}

var _ ent.Mutation = (*HumanGateMutation)(nil)

// humangateOption allows management of the mutation configuration using functional options.
type humangateOption func(*HumanGateMutation)

// newHumanGateMutation creates new mutation for the HumanGate entity.
func newHumanGateMutation(c config, op Op, opts ...humangateOption) *HumanGateMutation {
	m := &HumanGateMutation{
		config:        c,
		op:            op,
		typ:           TypeHumanGate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHumanGateID sets the ID field of the mutation.
func withHumanGateID(id string) humangateOption {
	return func(m *HumanGateMutation) {
		var (
			err   error
			once  sync.Once
			value *HumanGate
		)
		m.oldValue = func(ctx context.Context) (*HumanGate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HumanGate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHumanGate sets the old HumanGate of the mutation.
func withHumanGate(node *HumanGate) humangateOption {
	return func(m *HumanGateMutation) {
		m.oldValue = func(context.Context) (*HumanGate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HumanGateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HumanGateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HumanGate entities.
func (m *HumanGateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HumanGateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HumanGateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HumanGate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *HumanGateMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *HumanGateMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *HumanGateMutation) ResetTaskID() {
	m.task = nil
}

// SetStageName sets the "stage_name" field.
func (m *HumanGateMutation) SetStageName(s string) {
	m.stage_name = &s
}

// StageName returns the value of the "stage_name" field in the mutation.
func (m *HumanGateMutation) StageName() (r string, exists bool) {
	v := m.stage_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStageName returns the old "stage_name" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldStageName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageName: %w", err)
	}
	return oldValue.StageName, nil
}

// ResetStageName resets all changes to the "stage_name" field.
func (m *HumanGateMutation) ResetStageName() {
	m.stage_name = nil
}

// SetAgentRole sets the "agent_role" field.
func (m *HumanGateMutation) SetAgentRole(s string) {
	m.agent_role = &s
}

// AgentRole returns the value of the "agent_role" field in the mutation.
func (m *HumanGateMutation) AgentRole() (r string, exists bool) {
	v := m.agent_role
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentRole returns the old "agent_role" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldAgentRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentRole: %w", err)
	}
	return oldValue.AgentRole, nil
}

// ClearAgentRole clears the value of the "agent_role" field.
func (m *HumanGateMutation) ClearAgentRole() {
	m.agent_role = nil
	m.clearedFields[humangate.FieldAgentRole] = struct{}{}
}

// AgentRoleCleared returns if the "agent_role" field was cleared in this mutation.
func (m *HumanGateMutation) AgentRoleCleared() bool {
	_, ok := m.clearedFields[humangate.FieldAgentRole]
	return ok
}

// ResetAgentRole resets all changes to the "agent_role" field.
func (m *HumanGateMutation) ResetAgentRole() {
	m.agent_role = nil
	delete(m.clearedFields, humangate.FieldAgentRole)
}

// SetGateType sets the "gate_type" field.
func (m *HumanGateMutation) SetGateType(ht humangate.GateType) {
	m.gate_type = &ht
}

// GateType returns the value of the "gate_type" field in the mutation.
func (m *HumanGateMutation) GateType() (r humangate.GateType, exists bool) {
	v := m.gate_type
	if v == nil {
		return
	}
	return *v, true
}

// OldGateType returns the old "gate_type" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldGateType(ctx context.Context) (v humangate.GateType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGateType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGateType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGateType: %w", err)
	}
	return oldValue.GateType, nil
}

// ResetGateType resets all changes to the "gate_type" field.
func (m *HumanGateMutation) ResetGateType() {
	m.gate_type = nil
}

// SetStatus sets the "status" field.
func (m *HumanGateMutation) SetStatus(h humangate.Status) {
	m.status = &h
}

// Status returns the value of the "status" field in the mutation.
func (m *HumanGateMutation) Status() (r humangate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldStatus(ctx context.Context) (v humangate.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *HumanGateMutation) ResetStatus() {
	m.status = nil
}

// SetReviewer sets the "reviewer" field.
func (m *HumanGateMutation) SetReviewer(s string) {
	m.reviewer = &s
}

// Reviewer returns the value of the "reviewer" field in the mutation.
func (m *HumanGateMutation) Reviewer() (r string, exists bool) {
	v := m.reviewer
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewer returns the old "reviewer" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldReviewer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewer: %w", err)
	}
	return oldValue.Reviewer, nil
}

// ClearReviewer clears the value of the "reviewer" field.
func (m *HumanGateMutation) ClearReviewer() {
	m.reviewer = nil
	m.clearedFields[humangate.FieldReviewer] = struct{}{}
}

// ReviewerCleared returns if the "reviewer" field was cleared in this mutation.
func (m *HumanGateMutation) ReviewerCleared() bool {
	_, ok := m.clearedFields[humangate.FieldReviewer]
	return ok
}

// ResetReviewer resets all changes to the "reviewer" field.
func (m *HumanGateMutation) ResetReviewer() {
	m.reviewer = nil
	delete(m.clearedFields, humangate.FieldReviewer)
}

// SetComment sets the "comment" field.
func (m *HumanGateMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *HumanGateMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *HumanGateMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[humangate.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *HumanGateMutation) CommentCleared() bool {
	_, ok := m.clearedFields[humangate.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *HumanGateMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, humangate.FieldComment)
}

// SetRevisedContent sets the "revised_content" field.
func (m *HumanGateMutation) SetRevisedContent(s string) {
	m.revised_content = &s
}

// RevisedContent returns the value of the "revised_content" field in the mutation.
func (m *HumanGateMutation) RevisedContent() (r string, exists bool) {
	v := m.revised_content
	if v == nil {
		return
	}
	return *v, true
}

// OldRevisedContent returns the old "revised_content" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldRevisedContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevisedContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevisedContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevisedContent: %w", err)
	}
	return oldValue.RevisedContent, nil
}

// ClearRevisedContent clears the value of the "revised_content" field.
func (m *HumanGateMutation) ClearRevisedContent() {
	m.revised_content = nil
	m.clearedFields[humangate.FieldRevisedContent] = struct{}{}
}

// RevisedContentCleared returns if the "revised_content" field was cleared in this mutation.
func (m *HumanGateMutation) RevisedContentCleared() bool {
	_, ok := m.clearedFields[humangate.FieldRevisedContent]
	return ok
}

// ResetRevisedContent resets all changes to the "revised_content" field.
func (m *HumanGateMutation) ResetRevisedContent() {
	m.revised_content = nil
	delete(m.clearedFields, humangate.FieldRevisedContent)
}

// SetRetryCount sets the "retry_count" field.
func (m *HumanGateMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *HumanGateMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *HumanGateMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *HumanGateMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *HumanGateMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetIsDynamic sets the "is_dynamic" field.
func (m *HumanGateMutation) SetIsDynamic(b bool) {
	m.is_dynamic = &b
}

// IsDynamic returns the value of the "is_dynamic" field in the mutation.
func (m *HumanGateMutation) IsDynamic() (r bool, exists bool) {
	v := m.is_dynamic
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDynamic returns the old "is_dynamic" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldIsDynamic(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDynamic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDynamic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDynamic: %w", err)
	}
	return oldValue.IsDynamic, nil
}

// ResetIsDynamic resets all changes to the "is_dynamic" field.
func (m *HumanGateMutation) ResetIsDynamic() {
	m.is_dynamic = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *HumanGateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HumanGateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HumanGateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *HumanGateMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *HumanGateMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (m *HumanGateMutation) ClearReviewedAt() {
	m.reviewed_at = nil
	m.clearedFields[humangate.FieldReviewedAt] = struct{}{}
}

// ReviewedAtCleared returns if the "reviewed_at" field was cleared in this mutation.
func (m *HumanGateMutation) ReviewedAtCleared() bool {
	_, ok := m.clearedFields[humangate.FieldReviewedAt]
	return ok
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *HumanGateMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	delete(m.clearedFields, humangate.FieldReviewedAt)
}

// ClearTask clears the "task" edge to the Task entity.
func (m *HumanGateMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[humangate.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *HumanGateMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *HumanGateMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *HumanGateMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the HumanGateMutation builder.
func (m *HumanGateMutation) Where(ps ...predicate.HumanGate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HumanGateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HumanGateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HumanGate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HumanGateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HumanGateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HumanGate).
func (m *HumanGateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HumanGateMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.task != nil {
		fields = append(fields, humangate.FieldTaskID)
	}
	if m.stage_name != nil {
		fields = append(fields, humangate.FieldStageName)
	}
	if m.agent_role != nil {
		fields = append(fields, humangate.FieldAgentRole)
	}
	if m.gate_type != nil {
		fields = append(fields, humangate.FieldGateType)
	}
	if m.status != nil {
		fields = append(fields, humangate.FieldStatus)
	}
	if m.reviewer != nil {
		fields = append(fields, humangate.FieldReviewer)
	}
	if m.comment != nil {
		fields = append(fields, humangate.FieldComment)
	}
	if m.revised_content != nil {
		fields = append(fields, humangate.FieldRevisedContent)
	}
	if m.retry_count != nil {
		fields = append(fields, humangate.FieldRetryCount)
	}
	if m.is_dynamic != nil {
		fields = append(fields, humangate.FieldIsDynamic)
	}
	if m.created_at != nil {
		fields = append(fields, humangate.FieldCreatedAt)
	}
	if m.reviewed_at != nil {
		fields = append(fields, humangate.FieldReviewedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HumanGateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case humangate.FieldTaskID:
		return m.TaskID()
	case humangate.FieldStageName:
		return m.StageName()
	case humangate.FieldAgentRole:
		return m.AgentRole()
	case humangate.FieldGateType:
		return m.GateType()
	case humangate.FieldStatus:
		return m.Status()
	case humangate.FieldReviewer:
		return m.Reviewer()
	case humangate.FieldComment:
		return m.Comment()
	case humangate.FieldRevisedContent:
		return m.RevisedContent()
	case humangate.FieldRetryCount:
		return m.RetryCount()
	case humangate.FieldIsDynamic:
		return m.IsDynamic()
	case humangate.FieldCreatedAt:
		return m.CreatedAt()
	case humangate.FieldReviewedAt:
		return m.ReviewedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HumanGateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case humangate.FieldTaskID:
		return m.OldTaskID(ctx)
	case humangate.FieldStageName:
		return m.OldStageName(ctx)
	case humangate.FieldAgentRole:
		return m.OldAgentRole(ctx)
	case humangate.FieldGateType:
		return m.OldGateType(ctx)
	case humangate.FieldStatus:
		return m.OldStatus(ctx)
	case humangate.FieldReviewer:
		return m.OldReviewer(ctx)
	case humangate.FieldComment:
		return m.OldComment(ctx)
	case humangate.FieldRevisedContent:
		return m.OldRevisedContent(ctx)
	case humangate.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case humangate.FieldIsDynamic:
		return m.OldIsDynamic(ctx)
	case humangate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case humangate.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	}
	return nil, fmt.Errorf("unknown HumanGate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HumanGateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case humangate.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case humangate.FieldStageName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageName(v)
		return nil
	case humangate.FieldAgentRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentRole(v)
		return nil
	case humangate.FieldGateType:
		v, ok := value.(humangate.GateType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGateType(v)
		return nil
	case humangate.FieldStatus:
		v, ok := value.(humangate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case humangate.FieldReviewer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewer(v)
		return nil
	case humangate.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case humangate.FieldRevisedContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevisedContent(v)
		return nil
	case humangate.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case humangate.FieldIsDynamic:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDynamic(v)
		return nil
	case humangate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case humangate.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	}
	return fmt.Errorf("unknown HumanGate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HumanGateMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, humangate.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HumanGateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case humangate.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HumanGateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case humangate.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown HumanGate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HumanGateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(humangate.FieldAgentRole) {
		fields = append(fields, humangate.FieldAgentRole)
	}
	if m.FieldCleared(humangate.FieldReviewer) {
		fields = append(fields, humangate.FieldReviewer)
	}
	if m.FieldCleared(humangate.FieldComment) {
		fields = append(fields, humangate.FieldComment)
	}
	if m.FieldCleared(humangate.FieldRevisedContent) {
		fields = append(fields, humangate.FieldRevisedContent)
	}
	if m.FieldCleared(humangate.FieldReviewedAt) {
		fields = append(fields, humangate.FieldReviewedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HumanGateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HumanGateMutation) ClearField(name string) error {
	switch name {
	case humangate.FieldAgentRole:
		m.ClearAgentRole()
		return nil
	case humangate.FieldReviewer:
		m.ClearReviewer()
		return nil
	case humangate.FieldComment:
		m.ClearComment()
		return nil
	case humangate.FieldRevisedContent:
		m.ClearRevisedContent()
		return nil
	case humangate.FieldReviewedAt:
		m.ClearReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown HumanGate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HumanGateMutation) ResetField(name string) error {
	switch name {
	case humangate.FieldTaskID:
		m.ResetTaskID()
		return nil
	case humangate.FieldStageName:
		m.ResetStageName()
		return nil
	case humangate.FieldAgentRole:
		m.ResetAgentRole()
		return nil
	case humangate.FieldGateType:
		m.ResetGateType()
		return nil
	case humangate.FieldStatus:
		m.ResetStatus()
		return nil
	case humangate.FieldReviewer:
		m.ResetReviewer()
		return nil
	case humangate.FieldComment:
		m.ResetComment()
		return nil
	case humangate.FieldRevisedContent:
		m.ResetRevisedContent()
		return nil
	case humangate.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case humangate.FieldIsDynamic:
		m.ResetIsDynamic()
		return nil
	case humangate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case humangate.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown HumanGate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HumanGateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, humangate.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HumanGateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case humangate.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HumanGateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HumanGateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HumanGateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, humangate.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HumanGateMutation) EdgeCleared(name string) bool {
	switch name {
	case humangate.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HumanGateMutation) ClearEdge(name string) error {
	switch name {
	case humangate.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown HumanGate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HumanGateMutation) ResetEdge(name string) error {
	switch name {
	case humangate.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown HumanGate edge %s", name)
}

// KPIMetricMutation represents an operation that mutates the KPIMetric nodes in the graph.
type KPIMetricMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	value         *float64
	addvalue      *float64
	unit          *string
	recorded_at   *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*KPIMetric, error)
	predicates    []predicate.KPIMetric
}

var _ ent.Mutation = (*KPIMetricMutation)(nil)

// kpimetricOption allows management of the mutation configuration using functional options.
type kpimetricOption func(*KPIMetricMutation)

// newKPIMetricMutation creates new mutation for the KPIMetric entity.
func newKPIMetricMutation(c config, op Op, opts ...kpimetricOption) *KPIMetricMutation {
	m := &KPIMetricMutation{
		config:        c,
		op:            op,
		typ:           TypeKPIMetric,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKPIMetricID sets the ID field of the mutation.
func withKPIMetricID(id string) kpimetricOption {
	return func(m *KPIMetricMutation) {
		var (
			err   error
			once  sync.Once
			value *KPIMetric
		)
		m.oldValue = func(ctx context.Context) (*KPIMetric, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KPIMetric.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKPIMetric sets the old KPIMetric of the mutation.
func withKPIMetric(node *KPIMetric) kpimetricOption {
	return func(m *KPIMetricMutation) {
		m.oldValue = func(context.Context) (*KPIMetric, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KPIMetricMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KPIMetricMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of KPIMetric entities.
func (m *KPIMetricMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KPIMetricMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KPIMetricMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KPIMetric.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *KPIMetricMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *KPIMetricMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the KPIMetric entity.
// If the KPIMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KPIMetricMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *KPIMetricMutation) ResetTaskID() {
	m.task = nil
}

// SetName sets the "name" field.
func (m *KPIMetricMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *KPIMetricMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the KPIMetric entity.
// If the KPIMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KPIMetricMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *KPIMetricMutation) ResetName() {
	m.name = nil
}

// SetValue sets the "value" field.
func (m *KPIMetricMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *KPIMetricMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the KPIMetric entity.
// If the KPIMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KPIMetricMutation) OldValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *KPIMetricMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *KPIMetricMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ResetValue resets all changes to the "value" field.
func (m *KPIMetricMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
}

// SetUnit sets the "unit" field.
func (m *KPIMetricMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *KPIMetricMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the KPIMetric entity.
// If the KPIMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KPIMetricMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ClearUnit clears the value of the "unit" field.
func (m *KPIMetricMutation) ClearUnit() {
	m.unit = nil
	m.clearedFields[kpimetric.FieldUnit] = struct{}{}
}

// UnitCleared returns if the "unit" field was cleared in this mutation.
func (m *KPIMetricMutation) UnitCleared() bool {
	_, ok := m.clearedFields[kpimetric.FieldUnit]
	return ok
}

// ResetUnit resets all changes to the "unit" field.
func (m *KPIMetricMutation) ResetUnit() {
	m.unit = nil
	delete(m.clearedFields, kpimetric.FieldUnit)
}

// SetRecordedAt sets the "recorded_at" field.
func (m *KPIMetricMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *KPIMetricMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the KPIMetric entity.
// If the KPIMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KPIMetricMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *KPIMetricMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *KPIMetricMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[kpimetric.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *KPIMetricMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *KPIMetricMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *KPIMetricMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the KPIMetricMutation builder.
func (m *KPIMetricMutation) Where(ps ...predicate.KPIMetric) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KPIMetricMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KPIMetricMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KPIMetric, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KPIMetricMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KPIMetricMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KPIMetric).
func (m *KPIMetricMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KPIMetricMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.task != nil {
		fields = append(fields, kpimetric.FieldTaskID)
	}
	if m.name != nil {
		fields = append(fields, kpimetric.FieldName)
	}
	if m.value != nil {
		fields = append(fields, kpimetric.FieldValue)
	}
	if m.unit != nil {
		fields = append(fields, kpimetric.FieldUnit)
	}
	if m.recorded_at != nil {
		fields = append(fields, kpimetric.FieldRecordedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KPIMetricMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case kpimetric.FieldTaskID:
		return m.TaskID()
	case kpimetric.FieldName:
		return m.Name()
	case kpimetric.FieldValue:
		return m.Value()
	case kpimetric.FieldUnit:
		return m.Unit()
	case kpimetric.FieldRecordedAt:
		return m.RecordedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KPIMetricMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case kpimetric.FieldTaskID:
		return m.OldTaskID(ctx)
	case kpimetric.FieldName:
		return m.OldName(ctx)
	case kpimetric.FieldValue:
		return m.OldValue(ctx)
	case kpimetric.FieldUnit:
		return m.OldUnit(ctx)
	case kpimetric.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	}
	return nil, fmt.Errorf("unknown KPIMetric field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KPIMetricMutation) SetField(name string, value ent.Value) error {
	switch name {
	case kpimetric.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case kpimetric.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case kpimetric.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case kpimetric.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case kpimetric.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	}
	return fmt.Errorf("unknown KPIMetric field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KPIMetricMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, kpimetric.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KPIMetricMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case kpimetric.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KPIMetricMutation) AddField(name string, value ent.Value) error {
	switch name {
	case kpimetric.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown KPIMetric numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KPIMetricMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(kpimetric.FieldUnit) {
		fields = append(fields, kpimetric.FieldUnit)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KPIMetricMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KPIMetricMutation) ClearField(name string) error {
	switch name {
	case kpimetric.FieldUnit:
		m.ClearUnit()
		return nil
	}
	return fmt.Errorf("unknown KPIMetric nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KPIMetricMutation) ResetField(name string) error {
	switch name {
	case kpimetric.FieldTaskID:
		m.ResetTaskID()
		return nil
	case kpimetric.FieldName:
		m.ResetName()
		return nil
	case kpimetric.FieldValue:
		m.ResetValue()
		return nil
	case kpimetric.FieldUnit:
		m.ResetUnit()
		return nil
	case kpimetric.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	}
	return fmt.Errorf("unknown KPIMetric field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KPIMetricMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, kpimetric.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KPIMetricMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case kpimetric.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KPIMetricMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KPIMetricMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KPIMetricMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, kpimetric.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KPIMetricMutation) EdgeCleared(name string) bool {
	switch name {
	case kpimetric.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KPIMetricMutation) ClearEdge(name string) error {
	switch name {
	case kpimetric.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown KPIMetric unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KPIMetricMutation) ResetEdge(name string) error {
	switch name {
	case kpimetric.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown KPIMetric edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	repo_url         *string
	tech_stack       *[]string
	appendtech_stack []string
	description      *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	tasks            map[string]struct{}
	removedtasks     map[string]struct{}
	clearedtasks     bool
	done             bool
	oldValue         func(context.Context) (*Project, error)
	predicates       []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetRepoURL sets the "repo_url" field.
func (m *ProjectMutation) SetRepoURL(s string) {
	m.repo_url = &s
}

// RepoURL returns the value of the "repo_url" field in the mutation.
func (m *ProjectMutation) RepoURL() (r string, exists bool) {
	v := m.repo_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoURL returns the old "repo_url" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldRepoURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoURL: %w", err)
	}
	return oldValue.RepoURL, nil
}

// ClearRepoURL clears the value of the "repo_url" field.
func (m *ProjectMutation) ClearRepoURL() {
	m.repo_url = nil
	m.clearedFields[project.FieldRepoURL] = struct{}{}
}

// RepoURLCleared returns if the "repo_url" field was cleared in this mutation.
func (m *ProjectMutation) RepoURLCleared() bool {
	_, ok := m.clearedFields[project.FieldRepoURL]
	return ok
}

// ResetRepoURL resets all changes to the "repo_url" field.
func (m *ProjectMutation) ResetRepoURL() {
	m.repo_url = nil
	delete(m.clearedFields, project.FieldRepoURL)
}

// SetTechStack sets the "tech_stack" field.
func (m *ProjectMutation) SetTechStack(s []string) {
	m.tech_stack = &s
	m.appendtech_stack = nil
}

// TechStack returns the value of the "tech_stack" field in the mutation.
func (m *ProjectMutation) TechStack() (r []string, exists bool) {
	v := m.tech_stack
	if v == nil {
		return
	}
	return *v, true
}

// OldTechStack returns the old "tech_stack" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldTechStack(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTechStack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTechStack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTechStack: %w", err)
	}
	return oldValue.TechStack, nil
}

// AppendTechStack adds s to the "tech_stack" field.
func (m *ProjectMutation) AppendTechStack(s []string) {
	m.appendtech_stack = append(m.appendtech_stack, s...)
}

// AppendedTechStack returns the list of values that were appended to the "tech_stack" field in this mutation.
func (m *ProjectMutation) AppendedTechStack() ([]string, bool) {
	if len(m.appendtech_stack) == 0 {
		return nil, false
	}
	return m.appendtech_stack, true
}

// ClearTechStack clears the value of the "tech_stack" field.
func (m *ProjectMutation) ClearTechStack() {
	m.tech_stack = nil
	m.appendtech_stack = nil
	m.clearedFields[project.FieldTechStack] = struct{}{}
}

// TechStackCleared returns if the "tech_stack" field was cleared in this mutation.
func (m *ProjectMutation) TechStackCleared() bool {
	_, ok := m.clearedFields[project.FieldTechStack]
	return ok
}

// ResetTechStack resets all changes to the "tech_stack" field.
func (m *ProjectMutation) ResetTechStack() {
	m.tech_stack = nil
	m.appendtech_stack = nil
	delete(m.clearedFields, project.FieldTechStack)
}

// SetDescription sets the "description" field.
func (m *ProjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProjectMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[project.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProjectMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[project.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProjectMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, project.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *ProjectMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *ProjectMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *ProjectMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *ProjectMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *ProjectMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *ProjectMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *ProjectMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.repo_url != nil {
		fields = append(fields, project.FieldRepoURL)
	}
	if m.tech_stack != nil {
		fields = append(fields, project.FieldTechStack)
	}
	if m.description != nil {
		fields = append(fields, project.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldRepoURL:
		return m.RepoURL()
	case project.FieldTechStack:
		return m.TechStack()
	case project.FieldDescription:
		return m.Description()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldRepoURL:
		return m.OldRepoURL(ctx)
	case project.FieldTechStack:
		return m.OldTechStack(ctx)
	case project.FieldDescription:
		return m.OldDescription(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldRepoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoURL(v)
		return nil
	case project.FieldTechStack:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTechStack(v)
		return nil
	case project.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldRepoURL) {
		fields = append(fields, project.FieldRepoURL)
	}
	if m.FieldCleared(project.FieldTechStack) {
		fields = append(fields, project.FieldTechStack)
	}
	if m.FieldCleared(project.FieldDescription) {
		fields = append(fields, project.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldRepoURL:
		m.ClearRepoURL()
		return nil
	case project.FieldTechStack:
		m.ClearTechStack()
		return nil
	case project.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldRepoURL:
		m.ResetRepoURL()
		return nil
	case project.FieldTechStack:
		m.ResetTechStack()
		return nil
	case project.FieldDescription:
		m.ResetDescription()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tasks != nil {
		edges = append(edges, project.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtasks != nil {
		edges = append(edges, project.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtasks {
		edges = append(edges, project.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// SkillFeedbackMutation represents an operation that mutates the SkillFeedback nodes in the graph.
type SkillFeedbackMutation struct {
	config
	op            Op
	typ           string
	id            *string
	agent_role    *string
	task_id       *string
	gate_id       *string
	comment       *string
	lesson        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SkillFeedback, error)
	predicates    []predicate.SkillFeedback
}

var _ ent.Mutation = (*SkillFeedbackMutation)(nil)

// skillfeedbackOption allows management of the mutation configuration using functional options.
type skillfeedbackOption func(*SkillFeedbackMutation)

// newSkillFeedbackMutation creates new mutation for the SkillFeedback entity.
func newSkillFeedbackMutation(c config, op Op, opts ...skillfeedbackOption) *SkillFeedbackMutation {
	m := &SkillFeedbackMutation{
		config:        c,
		op:            op,
		typ:           TypeSkillFeedback,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSkillFeedbackID sets the ID field of the mutation.
func withSkillFeedbackID(id string) skillfeedbackOption {
	return func(m *SkillFeedbackMutation) {
		var (
			err   error
			once  sync.Once
			value *SkillFeedback
		)
		m.oldValue = func(ctx context.Context) (*SkillFeedback, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SkillFeedback.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSkillFeedback sets the old SkillFeedback of the mutation.
func withSkillFeedback(node *SkillFeedback) skillfeedbackOption {
	return func(m *SkillFeedbackMutation) {
		m.oldValue = func(context.Context) (*SkillFeedback, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SkillFeedbackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SkillFeedbackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SkillFeedback entities.
func (m *SkillFeedbackMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SkillFeedbackMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SkillFeedbackMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SkillFeedback.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentRole sets the "agent_role" field.
func (m *SkillFeedbackMutation) SetAgentRole(s string) {
	m.agent_role = &s
}

// AgentRole returns the value of the "agent_role" field in the mutation.
func (m *SkillFeedbackMutation) AgentRole() (r string, exists bool) {
	v := m.agent_role
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentRole returns the old "agent_role" field's value of the SkillFeedback entity.
// If the SkillFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillFeedbackMutation) OldAgentRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentRole: %w", err)
	}
	return oldValue.AgentRole, nil
}

// ResetAgentRole resets all changes to the "agent_role" field.
func (m *SkillFeedbackMutation) ResetAgentRole() {
	m.agent_role = nil
}

// SetTaskID sets the "task_id" field.
func (m *SkillFeedbackMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *SkillFeedbackMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the SkillFeedback entity.
// If the SkillFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillFeedbackMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *SkillFeedbackMutation) ResetTaskID() {
	m.task_id = nil
}

// SetGateID sets the "gate_id" field.
func (m *SkillFeedbackMutation) SetGateID(s string) {
	m.gate_id = &s
}

// GateID returns the value of the "gate_id" field in the mutation.
func (m *SkillFeedbackMutation) GateID() (r string, exists bool) {
	v := m.gate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGateID returns the old "gate_id" field's value of the SkillFeedback entity.
// If the SkillFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillFeedbackMutation) OldGateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGateID: %w", err)
	}
	return oldValue.GateID, nil
}

// ClearGateID clears the value of the "gate_id" field.
func (m *SkillFeedbackMutation) ClearGateID() {
	m.gate_id = nil
	m.clearedFields[skillfeedback.FieldGateID] = struct{}{}
}

// GateIDCleared returns if the "gate_id" field was cleared in this mutation.
func (m *SkillFeedbackMutation) GateIDCleared() bool {
	_, ok := m.clearedFields[skillfeedback.FieldGateID]
	return ok
}

// ResetGateID resets all changes to the "gate_id" field.
func (m *SkillFeedbackMutation) ResetGateID() {
	m.gate_id = nil
	delete(m.clearedFields, skillfeedback.FieldGateID)
}

// SetComment sets the "comment" field.
func (m *SkillFeedbackMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *SkillFeedbackMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the SkillFeedback entity.
// If the SkillFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillFeedbackMutation) OldComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *SkillFeedbackMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[skillfeedback.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *SkillFeedbackMutation) CommentCleared() bool {
	_, ok := m.clearedFields[skillfeedback.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *SkillFeedbackMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, skillfeedback.FieldComment)
}

// SetLesson sets the "lesson" field.
func (m *SkillFeedbackMutation) SetLesson(s string) {
	m.lesson = &s
}

// Lesson returns the value of the "lesson" field in the mutation.
func (m *SkillFeedbackMutation) Lesson() (r string, exists bool) {
	v := m.lesson
	if v == nil {
		return
	}
	return *v, true
}

// OldLesson returns the old "lesson" field's value of the SkillFeedback entity.
// If the SkillFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillFeedbackMutation) OldLesson(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLesson is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLesson requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLesson: %w", err)
	}
	return oldValue.Lesson, nil
}

// ResetLesson resets all changes to the "lesson" field.
func (m *SkillFeedbackMutation) ResetLesson() {
	m.lesson = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SkillFeedbackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SkillFeedbackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SkillFeedback entity.
// If the SkillFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillFeedbackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SkillFeedbackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SkillFeedbackMutation builder.
func (m *SkillFeedbackMutation) Where(ps ...predicate.SkillFeedback) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SkillFeedbackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SkillFeedbackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SkillFeedback, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SkillFeedbackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SkillFeedbackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SkillFeedback).
func (m *SkillFeedbackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SkillFeedbackMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.agent_role != nil {
		fields = append(fields, skillfeedback.FieldAgentRole)
	}
	if m.task_id != nil {
		fields = append(fields, skillfeedback.FieldTaskID)
	}
	if m.gate_id != nil {
		fields = append(fields, skillfeedback.FieldGateID)
	}
	if m.comment != nil {
		fields = append(fields, skillfeedback.FieldComment)
	}
	if m.lesson != nil {
		fields = append(fields, skillfeedback.FieldLesson)
	}
	if m.created_at != nil {
		fields = append(fields, skillfeedback.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SkillFeedbackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case skillfeedback.FieldAgentRole:
		return m.AgentRole()
	case skillfeedback.FieldTaskID:
		return m.TaskID()
	case skillfeedback.FieldGateID:
		return m.GateID()
	case skillfeedback.FieldComment:
		return m.Comment()
	case skillfeedback.FieldLesson:
		return m.Lesson()
	case skillfeedback.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SkillFeedbackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case skillfeedback.FieldAgentRole:
		return m.OldAgentRole(ctx)
	case skillfeedback.FieldTaskID:
		return m.OldTaskID(ctx)
	case skillfeedback.FieldGateID:
		return m.OldGateID(ctx)
	case skillfeedback.FieldComment:
		return m.OldComment(ctx)
	case skillfeedback.FieldLesson:
		return m.OldLesson(ctx)
	case skillfeedback.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SkillFeedback field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillFeedbackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case skillfeedback.FieldAgentRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentRole(v)
		return nil
	case skillfeedback.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case skillfeedback.FieldGateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGateID(v)
		return nil
	case skillfeedback.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case skillfeedback.FieldLesson:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLesson(v)
		return nil
	case skillfeedback.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SkillFeedback field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SkillFeedbackMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SkillFeedbackMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillFeedbackMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SkillFeedback numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SkillFeedbackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(skillfeedback.FieldGateID) {
		fields = append(fields, skillfeedback.FieldGateID)
	}
	if m.FieldCleared(skillfeedback.FieldComment) {
		fields = append(fields, skillfeedback.FieldComment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SkillFeedbackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SkillFeedbackMutation) ClearField(name string) error {
	switch name {
	case skillfeedback.FieldGateID:
		m.ClearGateID()
		return nil
	case skillfeedback.FieldComment:
		m.ClearComment()
		return nil
	}
	return fmt.Errorf("unknown SkillFeedback nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SkillFeedbackMutation) ResetField(name string) error {
	switch name {
	case skillfeedback.FieldAgentRole:
		m.ResetAgentRole()
		return nil
	case skillfeedback.FieldTaskID:
		m.ResetTaskID()
		return nil
	case skillfeedback.FieldGateID:
		m.ResetGateID()
		return nil
	case skillfeedback.FieldComment:
		m.ResetComment()
		return nil
	case skillfeedback.FieldLesson:
		m.ResetLesson()
		return nil
	case skillfeedback.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SkillFeedback field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SkillFeedbackMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SkillFeedbackMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SkillFeedbackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SkillFeedbackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SkillFeedbackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SkillFeedbackMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SkillFeedbackMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SkillFeedback unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SkillFeedbackMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SkillFeedback edge %s", name)
}

// StageLogMutation represents an operation that mutates the StageLog nodes in the graph.
type StageLogMutation struct {
	config
	op             Op
	typ            string
	id             *string
	stage_id       *string
	correlation_id *string
	sequence       *int
	addsequence    *int
	event_type     *string
	source         *stagelog.Source
	status         *stagelog.Status
	request        *string
	response       *string
	command        *string
	command_args   *map[string]interface{}
	workspace      *string
	execution_mode *string
	duration_ms    *int64
	addduration_ms *int64
	result         *string
	summary        *string
	truncated      *bool
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	task           *string
	clearedtask    bool
	done           bool
	oldValue       func(context.Context) (*StageLog, error)
	predicates     []predicate.StageLog
}

var _ ent.Mutation = (*StageLogMutation)(nil)

// stagelogOption allows management of the mutation configuration using functional options.
type stagelogOption func(*StageLogMutation)

// newStageLogMutation creates new mutation for the StageLog entity.
func newStageLogMutation(c config, op Op, opts ...stagelogOption) *StageLogMutation {
	m := &StageLogMutation{
		config:        c,
		op:            op,
		typ:           TypeStageLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageLogID sets the ID field of the mutation.
func withStageLogID(id string) stagelogOption {
	return func(m *StageLogMutation) {
		var (
			err   error
			once  sync.Once
			value *StageLog
		)
		m.oldValue = func(ctx context.Context) (*StageLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StageLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStageLog sets the old StageLog of the mutation.
func withStageLog(node *StageLog) stagelogOption {
	return func(m *StageLogMutation) {
		m.oldValue = func(context.Context) (*StageLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StageLog entities.
func (m *StageLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StageLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *StageLogMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *StageLogMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the StageLog entity.
// If the StageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageLogMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *StageLogMutation) ResetTaskID() {
	m.task = nil
}

// SetStageID sets the "stage_id" field.
func (m *StageLogMutation) SetStageID(s string) {
	m.stage_id = &s
}

// StageID returns the value of the "stage_id" field in the mutation.
func (m *StageLogMutation) StageID() (r string, exists bool) {
	v := m.stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStageID returns the old "stage_id" field's value of the StageLog entity.
// If the StageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageLogMutation) OldStageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageID: %w", err)
	}
	return oldValue.StageID, nil
}

// ClearStageID clears the value of the "stage_id" field.
func (m *StageLogMutation) ClearStageID() {
	m.stage_id = nil
	m.clearedFields[stagelog.FieldStageID] = struct{}{}
}

// StageIDCleared returns if the "stage_id" field was cleared in this mutation.
func (m *StageLogMutation) StageIDCleared() bool {
	_, ok := m.clearedFields[stagelog.FieldStageID]
	return ok
}

// ResetStageID resets all changes to the "stage_id" field.
func (m *StageLogMutation) ResetStageID() {
	m.stage_id = nil
	delete(m.clearedFields, stagelog.FieldStageID)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *StageLogMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *StageLogMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the StageLog entity.
// If the StageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageLogMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *StageLogMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[stagelog.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *StageLogMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[stagelog.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *StageLogMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, stagelog.FieldCorrelationID)
}

// SetSequence sets the "sequence" field.
func (m *StageLogMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *StageLogMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the StageLog entity.
// If the StageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageLogMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *StageLogMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *StageLogMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *StageLogMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetEventType sets the "event_type" field.
func (m *StageLogMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *StageLogMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the StageLog entity.
// If the StageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageLogMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *StageLogMutation) ResetEventType() {
	m.event_type = nil
}

// SetSource sets the "source" field.
func (m *StageLogMutation) SetSource(s stagelog.Source) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *StageLogMutation) Source() (r stagelog.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the StageLog entity.
// If the StageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageLogMutation) OldSource(ctx context.Context) (v stagelog.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *StageLogMutation) ResetSource() {
	m.source = nil
}

// SetStatus sets the "status" field.
func (m *StageLogMutation) SetStatus(s stagelog.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StageLogMutation) Status() (r stagelog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StageLog entity.
// If the StageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageLogMutation) OldStatus(ctx context.Context) (v stagelog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StageLogMutation) ResetStatus() {
	m.status = nil
}

// SetRequest sets the "request" field.
func (m *StageLogMutation) SetRequest(s string) {
	m.request = &s
}

// Request returns the value of the "request" field in the mutation.
func (m *StageLogMutation) Request() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequest returns the old "request" field's value of the StageLog entity.
// If the StageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageLogMutation) OldRequest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequest: %w", err)
	}
	return oldValue.Request, nil
}

// ClearRequest clears the value of the "request" field.
func (m *StageLogMutation) ClearRequest() {
	m.request = nil
	m.clearedFields[stagelog.FieldRequest] = struct{}{}
}

// RequestCleared returns if the "request" field was cleared in this mutation.
func (m *StageLogMutation) RequestCleared() bool {
	_, ok := m.clearedFields[stagelog.FieldRequest]
	return ok
}

// ResetRequest resets all changes to the "request" field.
func (m *StageLogMutation) ResetRequest() {
	m.request = nil
	delete(m.clearedFields, stagelog.FieldRequest)
}

// SetResponse sets the "response" field.
func (m *StageLogMutation) SetResponse(s string) {
	m.response = &s
}

// Response returns the value of the "response" field in the mutation.
func (m *StageLogMutation) Response() (r string, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the StageLog entity.
// If the StageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageLogMutation) OldResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ClearResponse clears the value of the "response" field.
func (m *StageLogMutation) ClearResponse() {
	m.response = nil
	m.clearedFields[stagelog.FieldResponse] = struct{}{}
}

// ResponseCleared returns if the "response" field was cleared in this mutation.
func (m *StageLogMutation) ResponseCleared() bool {
	_, ok := m.clearedFields[stagelog.FieldResponse]
	return ok
}

// ResetResponse resets all changes to the "response" field.
func (m *StageLogMutation) ResetResponse() {
	m.response = nil
	delete(m.clearedFields, stagelog.FieldResponse)
}

// SetCommand sets the "command" field.
func (m *StageLogMutation) SetCommand(s string) {
	m.command = &s
}

// Command returns the value of the "command" field in the mutation.
func (m *StageLogMutation) Command() (r string, exists bool) {
	v := m.command
	if v == nil {
		return
	}
	return *v, true
}

// OldCommand returns the old "command" field's value of the StageLog entity.
// If the StageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageLogMutation) OldCommand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommand: %w", err)
	}
	return oldValue.Command, nil
}

// ClearCommand clears the value of the "command" field.
func (m *StageLogMutation) ClearCommand() {
	m.command = nil
	m.clearedFields[stagelog.FieldCommand] = struct{}{}
}

// CommandCleared returns if the "command" field was cleared in this mutation.
func (m *StageLogMutation) CommandCleared() bool {
	_, ok := m.clearedFields[stagelog.FieldCommand]
	return ok
}

// ResetCommand resets all changes to the "command" field.
func (m *StageLogMutation) ResetCommand() {
	m.command = nil
	delete(m.clearedFields, stagelog.FieldCommand)
}

// SetCommandArgs sets the "command_args" field.
func (m *StageLogMutation) SetCommandArgs(value map[string]interface{}) {
	m.command_args = &value
}

// CommandArgs returns the value of the "command_args" field in the mutation.
func (m *StageLogMutation) CommandArgs() (r map[string]interface{}, exists bool) {
	v := m.command_args
	if v == nil {
		return
	}
	return *v, true
}

// OldCommandArgs returns the old "command_args" field's value of the StageLog entity.
// If the StageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageLogMutation) OldCommandArgs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommandArgs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommandArgs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommandArgs: %w", err)
	}
	return oldValue.CommandArgs, nil
}

// ClearCommandArgs clears the value of the "command_args" field.
func (m *StageLogMutation) ClearCommandArgs() {
	m.command_args = nil
	m.clearedFields[stagelog.FieldCommandArgs] = struct{}{}
}

// CommandArgsCleared returns if the "command_args" field was cleared in this mutation.
func (m *StageLogMutation) CommandArgsCleared() bool {
	_, ok := m.clearedFields[stagelog.FieldCommandArgs]
	return ok
}

// ResetCommandArgs resets all changes to the "command_args" field.
func (m *StageLogMutation) ResetCommandArgs() {
	m.command_args = nil
	delete(m.clearedFields, stagelog.FieldCommandArgs)
}

// SetWorkspace sets the "workspace" field.
func (m *StageLogMutation) SetWorkspace(s string) {
	m.workspace = &s
}

// Workspace returns the value of the "workspace" field in the mutation.
func (m *StageLogMutation) Workspace() (r string, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspace returns the old "workspace" field's value of the StageLog entity.
// If the StageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageLogMutation) OldWorkspace(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspace: %w", err)
	}
	return oldValue.Workspace, nil
}

// ClearWorkspace clears the value of the "workspace" field.
func (m *StageLogMutation) ClearWorkspace() {
	m.workspace = nil
	m.clearedFields[stagelog.FieldWorkspace] = struct{}{}
}

// WorkspaceCleared returns if the "workspace" field was cleared in this mutation.
func (m *StageLogMutation) WorkspaceCleared() bool {
	_, ok := m.clearedFields[stagelog.FieldWorkspace]
	return ok
}

// ResetWorkspace resets all changes to the "workspace" field.
func (m *StageLogMutation) ResetWorkspace() {
	m.workspace = nil
	delete(m.clearedFields, stagelog.FieldWorkspace)
}

// SetExecutionMode sets the "execution_mode" field.
func (m *StageLogMutation) SetExecutionMode(s string) {
	m.execution_mode = &s
}

// ExecutionMode returns the value of the "execution_mode" field in the mutation.
func (m *StageLogMutation) ExecutionMode() (r string, exists bool) {
	v := m.execution_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionMode returns the old "execution_mode" field's value of the StageLog entity.
// If the StageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageLogMutation) OldExecutionMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionMode: %w", err)
	}
	return oldValue.ExecutionMode, nil
}

// ClearExecutionMode clears the value of the "execution_mode" field.
func (m *StageLogMutation) ClearExecutionMode() {
	m.execution_mode = nil
	m.clearedFields[stagelog.FieldExecutionMode] = struct{}{}
}

// ExecutionModeCleared returns if the "execution_mode" field was cleared in this mutation.
func (m *StageLogMutation) ExecutionModeCleared() bool {
	_, ok := m.clearedFields[stagelog.FieldExecutionMode]
	return ok
}

// ResetExecutionMode resets all changes to the "execution_mode" field.
func (m *StageLogMutation) ResetExecutionMode() {
	m.execution_mode = nil
	delete(m.clearedFields, stagelog.FieldExecutionMode)
}

// SetDurationMs sets the "duration_ms" field.
func (m *StageLogMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *StageLogMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the StageLog entity.
// If the StageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageLogMutation) OldDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *StageLogMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *StageLogMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *StageLogMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[stagelog.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *StageLogMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[stagelog.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *StageLogMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, stagelog.FieldDurationMs)
}

// SetResult sets the "result" field.
func (m *StageLogMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *StageLogMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the StageLog entity.
// If the StageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageLogMutation) OldResult(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *StageLogMutation) ClearResult() {
	m.result = nil
	m.clearedFields[stagelog.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *StageLogMutation) ResultCleared() bool {
	_, ok := m.clearedFields[stagelog.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *StageLogMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, stagelog.FieldResult)
}

// SetSummary sets the "summary" field.
func (m *StageLogMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *StageLogMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the StageLog entity.
// If the StageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageLogMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *StageLogMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[stagelog.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *StageLogMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[stagelog.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *StageLogMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, stagelog.FieldSummary)
}

// SetTruncated sets the "truncated" field.
func (m *StageLogMutation) SetTruncated(b bool) {
	m.truncated = &b
}

// Truncated returns the value of the "truncated" field in the mutation.
func (m *StageLogMutation) Truncated() (r bool, exists bool) {
	v := m.truncated
	if v == nil {
		return
	}
	return *v, true
}

// OldTruncated returns the old "truncated" field's value of the StageLog entity.
// If the StageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageLogMutation) OldTruncated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTruncated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTruncated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTruncated: %w", err)
	}
	return oldValue.Truncated, nil
}

// ResetTruncated resets all changes to the "truncated" field.
func (m *StageLogMutation) ResetTruncated() {
	m.truncated = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StageLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StageLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StageLog entity.
// If the StageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StageLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StageLogMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StageLogMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StageLog entity.
// If the StageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageLogMutation) OldUpdatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ClearUpdatedAt clears the value of the "updated_at" field.
func (m *StageLogMutation) ClearUpdatedAt() {
	m.updated_at = nil
	m.clearedFields[stagelog.FieldUpdatedAt] = struct{}{}
}

// UpdatedAtCleared returns if the "updated_at" field was cleared in this mutation.
func (m *StageLogMutation) UpdatedAtCleared() bool {
	_, ok := m.clearedFields[stagelog.FieldUpdatedAt]
	return ok
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StageLogMutation) ResetUpdatedAt() {
	m.updated_at = nil
	delete(m.clearedFields, stagelog.FieldUpdatedAt)
}

// ClearTask clears the "task" edge to the Task entity.
func (m *StageLogMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[stagelog.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *StageLogMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *StageLogMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *StageLogMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the StageLogMutation builder.
func (m *StageLogMutation) Where(ps ...predicate.StageLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StageLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StageLog).
func (m *StageLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageLogMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.task != nil {
		fields = append(fields, stagelog.FieldTaskID)
	}
	if m.stage_id != nil {
		fields = append(fields, stagelog.FieldStageID)
	}
	if m.correlation_id != nil {
		fields = append(fields, stagelog.FieldCorrelationID)
	}
	if m.sequence != nil {
		fields = append(fields, stagelog.FieldSequence)
	}
	if m.event_type != nil {
		fields = append(fields, stagelog.FieldEventType)
	}
	if m.source != nil {
		fields = append(fields, stagelog.FieldSource)
	}
	if m.status != nil {
		fields = append(fields, stagelog.FieldStatus)
	}
	if m.request != nil {
		fields = append(fields, stagelog.FieldRequest)
	}
	if m.response != nil {
		fields = append(fields, stagelog.FieldResponse)
	}
	if m.command != nil {
		fields = append(fields, stagelog.FieldCommand)
	}
	if m.command_args != nil {
		fields = append(fields, stagelog.FieldCommandArgs)
	}
	if m.workspace != nil {
		fields = append(fields, stagelog.FieldWorkspace)
	}
	if m.execution_mode != nil {
		fields = append(fields, stagelog.FieldExecutionMode)
	}
	if m.duration_ms != nil {
		fields = append(fields, stagelog.FieldDurationMs)
	}
	if m.result != nil {
		fields = append(fields, stagelog.FieldResult)
	}
	if m.summary != nil {
		fields = append(fields, stagelog.FieldSummary)
	}
	if m.truncated != nil {
		fields = append(fields, stagelog.FieldTruncated)
	}
	if m.created_at != nil {
		fields = append(fields, stagelog.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, stagelog.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stagelog.FieldTaskID:
		return m.TaskID()
	case stagelog.FieldStageID:
		return m.StageID()
	case stagelog.FieldCorrelationID:
		return m.CorrelationID()
	case stagelog.FieldSequence:
		return m.Sequence()
	case stagelog.FieldEventType:
		return m.EventType()
	case stagelog.FieldSource:
		return m.Source()
	case stagelog.FieldStatus:
		return m.Status()
	case stagelog.FieldRequest:
		return m.Request()
	case stagelog.FieldResponse:
		return m.Response()
	case stagelog.FieldCommand:
		return m.Command()
	case stagelog.FieldCommandArgs:
		return m.CommandArgs()
	case stagelog.FieldWorkspace:
		return m.Workspace()
	case stagelog.FieldExecutionMode:
		return m.ExecutionMode()
	case stagelog.FieldDurationMs:
		return m.DurationMs()
	case stagelog.FieldResult:
		return m.Result()
	case stagelog.FieldSummary:
		return m.Summary()
	case stagelog.FieldTruncated:
		return m.Truncated()
	case stagelog.FieldCreatedAt:
		return m.CreatedAt()
	case stagelog.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stagelog.FieldTaskID:
		return m.OldTaskID(ctx)
	case stagelog.FieldStageID:
		return m.OldStageID(ctx)
	case stagelog.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case stagelog.FieldSequence:
		return m.OldSequence(ctx)
	case stagelog.FieldEventType:
		return m.OldEventType(ctx)
	case stagelog.FieldSource:
		return m.OldSource(ctx)
	case stagelog.FieldStatus:
		return m.OldStatus(ctx)
	case stagelog.FieldRequest:
		return m.OldRequest(ctx)
	case stagelog.FieldResponse:
		return m.OldResponse(ctx)
	case stagelog.FieldCommand:
		return m.OldCommand(ctx)
	case stagelog.FieldCommandArgs:
		return m.OldCommandArgs(ctx)
	case stagelog.FieldWorkspace:
		return m.OldWorkspace(ctx)
	case stagelog.FieldExecutionMode:
		return m.OldExecutionMode(ctx)
	case stagelog.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case stagelog.FieldResult:
		return m.OldResult(ctx)
	case stagelog.FieldSummary:
		return m.OldSummary(ctx)
	case stagelog.FieldTruncated:
		return m.OldTruncated(ctx)
	case stagelog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stagelog.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StageLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stagelog.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case stagelog.FieldStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageID(v)
		return nil
	case stagelog.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case stagelog.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case stagelog.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case stagelog.FieldSource:
		v, ok := value.(stagelog.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case stagelog.FieldStatus:
		v, ok := value.(stagelog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stagelog.FieldRequest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequest(v)
		return nil
	case stagelog.FieldResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case stagelog.FieldCommand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommand(v)
		return nil
	case stagelog.FieldCommandArgs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommandArgs(v)
		return nil
	case stagelog.FieldWorkspace:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspace(v)
		return nil
	case stagelog.FieldExecutionMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionMode(v)
		return nil
	case stagelog.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case stagelog.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case stagelog.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case stagelog.FieldTruncated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTruncated(v)
		return nil
	case stagelog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stagelog.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StageLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageLogMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, stagelog.FieldSequence)
	}
	if m.addduration_ms != nil {
		fields = append(fields, stagelog.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stagelog.FieldSequence:
		return m.AddedSequence()
	case stagelog.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stagelog.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case stagelog.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown StageLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stagelog.FieldStageID) {
		fields = append(fields, stagelog.FieldStageID)
	}
	if m.FieldCleared(stagelog.FieldCorrelationID) {
		fields = append(fields, stagelog.FieldCorrelationID)
	}
	if m.FieldCleared(stagelog.FieldRequest) {
		fields = append(fields, stagelog.FieldRequest)
	}
	if m.FieldCleared(stagelog.FieldResponse) {
		fields = append(fields, stagelog.FieldResponse)
	}
	if m.FieldCleared(stagelog.FieldCommand) {
		fields = append(fields, stagelog.FieldCommand)
	}
	if m.FieldCleared(stagelog.FieldCommandArgs) {
		fields = append(fields, stagelog.FieldCommandArgs)
	}
	if m.FieldCleared(stagelog.FieldWorkspace) {
		fields = append(fields, stagelog.FieldWorkspace)
	}
	if m.FieldCleared(stagelog.FieldExecutionMode) {
		fields = append(fields, stagelog.FieldExecutionMode)
	}
	if m.FieldCleared(stagelog.FieldDurationMs) {
		fields = append(fields, stagelog.FieldDurationMs)
	}
	if m.FieldCleared(stagelog.FieldResult) {
		fields = append(fields, stagelog.FieldResult)
	}
	if m.FieldCleared(stagelog.FieldSummary) {
		fields = append(fields, stagelog.FieldSummary)
	}
	if m.FieldCleared(stagelog.FieldUpdatedAt) {
		fields = append(fields, stagelog.FieldUpdatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageLogMutation) ClearField(name string) error {
	switch name {
	case stagelog.FieldStageID:
		m.ClearStageID()
		return nil
	case stagelog.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	case stagelog.FieldRequest:
		m.ClearRequest()
		return nil
	case stagelog.FieldResponse:
		m.ClearResponse()
		return nil
	case stagelog.FieldCommand:
		m.ClearCommand()
		return nil
	case stagelog.FieldCommandArgs:
		m.ClearCommandArgs()
		return nil
	case stagelog.FieldWorkspace:
		m.ClearWorkspace()
		return nil
	case stagelog.FieldExecutionMode:
		m.ClearExecutionMode()
		return nil
	case stagelog.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case stagelog.FieldResult:
		m.ClearResult()
		return nil
	case stagelog.FieldSummary:
		m.ClearSummary()
		return nil
	case stagelog.FieldUpdatedAt:
		m.ClearUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StageLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageLogMutation) ResetField(name string) error {
	switch name {
	case stagelog.FieldTaskID:
		m.ResetTaskID()
		return nil
	case stagelog.FieldStageID:
		m.ResetStageID()
		return nil
	case stagelog.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case stagelog.FieldSequence:
		m.ResetSequence()
		return nil
	case stagelog.FieldEventType:
		m.ResetEventType()
		return nil
	case stagelog.FieldSource:
		m.ResetSource()
		return nil
	case stagelog.FieldStatus:
		m.ResetStatus()
		return nil
	case stagelog.FieldRequest:
		m.ResetRequest()
		return nil
	case stagelog.FieldResponse:
		m.ResetResponse()
		return nil
	case stagelog.FieldCommand:
		m.ResetCommand()
		return nil
	case stagelog.FieldCommandArgs:
		m.ResetCommandArgs()
		return nil
	case stagelog.FieldWorkspace:
		m.ResetWorkspace()
		return nil
	case stagelog.FieldExecutionMode:
		m.ResetExecutionMode()
		return nil
	case stagelog.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case stagelog.FieldResult:
		m.ResetResult()
		return nil
	case stagelog.FieldSummary:
		m.ResetSummary()
		return nil
	case stagelog.FieldTruncated:
		m.ResetTruncated()
		return nil
	case stagelog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stagelog.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StageLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, stagelog.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stagelog.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, stagelog.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageLogMutation) EdgeCleared(name string) bool {
	switch name {
	case stagelog.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageLogMutation) ClearEdge(name string) error {
	switch name {
	case stagelog.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown StageLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageLogMutation) ResetEdge(name string) error {
	switch name {
	case stagelog.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown StageLog edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	external_id             *string
	title                   *string
	description             *string
	status                  *task.Status
	total_tokens            *int
	addtotal_tokens         *int
	total_cost              *float64
	addtotal_cost           *float64
	template_version        *int
	addtemplate_version     *int
	plan                    *string
	routing_decisions       *[]models.RoutingDecision
	appendrouting_decisions []models.RoutingDecision
	branch_name             *string
	pr_url                  *string
	error                   *string
	claimed_by              *string
	created_at              *time.Time
	claimed_at              *time.Time
	started_at              *time.Time
	completed_at            *time.Time
	heartbeat_at            *time.Time
	clearedFields           map[string]struct{}
	template                *string
	clearedtemplate         bool
	project                 *string
	clearedproject          bool
	stages                  map[string]struct{}
	removedstages           map[string]struct{}
	clearedstages           bool
	gates                   map[string]struct{}
	removedgates            map[string]struct{}
	clearedgates            bool
	logs                    map[string]struct{}
	removedlogs             map[string]struct{}
	clearedlogs             bool
	breakers                map[string]struct{}
	removedbreakers         map[string]struct{}
	clearedbreakers         bool
	kpis                    map[string]struct{}
	removedkpis             map[string]struct{}
	clearedkpis             bool
	done                    bool
	oldValue                func(context.Context) (*Task, error)
	predicates              []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExternalID sets the "external_id" field.
func (m *TaskMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *TaskMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldExternalID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ClearExternalID clears the value of the "external_id" field.
func (m *TaskMutation) ClearExternalID() {
	m.external_id = nil
	m.clearedFields[task.FieldExternalID] = struct{}{}
}

// ExternalIDCleared returns if the "external_id" field was cleared in this mutation.
func (m *TaskMutation) ExternalIDCleared() bool {
	_, ok := m.clearedFields[task.FieldExternalID]
	return ok
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *TaskMutation) ResetExternalID() {
	m.external_id = nil
	delete(m.clearedFields, task.FieldExternalID)
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[task.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[task.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, task.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *TaskMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *TaskMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *TaskMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *TaskMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *TaskMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetTotalCost sets the "total_cost" field.
func (m *TaskMutation) SetTotalCost(f float64) {
	m.total_cost = &f
	m.addtotal_cost = nil
}

// TotalCost returns the value of the "total_cost" field in the mutation.
func (m *TaskMutation) TotalCost() (r float64, exists bool) {
	v := m.total_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCost returns the old "total_cost" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTotalCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCost: %w", err)
	}
	return oldValue.TotalCost, nil
}

// AddTotalCost adds f to the "total_cost" field.
func (m *TaskMutation) AddTotalCost(f float64) {
	if m.addtotal_cost != nil {
		*m.addtotal_cost += f
	} else {
		m.addtotal_cost = &f
	}
}

// AddedTotalCost returns the value that was added to the "total_cost" field in this mutation.
func (m *TaskMutation) AddedTotalCost() (r float64, exists bool) {
	v := m.addtotal_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCost resets all changes to the "total_cost" field.
func (m *TaskMutation) ResetTotalCost() {
	m.total_cost = nil
	m.addtotal_cost = nil
}

// SetTemplateID sets the "template_id" field.
func (m *TaskMutation) SetTemplateID(s string) {
	m.template = &s
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *TaskMutation) TemplateID() (r string, exists bool) {
	v := m.template
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTemplateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *TaskMutation) ResetTemplateID() {
	m.template = nil
}

// SetTemplateVersion sets the "template_version" field.
func (m *TaskMutation) SetTemplateVersion(i int) {
	m.template_version = &i
	m.addtemplate_version = nil
}

// TemplateVersion returns the value of the "template_version" field in the mutation.
func (m *TaskMutation) TemplateVersion() (r int, exists bool) {
	v := m.template_version
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateVersion returns the old "template_version" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTemplateVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateVersion: %w", err)
	}
	return oldValue.TemplateVersion, nil
}

// AddTemplateVersion adds i to the "template_version" field.
func (m *TaskMutation) AddTemplateVersion(i int) {
	if m.addtemplate_version != nil {
		*m.addtemplate_version += i
	} else {
		m.addtemplate_version = &i
	}
}

// AddedTemplateVersion returns the value that was added to the "template_version" field in this mutation.
func (m *TaskMutation) AddedTemplateVersion() (r int, exists bool) {
	v := m.addtemplate_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemplateVersion resets all changes to the "template_version" field.
func (m *TaskMutation) ResetTemplateVersion() {
	m.template_version = nil
	m.addtemplate_version = nil
}

// SetProjectID sets the "project_id" field.
func (m *TaskMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TaskMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProjectID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *TaskMutation) ClearProjectID() {
	m.project = nil
	m.clearedFields[task.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *TaskMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[task.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TaskMutation) ResetProjectID() {
	m.project = nil
	delete(m.clearedFields, task.FieldProjectID)
}

// SetPlan sets the "plan" field.
func (m *TaskMutation) SetPlan(s string) {
	m.plan = &s
}

// Plan returns the value of the "plan" field in the mutation.
func (m *TaskMutation) Plan() (r string, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPlan(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// ClearPlan clears the value of the "plan" field.
func (m *TaskMutation) ClearPlan() {
	m.plan = nil
	m.clearedFields[task.FieldPlan] = struct{}{}
}

// PlanCleared returns if the "plan" field was cleared in this mutation.
func (m *TaskMutation) PlanCleared() bool {
	_, ok := m.clearedFields[task.FieldPlan]
	return ok
}

// ResetPlan resets all changes to the "plan" field.
func (m *TaskMutation) ResetPlan() {
	m.plan = nil
	delete(m.clearedFields, task.FieldPlan)
}

// SetRoutingDecisions sets the "routing_decisions" field.
func (m *TaskMutation) SetRoutingDecisions(md []models.RoutingDecision) {
	m.routing_decisions = &md
	m.appendrouting_decisions = nil
}

// RoutingDecisions returns the value of the "routing_decisions" field in the mutation.
func (m *TaskMutation) RoutingDecisions() (r []models.RoutingDecision, exists bool) {
	v := m.routing_decisions
	if v == nil {
		return
	}
	return *v, true
}

// OldRoutingDecisions returns the old "routing_decisions" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRoutingDecisions(ctx context.Context) (v []models.RoutingDecision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoutingDecisions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoutingDecisions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoutingDecisions: %w", err)
	}
	return oldValue.RoutingDecisions, nil
}

// AppendRoutingDecisions adds md to the "routing_decisions" field.
func (m *TaskMutation) AppendRoutingDecisions(md []models.RoutingDecision) {
	m.appendrouting_decisions = append(m.appendrouting_decisions, md...)
}

// AppendedRoutingDecisions returns the list of values that were appended to the "routing_decisions" field in this mutation.
func (m *TaskMutation) AppendedRoutingDecisions() ([]models.RoutingDecision, bool) {
	if len(m.appendrouting_decisions) == 0 {
		return nil, false
	}
	return m.appendrouting_decisions, true
}

// ClearRoutingDecisions clears the value of the "routing_decisions" field.
func (m *TaskMutation) ClearRoutingDecisions() {
	m.routing_decisions = nil
	m.appendrouting_decisions = nil
	m.clearedFields[task.FieldRoutingDecisions] = struct{}{}
}

// RoutingDecisionsCleared returns if the "routing_decisions" field was cleared in this mutation.
func (m *TaskMutation) RoutingDecisionsCleared() bool {
	_, ok := m.clearedFields[task.FieldRoutingDecisions]
	return ok
}

// ResetRoutingDecisions resets all changes to the "routing_decisions" field.
func (m *TaskMutation) ResetRoutingDecisions() {
	m.routing_decisions = nil
	m.appendrouting_decisions = nil
	delete(m.clearedFields, task.FieldRoutingDecisions)
}

// SetBranchName sets the "branch_name" field.
func (m *TaskMutation) SetBranchName(s string) {
	m.branch_name = &s
}

// BranchName returns the value of the "branch_name" field in the mutation.
func (m *TaskMutation) BranchName() (r string, exists bool) {
	v := m.branch_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchName returns the old "branch_name" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldBranchName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchName: %w", err)
	}
	return oldValue.BranchName, nil
}

// ClearBranchName clears the value of the "branch_name" field.
func (m *TaskMutation) ClearBranchName() {
	m.branch_name = nil
	m.clearedFields[task.FieldBranchName] = struct{}{}
}

// BranchNameCleared returns if the "branch_name" field was cleared in this mutation.
func (m *TaskMutation) BranchNameCleared() bool {
	_, ok := m.clearedFields[task.FieldBranchName]
	return ok
}

// ResetBranchName resets all changes to the "branch_name" field.
func (m *TaskMutation) ResetBranchName() {
	m.branch_name = nil
	delete(m.clearedFields, task.FieldBranchName)
}

// SetPrURL sets the "pr_url" field.
func (m *TaskMutation) SetPrURL(s string) {
	m.pr_url = &s
}

// PrURL returns the value of the "pr_url" field in the mutation.
func (m *TaskMutation) PrURL() (r string, exists bool) {
	v := m.pr_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPrURL returns the old "pr_url" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPrURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrURL: %w", err)
	}
	return oldValue.PrURL, nil
}

// ClearPrURL clears the value of the "pr_url" field.
func (m *TaskMutation) ClearPrURL() {
	m.pr_url = nil
	m.clearedFields[task.FieldPrURL] = struct{}{}
}

// PrURLCleared returns if the "pr_url" field was cleared in this mutation.
func (m *TaskMutation) PrURLCleared() bool {
	_, ok := m.clearedFields[task.FieldPrURL]
	return ok
}

// ResetPrURL resets all changes to the "pr_url" field.
func (m *TaskMutation) ResetPrURL() {
	m.pr_url = nil
	delete(m.clearedFields, task.FieldPrURL)
}

// SetError sets the "error" field.
func (m *TaskMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *TaskMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *TaskMutation) ClearError() {
	m.error = nil
	m.clearedFields[task.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *TaskMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[task.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *TaskMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, task.FieldError)
}

// SetClaimedBy sets the "claimed_by" field.
func (m *TaskMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *TaskMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *TaskMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[task.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *TaskMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[task.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *TaskMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, task.FieldClaimedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetClaimedAt sets the "claimed_at" field.
func (m *TaskMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *TaskMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *TaskMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[task.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *TaskMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *TaskMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, task.FieldClaimedAt)
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *TaskMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *TaskMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (m *TaskMutation) ClearHeartbeatAt() {
	m.heartbeat_at = nil
	m.clearedFields[task.FieldHeartbeatAt] = struct{}{}
}

// HeartbeatAtCleared returns if the "heartbeat_at" field was cleared in this mutation.
func (m *TaskMutation) HeartbeatAtCleared() bool {
	_, ok := m.clearedFields[task.FieldHeartbeatAt]
	return ok
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *TaskMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
	delete(m.clearedFields, task.FieldHeartbeatAt)
}

// ClearTemplate clears the "template" edge to the TaskTemplate entity.
func (m *TaskMutation) ClearTemplate() {
	m.clearedtemplate = true
	m.clearedFields[task.FieldTemplateID] = struct{}{}
}

// TemplateCleared reports if the "template" edge to the TaskTemplate entity was cleared.
func (m *TaskMutation) TemplateCleared() bool {
	return m.clearedtemplate
}

// TemplateIDs returns the "template" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TemplateID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) TemplateIDs() (ids []string) {
	if id := m.template; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTemplate resets all changes to the "template" edge.
func (m *TaskMutation) ResetTemplate() {
	m.template = nil
	m.clearedtemplate = false
}

// ClearProject clears the "project" edge to the Project entity.
func (m *TaskMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[task.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *TaskMutation) ProjectCleared() bool {
	return m.ProjectIDCleared() || m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *TaskMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddStageIDs adds the "stages" edge to the TaskStage entity by ids.
func (m *TaskMutation) AddStageIDs(ids ...string) {
	if m.stages == nil {
		m.stages = make(map[string]struct{})
	}
	for i := range ids {
		m.stages[ids[i]] = struct{}{}
	}
}

// ClearStages clears the "stages" edge to the TaskStage entity.
func (m *TaskMutation) ClearStages() {
	m.clearedstages = true
}

// StagesCleared reports if the "stages" edge to the TaskStage entity was cleared.
func (m *TaskMutation) StagesCleared() bool {
	return m.clearedstages
}

// RemoveStageIDs removes the "stages" edge to the TaskStage entity by IDs.
func (m *TaskMutation) RemoveStageIDs(ids ...string) {
	if m.removedstages == nil {
		m.removedstages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.stages, ids[i])
		m.removedstages[ids[i]] = struct{}{}
	}
}

// RemovedStages returns the removed IDs of the "stages" edge to the TaskStage entity.
func (m *TaskMutation) RemovedStagesIDs() (ids []string) {
	for id := range m.removedstages {
		ids = append(ids, id)
	}
	return
}

// StagesIDs returns the "stages" edge IDs in the mutation.
func (m *TaskMutation) StagesIDs() (ids []string) {
	for id := range m.stages {
		ids = append(ids, id)
	}
	return
}

// ResetStages resets all changes to the "stages" edge.
func (m *TaskMutation) ResetStages() {
	m.stages = nil
	m.clearedstages = false
	m.removedstages = nil
}

// AddGateIDs adds the "gates" edge to the HumanGate entity by ids.
func (m *TaskMutation) AddGateIDs(ids ...string) {
	if m.gates == nil {
		m.gates = make(map[string]struct{})
	}
	for i := range ids {
		m.gates[ids[i]] = struct{}{}
	}
}

// ClearGates clears the "gates" edge to the HumanGate entity.
func (m *TaskMutation) ClearGates() {
	m.clearedgates = true
}

// GatesCleared reports if the "gates" edge to the HumanGate entity was cleared.
func (m *TaskMutation) GatesCleared() bool {
	return m.clearedgates
}

// RemoveGateIDs removes the "gates" edge to the HumanGate entity by IDs.
func (m *TaskMutation) RemoveGateIDs(ids ...string) {
	if m.removedgates == nil {
		m.removedgates = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.gates, ids[i])
		m.removedgates[ids[i]] = struct{}{}
	}
}

// RemovedGates returns the removed IDs of the "gates" edge to the HumanGate entity.
func (m *TaskMutation) RemovedGatesIDs() (ids []string) {
	for id := range m.removedgates {
		ids = append(ids, id)
	}
	return
}

// GatesIDs returns the "gates" edge IDs in the mutation.
func (m *TaskMutation) GatesIDs() (ids []string) {
	for id := range m.gates {
		ids = append(ids, id)
	}
	return
}

// ResetGates resets all changes to the "gates" edge.
func (m *TaskMutation) ResetGates() {
	m.gates = nil
	m.clearedgates = false
	m.removedgates = nil
}

// AddLogIDs adds the "logs" edge to the StageLog entity by ids.
func (m *TaskMutation) AddLogIDs(ids ...string) {
	if m.logs == nil {
		m.logs = make(map[string]struct{})
	}
	for i := range ids {
		m.logs[ids[i]] = struct{}{}
	}
}

// ClearLogs clears the "logs" edge to the StageLog entity.
func (m *TaskMutation) ClearLogs() {
	m.clearedlogs = true
}

// LogsCleared reports if the "logs" edge to the StageLog entity was cleared.
func (m *TaskMutation) LogsCleared() bool {
	return m.clearedlogs
}

// RemoveLogIDs removes the "logs" edge to the StageLog entity by IDs.
func (m *TaskMutation) RemoveLogIDs(ids ...string) {
	if m.removedlogs == nil {
		m.removedlogs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.logs, ids[i])
		m.removedlogs[ids[i]] = struct{}{}
	}
}

// RemovedLogs returns the removed IDs of the "logs" edge to the StageLog entity.
func (m *TaskMutation) RemovedLogsIDs() (ids []string) {
	for id := range m.removedlogs {
		ids = append(ids, id)
	}
	return
}

// LogsIDs returns the "logs" edge IDs in the mutation.
func (m *TaskMutation) LogsIDs() (ids []string) {
	for id := range m.logs {
		ids = append(ids, id)
	}
	return
}

// ResetLogs resets all changes to the "logs" edge.
func (m *TaskMutation) ResetLogs() {
	m.logs = nil
	m.clearedlogs = false
	m.removedlogs = nil
}

// AddBreakerIDs adds the "breakers" edge to the CircuitBreaker entity by ids.
func (m *TaskMutation) AddBreakerIDs(ids ...string) {
	if m.breakers == nil {
		m.breakers = make(map[string]struct{})
	}
	for i := range ids {
		m.breakers[ids[i]] = struct{}{}
	}
}

// ClearBreakers clears the "breakers" edge to the CircuitBreaker entity.
func (m *TaskMutation) ClearBreakers() {
	m.clearedbreakers = true
}

// BreakersCleared reports if the "breakers" edge to the CircuitBreaker entity was cleared.
func (m *TaskMutation) BreakersCleared() bool {
	return m.clearedbreakers
}

// RemoveBreakerIDs removes the "breakers" edge to the CircuitBreaker entity by IDs.
func (m *TaskMutation) RemoveBreakerIDs(ids ...string) {
	if m.removedbreakers == nil {
		m.removedbreakers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.breakers, ids[i])
		m.removedbreakers[ids[i]] = struct{}{}
	}
}

// RemovedBreakers returns the removed IDs of the "breakers" edge to the CircuitBreaker entity.
func (m *TaskMutation) RemovedBreakersIDs() (ids []string) {
	for id := range m.removedbreakers {
		ids = append(ids, id)
	}
	return
}

// BreakersIDs returns the "breakers" edge IDs in the mutation.
func (m *TaskMutation) BreakersIDs() (ids []string) {
	for id := range m.breakers {
		ids = append(ids, id)
	}
	return
}

// ResetBreakers resets all changes to the "breakers" edge.
func (m *TaskMutation) ResetBreakers() {
	m.breakers = nil
	m.clearedbreakers = false
	m.removedbreakers = nil
}

// AddKpiIDs adds the "kpis" edge to the KPIMetric entity by ids.
func (m *TaskMutation) AddKpiIDs(ids ...string) {
	if m.kpis == nil {
		m.kpis = make(map[string]struct{})
	}
	for i := range ids {
		m.kpis[ids[i]] = struct{}{}
	}
}

// ClearKpis clears the "kpis" edge to the KPIMetric entity.
func (m *TaskMutation) ClearKpis() {
	m.clearedkpis = true
}

// KpisCleared reports if the "kpis" edge to the KPIMetric entity was cleared.
func (m *TaskMutation) KpisCleared() bool {
	return m.clearedkpis
}

// RemoveKpiIDs removes the "kpis" edge to the KPIMetric entity by IDs.
func (m *TaskMutation) RemoveKpiIDs(ids ...string) {
	if m.removedkpis == nil {
		m.removedkpis = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.kpis, ids[i])
		m.removedkpis[ids[i]] = struct{}{}
	}
}

// RemovedKpis returns the removed IDs of the "kpis" edge to the KPIMetric entity.
func (m *TaskMutation) RemovedKpisIDs() (ids []string) {
	for id := range m.removedkpis {
		ids = append(ids, id)
	}
	return
}

// KpisIDs returns the "kpis" edge IDs in the mutation.
func (m *TaskMutation) KpisIDs() (ids []string) {
	for id := range m.kpis {
		ids = append(ids, id)
	}
	return
}

// ResetKpis resets all changes to the "kpis" edge.
func (m *TaskMutation) ResetKpis() {
	m.kpis = nil
	m.clearedkpis = false
	m.removedkpis = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.external_id != nil {
		fields = append(fields, task.FieldExternalID)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.total_tokens != nil {
		fields = append(fields, task.FieldTotalTokens)
	}
	if m.total_cost != nil {
		fields = append(fields, task.FieldTotalCost)
	}
	if m.template != nil {
		fields = append(fields, task.FieldTemplateID)
	}
	if m.template_version != nil {
		fields = append(fields, task.FieldTemplateVersion)
	}
	if m.project != nil {
		fields = append(fields, task.FieldProjectID)
	}
	if m.plan != nil {
		fields = append(fields, task.FieldPlan)
	}
	if m.routing_decisions != nil {
		fields = append(fields, task.FieldRoutingDecisions)
	}
	if m.branch_name != nil {
		fields = append(fields, task.FieldBranchName)
	}
	if m.pr_url != nil {
		fields = append(fields, task.FieldPrURL)
	}
	if m.error != nil {
		fields = append(fields, task.FieldError)
	}
	if m.claimed_by != nil {
		fields = append(fields, task.FieldClaimedBy)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.claimed_at != nil {
		fields = append(fields, task.FieldClaimedAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, task.FieldHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldExternalID:
		return m.ExternalID()
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldStatus:
		return m.Status()
	case task.FieldTotalTokens:
		return m.TotalTokens()
	case task.FieldTotalCost:
		return m.TotalCost()
	case task.FieldTemplateID:
		return m.TemplateID()
	case task.FieldTemplateVersion:
		return m.TemplateVersion()
	case task.FieldProjectID:
		return m.ProjectID()
	case task.FieldPlan:
		return m.Plan()
	case task.FieldRoutingDecisions:
		return m.RoutingDecisions()
	case task.FieldBranchName:
		return m.BranchName()
	case task.FieldPrURL:
		return m.PrURL()
	case task.FieldError:
		return m.Error()
	case task.FieldClaimedBy:
		return m.ClaimedBy()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldClaimedAt:
		return m.ClaimedAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	case task.FieldHeartbeatAt:
		return m.HeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldExternalID:
		return m.OldExternalID(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case task.FieldTotalCost:
		return m.OldTotalCost(ctx)
	case task.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case task.FieldTemplateVersion:
		return m.OldTemplateVersion(ctx)
	case task.FieldProjectID:
		return m.OldProjectID(ctx)
	case task.FieldPlan:
		return m.OldPlan(ctx)
	case task.FieldRoutingDecisions:
		return m.OldRoutingDecisions(ctx)
	case task.FieldBranchName:
		return m.OldBranchName(ctx)
	case task.FieldPrURL:
		return m.OldPrURL(ctx)
	case task.FieldError:
		return m.OldError(ctx)
	case task.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case task.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case task.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCost(v)
		return nil
	case task.FieldTemplateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case task.FieldTemplateVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateVersion(v)
		return nil
	case task.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case task.FieldPlan:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case task.FieldRoutingDecisions:
		v, ok := value.([]models.RoutingDecision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoutingDecisions(v)
		return nil
	case task.FieldBranchName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchName(v)
		return nil
	case task.FieldPrURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrURL(v)
		return nil
	case task.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case task.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case task.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_tokens != nil {
		fields = append(fields, task.FieldTotalTokens)
	}
	if m.addtotal_cost != nil {
		fields = append(fields, task.FieldTotalCost)
	}
	if m.addtemplate_version != nil {
		fields = append(fields, task.FieldTemplateVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTotalTokens:
		return m.AddedTotalTokens()
	case task.FieldTotalCost:
		return m.AddedTotalCost()
	case task.FieldTemplateVersion:
		return m.AddedTemplateVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case task.FieldTotalCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCost(v)
		return nil
	case task.FieldTemplateVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemplateVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldExternalID) {
		fields = append(fields, task.FieldExternalID)
	}
	if m.FieldCleared(task.FieldDescription) {
		fields = append(fields, task.FieldDescription)
	}
	if m.FieldCleared(task.FieldProjectID) {
		fields = append(fields, task.FieldProjectID)
	}
	if m.FieldCleared(task.FieldPlan) {
		fields = append(fields, task.FieldPlan)
	}
	if m.FieldCleared(task.FieldRoutingDecisions) {
		fields = append(fields, task.FieldRoutingDecisions)
	}
	if m.FieldCleared(task.FieldBranchName) {
		fields = append(fields, task.FieldBranchName)
	}
	if m.FieldCleared(task.FieldPrURL) {
		fields = append(fields, task.FieldPrURL)
	}
	if m.FieldCleared(task.FieldError) {
		fields = append(fields, task.FieldError)
	}
	if m.FieldCleared(task.FieldClaimedBy) {
		fields = append(fields, task.FieldClaimedBy)
	}
	if m.FieldCleared(task.FieldClaimedAt) {
		fields = append(fields, task.FieldClaimedAt)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.FieldCleared(task.FieldHeartbeatAt) {
		fields = append(fields, task.FieldHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldExternalID:
		m.ClearExternalID()
		return nil
	case task.FieldDescription:
		m.ClearDescription()
		return nil
	case task.FieldProjectID:
		m.ClearProjectID()
		return nil
	case task.FieldPlan:
		m.ClearPlan()
		return nil
	case task.FieldRoutingDecisions:
		m.ClearRoutingDecisions()
		return nil
	case task.FieldBranchName:
		m.ClearBranchName()
		return nil
	case task.FieldPrURL:
		m.ClearPrURL()
		return nil
	case task.FieldError:
		m.ClearError()
		return nil
	case task.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case task.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case task.FieldHeartbeatAt:
		m.ClearHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldExternalID:
		m.ResetExternalID()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case task.FieldTotalCost:
		m.ResetTotalCost()
		return nil
	case task.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case task.FieldTemplateVersion:
		m.ResetTemplateVersion()
		return nil
	case task.FieldProjectID:
		m.ResetProjectID()
		return nil
	case task.FieldPlan:
		m.ResetPlan()
		return nil
	case task.FieldRoutingDecisions:
		m.ResetRoutingDecisions()
		return nil
	case task.FieldBranchName:
		m.ResetBranchName()
		return nil
	case task.FieldPrURL:
		m.ResetPrURL()
		return nil
	case task.FieldError:
		m.ResetError()
		return nil
	case task.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case task.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.template != nil {
		edges = append(edges, task.EdgeTemplate)
	}
	if m.project != nil {
		edges = append(edges, task.EdgeProject)
	}
	if m.stages != nil {
		edges = append(edges, task.EdgeStages)
	}
	if m.gates != nil {
		edges = append(edges, task.EdgeGates)
	}
	if m.logs != nil {
		edges = append(edges, task.EdgeLogs)
	}
	if m.breakers != nil {
		edges = append(edges, task.EdgeBreakers)
	}
	if m.kpis != nil {
		edges = append(edges, task.EdgeKpis)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeTemplate:
		if id := m.template; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeStages:
		ids := make([]ent.Value, 0, len(m.stages))
		for id := range m.stages {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeGates:
		ids := make([]ent.Value, 0, len(m.gates))
		for id := range m.gates {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.logs))
		for id := range m.logs {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeBreakers:
		ids := make([]ent.Value, 0, len(m.breakers))
		for id := range m.breakers {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeKpis:
		ids := make([]ent.Value, 0, len(m.kpis))
		for id := range m.kpis {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedstages != nil {
		edges = append(edges, task.EdgeStages)
	}
	if m.removedgates != nil {
		edges = append(edges, task.EdgeGates)
	}
	if m.removedlogs != nil {
		edges = append(edges, task.EdgeLogs)
	}
	if m.removedbreakers != nil {
		edges = append(edges, task.EdgeBreakers)
	}
	if m.removedkpis != nil {
		edges = append(edges, task.EdgeKpis)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeStages:
		ids := make([]ent.Value, 0, len(m.removedstages))
		for id := range m.removedstages {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeGates:
		ids := make([]ent.Value, 0, len(m.removedgates))
		for id := range m.removedgates {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.removedlogs))
		for id := range m.removedlogs {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeBreakers:
		ids := make([]ent.Value, 0, len(m.removedbreakers))
		for id := range m.removedbreakers {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeKpis:
		ids := make([]ent.Value, 0, len(m.removedkpis))
		for id := range m.removedkpis {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedtemplate {
		edges = append(edges, task.EdgeTemplate)
	}
	if m.clearedproject {
		edges = append(edges, task.EdgeProject)
	}
	if m.clearedstages {
		edges = append(edges, task.EdgeStages)
	}
	if m.clearedgates {
		edges = append(edges, task.EdgeGates)
	}
	if m.clearedlogs {
		edges = append(edges, task.EdgeLogs)
	}
	if m.clearedbreakers {
		edges = append(edges, task.EdgeBreakers)
	}
	if m.clearedkpis {
		edges = append(edges, task.EdgeKpis)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeTemplate:
		return m.clearedtemplate
	case task.EdgeProject:
		return m.clearedproject
	case task.EdgeStages:
		return m.clearedstages
	case task.EdgeGates:
		return m.clearedgates
	case task.EdgeLogs:
		return m.clearedlogs
	case task.EdgeBreakers:
		return m.clearedbreakers
	case task.EdgeKpis:
		return m.clearedkpis
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeTemplate:
		m.ClearTemplate()
		return nil
	case task.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeTemplate:
		m.ResetTemplate()
		return nil
	case task.EdgeProject:
		m.ResetProject()
		return nil
	case task.EdgeStages:
		m.ResetStages()
		return nil
	case task.EdgeGates:
		m.ResetGates()
		return nil
	case task.EdgeLogs:
		m.ResetLogs()
		return nil
	case task.EdgeBreakers:
		m.ResetBreakers()
		return nil
	case task.EdgeKpis:
		m.ResetKpis()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskStageMutation represents an operation that mutates the TaskStage nodes in the graph.
type TaskStageMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	agent_role         *string
	status             *taskstage.Status
	exec_order         *int
	addexec_order      *int
	started_at         *time.Time
	completed_at       *time.Time
	duration_ms        *int64
	addduration_ms     *int64
	tokens_used        *int
	addtokens_used     *int
	turns_used         *int
	addturns_used      *int
	output             *string
	structured         **models.StructuredOutput
	error              *string
	failure_category   *taskstage.FailureCategory
	confidence         *float64
	addconfidence      *float64
	retry_count        *int
	addretry_count     *int
	execution_count    *int
	addexecution_count *int
	clearedFields      map[string]struct{}
	task               *string
	clearedtask        bool
	done               bool
	oldValue           func(context.Context) (*TaskStage, error)
	predicates         []predicate.TaskStage
}

var _ ent.Mutation = (*TaskStageMutation)(nil)

// taskstageOption allows management of the mutation configuration using functional options.
type taskstageOption func(*TaskStageMutation)

// newTaskStageMutation creates new mutation for the TaskStage entity.
func newTaskStageMutation(c config, op Op, opts ...taskstageOption) *TaskStageMutation {
	m := &TaskStageMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskStage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskStageID sets the ID field of the mutation.
func withTaskStageID(id string) taskstageOption {
	return func(m *TaskStageMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskStage
		)
		m.oldValue = func(ctx context.Context) (*TaskStage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskStage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskStage sets the old TaskStage of the mutation.
func withTaskStage(node *TaskStage) taskstageOption {
	return func(m *TaskStageMutation) {
		m.oldValue = func(context.Context) (*TaskStage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskStageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskStageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskStage entities.
func (m *TaskStageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskStageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskStageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskStage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskStageMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskStageMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskStageMutation) ResetTaskID() {
	m.task = nil
}

// SetName sets the "name" field.
func (m *TaskStageMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TaskStageMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TaskStageMutation) ResetName() {
	m.name = nil
}

// SetAgentRole sets the "agent_role" field.
func (m *TaskStageMutation) SetAgentRole(s string) {
	m.agent_role = &s
}

// AgentRole returns the value of the "agent_role" field in the mutation.
func (m *TaskStageMutation) AgentRole() (r string, exists bool) {
	v := m.agent_role
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentRole returns the old "agent_role" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldAgentRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentRole: %w", err)
	}
	return oldValue.AgentRole, nil
}

// ResetAgentRole resets all changes to the "agent_role" field.
func (m *TaskStageMutation) ResetAgentRole() {
	m.agent_role = nil
}

// SetStatus sets the "status" field.
func (m *TaskStageMutation) SetStatus(t taskstage.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskStageMutation) Status() (r taskstage.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldStatus(ctx context.Context) (v taskstage.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskStageMutation) ResetStatus() {
	m.status = nil
}

// SetExecOrder sets the "exec_order" field.
func (m *TaskStageMutation) SetExecOrder(i int) {
	m.exec_order = &i
	m.addexec_order = nil
}

// ExecOrder returns the value of the "exec_order" field in the mutation.
func (m *TaskStageMutation) ExecOrder() (r int, exists bool) {
	v := m.exec_order
	if v == nil {
		return
	}
	return *v, true
}

// OldExecOrder returns the old "exec_order" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldExecOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecOrder: %w", err)
	}
	return oldValue.ExecOrder, nil
}

// AddExecOrder adds i to the "exec_order" field.
func (m *TaskStageMutation) AddExecOrder(i int) {
	if m.addexec_order != nil {
		*m.addexec_order += i
	} else {
		m.addexec_order = &i
	}
}

// AddedExecOrder returns the value that was added to the "exec_order" field in this mutation.
func (m *TaskStageMutation) AddedExecOrder() (r int, exists bool) {
	v := m.addexec_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetExecOrder resets all changes to the "exec_order" field.
func (m *TaskStageMutation) ResetExecOrder() {
	m.exec_order = nil
	m.addexec_order = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskStageMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskStageMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskStageMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[taskstage.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskStageMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[taskstage.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskStageMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, taskstage.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskStageMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskStageMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskStageMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[taskstage.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskStageMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[taskstage.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskStageMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, taskstage.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *TaskStageMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *TaskStageMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *TaskStageMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *TaskStageMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *TaskStageMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[taskstage.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *TaskStageMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[taskstage.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *TaskStageMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, taskstage.FieldDurationMs)
}

// SetTokensUsed sets the "tokens_used" field.
func (m *TaskStageMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *TaskStageMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *TaskStageMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *TaskStageMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *TaskStageMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetTurnsUsed sets the "turns_used" field.
func (m *TaskStageMutation) SetTurnsUsed(i int) {
	m.turns_used = &i
	m.addturns_used = nil
}

// TurnsUsed returns the value of the "turns_used" field in the mutation.
func (m *TaskStageMutation) TurnsUsed() (r int, exists bool) {
	v := m.turns_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnsUsed returns the old "turns_used" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldTurnsUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnsUsed: %w", err)
	}
	return oldValue.TurnsUsed, nil
}

// AddTurnsUsed adds i to the "turns_used" field.
func (m *TaskStageMutation) AddTurnsUsed(i int) {
	if m.addturns_used != nil {
		*m.addturns_used += i
	} else {
		m.addturns_used = &i
	}
}

// AddedTurnsUsed returns the value that was added to the "turns_used" field in this mutation.
func (m *TaskStageMutation) AddedTurnsUsed() (r int, exists bool) {
	v := m.addturns_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurnsUsed resets all changes to the "turns_used" field.
func (m *TaskStageMutation) ResetTurnsUsed() {
	m.turns_used = nil
	m.addturns_used = nil
}

// SetOutput sets the "output" field.
func (m *TaskStageMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *TaskStageMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *TaskStageMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[taskstage.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *TaskStageMutation) OutputCleared() bool {
	_, ok := m.clearedFields[taskstage.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *TaskStageMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, taskstage.FieldOutput)
}

// SetStructured sets the "structured" field.
func (m *TaskStageMutation) SetStructured(mo *models.StructuredOutput) {
	m.structured = &mo
}

// Structured returns the value of the "structured" field in the mutation.
func (m *TaskStageMutation) Structured() (r *models.StructuredOutput, exists bool) {
	v := m.structured
	if v == nil {
		return
	}
	return *v, true
}

// OldStructured returns the old "structured" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldStructured(ctx context.Context) (v *models.StructuredOutput, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructured: %w", err)
	}
	return oldValue.Structured, nil
}

// ClearStructured clears the value of the "structured" field.
func (m *TaskStageMutation) ClearStructured() {
	m.structured = nil
	m.clearedFields[taskstage.FieldStructured] = struct{}{}
}

// StructuredCleared returns if the "structured" field was cleared in this mutation.
func (m *TaskStageMutation) StructuredCleared() bool {
	_, ok := m.clearedFields[taskstage.FieldStructured]
	return ok
}

// ResetStructured resets all changes to the "structured" field.
func (m *TaskStageMutation) ResetStructured() {
	m.structured = nil
	delete(m.clearedFields, taskstage.FieldStructured)
}

// SetError sets the "error" field.
func (m *TaskStageMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *TaskStageMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *TaskStageMutation) ClearError() {
	m.error = nil
	m.clearedFields[taskstage.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *TaskStageMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[taskstage.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *TaskStageMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, taskstage.FieldError)
}

// SetFailureCategory sets the "failure_category" field.
func (m *TaskStageMutation) SetFailureCategory(tc taskstage.FailureCategory) {
	m.failure_category = &tc
}

// FailureCategory returns the value of the "failure_category" field in the mutation.
func (m *TaskStageMutation) FailureCategory() (r taskstage.FailureCategory, exists bool) {
	v := m.failure_category
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureCategory returns the old "failure_category" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldFailureCategory(ctx context.Context) (v *taskstage.FailureCategory, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureCategory: %w", err)
	}
	return oldValue.FailureCategory, nil
}

// ClearFailureCategory clears the value of the "failure_category" field.
func (m *TaskStageMutation) ClearFailureCategory() {
	m.failure_category = nil
	m.clearedFields[taskstage.FieldFailureCategory] = struct{}{}
}

// FailureCategoryCleared returns if the "failure_category" field was cleared in this mutation.
func (m *TaskStageMutation) FailureCategoryCleared() bool {
	_, ok := m.clearedFields[taskstage.FieldFailureCategory]
	return ok
}

// ResetFailureCategory resets all changes to the "failure_category" field.
func (m *TaskStageMutation) ResetFailureCategory() {
	m.failure_category = nil
	delete(m.clearedFields, taskstage.FieldFailureCategory)
}

// SetConfidence sets the "confidence" field.
func (m *TaskStageMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *TaskStageMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *TaskStageMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *TaskStageMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *TaskStageMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[taskstage.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *TaskStageMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[taskstage.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *TaskStageMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, taskstage.FieldConfidence)
}

// SetRetryCount sets the "retry_count" field.
func (m *TaskStageMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *TaskStageMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *TaskStageMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *TaskStageMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *TaskStageMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetExecutionCount sets the "execution_count" field.
func (m *TaskStageMutation) SetExecutionCount(i int) {
	m.execution_count = &i
	m.addexecution_count = nil
}

// ExecutionCount returns the value of the "execution_count" field in the mutation.
func (m *TaskStageMutation) ExecutionCount() (r int, exists bool) {
	v := m.execution_count
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionCount returns the old "execution_count" field's value of the TaskStage entity.
// If the TaskStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskStageMutation) OldExecutionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionCount: %w", err)
	}
	return oldValue.ExecutionCount, nil
}

// AddExecutionCount adds i to the "execution_count" field.
func (m *TaskStageMutation) AddExecutionCount(i int) {
	if m.addexecution_count != nil {
		*m.addexecution_count += i
	} else {
		m.addexecution_count = &i
	}
}

// AddedExecutionCount returns the value that was added to the "execution_count" field in this mutation.
func (m *TaskStageMutation) AddedExecutionCount() (r int, exists bool) {
	v := m.addexecution_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetExecutionCount resets all changes to the "execution_count" field.
func (m *TaskStageMutation) ResetExecutionCount() {
	m.execution_count = nil
	m.addexecution_count = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TaskStageMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[taskstage.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TaskStageMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskStageMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskStageMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TaskStageMutation builder.
func (m *TaskStageMutation) Where(ps ...predicate.TaskStage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskStageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskStageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskStage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskStageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskStageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskStage).
func (m *TaskStageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskStageMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.task != nil {
		fields = append(fields, taskstage.FieldTaskID)
	}
	if m.name != nil {
		fields = append(fields, taskstage.FieldName)
	}
	if m.agent_role != nil {
		fields = append(fields, taskstage.FieldAgentRole)
	}
	if m.status != nil {
		fields = append(fields, taskstage.FieldStatus)
	}
	if m.exec_order != nil {
		fields = append(fields, taskstage.FieldExecOrder)
	}
	if m.started_at != nil {
		fields = append(fields, taskstage.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, taskstage.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, taskstage.FieldDurationMs)
	}
	if m.tokens_used != nil {
		fields = append(fields, taskstage.FieldTokensUsed)
	}
	if m.turns_used != nil {
		fields = append(fields, taskstage.FieldTurnsUsed)
	}
	if m.output != nil {
		fields = append(fields, taskstage.FieldOutput)
	}
	if m.structured != nil {
		fields = append(fields, taskstage.FieldStructured)
	}
	if m.error != nil {
		fields = append(fields, taskstage.FieldError)
	}
	if m.failure_category != nil {
		fields = append(fields, taskstage.FieldFailureCategory)
	}
	if m.confidence != nil {
		fields = append(fields, taskstage.FieldConfidence)
	}
	if m.retry_count != nil {
		fields = append(fields, taskstage.FieldRetryCount)
	}
	if m.execution_count != nil {
		fields = append(fields, taskstage.FieldExecutionCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskStageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskstage.FieldTaskID:
		return m.TaskID()
	case taskstage.FieldName:
		return m.Name()
	case taskstage.FieldAgentRole:
		return m.AgentRole()
	case taskstage.FieldStatus:
		return m.Status()
	case taskstage.FieldExecOrder:
		return m.ExecOrder()
	case taskstage.FieldStartedAt:
		return m.StartedAt()
	case taskstage.FieldCompletedAt:
		return m.CompletedAt()
	case taskstage.FieldDurationMs:
		return m.DurationMs()
	case taskstage.FieldTokensUsed:
		return m.TokensUsed()
	case taskstage.FieldTurnsUsed:
		return m.TurnsUsed()
	case taskstage.FieldOutput:
		return m.Output()
	case taskstage.FieldStructured:
		return m.Structured()
	case taskstage.FieldError:
		return m.Error()
	case taskstage.FieldFailureCategory:
		return m.FailureCategory()
	case taskstage.FieldConfidence:
		return m.Confidence()
	case taskstage.FieldRetryCount:
		return m.RetryCount()
	case taskstage.FieldExecutionCount:
		return m.ExecutionCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskStageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskstage.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskstage.FieldName:
		return m.OldName(ctx)
	case taskstage.FieldAgentRole:
		return m.OldAgentRole(ctx)
	case taskstage.FieldStatus:
		return m.OldStatus(ctx)
	case taskstage.FieldExecOrder:
		return m.OldExecOrder(ctx)
	case taskstage.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case taskstage.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case taskstage.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case taskstage.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case taskstage.FieldTurnsUsed:
		return m.OldTurnsUsed(ctx)
	case taskstage.FieldOutput:
		return m.OldOutput(ctx)
	case taskstage.FieldStructured:
		return m.OldStructured(ctx)
	case taskstage.FieldError:
		return m.OldError(ctx)
	case taskstage.FieldFailureCategory:
		return m.OldFailureCategory(ctx)
	case taskstage.FieldConfidence:
		return m.OldConfidence(ctx)
	case taskstage.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case taskstage.FieldExecutionCount:
		return m.OldExecutionCount(ctx)
	}
	return nil, fmt.Errorf("unknown TaskStage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskStageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskstage.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskstage.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case taskstage.FieldAgentRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentRole(v)
		return nil
	case taskstage.FieldStatus:
		v, ok := value.(taskstage.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case taskstage.FieldExecOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecOrder(v)
		return nil
	case taskstage.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case taskstage.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case taskstage.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case taskstage.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case taskstage.FieldTurnsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnsUsed(v)
		return nil
	case taskstage.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case taskstage.FieldStructured:
		v, ok := value.(*models.StructuredOutput)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructured(v)
		return nil
	case taskstage.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case taskstage.FieldFailureCategory:
		v, ok := value.(taskstage.FailureCategory)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureCategory(v)
		return nil
	case taskstage.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case taskstage.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case taskstage.FieldExecutionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionCount(v)
		return nil
	}
	return fmt.Errorf("unknown TaskStage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskStageMutation) AddedFields() []string {
	var fields []string
	if m.addexec_order != nil {
		fields = append(fields, taskstage.FieldExecOrder)
	}
	if m.addduration_ms != nil {
		fields = append(fields, taskstage.FieldDurationMs)
	}
	if m.addtokens_used != nil {
		fields = append(fields, taskstage.FieldTokensUsed)
	}
	if m.addturns_used != nil {
		fields = append(fields, taskstage.FieldTurnsUsed)
	}
	if m.addconfidence != nil {
		fields = append(fields, taskstage.FieldConfidence)
	}
	if m.addretry_count != nil {
		fields = append(fields, taskstage.FieldRetryCount)
	}
	if m.addexecution_count != nil {
		fields = append(fields, taskstage.FieldExecutionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskStageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskstage.FieldExecOrder:
		return m.AddedExecOrder()
	case taskstage.FieldDurationMs:
		return m.AddedDurationMs()
	case taskstage.FieldTokensUsed:
		return m.AddedTokensUsed()
	case taskstage.FieldTurnsUsed:
		return m.AddedTurnsUsed()
	case taskstage.FieldConfidence:
		return m.AddedConfidence()
	case taskstage.FieldRetryCount:
		return m.AddedRetryCount()
	case taskstage.FieldExecutionCount:
		return m.AddedExecutionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskStageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskstage.FieldExecOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecOrder(v)
		return nil
	case taskstage.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case taskstage.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case taskstage.FieldTurnsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurnsUsed(v)
		return nil
	case taskstage.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case taskstage.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case taskstage.FieldExecutionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionCount(v)
		return nil
	}
	return fmt.Errorf("unknown TaskStage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskStageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskstage.FieldStartedAt) {
		fields = append(fields, taskstage.FieldStartedAt)
	}
	if m.FieldCleared(taskstage.FieldCompletedAt) {
		fields = append(fields, taskstage.FieldCompletedAt)
	}
	if m.FieldCleared(taskstage.FieldDurationMs) {
		fields = append(fields, taskstage.FieldDurationMs)
	}
	if m.FieldCleared(taskstage.FieldOutput) {
		fields = append(fields, taskstage.FieldOutput)
	}
	if m.FieldCleared(taskstage.FieldStructured) {
		fields = append(fields, taskstage.FieldStructured)
	}
	if m.FieldCleared(taskstage.FieldError) {
		fields = append(fields, taskstage.FieldError)
	}
	if m.FieldCleared(taskstage.FieldFailureCategory) {
		fields = append(fields, taskstage.FieldFailureCategory)
	}
	if m.FieldCleared(taskstage.FieldConfidence) {
		fields = append(fields, taskstage.FieldConfidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskStageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskStageMutation) ClearField(name string) error {
	switch name {
	case taskstage.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case taskstage.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case taskstage.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case taskstage.FieldOutput:
		m.ClearOutput()
		return nil
	case taskstage.FieldStructured:
		m.ClearStructured()
		return nil
	case taskstage.FieldError:
		m.ClearError()
		return nil
	case taskstage.FieldFailureCategory:
		m.ClearFailureCategory()
		return nil
	case taskstage.FieldConfidence:
		m.ClearConfidence()
		return nil
	}
	return fmt.Errorf("unknown TaskStage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskStageMutation) ResetField(name string) error {
	switch name {
	case taskstage.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskstage.FieldName:
		m.ResetName()
		return nil
	case taskstage.FieldAgentRole:
		m.ResetAgentRole()
		return nil
	case taskstage.FieldStatus:
		m.ResetStatus()
		return nil
	case taskstage.FieldExecOrder:
		m.ResetExecOrder()
		return nil
	case taskstage.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case taskstage.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case taskstage.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case taskstage.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case taskstage.FieldTurnsUsed:
		m.ResetTurnsUsed()
		return nil
	case taskstage.FieldOutput:
		m.ResetOutput()
		return nil
	case taskstage.FieldStructured:
		m.ResetStructured()
		return nil
	case taskstage.FieldError:
		m.ResetError()
		return nil
	case taskstage.FieldFailureCategory:
		m.ResetFailureCategory()
		return nil
	case taskstage.FieldConfidence:
		m.ResetConfidence()
		return nil
	case taskstage.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case taskstage.FieldExecutionCount:
		m.ResetExecutionCount()
		return nil
	}
	return fmt.Errorf("unknown TaskStage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskStageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, taskstage.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskStageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskstage.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskStageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskStageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskStageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, taskstage.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskStageMutation) EdgeCleared(name string) bool {
	switch name {
	case taskstage.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskStageMutation) ClearEdge(name string) error {
	switch name {
	case taskstage.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskStage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskStageMutation) ResetEdge(name string) error {
	switch name {
	case taskstage.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TaskStage edge %s", name)
}

// TaskTemplateMutation represents an operation that mutates the TaskTemplate nodes in the graph.
type TaskTemplateMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	version       *int
	addversion    *int
	parent_id     *string
	description   *string
	stages        *[]models.StageDef
	appendstages  []models.StageDef
	gates         *[]models.GateDef
	appendgates   []models.GateDef
	interactive   *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	tasks         map[string]struct{}
	removedtasks  map[string]struct{}
	clearedtasks  bool
	done          bool
	oldValue      func(context.Context) (*TaskTemplate, error)
	predicates    []predicate.TaskTemplate
}

var _ ent.Mutation = (*TaskTemplateMutation)(nil)

// tasktemplateOption allows management of the mutation configuration using functional options.
type tasktemplateOption func(*TaskTemplateMutation)

// newTaskTemplateMutation creates new mutation for the TaskTemplate entity.
func newTaskTemplateMutation(c config, op Op, opts ...tasktemplateOption) *TaskTemplateMutation {
	m := &TaskTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskTemplateID sets the ID field of the mutation.
func withTaskTemplateID(id string) tasktemplateOption {
	return func(m *TaskTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskTemplate
		)
		m.oldValue = func(ctx context.Context) (*TaskTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskTemplate sets the old TaskTemplate of the mutation.
func withTaskTemplate(node *TaskTemplate) tasktemplateOption {
	return func(m *TaskTemplateMutation) {
		m.oldValue = func(context.Context) (*TaskTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskTemplate entities.
func (m *TaskTemplateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskTemplateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskTemplateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TaskTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TaskTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the TaskTemplate entity.
// If the TaskTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TaskTemplateMutation) ResetName() {
	m.name = nil
}

// SetVersion sets the "version" field.
func (m *TaskTemplateMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *TaskTemplateMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the TaskTemplate entity.
// If the TaskTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTemplateMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *TaskTemplateMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *TaskTemplateMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *TaskTemplateMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetParentID sets the "parent_id" field.
func (m *TaskTemplateMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *TaskTemplateMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the TaskTemplate entity.
// If the TaskTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTemplateMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *TaskTemplateMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[tasktemplate.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *TaskTemplateMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[tasktemplate.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *TaskTemplateMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, tasktemplate.FieldParentID)
}

// SetDescription sets the "description" field.
func (m *TaskTemplateMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskTemplateMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the TaskTemplate entity.
// If the TaskTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTemplateMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TaskTemplateMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[tasktemplate.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaskTemplateMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[tasktemplate.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskTemplateMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, tasktemplate.FieldDescription)
}

// SetStages sets the "stages" field.
func (m *TaskTemplateMutation) SetStages(md []models.StageDef) {
	m.stages = &md
	m.appendstages = nil
}

// Stages returns the value of the "stages" field in the mutation.
func (m *TaskTemplateMutation) Stages() (r []models.StageDef, exists bool) {
	v := m.stages
	if v == nil {
		return
	}
	return *v, true
}

// OldStages returns the old "stages" field's value of the TaskTemplate entity.
// If the TaskTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTemplateMutation) OldStages(ctx context.Context) (v []models.StageDef, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStages: %w", err)
	}
	return oldValue.Stages, nil
}

// AppendStages adds md to the "stages" field.
func (m *TaskTemplateMutation) AppendStages(md []models.StageDef) {
	m.appendstages = append(m.appendstages, md...)
}

// AppendedStages returns the list of values that were appended to the "stages" field in this mutation.
func (m *TaskTemplateMutation) AppendedStages() ([]models.StageDef, bool) {
	if len(m.appendstages) == 0 {
		return nil, false
	}
	return m.appendstages, true
}

// ResetStages resets all changes to the "stages" field.
func (m *TaskTemplateMutation) ResetStages() {
	m.stages = nil
	m.appendstages = nil
}

// SetGates sets the "gates" field.
func (m *TaskTemplateMutation) SetGates(md []models.GateDef) {
	m.gates = &md
	m.appendgates = nil
}

// Gates returns the value of the "gates" field in the mutation.
func (m *TaskTemplateMutation) Gates() (r []models.GateDef, exists bool) {
	v := m.gates
	if v == nil {
		return
	}
	return *v, true
}

// OldGates returns the old "gates" field's value of the TaskTemplate entity.
// If the TaskTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTemplateMutation) OldGates(ctx context.Context) (v []models.GateDef, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGates: %w", err)
	}
	return oldValue.Gates, nil
}

// AppendGates adds md to the "gates" field.
func (m *TaskTemplateMutation) AppendGates(md []models.GateDef) {
	m.appendgates = append(m.appendgates, md...)
}

// AppendedGates returns the list of values that were appended to the "gates" field in this mutation.
func (m *TaskTemplateMutation) AppendedGates() ([]models.GateDef, bool) {
	if len(m.appendgates) == 0 {
		return nil, false
	}
	return m.appendgates, true
}

// ClearGates clears the value of the "gates" field.
func (m *TaskTemplateMutation) ClearGates() {
	m.gates = nil
	m.appendgates = nil
	m.clearedFields[tasktemplate.FieldGates] = struct{}{}
}

// GatesCleared returns if the "gates" field was cleared in this mutation.
func (m *TaskTemplateMutation) GatesCleared() bool {
	_, ok := m.clearedFields[tasktemplate.FieldGates]
	return ok
}

// ResetGates resets all changes to the "gates" field.
func (m *TaskTemplateMutation) ResetGates() {
	m.gates = nil
	m.appendgates = nil
	delete(m.clearedFields, tasktemplate.FieldGates)
}

// SetInteractive sets the "interactive" field.
func (m *TaskTemplateMutation) SetInteractive(b bool) {
	m.interactive = &b
}

// Interactive returns the value of the "interactive" field in the mutation.
func (m *TaskTemplateMutation) Interactive() (r bool, exists bool) {
	v := m.interactive
	if v == nil {
		return
	}
	return *v, true
}

// OldInteractive returns the old "interactive" field's value of the TaskTemplate entity.
// If the TaskTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTemplateMutation) OldInteractive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInteractive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInteractive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInteractive: %w", err)
	}
	return oldValue.Interactive, nil
}

// ResetInteractive resets all changes to the "interactive" field.
func (m *TaskTemplateMutation) ResetInteractive() {
	m.interactive = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskTemplate entity.
// If the TaskTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *TaskTemplateMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *TaskTemplateMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *TaskTemplateMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *TaskTemplateMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *TaskTemplateMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *TaskTemplateMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *TaskTemplateMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the TaskTemplateMutation builder.
func (m *TaskTemplateMutation) Where(ps ...predicate.TaskTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskTemplate).
func (m *TaskTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskTemplateMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, tasktemplate.FieldName)
	}
	if m.version != nil {
		fields = append(fields, tasktemplate.FieldVersion)
	}
	if m.parent_id != nil {
		fields = append(fields, tasktemplate.FieldParentID)
	}
	if m.description != nil {
		fields = append(fields, tasktemplate.FieldDescription)
	}
	if m.stages != nil {
		fields = append(fields, tasktemplate.FieldStages)
	}
	if m.gates != nil {
		fields = append(fields, tasktemplate.FieldGates)
	}
	if m.interactive != nil {
		fields = append(fields, tasktemplate.FieldInteractive)
	}
	if m.created_at != nil {
		fields = append(fields, tasktemplate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tasktemplate.FieldName:
		return m.Name()
	case tasktemplate.FieldVersion:
		return m.Version()
	case tasktemplate.FieldParentID:
		return m.ParentID()
	case tasktemplate.FieldDescription:
		return m.Description()
	case tasktemplate.FieldStages:
		return m.Stages()
	case tasktemplate.FieldGates:
		return m.Gates()
	case tasktemplate.FieldInteractive:
		return m.Interactive()
	case tasktemplate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tasktemplate.FieldName:
		return m.OldName(ctx)
	case tasktemplate.FieldVersion:
		return m.OldVersion(ctx)
	case tasktemplate.FieldParentID:
		return m.OldParentID(ctx)
	case tasktemplate.FieldDescription:
		return m.OldDescription(ctx)
	case tasktemplate.FieldStages:
		return m.OldStages(ctx)
	case tasktemplate.FieldGates:
		return m.OldGates(ctx)
	case tasktemplate.FieldInteractive:
		return m.OldInteractive(ctx)
	case tasktemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tasktemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tasktemplate.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case tasktemplate.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case tasktemplate.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case tasktemplate.FieldStages:
		v, ok := value.([]models.StageDef)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStages(v)
		return nil
	case tasktemplate.FieldGates:
		v, ok := value.([]models.GateDef)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGates(v)
		return nil
	case tasktemplate.FieldInteractive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInteractive(v)
		return nil
	case tasktemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskTemplateMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, tasktemplate.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskTemplateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tasktemplate.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tasktemplate.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown TaskTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tasktemplate.FieldParentID) {
		fields = append(fields, tasktemplate.FieldParentID)
	}
	if m.FieldCleared(tasktemplate.FieldDescription) {
		fields = append(fields, tasktemplate.FieldDescription)
	}
	if m.FieldCleared(tasktemplate.FieldGates) {
		fields = append(fields, tasktemplate.FieldGates)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskTemplateMutation) ClearField(name string) error {
	switch name {
	case tasktemplate.FieldParentID:
		m.ClearParentID()
		return nil
	case tasktemplate.FieldDescription:
		m.ClearDescription()
		return nil
	case tasktemplate.FieldGates:
		m.ClearGates()
		return nil
	}
	return fmt.Errorf("unknown TaskTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskTemplateMutation) ResetField(name string) error {
	switch name {
	case tasktemplate.FieldName:
		m.ResetName()
		return nil
	case tasktemplate.FieldVersion:
		m.ResetVersion()
		return nil
	case tasktemplate.FieldParentID:
		m.ResetParentID()
		return nil
	case tasktemplate.FieldDescription:
		m.ResetDescription()
		return nil
	case tasktemplate.FieldStages:
		m.ResetStages()
		return nil
	case tasktemplate.FieldGates:
		m.ResetGates()
		return nil
	case tasktemplate.FieldInteractive:
		m.ResetInteractive()
		return nil
	case tasktemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tasks != nil {
		edges = append(edges, tasktemplate.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskTemplateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tasktemplate.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtasks != nil {
		edges = append(edges, tasktemplate.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskTemplateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tasktemplate.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtasks {
		edges = append(edges, tasktemplate.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskTemplateMutation) EdgeCleared(name string) bool {
	switch name {
	case tasktemplate.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskTemplateMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown TaskTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskTemplateMutation) ResetEdge(name string) error {
	switch name {
	case tasktemplate.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown TaskTemplate edge %s", name)
}

// TriggerEventMutation represents an operation that mutates the TriggerEvent nodes in the graph.
type TriggerEventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	source        *string
	payload       *map[string]interface{}
	task_id       *string
	status        *triggerevent.Status
	created_at    *time.Time
	clearedFields map[string]struct{}
	rule          *string
	clearedrule   bool
	done          bool
	oldValue      func(context.Context) (*TriggerEvent, error)
	predicates    []predicate.TriggerEvent
}

var _ ent.Mutation = (*TriggerEventMutation)(nil)

// triggereventOption allows management of the mutation configuration using functional options.
type triggereventOption func(*TriggerEventMutation)

// newTriggerEventMutation creates new mutation for the TriggerEvent entity.
func newTriggerEventMutation(c config, op Op, opts ...triggereventOption) *TriggerEventMutation {
	m := &TriggerEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTriggerEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTriggerEventID sets the ID field of the mutation.
func withTriggerEventID(id string) triggereventOption {
	return func(m *TriggerEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TriggerEvent
		)
		m.oldValue = func(ctx context.Context) (*TriggerEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TriggerEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTriggerEvent sets the old TriggerEvent of the mutation.
func withTriggerEvent(node *TriggerEvent) triggereventOption {
	return func(m *TriggerEventMutation) {
		m.oldValue = func(context.Context) (*TriggerEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TriggerEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TriggerEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TriggerEvent entities.
func (m *TriggerEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TriggerEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TriggerEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TriggerEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRuleID sets the "rule_id" field.
func (m *TriggerEventMutation) SetRuleID(s string) {
	m.rule = &s
}

// RuleID returns the value of the "rule_id" field in the mutation.
func (m *TriggerEventMutation) RuleID() (r string, exists bool) {
	v := m.rule
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleID returns the old "rule_id" field's value of the TriggerEvent entity.
// If the TriggerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerEventMutation) OldRuleID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleID: %w", err)
	}
	return oldValue.RuleID, nil
}

// ClearRuleID clears the value of the "rule_id" field.
func (m *TriggerEventMutation) ClearRuleID() {
	m.rule = nil
	m.clearedFields[triggerevent.FieldRuleID] = struct{}{}
}

// RuleIDCleared returns if the "rule_id" field was cleared in this mutation.
func (m *TriggerEventMutation) RuleIDCleared() bool {
	_, ok := m.clearedFields[triggerevent.FieldRuleID]
	return ok
}

// ResetRuleID resets all changes to the "rule_id" field.
func (m *TriggerEventMutation) ResetRuleID() {
	m.rule = nil
	delete(m.clearedFields, triggerevent.FieldRuleID)
}

// SetSource sets the "source" field.
func (m *TriggerEventMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *TriggerEventMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the TriggerEvent entity.
// If the TriggerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerEventMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *TriggerEventMutation) ResetSource() {
	m.source = nil
}

// SetPayload sets the "payload" field.
func (m *TriggerEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *TriggerEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the TriggerEvent entity.
// If the TriggerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *TriggerEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[triggerevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *TriggerEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[triggerevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *TriggerEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, triggerevent.FieldPayload)
}

// SetTaskID sets the "task_id" field.
func (m *TriggerEventMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TriggerEventMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TriggerEvent entity.
// If the TriggerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerEventMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *TriggerEventMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[triggerevent.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *TriggerEventMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[triggerevent.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TriggerEventMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, triggerevent.FieldTaskID)
}

// SetStatus sets the "status" field.
func (m *TriggerEventMutation) SetStatus(t triggerevent.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TriggerEventMutation) Status() (r triggerevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TriggerEvent entity.
// If the TriggerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerEventMutation) OldStatus(ctx context.Context) (v triggerevent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TriggerEventMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TriggerEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TriggerEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TriggerEvent entity.
// If the TriggerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TriggerEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRule clears the "rule" edge to the TriggerRule entity.
func (m *TriggerEventMutation) ClearRule() {
	m.clearedrule = true
	m.clearedFields[triggerevent.FieldRuleID] = struct{}{}
}

// RuleCleared reports if the "rule" edge to the TriggerRule entity was cleared.
func (m *TriggerEventMutation) RuleCleared() bool {
	return m.RuleIDCleared() || m.clearedrule
}

// RuleIDs returns the "rule" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RuleID instead. It exists only for internal usage by the builders.
func (m *TriggerEventMutation) RuleIDs() (ids []string) {
	if id := m.rule; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRule resets all changes to the "rule" edge.
func (m *TriggerEventMutation) ResetRule() {
	m.rule = nil
	m.clearedrule = false
}

// Where appends a list predicates to the TriggerEventMutation builder.
func (m *TriggerEventMutation) Where(ps ...predicate.TriggerEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TriggerEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TriggerEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TriggerEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TriggerEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TriggerEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TriggerEvent).
func (m *TriggerEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TriggerEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.rule != nil {
		fields = append(fields, triggerevent.FieldRuleID)
	}
	if m.source != nil {
		fields = append(fields, triggerevent.FieldSource)
	}
	if m.payload != nil {
		fields = append(fields, triggerevent.FieldPayload)
	}
	if m.task_id != nil {
		fields = append(fields, triggerevent.FieldTaskID)
	}
	if m.status != nil {
		fields = append(fields, triggerevent.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, triggerevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TriggerEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case triggerevent.FieldRuleID:
		return m.RuleID()
	case triggerevent.FieldSource:
		return m.Source()
	case triggerevent.FieldPayload:
		return m.Payload()
	case triggerevent.FieldTaskID:
		return m.TaskID()
	case triggerevent.FieldStatus:
		return m.Status()
	case triggerevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TriggerEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case triggerevent.FieldRuleID:
		return m.OldRuleID(ctx)
	case triggerevent.FieldSource:
		return m.OldSource(ctx)
	case triggerevent.FieldPayload:
		return m.OldPayload(ctx)
	case triggerevent.FieldTaskID:
		return m.OldTaskID(ctx)
	case triggerevent.FieldStatus:
		return m.OldStatus(ctx)
	case triggerevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TriggerEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriggerEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case triggerevent.FieldRuleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleID(v)
		return nil
	case triggerevent.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case triggerevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case triggerevent.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case triggerevent.FieldStatus:
		v, ok := value.(triggerevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case triggerevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TriggerEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TriggerEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TriggerEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriggerEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TriggerEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TriggerEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(triggerevent.FieldRuleID) {
		fields = append(fields, triggerevent.FieldRuleID)
	}
	if m.FieldCleared(triggerevent.FieldPayload) {
		fields = append(fields, triggerevent.FieldPayload)
	}
	if m.FieldCleared(triggerevent.FieldTaskID) {
		fields = append(fields, triggerevent.FieldTaskID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TriggerEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TriggerEventMutation) ClearField(name string) error {
	switch name {
	case triggerevent.FieldRuleID:
		m.ClearRuleID()
		return nil
	case triggerevent.FieldPayload:
		m.ClearPayload()
		return nil
	case triggerevent.FieldTaskID:
		m.ClearTaskID()
		return nil
	}
	return fmt.Errorf("unknown TriggerEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TriggerEventMutation) ResetField(name string) error {
	switch name {
	case triggerevent.FieldRuleID:
		m.ResetRuleID()
		return nil
	case triggerevent.FieldSource:
		m.ResetSource()
		return nil
	case triggerevent.FieldPayload:
		m.ResetPayload()
		return nil
	case triggerevent.FieldTaskID:
		m.ResetTaskID()
		return nil
	case triggerevent.FieldStatus:
		m.ResetStatus()
		return nil
	case triggerevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TriggerEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TriggerEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.rule != nil {
		edges = append(edges, triggerevent.EdgeRule)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TriggerEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case triggerevent.EdgeRule:
		if id := m.rule; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TriggerEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TriggerEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TriggerEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrule {
		edges = append(edges, triggerevent.EdgeRule)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TriggerEventMutation) EdgeCleared(name string) bool {
	switch name {
	case triggerevent.EdgeRule:
		return m.clearedrule
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TriggerEventMutation) ClearEdge(name string) error {
	switch name {
	case triggerevent.EdgeRule:
		m.ClearRule()
		return nil
	}
	return fmt.Errorf("unknown TriggerEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TriggerEventMutation) ResetEdge(name string) error {
	switch name {
	case triggerevent.EdgeRule:
		m.ResetRule()
		return nil
	}
	return fmt.Errorf("unknown TriggerEvent edge %s", name)
}

// TriggerRuleMutation represents an operation that mutates the TriggerRule nodes in the graph.
type TriggerRuleMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	rule_type     *triggerrule.RuleType
	expression    *string
	template_id   *string
	project_id    *string
	enabled       *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	events        map[string]struct{}
	removedevents map[string]struct{}
	clearedevents bool
	done          bool
	oldValue      func(context.Context) (*TriggerRule, error)
	predicates    []predicate.TriggerRule
}

var _ ent.Mutation = (*TriggerRuleMutation)(nil)

// triggerruleOption allows management of the mutation configuration using functional options.
type triggerruleOption func(*TriggerRuleMutation)

// newTriggerRuleMutation creates new mutation for the TriggerRule entity.
func newTriggerRuleMutation(c config, op Op, opts ...triggerruleOption) *TriggerRuleMutation {
	m := &TriggerRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeTriggerRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTriggerRuleID sets the ID field of the mutation.
func withTriggerRuleID(id string) triggerruleOption {
	return func(m *TriggerRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *TriggerRule
		)
		m.oldValue = func(ctx context.Context) (*TriggerRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TriggerRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTriggerRule sets the old TriggerRule of the mutation.
func withTriggerRule(node *TriggerRule) triggerruleOption {
	return func(m *TriggerRuleMutation) {
		m.oldValue = func(context.Context) (*TriggerRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TriggerRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TriggerRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TriggerRule entities.
func (m *TriggerRuleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TriggerRuleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TriggerRuleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TriggerRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TriggerRuleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TriggerRuleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the TriggerRule entity.
// If the TriggerRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerRuleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TriggerRuleMutation) ResetName() {
	m.name = nil
}

// SetRuleType sets the "rule_type" field.
func (m *TriggerRuleMutation) SetRuleType(tt triggerrule.RuleType) {
	m.rule_type = &tt
}

// RuleType returns the value of the "rule_type" field in the mutation.
func (m *TriggerRuleMutation) RuleType() (r triggerrule.RuleType, exists bool) {
	v := m.rule_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleType returns the old "rule_type" field's value of the TriggerRule entity.
// If the TriggerRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerRuleMutation) OldRuleType(ctx context.Context) (v triggerrule.RuleType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleType: %w", err)
	}
	return oldValue.RuleType, nil
}

// ResetRuleType resets all changes to the "rule_type" field.
func (m *TriggerRuleMutation) ResetRuleType() {
	m.rule_type = nil
}

// SetExpression sets the "expression" field.
func (m *TriggerRuleMutation) SetExpression(s string) {
	m.expression = &s
}

// Expression returns the value of the "expression" field in the mutation.
func (m *TriggerRuleMutation) Expression() (r string, exists bool) {
	v := m.expression
	if v == nil {
		return
	}
	return *v, true
}

// OldExpression returns the old "expression" field's value of the TriggerRule entity.
// If the TriggerRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerRuleMutation) OldExpression(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpression is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpression requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpression: %w", err)
	}
	return oldValue.Expression, nil
}

// ResetExpression resets all changes to the "expression" field.
func (m *TriggerRuleMutation) ResetExpression() {
	m.expression = nil
}

// SetTemplateID sets the "template_id" field.
func (m *TriggerRuleMutation) SetTemplateID(s string) {
	m.template_id = &s
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *TriggerRuleMutation) TemplateID() (r string, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the TriggerRule entity.
// If the TriggerRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerRuleMutation) OldTemplateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *TriggerRuleMutation) ResetTemplateID() {
	m.template_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *TriggerRuleMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TriggerRuleMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the TriggerRule entity.
// If the TriggerRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerRuleMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *TriggerRuleMutation) ClearProjectID() {
	m.project_id = nil
	m.clearedFields[triggerrule.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *TriggerRuleMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[triggerrule.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TriggerRuleMutation) ResetProjectID() {
	m.project_id = nil
	delete(m.clearedFields, triggerrule.FieldProjectID)
}

// SetEnabled sets the "enabled" field.
func (m *TriggerRuleMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *TriggerRuleMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the TriggerRule entity.
// If the TriggerRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerRuleMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *TriggerRuleMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TriggerRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TriggerRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TriggerRule entity.
// If the TriggerRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TriggerRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddEventIDs adds the "events" edge to the TriggerEvent entity by ids.
func (m *TriggerRuleMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the TriggerEvent entity.
func (m *TriggerRuleMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the TriggerEvent entity was cleared.
func (m *TriggerRuleMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the TriggerEvent entity by IDs.
func (m *TriggerRuleMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the TriggerEvent entity.
func (m *TriggerRuleMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *TriggerRuleMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *TriggerRuleMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the TriggerRuleMutation builder.
func (m *TriggerRuleMutation) Where(ps ...predicate.TriggerRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TriggerRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TriggerRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TriggerRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TriggerRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TriggerRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TriggerRule).
func (m *TriggerRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TriggerRuleMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, triggerrule.FieldName)
	}
	if m.rule_type != nil {
		fields = append(fields, triggerrule.FieldRuleType)
	}
	if m.expression != nil {
		fields = append(fields, triggerrule.FieldExpression)
	}
	if m.template_id != nil {
		fields = append(fields, triggerrule.FieldTemplateID)
	}
	if m.project_id != nil {
		fields = append(fields, triggerrule.FieldProjectID)
	}
	if m.enabled != nil {
		fields = append(fields, triggerrule.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, triggerrule.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TriggerRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case triggerrule.FieldName:
		return m.Name()
	case triggerrule.FieldRuleType:
		return m.RuleType()
	case triggerrule.FieldExpression:
		return m.Expression()
	case triggerrule.FieldTemplateID:
		return m.TemplateID()
	case triggerrule.FieldProjectID:
		return m.ProjectID()
	case triggerrule.FieldEnabled:
		return m.Enabled()
	case triggerrule.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TriggerRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case triggerrule.FieldName:
		return m.OldName(ctx)
	case triggerrule.FieldRuleType:
		return m.OldRuleType(ctx)
	case triggerrule.FieldExpression:
		return m.OldExpression(ctx)
	case triggerrule.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case triggerrule.FieldProjectID:
		return m.OldProjectID(ctx)
	case triggerrule.FieldEnabled:
		return m.OldEnabled(ctx)
	case triggerrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TriggerRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriggerRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case triggerrule.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case triggerrule.FieldRuleType:
		v, ok := value.(triggerrule.RuleType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleType(v)
		return nil
	case triggerrule.FieldExpression:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpression(v)
		return nil
	case triggerrule.FieldTemplateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case triggerrule.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case triggerrule.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case triggerrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TriggerRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TriggerRuleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TriggerRuleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriggerRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TriggerRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TriggerRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(triggerrule.FieldProjectID) {
		fields = append(fields, triggerrule.FieldProjectID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TriggerRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TriggerRuleMutation) ClearField(name string) error {
	switch name {
	case triggerrule.FieldProjectID:
		m.ClearProjectID()
		return nil
	}
	return fmt.Errorf("unknown TriggerRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TriggerRuleMutation) ResetField(name string) error {
	switch name {
	case triggerrule.FieldName:
		m.ResetName()
		return nil
	case triggerrule.FieldRuleType:
		m.ResetRuleType()
		return nil
	case triggerrule.FieldExpression:
		m.ResetExpression()
		return nil
	case triggerrule.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case triggerrule.FieldProjectID:
		m.ResetProjectID()
		return nil
	case triggerrule.FieldEnabled:
		m.ResetEnabled()
		return nil
	case triggerrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TriggerRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TriggerRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.events != nil {
		edges = append(edges, triggerrule.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TriggerRuleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case triggerrule.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TriggerRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedevents != nil {
		edges = append(edges, triggerrule.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TriggerRuleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case triggerrule.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TriggerRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevents {
		edges = append(edges, triggerrule.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TriggerRuleMutation) EdgeCleared(name string) bool {
	switch name {
	case triggerrule.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TriggerRuleMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown TriggerRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TriggerRuleMutation) ResetEdge(name string) error {
	switch name {
	case triggerrule.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown TriggerRule edge %s", name)
}
