// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/stewardhq/steward/ent/auditlog"
	"github.com/stewardhq/steward/ent/circuitbreaker"
	"github.com/stewardhq/steward/ent/humangate"
	"github.com/stewardhq/steward/ent/kpimetric"
	"github.com/stewardhq/steward/ent/project"
	"github.com/stewardhq/steward/ent/schema"
	"github.com/stewardhq/steward/ent/skillfeedback"
	"github.com/stewardhq/steward/ent/stagelog"
	"github.com/stewardhq/steward/ent/task"
	"github.com/stewardhq/steward/ent/taskstage"
	"github.com/stewardhq/steward/ent/tasktemplate"
	"github.com/stewardhq/steward/ent/triggerevent"
	"github.com/stewardhq/steward/ent/triggerrule"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[6].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	circuitbreakerFields := schema.CircuitBreaker{}.Fields()
	_ = circuitbreakerFields
	// circuitbreakerDescLevel is the schema descriptor for level field.
	circuitbreakerDescLevel := circuitbreakerFields[2].Descriptor()
	// circuitbreaker.DefaultLevel holds the default value on creation for the level field.
	circuitbreaker.DefaultLevel = circuitbreakerDescLevel.Default.(int)
	// circuitbreakerDescTriggeredAt is the schema descriptor for triggered_at field.
	circuitbreakerDescTriggeredAt := circuitbreakerFields[5].Descriptor()
	// circuitbreaker.DefaultTriggeredAt holds the default value on creation for the triggered_at field.
	circuitbreaker.DefaultTriggeredAt = circuitbreakerDescTriggeredAt.Default.(func() time.Time)
	humangateFields := schema.HumanGate{}.Fields()
	_ = humangateFields
	// humangateDescRetryCount is the schema descriptor for retry_count field.
	humangateDescRetryCount := humangateFields[9].Descriptor()
	// humangate.DefaultRetryCount holds the default value on creation for the retry_count field.
	humangate.DefaultRetryCount = humangateDescRetryCount.Default.(int)
	// humangateDescIsDynamic is the schema descriptor for is_dynamic field.
	humangateDescIsDynamic := humangateFields[10].Descriptor()
	// humangate.DefaultIsDynamic holds the default value on creation for the is_dynamic field.
	humangate.DefaultIsDynamic = humangateDescIsDynamic.Default.(bool)
	// humangateDescCreatedAt is the schema descriptor for created_at field.
	humangateDescCreatedAt := humangateFields[11].Descriptor()
	// humangate.DefaultCreatedAt holds the default value on creation for the created_at field.
	humangate.DefaultCreatedAt = humangateDescCreatedAt.Default.(func() time.Time)
	kpimetricFields := schema.KPIMetric{}.Fields()
	_ = kpimetricFields
	// kpimetricDescRecordedAt is the schema descriptor for recorded_at field.
	kpimetricDescRecordedAt := kpimetricFields[5].Descriptor()
	// kpimetric.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	kpimetric.DefaultRecordedAt = kpimetricDescRecordedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[5].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	skillfeedbackFields := schema.SkillFeedback{}.Fields()
	_ = skillfeedbackFields
	// skillfeedbackDescCreatedAt is the schema descriptor for created_at field.
	skillfeedbackDescCreatedAt := skillfeedbackFields[6].Descriptor()
	// skillfeedback.DefaultCreatedAt holds the default value on creation for the created_at field.
	skillfeedback.DefaultCreatedAt = skillfeedbackDescCreatedAt.Default.(func() time.Time)
	stagelogFields := schema.StageLog{}.Fields()
	_ = stagelogFields
	// stagelogDescTruncated is the schema descriptor for truncated field.
	stagelogDescTruncated := stagelogFields[17].Descriptor()
	// stagelog.DefaultTruncated holds the default value on creation for the truncated field.
	stagelog.DefaultTruncated = stagelogDescTruncated.Default.(bool)
	// stagelogDescCreatedAt is the schema descriptor for created_at field.
	stagelogDescCreatedAt := stagelogFields[18].Descriptor()
	// stagelog.DefaultCreatedAt holds the default value on creation for the created_at field.
	stagelog.DefaultCreatedAt = stagelogDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTotalTokens is the schema descriptor for total_tokens field.
	taskDescTotalTokens := taskFields[5].Descriptor()
	// task.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	task.DefaultTotalTokens = taskDescTotalTokens.Default.(int)
	// taskDescTotalCost is the schema descriptor for total_cost field.
	taskDescTotalCost := taskFields[6].Descriptor()
	// task.DefaultTotalCost holds the default value on creation for the total_cost field.
	task.DefaultTotalCost = taskDescTotalCost.Default.(float64)
	// taskDescTemplateVersion is the schema descriptor for template_version field.
	taskDescTemplateVersion := taskFields[8].Descriptor()
	// task.DefaultTemplateVersion holds the default value on creation for the template_version field.
	task.DefaultTemplateVersion = taskDescTemplateVersion.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[16].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	taskstageFields := schema.TaskStage{}.Fields()
	_ = taskstageFields
	// taskstageDescTokensUsed is the schema descriptor for tokens_used field.
	taskstageDescTokensUsed := taskstageFields[9].Descriptor()
	// taskstage.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	taskstage.DefaultTokensUsed = taskstageDescTokensUsed.Default.(int)
	// taskstageDescTurnsUsed is the schema descriptor for turns_used field.
	taskstageDescTurnsUsed := taskstageFields[10].Descriptor()
	// taskstage.DefaultTurnsUsed holds the default value on creation for the turns_used field.
	taskstage.DefaultTurnsUsed = taskstageDescTurnsUsed.Default.(int)
	// taskstageDescRetryCount is the schema descriptor for retry_count field.
	taskstageDescRetryCount := taskstageFields[16].Descriptor()
	// taskstage.DefaultRetryCount holds the default value on creation for the retry_count field.
	taskstage.DefaultRetryCount = taskstageDescRetryCount.Default.(int)
	// taskstageDescExecutionCount is the schema descriptor for execution_count field.
	taskstageDescExecutionCount := taskstageFields[17].Descriptor()
	// taskstage.DefaultExecutionCount holds the default value on creation for the execution_count field.
	taskstage.DefaultExecutionCount = taskstageDescExecutionCount.Default.(int)
	tasktemplateFields := schema.TaskTemplate{}.Fields()
	_ = tasktemplateFields
	// tasktemplateDescVersion is the schema descriptor for version field.
	tasktemplateDescVersion := tasktemplateFields[2].Descriptor()
	// tasktemplate.DefaultVersion holds the default value on creation for the version field.
	tasktemplate.DefaultVersion = tasktemplateDescVersion.Default.(int)
	// tasktemplateDescInteractive is the schema descriptor for interactive field.
	tasktemplateDescInteractive := tasktemplateFields[7].Descriptor()
	// tasktemplate.DefaultInteractive holds the default value on creation for the interactive field.
	tasktemplate.DefaultInteractive = tasktemplateDescInteractive.Default.(bool)
	// tasktemplateDescCreatedAt is the schema descriptor for created_at field.
	tasktemplateDescCreatedAt := tasktemplateFields[8].Descriptor()
	// tasktemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	tasktemplate.DefaultCreatedAt = tasktemplateDescCreatedAt.Default.(func() time.Time)
	triggereventFields := schema.TriggerEvent{}.Fields()
	_ = triggereventFields
	// triggereventDescCreatedAt is the schema descriptor for created_at field.
	triggereventDescCreatedAt := triggereventFields[6].Descriptor()
	// triggerevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	triggerevent.DefaultCreatedAt = triggereventDescCreatedAt.Default.(func() time.Time)
	triggerruleFields := schema.TriggerRule{}.Fields()
	_ = triggerruleFields
	// triggerruleDescEnabled is the schema descriptor for enabled field.
	triggerruleDescEnabled := triggerruleFields[6].Descriptor()
	// triggerrule.DefaultEnabled holds the default value on creation for the enabled field.
	triggerrule.DefaultEnabled = triggerruleDescEnabled.Default.(bool)
	// triggerruleDescCreatedAt is the schema descriptor for created_at field.
	triggerruleDescCreatedAt := triggerruleFields[7].Descriptor()
	// triggerrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	triggerrule.DefaultCreatedAt = triggerruleDescCreatedAt.Default.(func() time.Time)
}
