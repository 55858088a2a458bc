package engine

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/stewardhq/steward/pkg/models"
)

// conditionMet evaluates a stage condition against the structured
// outputs accumulated so far. A missing source stage or field means
// the condition is not met and the stage is skipped.
func (r *taskRun) conditionMet(cond *models.Condition) bool {
	src := r.stageStructured(cond.SourceStage)
	if src == nil {
		slog.Info("Condition source has no structured output, skipping stage",
			"task_id", r.task.ID, "source_stage", cond.SourceStage)
		return false
	}
	value, ok := src.Field(cond.Field)
	if !ok {
		slog.Info("Condition field not present, skipping stage",
			"task_id", r.task.ID, "source_stage", cond.SourceStage, "field", cond.Field)
		return false
	}
	met, err := compare(value, cond.Operator, cond.Value)
	if err != nil {
		slog.Warn("Condition evaluation failed, skipping stage",
			"task_id", r.task.ID, "source_stage", cond.SourceStage,
			"field", cond.Field, "error", err)
		return false
	}
	return met
}

func compare(actual any, operator string, expected any) (bool, error) {
	switch operator {
	case "eq":
		return looseEqual(actual, expected), nil
	case "ne":
		return !looseEqual(actual, expected), nil
	case "contains":
		return strings.Contains(asString(actual), asString(expected)), nil
	case "gt", "gte", "lt", "lte":
		a, aok := asFloat(actual)
		b, bok := asFloat(expected)
		if !aok || !bok {
			return false, fmt.Errorf("operator %q needs numeric operands, got %T and %T", operator, actual, expected)
		}
		switch operator {
		case "gt":
			return a > b, nil
		case "gte":
			return a >= b, nil
		case "lt":
			return a < b, nil
		default:
			return a <= b, nil
		}
	}
	return false, fmt.Errorf("unknown condition operator %q", operator)
}

// looseEqual compares across the types JSON round-trips produce:
// numbers compare numerically, everything else by string form.
func looseEqual(a, b any) bool {
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			return af == bf
		}
	}
	return asString(a) == asString(b)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
