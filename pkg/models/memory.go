package models

import (
	"time"
)

// MemoryBucket names a per-project knowledge category.
type MemoryBucket string

const (
	BucketConventions  MemoryBucket = "conventions"
	BucketArchitecture MemoryBucket = "architecture"
	BucketPatterns     MemoryBucket = "patterns"
	BucketIssues       MemoryBucket = "issues"
)

// MemoryBuckets lists all buckets in a stable order.
var MemoryBuckets = []MemoryBucket{
	BucketConventions,
	BucketArchitecture,
	BucketPatterns,
	BucketIssues,
}

// ValidBucket reports whether b names a known bucket.
func ValidBucket(b MemoryBucket) bool {
	for _, known := range MemoryBuckets {
		if b == known {
			return true
		}
	}
	return false
}

// MemoryEntry is one reusable fact extracted from a completed task.
// Content is a single sentence.
type MemoryEntry struct {
	ID              string    `json:"id"`
	Content         string    `json:"content"`
	SourceTaskID    string    `json:"source_task_id,omitempty"`
	SourceTaskTitle string    `json:"source_task_title,omitempty"`
	Confidence      float64   `json:"confidence"`
	Tags            []string  `json:"tags,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
