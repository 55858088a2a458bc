// Package memory holds per-project reusable knowledge in file-backed
// buckets. Completed tasks feed the buckets through LLM extraction;
// stage prompts read them back as a context block. Buckets are plain
// JSON files so operators can inspect and edit them.
package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/models"
)

// Store reads and writes `<dir>/<project_id>/<bucket>.json` files.
// Writes to one project are serialized behind a keyed mutex.
type Store struct {
	dir          string
	maxPerBucket int

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates the file-backed memory store.
func NewStore(cfg config.MemoryConfig) *Store {
	return &Store{
		dir:          cfg.Dir,
		maxPerBucket: cfg.MaxEntriesPerCategory,
		locks:        make(map[string]*sync.Mutex),
	}
}

func (s *Store) lock(projectID string) func() {
	s.mu.Lock()
	l, ok := s.locks[projectID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[projectID] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

func (s *Store) bucketPath(projectID string, bucket models.MemoryBucket) string {
	return filepath.Join(s.dir, projectID, string(bucket)+".json")
}

// Load returns one bucket's entries, oldest first. A missing file is an
// empty bucket.
func (s *Store) Load(projectID string, bucket models.MemoryBucket) ([]models.MemoryEntry, error) {
	if !models.ValidBucket(bucket) {
		return nil, fmt.Errorf("unknown memory bucket %q", bucket)
	}
	unlock := s.lock(projectID)
	defer unlock()
	return s.read(projectID, bucket)
}

func (s *Store) read(projectID string, bucket models.MemoryBucket) ([]models.MemoryEntry, error) {
	data, err := os.ReadFile(s.bucketPath(projectID, bucket))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var entries []models.MemoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding memory bucket %s/%s: %w", projectID, bucket, err)
	}
	return entries, nil
}

// LoadAll returns every bucket of a project.
func (s *Store) LoadAll(projectID string) (map[models.MemoryBucket][]models.MemoryEntry, error) {
	unlock := s.lock(projectID)
	defer unlock()

	out := make(map[models.MemoryBucket][]models.MemoryEntry, len(models.MemoryBuckets))
	for _, bucket := range models.MemoryBuckets {
		entries, err := s.read(projectID, bucket)
		if err != nil {
			return nil, err
		}
		if len(entries) > 0 {
			out[bucket] = entries
		}
	}
	return out, nil
}

// Append adds entries to a bucket, dropping the oldest past the cap.
// Missing ids and timestamps are filled in.
func (s *Store) Append(projectID string, bucket models.MemoryBucket, entries ...models.MemoryEntry) error {
	if !models.ValidBucket(bucket) {
		return fmt.Errorf("unknown memory bucket %q", bucket)
	}
	if len(entries) == 0 {
		return nil
	}

	unlock := s.lock(projectID)
	defer unlock()

	existing, err := s.read(projectID, bucket)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = uuid.New().String()
		}
		if entries[i].CreatedAt.IsZero() {
			entries[i].CreatedAt = now
		}
	}
	existing = append(existing, entries...)
	if s.maxPerBucket > 0 && len(existing) > s.maxPerBucket {
		existing = existing[len(existing)-s.maxPerBucket:]
	}

	path := s.bucketPath(projectID, bucket)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating memory dir: %w", err)
	}
	data, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// PromptBlock renders a project's memory as a prompt context block.
// Empty projects render to the empty string.
func (s *Store) PromptBlock(projectID string) (string, error) {
	if projectID == "" {
		return "", nil
	}
	all, err := s.LoadAll(projectID)
	if err != nil {
		return "", err
	}
	if len(all) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("Project knowledge:\n")
	for _, bucket := range models.MemoryBuckets {
		entries := all[bucket]
		if len(entries) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", bucket))
		for _, e := range entries {
			sb.WriteString("- " + e.Content + "\n")
		}
	}
	return sb.String(), nil
}
