// SPDX-License-Identifier: MIT
package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/thatcatcamp/sectioncss/internal/customizer"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	snapshotVersion = 1
	filePrefix      = "settings-"
	fileSuffix      = ".yaml"
	timeLayout      = "20060102-150405"
)

// Snapshot is a point-in-time copy of every saved setting value
type Snapshot struct {
	Version   int               `yaml:"version"`
	CreatedAt time.Time         `yaml:"created_at"`
	Settings  map[string]string `yaml:"settings"`
}

// NewSnapshot stamps values with the current format version and time
func NewSnapshot(values map[string]string, at time.Time) *Snapshot {
	return &Snapshot{Version: snapshotVersion, CreatedAt: at.UTC(), Settings: values}
}

// Source provides the persisted values; customizer backends implement it
type Source interface {
	Load(ctx context.Context) (map[string]string, error)
}

// Target receives restored values; *customizer.Manager implements it
type Target interface {
	Settings() []customizer.Setting
	SaveAll(ctx context.Context, values map[string]string) (int, []string, error)
}

// Manager writes snapshots into a directory and prunes old ones. When
// Remote is set every snapshot is also uploaded; pruning is local only.
type Manager struct {
	Path   string
	Keep   int
	Remote Remote
	log    *zap.Logger
	now    func() time.Time
}

// NewManager creates a manager for dir keeping the newest keep snapshots.
// keep <= 0 keeps everything.
func NewManager(dir string, keep int, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{Path: dir, Keep: keep, log: log.Named("backup"), now: time.Now}
}

// Create writes a snapshot of src and returns its path
func (m *Manager) Create(ctx context.Context, src Source) (string, error) {
	values, err := src.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read settings: %w", err)
	}
	if err := os.MkdirAll(m.Path, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	now := m.now().UTC()
	path := filepath.Join(m.Path, filePrefix+now.Format(timeLayout)+fileSuffix)
	if err := Write(path, NewSnapshot(values, now)); err != nil {
		return "", err
	}

	m.log.Info("Wrote settings snapshot", zap.String("path", path), zap.Int("settings", len(values)))
	if err := m.Prune(); err != nil {
		m.log.Warn("Failed to prune snapshots", zap.Error(err))
	}
	if m.Remote != nil {
		if err := m.Remote.Upload(ctx, path); err != nil {
			return path, err
		}
	}
	return path, nil
}

// List returns snapshot files, oldest first
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		files = append(files, filepath.Join(m.Path, name))
	}
	// the timestamp layout sorts lexically
	sort.Strings(files)
	return files, nil
}

// Prune deletes all but the newest Keep snapshots
func (m *Manager) Prune() error {
	if m.Keep <= 0 {
		return nil
	}
	files, err := m.List()
	if err != nil {
		return err
	}
	for len(files) > m.Keep {
		if err := os.Remove(files[0]); err != nil {
			return fmt.Errorf("failed to remove %s: %w", files[0], err)
		}
		files = files[1:]
	}
	return nil
}

// Write stores a snapshot as YAML
func Write(path string, snap *Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Read loads a snapshot file
func Read(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	return &snap, nil
}

// Restore saves every snapshot value whose key is registered in dst. Values
// go through the normal sanitizers; the skipped keys are returned along with
// the rejected ones.
func Restore(ctx context.Context, snap *Snapshot, dst Target) (saved int, rejected, skipped []string, err error) {
	known := make(map[string]bool)
	for _, s := range dst.Settings() {
		known[s.Key] = true
	}

	values := make(map[string]string, len(snap.Settings))
	for k, v := range snap.Settings {
		if !known[k] {
			skipped = append(skipped, k)
			continue
		}
		values[k] = v
	}
	sort.Strings(skipped)

	saved, rejected, err = dst.SaveAll(ctx, values)
	return saved, rejected, skipped, err
}
