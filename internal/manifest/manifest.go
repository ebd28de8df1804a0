package manifest

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FileName is written next to the configuration artifact.
const FileName = "build-manifest.json"

// BuildManifest records one composition run: what went in, what came out.
type BuildManifest struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	ConfigHash string    `json:"config_hash"`
	Plugins    []string  `json:"plugins"`
	Artifact   string    `json:"artifact"`
	Status     string    `json:"status"`
	Duration   int64     `json:"duration_ms"`
}

// New creates a manifest with a fresh build id and the current timestamp.
func New(configHash string, pluginIDs []string, artifact string) *BuildManifest {
	return &BuildManifest{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		ConfigHash: configHash,
		Plugins:    pluginIDs,
		Artifact:   artifact,
		Status:     "success",
	}
}

// ToJSON serializes the manifest to indented JSON.
func (m *BuildManifest) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return data, nil
}

// FromJSON deserializes a manifest from JSON.
func FromJSON(data []byte) (*BuildManifest, error) {
	var m BuildManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return &m, nil
}

// Write stores the manifest in dir under FileName and returns the path.
func (m *BuildManifest) Write(dir string) (string, error) {
	data, err := m.ToJSON()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}

// Hash computes a deterministic hash over the build inputs and the produced
// plugin sequence, excluding the per-run id and timestamp. Two runs from the
// same configuration and environment hash identically.
func (m *BuildManifest) Hash() (string, error) {
	hashInput := struct {
		ConfigHash string   `json:"config_hash"`
		Plugins    []string `json:"plugins"`
		Artifact   string   `json:"artifact"`
	}{m.ConfigHash, m.Plugins, m.Artifact}

	data, err := json.Marshal(hashInput)
	if err != nil {
		return "", fmt.Errorf("marshal for hash: %w", err)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash), nil
}
