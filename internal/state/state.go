package state

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Fingerprint hashes any JSON-encodable options value to a stable hex
// digest. Two runs with identical options produce identical fingerprints,
// so a stored fingerprint can answer "did anything change".
func Fingerprint(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode options: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Entry records one completed output: the options fingerprint that produced
// it plus the content hash of the source it was produced from.
type Entry struct {
	Fingerprint string `json:"fingerprint"`
	SourceHash  string `json:"source_hash,omitempty"`
}

// Store is a JSON file mapping output paths to entries. A missing or
// corrupt file loads as empty; state only ever skips work, never fails it.
type Store struct {
	path    string
	entries map[string]Entry
}

func Load(path string) *Store {
	s := &Store{path: path, entries: map[string]Entry{}}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var entries map[string]Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return s
	}
	s.entries = entries
	return s
}

func (s *Store) Save() error {
	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// ShouldSkip reports whether the output at path already exists and was
// produced with the same fingerprint and source content.
func (s *Store) ShouldSkip(outputPath, fingerprint, sourcePath string) bool {
	entry, ok := s.entries[outputPath]
	if !ok || entry.Fingerprint != fingerprint {
		return false
	}
	if _, err := os.Stat(outputPath); err != nil {
		return false
	}
	if entry.SourceHash != "" && sourcePath != "" {
		hash, err := hashFile(sourcePath)
		if err != nil || hash != entry.SourceHash {
			return false
		}
	}
	return true
}

// Mark records a completed output. The source hash is best effort: an
// unreadable source just records the fingerprint alone.
func (s *Store) Mark(outputPath, fingerprint, sourcePath string) {
	entry := Entry{Fingerprint: fingerprint}
	if sourcePath != "" {
		if hash, err := hashFile(sourcePath); err == nil {
			entry.SourceHash = hash
		}
	}
	s.entries[outputPath] = entry
}

func hashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	h := sha256.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
