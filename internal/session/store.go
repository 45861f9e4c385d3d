package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoSession is returned by Load when no session file exists on disk.
var ErrNoSession = errors.New("no recorded session")

// SessionStore persists the current Session to disk. Only one session is
// tracked at a time: the active recording, or the most recently finished
// one (kept so explain/view can find its transcript).
type SessionStore interface {
	Save(s *Session) error
	Load() (*Session, error) // returns ErrNoSession if none exists
	Delete() error
}

// diskStore is the concrete SessionStore that writes to the XDG data directory.
type diskStore struct {
	path string // full path to session.json
}

// NewSessionStore returns a SessionStore backed by the XDG data directory.
// Path: $XDG_DATA_HOME/term-chat/session.json or ~/.local/share/term-chat/session.json
func NewSessionStore() (SessionStore, error) {
	dir, err := DataDir()
	if err != nil {
		return nil, fmt.Errorf("resolving data directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &diskStore{path: filepath.Join(dir, "session.json")}, nil
}

// DataDir returns the term-chat XDG data directory.
func DataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "term-chat"), nil
}

// TranscriptsDir returns the directory recorded transcripts are written
// to, creating it if needed.
func TranscriptsDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "transcripts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating transcripts directory: %w", err)
	}
	return dir, nil
}

// Save writes s as JSON. The bytes go to a temp file in the same directory
// first and are renamed into place, so a crash mid-write can never leave a
// truncated session file behind — the growth watcher saves concurrently
// with reads from status.
func (d *diskStore) Save(s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session state: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(d.path), "termchat-*.tmp")
	if err != nil {
		return fmt.Errorf("writing session state: %w", err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr == nil {
		werr = cerr
	}
	if werr == nil {
		werr = os.Rename(tmpName, d.path)
	}
	if werr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing session state: %w", werr)
	}
	return nil
}

// Load reads the session file, returning ErrNoSession when it is absent.
func (d *diskStore) Load() (*Session, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("reading session state: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding session state: %w", err)
	}
	return &s, nil
}

// Delete removes the session file. An already-absent file is not an error.
func (d *diskStore) Delete() error {
	if err := os.Remove(d.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("deleting session state: %w", err)
	}
	return nil
}
