package session

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/peptrack/pkg/dashboard"
	"github.com/matzehuels/peptrack/pkg/errors"
	"github.com/matzehuels/peptrack/pkg/track"
)

// Parse decodes a session from TOML and validates it.
func Parse(data []byte) (*Session, error) {
	var s Session
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSession, err, "decode session")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidSession, "unknown key %q", undecoded[0].String())
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a session file.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "session %s", path)
		}
		return nil, fmt.Errorf("read session: %w", err)
	}
	return Parse(data)
}

// Encode renders s as TOML.
func Encode(s *Session) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes s to path.
func Save(path string, s *Session) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// FromSnapshot captures the layout of a running dashboard as a session
// without steps, so it can be reopened later with the same widths, gutters
// and zoom cap. Gutters matching the kind's defaults are left out.
func FromSnapshot(name string, snap dashboard.Snapshot) *Session {
	s := &Session{Name: name, Domain: snap.Domain, MinVisibleSpan: snap.MinVisibleSpan}
	for _, v := range snap.Tracks {
		def := TrackDef{
			ID:    v.ID,
			Kind:  string(v.Kind),
			Width: v.Geometry.Width,
		}
		g := track.Gutters{Left: v.Geometry.GutterLeft, Right: v.Geometry.GutterRight}
		if g != v.Kind.Gutters() {
			def.Gutters = &g
		}
		s.Tracks = append(s.Tracks, def)
	}
	return s
}
