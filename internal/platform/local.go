package platform

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalCapture is a file-backed capture implementation: each session
// allocates a media file under dir and returns its path as the URI.
// Feeding actual microphone samples into the file is left to
// platform-specific builds; the lifecycle contract is what matters here.
type LocalCapture struct {
	dir string
}

func NewLocalCapture(dir string) *LocalCapture {
	return &LocalCapture{dir: dir}
}

// RequestPermission reports whether the media directory is usable.
// An unwritable directory is the local analogue of a denied grant.
func (c *LocalCapture) RequestPermission(ctx context.Context) (bool, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return false, nil
	}
	return true, nil
}

func (c *LocalCapture) Open(ctx context.Context) (Session, error) {
	path := filepath.Join(c.dir, fmt.Sprintf("%s.raw", uuid.New()))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create media file: %w", err)
	}
	return &localSession{f: f, path: path}, nil
}

type localSession struct {
	f       *os.File
	path    string
	started bool
}

func (s *localSession) Start(ctx context.Context) error {
	s.started = true
	return nil
}

func (s *localSession) Stop(ctx context.Context) (string, error) {
	if err := s.f.Close(); err != nil {
		return "", fmt.Errorf("finalize media file: %w", err)
	}
	return s.path, nil
}

// LocalPlayback replays media files from disk.
type LocalPlayback struct{}

func NewLocalPlayback() *LocalPlayback {
	return &LocalPlayback{}
}

func (p *LocalPlayback) Load(ctx context.Context, uri string) (Player, error) {
	f, err := os.Open(uri)
	if err != nil {
		return nil, fmt.Errorf("load media %s: %w", uri, err)
	}
	return &localPlayer{f: f}, nil
}

type localPlayer struct {
	f *os.File
}

// Play drains the media file. A real audio sink is platform-specific;
// reading the handle end to end keeps the contract honest.
func (p *localPlayer) Play(ctx context.Context) error {
	if _, err := io.Copy(io.Discard, p.f); err != nil {
		return fmt.Errorf("play media: %w", err)
	}
	return nil
}

func (p *localPlayer) Stop(ctx context.Context) error {
	return p.f.Close()
}

// LocalShare exports recordings by copying them into an export
// directory. Sharing is unavailable when no directory is configured.
type LocalShare struct {
	dir string
}

func NewLocalShare(dir string) *LocalShare {
	return &LocalShare{dir: dir}
}

func (s *LocalShare) IsAvailable(ctx context.Context) bool {
	if s.dir == "" {
		return false
	}
	return os.MkdirAll(s.dir, 0o755) == nil
}

func (s *LocalShare) Share(ctx context.Context, uri string) error {
	src, err := os.Open(uri)
	if err != nil {
		return fmt.Errorf("share: open %s: %w", uri, err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, filepath.Base(uri)))
	if err != nil {
		return fmt.Errorf("share: create export file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("share: copy: %w", err)
	}
	return nil
}
