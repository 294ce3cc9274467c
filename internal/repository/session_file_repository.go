package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"career-compass/internal/domain"
	"career-compass/internal/logger"
	"career-compass/internal/util"

	"go.uber.org/zap"
)

const sessionFileExt = ".json"

// sessionFileRepository stores one indented JSON file per session, named by
// the session id, under dir.
type sessionFileRepository struct {
	dir   string
	now   func() time.Time
	newID func(time.Time) string
}

// NewSessionFileRepository returns a file-backed SessionRepository. The
// directory is created on the first write.
func NewSessionFileRepository(dir string) domain.SessionRepository {
	return &sessionFileRepository{
		dir:   dir,
		now:   time.Now,
		newID: util.NewULIDAt,
	}
}

func (r *sessionFileRepository) Create(ctx context.Context, draft domain.SessionDraft) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	createdAt := r.now()
	session := domain.NewSession(r.newID(createdAt), createdAt, draft)

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return nil, domain.NewStorageError("failed to encode session", err)
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, domain.NewStorageError("failed to create sessions directory", err)
	}
	if err := writeFileAtomic(r.dir, session.ID+sessionFileExt, data); err != nil {
		return nil, domain.NewStorageError("failed to write session", err)
	}
	return session, nil
}

func (r *sessionFileRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// Only canonical ids map to files; this also rules out path traversal.
	if !util.IsValidULID(id) {
		return nil, domain.NewSessionNotFoundError(id)
	}

	data, err := os.ReadFile(r.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewSessionNotFoundError(id)
		}
		return nil, domain.NewStorageError("failed to read session", err).WithContext("session_id", id)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, domain.NewStorageError("session record is corrupt", err).WithContext("session_id", id)
	}
	return &session, nil
}

// List scans the whole directory. Unreadable or corrupt records are logged
// and skipped. A missing directory is an empty store.
func (r *sessionFileRepository) List(ctx context.Context) ([]*domain.Session, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []*domain.Session{}, nil
		}
		return nil, domain.NewStorageError("failed to read sessions directory", err)
	}

	sessions := make([]*domain.Session, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, sessionFileExt) || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(r.dir, name))
		if err != nil {
			logger.Get().Warn("Skipping unreadable session file", zap.String("file", name), zap.Error(err))
			continue
		}
		var session domain.Session
		if err := json.Unmarshal(data, &session); err != nil {
			logger.Get().Warn("Skipping corrupt session file", zap.String("file", name), zap.Error(err))
			continue
		}
		sessions = append(sessions, &session)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.After(b.Timestamp)
		}
		return a.ID > b.ID
	})
	return sessions, nil
}

func (r *sessionFileRepository) path(id string) string {
	return filepath.Join(r.dir, id+sessionFileExt)
}

// writeFileAtomic writes data to a hidden temp file in dir and renames it
// into place, so readers never observe a partial record.
func writeFileAtomic(dir, name string, data []byte) (err error) {
	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	return os.Rename(tmp.Name(), filepath.Join(dir, name))
}
