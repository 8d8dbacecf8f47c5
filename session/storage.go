package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/learnly/learnly-go/models"
	"github.com/learnly/learnly-go/utils"
)

// storageFile is the fixed namespace key for the persisted session record.
const storageFile = "auth-storage.json"

// Storage persists the session record across process restarts.
type Storage interface {
	Load() (models.Session, bool, error)
	Save(models.Session) error
	Clear() error
}

// FileStorage keeps the session as a JSON file inside the state directory,
// readable only by the owning user.
type FileStorage struct {
	path string
}

func NewFileStorage(stateDir string) (*FileStorage, error) {
	if err := os.MkdirAll(stateDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}
	return &FileStorage{path: filepath.Join(stateDir, storageFile)}, nil
}

func (f *FileStorage) Load() (models.Session, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Session{}, false, nil
	}
	if err != nil {
		return models.Session{}, false, fmt.Errorf("reading session file: %w", err)
	}

	var sess models.Session
	if err := utils.BytesToStruct(data, &sess); err != nil {
		return models.Session{}, false, fmt.Errorf("parsing session file: %w", err)
	}
	return sess, true, nil
}

func (f *FileStorage) Save(sess models.Session) error {
	data, err := utils.StructToBytes(sess)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

func (f *FileStorage) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
