package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/etnz/moneymind"
)

// DefaultFile is the file used when no path is given.
const DefaultFile = "moneymind.json"

// File stores the database as a JSON file.
type File struct {
	path string
}

// NewFile returns a file store at path.
func NewFile(path string) *File {
	if path == "" {
		path = DefaultFile
	}
	return &File{path: path}
}

// Path returns the path of the file.
func (f *File) Path() string { return f.path }

// Load reads the file. A missing file is an empty database.
func (f *File) Load(ctx context.Context) (*moneymind.Database, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return moneymind.NewDatabase(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read database file %q: %w", f.path, err)
	}
	db, damaged := decode(ctx, f.path, data)
	if damaged {
		if err := os.WriteFile(f.BackupPath(), data, 0600); err != nil {
			return nil, fmt.Errorf("could not back up malformed database %q: %w", f.path, err)
		}
	}
	return db, nil
}

// BackupPath returns the file holding the last malformed record read.
func (f *File) BackupPath() string { return f.path + ".bak" }

// Save writes the database to a temporary file next to the target, then
// renames it over the target.
func (f *File) Save(ctx context.Context, db *moneymind.Database) error {
	data, err := encode(db)
	if err != nil {
		return err
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for database %q: %w", f.path, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", f.path, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write database file %q: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write database file %q: %w", f.path, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("could not replace database file %q: %w", f.path, err)
	}
	return nil
}
