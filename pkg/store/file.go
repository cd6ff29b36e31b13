package store

import (
	"context"
	"io"
	"os"
	"path/filepath"

	breverrors "github.com/brevdev/kusto-init/pkg/errors"
	"github.com/spf13/afero"
)

const (
	executableMode = 0o755
	configFileMode = 0o644
)

type FileStore struct {
	BasicStore
	fs afero.Fs
}

func (b *BasicStore) WithFileSystem(fs afero.Fs) *FileStore {
	return &FileStore{*b, fs}
}

func (f FileStore) FileExists(path string) (bool, error) {
	fileExists, err := afero.Exists(f.fs, path)
	if err != nil {
		return false, breverrors.WrapAndTrace(err)
	}
	return fileExists, nil
}

// createTruncated opens path for writing, creating parent dirs and dropping any
// previous content.
func (f FileStore) createTruncated(path string, perm os.FileMode) (afero.File, error) {
	if err := f.fs.MkdirAll(filepath.Dir(path), 0o775); err != nil {
		return nil, breverrors.WrapAndTrace(err)
	}
	file, err := f.fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return nil, breverrors.WrapAndTrace(err)
	}
	return file, nil
}

// WriteString replaces the contents of path with data.
func (f FileStore) WriteString(path, data string) error {
	file, err := f.createTruncated(path, configFileMode)
	if err != nil {
		return breverrors.WrapAndTrace(err)
	}
	_, err = file.WriteString(data)
	if err != nil {
		_ = file.Close()
		return breverrors.WrapAndTrace(err)
	}
	err = file.Close()
	if err != nil {
		return breverrors.WrapAndTrace(err)
	}
	return nil
}

func (f FileStore) ReadString(path string) (string, error) {
	b, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return "", breverrors.WrapAndTrace(err)
	}
	return string(b), nil
}

// PutFile persists content as an executable script.
func (f FileStore) PutFile(_ context.Context, path, content string, overwrite bool) error {
	if !overwrite {
		exists, err := f.FileExists(path)
		if err != nil {
			return breverrors.WrapAndTrace(err)
		}
		if exists {
			return breverrors.WrapAndTrace(os.ErrExist, path)
		}
	}
	err := f.WriteString(path, content)
	if err != nil {
		return breverrors.WrapAndTrace(err)
	}
	err = f.fs.Chmod(path, executableMode)
	if err != nil {
		return breverrors.WrapAndTrace(err)
	}
	return nil
}

// CopyFile overwrites dst with the contents of src, like cp. It does not
// create dst's directory.
func (f FileStore) CopyFile(src, dst string) error {
	in, err := f.fs.Open(src)
	if err != nil {
		return breverrors.WrapAndTrace(err)
	}
	defer in.Close() //nolint:errcheck // read only

	out, err := f.fs.OpenFile(dst, os.O_RDWR|os.O_CREATE|os.O_TRUNC, configFileMode)
	if err != nil {
		return breverrors.WrapAndTrace(err)
	}
	_, err = io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return breverrors.WrapAndTrace(err)
	}
	err = out.Close()
	if err != nil {
		return breverrors.WrapAndTrace(err)
	}
	return nil
}
