package toolkit

import (
	"errors"
	"os"
)

// MockFileSystem implements FileSystem for testing. Reads and writes go to
// the real filesystem unless a failure is injected.
type MockFileSystem struct {
	ReadErr  error
	WriteErr error
}

func (fs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if fs.ReadErr != nil {
		return nil, fs.ReadErr
	}
	return os.ReadFile(path)
}

func (fs *MockFileSystem) WriteFile(path string, data []byte) error {
	if fs.WriteErr != nil {
		return fs.WriteErr
	}
	return os.WriteFile(path, data, 0644)
}

func (fs *MockFileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

func (fs *MockFileSystem) FileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

func (fs *MockFileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
