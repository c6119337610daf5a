package toolkit

import (
	"os"
	"path/filepath"
)

// FileSystem interface for abstracting file operations (enables testing)
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	MkdirAll(path string) error
	FileExists(path string) bool
	IsDir(path string) bool
}

// RealFileSystem implements FileSystem using actual file operations
type RealFileSystem struct{}

func (fs *RealFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (fs *RealFileSystem) WriteFile(path string, data []byte) error {
	// Ensure parent directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (fs *RealFileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

func (fs *RealFileSystem) FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

func (fs *RealFileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
