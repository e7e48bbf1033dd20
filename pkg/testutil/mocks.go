package testutil

import (
	"io"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/sortdir/pkg/types"
	"github.com/stretchr/testify/mock"
)

// MockFS is a testify mock of types.FS used for failure injection.
//
// Methods with no registered expectation pass straight through to Delegate.
// Once an expectation exists for a method, every call to it goes through
// the mock: a non-nil error is returned as is, a nil error passes through.
// Register specific expectations before a catch-all, since testify matches
// them in order:
//
//	m.On("Rename", mock.MatchedBy(isTxt), mock.Anything).Return(errBoom)
//	m.On("Rename", mock.Anything, mock.Anything).Return(nil)
type MockFS struct {
	mock.Mock
	Delegate types.FS
}

// NewMockFS wraps delegate.
func NewMockFS(delegate types.FS) *MockFS {
	return &MockFS{Delegate: delegate}
}

func (m *MockFS) intercepted(method string) bool {
	for _, call := range m.ExpectedCalls {
		if call.Method == method {
			return true
		}
	}
	return false
}

func (m *MockFS) injected(method string, args ...interface{}) error {
	if !m.intercepted(method) {
		return nil
	}
	return m.MethodCalled(method, args...).Error(0)
}

func (m *MockFS) Stat(name string) (fs.FileInfo, error) {
	if err := m.injected("Stat", name); err != nil {
		return nil, err
	}
	return m.Delegate.Stat(name)
}

func (m *MockFS) Open(name string) (io.ReadCloser, error) {
	if err := m.injected("Open", name); err != nil {
		return nil, err
	}
	return m.Delegate.Open(name)
}

func (m *MockFS) Create(name string) (io.WriteCloser, error) {
	if err := m.injected("Create", name); err != nil {
		return nil, err
	}
	return m.Delegate.Create(name)
}

func (m *MockFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := m.injected("MkdirAll", path); err != nil {
		return err
	}
	return m.Delegate.MkdirAll(path, perm)
}

func (m *MockFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := m.injected("ReadDir", name); err != nil {
		return nil, err
	}
	return m.Delegate.ReadDir(name)
}

func (m *MockFS) Walk(root string, fn filepath.WalkFunc) error {
	if err := m.injected("Walk", root); err != nil {
		return err
	}
	return m.Delegate.Walk(root, fn)
}

func (m *MockFS) Remove(name string) error {
	if err := m.injected("Remove", name); err != nil {
		return err
	}
	return m.Delegate.Remove(name)
}

func (m *MockFS) Rename(oldpath, newpath string) error {
	if err := m.injected("Rename", oldpath, newpath); err != nil {
		return err
	}
	return m.Delegate.Rename(oldpath, newpath)
}

func (m *MockFS) Lstat(name string) (fs.FileInfo, error) {
	if err := m.injected("Lstat", name); err != nil {
		return nil, err
	}
	return m.Delegate.Lstat(name)
}

var _ types.FS = (*MockFS)(nil)
