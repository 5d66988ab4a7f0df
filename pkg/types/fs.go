package types

import "io/fs"

// FS abstracts the filesystem operations toolup performs, so commands can
// be tested against an in-memory implementation. The core packages never
// touch it directly; only the persistence collaborator does.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
}
