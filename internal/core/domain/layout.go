package domain

import "path/filepath"

const (
	// ScaffoldDirName is the name of the internal workspace directory.
	ScaffoldDirName = ".scaffold"

	// StoreDirName is the name of the render info store directory.
	StoreDirName = "store"

	// SettingsFileName is the name of the project settings file.
	SettingsFileName = "scaffold.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultScaffoldPath returns the default root directory for scaffold metadata.
func DefaultScaffoldPath() string {
	return ScaffoldDirName
}

// DefaultStorePath returns the default path for the render info store.
// It joins .scaffold and store.
func DefaultStorePath() string {
	return filepath.Join(ScaffoldDirName, StoreDirName)
}
