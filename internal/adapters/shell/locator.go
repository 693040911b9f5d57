package shell

import (
	"path/filepath"

	"github.com/Mic92/flake-fmt/internal/core/domain"
	"github.com/spf13/afero"
	"go.trai.ch/zerr"
)

// LocateFormatter selects the executable to run from a built artifact.
//
// bin/treefmt wins when present. Otherwise the first executable regular file
// in bin/ is taken, in directory enumeration order; which one is selected
// when several exist is deliberately unspecified. As a last resort a
// single-file artifact that is itself executable is used directly.
func (e *Executor) LocateFormatter(artifact string) (string, error) {
	treefmt := filepath.Join(artifact, domain.BinDirName, domain.TreefmtName)
	if e.isExecutable(treefmt) {
		e.logger.Debug("selected treefmt", "path", treefmt)
		return treefmt, nil
	}

	binDir := filepath.Join(artifact, domain.BinDirName)
	entries, err := afero.ReadDir(e.fs, binDir)
	if err == nil {
		for _, entry := range entries {
			path := filepath.Join(binDir, entry.Name())
			if e.isExecutable(path) {
				e.logger.Debug("selected formatter", "path", path)
				return path, nil
			}
		}
	}

	if e.isExecutable(artifact) {
		e.logger.Debug("artifact is itself executable", "path", artifact)
		return artifact, nil
	}

	return "", zerr.With(domain.ErrNoFormatterFound, "artifact", artifact)
}

// isExecutable reports whether path is a regular file with an execute bit.
// Stat follows symlinks, so store paths behind out-links qualify.
func (e *Executor) isExecutable(path string) bool {
	info, err := e.fs.Stat(path)
	if err != nil {
		return false
	}
	mode := info.Mode()
	return mode.IsRegular() && mode.Perm()&0o111 != 0
}
