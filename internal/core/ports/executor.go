package ports

import "context"

// Executor locates and runs the formatter executable from a built artifact.
type Executor interface {
	// LocateFormatter selects the executable to run from the artifact
	// directory: bin/treefmt when present, otherwise the first executable
	// in bin/ in directory enumeration order, otherwise the artifact itself
	// when it is an executable file.
	LocateFormatter(artifact string) (string, error)

	// Run executes path with args in workdir, stdio inherited, and returns
	// the process exit code. A non-zero exit is not an error; failing to
	// launch the process is.
	Run(ctx context.Context, path string, args []string, workdir string) (int, error)
}
