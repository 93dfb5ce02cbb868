package restyutil

import (
	"log/slog"
	"os"
	"path/filepath"
)

// FilesystemOutput dumps each http exchange to its own file under a
// directory. Leftovers from the previous run are cleared on creation.
type FilesystemOutput struct {
	dir string
}

func NewFilesystemOutput(dir string) FilesystemOutput {
	os.RemoveAll(dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		panic(err)
	}
	return FilesystemOutput{dir: dir}
}

func (o FilesystemOutput) Write(id string, contents string) {
	path := filepath.Join(o.dir, id+".http")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		slog.Warn("failed to write http dump", "path", path, "err", err)
	}
}
