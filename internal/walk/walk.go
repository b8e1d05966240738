package walk

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/philipp01105/ntrace/core"
	"github.com/philipp01105/ntrace/tracer"
)

// Options controls a walk
type Options struct {
	// MaxDepth stops descending below this many levels (0: unlimited)
	MaxDepth int
	// Hidden includes entries whose name starts with a dot
	Hidden bool
}

// Summary counts what a walk visited
type Summary struct {
	Dirs  int
	Files int
	Bytes int64
}

// Walk traverses root depth first and traces every step with t.
func Walk(t *tracer.Tracer, root string, opts Options) (*Summary, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("walk %s: not a directory", root)
	}

	sum := &Summary{}
	w := &walker{t: t, opts: opts, sum: sum}
	if err := w.dir(root, 0); err != nil {
		return sum, err
	}

	site := core.Caller(0)
	t.ShowPointer(sum, "summary", site.File, site.Line)
	t.Check(sum.Dirs > 0, "sum.Dirs > 0")
	t.Logf("%d dirs, %d files, %d bytes\n", sum.Dirs, sum.Files, sum.Bytes)
	return sum, nil
}

type walker struct {
	t    *tracer.Tracer
	opts Options
	sum  *Summary
}

// dir visits one directory. The traced result is the number of entries
// it listed.
func (w *walker) dir(path string, depth int) (err error) {
	site := core.Caller(0)
	w.t.Enter(site.File, site.Line, site.Function)

	entries, err := os.ReadDir(path)
	defer func() {
		leave := core.Caller(1)
		w.t.LeaveWithResult(leave.File, leave.Line, site.Function, uint32(len(entries)))
	}()
	if err != nil {
		w.t.ShowMessage(err.Error(), site.File, site.Line)
		return fmt.Errorf("read %s: %w", path, err)
	}

	w.sum.Dirs++
	w.t.ShowString(&path, "path", site.File, site.Line)
	w.t.ShowValue(uint32(len(entries)), 4, "entries", site.File, site.Line)

	for _, e := range entries {
		name := e.Name()
		if !w.opts.Hidden && len(name) > 0 && name[0] == '.' {
			continue
		}

		full := filepath.Join(path, name)
		if e.IsDir() {
			if w.opts.MaxDepth > 0 && depth+1 >= w.opts.MaxDepth {
				continue
			}
			if err := w.dir(full, depth+1); err != nil {
				return err
			}
			continue
		}

		info, err := e.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", full, err)
		}
		w.t.Check(info.Size() >= 0, "info.Size() >= 0")

		w.sum.Files++
		w.sum.Bytes += info.Size()

		here := core.Caller(0)
		w.t.Header(here.File, here.Line)
		w.t.Printf("%s %d bytes", name, info.Size())
	}
	return nil
}
