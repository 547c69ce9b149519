package probe

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// Probe answers existence and content questions about artifacts under a
// single root directory. All paths are relative to that root; the root is
// fixed at construction time and never mutated, so the same Probe can be
// pointed at a test fixture or a real checkout.
type Probe struct {
	root string
	log  *zap.SugaredLogger
}

// New creates a probe rooted at the given directory.
func New(root string, log *zap.SugaredLogger) *Probe {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Probe{root: root, log: log}
}

// Root returns the directory all relative paths resolve against.
func (p *Probe) Root() string { return p.root }

// Exists reports whether a regular file exists at the given relative path.
// Directories and any stat failure count as absent.
func (p *Probe) Exists(rel string) bool {
	info, err := os.Stat(filepath.Join(p.root, rel))
	if err != nil {
		p.log.Debugw("stat failed", "path", rel, "error", err)
		return false
	}
	return info.Mode().IsRegular()
}

// ReadText loads the full text of an artifact. The second return value is
// false on any read failure; callers treat that the same as "no match".
func (p *Probe) ReadText(rel string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(p.root, rel))
	if err != nil {
		p.log.Debugw("read failed", "path", rel, "error", err)
		return "", false
	}
	return string(data), true
}

// Inventory lists every regular file under the root as sorted relative paths,
// skipping .git. Used for verbose diagnostics only; walk errors are dropped
// so a partially unreadable tree still yields a listing.
func (p *Probe) Inventory() []string {
	var files []string
	_ = filepath.WalkDir(p.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, rerr := filepath.Rel(p.root, path)
		if rerr != nil {
			return nil
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(files)
	return files
}
