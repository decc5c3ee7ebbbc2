package fs

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Collector gathers input text files for batch signing, filtered by
// include/exclude glob patterns.
type Collector struct {
	includes []string
	excludes []string
}

func NewCollector(includes, excludes []string) *Collector {
	if len(includes) == 0 {
		includes = []string{"**/*"}
	}
	return &Collector{
		includes: includes,
		excludes: excludes,
	}
}

// Collect walks root and returns the matching file paths, sorted for a
// deterministic batch order.
func (c *Collector) Collect(root string) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if c.shouldExclude(relPath + "/") {
				return filepath.SkipDir
			}
			return nil
		}

		if c.shouldExclude(relPath) || !c.shouldInclude(relPath) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func (c *Collector) shouldInclude(relPath string) bool {
	for _, pattern := range c.includes {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
	}
	return false
}

func (c *Collector) shouldExclude(relPath string) bool {
	for _, pattern := range c.excludes {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
	}
	return false
}
