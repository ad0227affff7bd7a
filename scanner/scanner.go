// Package scanner walks source trees and collects translatable phrases.
package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/hanscan/hanscan"
	"github.com/hanscan/hanscan/extract"
)

// Scanner walks a directory tree, pruning blacklisted directories and
// filtering by extension, and extracts translatable phrases from each
// remaining file. Files are processed by a pool of workers; the aggregated
// phrase set is merged under a single lock.
type Scanner struct {
	cfg hanscan.Config

	// Progress, when set, receives one event per processed file.
	Progress hanscan.ProgressFunc
	// Warn, when set, receives non-fatal per-file problems.
	Warn func(format string, args ...any)
}

// New creates a Scanner for the given configuration.
func New(cfg hanscan.Config) *Scanner {
	return &Scanner{cfg: cfg}
}

// Collect lists the files under root eligible for scanning.
func (s *Scanner) Collect(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && s.cfg.BlacklistDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		// The translation map must never be scanned as source.
		if d.Name() == filepath.Base(s.cfg.CacheFile) {
			return nil
		}
		if s.cfg.SkipExtension(filepath.Ext(d.Name())) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ReadFileText reads a file and decodes it through the encoding fallback
// chain.
func (s *Scanner) ReadFileText(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 - scanning user-chosen tree
	if err != nil {
		return "", err
	}
	text, _, err := Decode(data)
	return text, err
}

// Scan walks root and returns the unique translatable phrases found, the
// files that contained Han text, and per-file counts. Files that cannot be
// read or decoded are counted as failures and skipped, never fatal.
func (s *Scanner) Scan(ctx context.Context, root string) (*hanscan.ScanResult, error) {
	files, err := s.Collect(root)
	if err != nil {
		return nil, err
	}

	workers := s.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(files) && len(files) > 0 {
		workers = len(files)
	}

	var (
		mu      sync.Mutex
		phrases = make(map[string]bool)
		matched []string
		failed  int
		done    int
	)

	paths := make(chan string)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				found, ok := s.scanFile(path)

				mu.Lock()
				done++
				if !ok {
					failed++
				} else if found != nil {
					matched = append(matched, path)
					for _, p := range found {
						phrases[p] = true
					}
				}
				n := done
				mu.Unlock()

				if s.Progress != nil {
					s.Progress(hanscan.ProgressEvent{
						Stage: hanscan.StageScan,
						Path:  path,
						Done:  n,
						Total: len(files),
					})
				}
			}
		}()
	}

feed:
	for _, path := range files {
		select {
		case <-ctx.Done():
			break feed
		case paths <- path:
		}
	}
	close(paths)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &hanscan.ScanResult{
		MatchedFiles: matched,
		FilesScanned: done,
		FilesFailed:  failed,
	}
	for p := range phrases {
		res.Phrases = append(res.Phrases, p)
	}
	sort.Strings(res.Phrases)
	sort.Strings(res.MatchedFiles)
	return res, nil
}

// scanFile extracts phrases from one file. The second return is false when
// the file could not be read or decoded. A nil phrase list with ok=true
// means the file holds no Han text.
func (s *Scanner) scanFile(path string) ([]string, bool) {
	content, err := s.ReadFileText(path)
	if err != nil {
		s.warnf("reading %s: %v", path, err)
		return nil, false
	}

	// Cheap whole-file gate before any parsing.
	if !hanscan.ContainsHan(content) {
		return nil, true
	}

	ex := extract.ForFile(path)
	// Configured document extensions always take the prose strategy, even
	// ones ForFile does not know about.
	if s.cfg.DocExtensions[strings.ToLower(filepath.Ext(path))] {
		ex = extract.DocExtractor{}
	}

	res, err := ex.Extract(path, content)
	if err != nil {
		// Recovered degradation: the result is still usable.
		s.warnf("%v", err)
	}
	if res == nil || res.Empty() {
		return nil, true
	}

	found := res.Phrases()
	if len(found) == 0 {
		// Han text existed but nothing survived phrase splitting; still a
		// matched file so the rewriter visits it.
		return []string{}, true
	}
	return found, true
}

func (s *Scanner) warnf(format string, args ...any) {
	if s.Warn != nil {
		s.Warn(format, args...)
	}
}

// Verify Scanner implements TreeScanner
var _ hanscan.TreeScanner = (*Scanner)(nil)
