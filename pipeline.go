package hanscan

import (
	"context"
	"sort"
	"strings"
)

// Provider is the interface for external translation backends. A provider
// may return a subset of the requested words (partial success); words absent
// from the result are treated as not yet translated and their original text
// survives downstream.
type Provider interface {
	TranslateBatch(ctx context.Context, words []string) (map[string]string, error)
}

// MappingStore persists resolved phrase translations between runs. All
// implementations are fail-soft: a failed load behaves as "start empty" and
// a failed save is reported without aborting the run.
type MappingStore interface {
	// Load returns the persisted mapping, falling back to a backup and then
	// to an empty mapping. It never fails.
	Load() map[string]string
	// Save persists the mapping, backing up the previous version first.
	Save(mapping map[string]string) error
}

// TreeScanner walks a source tree and collects translatable phrases.
type TreeScanner interface {
	Scan(ctx context.Context, root string) (*ScanResult, error)
}

// SpanRewriter rewrites a single file using the merged dictionary,
// returning whether the file content changed.
type SpanRewriter interface {
	RewriteFile(path string, dict *Dict) (bool, error)
}

// Pipeline runs the scan → translate → rewrite cycle over a source tree.
type Pipeline struct {
	cfg      Config
	dict     *Dict
	store    MappingStore
	provider Provider
	scanner  TreeScanner
	rewriter SpanRewriter
	progress ProgressFunc
	warn     func(format string, args ...any)
}

// PipelineOption is a functional option for configuring the Pipeline.
type PipelineOption func(*Pipeline)

// WithDictionary replaces the built-in phrase dictionary.
func WithDictionary(d *Dict) PipelineOption {
	return func(p *Pipeline) {
		p.dict = d
	}
}

// WithStore sets the persistent translation mapping store.
func WithStore(s MappingStore) PipelineOption {
	return func(p *Pipeline) {
		p.store = s
	}
}

// WithProvider sets the external translation provider.
func WithProvider(pr Provider) PipelineOption {
	return func(p *Pipeline) {
		p.provider = pr
	}
}

// WithScanner sets the tree scanner.
func WithScanner(s TreeScanner) PipelineOption {
	return func(p *Pipeline) {
		p.scanner = s
	}
}

// WithRewriter sets the file rewriter.
func WithRewriter(r SpanRewriter) PipelineOption {
	return func(p *Pipeline) {
		p.rewriter = r
	}
}

// WithProgress sets the progress event sink.
func WithProgress(fn ProgressFunc) PipelineOption {
	return func(p *Pipeline) {
		p.progress = fn
	}
}

// WithWarnLog sets the sink for non-fatal warnings (per-file failures,
// store save failures). Default discards them.
func WithWarnLog(fn func(format string, args ...any)) PipelineOption {
	return func(p *Pipeline) {
		p.warn = fn
	}
}

// NewPipeline creates a pipeline with the built-in dictionary. A scanner is
// required for Run; store, provider, and rewriter are optional. Without a
// provider the pipeline is dictionary-only, without a rewriter it only
// collects and translates phrases.
func NewPipeline(cfg Config, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		cfg:  cfg,
		dict: BuiltinDict(),
		warn: func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Dictionary returns the pipeline's working dictionary.
func (p *Pipeline) Dictionary() *Dict {
	return p.dict
}

// Run executes the full cycle against root. Individual file failures are
// counted in the report, not returned; the error is non-nil only when the
// tree itself cannot be scanned.
func (p *Pipeline) Run(ctx context.Context, root string) (*RunReport, error) {
	rep := &RunReport{}

	if p.scanner == nil {
		return rep, &TranslationError{Message: "pipeline has no scanner"}
	}

	// Cache entries take precedence over built-in dictionary entries: they
	// reflect more specific, contextual translations.
	var cached map[string]string
	if p.store != nil {
		cached = p.store.Load()
		rep.FromCache = p.dict.Merge(cached)
	} else {
		cached = make(map[string]string)
	}

	res, err := p.scanner.Scan(ctx, root)
	if err != nil {
		return rep, err
	}
	rep.FilesScanned = res.FilesScanned
	rep.FilesMatched = len(res.MatchedFiles)
	rep.FilesFailed = res.FilesFailed
	rep.PhrasesFound = len(res.Phrases)

	unmapped := p.unmapped(res.Phrases)
	rep.PhrasesNew = len(unmapped)

	if p.provider != nil && len(unmapped) > 0 {
		p.emit(ProgressEvent{Stage: StageTranslate, Total: len(unmapped)})

		results, err := p.provider.TranslateBatch(ctx, unmapped)
		if err != nil {
			// Provider failure means every requested phrase stays
			// untranslated; the run continues on dictionary and cache hits.
			p.warn("translation provider failed: %v", err)
		}

		delta := make(map[string]string, len(results))
		for k, v := range results {
			k = strings.TrimSpace(k)
			v = strings.TrimSpace(v)
			if k == "" || v == "" || k == v {
				continue
			}
			delta[k] = v
		}
		rep.Translated = len(delta)

		if len(delta) > 0 {
			p.dict.Merge(delta)
			for k, v := range delta {
				cached[k] = v
			}
			if p.store != nil {
				if err := p.store.Save(cached); err != nil {
					p.warn("saving translation map: %v", err)
				}
			}
		}
		p.emit(ProgressEvent{Stage: StageTranslate, Done: rep.Translated, Total: len(unmapped)})
	}

	if p.rewriter != nil {
		for i, path := range res.MatchedFiles {
			select {
			case <-ctx.Done():
				return rep, ctx.Err()
			default:
			}

			changed, err := p.rewriter.RewriteFile(path, p.dict)
			if err != nil {
				rep.FilesFailed++
				p.warn("rewriting %s: %v", path, err)
			} else if changed {
				rep.FilesChanged++
			}
			p.emit(ProgressEvent{Stage: StageRewrite, Path: path, Done: i + 1, Total: len(res.MatchedFiles)})
		}
	}

	return rep, nil
}

// unmapped returns the scanned phrases absent from the merged dictionary,
// sorted for deterministic provider batches.
func (p *Pipeline) unmapped(phrases []string) []string {
	var out []string
	for _, phrase := range phrases {
		if _, ok := p.dict.Get(phrase); !ok {
			out = append(out, phrase)
		}
	}
	sort.Strings(out)
	return out
}

func (p *Pipeline) emit(ev ProgressEvent) {
	if p.progress != nil {
		p.progress(ev)
	}
}
