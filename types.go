package hanscan

import "path/filepath"

// SpanKind classifies a located region of translatable source text.
type SpanKind string

const (
	// SpanLineComment is a comment occupying a whole line.
	SpanLineComment SpanKind = "line_comment"
	// SpanInlineComment is a trailing comment after code on the same line.
	SpanInlineComment SpanKind = "inline_comment"
	// SpanDocstring is a documentation block (triple-quoted string or doc comment).
	SpanDocstring SpanKind = "docstring"
	// SpanStringLiteral is a quoted string constant inside code.
	SpanStringLiteral SpanKind = "string_literal"
	// SpanIdentifier is a name bound by a definition, reference, or import.
	SpanIdentifier SpanKind = "identifier"
	// SpanProse is a line of document text (Markdown, plain text) with no
	// surrounding code structure.
	SpanProse SpanKind = "prose"
)

// Span is a located region of source text eligible for translation.
// Spans are produced per scan pass and consumed immediately; they are
// never persisted.
type Span struct {
	Kind      SpanKind
	Path      string
	StartLine int // 1-based; 0 when the extractor has no position info
	EndLine   int
	Text      string
	Indent    string // leading whitespace of the first line, verbatim
}

// Config controls scanning and rewriting behaviour. It is immutable per run;
// callers construct one up front and pass it to the scanner, rewriter, and
// pipeline.
type Config struct {
	// RemoveComments drops comment spans from rewritten output instead of
	// translating them.
	RemoveComments bool
	// RemoveDocstrings drops docstring spans from rewritten output.
	RemoveDocstrings bool
	// CodeOnly restricts scanning to code extensions, skipping documents.
	CodeOnly bool
	// BackupOriginal writes a .bak copy of every file before rewriting it.
	BackupOriginal bool
	// CacheFile is the path of the persisted translation map.
	CacheFile string
	// Extensions is the set of code file extensions to scan.
	Extensions map[string]bool
	// DocExtensions is the set of document extensions scanned unless CodeOnly.
	DocExtensions map[string]bool
	// BlacklistDirs are directory names pruned during the walk.
	BlacklistDirs map[string]bool
	// Workers is the number of concurrent extraction workers (0 = NumCPU).
	Workers int
}

// DefaultConfig returns a Config with the default extension sets and
// directory blacklist.
func DefaultConfig() Config {
	return Config{
		CacheFile:     "translation_map.json",
		Extensions:    extSet(defaultCodeExtensions),
		DocExtensions: extSet(defaultDocExtensions),
		BlacklistDirs: extSet(defaultBlacklistDirs),
	}
}

func extSet(items []string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[it] = true
	}
	return m
}

var defaultCodeExtensions = []string{
	".py", ".js", ".ts", ".jsx", ".tsx", ".java", ".cpp", ".c", ".h", ".hpp",
	".cs", ".php", ".rb", ".go", ".rs", ".swift", ".kt", ".scala", ".m",
	".sql", ".r", ".sh", ".bash", ".ps1", ".html", ".htm", ".css", ".scss",
	".sass", ".less", ".ejs", ".vue", ".json", ".xml", ".yml", ".yaml",
	".toml", ".ini", ".cfg", ".conf",
}

var defaultDocExtensions = []string{
	".txt", ".md", ".rst", ".csv", ".sample",
}

var defaultBlacklistDirs = []string{
	"multi-language", "docs", ".git", "build", ".github", ".vscode",
	"__pycache__", "venv", "node_modules", ".idea", ".vs", ".pytest_cache",
	".mypy_cache", "__snapshots__", ".next", ".nuxt", "dist",
}

// binaryExtensions are never scanned regardless of configuration.
var binaryExtensions = map[string]bool{
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true, ".otf": true,
	".exe": true, ".dll": true, ".so": true, ".dylib": true, ".bin": true,
	".zip": true, ".tar": true, ".gz": true, ".rar": true, ".7z": true,
	".mp3": true, ".mp4": true, ".wav": true, ".avi": true, ".mov": true,
	".doc": true, ".docx": true, ".xls": true, ".xlsx": true, ".ppt": true,
	".pptx": true, ".pdf": true, ".wasm": true, ".idx": true, ".pack": true,
	".rev": true, ".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".ico": true, ".svg": true,
}

// SkipExtension reports whether ext (including the leading dot) is excluded
// from scanning under this configuration.
func (c Config) SkipExtension(ext string) bool {
	if binaryExtensions[ext] {
		return true
	}
	if c.Extensions[ext] {
		return false
	}
	if !c.CodeOnly && c.DocExtensions[ext] {
		return false
	}
	return true
}

// CachePath resolves the translation map path against root unless it is
// already absolute.
func (c Config) CachePath(root string) string {
	if filepath.IsAbs(c.CacheFile) {
		return c.CacheFile
	}
	return filepath.Join(root, c.CacheFile)
}

// ScanResult is the outcome of walking a source tree.
type ScanResult struct {
	// Phrases are the unique translatable phrases found, sorted.
	Phrases []string
	// MatchedFiles are the files that contained at least one Han rune.
	MatchedFiles []string
	// FilesScanned counts every file whose content was examined.
	FilesScanned int
	// FilesFailed counts files that could not be read or decoded.
	FilesFailed int
}

// RunReport aggregates per-run counts. Individual file failures are counted
// here, never surfaced as pipeline errors.
type RunReport struct {
	FilesScanned int
	FilesMatched int
	FilesFailed  int
	FilesChanged int
	PhrasesFound int
	PhrasesNew   int
	Translated   int
	FromCache    int
}

// Stage identifies a pipeline phase in progress events.
type Stage string

const (
	StageScan      Stage = "scan"
	StageTranslate Stage = "translate"
	StageRewrite   Stage = "rewrite"
)

// ProgressEvent carries pipeline progress to a presentation layer. The core
// never depends on any UI toolkit; callers receive events through a
// ProgressFunc and render them however they like.
type ProgressEvent struct {
	Stage   Stage
	Path    string
	Done    int
	Total   int
	Message string
}

// ProgressFunc receives progress events. Implementations must be fast;
// they are called synchronously from pipeline goroutines.
type ProgressFunc func(ProgressEvent)
