package domain

// UnitResolver resolves a unit code into its full definition. A nil
// definition or an error both mean the code could not be resolved; the
// aggregator converts either into a standardized failure report.
type UnitResolver interface {
	Resolve(code string) (*UnitDefinition, error)
}

// ResolverFunc adapts a plain function to UnitResolver.
type ResolverFunc func(code string) (*UnitDefinition, error)

func (f ResolverFunc) Resolve(code string) (*UnitDefinition, error) { return f(code) }

// TextExtractor pulls plain text out of an assessment document on disk.
type TextExtractor interface {
	Extract(path string) (string, error)
}

// CodeDetector finds candidate unit codes in raw text, deduplicated in
// first-seen order.
type CodeDetector interface {
	Detect(text string) []string
}

// DefinitionCache is an in-process store of resolved unit definitions keyed
// by unit code. At most one entry per code, no eviction; last writer wins,
// which is safe because a code's payload is immutable once fetched.
type DefinitionCache interface {
	Get(code string) (*UnitDefinition, bool)
	Put(code string, def *UnitDefinition)
}

// ConfigLoader loads configuration for a working directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// GitInfo reports version-control metadata for the directory holding a
// document, used for report provenance.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
