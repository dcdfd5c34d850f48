package artikel

// DefaultMaxTreeDepth bounds worst-case DOM traversal depth against
// pathological nesting. Traversals that would exceed it stop and return
// whatever has already been collected, rather than erroring.
const DefaultMaxTreeDepth = 155

// Options configures a single Extract or ExtractBytes call. The zero
// value is a usable "balanced" configuration except where noted below;
// callers that want the documented defaults should start from
// DefaultOptions.
type Options struct {
	// IncludeComments keeps the raw HTML comment-node subtree
	// (<!-- ... -->) in the serialized output, and fills
	// ExtractResult.CommentsText/CommentsHTML from the detected
	// reader-comments section. Default: false.
	IncludeComments bool

	// IncludeTables keeps <table> subtrees that pass the table
	// inclusion filter (see Phase C in extract_content.go).
	// Default: true.
	IncludeTables bool

	// IncludeImages collects ImageData entries from the retained
	// subtree. When false, ExtractResult.Images is always empty.
	// Default: false.
	IncludeImages bool

	// IncludeLinks preserves <a href> elements in the output instead of
	// unwrapping them to their text content. Default: false.
	IncludeLinks bool

	// FavorPrecision tightens scoring thresholds, dropping borderline
	// blocks. Takes precedence over FavorRecall if both are set.
	FavorPrecision bool

	// FavorRecall loosens scoring thresholds, keeping borderline
	// blocks.
	FavorRecall bool

	// UseReadabilityFallback invokes the density-based fallback
	// extractor when the primary algorithm's output is too short.
	// Default: true.
	UseReadabilityFallback bool

	// Deduplicate drops blocks whose normalized fingerprint repeats an
	// earlier block in the same document. Default: true.
	Deduplicate bool

	// TargetLanguage, if set, rejects documents whose declared language
	// (from <html lang>, og:locale, or the content-language meta tag)
	// differs from this ISO 639-1 primary subtag.
	TargetLanguage string

	// URL seeds Metadata.URL and Metadata.Hostname when the document
	// itself declares no canonical URL or og:url.
	URL string

	// AuthorBlacklist rejects these exact author strings after
	// cleaning, so known false positives (e.g. a site's own name
	// misidentified as an author) never surface.
	AuthorBlacklist []string

	// MaxTreeDepth bounds traversal depth. Zero means
	// DefaultMaxTreeDepth.
	MaxTreeDepth int
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		IncludeTables:          true,
		UseReadabilityFallback: true,
		Deduplicate:            true,
		MaxTreeDepth:           DefaultMaxTreeDepth,
	}
}

// resolved returns a copy of o with zero-valued fields filled in with
// their documented defaults. It never mutates o.
func (o Options) resolved() Options {
	r := o
	if r.MaxTreeDepth <= 0 {
		r.MaxTreeDepth = DefaultMaxTreeDepth
	}
	return r
}

// precisionMode reports whether the stricter Phase C thresholds apply.
// FavorPrecision wins when both FavorPrecision and FavorRecall are set.
func (o Options) precisionMode() bool {
	return o.FavorPrecision
}

// recallMode reports whether the looser Phase C thresholds apply.
func (o Options) recallMode() bool {
	return o.FavorRecall && !o.FavorPrecision
}
