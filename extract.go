package artikel

// Extractor is implemented by Extract and ExtractBytes so callers can
// inject a mock in tests that exercise code depending on this package
// without running the real pipeline.
type Extractor interface {
	Extract(htmlSource string, opts Options) (*ExtractResult, error)
	ExtractBytes(data []byte, opts Options) (*ExtractResult, error)
}

// engine is the default Extractor implementation backing the
// package-level Extract and ExtractBytes functions.
type engine struct{}

// DefaultExtractor is the package's built-in Extractor.
var DefaultExtractor Extractor = engine{}

// Extract runs the full pipeline against an already-decoded HTML
// string: parse, resolve metadata, clean, extract main content, fall
// back if the result is too short, then post-process (dedup, links,
// images, serialization).
func Extract(htmlSource string, opts Options) (*ExtractResult, error) {
	return DefaultExtractor.Extract(htmlSource, opts)
}

// ExtractBytes runs the decoder first, then the same pipeline as
// Extract.
func ExtractBytes(data []byte, opts Options) (*ExtractResult, error) {
	return DefaultExtractor.ExtractBytes(data, opts)
}

func (engine) ExtractBytes(data []byte, opts Options) (*ExtractResult, error) {
	s, err := decodeBytes(data)
	if err != nil {
		return nil, err
	}
	return Extract(s, opts)
}

func (engine) Extract(htmlSource string, opts Options) (*ExtractResult, error) {
	opts = opts.resolved()

	if htmlSource == "" {
		return &ExtractResult{}, nil
	}

	doc, err := parseHTML(htmlSource, opts.MaxTreeDepth)
	if err != nil {
		return nil, err
	}

	pageTitle := doc.title()
	mainRootRaw := selectPreferredRoot(doc)

	var commentsText, commentsHTML string
	commentsSection := findCommentsSection(doc.body(), doc.root, doc.maxDepth)
	if commentsSection != nil && opts.IncludeComments {
		commentsClone := cloneTree(commentsSection)
		stripCommentDebris(commentsClone)
		commentsText = serializeText(commentsClone)
		commentsHTML, _ = serializeHTML(commentsClone)
	}

	metadata := resolveMetadata(doc, opts, mainRootRaw, mainRootRaw)

	if opts.TargetLanguage != "" && metadata.Language != "" && metadata.Language != opts.TargetLanguage {
		return &ExtractResult{Metadata: metadata}, nil
	}

	clean(doc, opts)

	content := extractMainContent(doc, opts, pageTitle, commentsSection)
	contentText := serializeText(content)

	if opts.UseReadabilityFallback && len([]rune(contentText)) < fallbackMinChars {
		if fallback := extractByDensity(doc, opts); fallback != nil {
			fallbackText := serializeText(fallback)
			if len([]rune(fallbackText)) > len([]rune(contentText)) {
				content = fallback
				contentText = fallbackText
			}
		}
	}

	resolveLinks(content, opts.IncludeLinks)
	if opts.Deduplicate {
		deduplicateBlocks(content)
	}
	contentText = serializeText(content)
	contentHTML, err := serializeHTML(content)
	if err != nil {
		return nil, err
	}

	var images []ImageData
	if opts.IncludeImages {
		images = collectImages(content, metadata.Image, metadata.URL)
	}

	return &ExtractResult{
		ContentText:  contentText,
		ContentHTML:  contentHTML,
		CommentsText: commentsText,
		CommentsHTML: commentsHTML,
		Metadata:     metadata,
		Images:       images,
	}, nil
}
