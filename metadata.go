package artikel

// resolveMetadata runs every per-field resolver against the full,
// uncleaned document, per spec.md §4.6. mainRoot is the subtree the
// title and date resolvers search; content is the subtree the image
// resolver's <img> fallback searches. Extract passes the Phase A
// preferred root (computed before cleaning, since cleaning happens
// after metadata resolution in the pipeline) for both.
func resolveMetadata(doc *document, opts Options, mainRoot NodeID, content NodeID) Metadata {
	jsonLD := parseJSONLD(doc)

	resolvedURL := resolveURL(doc, opts.URL)
	hostname := hostnameOf(resolvedURL)
	sitename := resolveSitename(doc, jsonLD, hostname)
	title := resolveTitle(doc, jsonLD, mainRoot, sitename)
	author := resolveAuthor(doc, jsonLD, opts.AuthorBlacklist)
	date := resolveDate(doc, jsonLD, mainRoot)
	description := resolveDescription(doc)
	language := resolveLanguage(doc)
	image := resolveImage(doc, content, resolvedURL)
	categories, tags := resolveCategoriesAndTags(doc, jsonLD)
	license := resolveLicense(doc, jsonLD)
	pageType := resolvePageType(doc, jsonLD)

	return Metadata{
		Title:       title,
		Author:      author,
		Date:        date,
		Description: description,
		Sitename:    sitename,
		URL:         resolvedURL,
		Hostname:    hostname,
		Image:       image,
		Language:    language,
		License:     license,
		PageType:    pageType,
		Categories:  categories,
		Tags:        tags,
	}
}
