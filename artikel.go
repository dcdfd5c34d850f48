// Package artikel extracts the main textual content and structured
// metadata from arbitrary HTML documents, discarding navigation,
// advertisements, comments (optionally), and other boilerplate.
//
// It is built for crawlers, search indexers, and LLM-ingestion pipelines
// that need one clean article representation per page. The package does
// not fetch pages, render JavaScript, or produce Markdown/XML/JSON
// output — it turns an HTML string or byte buffer into plain text, an
// HTML fragment of the retained subtree, and a best-effort Metadata
// record reconciled from JSON-LD, Open Graph, Dublin Core, microdata,
// and free-form HTML signals.
//
// Extract and ExtractBytes are the two entry points; everything else in
// this package supports them.
package artikel
