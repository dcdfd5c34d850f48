package artikel

// ExtractResult is the output of Extract or ExtractBytes. ContentText
// is always present, possibly empty; emptiness is a valid result, not
// an error.
type ExtractResult struct {
	ContentText  string
	ContentHTML  string
	CommentsText string
	CommentsHTML string
	Metadata     Metadata
	Images       []ImageData
}

// Metadata holds the resolved, cleaned metadata for a document. Every
// field is optional; unresolved fields are left at their zero value.
// Categories and Tags default to an empty (non-nil is not guaranteed)
// slice rather than being pointer-optional.
type Metadata struct {
	Title       string
	Author      string
	Date        string // ISO 8601, precision of the original timestamp preserved
	Description string
	Sitename    string
	URL         string
	Hostname    string
	Image       string
	Language    string
	License     string
	PageType    string
	Categories  []string
	Tags        []string
}

// ImageData describes one image retained from the extracted subtree.
type ImageData struct {
	Src      string
	Filename string
	Alt      string
	Caption  string
	IsHero   bool
}
