package artikel

import (
	"regexp"
	"sync"
)

// Regex patterns and their compiled forms are pure values: compiling
// them is expensive, using them is not, and nothing about a compiled
// *regexp.Regexp changes between extractions. Each is compiled once,
// lazily, on first use, and shared read-only across all subsequent
// calls from any goroutine — mirroring the LazyLock pattern the
// original implementation uses for the same tables.
var (
	boilerplateOnce sync.Once
	boilerplateRe   *regexp.Regexp

	boilerplatePrecisionOnce sync.Once
	boilerplatePrecisionRe   *regexp.Regexp

	contentInclusionOnce sync.Once
	contentInclusionRe   *regexp.Regexp

	contentExclusionOnce sync.Once
	contentExclusionRe   *regexp.Regexp

	authorPrefixOnce sync.Once
	authorPrefixRe   *regexp.Regexp

	authorTrailingOnce sync.Once
	authorTrailingRe   *regexp.Regexp

	pureDateOnce sync.Once
	pureDateRe   *regexp.Regexp

	titleSeparatorOnce sync.Once
	titleSeparatorRe   *regexp.Regexp

	ordinalOnce sync.Once
	ordinalRe   *regexp.Regexp

	datePrefixOnce sync.Once
	datePrefixRe   *regexp.Regexp

	whitespaceOnce sync.Once
	whitespaceRe   *regexp.Regexp

	singleInitialOnce sync.Once
	singleInitialRe   *regexp.Regexp
)

// boilerplateClassRegex matches spec.md §4.3's boilerplate class/id
// list. Precision mode ORs in the extra terms it names.
func boilerplateClassRegex() *regexp.Regexp {
	boilerplateOnce.Do(func() {
		boilerplateRe = regexp.MustCompile(`(?i)\b(share|social|comment(s)?|advert|sponsor|promo|subscribe|newsletter|cookie|consent|modal|popup|banner|masthead|menu|sidebar|breadcrumb|pagination|related|widget|footer|copyright|disqus)\b`)
	})
	return boilerplateRe
}

func boilerplateClassRegexPrecision() *regexp.Regexp {
	boilerplatePrecisionOnce.Do(func() {
		boilerplatePrecisionRe = regexp.MustCompile(`(?i)\b(share|social|comment(s)?|advert|sponsor|promo|subscribe|newsletter|cookie|consent|modal|popup|banner|masthead|menu|sidebar|breadcrumb|pagination|related|widget|footer|copyright|disqus|teaser|popular|recommend|trending|category)\b`)
	})
	return boilerplatePrecisionRe
}

// contentInclusionRegex matches spec.md §4.4 Phase B's inclusion bonus
// class/id list.
func contentInclusionRegex() *regexp.Regexp {
	contentInclusionOnce.Do(func() {
		contentInclusionRe = regexp.MustCompile(`(?i)\b(article|body|content|entry|main|post|story|text)\b`)
	})
	return contentInclusionRe
}

// contentExclusionRegex is the cleaner's boilerplate regex, applied a
// second time (stricter, on containers the cleaner may have preserved
// as structural) during Phase B scoring.
func contentExclusionRegex() *regexp.Regexp {
	contentExclusionOnce.Do(func() {
		contentExclusionRe = boilerplateClassRegex()
	})
	return contentExclusionRe
}

// authorPrefixRegex matches leading labels stripped from author values.
func authorPrefixRegex() *regexp.Regexp {
	authorPrefixOnce.Do(func() {
		authorPrefixRe = regexp.MustCompile(`(?i)^\s*(by|posted by|written by|analysis by|authored by)\s+`)
	})
	return authorPrefixRe
}

// authorTrailingRegex matches trailing "follow|about|@handle" segments
// stripped from author values.
func authorTrailingRegex() *regexp.Regexp {
	authorTrailingOnce.Do(func() {
		authorTrailingRe = regexp.MustCompile(`(?i)\s*(\bfollow\b.*|\babout\b.*|@\w+.*)$`)
	})
	return authorTrailingRe
}

// pureDateRegex rejects author candidates that are actually bare dates.
func pureDateRegex() *regexp.Regexp {
	pureDateOnce.Do(func() {
		pureDateRe = regexp.MustCompile(`(?i)^\s*(\d{4}[-/.]\d{1,2}[-/.]\d{1,2}|\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4}|[A-Za-z]+\.?\s+\d{1,2},?\s+\d{4}|\d{1,2}\s+[A-Za-z]+\.?\s+\d{4})\s*$`)
	})
	return pureDateRe
}

// titleSeparatorRegex finds the last plausible " | Site" style suffix
// separator. Colons are deliberately excluded per spec.md §4.6.
func titleSeparatorRegex() *regexp.Regexp {
	titleSeparatorOnce.Do(func() {
		titleSeparatorRe = regexp.MustCompile(`\s*[|\x{2013}\x{2014}\x{00B7}\x{2022}]\s*([^|\x{2013}\x{2014}\x{00B7}\x{2022}]{1,50})$`)
	})
	return titleSeparatorRe
}

// ordinalSuffixRegex strips "1st"/"2nd"/"3rd"/"4th" style ordinals from
// date text before parsing.
func ordinalSuffixRegex() *regexp.Regexp {
	ordinalOnce.Do(func() {
		ordinalRe = regexp.MustCompile(`(?i)\b(\d{1,2})(st|nd|rd|th)\b`)
	})
	return ordinalRe
}

// datePrefixRegex strips "Published:"/"Updated:"/"Posted:" style
// prefixes from date text before parsing.
func datePrefixRegex() *regexp.Regexp {
	datePrefixOnce.Do(func() {
		datePrefixRe = regexp.MustCompile(`(?i)^\s*(published|updated|posted)\s*:?\s*`)
	})
	return datePrefixRe
}

// whitespaceRegex collapses runs of whitespace to a single space.
func whitespaceRegex() *regexp.Regexp {
	whitespaceOnce.Do(func() {
		whitespaceRe = regexp.MustCompile(`\s+`)
	})
	return whitespaceRe
}

// singleInitialRegex matches a bare single-letter initial followed by a
// period, e.g. "A." in "A. B. Smith", so the period can be stripped.
func singleInitialRegex() *regexp.Regexp {
	singleInitialOnce.Do(func() {
		singleInitialRe = regexp.MustCompile(`\b([A-Za-z])\.`)
	})
	return singleInitialRe
}
