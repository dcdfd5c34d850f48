package mock

import "github.com/hallowmark/artikel"

var _ artikel.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of artikel.Extractor.
type Extractor struct {
	ExtractFn      func(htmlSource string, opts artikel.Options) (*artikel.ExtractResult, error)
	ExtractBytesFn func(data []byte, opts artikel.Options) (*artikel.ExtractResult, error)
}

func (e *Extractor) Extract(htmlSource string, opts artikel.Options) (*artikel.ExtractResult, error) {
	return e.ExtractFn(htmlSource, opts)
}

func (e *Extractor) ExtractBytes(data []byte, opts artikel.Options) (*artikel.ExtractResult, error) {
	return e.ExtractBytesFn(data, opts)
}
