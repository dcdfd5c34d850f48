package artikel

import "golang.org/x/net/html"

// NodeID is an opaque, document-lifetime-scoped identifier for a DOM
// node. It is the underlying parsed node pointer: stable for as long as
// the owning document exists, and meaningless once that document is
// discarded. Callers should treat it as opaque; the package uses it in
// its internal resolver signatures to name specific nodes.
type NodeID = *html.Node
