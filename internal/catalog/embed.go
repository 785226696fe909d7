package catalog

import _ "embed"

//go:embed catalog.yaml
var defaultCatalog []byte

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}
