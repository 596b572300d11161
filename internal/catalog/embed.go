package catalog

import "embed"

//go:embed catalog.yaml assets documents
var embedded embed.FS
