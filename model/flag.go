package model

type Flags struct {
	// Request flags, parsed later by ParseRequest
	CPU    string
	Memory string
	Region string

	// Catalog flags
	CatalogFile string

	// Output flags
	Top      int
	Chart    bool
	LogLevel string
}
