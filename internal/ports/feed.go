package ports

// Feed delivers raw labels. Lines is closed when the feed ends; Errors
// reports non-fatal read problems and may never deliver anything.
type Feed interface {
	Lines() <-chan string
	Errors() <-chan error
	Close() error
}
