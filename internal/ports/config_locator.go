package ports

// ConfigLocator finds the directory holding lpdash.yaml starting from an arbitrary directory.
type ConfigLocator interface {
	FindRoot(startDir string) (string, error)
}
