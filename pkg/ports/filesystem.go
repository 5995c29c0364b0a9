package ports

// FileSystem abstracts the file access used for reports.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating parent directories as needed.
	WriteFile(path string, data []byte) error

	// Exists reports whether path exists.
	Exists(path string) (bool, error)
}
