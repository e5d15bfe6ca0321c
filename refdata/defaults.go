package refdata

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed data/*
var defaultFiles embed.FS

var (
	defaultOnce    sync.Once
	defaultDataset Dataset
	defaultErr     error
)

// DefaultFS exposes the bundled sample reference files.
func DefaultFS() fs.FS {
	sub, err := fs.Sub(defaultFiles, "data")
	if err != nil {
		// unreachable: the directory is embedded
		panic(err)
	}
	return sub
}

// DefaultDataset parses the bundled sample files once, without a row limit.
func DefaultDataset() (Dataset, error) {
	defaultOnce.Do(func() {
		defaultDataset, defaultErr = LoadDataset(DefaultFS(), 0)
	})
	return defaultDataset, defaultErr
}
