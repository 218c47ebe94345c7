package main

import "os"

// ChipSource loads raw HDL source text for a named chip. A real front end
// (a directory walker matching chip names to *.hdl stems, or a GUI file
// picker) would implement this against a whole library; FileSource below is
// the minimal version this CLI actually needs: one explicit path per chip.
type ChipSource interface {
	Load(name string) (string, error)
}

// FileSource loads a single chip's HDL source from an exact file path, set
// once at construction. It ignores the name argument to Load -- there is
// only ever one chip behind it.
type FileSource struct {
	Path string
}

func (s FileSource) Load(name string) (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
