// Package model defines the data structures shared by the hygiene checks.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// Candidate is a file discovered under a scan root.
type Candidate struct {
	// FullPath is the path as produced by the walker (root joined with RelPath).
	FullPath Path
	// RelPath is the path relative to the scan root, slash separated.
	RelPath string
	// Segments holds the directory names of RelPath, without the file name.
	Segments []string
	// Ext is the file extension including the leading dot.
	Ext string
}

// NewCandidate builds a Candidate for path found under root.
func NewCandidate(root, path Path) Candidate {
	rel, err := filepath.Rel(string(root), string(path))
	if err != nil {
		rel = string(path)
	}

	rel = filepath.ToSlash(rel)

	var segments []string
	if dir := filepath.ToSlash(filepath.Dir(rel)); dir != "." && dir != "/" {
		for _, segment := range strings.Split(dir, "/") {
			if segment != "" && segment != "." {
				segments = append(segments, segment)
			}
		}
	}

	return Candidate{
		FullPath: path,
		RelPath:  rel,
		Segments: segments,
		Ext:      filepath.Ext(string(path)),
	}
}

// InDir reports whether name is one of the candidate's directory segments.
func (c Candidate) InDir(name string) bool {
	for _, segment := range c.Segments {
		if segment == name {
			return true
		}
	}

	return false
}
