// Package model defines the data structures shared by the test generation workflow.
package model

// Path represents a file system path.
type Path string

// SourceFile is a discovered input file eligible for test-class generation.
type SourceFile struct {
	// Path is the location of the source file under the scan root.
	Path Path
	// TestPath is where the generated test class is written.
	TestPath Path
}
