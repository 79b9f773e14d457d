// Package maven converts publication artifact notations (archive tasks,
// publish artifacts, files and maps with a 'source' entry) into Artifacts.
package maven

import (
	"github.com/reoring/notation/fileresolve"
)

// Artifact is a file published to a Maven repository.
type Artifact struct {
	File       fileresolve.Path `notation:"file" json:"file"`
	Extension  string           `notation:"extension" json:"extension"`
	Classifier *string          `notation:"classifier" json:"classifier,omitempty"`
	BuiltBy    []string         `notation:"-" json:"builtBy,omitempty"`
}

// AddBuiltBy records the names of the tasks producing the artifact file.
func (a *Artifact) AddBuiltBy(tasks ...string) {
	a.BuiltBy = append(a.BuiltBy, tasks...)
}

// ArchiveTask is a task producing an archive, such as a jar or zip task.
type ArchiveTask struct {
	Name        string `json:"name"`
	ArchivePath string `json:"archivePath"`
	Extension   string `json:"extension"`
	// Classifier is empty when the archive has none.
	Classifier string `json:"classifier,omitempty"`
}

// PublishArtifact is an artifact already declared elsewhere in the build.
type PublishArtifact interface {
	File() string
	Extension() string
	// Classifier returns "" when the artifact has none.
	Classifier() string
	BuildDependencies() []string
}
