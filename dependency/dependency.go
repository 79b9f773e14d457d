// Package dependency converts external module dependency notations such as
//
//	{group: "org.gradle", name: "gradle-core", version: "1.0"}
//
// into Dependency values.
package dependency

import (
	"context"

	"github.com/reoring/notation"
	"github.com/reoring/notation/instantiate"
)

// DefaultArtifactType is the artifact type used when only a classifier is given.
const DefaultArtifactType = "jar"

// Dependency is an external module dependency.
type Dependency struct {
	Group         string  `notation:"group" json:"group"`
	Name          string  `notation:"name" json:"name"`
	Version       *string `notation:"version" json:"version,omitempty"`
	Configuration *string `notation:"configuration" json:"configuration,omitempty"`

	Extension  *string `notation:"-" json:"ext,omitempty"`
	Classifier *string `notation:"-" json:"classifier,omitempty"`
	// Transitive is cleared when an explicit extension is requested.
	Transitive bool       `notation:"-" json:"transitive"`
	Artifacts  []Artifact `notation:"-" json:"artifacts,omitempty"`
}

// Artifact is an explicitly requested artifact of a dependency.
type Artifact struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Extension  string  `json:"extension"`
	Classifier *string `json:"classifier,omitempty"`
}

// DefaultInstantiator decodes the named arguments into a transitive *Dependency.
func DefaultInstantiator() instantiate.Instantiator[*Dependency] {
	inner := instantiate.Struct[*Dependency]()
	return instantiate.Func[*Dependency](func(args map[string]any) (*Dependency, error) {
		d, err := inner.NewInstance(args)
		if err != nil {
			return nil, err
		}
		d.Transitive = true
		return d, nil
	})
}

// AddExplicitArtifactsIfDefined records ext and classifier on d. When either
// is set, an artifact named after the dependency is added; its type is ext,
// or DefaultArtifactType when only a classifier is given. An explicit ext
// makes the dependency non-transitive.
func AddExplicitArtifactsIfDefined(d *Dependency, ext, classifier *string) {
	d.Extension = ext
	d.Classifier = classifier

	var typ string
	switch {
	case ext != nil:
		typ = *ext
		d.Transitive = false
	case classifier != nil:
		typ = DefaultArtifactType
	default:
		return
	}
	d.Artifacts = append(d.Artifacts, Artifact{
		Name:       d.Name,
		Type:       typ,
		Extension:  typ,
		Classifier: classifier,
	})
}

// NewMapConverter returns the converter for map notations. group and name
// are mandatory; version, configuration, ext and classifier are optional.
func NewMapConverter(inst instantiate.Instantiator[*Dependency]) *notation.MapConverter[*Dependency] {
	return notation.NewMapConverter[*Dependency](func(_ context.Context, m map[string]any) (*Dependency, error) {
		if err := notation.CheckMandatoryKeys(m, "group", "name"); err != nil {
			return nil, err
		}
		args := map[string]any{}
		for _, key := range []string{"group", "name", "version", "configuration"} {
			if s, ok := notation.GetString(m, key); ok {
				args[key] = s
			}
		}
		d, err := instantiate.New(inst, args)
		if err != nil {
			return nil, err
		}
		AddExplicitArtifactsIfDefined(d, notation.GetStringPtr(m, "ext"), notation.GetStringPtr(m, "classifier"))
		return d, nil
	}).Described("Maps", "[group: 'org.gradle', name: 'gradle-core', version: '1.0']")
}

// NewParser returns a parser accepting existing *Dependency values and map
// notations, in that order.
func NewParser(inst instantiate.Instantiator[*Dependency]) *notation.Parser[*Dependency] {
	return notation.ToType[*Dependency]().
		TypeDisplayName("Dependency").
		Passthrough().
		Converter(NewMapConverter(inst)).
		ToComposite()
}
