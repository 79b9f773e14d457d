package notation_test

import (
	"context"
	"fmt"

	"github.com/reoring/notation"
)

type coordinates struct {
	Group, Name string
}

func ExampleParser_Parse() {
	b := notation.ToType[coordinates]().TypeDisplayName("Coordinates")
	b.Converter(notation.NewMapConverter[coordinates](func(_ context.Context, m map[string]any) (coordinates, error) {
		if err := notation.CheckMandatoryKeys(m, "group", "name"); err != nil {
			return coordinates{}, err
		}
		g, _ := notation.GetString(m, "group")
		n, _ := notation.GetString(m, "name")
		return coordinates{Group: g, Name: n}, nil
	}).Described("Maps", "[group: 'org.gradle', name: 'gradle-core']"))
	parser := b.ToComposite()

	ctx := context.Background()
	c, err := parser.Parse(ctx, map[string]any{"group": "org.gradle", "name": "gradle-core"})
	fmt.Println(c, err)

	_, err = parser.Parse(ctx, map[string]any{})
	fmt.Println(err)

	_, err = parser.Parse(ctx, "org.gradle:gradle-core")
	fmt.Println(err)
	// Output:
	// {org.gradle gradle-core} <nil>
	// Required keys [group, name] are missing from map map[].
	// Cannot convert the provided notation to an object of type Coordinates: org.gradle:gradle-core.
	// The following types/formats are supported:
	//   - Maps, for example [group: 'org.gradle', name: 'gradle-core'].
}

func ExampleOutcome() {
	found := notation.Lookup(map[string]any{"classifier": nil}, "classifier")
	missing := notation.Lookup(map[string]any{}, "classifier")
	fmt.Println(found.IsFound(), found.Value())
	fmt.Println(missing.IsFound(), missing)
	// Output:
	// true <nil>
	// false NotFound
}
