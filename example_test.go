package optdef_test

import (
	"bytes"
	"fmt"

	"github.com/0xalexb/optdef"
	"github.com/0xalexb/optdef/component"
	"github.com/0xalexb/optdef/registry"
)

// Example_appWithConfigFile populates the registry from a YAML description and
// adds one component directly, then queries fields several levels below a group.
func Example_appWithConfigFile() {
	app := optdef.NewApp(
		optdef.WithLogLevel("error"),
		optdef.WithLogOutput(&bytes.Buffer{}),
		optdef.WithConfigFile("testdata/optdef.yaml"),
		optdef.WithDirectHook(func(adder registry.Adder) {
			_ = adder.Add("author", component.Field, component.Attributes{"label": "Author"}, "general")
		}),
	)

	err := app.Start()
	if err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	defer func() { _ = app.Stop() }()

	fields, err := app.Registry().Query(registry.Query{
		Type:        component.Field,
		ParentType:  component.Group,
		ParentSlugs: registry.Slugs{"posts"},
	})
	if err != nil {
		fmt.Printf("Error querying: %v\n", err)

		return
	}

	for _, field := range fields {
		label, _ := field.Attr("label")
		fmt.Printf("%s/%s: %v\n", field.Parent(), field.Slug(), label)
	}
	// Output:
	// general/title: Title
	// general/excerpt: Excerpt
	// publishing/schedule: Schedule
	// general/author: Author
}
