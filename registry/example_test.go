package registry_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/0xalexb/optdef/component"
	"github.com/0xalexb/optdef/registry"
)

func ExampleRegistry_Query() {
	reg := registry.New(slog.New(slog.NewTextHandler(io.Discard, nil)))

	_ = reg.Add("posts", component.Group, nil, "")
	_ = reg.Add("writing", component.Set, nil, "posts")
	_ = reg.Add("editor", component.Member, nil, "writing")
	_ = reg.Add("general", component.Section, nil, "editor")
	_ = reg.Add("title", component.Field, component.Attributes{"label": "Title"}, "general")
	_ = reg.Add("title", component.Field, component.Attributes{"label": "Other title"}, "elsewhere")

	query, _ := registry.ParseQuery([]byte("{slug: title, parent_type: group, parent_slug: posts}"))

	fields, _ := reg.Query(query)
	for _, field := range fields {
		label, _ := field.Attr("label")
		fmt.Println(field.Slug(), label)
	}

	_, found, _ := reg.QuerySingle(registry.Query{Slugs: registry.Slugs{"missing"}})
	fmt.Println(found)
	// Output:
	// title Title
	// false
}
