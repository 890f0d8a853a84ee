package cli

import (
	"encoding/json"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/autoware-viz/sceneconv/registry"
)

// SettingsAction prints the settings schema and defaults of one converter, or the table of
// registered schemas when no schema is given.
func SettingsAction(c *cli.Context) error {
	schema := c.String(schemaFlag)
	if schema == "" {
		printf(c.App.Writer, "%s", schemaTable())
		return nil
	}

	reg, ok := registry.ConverterLookup(schema)
	if !ok {
		return registry.NewConverterNotFoundError(schema)
	}
	if reg.Settings == nil {
		infof(c.App.Writer, "%s has no settings", schema)
		return nil
	}
	out, err := json.MarshalIndent(reg.Settings(), "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to encode settings of %s", schema)
	}
	printf(c.App.Writer, "%s", out)
	return nil
}

func schemaTable() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Schema", "Settings"})
	for _, schema := range registry.RegisteredSchemas() {
		reg, _ := registry.ConverterLookup(schema)
		configurable := "no"
		if reg.Settings != nil {
			configurable = "yes"
		}
		t.AppendRow(table.Row{schema, configurable})
	}
	return t.Render()
}
