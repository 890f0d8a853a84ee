package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/autoware-viz/sceneconv/vehicle"
)

// VehiclesAction prints the vehicle catalog as a table.
func VehiclesAction(c *cli.Context) error {
	logger, closeLog := newLogger(c)
	defer closeLog()
	cfg, err := loadConfig(c, logger)
	if err != nil {
		return err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}
	selected := c.String(vehicleFlag)
	if selected == "" {
		selected = cfg.Vehicle
	}
	if selected == "" {
		selected = catalog[0].Name
	}
	if _, ok := vehicle.Lookup(catalog, selected); !ok {
		return errors.Errorf("unknown vehicle %q", selected)
	}
	printf(c.App.Writer, "%s", VehicleTable(catalog, selected))
	return nil
}

// VehicleTable renders the catalog, marking the selected profile.
func VehicleTable(catalog []vehicle.Profile, selected string) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"", "Name", "Length", "Width", "Height", "Wheel Base", "Wheel Tread"})
	for _, p := range catalog {
		mark := ""
		if p.Name == selected {
			mark = "*"
		}
		t.AppendRow(table.Row{
			mark,
			p.Name,
			fmt.Sprintf("%.3f", p.Length()),
			fmt.Sprintf("%.3f", p.Width()),
			fmt.Sprintf("%.3f", p.Height),
			fmt.Sprintf("%.3f", p.WheelBase),
			fmt.Sprintf("%.3f", p.WheelTread),
		})
	}
	return t.Render()
}
