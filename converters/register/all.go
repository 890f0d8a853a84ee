// Package register registers all converters
package register

import (
	// register converters.
	_ "github.com/autoware-viz/sceneconv/converters/localization"
	_ "github.com/autoware-viz/sceneconv/converters/perception"
	_ "github.com/autoware-viz/sceneconv/converters/planning"
)
