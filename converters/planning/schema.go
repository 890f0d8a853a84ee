package planning

import "github.com/autoware-viz/sceneconv/converters/settings"

type pathSettings struct {
	CommonSettings
	DrivableAreaSettings
}

type pathWithLaneIDSettings struct {
	CommonSettings
	DrivableAreaSettings
	LaneIDSettings
}

type trajectorySettings struct {
	CommonSettings
	TimeTextSettings
}

// SettingsFor describes only the settings that apply to kind, with its defaults.
func SettingsFor(kind Kind) settings.Description {
	cfg := DefaultConfig(kind)
	switch kind {
	case KindPathWithLaneID:
		return settings.Describe(pathWithLaneIDSettings{
			CommonSettings:       cfg.CommonSettings,
			DrivableAreaSettings: cfg.DrivableAreaSettings,
			LaneIDSettings:       cfg.LaneIDSettings,
		})
	case KindTrajectory:
		return settings.Describe(trajectorySettings{
			CommonSettings:   cfg.CommonSettings,
			TimeTextSettings: cfg.TimeTextSettings,
		})
	case KindPath:
		fallthrough
	default:
		return settings.Describe(pathSettings{
			CommonSettings:       cfg.CommonSettings,
			DrivableAreaSettings: cfg.DrivableAreaSettings,
		})
	}
}
