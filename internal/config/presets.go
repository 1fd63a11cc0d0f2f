package config

// Presets are named tuning scenarios for the heading loop.
var Presets = map[string]*Config{
	"demo": {
		Dt: 0.1, Duration: 60.0, MaxTurnRate: 45, HistoryCap: 500,
		Controller: ControllerConfig{Kp: 1.0, Ki: 0.0, Kd: 0.1, Target: 90},
	},
	"p_only": {
		Dt: 0.1, Duration: 60.0, MaxTurnRate: 45, HistoryCap: 500,
		Controller: ControllerConfig{Kp: 1.0, Ki: 0.0, Kd: 0.0, Target: 90},
	},
	"aggressive": {
		Dt: 0.1, Duration: 30.0, MaxTurnRate: 45, HistoryCap: 500,
		Controller: ControllerConfig{Kp: 8.0, Ki: 0.2, Kd: 0.5, Target: 135},
	},
	"damped": {
		Dt: 0.1, Duration: 60.0, MaxTurnRate: 45, HistoryCap: 500,
		Controller: ControllerConfig{Kp: 0.8, Ki: 0.05, Kd: 1.2, Target: 90},
	},
	"windup": {
		// nearly pure-I: sustained error, visible integral growth
		Dt: 0.1, Duration: 120.0, MaxTurnRate: 45, HistoryCap: 500,
		Controller: ControllerConfig{Kp: 0.0, Ki: 0.05, Kd: 0.0, Target: 90},
	},
	"u_turn": {
		Dt: 0.1, Duration: 60.0, MaxTurnRate: 45, HistoryCap: 500,
		Controller: ControllerConfig{Kp: 2.0, Ki: 0.0, Kd: 0.3, Target: 180},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
