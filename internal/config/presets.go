package config

// Presets are named variants of each scenario's condition. The "demo"
// presets are the worked examples; "full" runs the unroll long enough for
// the paper to pay out completely (the 180 s demo leaves ~21 m on the
// roll under the modeled tension).
var Presets = map[string]map[string]*Config{
	"roll": {
		"demo": {
			Scenario: "roll", Integrator: "rk4", Dt: 0.05, Samples: DefaultSamples,
			Roll: RollParams{Rmin: 0.02, Rmax: 0.055, Length: 47, Duration: 130},
		},
		"receipt": {
			Scenario: "roll", Integrator: "rk4", Dt: 0.05, Samples: DefaultSamples,
			Roll: RollParams{Rmin: 0.006, Rmax: 0.03, Length: 25, Duration: 150},
		},
	},
	"unroll": {
		"demo": {
			Scenario: "unroll", Integrator: "rk4", Dt: 0.01, Samples: DefaultSamples,
			Unroll: UnrollParams{Rmin: 0.02, Rmax: 0.055, Length: 47,
				Mcore: 0.015, Mroll: 0.215, Tension: 2e-4, Duration: 180},
		},
		"full": {
			Scenario: "unroll", Integrator: "rk4", Dt: 0.01, Samples: DefaultSamples,
			Unroll: UnrollParams{Rmin: 0.02, Rmax: 0.055, Length: 47,
				Mcore: 0.015, Mroll: 0.215, Tension: 2e-4, Duration: 260},
		},
		"hard-pull": {
			Scenario: "unroll", Integrator: "rk45", Dt: 0.005, Samples: DefaultSamples, Adaptive: true,
			Unroll: UnrollParams{Rmin: 0.02, Rmax: 0.055, Length: 47,
				Mcore: 0.015, Mroll: 0.215, Tension: 2e-3, Duration: 80},
		},
	},
	"yoyo": {
		"demo": {
			Scenario: "yoyo", Integrator: "rk4", Dt: 5e-4, Samples: DefaultSamples,
			Yoyo: YoyoParams{Rmin: 8e-3, Rmax: 16e-3, Rout: 35e-3,
				Length: 1, Mass: 0.05, Gravity: 9.8, Duration: 1},
		},
		"long-string": {
			Scenario: "yoyo", Integrator: "rk4", Dt: 5e-4, Samples: DefaultSamples,
			Yoyo: YoyoParams{Rmin: 8e-3, Rmax: 16e-3, Rout: 35e-3,
				Length: 2, Mass: 0.05, Gravity: 9.8, Duration: 1.6},
		},
	},
}

func GetPreset(scenario, preset string) *Config {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := scenarioPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scenario string) []string {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	return names
}
