package orbitsim

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	cfgMu     sync.Mutex
	config    = defaultConfig()
)

// Config holds the numerical constants governing conic solving, burn and
// celestial integration step sizes, and the prediction horizon. Every field
// has a Design-level default (spec §4.6); a config file only overrides them.
type Config struct {
	PredictionHorizon      float64 // seconds
	BurnStep               float64 // seconds
	CelestialStep          float64 // seconds
	NewtonEpsilon          float64
	KeplerEllipseEpsilon   float64
	KeplerHyperbolaEpsilon float64
	ClosestPointIterations int
	BurnAccelerationMag    float64 // m/s^2
}

func defaultConfig() Config {
	return Config{
		PredictionHorizon:      1e7,
		BurnStep:               0.1,
		CelestialStep:          40,
		NewtonEpsilon:          1e-8,
		KeplerEllipseEpsilon:   1e-7,
		KeplerHyperbolaEpsilon: 1e-5,
		ClosestPointIterations: 80,
		BurnAccelerationMag:    10.0,
	}
}

// orbitsimConfig returns the package configuration, loading it from
// ORBITSIM_CONFIG the first time it's needed. Unlike the teacher's
// smdConfig, a missing config directory is not fatal: this module is meant
// to be embedded, so it prints a notice to stderr, keeps the Design-level
// defaults, and only layers in overrides found on disk.
func orbitsimConfig() Config {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	if cfgLoaded {
		return config
	}
	cfgLoaded = true
	confPath := os.Getenv("ORBITSIM_CONFIG")
	if confPath == "" {
		return config
	}
	v := viper.New()
	v.SetConfigName("orbitsim")
	v.AddConfigPath(confPath)
	if err := v.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "[orbitsim:config] %s/orbitsim.toml not found, using defaults: %s\n", confPath, err)
		return config
	}
	c := defaultConfig()
	if v.IsSet("prediction.horizon_seconds") {
		c.PredictionHorizon = v.GetFloat64("prediction.horizon_seconds")
	}
	if v.IsSet("integration.burn_step_seconds") {
		c.BurnStep = v.GetFloat64("integration.burn_step_seconds")
	}
	if v.IsSet("integration.celestial_step_seconds") {
		c.CelestialStep = v.GetFloat64("integration.celestial_step_seconds")
	}
	if v.IsSet("kepler.newton_epsilon") {
		c.NewtonEpsilon = v.GetFloat64("kepler.newton_epsilon")
	}
	if v.IsSet("kepler.ellipse_epsilon") {
		c.KeplerEllipseEpsilon = v.GetFloat64("kepler.ellipse_epsilon")
	}
	if v.IsSet("kepler.hyperbola_epsilon") {
		c.KeplerHyperbolaEpsilon = v.GetFloat64("kepler.hyperbola_epsilon")
	}
	if v.IsSet("soi.closest_point_iterations") {
		c.ClosestPointIterations = v.GetInt("soi.closest_point_iterations")
	}
	if v.IsSet("burn.acceleration_magnitude") {
		c.BurnAccelerationMag = v.GetFloat64("burn.acceleration_magnitude")
	}
	config = c
	return config
}

// SetConfig overrides the package configuration directly, bypassing viper.
// Tests and embedding applications use this instead of environment
// variables and files on disk.
func SetConfig(c Config) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	cfgLoaded = true
	config = c
}
