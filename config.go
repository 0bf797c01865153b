package orekit

import (
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _orekitconfig{}
)

// _orekitconfig is a "hidden" struct, just use `orekitConfig`
type _orekitconfig struct {
	keplerTolerance float64 // convergence threshold of the Kepler solver (rad)
	keplerMaxIter   int     // iteration budget of the Kepler solver
	quietLog        bool    // drop propagator logging entirely
}

// orekitConfig returns the package configuration. Unlike ephemeris-driven
// tools, everything here has a sane default, so a missing OREKIT_CONFIG
// directory or conf.toml is not an error.
func orekitConfig() _orekitconfig {
	if cfgLoaded {
		return config
	}
	viper.SetDefault("kepler.tolerance", 1e-12)
	viper.SetDefault("kepler.maxiter", 50)
	viper.SetDefault("log.quiet", false)
	if confPath := os.Getenv("OREKIT_CONFIG"); confPath != "" {
		viper.SetConfigName("conf")
		viper.AddConfigPath(confPath)
		// A missing or broken file keeps the defaults.
		viper.ReadInConfig()
	}
	config = _orekitconfig{
		keplerTolerance: viper.GetFloat64("kepler.tolerance"),
		keplerMaxIter:   viper.GetInt("kepler.maxiter"),
		quietLog:        viper.GetBool("log.quiet"),
	}
	cfgLoaded = true
	return config
}
