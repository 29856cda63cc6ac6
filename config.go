package orbitalmech

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	cfg       = _omconfig{}
)

// _omconfig is a "hidden" struct, just use `config`
type _omconfig struct {
	VSOP87Dir string
	outputDir string
}

// config returns the orbitalmech configuration. It is only needed by the
// ephemerides-backed functions; the transformation and perturbation functions
// never touch it.
func config() _omconfig {
	if cfgLoaded {
		return cfg
	}
	// Load the configuration file
	confPath := os.Getenv("ORBITALMECH_CONFIG")
	if confPath == "" {
		panic("environment variable `ORBITALMECH_CONFIG` is missing or empty")
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("%s/conf.toml not found", confPath))
	}

	vsop87Dir := viper.GetString("VSOP87.directory")
	outputDir := viper.GetString("general.output_path")
	if vsop87Dir == "" {
		panic("VSOP87.directory not set in conf.toml")
	}

	cfgLoaded = true
	cfg = _omconfig{VSOP87Dir: vsop87Dir, outputDir: outputDir}
	return cfg
}
