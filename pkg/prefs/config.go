package prefs

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the preference store and the backend.
type Config interface {
	BasePath() string
	BackendURL() string
	OutputDir() string
}

// LoadConfig reads .grafikplus.yaml from the working directory (or the
// directory named by GRAFIKPLUS_CONFIG_PATH), with GRAFIKPLUS_* env
// overrides. Missing config files are fine; defaults carry the day.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.grafikplus")
	viper.SetDefault("backend", "http://localhost:5000")
	viper.SetDefault("output", ".")
	viper.SetConfigName(".grafikplus") // .yaml is implicit
	viper.SetEnvPrefix("GRAFIKPLUS")
	viper.AutomaticEnv()

	if override := os.Getenv("GRAFIKPLUS_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:    path,
		Backend: viper.GetString("backend"),
		Output:  viper.GetString("output"),
	}, nil
}

type fileConfig struct {
	Path    string `json:"path"`
	Backend string `json:"backend"`
	Output  string `json:"output"`
}

func (f *fileConfig) BasePath() string   { return f.Path }
func (f *fileConfig) BackendURL() string { return f.Backend }
func (f *fileConfig) OutputDir() string  { return f.Output }
