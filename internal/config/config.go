package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public Public
}

type Public struct {
	Port         string   `yaml:"port"`
	StoreBaseURL string   `yaml:"store_base_url"` // remote record store, e.g. https://dummyjson.com
	DefaultLimit int      `yaml:"default_limit"`  // page size when the URL carries none
	LogLevel     string   `yaml:"log_level"`
	LogJSON      bool     `yaml:"log_json"`
	AllowOrigins []string `yaml:"allow_origins"`
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	if public.DefaultLimit <= 0 {
		public.DefaultLimit = 10
	}
	if public.Port == "" {
		public.Port = "8081"
	}

	return &Config{public}
}
