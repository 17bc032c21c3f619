package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env-default:"info"`
	Storage  Storage `yaml:"storage"`
	Render   Render  `yaml:"render"`
}

type Storage struct {
	Backend    string `yaml:"backend" env-default:"file"`
	StateFile  string `yaml:"state-file" env-default:"game_state.json"`
	SQLitePath string `yaml:"sqlite-path" env-default:"omok_history.db"`
	Redis      Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

type Render struct {
	ReadmePath string `yaml:"readme-path" env-default:"README.md"`
	SVGPath    string `yaml:"svg-path" env-default:"board.svg"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
