package internal

import (
	"fmt"

	"github.com/spf13/viper"
)

type ColvecConfig struct {
	AppName string `mapstructure:"app_name"`

	Server struct {
		Addr  string `mapstructure:"addr"`
		Debug bool   `mapstructure:"debug"`
	} `mapstructure:"server"`

	Eval struct {
		BatchRows int `mapstructure:"batch_rows"`
	} `mapstructure:"eval"`
}

func LoadConfig(path string) (*ColvecConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("server.addr", ":4141")
	v.SetDefault("eval.batch_rows", 1)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg ColvecConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
