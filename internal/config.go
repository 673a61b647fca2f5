package internal

import (
	"fmt"

	"github.com/spf13/viper"
)

// TablesConfig holds per-table growth-increment overrides, keyed by table name and
// then by increment parameter:
//
//	tables:
//	  nodes:
//	    max_rows_increment: 4096
//	  mutation_types:
//	    max_ancestral_state_length_increment: 16
//
// Values are validated when the tables are built.
type TablesConfig struct {
	AppName string `mapstructure:"app_name"`

	Tables map[string]map[string]any `mapstructure:"tables"`
}

func LoadConfig(path string) (*TablesConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg TablesConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Increments returns the overrides for one table, or nil.
func (c *TablesConfig) Increments(table string) map[string]any {
	if c == nil {
		return nil
	}
	return c.Tables[table]
}
