package conf

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/orgdesk/orgdesk/pkg/log"
)

var (
	mu     sync.RWMutex
	loaded *viper.Viper
)

// LoadConfigFile reads config.toml from confDir into cfg, watches it for
// changes and re-unmarshals on modification. cfg must be a pointer. The
// loaded instance backs the package-level getters.
func LoadConfigFile(confDir string, cfg interface{}) (interface{}, error) {
	vCfg := viper.New()
	vCfg.AddConfigPath(confDir)
	vCfg.SetConfigName("config")
	vCfg.SetConfigType("toml")
	vCfg.AutomaticEnv()

	if err := vCfg.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %v", err)
	}

	vCfg.WatchConfig()
	vCfg.OnConfigChange(func(e fsnotify.Event) {
		log.Infof("configuration changed, re-reading: %s", e.Name)
		if err := vCfg.Unmarshal(&cfg); err != nil {
			log.Errorf("failed to unmarshal configuration file: %v", err)
		}
	})
	if err := vCfg.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration file: %v", err)
	}

	cfgValue := reflect.ValueOf(cfg)
	if cfgValue.Kind() != reflect.Ptr || cfgValue.IsNil() {
		return nil, errors.New("cfg must be a pointer")
	}

	mu.Lock()
	loaded = vCfg
	mu.Unlock()

	log.Infof("configuration file path: %s", confDir)

	return cfgValue.Interface(), nil
}

// instance returns the last loaded viper; nil before any LoadConfigFile.
func instance() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return loaded
}

// GetString reads a key from the loaded configuration; zero value before
// any configuration file was loaded.
func GetString(key string) string {
	if v := instance(); v != nil {
		return v.GetString(key)
	}
	return ""
}

func GetInt(key string) int {
	if v := instance(); v != nil {
		return v.GetInt(key)
	}
	return 0
}

func GetBool(key string) bool {
	if v := instance(); v != nil {
		return v.GetBool(key)
	}
	return false
}

func GetDuration(key string) time.Duration {
	if v := instance(); v != nil {
		return v.GetDuration(key)
	}
	return 0
}
