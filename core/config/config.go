package config

import (
	"reflect"
	"strings"

	"ue-intellisense/core/database"
	"ue-intellisense/core/logger"
	"ue-intellisense/core/project"
	"ue-intellisense/core/reconcile"
	"ue-intellisense/core/server"
	"ue-intellisense/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the local HTTP helper.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the backup object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the run history database.
	Database database.Config `mapstructure:"database"`
	// Project holds configuration for locating the Unreal project workspace.
	Project project.Config `mapstructure:"project"`
	// Reconcile holds configuration for the cppStandard reconciler.
	Reconcile reconcile.Config `mapstructure:"reconcile"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. PROJECT_ROOT -> project.root)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// An empty PROJECT_CPP_STANDARD is meaningful ("defer to cpptools").
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
//
// A default of "-" registers the key for the environment only, so optional
// pointer fields stay nil unless a value is actually provided.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		if defaultValue == "-" {
			_ = v.BindEnv(key)
			continue
		}
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
