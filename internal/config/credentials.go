package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// LoadCredential returns the value of envName, looking first at the process
// environment and then at an optional dotenv file. A missing file is not an
// error; the result is just empty.
func LoadCredential(envName, envFile string) (string, error) {
	v := viper.New()
	v.AutomaticEnv()

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")

			if err := v.ReadInConfig(); err != nil {
				return "", fmt.Errorf("read env file: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("stat env file: %w", err)
		}
	}

	return strings.TrimSpace(v.GetString(envName)), nil
}
