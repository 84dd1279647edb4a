package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

func validateConfig(config *Config) error {
	var result *multierror.Error

	if err := validateListeners(config); err != nil {
		result = multierror.Append(result, err)
	}

	if err := validateStatusPath(config); err != nil {
		result = multierror.Append(result, err)
	}

	if config.General.MaxConns < 0 {
		result = multierror.Append(result, errors.New("max-conns must be greater than or equal to 0"))
	}

	if config.Server.ShutdownTimeout <= 0 {
		result = multierror.Append(result, errors.New("server-shutdown-timeout must be greater than 0"))
	}

	return result.ErrorOrNil()
}

func validateListeners(config *Config) error {
	for _, addr := range config.ListenHTTPStrings.Split() {
		if strings.TrimSpace(addr) == "" {
			return errors.New("listen-http must not contain empty addresses")
		}
	}

	return nil
}

func validateStatusPath(config *Config) error {
	if config.General.StatusPath != "" && !strings.HasPrefix(config.General.StatusPath, "/") {
		return fmt.Errorf("status-path should start with the / character, got %q", config.General.StatusPath)
	}

	return nil
}
