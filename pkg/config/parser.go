package config

import (
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"
)

// ReadConfigurationFile loads a probe configuration from a JSON file. Fields
// absent from the file keep their defaults, so a file only needs to name the
// tunables it overrides.
func ReadConfigurationFile(path string) ProbeConfiguration {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	cfg := DefaultConfiguration()
	err = json.Unmarshal(byteValue, &cfg)
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}
