package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadConfigMap reads a flat string mapping suitable for NewCredentials.
// Files ending in .yaml or .yml are decoded as YAML; anything else is read as a dotenv file.
func LoadConfigMap(path string) (map[string]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAMLMap(path)
	default:
		m, err := godotenv.Read(path)
		if err != nil {
			return nil, configFileError(path, err)
		}
		return m, nil
	}
}

func loadYAMLMap(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configFileError(path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, configFileError(path, err)
	}

	m := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			continue
		case map[string]any, []any:
			return nil, configFileError(path, fmt.Errorf("key %q: nested values are not supported", k))
		case string:
			m[k] = val
		default:
			m[k] = fmt.Sprint(val)
		}
	}
	return m, nil
}

func configFileError(path string, err error) error {
	return NewExchangeError("", ErrorTypeConfiguration, 0,
		fmt.Sprintf("load config %s", path)).
		WithCode(ErrCodeInvalidConfig).
		WithCause(err)
}
