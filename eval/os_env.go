package eval

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// EnvVar names the OS environment variable read by FromOS.
const EnvVar = "SYMX_ENV"

// FromOS binds the entries of the YAML mapping held in the environment
// variable key, in document order, so later entries may use earlier ones.
// An unset or blank variable binds nothing.
func FromOS(env Env, key string) error {
	src := os.Getenv(key)
	if strings.TrimSpace(src) == "" {
		return nil
	}
	return FromYAML(env, []byte(src))
}

// FromYAML binds the entries of a YAML mapping of names to values.
func FromYAML(env Env, d []byte) error {
	var items yaml.MapSlice
	if err := yaml.Unmarshal(d, &items); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}
	for _, item := range items {
		name := fmt.Sprint(item.Key)
		f, err := bind(item.Value, env)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		env[name] = f
	}
	return nil
}
