package executor

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv builds the child environment: the current process environment plus
// any keys from envFile that are not already set. An empty envFile means the
// children simply inherit the environment (nil result).
func LoadEnv(envFile string) ([]string, error) {
	if envFile == "" {
		return nil, nil
	}
	fileEnv, err := godotenv.Read(envFile)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", envFile, err)
	}

	merged := map[string]string{}
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) == 2 {
			merged[parts[0]] = parts[1]
		}
	}
	for k, v := range fileEnv {
		if _, exists := merged[k]; !exists {
			merged[k] = v
		}
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+merged[k])
	}
	return out, nil
}
