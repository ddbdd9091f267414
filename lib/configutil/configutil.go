package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

func decodeFile[T any](path string, out *T) (found bool, err error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if len(buf) == 0 {
		return false, nil
	}
	err = json5.Unmarshal(buf, out)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}

func localVariant(path string) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s.local%s", strings.TrimSuffix(path, ext), ext)
}

// ReadConfig reads a json5 configuration file and, when present, merges a
// sibling `<name>.local.<ext>` file over it. Local values win. Returns
// os.ErrNotExist when neither file exists.
func ReadConfig[T any](path string) (T, error) {
	var out T

	foundBase, err := decodeFile(path, &out)
	if err != nil {
		return out, err
	}

	localPath := localVariant(path)
	var override T
	foundLocal, err := decodeFile(localPath, &override)
	if err != nil {
		return out, err
	}
	if foundLocal {
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return out, err
		}
		slog.Info("merging config with local overrides", "local", localPath)
	}

	if !foundBase && !foundLocal {
		return out, os.ErrNotExist
	}
	return out, nil
}

// ReadRecursively walks from the working directory up to the filesystem root
// looking for a config file with the given name.
func ReadRecursively[T any](name string) (T, error) {
	var zero T

	current, err := os.Getwd()
	if err != nil {
		return zero, err
	}

	for {
		config, err := ReadConfig[T](filepath.Join(current, name))
		if err == nil {
			return config, nil
		}
		if !os.IsNotExist(err) {
			return zero, err
		}

		parent := filepath.Dir(current)
		if parent == current {
			return zero, os.ErrNotExist
		}
		current = parent
	}
}
