package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/tapebf/configs"
	"github.com/reusee/tapebf/logs"
)

//go:embed schema.cue
var Schema string

var fileNames = []string{
	"tapebf.cue",
	".tapebf.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	var paths []string
	for _, dir := range dirs {
		for _, name := range fileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Debug("config files", "paths", paths)
	}

	return configs.NewLoader(paths, Schema)
}
