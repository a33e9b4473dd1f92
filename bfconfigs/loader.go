package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/logs"
)

//go:embed schema.cue
var Schema string

var configFiles = cmds.Collect[string]("-config", "add a cue config file, may be repeated")

var filenames = []string{
	"taibf.cue",
	".taibf.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	// explicit files first
	paths := append([]string(nil), *configFiles...)
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, Schema)
}
