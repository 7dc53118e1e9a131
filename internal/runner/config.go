package runner

import (
	"os"
	"path/filepath"

	"github.com/iondrive-co/classifile"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

func init() {
	defaultEngineCfg := filepath.Join(getUserHomeDir(), ".config/classifile/engine.yaml")
	// create default engine.yaml config if it does not exist
	if fileutil.FileExists(defaultEngineCfg) {
		// if it exists use that data as default
		if cfg, err := classifile.NewConfig(defaultEngineCfg); err == nil {
			classifile.DefaultConfig = *cfg
			return
		}
	}
	_ = os.MkdirAll(filepath.Dir(defaultEngineCfg), 0755)
	if err := classifile.GenerateSample(defaultEngineCfg); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", defaultEngineCfg, err)
	}
}
