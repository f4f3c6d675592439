package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mkarren/docdex/pkg/config"
	"github.com/mkarren/docdex/pkg/index"
)

const version = "0.3.1"

var (
	flagConfig string
	flagDebug  bool

	cfg     *config.Config
	cfgPath string
)

var rootCmd = &cobra.Command{
	Use:           "docdex",
	Short:         "Fuzzy documentation lookup with tab completion",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			log.SetLevel(log.DebugLevel)
			log.SetReportTimestamp(true)
		} else {
			log.SetLevel(log.WarnLevel)
		}
		cfg, cfgPath, _ = config.LoadConfigWithPriority(flagConfig)
		log.Debugf("Active config: %s", config.GetActiveConfigPath(cfgPath))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config.toml")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "d", false, "enable debug logging")
}

// openStore loads the cached index, falling back to a fresh build from
// the docs directory when no usable cache exists.
func openStore() (*index.Store, error) {
	if root, manifest, err := index.LoadCache(cfg.Docs.CachePath); err == nil {
		log.Debugf("Using cached index (%d docs)", manifest.Docs)
		return index.NewStore(root), nil
	}

	root, err := index.Build(cfg.Docs.Dir)
	if err != nil {
		return nil, fmt.Errorf("no index cache and building from %s failed: %w", cfg.Docs.Dir, err)
	}
	if _, err := index.SaveCache(cfg.Docs.CachePath, root); err != nil {
		log.Warnf("Built index could not be cached: %v", err)
	}
	return index.NewStore(root), nil
}
