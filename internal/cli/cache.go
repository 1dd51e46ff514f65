package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/architectus/pkg/cache"
	"github.com/matzehuels/architectus/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the plan cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.Config.Cache.Backend == config.CacheRedis {
				printWarning("Redis cache entries expire on their own; nothing to clear locally")
				return nil
			}
			n, err := c.clearCache()
			if err != nil {
				return err
			}
			dir, _ := c.fileCacheDir()
			if n == 0 {
				printInfo("Cache is empty")
			} else {
				printSuccess("Cleared %d cached plans", n)
			}
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.fileCacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

// fileCacheDir returns the configured cache directory or the XDG default.
func (c *CLI) fileCacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return cacheDir()
}

// clearCache empties the file cache and reports how many entries it removed.
func (c *CLI) clearCache() (int, error) {
	dir, err := c.fileCacheDir()
	if err != nil {
		return 0, err
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return 0, err
	}
	return fc.Clear()
}
