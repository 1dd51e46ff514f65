package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/architectus/internal/server"
	"github.com/matzehuels/architectus/pkg/config"
	"github.com/matzehuels/architectus/pkg/store"
)

// serveFlags holds the serve command flags. Empty values fall back to the
// configuration file.
type serveFlags struct {
	addr      string
	mongoURI  string
	mongoDB   string
	storeDir  string
	redisAddr string
	noCache   bool
}

// serveCommand creates the command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve plan generation over HTTP.

Saved plans go to MongoDB when a URI is configured, to a directory with
--store-dir, and to memory otherwise. Cached plans go to the configured
cache backend; --redis-addr switches it to Redis.`,
		Example: `  architectus serve --addr :8080
  architectus serve --mongo-uri mongodb://localhost:27017 --redis-addr localhost:6379`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if flags.redisAddr != "" {
				c.Config.Cache.Backend = config.CacheRedis
				c.Config.Cache.RedisAddr = flags.redisAddr
			}

			gen, _, err := c.newGenerator(ctx, flags.noCache, nil)
			if err != nil {
				return err
			}
			defer gen.Cache.Close()

			st, err := c.openStore(ctx, flags)
			if err != nil {
				return err
			}
			defer st.Close()

			addr := flags.addr
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			printInfo("Listening on %s", addr)
			printKeyValue("store", fmt.Sprintf("%T", st))
			printKeyValue("cache", fmt.Sprintf("%T", gen.Cache))
			printNextStep("Try", "curl 'http://localhost"+addr+"/v1/plan?seed=42&format=ascii'")
			return server.New(gen, st, c.Logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&flags.mongoURI, "mongo-uri", "", "MongoDB URI for saved plans")
	cmd.Flags().StringVar(&flags.mongoDB, "mongo-db", "", "MongoDB database name (default architectus)")
	cmd.Flags().StringVar(&flags.storeDir, "store-dir", "", "directory for saved plans when MongoDB is not used")
	cmd.Flags().StringVar(&flags.redisAddr, "redis-addr", "", "Redis address for the plan cache")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable the plan cache")

	return cmd
}

// openStore picks the plan store: MongoDB, then a directory, then memory.
func (c *CLI) openStore(ctx context.Context, flags serveFlags) (store.Store, error) {
	uri := flags.mongoURI
	if uri == "" {
		uri = c.Config.Server.MongoURI
	}
	if uri != "" {
		db := flags.mongoDB
		if db == "" {
			db = c.Config.Server.MongoDatabase
		}
		c.Logger.Info("using mongodb plan store", "database", db)
		return store.NewMongoStore(ctx, uri, db)
	}
	if flags.storeDir != "" {
		c.Logger.Info("using file plan store", "dir", flags.storeDir)
		return store.NewFileStore(flags.storeDir)
	}
	c.Logger.Info("using in-memory plan store")
	return store.NewMemoryStore(), nil
}
