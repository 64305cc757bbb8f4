// merklestore stores a directory of numbered files with a merklestore server
// and retrieves them one at a time, verifying each against the root recorded
// at store time.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-merklestore/client"
	"github.com/forestrie/go-merklestore/seal"
	"github.com/forestrie/go-merklestore/storage"
	"github.com/spf13/cobra"
)

const serviceName = "merklestore"

type clientConfig struct {
	ServerURL  string
	StateSpec  string
	LogID      string
	SealPubKey string
}

func envOr(name, def string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return def
}

func main() {
	var (
		cfg           clientConfig
		logLevel      string
		loggerStarted bool
	)

	rootCmd := &cobra.Command{
		Use:           serviceName,
		Short:         "Store files and retrieve them with verified inclusion proofs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.New(logLevel)
			loggerStarted = true
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", envOr("MERKLESTORE_LOG_LEVEL", "INFO"), "Log level (DEBUG, INFO, NOOP)")
	flags.StringVar(&cfg.ServerURL, "server", envOr("MERKLESTORE_SERVER", "http://localhost:8080"), "Server base URL")
	flags.StringVar(&cfg.StateSpec, "state", envOr("MERKLESTORE_STATE", "dir:merklestore-client"),
		"Store for the client record: dir:<path>, leveldb:<path> or azblob:<container>")
	flags.StringVar(&cfg.LogID, "log-id", envOr("MERKLESTORE_LOG_ID", ""), "Log uuid the server stores under")
	flags.StringVar(&cfg.SealPubKey, "seal-pub", envOr("MERKLESTORE_SEAL_PUB", ""),
		"PEM public key; when set every stored root must carry a seal verifying with it")

	var filesDir string
	persistCmd := &cobra.Command{
		Use:   "persist-files",
		Short: "Store every file0..fileN-1 in the files directory and record the root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), cfg, func(c *client.Coordinator) error {
				files, err := client.ReadFileSet(filesDir)
				if err != nil {
					return err
				}
				rec, err := c.Store(cmd.Context(), files)
				if err != nil {
					return err
				}
				fmt.Printf("stored %d files, root %s\n", rec.FileCount, rec.RootHash)
				return nil
			})
		},
	}
	persistCmd.Flags().StringVar(&filesDir, "files-dir", envOr("MERKLESTORE_FILES_DIR", "files"), "Directory holding file0..fileN-1")

	retrieveCmd := &cobra.Command{
		Use:   "retrieve-file <index>",
		Short: "Fetch a file, verify it against the recorded root and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("index %q: %w", args[0], err)
			}
			return withClient(cmd.Context(), cfg, func(c *client.Coordinator) error {
				file, err := c.Fetch(cmd.Context(), index)
				if err != nil {
					return err
				}
				fmt.Print(file)
				return nil
			})
		},
	}

	recordCmd := &cobra.Command{
		Use:   "show-record",
		Short: "Print the recorded root and file count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), cfg, func(c *client.Coordinator) error {
				rec, err := c.Record(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Printf("root %s\nfiles %d\nsealed %t\n", rec.RootHash, rec.FileCount, len(rec.Seal) > 0)
				return nil
			})
		},
	}

	rootCmd.AddCommand(persistCmd, retrieveCmd, recordCmd)

	err := rootCmd.Execute()
	if loggerStarted {
		logger.OnExit()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

func withClient(ctx context.Context, cfg clientConfig, run func(c *client.Coordinator) error) error {
	log := logger.Sugar.WithServiceName(serviceName)

	logID, err := storage.ParseLogID(cfg.LogID)
	if err != nil {
		return fmt.Errorf("--log-id: %w", err)
	}

	opts := []client.Option{client.WithLogID(logID)}
	if cfg.SealPubKey != "" {
		pub, err := seal.ReadPublicKeyPEM(cfg.SealPubKey)
		if err != nil {
			return err
		}
		opts = append(opts, client.WithSealPublicKey(pub))
	}

	store, err := storage.Open(ctx, log, cfg.StateSpec)
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.Close(store); err != nil {
			log.Infof("closing state store: %v", err)
		}
	}()

	c, err := client.NewCoordinator(log, client.NewHTTPTransport(cfg.ServerURL, nil), store, opts...)
	if err != nil {
		return err
	}
	return run(c)
}
