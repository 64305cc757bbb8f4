// merklestore-server commits to batches of files and serves them with
// inclusion proofs over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-merklestore/seal"
	"github.com/forestrie/go-merklestore/server"
	"github.com/forestrie/go-merklestore/storage"
	"github.com/spf13/cobra"
)

const serviceName = "merklestore-server"

type serveConfig struct {
	Addr            string
	StoreSpec       string
	LogID           string
	CheckLeafHashes bool
	SealKeyPath     string
	SealKeyID       string
}

func envOr(name, def string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return def
}

func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}

func main() {
	var (
		logLevel      string
		loggerStarted bool
	)

	rootCmd := &cobra.Command{
		Use:           serviceName,
		Short:         "Merkle committed file store server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.New(logLevel)
			loggerStarted = true
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", envOr("MERKLESTORE_LOG_LEVEL", "INFO"), "Log level (DEBUG, INFO, NOOP)")

	rootCmd.AddCommand(newServeCmd(), newInspectCmd(), newKeygenCmd())

	err := rootCmd.Execute()
	if loggerStarted {
		logger.OnExit()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

func newServeCmd() *cobra.Command {
	var cfg serveConfig

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /store and GET /fetch",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", envOr("MERKLESTORE_ADDR", ":8080"), "Listen address")
	cmd.Flags().StringVar(&cfg.StoreSpec, "store", envOr("MERKLESTORE_STORE", "dir:merklestore-data"),
		"Blob store: mem:, dir:<path>, leveldb:<path> or azblob:<container>")
	cmd.Flags().StringVar(&cfg.LogID, "log-id", envOr("MERKLESTORE_LOG_ID", ""), "Log uuid namespacing the stored blobs")
	cmd.Flags().BoolVar(&cfg.CheckLeafHashes, "check-leaf-hashes", envBool("MERKLESTORE_CHECK_LEAF_HASHES"),
		"Reject batches whose hashes do not match their files")
	cmd.Flags().StringVar(&cfg.SealKeyPath, "seal-key", envOr("MERKLESTORE_SEAL_KEY", ""), "PEM EC private key used to seal roots")
	cmd.Flags().StringVar(&cfg.SealKeyID, "seal-kid", envOr("MERKLESTORE_SEAL_KID", serviceName), "Key id carried in seals")
	return cmd
}

func serve(ctx context.Context, cfg serveConfig) error {
	log := logger.Sugar.WithServiceName(serviceName)

	logID, err := storage.ParseLogID(cfg.LogID)
	if err != nil {
		return fmt.Errorf("--log-id: %w", err)
	}

	store, err := storage.Open(ctx, log, cfg.StoreSpec)
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.Close(store); err != nil {
			log.Infof("closing store: %v", err)
		}
	}()

	opts := []server.Option{server.WithLogID(logID)}
	if cfg.CheckLeafHashes {
		opts = append(opts, server.WithLeafHashCheck())
	}
	if cfg.SealKeyPath != "" {
		key, err := seal.ReadPrivateKeyPEM(cfg.SealKeyPath)
		if err != nil {
			return err
		}
		codec, err := storage.NewCodec()
		if err != nil {
			return err
		}
		rs, err := seal.NewRootSigner(key, cfg.SealKeyID, codec)
		if err != nil {
			return err
		}
		opts = append(opts, server.WithRootSigner(rs))
	}

	coord, err := server.NewCoordinator(log, store, opts...)
	if err != nil {
		return err
	}
	log.Infof("log %s, store %s", logID, cfg.StoreSpec)
	return server.ListenAndServe(ctx, log, cfg.Addr, server.NewHandler(log, coord))
}

func newInspectCmd() *cobra.Command {
	var (
		cfg       serveConfig
		hashWidth int
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the tree over the stored batch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := logger.Sugar.WithServiceName(serviceName)

			logID, err := storage.ParseLogID(cfg.LogID)
			if err != nil {
				return fmt.Errorf("--log-id: %w", err)
			}
			store, err := storage.Open(ctx, log, cfg.StoreSpec)
			if err != nil {
				return err
			}
			defer storage.Close(store)

			coord, err := server.NewCoordinator(log, store, server.WithLogID(logID))
			if err != nil {
				return err
			}
			tree, err := coord.Tree(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("log %s, %d leaves, root %s\n", logID, tree.LeafCount(), tree.Root())
			fmt.Print(tree.Render(hashWidth))
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.StoreSpec, "store", envOr("MERKLESTORE_STORE", "dir:merklestore-data"), "Blob store spec")
	cmd.Flags().StringVar(&cfg.LogID, "log-id", envOr("MERKLESTORE_LOG_ID", ""), "Log uuid")
	cmd.Flags().IntVar(&hashWidth, "hash-width", 12, "Hex characters of each hash to show, 0 for all")
	return cmd
}

func newKeygenCmd() *cobra.Command {
	var privatePath, publicPath string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a P-256 key pair for sealing roots",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := seal.GenerateKey()
			if err != nil {
				return err
			}
			if err = seal.WriteKeyPairPEM(key, privatePath, publicPath); err != nil {
				return err
			}
			fmt.Printf("wrote %s and %s\n", privatePath, publicPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&privatePath, "private", "seal-key.pem", "Private key output path")
	cmd.Flags().StringVar(&publicPath, "public", "seal-pub.pem", "Public key output path")
	return cmd
}
