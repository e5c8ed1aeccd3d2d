package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/addrforge/addrforge/internal/storage"
	"github.com/addrforge/addrforge/pkg/config"
	"github.com/addrforge/addrforge/pkg/logger"
)

type seedFlags struct {
	count     int
	dsn       string
	nineZip   bool
	noDash    bool
	seed      int64
	dataset   string
	batchSize int
}

func newSeedCmd() *cobra.Command {
	var flags seedFlags

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate addresses and insert them into PostgreSQL",
		Long: `seed connects to PostgreSQL, applies the addresses table migration, and
inserts the requested number of generated records. The connection string comes
from --dsn or the PG_CONN_URL environment variable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := logger.New(logger.WithFormat(logger.FormatText), logger.WithAttr(slog.String("service", "addrforge")))

			var storageCfg storage.Config
			if err := config.Load(&storageCfg); err != nil {
				return err
			}
			if flags.dsn != "" {
				storageCfg.ConnectionString = flags.dsn
			}

			gen, err := buildGenerator(flags.dataset, flags.seed, cmd.Flags().Changed("seed"))
			if err != nil {
				return err
			}

			pool, err := storage.Connect(ctx, storageCfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := storage.Migrate(ctx, pool, log); err != nil {
				return err
			}

			store := storage.NewStore(pool)
			total := 0
			for _, n := range splitBatches(flags.count, flags.batchSize) {
				inserted, err := store.InsertAddresses(ctx, generateBatch(gen, n, flags.nineZip, flags.noDash))
				total += inserted
				if err != nil {
					log.ErrorContext(ctx, "seeding aborted", logger.Error(err), logger.Count(total))
					return err
				}
			}

			log.InfoContext(ctx, "seeding complete", logger.Count(total))
			return nil
		},
	}

	cmd.Flags().IntVarP(&flags.count, "count", "n", 100, "number of addresses to insert")
	cmd.Flags().StringVar(&flags.dsn, "dsn", "", "PostgreSQL connection string (defaults to PG_CONN_URL)")
	cmd.Flags().BoolVar(&flags.nineZip, "nine-digit-zip", false, "generate ZIP+4 codes")
	cmd.Flags().BoolVar(&flags.noDash, "no-dash", false, "drop the dash from ZIP+4 codes")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "random seed for reproducible output")
	cmd.Flags().StringVar(&flags.dataset, "dataset", "", "path to a custom YAML dataset")
	cmd.Flags().IntVar(&flags.batchSize, "batch-size", 500, "rows per insert batch")
	return cmd
}

// splitBatches divides count rows into insert batches of at most size rows
// each. Both arguments are clamped to at least one, so the schedule always
// makes progress and its batches always sum to the clamped count.
func splitBatches(count, size int) []int {
	count = max(count, 1)
	size = max(size, 1)

	batches := make([]int, 0, count/size+1)
	for count > 0 {
		n := min(count, size)
		batches = append(batches, n)
		count -= n
	}
	return batches
}
