package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baharkarakas/placeholder-api/internal/metrics"
	"github.com/baharkarakas/placeholder-api/internal/seed"
	"github.com/baharkarakas/placeholder-api/internal/store"
)

var (
	seedCount int
	seedForce bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with fake users and posts",
	Long: `Inserts fake users, one post each, with the password "password".
By default nothing happens when users already exist; --force seeds anyway.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log := setup()
		metrics.Init()

		st, err := store.Open(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer st.Close()

		opts := seed.Options{Count: cfg.SeedUsers, HashCost: cfg.BcryptCost}
		if seedCount > 0 {
			opts.Count = seedCount
		}

		var res seed.Result
		if seedForce {
			res = seed.New(st.Repos, opts, log).Run(cmd.Context())
		} else {
			ran, r, err := seed.EnsureSeeded(cmd.Context(), st.Repos, opts, log)
			if err != nil {
				return err
			}
			if !ran {
				fmt.Fprintln(cmd.OutOrStdout(), "database already has users; use --force to seed anyway")
				return nil
			}
			res = r
		}
		fmt.Fprintf(cmd.OutOrStdout(), "users: %d, posts: %d, failures: %d\n",
			res.UsersCreated, res.PostsCreated, res.Failures)
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 0, "number of users (default SEED_USERS)")
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "seed even when users exist")
	rootCmd.AddCommand(seedCmd)
}
