package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devfolio/content-service/internal/config"
	"github.com/devfolio/content-service/internal/content"
	"github.com/devfolio/content-service/internal/seed"
	"github.com/devfolio/content-service/internal/store"
	fsstore "github.com/devfolio/content-service/internal/store/firestore"
)

func openStore(ctx context.Context) (store.Store, func(), error) {
	projectID := projectFlag
	if projectID == "" {
		cfg, err := config.New()
		if err != nil {
			return nil, nil, err
		}
		projectID = cfg.FirestoreProjectID
	}
	if projectID == "" {
		return nil, nil, fmt.Errorf("no Firestore project: pass --project or set PORTFOLIO_FIRESTORE_PROJECT_ID")
	}
	fs, err := fsstore.New(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	return fs, func() { _ = fs.Close() }, nil
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed all collections with the bundled default content",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, closeStore, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			notifier := content.NewLogNotifier()
			seeder := seed.New(
				content.NewSettings(st, notifier),
				content.NewAboutMe(st, notifier),
				content.NewSkills(st, notifier),
				content.NewPortfolio(st, notifier),
				content.NewNotFoundPage(st, notifier),
			)
			res := seeder.SeedAll(ctx)

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return err
			}
			if !res.Success {
				return fmt.Errorf("seeding did not complete")
			}
			return nil
		},
	}
}

func newPurgeMessagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge-messages",
		Short: "Delete every contact message",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, closeStore, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			docs, err := st.List(ctx, store.CollectionMessages, store.Query{})
			if err != nil {
				return err
			}
			ops := make([]store.WriteOp, 0, len(docs))
			for _, d := range docs {
				ops = append(ops, store.WriteOp{Kind: store.WriteDelete, Collection: store.CollectionMessages, ID: d.ID})
			}
			if err := st.BatchWrite(ctx, ops); err != nil {
				return err
			}
			fmt.Printf("deleted %d messages\n", len(ops))
			return nil
		},
	}
}
