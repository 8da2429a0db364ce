package main

import (
	"context"
	"log/slog"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/errors"
	logs "nearby/internal/infra/log"
	"nearby/internal/infra/persistence/sqlstore"
	"nearby/internal/usecase"
	"nearby/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <catalog.yaml>",
		Short: "Load vendor catalogues into the hub store and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(
				fx.NopLogger,
				fx.Provide(config.New, logs.New),
				sqlstore.Module,
				fx.Provide(impl.NewCatalogService),
				fx.Invoke(func(catalog usecase.CatalogUsecase, logger *slog.Logger) error {
					return seedCatalog(cmd.Context(), catalog, logger, args[0])
				}),
			)

			if err := app.Start(cmd.Context()); err != nil {
				return errors.WithStack(err)
			}

			return errors.WithStack(app.Stop(context.Background()))
		},
	}
}

// seedCatalog replaces the catalogue of every vendor in the file.
func seedCatalog(ctx context.Context, catalog usecase.CatalogUsecase, logger *slog.Logger, path string) error {
	seed, err := config.LoadCatalog(path)
	if err != nil {
		return err
	}

	for _, v := range seed.Vendors {
		vendor, items := catalogFromSeed(v)
		if err := catalog.ReplaceCatalog(ctx, vendor, items); err != nil {
			return errors.Wrapf(err, "seed vendor %s", v.ID)
		}
	}

	logger.Info("Catalog seeded", slog.String("file", path), slog.Int("vendors", len(seed.Vendors)))

	return nil
}

func catalogFromSeed(v config.VendorSeed) (*entity.Vendor, []entity.CatalogItem) {
	vendor := &entity.Vendor{
		ID:                   v.ID,
		Name:                 v.Name,
		Rating:               v.Rating,
		DeliveryRadiusMeters: v.DeliveryRadius,
	}

	items := make([]entity.CatalogItem, 0, len(v.Products))
	for _, p := range v.Products {
		active := p.Active == nil || *p.Active
		items = append(items, entity.CatalogItem{
			Product: entity.Product{
				ID:       p.ID,
				Name:     p.Name,
				Category: p.Category,
				Price:    p.Price,
				Unit:     p.Unit,
			},
			Quantity: p.Quantity,
			IsActive: active,
		})
	}

	return vendor, items
}
