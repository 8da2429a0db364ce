package sqlstore

import "go.uber.org/fx"

// Module provides the database and repository FX module
var Module = fx.Options(
	fx.Provide(
		New,
		NewTransactionManager,
		NewVendorRepository,
		NewProductRepository,
		NewPreferenceRepository,
		NewAcknowledgementRepository,
	),
)
