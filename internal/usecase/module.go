package usecase

import (
	"go.uber.org/fx"

	"github.com/bitenow/bitenow/internal/config"
	"github.com/bitenow/bitenow/internal/domain/model"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newPricing,
	NewAuthUseCase,
	NewCatalogUseCase,
	NewCartUseCase,
	func(carts *CartUseCase) CartSource { return carts },
	NewOrderUseCase,
)

func newPricing(cfg *config.Config) model.Pricing {
	return model.Pricing{TaxRate: cfg.TaxRate, DeliveryFee: cfg.DeliveryFee}
}
