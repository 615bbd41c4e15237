//go:generate mockgen -source=factory.go -destination=./factory_mocks_test.go -package=fare_quote_test
package fare_quote

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type router interface {
	Route(ctx context.Context, pickup, dropoff entities.Location) (*entities.RouteEstimate, error)
}

// rate задает тариф для класса транспорта. Все суммы в минорных единицах,
// маржа в процентах. Арифметика только целочисленная: повторный расчет
// по тем же входам обязан дать тот же результат до единицы.
type rate struct {
	base          entities.Money
	perKilometer  entities.Money
	marginPercent int64
}

var rates = map[entities.VehicleClass]rate{
	entities.VehicleBike: {base: 3000, perKilometer: 800, marginPercent: 10},
	entities.VehicleCar:  {base: 5000, perKilometer: 1500, marginPercent: 12},
	entities.VehicleVan:  {base: 9000, perKilometer: 2500, marginPercent: 15},
}

// FareQuoteFactory считает стоимость доставки по маршруту от роутера.
type FareQuoteFactory struct {
	router router
}

func New(router router) *FareQuoteFactory {
	return &FareQuoteFactory{router: router}
}

func (f *FareQuoteFactory) Quote(ctx context.Context, pickup, dropoff entities.Location, class entities.VehicleClass) (*entities.FareBreakdown, error) {
	classRate, ok := rates[class]
	if !ok {
		return nil, fmt.Errorf("no rate for vehicle class %q", class)
	}

	estimate, err := f.router.Route(ctx, pickup, dropoff)
	if err != nil {
		return nil, fmt.Errorf("fare quote, route: %w", err)
	}

	distance := entities.Money(int64(classRate.perKilometer) * estimate.DistanceMeters / 1000)
	margin := (classRate.base + distance) * entities.Money(classRate.marginPercent) / 100

	return &entities.FareBreakdown{
		Base:           classRate.base,
		Distance:       distance,
		Margin:         margin,
		Total:          classRate.base + distance + margin,
		DistanceMeters: estimate.DistanceMeters,
		Duration:       estimate.Duration,
	}, nil
}
