package usecase

import (
	"context"

	"controle_abastecimento/internal/domain/entities"
	"controle_abastecimento/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

type collections struct {
	records      []entities.FuelRecord
	responsibles []entities.Responsible
	vehicles     []entities.Vehicle
}

// loadCollections fetches the three collections concurrently. The first
// failure cancels the other loads.
func loadCollections(
	ctx context.Context,
	records interfaces.IFuelRecordRepository,
	responsibles interfaces.IResponsibleRepository,
	vehicles interfaces.IVehicleRepository,
) (collections, error) {
	var out collections
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := records.GetAll(gctx)
		out.records = list
		return err
	})
	g.Go(func() error {
		list, err := responsibles.GetAll(gctx)
		out.responsibles = list
		return err
	})
	g.Go(func() error {
		list, err := vehicles.GetAll(gctx)
		out.vehicles = list
		return err
	})

	if err := g.Wait(); err != nil {
		return collections{}, storeUnavailable(err)
	}
	return out, nil
}

func (c collections) resolve(r entities.FuelRecord) FuelRecordDetail {
	detail := FuelRecordDetail{Record: r}
	for i := range c.responsibles {
		if c.responsibles[i].ID == r.ResponsibleID {
			detail.Responsible = &c.responsibles[i]
			break
		}
	}
	for i := range c.vehicles {
		if c.vehicles[i].ID == r.VehicleID {
			detail.Vehicle = &c.vehicles[i]
			break
		}
	}
	return detail
}
