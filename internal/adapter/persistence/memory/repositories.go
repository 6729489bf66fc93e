package memory

import (
	"context"
	"time"

	"controle_abastecimento/internal/domain/entities"
	"controle_abastecimento/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type ResponsibleRepository struct {
	c   *collection[entities.Responsible]
	now func() time.Time
}

var _ interfaces.IResponsibleRepository = (*ResponsibleRepository)(nil)

func NewResponsibleRepository() *ResponsibleRepository {
	return &ResponsibleRepository{
		c: newCollection(
			func(r entities.Responsible) string { return r.ID },
			func(r entities.Responsible) time.Time { return r.CreatedAt },
		),
		now: time.Now,
	}
}

func (r *ResponsibleRepository) Add(_ context.Context, e entities.Responsible) (entities.Responsible, error) {
	e.ID = uuid.NewString()
	e.CreatedAt = r.now().UTC()
	r.c.add(e)
	return e, nil
}

func (r *ResponsibleRepository) GetAll(context.Context) ([]entities.Responsible, error) {
	return r.c.all(), nil
}

func (r *ResponsibleRepository) Delete(_ context.Context, id string) (entities.Responsible, error) {
	e, _ := r.c.remove(id)
	return e, nil
}

type VehicleRepository struct {
	c   *collection[entities.Vehicle]
	now func() time.Time
}

var _ interfaces.IVehicleRepository = (*VehicleRepository)(nil)

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{
		c: newCollection(
			func(v entities.Vehicle) string { return v.ID },
			func(v entities.Vehicle) time.Time { return v.CreatedAt },
		),
		now: time.Now,
	}
}

func (r *VehicleRepository) Add(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.ID = uuid.NewString()
	v.CreatedAt = r.now().UTC()
	r.c.add(v)
	return v, nil
}

func (r *VehicleRepository) GetAll(context.Context) ([]entities.Vehicle, error) {
	return r.c.all(), nil
}

func (r *VehicleRepository) Delete(_ context.Context, id string) (entities.Vehicle, error) {
	v, _ := r.c.remove(id)
	return v, nil
}

// FuelRecordRepository orders by event date. Slices inside records are
// shared with callers; the use cases never mutate a stored record in place.
type FuelRecordRepository struct {
	c   *collection[entities.FuelRecord]
	now func() time.Time
}

var _ interfaces.IFuelRecordRepository = (*FuelRecordRepository)(nil)

func NewFuelRecordRepository() *FuelRecordRepository {
	return &FuelRecordRepository{
		c: newCollection(
			func(r entities.FuelRecord) string { return r.ID },
			func(r entities.FuelRecord) time.Time { return r.Date },
		),
		now: time.Now,
	}
}

func (r *FuelRecordRepository) Add(_ context.Context, rec entities.FuelRecord) (entities.FuelRecord, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = r.now().UTC()
	r.c.add(rec)
	return rec, nil
}

func (r *FuelRecordRepository) GetAll(context.Context) ([]entities.FuelRecord, error) {
	return r.c.all(), nil
}

func (r *FuelRecordRepository) GetByID(_ context.Context, id string) (entities.FuelRecord, error) {
	rec, _ := r.c.get(id)
	return rec, nil
}

func (r *FuelRecordRepository) Update(_ context.Context, rec entities.FuelRecord) (entities.FuelRecord, error) {
	if !r.c.replace(rec) {
		return entities.FuelRecord{}, nil
	}
	return rec, nil
}

func (r *FuelRecordRepository) Delete(_ context.Context, id string) (entities.FuelRecord, error) {
	rec, _ := r.c.remove(id)
	return rec, nil
}
