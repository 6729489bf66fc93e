package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"controle_abastecimento/internal/domain/consumption"
	"controle_abastecimento/internal/domain/entities"
	"controle_abastecimento/internal/usecase/interfaces"
)

var (
	ErrFuelRecordNotFound     = errors.New("fuel record not found")
	ErrInvalidFuelRecordID    = errors.New("invalid fuel record id")
	ErrMissingRequiredFields  = errors.New("responsible, vehicle and fuel types are required")
	ErrInvalidFuelType        = errors.New("invalid fuel type")
	ErrDieselOdometerRequired = errors.New("diesel odometer start and end are required")
	ErrDieselTotalRequired    = errors.New("diesel total refueled is required")
	ErrArlaOdometerRequired   = errors.New("arla odometer start and end are required")
	ErrArlaTotalRequired      = errors.New("arla total refueled is required")
)

// FuelRecordInput is a submitted refueling form. Fields of fuel types that
// are not selected are discarded. A nil Date means now on create and keeps
// the stored date on update.
type FuelRecordInput struct {
	Date          *time.Time
	ResponsibleID string
	VehicleID     string
	FuelTypes     []entities.FuelType
	Diesel        entities.FuelData
	Arla          entities.FuelData
	VehicleKm     *float64
	Observations  string
}

// FuelRecordDetail is a record with its references resolved. A nil
// Responsible or Vehicle means the referenced entity no longer exists.
type FuelRecordDetail struct {
	Record      entities.FuelRecord
	Responsible *entities.Responsible
	Vehicle     *entities.Vehicle
}

// OdometerSuggestions are the odometer start values a new record is
// pre-filled with, nil when there is no prior reading.
type OdometerSuggestions struct {
	Diesel *float64
	Arla   *float64
}

// IFuelRecordUseCase is the refueling log.
//
//   - Create / Update validate the form, derive the km/l average and persist
//   - Create pre-fills absent odometer starts from the last odometer end
//   - PreviewAverage and OdometerSuggestions let a form show both before submit

type IFuelRecordUseCase interface {
	Create(ctx context.Context, in FuelRecordInput) (entities.FuelRecord, error)
	List(ctx context.Context) ([]entities.FuelRecord, error)
	Get(ctx context.Context, id string) (FuelRecordDetail, error)
	Update(ctx context.Context, id string, in FuelRecordInput) (entities.FuelRecord, error)
	Delete(ctx context.Context, id string) error
	OdometerSuggestions(ctx context.Context) (OdometerSuggestions, error)
	PreviewAverage(ctx context.Context, in consumption.AverageInput) (*float64, error)
}

type FuelRecordUseCase struct {
	records      interfaces.IFuelRecordRepository
	responsibles interfaces.IResponsibleRepository
	vehicles     interfaces.IVehicleRepository
	now          func() time.Time
}

var _ IFuelRecordUseCase = (*FuelRecordUseCase)(nil)

func NewFuelRecordUseCase(
	records interfaces.IFuelRecordRepository,
	responsibles interfaces.IResponsibleRepository,
	vehicles interfaces.IVehicleRepository,
) *FuelRecordUseCase {
	return &FuelRecordUseCase{
		records:      records,
		responsibles: responsibles,
		vehicles:     vehicles,
		now:          time.Now,
	}
}

func (u *FuelRecordUseCase) Create(ctx context.Context, in FuelRecordInput) (entities.FuelRecord, error) {
	draft, err := normalizeInput(in)
	if err != nil {
		return entities.FuelRecord{}, err
	}

	history, err := u.records.GetAll(ctx)
	if err != nil {
		return entities.FuelRecord{}, storeUnavailable(err)
	}

	for _, t := range draft.FuelTypes {
		data := fuelData(&draft, t)
		if data.OdometerStart != nil {
			continue
		}
		if start, ok := consumption.SuggestOdometerStart(history, t); ok {
			data.OdometerStart = &start
		}
	}

	if err := validateFuelData(draft); err != nil {
		return entities.FuelRecord{}, err
	}

	if in.Date != nil {
		draft.Date = *in.Date
	} else {
		draft.Date = u.now()
	}
	draft.Average = average(history, "", draft)

	log.Printf("[fuel][usecase] create start vehicle_id=%s fuel_types=%v", draft.VehicleID, draft.FuelTypes)
	created, err := u.records.Add(ctx, draft)
	if err != nil {
		log.Printf("[fuel][usecase] create failed vehicle_id=%s err=%v", draft.VehicleID, err)
		return entities.FuelRecord{}, err
	}
	return created, nil
}

func (u *FuelRecordUseCase) List(ctx context.Context) ([]entities.FuelRecord, error) {
	list, err := u.records.GetAll(ctx)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	return list, nil
}

func (u *FuelRecordUseCase) Get(ctx context.Context, id string) (FuelRecordDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return FuelRecordDetail{}, ErrInvalidFuelRecordID
	}

	rec, err := u.records.GetByID(ctx, id)
	if err != nil {
		return FuelRecordDetail{}, storeUnavailable(err)
	}
	if rec.ID == "" {
		return FuelRecordDetail{}, ErrFuelRecordNotFound
	}

	responsibles, err := u.responsibles.GetAll(ctx)
	if err != nil {
		return FuelRecordDetail{}, storeUnavailable(err)
	}
	vehicles, err := u.vehicles.GetAll(ctx)
	if err != nil {
		return FuelRecordDetail{}, storeUnavailable(err)
	}

	return collections{responsibles: responsibles, vehicles: vehicles}.resolve(rec), nil
}

// Update replaces the record fields. Odometers are never pre-filled here and
// the average is derived from readings dated before the record, the record
// itself excluded.
func (u *FuelRecordUseCase) Update(ctx context.Context, id string, in FuelRecordInput) (entities.FuelRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FuelRecord{}, ErrInvalidFuelRecordID
	}

	draft, err := normalizeInput(in)
	if err != nil {
		return entities.FuelRecord{}, err
	}
	if err := validateFuelData(draft); err != nil {
		return entities.FuelRecord{}, err
	}

	existing, err := u.records.GetByID(ctx, id)
	if err != nil {
		return entities.FuelRecord{}, storeUnavailable(err)
	}
	if existing.ID == "" {
		return entities.FuelRecord{}, ErrFuelRecordNotFound
	}

	history, err := u.records.GetAll(ctx)
	if err != nil {
		return entities.FuelRecord{}, storeUnavailable(err)
	}

	draft.ID = existing.ID
	draft.CreatedAt = existing.CreatedAt
	draft.Date = existing.Date
	if in.Date != nil {
		draft.Date = *in.Date
	}
	draft.Average = average(history, id, draft)

	updated, err := u.records.Update(ctx, draft)
	if err != nil {
		log.Printf("[fuel][usecase] update failed id=%s err=%v", id, err)
		return entities.FuelRecord{}, err
	}
	if updated.ID == "" {
		return entities.FuelRecord{}, ErrFuelRecordNotFound
	}
	return updated, nil
}

func (u *FuelRecordUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidFuelRecordID
	}

	deleted, err := u.records.Delete(ctx, id)
	if err != nil {
		log.Printf("[fuel][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	if deleted.ID == "" {
		return ErrFuelRecordNotFound
	}
	return nil
}

func (u *FuelRecordUseCase) OdometerSuggestions(ctx context.Context) (OdometerSuggestions, error) {
	history, err := u.records.GetAll(ctx)
	if err != nil {
		return OdometerSuggestions{}, storeUnavailable(err)
	}

	var out OdometerSuggestions
	if v, ok := consumption.SuggestOdometerStart(history, entities.FuelTypeDiesel); ok {
		out.Diesel = &v
	}
	if v, ok := consumption.SuggestOdometerStart(history, entities.FuelTypeArla); ok {
		out.Arla = &v
	}
	return out, nil
}

// PreviewAverage returns the average a submission would record, nil when
// none can be derived.
func (u *FuelRecordUseCase) PreviewAverage(ctx context.Context, in consumption.AverageInput) (*float64, error) {
	history, err := u.records.GetAll(ctx)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	in.RecordID = strings.TrimSpace(in.RecordID)
	if in.RecordID != "" && in.Before.IsZero() {
		for _, r := range history {
			if r.ID == in.RecordID {
				in.Before = r.Date
				break
			}
		}
	}
	if avg, ok := consumption.Average(history, in); ok {
		return &avg, nil
	}
	return nil, nil
}

func average(history []entities.FuelRecord, excludeID string, r entities.FuelRecord) *float64 {
	avg, ok := consumption.Average(history, consumption.AverageInput{
		RecordID:            excludeID,
		Before:              r.Date,
		VehicleID:           r.VehicleID,
		VehicleKm:           r.VehicleKm,
		DieselTotalRefueled: r.Diesel.TotalRefueled,
	})
	if !ok {
		return nil
	}
	return &avg
}

// normalizeInput checks the required fields and builds a record holding data
// only for the selected fuel types.
func normalizeInput(in FuelRecordInput) (entities.FuelRecord, error) {
	rec := entities.FuelRecord{
		ResponsibleID: strings.TrimSpace(in.ResponsibleID),
		VehicleID:     strings.TrimSpace(in.VehicleID),
		VehicleKm:     in.VehicleKm,
		Observations:  strings.TrimSpace(in.Observations),
	}

	seen := map[entities.FuelType]bool{}
	for _, t := range in.FuelTypes {
		t = entities.FuelType(strings.ToUpper(strings.TrimSpace(string(t))))
		if !t.Valid() {
			return entities.FuelRecord{}, ErrInvalidFuelType
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		rec.FuelTypes = append(rec.FuelTypes, t)
	}

	if rec.ResponsibleID == "" || rec.VehicleID == "" || len(rec.FuelTypes) == 0 {
		return entities.FuelRecord{}, ErrMissingRequiredFields
	}

	if seen[entities.FuelTypeDiesel] {
		rec.Diesel = normalizeFuelData(in.Diesel)
	}
	if seen[entities.FuelTypeArla] {
		rec.Arla = normalizeFuelData(in.Arla)
	}
	return rec, nil
}

func normalizeFuelData(d entities.FuelData) entities.FuelData {
	d.Level = normalizeReading(d.Level)
	d.Daily = normalizeReading(d.Daily)
	return d
}

func normalizeReading(r entities.Reading) entities.Reading {
	if !r.IsSet() {
		return entities.Reading{}
	}
	return r
}

func validateFuelData(r entities.FuelRecord) error {
	if r.Has(entities.FuelTypeDiesel) {
		if r.Diesel.OdometerStart == nil || r.Diesel.OdometerEnd == nil {
			return ErrDieselOdometerRequired
		}
		if r.Diesel.TotalRefueled == nil {
			return ErrDieselTotalRequired
		}
	}
	if r.Has(entities.FuelTypeArla) {
		if r.Arla.OdometerStart == nil || r.Arla.OdometerEnd == nil {
			return ErrArlaOdometerRequired
		}
		if r.Arla.TotalRefueled == nil {
			return ErrArlaTotalRequired
		}
	}
	return nil
}

func fuelData(r *entities.FuelRecord, t entities.FuelType) *entities.FuelData {
	if t == entities.FuelTypeArla {
		return &r.Arla
	}
	return &r.Diesel
}
