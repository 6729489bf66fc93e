package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"controle_abastecimento/internal/domain/consumption"
	"controle_abastecimento/internal/domain/entities"
	"controle_abastecimento/internal/usecase/interfaces"
)

var (
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrInvalidVehicleID    = errors.New("invalid vehicle id")
	ErrInvalidVehicleInput = errors.New("vehicle plate and model are required")
)

type IVehicleUseCase interface {
	Create(ctx context.Context, plate, model string) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
	Models(ctx context.Context) ([]string, error)
}

type VehicleUseCase struct {
	repo interfaces.IVehicleRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

func (u *VehicleUseCase) Create(ctx context.Context, plate, model string) (entities.Vehicle, error) {
	plate = strings.TrimSpace(plate)
	model = strings.TrimSpace(model)
	if plate == "" || model == "" {
		return entities.Vehicle{}, ErrInvalidVehicleInput
	}

	created, err := u.repo.Add(ctx, entities.Vehicle{Plate: plate, Model: model})
	if err != nil {
		log.Printf("[vehicle][usecase] create failed plate=%s err=%v", plate, err)
		return entities.Vehicle{}, err
	}
	return created, nil
}

func (u *VehicleUseCase) List(ctx context.Context) ([]entities.Vehicle, error) {
	list, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	return list, nil
}

// Delete does not cascade: fuel records keep pointing at the removed id.
func (u *VehicleUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidVehicleID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[vehicle][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	if deleted.ID == "" {
		return ErrVehicleNotFound
	}
	return nil
}

// Models lists the distinct vehicle models offered by the model filter.
func (u *VehicleUseCase) Models(ctx context.Context) ([]string, error) {
	list, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	return consumption.Models(list), nil
}
