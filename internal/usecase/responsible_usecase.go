package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"controle_abastecimento/internal/domain/entities"
	"controle_abastecimento/internal/usecase/interfaces"
)

var (
	ErrResponsibleNotFound    = errors.New("responsible not found")
	ErrInvalidResponsibleID   = errors.New("invalid responsible id")
	ErrInvalidResponsibleName = errors.New("invalid responsible name")
)

// IResponsibleUseCase registers and removes the operators accountable for
// refueling events. Responsibles are never edited in place.

type IResponsibleUseCase interface {
	Create(ctx context.Context, name, phone string) (entities.Responsible, error)
	List(ctx context.Context) ([]entities.Responsible, error)
	Delete(ctx context.Context, id string) error
}

type ResponsibleUseCase struct {
	repo interfaces.IResponsibleRepository
}

var _ IResponsibleUseCase = (*ResponsibleUseCase)(nil)

func NewResponsibleUseCase(repo interfaces.IResponsibleRepository) *ResponsibleUseCase {
	return &ResponsibleUseCase{repo: repo}
}

func (u *ResponsibleUseCase) Create(ctx context.Context, name, phone string) (entities.Responsible, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Responsible{}, ErrInvalidResponsibleName
	}

	created, err := u.repo.Add(ctx, entities.Responsible{Name: name, Phone: strings.TrimSpace(phone)})
	if err != nil {
		log.Printf("[responsible][usecase] create failed err=%v", err)
		return entities.Responsible{}, err
	}
	return created, nil
}

func (u *ResponsibleUseCase) List(ctx context.Context) ([]entities.Responsible, error) {
	list, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	return list, nil
}

// Delete does not cascade: fuel records keep pointing at the removed id.
func (u *ResponsibleUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidResponsibleID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[responsible][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	if deleted.ID == "" {
		return ErrResponsibleNotFound
	}
	return nil
}
