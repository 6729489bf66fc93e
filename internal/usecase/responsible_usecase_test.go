package usecase

import (
	"context"
	"errors"
	"testing"

	"controle_abastecimento/internal/domain/entities"
	mock_interfaces "controle_abastecimento/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestResponsibleUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewResponsibleUseCase(nil)
		_, err := uc.Create(context.Background(), "   ", "119")
		if !errors.Is(err, ErrInvalidResponsibleName) {
			t.Fatalf("expected ErrInvalidResponsibleName, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResponsibleRepository(ctrl)
		uc := NewResponsibleUseCase(repo)

		repo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(entities.Responsible{}, errors.New("db"))

		_, err := uc.Create(context.Background(), "Ana", "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success trims fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResponsibleRepository(ctrl)
		uc := NewResponsibleUseCase(repo)

		repo.EXPECT().Add(gomock.Any(), entities.Responsible{Name: "Ana", Phone: "11999990000"}).DoAndReturn(
			func(_ context.Context, r entities.Responsible) (entities.Responsible, error) {
				r.ID = "p1"
				return r, nil
			},
		)

		res, err := uc.Create(context.Background(), "  Ana ", " 11999990000 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "p1" {
			t.Fatalf("expected store id, got %+v", res)
		}
	})
}

func TestResponsibleUseCase_ListAndDelete(t *testing.T) {
	t.Run("list wraps store failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResponsibleRepository(ctrl)
		uc := NewResponsibleUseCase(repo)

		repo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := uc.List(context.Background())
		if !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})

	t.Run("delete invalid id", func(t *testing.T) {
		uc := NewResponsibleUseCase(nil)
		if err := uc.Delete(context.Background(), " "); !errors.Is(err, ErrInvalidResponsibleID) {
			t.Fatalf("expected ErrInvalidResponsibleID, got %v", err)
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResponsibleRepository(ctrl)
		uc := NewResponsibleUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "p1").Return(entities.Responsible{}, nil)

		if err := uc.Delete(context.Background(), "p1"); !errors.Is(err, ErrResponsibleNotFound) {
			t.Fatalf("expected ErrResponsibleNotFound, got %v", err)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResponsibleRepository(ctrl)
		uc := NewResponsibleUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "p1").Return(entities.Responsible{ID: "p1"}, nil)

		if err := uc.Delete(context.Background(), " p1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
