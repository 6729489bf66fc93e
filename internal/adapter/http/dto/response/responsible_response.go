package response

import (
	"time"

	"controle_abastecimento/internal/domain/entities"
)

type ResponsibleResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func FromResponsible(r entities.Responsible) ResponsibleResponse {
	return ResponsibleResponse{ID: r.ID, Name: r.Name, Phone: r.Phone, CreatedAt: r.CreatedAt}
}

func FromResponsibles(list []entities.Responsible) []ResponsibleResponse {
	out := make([]ResponsibleResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromResponsible(r))
	}
	return out
}

// fromResponsiblePtr maps a resolved reference; nil stays nil.
func fromResponsiblePtr(r *entities.Responsible) *ResponsibleResponse {
	if r == nil {
		return nil
	}
	res := FromResponsible(*r)
	return &res
}
