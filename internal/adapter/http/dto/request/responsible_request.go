package request

type ResponsibleRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}
