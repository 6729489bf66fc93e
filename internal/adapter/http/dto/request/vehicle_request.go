package request

type VehicleRequest struct {
	Plate string `json:"plate" binding:"required"`
	Model string `json:"model" binding:"required"`
}
