package request

type VolumeCalcItem struct {
	TypeID   int64 `json:"type_id" binding:"required"`
	Quantity int   `json:"quantity"`
}

type VolumeCalcRequest struct {
	Boxes []VolumeCalcItem `json:"boxes" binding:"required,min=1,dive"`
}
