package dto

// OwnerInfoBlockはロケーション作成時に任意で添付するオーナー情報です。
type OwnerInfoBlock struct {
	Website   string `json:"website" binding:"omitempty,max=200"`
	OwnerInfo string `json:"owner_info" binding:"required"`
}

// LocationReqは/locations/add-locationおよびPUT /locations/:idの
// リクエストボディを表す構造体です。営業時間はHH:MM形式で受け取ります。
type LocationReq struct {
	Name              string          `json:"name" binding:"required,max=150"`
	Latitude          float64         `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude         float64         `json:"longitude" binding:"required,gte=-180,lte=180"`
	Address           string          `json:"address" binding:"omitempty,max=255"`
	WorkingHoursStart string          `json:"working_hours_start" binding:"required,datetime=15:04"`
	WorkingHoursEnd   string          `json:"working_hours_end" binding:"required,datetime=15:04"`
	AverageCheck      *int            `json:"average_check" binding:"omitempty,gte=2000,lte=5000"`
	OwnerInfo         *OwnerInfoBlock `json:"owner_info" binding:"omitempty"`
}
