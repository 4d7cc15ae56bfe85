package dto

// OwnerInfoAttachReqはPOST /locations/（オーナー情報添付）の
// リクエストボディを表す構造体です。
type OwnerInfoAttachReq struct {
	LocationID uint   `json:"location_id" binding:"required"`
	Website    string `json:"website" binding:"omitempty,max=200"`
	OwnerInfo  string `json:"owner_info" binding:"required"`
}
