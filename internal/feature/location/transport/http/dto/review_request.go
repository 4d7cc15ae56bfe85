package dto

// ReviewReqはPOST /locations/:id/reviewsのリクエストボディを表す構造体です。
// ストレージ上はratingがNULL可ですが、APIでは必須とします。
type ReviewReq struct {
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment" binding:"omitempty"`
}
