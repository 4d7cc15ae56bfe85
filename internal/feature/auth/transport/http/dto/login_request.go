package dto

// LoginReqは/auth/loginのリクエストボディを表す構造体です。
// バリデーションとして必須チェックを行います。
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
