package dto

// RegisterReqは/auth/registerのリクエストボディを表す構造体です。
// Ginのbindingタグで必須・形式チェックを行い、文字種や
// パスワードの複合ルールはusecase側で検証します。
type RegisterReq struct {
	Username        string `json:"username" binding:"required,max=150"`
	Email           string `json:"email" binding:"omitempty,email,max=150"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required,min=8"`
	FirstName       string `json:"first_name" binding:"required,max=150"`
	SecondName      string `json:"second_name" binding:"required,max=150"`
	Phone           string `json:"phone" binding:"required"`
}
