// Package dto はusersフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/api/v1/auth/loginエンドポイントのリクエストボディを表します。
// メール形式とパスワード最低6文字のバリデーションを含みます。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
