package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GoogleMapsKey はフロントエンドの地図描画用に /google-maps-key を処理する
// ハンドラーを返します。キーは起動時の設定から注入されます。
func GoogleMapsKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"google_maps_api_key": key})
	}
}
