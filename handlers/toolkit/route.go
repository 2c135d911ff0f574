package toolkit

import "github.com/gin-gonic/gin"

func RegisterToolkitRoutes(r *gin.RouterGroup) {
	r.GET("/toolkit-images", GetToolkitImages)
	r.POST("/toolkit-images", CreateToolkitImage)
	r.PUT("/toolkit-images/:id", UpdateToolkitImage)
	r.DELETE("/toolkit-images/:id", DeleteToolkitImage)
	r.POST("/toolkit-images/upload", UploadImage)
}
