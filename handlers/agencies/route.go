package agencies

import "github.com/gin-gonic/gin"

func RegisterAgenciesRoutes(r *gin.RouterGroup) {
	r.GET("/broker-agencies", GetBrokerAgencies)
	r.POST("/broker-agencies", CreateBrokerAgency)
	r.PUT("/broker-agencies/:id", UpdateBrokerAgency)
	r.DELETE("/broker-agencies/:id", DeleteBrokerAgency)
	r.POST("/broker-agencies/import", ImportBrokerAgencies)
}
