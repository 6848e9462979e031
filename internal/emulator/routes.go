package emulator

import (
	"github.com/gin-gonic/gin"
)

// Setup configures the wire-protocol routes on the gin engine.
func Setup(r *gin.Engine, h *Handlers) {
	dbs := r.Group("/dbs")
	{
		dbs.POST("", h.CreateOrQueryDatabases)
		dbs.GET("", h.ListDatabases)
		dbs.GET("/:db", h.GetDatabase)
		dbs.DELETE("/:db", h.DeleteDatabase)

		colls := dbs.Group("/:db/colls")
		{
			colls.POST("", h.CreateOrQueryContainers)
			colls.GET("", h.ListContainers)
			colls.GET("/:coll", h.GetContainer)
			colls.PUT("/:coll", h.ReplaceContainer)
			colls.DELETE("/:coll", h.DeleteContainer)

			docs := colls.Group("/:coll/docs")
			{
				docs.POST("", h.CreateOrQueryDocuments)
				docs.GET("", h.ListDocuments)
				docs.GET("/:doc", h.GetDocument)
				docs.PUT("/:doc", h.ReplaceDocument)
				docs.DELETE("/:doc", h.DeleteDocument)
			}
		}

		users := dbs.Group("/:db/users")
		{
			users.POST("", h.CreateUser)
			users.GET("", h.ListUsers)
			users.GET("/:user", h.GetUser)
			users.DELETE("/:user", h.DeleteUser)
		}
	}
}

// NewRouter builds a gin engine with logging and recovery middleware and all
// routes configured over a fresh account.
func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger())
	r.Use(gin.Recovery())
	Setup(r, NewHandlers(NewAccount()))
	return r
}
