package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authorhandler "library-backend/internal/domains/author/handler"
	bookhandler "library-backend/internal/domains/book/handler"
	borrowhandler "library-backend/internal/domains/borrow/handler"
	libraryhandler "library-backend/internal/domains/library/handler"
	userhandler "library-backend/internal/domains/user/handler"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
	"library-backend/pkg/container"
)

// SetupRouter wires all routes. Reads are public; writes require a valid
// token and deletes additionally require the ADMIN role.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	authorHandler := authorhandler.NewAuthorHandler(c.AuthorService)
	libraryHandler := libraryhandler.NewLibraryHandler(c.LibraryService)
	userHandler := userhandler.NewUserHandler(c.UserService)
	bookHandler := bookhandler.NewBookHandler(c.BookService)
	borrowHandler := borrowhandler.NewBorrowHandler(c.BorrowService)

	auth := middleware.Auth(c.JWTManager)
	adminOnly := middleware.AdminOnly()

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", func(ctx *gin.Context) {
			response.Success(ctx, http.StatusOK, gin.H{
				"status":  "ok",
				"name":    c.Config.App.Name,
				"version": c.Config.App.Version,
			})
		})

		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", userHandler.Register)
			authRoutes.POST("/login", userHandler.Login)
		}

		authors := v1.Group("/authors")
		{
			authors.GET("", authorHandler.GetAll)
			authors.GET("/without-books", authorHandler.GetWithoutBooks)
			authors.GET("/:id", authorHandler.GetByID)
			authors.POST("", auth, authorHandler.Create)
			authors.PUT("/:id", auth, authorHandler.Update)
			authors.DELETE("/:id", auth, adminOnly, authorHandler.Delete)
		}

		libraries := v1.Group("/libraries")
		{
			libraries.GET("", libraryHandler.GetAll)
			libraries.GET("/:id", libraryHandler.GetByID)
			libraries.POST("", auth, libraryHandler.Create)
			libraries.PUT("/:id", auth, libraryHandler.Update)
			libraries.DELETE("/:id", auth, adminOnly, libraryHandler.Delete)
		}

		users := v1.Group("/users")
		{
			users.GET("", auth, userHandler.GetAll)
			users.GET("/with-active-borrows", auth, userHandler.GetWithActiveBorrows)
			users.GET("/:id", auth, userHandler.GetByID)
			users.GET("/:id/active-borrows", auth, borrowHandler.HasUserActiveBorrows)
			users.GET("/:id/active-borrows/count", auth, userHandler.CountActiveBorrows)
			users.PUT("/:id", auth, userHandler.Update)
			users.DELETE("/:id", auth, adminOnly, userHandler.Delete)
		}

		books := v1.Group("/books")
		{
			books.GET("", bookHandler.GetAll)
			books.GET("/search", bookHandler.Search)
			books.GET("/isbn/:isbn", bookHandler.GetByISBN)
			books.GET("/title/:title", bookHandler.GetByTitle)
			books.GET("/author/:id", bookHandler.GetByAuthor)
			books.GET("/library/:id", bookHandler.GetByLibrary)
			books.GET("/:id", bookHandler.GetByID)
			books.GET("/:id/borrowed", borrowHandler.IsBookBorrowed)
			books.POST("", auth, bookHandler.Create)
			books.PUT("/:id", auth, bookHandler.Update)
			books.DELETE("/:id", auth, adminOnly, bookHandler.Delete)
		}

		borrows := v1.Group("/borrows")
		{
			borrows.GET("", auth, borrowHandler.GetAll)
			borrows.GET("/active", auth, borrowHandler.GetActive)
			borrows.GET("/overdue", auth, borrowHandler.GetOverdue)
			borrows.GET("/:id", auth, borrowHandler.GetByID)
			borrows.POST("", auth, borrowHandler.Create)
			borrows.POST("/:id/return", auth, borrowHandler.Return)
			borrows.PUT("/:id", auth, borrowHandler.Update)
			borrows.DELETE("/:id", auth, adminOnly, borrowHandler.Delete)
		}
	}

	return router
}
