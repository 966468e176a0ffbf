package container

import (
	"context"
	"fmt"
	"time"

	"library-backend/internal/config"
	"library-backend/internal/domains/author"
	authorrepo "library-backend/internal/domains/author/repository"
	authorsvc "library-backend/internal/domains/author/service"
	"library-backend/internal/domains/book"
	bookrepo "library-backend/internal/domains/book/repository"
	booksvc "library-backend/internal/domains/book/service"
	"library-backend/internal/domains/borrow"
	borrowrepo "library-backend/internal/domains/borrow/repository"
	borrowsvc "library-backend/internal/domains/borrow/service"
	"library-backend/internal/domains/library"
	libraryrepo "library-backend/internal/domains/library/repository"
	librarysvc "library-backend/internal/domains/library/service"
	"library-backend/internal/domains/user"
	userrepo "library-backend/internal/domains/user/repository"
	usersvc "library-backend/internal/domains/user/service"
	"library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/jwt"
	"library-backend/pkg/logger"
)

// Container wires configuration, infrastructure, repositories, services and
// handlers in dependency order.
type Container struct {
	Config *config.Config

	DB    *database.PostgresDB
	Cache *cache.RedisCache

	JWTManager *jwt.Manager

	AuthorService  author.Service
	LibraryService library.Service
	UserService    user.Service
	BookService    book.Service
	BorrowService  borrow.Service
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := c.DB.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	if err := c.DB.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	// A missing cache degrades reads to the database, so a failed Redis
	// connection is logged rather than fatal.
	c.Cache = cache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Connect(ctx); err != nil {
		logger.Error("redis unavailable, continuing without cache", err)
	}

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	authorRepository := authorrepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	libraryRepository := libraryrepo.NewPostgresRepository(c.DB.Pool)
	userRepository := userrepo.NewPostgresRepository(c.DB.Pool)
	bookRepository := bookrepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	borrowRepository := borrowrepo.NewPostgresRepository(c.DB.Pool)

	c.AuthorService = authorsvc.NewAuthorService(authorRepository)
	c.LibraryService = librarysvc.NewLibraryService(libraryRepository)
	c.UserService = usersvc.NewUserService(userRepository, c.JWTManager)
	c.BookService = booksvc.NewBookService(bookRepository, c.AuthorService, c.LibraryService)
	c.BorrowService = borrowsvc.NewBorrowService(borrowRepository, c.UserService, c.BookService, cfg.Borrow.DailyFineRate)

	return c, nil
}

// Cleanup releases infrastructure connections in reverse order.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("failed to close redis connection", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
