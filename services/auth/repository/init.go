package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/inviteflow/auth-service/internal/pkg/database"
	"github.com/inviteflow/auth-service/internal/pkg/models"
)

// AuthRepo implements the user store over PostgreSQL and the OTP store over
// Redis.
type AuthRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
