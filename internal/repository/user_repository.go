package repository

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/log"
	"gorm.io/gorm"

	"github.com/customeros/notestack/interfaces"
	"github.com/customeros/notestack/internal/models"
	"github.com/customeros/notestack/internal/tracing"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) interfaces.UserRepository {
	return &userRepository{db: db}
}

// FindByEmail returns at most limit users whose email equals the given address exactly.
// An empty address or a non-positive limit matches nobody.
func (r *userRepository) FindByEmail(ctx context.Context, email string, limit int) ([]*models.User, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "userRepository.FindByEmail")
	defer span.Finish()
	tracing.SetDefaultPostgresRepositorySpanTags(ctx, span)
	span.LogFields(log.String("email", email), log.Int("limit", limit))

	if email == "" || limit <= 0 {
		return []*models.User{}, nil
	}

	var users []*models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	span.LogFields(log.Int("result.count", len(users)))
	return users, nil
}
