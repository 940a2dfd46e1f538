package repository

import (
	"context"
	"fmt"

	"github.com/jglopez/tappedout-api/internal/domain"
	"github.com/jglopez/tappedout-api/internal/repository/dao"
)

var (
	ErrUserNotFound    = dao.ErrUserNotFound
	ErrUserDNIExists   = dao.ErrUserDNIExists
	ErrUserEmailExists = dao.ErrUserEmailExists
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByDNI(ctx context.Context, dni string) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	FindAll(ctx context.Context) ([]dao.User, error)
	FindByType(ctx context.Context, typeID uint) ([]dao.User, error)
	FindByGender(ctx context.Context, genderID uint) ([]dao.User, error)
	FindByLocation(ctx context.Context, country, city string) ([]dao.User, error)
	Search(ctx context.Context, query string) ([]dao.User, error)
	Update(ctx context.Context, user dao.User) (dao.User, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	Delete(ctx context.Context, id uint) error
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.User{
		DNI:          user.DNI,
		TypeID:       user.TypeID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		DateOfBirth:  user.DateOfBirth,
		GenderID:     user.GenderID,
		Country:      user.Country,
		City:         user.City,
		Phone:        user.Phone,
		Avatar:       user.Avatar,
		IsVerified:   user.IsVerified,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByDNI(ctx context.Context, dni string) (domain.User, error) {
	found, err := r.dao.FindByDNI(ctx, dni)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByDNI -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *UserRepository) FindByType(ctx context.Context, typeID uint) ([]domain.User, error) {
	found, err := r.dao.FindByType(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByType -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *UserRepository) FindByGender(ctx context.Context, genderID uint) ([]domain.User, error) {
	found, err := r.dao.FindByGender(ctx, genderID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByGender -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *UserRepository) FindByLocation(ctx context.Context, country, city string) ([]domain.User, error) {
	found, err := r.dao.FindByLocation(ctx, country, city)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByLocation -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *UserRepository) Search(ctx context.Context, query string) ([]domain.User, error) {
	found, err := r.dao.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Search -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	updated, err := r.dao.Update(ctx, dao.User{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Country:   user.Country,
		City:      user.City,
		Phone:     user.Phone,
		Avatar:    user.Avatar,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	if err := r.dao.UpdatePassword(ctx, id, passwordHash); err != nil {
		return fmt.Errorf("r.dao.UpdatePassword -> %w", err)
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:           u.ID,
		DNI:          u.DNI,
		TypeID:       u.TypeID,
		Role:         u.Type.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		DateOfBirth:  u.DateOfBirth,
		GenderID:     u.GenderID,
		Country:      u.Country,
		City:         u.City,
		Phone:        u.Phone,
		Avatar:       u.Avatar,
		IsVerified:   u.IsVerified,
		CreatedAt:    u.CreatedAt,
	}
}

func (r *UserRepository) daoToDomainList(users []dao.User) []domain.User {
	converted := make([]domain.User, 0, len(users))
	for _, u := range users {
		converted = append(converted, r.daoToDomain(u))
	}

	return converted
}
