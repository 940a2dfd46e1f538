package repository

import (
	"context"
	"fmt"

	"github.com/jglopez/tappedout-api/internal/domain"
	"github.com/jglopez/tappedout-api/internal/repository/dao"
)

var (
	ErrGenderNotFound   = dao.ErrGenderNotFound
	ErrGenderExists     = dao.ErrGenderExists
	ErrUserTypeNotFound = dao.ErrUserTypeNotFound
	ErrUserTypeExists   = dao.ErrUserTypeExists
)

type ReferenceDAO interface {
	InsertGender(ctx context.Context, gender dao.Gender) (dao.Gender, error)
	FindGenderByID(ctx context.Context, id uint) (dao.Gender, error)
	FindAllGenders(ctx context.Context) ([]dao.Gender, error)
	DeleteGender(ctx context.Context, id uint) error
	InsertUserType(ctx context.Context, userType dao.UserType) (dao.UserType, error)
	FindUserTypeByID(ctx context.Context, id uint) (dao.UserType, error)
	FindUserTypeByName(ctx context.Context, name string) (dao.UserType, error)
	FindAllUserTypes(ctx context.Context) ([]dao.UserType, error)
	DeleteUserType(ctx context.Context, id uint) error
}

type ReferenceRepository struct {
	dao ReferenceDAO
}

func NewReferenceRepository(dao ReferenceDAO) *ReferenceRepository {
	return &ReferenceRepository{
		dao: dao,
	}
}

func (r *ReferenceRepository) CreateGender(ctx context.Context, gender domain.Gender) (domain.Gender, error) {
	created, err := r.dao.InsertGender(ctx, dao.Gender{Name: gender.Name})
	if err != nil {
		return domain.Gender{}, fmt.Errorf("r.dao.InsertGender -> %w", err)
	}

	return domain.Gender{ID: created.ID, Name: created.Name}, nil
}

func (r *ReferenceRepository) FindGenderByID(ctx context.Context, id uint) (domain.Gender, error) {
	found, err := r.dao.FindGenderByID(ctx, id)
	if err != nil {
		return domain.Gender{}, fmt.Errorf("r.dao.FindGenderByID -> %w", err)
	}

	return domain.Gender{ID: found.ID, Name: found.Name}, nil
}

func (r *ReferenceRepository) FindAllGenders(ctx context.Context) ([]domain.Gender, error) {
	found, err := r.dao.FindAllGenders(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllGenders -> %w", err)
	}

	genders := make([]domain.Gender, 0, len(found))
	for _, g := range found {
		genders = append(genders, domain.Gender{ID: g.ID, Name: g.Name})
	}

	return genders, nil
}

func (r *ReferenceRepository) DeleteGender(ctx context.Context, id uint) error {
	if err := r.dao.DeleteGender(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteGender -> %w", err)
	}

	return nil
}

func (r *ReferenceRepository) CreateUserType(ctx context.Context, userType domain.UserType) (domain.UserType, error) {
	created, err := r.dao.InsertUserType(ctx, dao.UserType{Name: userType.Name})
	if err != nil {
		return domain.UserType{}, fmt.Errorf("r.dao.InsertUserType -> %w", err)
	}

	return domain.UserType{ID: created.ID, Name: created.Name}, nil
}

func (r *ReferenceRepository) FindUserTypeByID(ctx context.Context, id uint) (domain.UserType, error) {
	found, err := r.dao.FindUserTypeByID(ctx, id)
	if err != nil {
		return domain.UserType{}, fmt.Errorf("r.dao.FindUserTypeByID -> %w", err)
	}

	return domain.UserType{ID: found.ID, Name: found.Name}, nil
}

func (r *ReferenceRepository) FindUserTypeByName(ctx context.Context, name string) (domain.UserType, error) {
	found, err := r.dao.FindUserTypeByName(ctx, name)
	if err != nil {
		return domain.UserType{}, fmt.Errorf("r.dao.FindUserTypeByName -> %w", err)
	}

	return domain.UserType{ID: found.ID, Name: found.Name}, nil
}

func (r *ReferenceRepository) FindAllUserTypes(ctx context.Context) ([]domain.UserType, error) {
	found, err := r.dao.FindAllUserTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllUserTypes -> %w", err)
	}

	userTypes := make([]domain.UserType, 0, len(found))
	for _, t := range found {
		userTypes = append(userTypes, domain.UserType{ID: t.ID, Name: t.Name})
	}

	return userTypes, nil
}

func (r *ReferenceRepository) DeleteUserType(ctx context.Context, id uint) error {
	if err := r.dao.DeleteUserType(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteUserType -> %w", err)
	}

	return nil
}
