package repository

import (
	"context"
	"fmt"

	"github.com/jglopez/tappedout-api/internal/domain"
	"github.com/jglopez/tappedout-api/internal/repository/dao"
)

var (
	ErrInscriptionNotFound = dao.ErrInscriptionNotFound
	ErrInscriptionExists   = dao.ErrInscriptionExists
)

type InscriptionDAO interface {
	Insert(ctx context.Context, inscription dao.Inscription) (dao.Inscription, error)
	FindByID(ctx context.Context, id uint) (dao.Inscription, error)
	FindAll(ctx context.Context) ([]dao.Inscription, error)
	FindByCompetitor(ctx context.Context, competitorID uint) ([]dao.Inscription, error)
	FindByEvent(ctx context.Context, eventID uint) ([]dao.Inscription, error)
	FindByEventAndCategory(ctx context.Context, eventID, categoryID uint) ([]dao.Inscription, error)
	FindByPaymentStatus(ctx context.Context, status string) ([]dao.Inscription, error)
	FindByEventAndPaymentStatus(ctx context.Context, eventID uint, status string) ([]dao.Inscription, error)
	CountByEventAndPaymentStatus(ctx context.Context, eventID uint, status string) (int64, error)
	FindByCompetitorAndEvent(ctx context.Context, competitorID, eventID uint) ([]dao.Inscription, error)
	ExistsByCompetitorAndEvent(ctx context.Context, competitorID, eventID uint) (bool, error)
	ExistsByCompetitorEventCategory(ctx context.Context, competitorID, eventID, categoryID uint) (bool, error)
	Update(ctx context.Context, inscription dao.Inscription) (dao.Inscription, error)
	Delete(ctx context.Context, id uint) error
}

type InscriptionRepository struct {
	dao InscriptionDAO
}

func NewInscriptionRepository(dao InscriptionDAO) *InscriptionRepository {
	return &InscriptionRepository{
		dao: dao,
	}
}

func (r *InscriptionRepository) Create(ctx context.Context, inscription domain.Inscription) (domain.Inscription, error) {
	created, err := r.dao.Insert(ctx, dao.Inscription{
		CompetitorID:  inscription.CompetitorID,
		EventID:       inscription.EventID,
		CategoryID:    inscription.CategoryID,
		RegisterDate:  inscription.RegisterDate,
		PaymentStatus: string(inscription.PaymentStatus),
	})
	if err != nil {
		return domain.Inscription{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *InscriptionRepository) FindByID(ctx context.Context, id uint) (domain.Inscription, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Inscription{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *InscriptionRepository) FindAll(ctx context.Context) ([]domain.Inscription, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *InscriptionRepository) FindByCompetitor(ctx context.Context, competitorID uint) ([]domain.Inscription, error) {
	found, err := r.dao.FindByCompetitor(ctx, competitorID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByCompetitor -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *InscriptionRepository) FindByEvent(ctx context.Context, eventID uint) ([]domain.Inscription, error) {
	found, err := r.dao.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEvent -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *InscriptionRepository) FindByEventAndCategory(ctx context.Context, eventID, categoryID uint) ([]domain.Inscription, error) {
	found, err := r.dao.FindByEventAndCategory(ctx, eventID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventAndCategory -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *InscriptionRepository) FindByPaymentStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Inscription, error) {
	found, err := r.dao.FindByPaymentStatus(ctx, string(status))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByPaymentStatus -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *InscriptionRepository) FindByEventAndPaymentStatus(ctx context.Context, eventID uint, status domain.PaymentStatus) ([]domain.Inscription, error) {
	found, err := r.dao.FindByEventAndPaymentStatus(ctx, eventID, string(status))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventAndPaymentStatus -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *InscriptionRepository) CountByEventAndPaymentStatus(ctx context.Context, eventID uint, status domain.PaymentStatus) (int64, error) {
	count, err := r.dao.CountByEventAndPaymentStatus(ctx, eventID, string(status))
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByEventAndPaymentStatus -> %w", err)
	}

	return count, nil
}

func (r *InscriptionRepository) FindByCompetitorAndEvent(ctx context.Context, competitorID, eventID uint) ([]domain.Inscription, error) {
	found, err := r.dao.FindByCompetitorAndEvent(ctx, competitorID, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByCompetitorAndEvent -> %w", err)
	}

	return r.daoToDomainList(found), nil
}

func (r *InscriptionRepository) ExistsByCompetitorAndEvent(ctx context.Context, competitorID, eventID uint) (bool, error) {
	exists, err := r.dao.ExistsByCompetitorAndEvent(ctx, competitorID, eventID)
	if err != nil {
		return false, fmt.Errorf("r.dao.ExistsByCompetitorAndEvent -> %w", err)
	}

	return exists, nil
}

func (r *InscriptionRepository) ExistsByCompetitorEventCategory(ctx context.Context, competitorID, eventID, categoryID uint) (bool, error) {
	exists, err := r.dao.ExistsByCompetitorEventCategory(ctx, competitorID, eventID, categoryID)
	if err != nil {
		return false, fmt.Errorf("r.dao.ExistsByCompetitorEventCategory -> %w", err)
	}

	return exists, nil
}

func (r *InscriptionRepository) Update(ctx context.Context, inscription domain.Inscription) (domain.Inscription, error) {
	updated, err := r.dao.Update(ctx, dao.Inscription{
		ID:            inscription.ID,
		CategoryID:    inscription.CategoryID,
		PaymentStatus: string(inscription.PaymentStatus),
	})
	if err != nil {
		return domain.Inscription{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *InscriptionRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *InscriptionRepository) daoToDomain(i dao.Inscription) domain.Inscription {
	return domain.Inscription{
		ID:            i.ID,
		CompetitorID:  i.CompetitorID,
		EventID:       i.EventID,
		CategoryID:    i.CategoryID,
		RegisterDate:  i.RegisterDate,
		PaymentStatus: domain.PaymentStatus(i.PaymentStatus),
	}
}

func (r *InscriptionRepository) daoToDomainList(inscriptions []dao.Inscription) []domain.Inscription {
	converted := make([]domain.Inscription, 0, len(inscriptions))
	for _, i := range inscriptions {
		converted = append(converted, r.daoToDomain(i))
	}

	return converted
}
