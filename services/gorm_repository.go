package services

import (
	"errors"

	"conference-management-api/models"

	"gorm.io/gorm"
)

type gormPaperStore struct {
	db *gorm.DB
}

// NewPaperStore returns the MySQL-backed paper store.
func NewPaperStore(db *gorm.DB) PaperStore {
	return &gormPaperStore{db: db}
}

func (s *gormPaperStore) FindByID(id int) (*models.Paper, error) {
	var paper models.Paper
	err := s.db.Preload("Owner").
		Where("paper_id = ? AND delete_at IS NULL", id).
		First(&paper).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("paper %d", id)
		}
		return nil, persistencef(err)
	}
	return &paper, nil
}

func (s *gormPaperStore) Save(paper *models.Paper, hist *models.PaperStatusHistory) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(paper).Error; err != nil {
			return err
		}
		if hist != nil {
			if err := tx.Create(hist).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return persistencef(err)
	}
	return nil
}

func (s *gormPaperStore) ListByStatus(status string) ([]models.Paper, error) {
	query := s.db.Preload("Owner").Where("delete_at IS NULL")
	if status != StatusFilterAll {
		query = query.Where("status = ?", status)
	}

	var papers []models.Paper
	if err := query.Order("create_at DESC").Find(&papers).Error; err != nil {
		return nil, persistencef(err)
	}
	return papers, nil
}

func (s *gormPaperStore) ListByOwner(userID int) ([]models.Paper, error) {
	var papers []models.Paper
	err := s.db.Where("user_id = ? AND delete_at IS NULL", userID).
		Order("create_at DESC").
		Find(&papers).Error
	if err != nil {
		return nil, persistencef(err)
	}
	return papers, nil
}

func (s *gormPaperStore) Delete(id int) error {
	result := s.db.Where("paper_id = ?", id).Delete(&models.Paper{})
	if result.Error != nil {
		return persistencef(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFoundf("paper %d", id)
	}
	return nil
}

type gormPaymentStore struct {
	db *gorm.DB
}

// NewPaymentStore returns the MySQL-backed payment store.
func NewPaymentStore(db *gorm.DB) PaymentStore {
	return &gormPaymentStore{db: db}
}

func (s *gormPaymentStore) FindByID(id int) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Preload("Owner").Preload("Paper").
		Where("payment_id = ? AND delete_at IS NULL", id).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("payment %d", id)
		}
		return nil, persistencef(err)
	}
	return &payment, nil
}

func (s *gormPaymentStore) Save(payment *models.Payment, hist *models.PaymentStatusHistory) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(payment).Error; err != nil {
			return err
		}
		if hist != nil {
			if err := tx.Create(hist).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return persistencef(err)
	}
	return nil
}

func (s *gormPaymentStore) ListByStatus(status string) ([]models.Payment, error) {
	query := s.db.Preload("Owner").Preload("Paper").Where("delete_at IS NULL")
	if status != StatusFilterAll {
		query = query.Where("status = ?", status)
	}

	var payments []models.Payment
	if err := query.Order("create_at DESC").Find(&payments).Error; err != nil {
		return nil, persistencef(err)
	}
	return payments, nil
}

func (s *gormPaymentStore) ListByOwner(userID int) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Where("user_id = ? AND delete_at IS NULL", userID).
		Order("create_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, persistencef(err)
	}
	return payments, nil
}

const committeeOrder = "display_order ASC, member_id ASC"

type gormCommitteeStore struct {
	db *gorm.DB
}

// NewCommitteeStore returns the MySQL-backed committee store.
func NewCommitteeStore(db *gorm.DB) CommitteeStore {
	return &gormCommitteeStore{db: db}
}

func (s *gormCommitteeStore) ListActive(category string, offset, limit int) ([]models.CommitteeMember, int64, error) {
	base := s.db.Model(&models.CommitteeMember{}).
		Where("is_active = ? AND delete_at IS NULL", true)
	if category != "" {
		base = base.Where("category = ?", category)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, persistencef(err)
	}

	var members []models.CommitteeMember
	err := base.Order(committeeOrder).
		Offset(offset).
		Limit(limit).
		Find(&members).Error
	if err != nil {
		return nil, 0, persistencef(err)
	}
	return members, total, nil
}

func (s *gormCommitteeStore) ListAll(category string) ([]models.CommitteeMember, error) {
	query := s.db.Where("delete_at IS NULL")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var members []models.CommitteeMember
	if err := query.Order(committeeOrder).Find(&members).Error; err != nil {
		return nil, persistencef(err)
	}
	return members, nil
}
