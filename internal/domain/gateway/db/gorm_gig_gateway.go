package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gig-weather/internal/domain/entity"
)

type GormGigGateway struct {
	DB *gorm.DB
}

var _ GigGateway = (*GormGigGateway)(nil)

func NewGormGigGateway(db *gorm.DB) *GormGigGateway {
	return &GormGigGateway{DB: db}
}

func (gateway *GormGigGateway) FindAllOrdered() ([]entity.Gig, error) {
	gigs := make([]entity.Gig, 0)
	err := gateway.DB.Order("created_at DESC, id DESC").Find(&gigs).Error
	if err != nil {
		return nil, err
	}
	return gigs, nil
}

func (gateway *GormGigGateway) FindByID(id string) (*entity.Gig, error) {
	var gig entity.Gig
	err := gateway.DB.First(&gig, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGigNotFound
		}
		return nil, err
	}
	return &gig, nil
}

func (gateway *GormGigGateway) Create(gig entity.Gig) (*entity.Gig, error) {
	if gig.ID == "" {
		gig.ID = uuid.NewString()
	}
	if gig.CreatedAt.IsZero() {
		gig.CreatedAt = time.Now().UTC()
	}

	if err := gateway.DB.Create(&gig).Error; err != nil {
		return nil, err
	}
	return &gig, nil
}

func (gateway *GormGigGateway) DeleteByID(id string) error {
	result := gateway.DB.Delete(&entity.Gig{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGigNotFound
	}
	return nil
}
