package repository

import (
	"challenge_hub_backend/internal/model"

	"gorm.io/gorm"
)

type TeamRepository struct {
	DB *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{DB: db}
}

func (r *TeamRepository) Create(team *model.Team) error {
	return r.DB.Create(team).Error
}

func (r *TeamRepository) GetByID(id string) (*model.Team, error) {
	var team model.Team
	err := r.DB.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// 队名区分大小写，唯一
func (r *TeamRepository) GetByName(name string) (*model.Team, error) {
	var team model.Team
	err := r.DB.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepository) List() ([]*model.Team, error) {
	var teams []*model.Team
	err := r.DB.Order("created_at DESC").Find(&teams).Error
	return teams, err
}

func (r *TeamRepository) Update(team *model.Team) error {
	return r.DB.Save(team).Error
}

func (r *TeamRepository) Delete(id string) error {
	return r.DB.Delete(&model.Team{}, "id = ?", id).Error
}

func (r *TeamRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Team{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
