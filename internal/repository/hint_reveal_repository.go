package repository

import (
	"challenge_hub_backend/internal/model"

	"gorm.io/gorm"
)

type HintRevealRepository struct {
	DB *gorm.DB
}

func NewHintRevealRepository(db *gorm.DB) *HintRevealRepository {
	return &HintRevealRepository{DB: db}
}

func (r *HintRevealRepository) Create(reveal *model.HintReveal) error {
	return r.DB.Create(reveal).Error
}

func (r *HintRevealRepository) Get(teamID, eventID, challengeID string, level int) (*model.HintReveal, error) {
	var reveal model.HintReveal
	err := r.DB.
		Where("team_id = ? AND event_id = ? AND challenge_id = ? AND hint_level = ?",
			teamID, eventID, challengeID, level).
		First(&reveal).Error
	if err != nil {
		return nil, err
	}
	return &reveal, nil
}

// TotalCost 该队伍在此赛事中所有提示花费之和
func (r *HintRevealRepository) TotalCost(teamID, eventID string) (int, error) {
	var total int64
	err := r.DB.Model(&model.HintReveal{}).
		Where("team_id = ? AND event_id = ?", teamID, eventID).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&total).Error
	return int(total), err
}

func (r *HintRevealRepository) ListByTeamEvent(teamID, eventID string) ([]*model.HintReveal, error) {
	var reveals []*model.HintReveal
	err := r.DB.
		Where("team_id = ? AND event_id = ?", teamID, eventID).
		Order("challenge_id, hint_level").
		Find(&reveals).Error
	return reveals, err
}

// DeleteOrphans 清除所属队伍已被删除的提示记录
func (r *HintRevealRepository) DeleteOrphans() (int64, error) {
	result := r.DB.
		Where("team_id NOT IN (?)", r.DB.Model(&model.Team{}).Select("id")).
		Delete(&model.HintReveal{})
	return result.RowsAffected, result.Error
}
