package repository

import (
	"time"

	"challenge_hub_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(sub *model.Submission) error {
	return r.DB.Create(sub).Error
}

// HasCorrect 该队伍在此赛事中是否已答对该题
func (r *SubmissionRepository) HasCorrect(teamID, eventID, challengeID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Submission{}).
		Where("team_id = ? AND event_id = ? AND challenge_id = ? AND is_correct = ?",
			teamID, eventID, challengeID, true).
		Count(&count).Error
	return count > 0, err
}

// CorrectChallengeIDs 去重后的已答对题目，按题目ID排序保证输出稳定
func (r *SubmissionRepository) CorrectChallengeIDs(teamID, eventID string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.Submission{}).
		Distinct("challenge_id").
		Where("team_id = ? AND event_id = ? AND is_correct = ?", teamID, eventID, true).
		Order("challenge_id").
		Pluck("challenge_id", &ids).Error
	return ids, err
}

// LastCorrectAt 最近一次正确提交时间，用于排行榜同分裁决
func (r *SubmissionRepository) LastCorrectAt(teamID, eventID string) (time.Time, error) {
	var sub model.Submission
	err := r.DB.
		Where("team_id = ? AND event_id = ? AND is_correct = ?", teamID, eventID, true).
		Order("submitted_at DESC").
		First(&sub).Error
	if err != nil {
		return time.Time{}, err
	}
	return sub.SubmittedAt, nil
}

type TeamRef struct {
	TeamID   string
	TeamName string
}

// TeamsWithCorrect 赛事中至少有一次正确提交的队伍。
// 通过 teams 表内联，已删除队伍的遗留提交不会出现在结果里。
func (r *SubmissionRepository) TeamsWithCorrect(eventID string) ([]TeamRef, error) {
	var refs []TeamRef
	err := r.DB.Table("submissions").
		Select("DISTINCT submissions.team_id AS team_id, teams.name AS team_name").
		Joins("JOIN teams ON teams.id = submissions.team_id").
		Where("submissions.event_id = ? AND submissions.is_correct = ?", eventID, true).
		Scan(&refs).Error
	return refs, err
}

// DeleteOrphans 清除所属队伍已被删除的提交记录
func (r *SubmissionRepository) DeleteOrphans() (int64, error) {
	result := r.DB.
		Where("team_id NOT IN (?)", r.DB.Model(&model.Team{}).Select("id")).
		Delete(&model.Submission{})
	return result.RowsAffected, result.Error
}
