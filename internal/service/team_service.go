package service

import (
	"errors"

	"challenge_hub_backend/internal/model"
	"challenge_hub_backend/internal/repository"
	"challenge_hub_backend/internal/util"

	"gorm.io/gorm"
)

type TeamService struct {
	Teams       *repository.TeamRepository
	Submissions *repository.SubmissionRepository
	HintReveals *repository.HintRevealRepository
}

func NewTeamService(teams *repository.TeamRepository, subs *repository.SubmissionRepository, hints *repository.HintRevealRepository) *TeamService {
	return &TeamService{Teams: teams, Submissions: subs, HintReveals: hints}
}

func (s *TeamService) Create(req *model.TeamCreateRequest) (*model.Team, error) {
	_, err := s.Teams.GetByName(req.Name)
	if err == nil {
		return nil, util.ErrTeamNameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	team := &model.Team{
		Name:        req.Name,
		Members:     req.Members,
		WorkspaceID: req.WorkspaceID,
	}
	if err := s.Teams.Create(team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *TeamService) List() ([]*model.Team, error) {
	return s.Teams.List()
}

func (s *TeamService) Get(id string) (*model.Team, error) {
	team, err := s.Teams.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTeamNotFound
	}
	if err != nil {
		return nil, err
	}
	return team, nil
}

// Update 只有成员列表可变
func (s *TeamService) Update(id string, req *model.TeamUpdateRequest) (*model.Team, error) {
	team, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Members != nil {
		team.Members = *req.Members
		if err := s.Teams.Update(team); err != nil {
			return nil, err
		}
	}
	return team, nil
}

// Delete 不级联：该队伍的提交和提示记录会成为孤儿，
// 排行榜查询经由 teams 表联接所以不受影响，清理走 CleanupOrphanHistory。
func (s *TeamService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Teams.Delete(id)
}

// CleanupOrphanHistory 删除所属队伍已不存在的提交与提示记录
func (s *TeamService) CleanupOrphanHistory() (submissions, hintReveals int64, err error) {
	submissions, err = s.Submissions.DeleteOrphans()
	if err != nil {
		return 0, 0, err
	}
	hintReveals, err = s.HintReveals.DeleteOrphans()
	if err != nil {
		return submissions, 0, err
	}
	return submissions, hintReveals, nil
}
