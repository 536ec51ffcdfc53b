package service

import (
	"challenge_hub_backend/internal/catalog"
	"challenge_hub_backend/internal/util"
)

// ChallengeService 对外暴露目录内容（始终不含答案）
type ChallengeService struct {
	Catalog *catalog.Catalog
}

func NewChallengeService(cat *catalog.Catalog) *ChallengeService {
	return &ChallengeService{Catalog: cat}
}

func (s *ChallengeService) List(category string) []catalog.View {
	var challenges []catalog.Challenge
	if category != "" {
		challenges = s.Catalog.ByCategory(category)
	} else {
		challenges = s.Catalog.All()
	}

	views := make([]catalog.View, 0, len(challenges))
	for i := range challenges {
		views = append(views, challenges[i].Public())
	}
	return views
}

func (s *ChallengeService) Get(id string) (catalog.View, error) {
	ch, ok := s.Catalog.ByID(id)
	if !ok {
		return catalog.View{}, util.ErrChallengeNotFound
	}
	return ch.Public(), nil
}
