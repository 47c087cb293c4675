package lawyer

import (
	"time"

	"vakeel/utils"

	"go.uber.org/zap"
)

// ExpireLapsedPremiums demotes every profile whose premium window has passed,
// so a lapsed subscription stops biasing search ordering.
func (s *DefaultLawyerService) ExpireLapsedPremiums() (int64, error) {
	demoted, err := s.Repo.ExpireLapsedPremiums(time.Now())
	if err != nil {
		utils.GetLogger().Error("ExpireLapsedPremiums: sweep failed", zap.Error(err))
		return 0, err
	}
	if demoted > 0 {
		utils.GetLogger().Info("Premium sweep demoted lapsed profiles", zap.Int64("count", demoted))
	}
	return demoted, nil
}
