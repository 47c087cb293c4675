package cron

import (
	"vakeel/services/lawyer"
	"vakeel/utils"

	cronv3 "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartPremiumSweeper runs an hourly job demoting profiles whose premium
// window has lapsed, so search ordering reflects current subscriptions. The
// returned scheduler should be stopped on shutdown.
func StartPremiumSweeper(svc lawyer.LawyerService) *cronv3.Cron {
	c := cronv3.New()

	sweep := func() {
		if _, err := svc.ExpireLapsedPremiums(); err != nil {
			utils.GetLogger().Error("Premium sweep failed", zap.Error(err))
		}
	}

	if _, err := c.AddFunc("@hourly", sweep); err != nil {
		utils.GetLogger().Error("Failed to schedule premium sweep", zap.Error(err))
		return c
	}

	// Run once at startup so a restart doesn't leave lapsed premiums in place
	// for up to an hour.
	go sweep()

	c.Start()
	return c
}
