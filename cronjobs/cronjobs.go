package cronjobs

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"go-riskmonitor/controller"
)

// InitCronJobs schedules the dataset heartbeat: a periodic log line with the
// loaded row count and the global KPI values. It only reads the app context;
// nothing is ever recomputed after startup. Returns the started cron so the
// caller can stop it on shutdown.
func InitCronJobs(appCtx *controller.Context, spec string) (*cron.Cron, error) {
	log := zap.S()
	log.Infow("starting cron jobs", "heartbeat", spec)

	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		log.Infow("dataset heartbeat",
			"rows", len(appCtx.Data),
			"totalFatalities", controller.FormatFatalities(appCtx.Global.TotalFatalities),
			"meanTeis", controller.FormatTEIS(appCtx.Global.MeanTEIS),
			"years", len(appCtx.Global.Yearly),
			"regressionFit", appCtx.Line.OK,
		)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
