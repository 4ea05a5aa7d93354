package worker

import (
	"github.com/hireboard/recruitment-service/internal/service"
)

// StartActivityWorker registers the audit handlers.
func StartActivityWorker(activityService *service.ActivityService) {
	if activityService == nil {
		return
	}
	activityService.RegisterHandlers()
}
