package worker

import (
	"github.com/chaithanya-077/ridewave-r/internal/service"
)

// StartNotificationWorker registers notification handlers for booking events.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
