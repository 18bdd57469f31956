package usecase

import (
	"github.com/openroads/trafficmon/internal/pkg/models"
	"github.com/openroads/trafficmon/services/monitoring"
)

// MonitoringUC implements the monitoring use case interface
type MonitoringUC struct {
	cfg            *models.Config
	monitoringRepo monitoring.MonitoringRepo
	monitoringGW   monitoring.MonitoringGW
}

// NewMonitoringUC creates a new monitoring use case
func NewMonitoringUC(
	cfg *models.Config,
	monitoringRepo monitoring.MonitoringRepo,
	monitoringGW monitoring.MonitoringGW,
) *MonitoringUC {
	return &MonitoringUC{
		cfg:            cfg,
		monitoringRepo: monitoringRepo,
		monitoringGW:   monitoringGW,
	}
}
