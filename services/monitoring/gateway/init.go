package gateway

import (
	"github.com/openroads/trafficmon/internal/pkg/nsq"
)

// Publisher is the subset of the NSQ producer the gateway needs. The
// indirection keeps the gateway testable without a running nsqd.
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// MonitoringGW handles monitoring gateway operations
type MonitoringGW struct {
	producer Publisher
}

// NewMonitoringGW creates a new gateway instance over an NSQ producer.
// A nil producer disables event publishing.
func NewMonitoringGW(producer *nsq.Producer) *MonitoringGW {
	if producer == nil {
		return &MonitoringGW{}
	}
	return &MonitoringGW{producer: producer}
}

// NewMonitoringGWWithPublisher wires an arbitrary publisher, used by tests.
func NewMonitoringGWWithPublisher(publisher Publisher) *MonitoringGW {
	return &MonitoringGW{producer: publisher}
}
