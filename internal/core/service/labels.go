package service

import (
	"github.com/bornholm/readings/internal/core/model"
	"github.com/bornholm/readings/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Unknown items are not used as label values to keep cardinality bounded.
func requestLabels(item model.ItemName, status string) prometheus.Labels {
	return prometheus.Labels{
		metrics.LabelItem:   string(item),
		metrics.LabelStatus: status,
	}
}

func itemLabels(item model.ItemName) prometheus.Labels {
	return prometheus.Labels{
		metrics.LabelItem: string(item),
	}
}
