package metrics

import "time"

// NopCollector — реализация Collector, которая ничего не делает.
// Используется когда метрики отключены.
type NopCollector struct{}

// NewNopCollector создаёт Collector, игнорирующий все записи.
func NewNopCollector() Collector {
	return &NopCollector{}
}

// RecordLogWrite ничего не делает.
func (n *NopCollector) RecordLogWrite(_ string) {}

// RecordDispatch ничего не делает.
func (n *NopCollector) RecordDispatch(_ bool, _ time.Duration) {}

// RecordRequest ничего не делает.
func (n *NopCollector) RecordRequest(_ string, _ int, _ time.Duration) {}
