//go:generate mockgen -source=metrics_interface.go -destination=mocks/metrics_interface_mock.go -package=mock_interfaces

package interfaces

// IIngestMetrics records import and summarization activity. The Prometheus
// implementation lives in infrastructure/metrics.
type IIngestMetrics interface {
	ObserveRows(kind, outcome string, n int)
	ObserveBatch(kind, result string)
	ObserveSummary(kind, result string)
}
