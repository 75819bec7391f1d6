package amqp

import (
	"encoding/json"
	"time"

	"wolfstats/internal/core"
)

// ReportMessage carries the chart triples of one report run.
type ReportMessage struct {
	RunID       string             `json:"run_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Backend     string             `json:"backend"`
	Metric      string             `json:"metric"`
	Records     int                `json:"records"`
	Excluded    int                `json:"excluded"`
	Series      []core.SeriesPoint `json:"series"`
}

// NewReportMessage stamps the message with the current time.
func NewReportMessage(runID, backend, metric string, records, excluded int, series []core.SeriesPoint) *ReportMessage {
	return &ReportMessage{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		Backend:     backend,
		Metric:      metric,
		Records:     records,
		Excluded:    excluded,
		Series:      series,
	}
}

// ToJSON converts the message to JSON bytes
func (m *ReportMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReportMessageFromJSON creates a message from JSON bytes
func ReportMessageFromJSON(data []byte) (*ReportMessage, error) {
	var msg ReportMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
