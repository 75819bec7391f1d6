package amqp

import (
	"encoding/json"
	"testing"
)

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func TestReportMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := ReportMessageFromJSON([]byte("{not json")); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewReportMessageStampsUTC(t *testing.T) {
	m := NewReportMessage("id", "sqlite", "victims", 1, 0, nil)
	if m.GeneratedAt.IsZero() || m.GeneratedAt.Location().String() != "UTC" {
		t.Fatalf("unexpected timestamp %v", m.GeneratedAt)
	}
}
