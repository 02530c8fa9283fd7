package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/rohits-web03/quickdrop/internal/config"
)

func configWithoutBucket() config.R2Config {
	return config.R2Config{AccountID: "acc", AccessKeyID: "id", SecretAccessKey: "secret"}
}

func TestReportKey(t *testing.T) {
	at := time.Date(2024, 3, 1, 23, 4, 5, 0, time.FixedZone("ICT", 7*3600))
	if got, want := ReportKey(at), "reports/2024/03/01/160405.html"; got != want {
		t.Errorf("ReportKey() = %q, want %q", got, want)
	}
}

func TestNewReportStoreUsesCustomEndpoint(t *testing.T) {
	store, err := NewReportStore(config.R2Config{
		AccessKeyID:     "id",
		SecretAccessKey: "secret",
		BucketName:      "reports",
		Region:          "auto",
		Endpoint:        "http://localhost:9000",
	})
	if err != nil {
		t.Fatalf("NewReportStore() error = %v", err)
	}
	if store.endpoint != "http://localhost:9000" || store.bucket != "reports" {
		t.Errorf("unexpected store %+v", store)
	}
}

func TestNewReportStoreRequiresConfig(t *testing.T) {
	if _, err := NewReportStore(configWithoutBucket()); !errors.Is(err, ErrReportStoreDisabled) {
		t.Errorf("expected ErrReportStoreDisabled, got %v", err)
	}
}
