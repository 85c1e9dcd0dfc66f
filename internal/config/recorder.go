package config

import "github.com/knadh/koanf/v2"

const (
	recorderDisabledKey = "reminder_events_disabled"

	influxDBURLKey    = "influxdb_url"
	influxDBTokenKey  = "influxdb_token"
	influxDBOrgKey    = "influxdb_org"
	influxDBBucketKey = "influxdb_bucket"

	bigQueryProjectIDKey  = "bigquery_project_id"
	bigQueryDatasetKey    = "bigquery_dataset"
	bigQueryTableKey      = "bigquery_table"
	googleCloudProjectKey = "google_cloud_project"
)

type RecorderConfig struct {
	Disabled bool

	InfluxDBURL    string
	InfluxDBToken  string
	InfluxDBOrg    string
	InfluxDBBucket string

	BigQueryProjectID string
	BigQueryDataset   string
	BigQueryTable     string
}

func loadRecorderConfig(k *koanf.Koanf) *RecorderConfig {
	projectID := k.String(bigQueryProjectIDKey)
	if projectID == "" {
		projectID = k.String(googleCloudProjectKey)
	}

	return &RecorderConfig{
		Disabled: k.String(recorderDisabledKey) == "true",

		InfluxDBURL:    k.String(influxDBURLKey),
		InfluxDBToken:  k.String(influxDBTokenKey),
		InfluxDBOrg:    k.String(influxDBOrgKey),
		InfluxDBBucket: k.String(influxDBBucketKey),

		BigQueryProjectID: projectID,
		BigQueryDataset:   k.String(bigQueryDatasetKey),
		BigQueryTable:     k.String(bigQueryTableKey),
	}
}
