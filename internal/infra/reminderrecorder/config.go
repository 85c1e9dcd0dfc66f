package reminderrecorder

type Config struct {
	Disabled bool

	InfluxDBURL    string
	InfluxDBToken  string
	InfluxDBOrg    string
	InfluxDBBucket string

	BigQueryProjectID string
	BigQueryDataset   string
	BigQueryTable     string
}
