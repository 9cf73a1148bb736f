package usecase

// BatchFailure records one row or recipient that could not be processed.
type BatchFailure struct {
	Identifier string `json:"identifier"`
	Reason     string `json:"reason"`
}

// BatchOutcome is the aggregate result of one import or campaign run.
// Per-row failures never abort the batch; they land here instead.
type BatchOutcome struct {
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	Total     int            `json:"total"`
	Failures  []BatchFailure `json:"failures,omitempty"`
}

func (o *BatchOutcome) recordSuccess() {
	o.Succeeded++
	o.Total++
}

func (o *BatchOutcome) recordFailure(identifier, reason string) {
	o.Failed++
	o.Total++
	o.Failures = append(o.Failures, BatchFailure{Identifier: identifier, Reason: reason})
}

type SchemaFieldInput struct {
	Title         string `json:"title"`
	FallbackValue string `json:"fallback_value"`
}

type CreateListInput struct {
	Title  string             `json:"title"`
	Fields []SchemaFieldInput `json:"fields"`
}

type ImportSubscribersOutput struct {
	BatchOutcome
	// ReportFile names the failed-records artifact. Empty when every row
	// imported cleanly.
	ReportFile string `json:"failed_records_file,omitempty"`
}

type SendCampaignInput struct {
	ListID  string `json:"list_id"`
	Subject string `json:"subject"`
}
