package entities

// KPIRecord holds a technician's monthly scores.
//
// Uniqueness: at most one record per (TechnicianID, Period). ID is a surrogate
// generated the first time the pair is seen.
type KPIRecord struct {
	ID                string  `json:"id"`
	TechnicianID      string  `json:"technician_id"`
	Period            string  `json:"period"`
	SatisfactionScore float64 `json:"satisfaction_score"`
	CompletionRate    float64 `json:"completion_rate"`
	TimelinessRate    float64 `json:"timeliness_rate"`
	ComplianceScore   float64 `json:"compliance_score"`
}

// KPIKey is the composite natural key of a KPIRecord.
type KPIKey struct {
	TechnicianID string
	Period       string
}

func (k KPIRecord) Key() KPIKey {
	return KPIKey{TechnicianID: k.TechnicianID, Period: k.Period}
}

// KPIPatch is a partial KPI update. Nil score fields are left untouched when
// merged into an existing record and default to zero on creation.
type KPIPatch struct {
	TechnicianID      string   `json:"technician_id"`
	Period            string   `json:"period"`
	SatisfactionScore *float64 `json:"satisfaction_score,omitempty"`
	CompletionRate    *float64 `json:"completion_rate,omitempty"`
	TimelinessRate    *float64 `json:"timeliness_rate,omitempty"`
	ComplianceScore   *float64 `json:"compliance_score,omitempty"`
}

func (p KPIPatch) Key() KPIKey {
	return KPIKey{TechnicianID: p.TechnicianID, Period: p.Period}
}

// Empty reports whether the patch carries no score at all.
func (p KPIPatch) Empty() bool {
	return p.SatisfactionScore == nil && p.CompletionRate == nil &&
		p.TimelinessRate == nil && p.ComplianceScore == nil
}

// MergeInto copies the supplied scores onto rec and returns the result.
func (p KPIPatch) MergeInto(rec KPIRecord) KPIRecord {
	if p.SatisfactionScore != nil {
		rec.SatisfactionScore = *p.SatisfactionScore
	}
	if p.CompletionRate != nil {
		rec.CompletionRate = *p.CompletionRate
	}
	if p.TimelinessRate != nil {
		rec.TimelinessRate = *p.TimelinessRate
	}
	if p.ComplianceScore != nil {
		rec.ComplianceScore = *p.ComplianceScore
	}
	return rec
}

// FullKPIPatch builds a patch that sets all four scores.
func FullKPIPatch(technicianID, period string, satisfaction, completion, timeliness, compliance float64) KPIPatch {
	return KPIPatch{
		TechnicianID:      technicianID,
		Period:            period,
		SatisfactionScore: &satisfaction,
		CompletionRate:    &completion,
		TimelinessRate:    &timeliness,
		ComplianceScore:   &compliance,
	}
}
