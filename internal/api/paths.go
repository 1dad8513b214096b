package api

// GJSON paths into the service replies
const (
	PathSymptomList  = "symptoms"
	PathError        = "error"
	PathDisease      = "disease"
	PathConfidence   = "confidence"
	PathSymptomsUsed = "symptoms_used"
)
