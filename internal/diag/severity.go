package diag

// Severity ранжирует диагностики. Находки narrowing-анализа идут как
// SevWarning; ошибки лексера/парсера/семантики — как SevError.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	// SevError влияет на код возврата check даже без --werror.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
