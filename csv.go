package leadgen

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// CSVFields is the stable field order for CSV export. External
// consumers depend on both order and presence.
var CSVFields = []string{
	"name", "phone", "website", "email", "address",
	"lead_type", "priority_score",
	"facebook", "linkedin", "twitter", "instagram",
	"source",
}

// SanitizeCSVField guards a field value against spreadsheet formula
// injection by prefixing a space when the value begins with a formula
// trigger character.
func SanitizeCSVField(value string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "=") || strings.HasPrefix(value, "+") ||
		strings.HasPrefix(value, "-") || strings.HasPrefix(value, "@") {
		return " " + value
	}
	return value
}

// WriteCSV writes leads to w in the stable CSVFields order, sanitizing
// every value against formula injection.
func WriteCSV(w io.Writer, leads []*Lead) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVFields); err != nil {
		return err
	}

	for _, l := range leads {
		record := []string{
			SanitizeCSVField(l.Name),
			SanitizeCSVField(l.Phone),
			SanitizeCSVField(l.Website),
			SanitizeCSVField(l.Email),
			SanitizeCSVField(l.Address),
			SanitizeCSVField(l.LeadType),
			SanitizeCSVField(strconv.Itoa(l.PriorityScore)),
			SanitizeCSVField(l.Facebook),
			SanitizeCSVField(l.LinkedIn),
			SanitizeCSVField(l.Twitter),
			SanitizeCSVField(l.Instagram),
			SanitizeCSVField(l.Source),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
