// Package advice maps user-reported symptom text to canned guidance.
package advice

import (
	"fmt"
	"strings"
)

// HealthyLabel is used as the referenced issue when the scan found nothing.
const HealthyLabel = "Sağlıklı"

const (
	bleedingAdvice = "Kanama: Diş eti sorunu? Hafif fırçala, C vitamini artır. 2 günde geçmezse muayene."
	genericAdvice  = "Semptom detaylandır: Ağrı tipi, şişlik? Ek bilgi ver."
)

// ForSymptom matches a small fixed keyword set against the symptom text and
// returns canned advice referencing the top finding. It never fails; an
// unmatched symptom yields a prompt to elaborate.
func ForSymptom(symptom string, topIssue string) string {
	if strings.TrimSpace(topIssue) == "" {
		topIssue = HealthyLabel
	}
	lower := strings.ToLower(symptom)
	switch {
	case strings.Contains(lower, "ağrı"):
		return fmt.Sprintf("Ağrı: %s ile ilgili olabilir (zonklama mı?). Ibuprofen al, soğuk kompres uygula. Devam ederse dişçi!", topIssue)
	case strings.Contains(lower, "kanama"):
		return bleedingAdvice
	default:
		return genericAdvice
	}
}
