package narrative

import (
	"fmt"
	"strings"

	"github.com/esmanureral/dental-ai-backend/internal/catalog"
)

const (
	closingText = "Size detaylı bir tedavi planı sunabilmem için en kısa sürede bir diş hekimine başvurmanız önemlidir. " +
		"Erken teşhis ve tedavi ile bu durumu kolayca çözebiliriz. Sorularınız varsa lütfen çekinmeden sorun!"

	healthyClosing = "Yine de düzenli diş hekimi kontrollerini ihmal etmeyin. " +
		"Ağız hijyenine devam ederek bu sağlıklı durumu koruyabilirsiniz. Sorularınız varsa lütfen çekinmeden sorun!"

	secondaryFallback = "Bu durum genellikle ciddi değildir, ancak dikkat edilmelidir."
)

// fromTemplate assembles the comment from the condition catalog and the
// formatted findings text, with the 7-day plan looked up by top issue.
func (g *Generator) fromTemplate(findingsText, topIssue string) Result {
	if topIssue == "" {
		comment := "Analiz sonuçlarınızı inceledim. Dişleriniz genel olarak sağlıklı görünüyor! " +
			"Detaylı sonuçlar: " + findingsText + "\n\n" + healthyClosing
		return Result{Comment: comment, Plan: catalog.WeeklyPlan("")}
	}

	findings := splitFindings(findingsText)

	topProb := ""
	if len(findings) > 0 {
		topProb = findings[0].prob
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analiz sonuçlarınızı inceledim. Sonuçlara göre, en yüksek olasılıkla %s ile *%s* tespit edildi. %s\n\n",
		topProb, topIssue, conditionText(topIssue))

	if len(findings) > 1 {
		sec := findings[1]
		fmt.Fprintf(&b, "İkinci en olası bulgu ise %s ile *%s*. %s\n\n", sec.prob, sec.label, conditionText(sec.label))
	}

	b.WriteString("Diğer olasılıklar %1'in altında olduğu için değerlendirmeye alınmamıştır.\n\n")
	b.WriteString(closingText)

	return Result{Comment: b.String(), Plan: catalog.WeeklyPlan(topIssue)}
}

// conditionText renders the catalog's explanation, risk and advice for a
// TR label as one passage, or a mild generic note for unknown labels.
func conditionText(labelTR string) string {
	e, ok := catalog.ByLabelTR(labelTR)
	if !ok {
		return secondaryFallback
	}
	return fmt.Sprintf("%s Risk: %s Öneri: %s", e.Explanation, e.Risk, e.Advice)
}

type finding struct {
	label string
	prob  string
}

// splitFindings parses the headline summary back into (label, probability)
// pairs. Entries look like "Diş Çürüğü (Karies): 82.0%".
func splitFindings(text string) []finding {
	parts := strings.Split(text, ", ")
	out := make([]finding, 0, len(parts))
	for _, p := range parts {
		idx := strings.LastIndex(p, ": ")
		if idx == -1 {
			continue
		}
		out = append(out, finding{
			label: strings.TrimSpace(p[:idx]),
			prob:  strings.TrimSpace(p[idx+2:]),
		})
	}
	return out
}
