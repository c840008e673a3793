package narrator

import (
	"strconv"
	"strings"

	"indicomp/internal/models"
	"indicomp/internal/regional"
)

const requests = `Please provide:
1. Key performance patterns and trends
2. Top and bottom performers with explanations
3. Strategic recommendations for improvement
4. Policy implications and next steps
5. Comparative advantages and challenges

Keep the analysis practical and actionable.`

const findingsRequest = "Please summarize the top 5 key findings as bullet points starting with '•'."

// BuildPrompt renders the analysis request. Only entities present in the
// dataset get a data block, and only their valid values are listed. The
// output depends on nothing but its arguments.
func BuildPrompt(ds *models.Dataset, entities, indicators []string, scopeLabel string) string {
	var b strings.Builder

	b.WriteString("As an expert data analyst, provide comprehensive insights for this ")
	b.WriteString(scopeLabel)
	b.WriteString(" comparison:\n\n")
	b.WriteString("Entities analyzed: " + strings.Join(entities, ", ") + "\n")
	b.WriteString("Metrics: " + strings.Join(indicators, ", ") + "\n\n")
	b.WriteString("Data summary:\n")

	present := make(map[string]bool, ds.Len())
	for _, name := range ds.Names() {
		present[name] = true
	}

	for _, entity := range entities {
		if !present[entity] {
			continue
		}

		b.WriteString("\n" + entity + ":\n")

		for _, ind := range indicators {
			v := ds.Value(entity, ind)
			if !v.Valid {
				continue
			}

			b.WriteString("  - " + ind + ": " + strconv.FormatFloat(v.Number, 'f', -1, 64) + "\n")
		}
	}

	if ds != nil && ds.Scope.IsRegional() {
		b.WriteString("\nNote: " + regional.Disclaimer + "\n")
	}

	b.WriteString("\n" + requests + "\n")

	return b.String()
}

func buildFindingsPrompt(ds *models.Dataset, entities, indicators []string, scopeLabel string) string {
	return BuildPrompt(ds, entities, indicators, scopeLabel) + "\n" + findingsRequest + "\n"
}

// bullets keeps the lines that start with a bullet, at most limit of them.
func bullets(text string, limit int) []string {
	var out []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "•") {
			continue
		}

		out = append(out, line)
		if len(out) == limit {
			break
		}
	}

	return out
}
