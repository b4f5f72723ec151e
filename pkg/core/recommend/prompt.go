package recommend

import (
	"fmt"
	"strings"

	"findash/pkg/core/scoring"
)

const scoringSystemPrompt = `You are a senior equity analyst ranking dashboard metrics for a retail investor.
Score how important each listed metric is for evaluating the given company, on a 1-10 integer scale.
Spread your scores across the full range: no single score value may cover more than 15% of the metrics.
Reserve 9-10 and 1-2 for true extremes, and use both ends.
Respond with JSON only, no prose outside the JSON object.`

// BuildPrompt serializes the scoring request into the user prompt. The
// response contract (scoredMetrics array keyed by the exact labels) is
// spelled out so parsing can match labels back to catalog entries.
func BuildPrompt(req scoring.Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Company: %s", req.Ticker)
	if req.Name != "" {
		fmt.Fprintf(&b, " (%s)", req.Name)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Industry: %s\n", req.Industry)
	if len(req.Competitors) > 0 {
		fmt.Fprintf(&b, "Competitors: %s\n", strings.Join(req.Competitors, ", "))
	}

	if p := req.Preferences; p != nil {
		b.WriteString("Investor preferences:\n")
		if len(p.FocusAreas) > 0 {
			fmt.Fprintf(&b, "- focus areas: %s\n", strings.Join(p.FocusAreas, ", "))
		}
		if p.TimeHorizon != "" {
			fmt.Fprintf(&b, "- time horizon: %s\n", p.TimeHorizon)
		}
		if p.RiskTolerance != "" {
			fmt.Fprintf(&b, "- risk tolerance: %s\n", p.RiskTolerance)
		}
	}

	b.WriteString("\nMetrics to score (use these exact names):\n")
	for _, m := range req.Metrics {
		fmt.Fprintf(&b, "- %s\n", m.Label)
	}

	b.WriteString(`
Return a JSON object with this shape:
{
  "scoredMetrics": [{"metric": "<exact metric name>", "score": <1-10>, "explanation": "<one sentence, only for scores 8+>"}],
  "dashboardAnalysis": "<2-3 sentence markdown summary of what matters most for this company>",
  "competitiveInsights": "<1-2 sentences comparing against the listed competitors, or omit>"
}
`)

	return b.String()
}
