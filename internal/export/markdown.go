package export

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/abhisek/interviewsprint/internal/prep"
)

func writeMarkdown(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# 48-Hour Interview Survival Kit")
	if !doc.GeneratedAt.IsZero() {
		fmt.Fprintf(bw, "\n_Generated %s_\n", doc.GeneratedAt.Format("2006-01-02 15:04"))
	}

	if len(doc.Roadmap) > 0 {
		fmt.Fprintln(bw, "\n## Roadmap")
		for _, plan := range prep.GroupByDay(doc.Roadmap) {
			fmt.Fprintf(bw, "\n### Day %d\n\n", plan.Day)
			for _, it := range plan.Items {
				fmt.Fprintf(bw, "- **%s** %s (%s): %s\n", it.TimeRange, it.Activity, it.FocusArea, it.Details)
			}
		}
	}

	writeQuestions(bw, "SQL Questions", doc.SQL)
	writeQuestions(bw, "DSA Questions", doc.DSA)

	return bw.Flush()
}

func writeQuestions(w io.Writer, title string, qs []prep.Question) {
	if len(qs) == 0 {
		return
	}
	fmt.Fprintf(w, "\n## %s\n", title)
	for i, q := range qs {
		fmt.Fprintf(w, "\n### %d. %s\n\n", i+1, q.Question)

		meta := []string{string(q.Difficulty)}
		if q.Level != "" {
			meta = append(meta, string(q.Level))
		}
		meta = append(meta, q.Topic)
		fmt.Fprintf(w, "_%s_\n\n", strings.Join(meta, " · "))

		if looksLikeCode(q.Answer) {
			fmt.Fprintf(w, "```%s\n%s\n```\n", fenceLang(q.Category), strings.TrimSpace(q.Answer))
		} else {
			fmt.Fprintln(w, strings.TrimSpace(q.Answer))
		}
	}
}

var codeHint = regexp.MustCompile(`(?m)^\s*(SELECT|WITH|INSERT|UPDATE|DELETE|CREATE)\b|^\s{4}\S|[{};]\s*$`)

// looksLikeCode reports whether an answer carries a query or code block
// that should keep its line breaks and indentation. Answers that already
// contain a fence are left alone.
func looksLikeCode(answer string) bool {
	if strings.Contains(answer, "```") {
		return false
	}
	return codeHint.MatchString(answer)
}

func fenceLang(c prep.Category) string {
	if c == prep.CategorySQL {
		return "sql"
	}
	return ""
}
