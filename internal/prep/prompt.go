package prep

import (
	"fmt"
	"strings"
)

const roadmapSystem = "You are a senior technical interviewer creating a survival guide for a student."

const roadmapPrompt = `Create a strict, high-intensity 48-hour interview preparation roadmap for a fresher computer science graduate.
Focus ONLY on SQL and Data Structures & Algorithms (DSA).
Assume the interview is in 2 days.
Break it down hour-by-hour or in 2-hour blocks.
Day 1 should focus on core concepts and breadth.
Day 2 should focus on complex problems, practice, and revision.
Include breaks.`

var levelInstructions = map[Level]string{
	LevelBasic:    "Focus on foundational concepts, syntax, definitions, and standard fresher-level questions. Difficulty: Easy to Medium.",
	LevelAdvanced: "Focus on complex scenarios, optimization, performance tuning, and advanced features. Difficulty: Medium to Hard.",
	LevelMAANG:    "Focus on high-bar algorithmic thinking, tricky edge cases, scalability, and system design implications. Difficulty: Hard/Expert.",
}

// LevelInstruction returns the guidance sentence sent for a level.
func LevelInstruction(l Level) string {
	return levelInstructions[l]
}

// buildQuestionPrompt renders the single user message for a question call.
func buildQuestionPrompt(c Category, topic string, l Level, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d distinct, practical interview questions for %s.\n", count, c)
	fmt.Fprintf(&b, "Topic: %s.\n", topic)
	fmt.Fprintf(&b, "Level: %s (%s).\n", l, LevelInstruction(l))
	fmt.Fprintf(&b, "Target audience: Fresher/Junior Developer preparing for %s interviews.\n", l)
	b.WriteString("\nThe answer should be concise but complete. For SQL, include the query. For DSA, include the approach or pseudo-code logic.")

	return b.String()
}
