package generator

import (
	"strings"

	"github.com/coachlabs/interview-coach/internal/interview"
)

// knownTechnologies maps detection keywords to display names used when
// templating fallback questions. Ordered, so detection is deterministic.
var knownTechnologies = []struct {
	keyword string
	display string
}{
	{"python", "Python"},
	{"go ", "Go"},
	{"golang", "Go"},
	{"java ", "Java"},
	{"javascript", "JavaScript"},
	{"typescript", "TypeScript"},
	{"react", "React"},
	{"machine learning", "machine learning"},
	{"deep learning", "deep learning"},
	{"tensorflow", "TensorFlow"},
	{"pytorch", "PyTorch"},
	{"sql", "SQL"},
	{"aws", "AWS"},
	{"kubernetes", "Kubernetes"},
	{"docker", "Docker"},
}

const topicPlaceholder = "{{TOPIC}}"

// fallbackBank is the curated static question bank used when the model call
// fails, times out, or comes back malformed. Three entries per category keeps
// the bank comfortably above the ten-question requirement even with the
// per-category cap applied.
var fallbackBank = map[interview.FocusCategory][]string{
	interview.CategoryProjectExperience: {
		"Walk me through a project you worked on recently. What was your role and what did you deliver?",
		"I see you have experience with {{TOPIC}}. Can you describe a specific project where you used it and the challenges you faced?",
		"Tell me about the technical architecture of one of the projects on your resume.",
	},
	interview.CategoryTechnicalSkill: {
		"What are your strongest technical skills and how have you applied them in your previous roles?",
		"Walk me through your approach to debugging a complex technical issue.",
		"How do you ensure code quality in your projects?",
	},
	interview.CategoryAchievement: {
		"What do you consider your greatest professional achievement and why?",
		"Tell me about a time your work had a measurable impact. How did you measure it?",
		"Which accomplishment on your resume are you most proud of, and what made it difficult?",
	},
	interview.CategoryBehavioral: {
		"Tell me about yourself and walk me through your background.",
		"Describe a situation where you had to work with a difficult team member. How did you handle it?",
		"Tell me about a time when you had to work under pressure or meet a tight deadline.",
	},
	interview.CategoryJobFit: {
		"Why are you interested in this position, and what makes you a strong fit for it?",
		"How do you stay updated with the latest trends and technologies in your field?",
		"What are you looking for in your next role that your current one does not offer?",
	},
}

// fallbackDrafts produces the deterministic fallback question sequence,
// interleaving categories in their canonical order so no category dominates.
// Templated entries are filled with the first technology detected in the
// documents, or dropped when nothing matches.
func fallbackDrafts(resumeText, jdText string) []draft {
	topic := detectTopic(resumeText, jdText)

	categories := interview.Categories()
	var drafts []draft

	// Round-robin across categories: one question per category per round.
	for round := 0; ; round++ {
		added := false
		for _, category := range categories {
			bank := fallbackBank[category]
			if round >= len(bank) {
				continue
			}

			text := bank[round]
			if strings.Contains(text, topicPlaceholder) {
				if topic == "" {
					continue
				}
				text = strings.ReplaceAll(text, topicPlaceholder, topic)
			}

			drafts = append(drafts, draft{text: text, category: category})
			added = true
		}
		if !added {
			return drafts
		}
	}
}

func detectTopic(resumeText, jdText string) string {
	haystack := strings.ToLower(resumeText + " " + jdText)
	for _, tech := range knownTechnologies {
		if strings.Contains(haystack, tech.keyword) {
			return tech.display
		}
	}
	return ""
}
