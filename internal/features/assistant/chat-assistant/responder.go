package chatassistant

import (
	"context"
	"fmt"
	"strings"

	"college-portal/internal/common/metrics"
)

// Rule names, used as the metrics label.
const (
	RuleEssay    = "essay"
	RuleGPA      = "gpa"
	RuleDeadline = "deadline"
	RuleDefault  = "default"
)

const essayReply = `Great question about essays! Here are some tips for writing compelling personal statements:

**Structure your essay:**
- Start with a compelling hook
- Tell a specific story that shows growth
- Connect your experiences to your goals
- End with what you'll contribute to the college

**Key tips:**
- Be authentic and personal
- Show, don't just tell
- Proofread carefully
- Stay within word limits

Would you like help with any specific part of your essay?`

const gpaReply = `GPA is important, but it's not everything! Here's what you should know:

**If your GPA is strong:**
- Highlight it prominently in your application
- Include relevant coursework and honors

**If your GPA needs context:**
- Explain any circumstances that affected your grades
- Show improvement over time
- Emphasize other strengths like extracurriculars or test scores

Remember, colleges look at the whole picture, not just numbers!`

const deadlineReply = `Application deadlines are crucial! Here's what you need to know:

**Common deadline types:**
- **Early Decision/Action:** Usually November 1-15
- **Regular Decision:** Usually January 1-15
- **Rolling Admissions:** Varies by school

**Tips:**
- Submit at least a week before the deadline
- Check each school's specific requirements
- Don't wait until the last minute
- Consider time zones if submitting online

Would you like help creating a deadline calendar?`

const defaultReplyFormat = `I understand you're asking about "%s". Here are some general tips for college applications:

- **Start early** - Give yourself plenty of time
- **Be authentic** - Show who you really are
- **Proofread everything** - Small errors can make a big impact
- **Follow instructions carefully** - Each school has specific requirements
- **Ask for help** - Teachers, counselors, and family can provide valuable feedback

Is there a specific aspect of your application you'd like to focus on?`

type rule struct {
	name     string
	keywords []string
	reply    string
}

// Checked in order; the first rule with a matching keyword wins.
var rules = []rule{
	{name: RuleEssay, keywords: []string{"essay", "personal statement"}, reply: essayReply},
	{name: RuleGPA, keywords: []string{"gpa", "grades"}, reply: gpaReply},
	{name: RuleDeadline, keywords: []string{"deadline", "when"}, reply: deadlineReply},
}

// ScriptedResponder answers from a fixed set of keyword rules.
type ScriptedResponder struct{}

func (ScriptedResponder) Respond(_ context.Context, text string) (string, error) {
	name, reply := Match(text)
	metrics.ChatMessages.WithLabelValues(name).Inc()
	return reply, nil
}

// Match returns the rule that answers text and its reply.
func Match(text string) (string, string) {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.name, r.reply
			}
		}
	}
	return RuleDefault, fmt.Sprintf(defaultReplyFormat, text)
}
