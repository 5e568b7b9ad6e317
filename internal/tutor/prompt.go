package tutor

import (
	"fmt"
	"sort"
	"strings"
)

const systemPromptFmt = `You are a patient %s teacher helping a learner review a multiple-choice exam. Explain grammar and vocabulary simply, in English, without jargon the learner would not know.`

func systemPrompt(language string) string {
	if language == "" {
		language = "language"
	}
	return fmt.Sprintf(systemPromptFmt, language)
}

func buildUserMessage(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", in.Question.Text)
	b.WriteString("Options:\n")
	for i, o := range in.Options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, o)
	}
	fmt.Fprintf(&b, "Correct answer: %s\n", in.correctText())

	selected := in.selectedText()
	switch {
	case selected == "":
		b.WriteString("The learner did not choose an option.\n")
	case in.Selected == in.CorrectIndex:
		fmt.Fprintf(&b, "The learner chose %q, which is correct.\n", selected)
	default:
		fmt.Fprintf(&b, "The learner chose %q, which is wrong.\n", selected)
	}

	// Authored extras such as a translation or level help the model pitch
	// the explanation.
	if len(in.Question.Extra) > 0 {
		keys := make([]string, 0, len(in.Question.Extra))
		for k := range in.Question.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString("\nNotes from the exam author:\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "- %s: %s\n", k, in.Question.Extra[k])
		}
	}

	b.WriteString(`
Instructions:
1. Explain in 2-4 sentences why the correct answer is right.
2. If the learner chose wrongly, say in one sentence what is wrong with their choice. Otherwise leave "mistake" empty.
3. Give one short example sentence that uses the correct form.`)

	return b.String()
}
