package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flashlingo",
	Short: "Language exam practice in the terminal",
	Long: `Flashlingo runs multiple-choice language exams in the terminal.

Question sets are read from a content directory, an HTTP content server or a
packed SQLite file. Set an LLM API key (ANTHROPIC_API_KEY, OPENAI_API_KEY,
GEMINI_API_KEY or OPENROUTER_API_KEY) to get explanations for answers.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, runOptions{})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("content", "", "Content directory (overrides FLASHLINGO_CONTENT_DIR, default ./data)")
	pf.String("content-url", "", "Base URL of a content server (overrides FLASHLINGO_CONTENT_URL)")
	pf.String("pack", "", "Packed SQLite content file (overrides FLASHLINGO_PACK)")
	pf.String("redis", "", "Redis address for the content cache (overrides FLASHLINGO_REDIS_ADDR)")
	pf.String("lang", "", "Study language (overrides FLASHLINGO_LANG)")
	pf.String("log-file", "", "Write JSON logs to this file (overrides FLASHLINGO_LOG)")
	pf.Bool("debug", false, "Log at debug level, including LLM prompts")

	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(versionCmd)
}
