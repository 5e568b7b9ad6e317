package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashlingo/internal/exam"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Start an exam directly",
	Example: `  flashlingo exam --lang english --set exam_03`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := setIDFromFlags(cmd)
		if err != nil {
			return err
		}
		return runApp(cmd, runOptions{setID: id})
	},
}

func init() {
	examCmd.Flags().String("set", "", "Question set key, e.g. exam_01 (required)")
	_ = examCmd.MarkFlagRequired("set")
}

// setIDFromFlags combines --lang (default english) and --set.
func setIDFromFlags(cmd *cobra.Command) (exam.SetID, error) {
	key, _ := cmd.Flags().GetString("set")
	if key == "" {
		return exam.SetID{}, errors.New("--set is required")
	}
	lang := language(cmd)
	if lang == "" {
		lang = "english"
	}
	return exam.SetID{Language: lang, Key: key}, nil
}
