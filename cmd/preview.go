package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashlingo/internal/exam"
	"github.com/abhisek/flashlingo/internal/tutor"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Take an exam in plain text, without the TUI",
	Long: `Run an exam as a line-oriented quiz on stdin/stdout.

Answer with the option number. An empty line skips the question and "q"
finishes the exam early. Useful for checking a question set before
publishing it.`,
	Example: `  flashlingo preview --lang english --set exam_01 --explain`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := setIDFromFlags(cmd)
		if err != nil {
			return err
		}
		explain, _ := cmd.Flags().GetBool("explain")

		logger, closeLog, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer closeLog()

		src, err := openContent(cmd, logger)
		if err != nil {
			return err
		}
		defer src.Close()

		var svc *tutor.Service
		if explain {
			svc = newTutor(cmd.Context(), logger, cmd.ErrOrStderr())
		}

		p := &previewer{
			ctrl:  exam.NewController(src.Loader),
			tutor: svc,
			in:    bufio.NewScanner(cmd.InOrStdin()),
			out:   cmd.OutOrStdout(),
		}
		return p.run(cmd.Context(), id)
	},
}

func init() {
	previewCmd.Flags().String("set", "", "Question set key, e.g. exam_01 (required)")
	previewCmd.Flags().Bool("explain", false, "Ask the tutor to explain each answer")
	_ = previewCmd.MarkFlagRequired("set")
}

type previewer struct {
	ctrl  *exam.Controller
	tutor *tutor.Service
	in    *bufio.Scanner
	out   io.Writer
}

func (p *previewer) run(ctx context.Context, id exam.SetID) error {
	if err := p.ctrl.Start(ctx, id); err != nil {
		return err
	}
	snap := p.ctrl.Snapshot()
	fmt.Fprintf(p.out, "%s: %d questions\n\n", id, snap.Total)

	for p.ctrl.Session().Status() == exam.StatusInProgress {
		pres, err := p.ctrl.Present()
		if errors.Is(err, exam.ErrSessionFinished) {
			break
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(p.out, "── %s ──\n", exam.StatusLine(p.ctrl.Snapshot()))
		fmt.Fprintln(p.out, pres.Text())
		for j, opt := range pres.Options {
			fmt.Fprintf(p.out, "  %d) %s\n", j+1, opt)
		}

		fmt.Fprint(p.out, "\nYour answer: ")
		if !p.in.Scan() {
			fmt.Fprintln(p.out, "\n(input closed)")
			if err := p.ctrl.Finish(); err != nil {
				return err
			}
			break
		}
		answer := strings.TrimSpace(p.in.Text())

		switch answer {
		case "q":
			err = p.ctrl.Finish()
		case "":
			fmt.Fprint(p.out, "(skipped)\n\n")
			err = p.ctrl.Advance()
		default:
			p.answer(ctx, id, pres, answer)
			err = p.ctrl.Advance()
		}
		if err != nil {
			return err
		}
	}

	sum := p.ctrl.Summary()
	fmt.Fprintf(p.out, "── Summary: %d/%d correct, %d answered ──\n", sum.Score, sum.Total, sum.Answered)
	return nil
}

func (p *previewer) answer(ctx context.Context, id exam.SetID, pres *exam.Presentation, answer string) {
	// Non-numeric input counts as a wrong answer, like an out-of-range index.
	n, err := strconv.Atoi(answer)
	if err != nil {
		n = 0
	}
	res, err := p.ctrl.SubmitAnswer(n - 1)
	if err != nil {
		fmt.Fprintf(p.out, "(not accepted: %v)\n\n", err)
		return
	}

	if res.Correct {
		fmt.Fprintln(p.out, "\033[32m✓ Correct!\033[0m")
	} else {
		fmt.Fprintf(p.out, "\033[31m✗ Wrong.\033[0m Answer: %s\n", pres.Question.CorrectOption())
	}

	if p.tutor != nil {
		in := tutor.Input{
			Language:     id.Language,
			Question:     pres.Question,
			Options:      pres.Options,
			Selected:     res.Selected,
			CorrectIndex: res.CorrectIndex,
		}
		if p.tutor.Available(in) {
			if exp, err := p.tutor.Explain(ctx, in); err != nil {
				fmt.Fprintf(p.out, "Explanation unavailable: %v\n", err)
			} else {
				fmt.Fprintf(p.out, "Explanation: %s\n", exp.Text)
			}
		}
	}
	fmt.Fprintln(p.out)
}
