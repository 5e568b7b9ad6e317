package content

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/flashlingo/internal/exam"
)

// Keys every record carries. Anything else ends up in exam.Question.Extra.
const (
	keyQuestion = "question"
	keyOptions  = "options"
	keyAnswer   = "answer"
)

// DecodeSet validates and decodes a question set file. Any malformed record
// fails the whole set.
func DecodeSet(data []byte) ([]exam.Question, error) {
	if err := ValidateSet(data); err != nil {
		return nil, err
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode question set: %w", err)
	}

	questions := make([]exam.Question, 0, len(raw))
	for i, rec := range raw {
		q, err := decodeRecord(rec)
		if err != nil {
			return nil, &RecordError{Index: i, Err: err}
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func decodeRecord(rec map[string]json.RawMessage) (exam.Question, error) {
	var q exam.Question
	if err := json.Unmarshal(rec[keyQuestion], &q.Text); err != nil {
		return q, fmt.Errorf("question: %w", err)
	}
	if err := json.Unmarshal(rec[keyOptions], &q.Options); err != nil {
		return q, fmt.Errorf("options: %w", err)
	}
	if err := json.Unmarshal(rec[keyAnswer], &q.Answer); err != nil {
		return q, fmt.Errorf("answer: %w", err)
	}
	if err := q.Validate(); err != nil {
		return q, err
	}

	for k, v := range rec {
		switch k {
		case keyQuestion, keyOptions, keyAnswer:
			continue
		}
		if q.Extra == nil {
			q.Extra = make(map[string]string)
		}
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			q.Extra[k] = s
		} else {
			q.Extra[k] = string(v)
		}
	}
	return q, nil
}

// EncodeSet writes questions in the file format DecodeSet reads.
func EncodeSet(questions []exam.Question) ([]byte, error) {
	out := make([]map[string]any, len(questions))
	for i, q := range questions {
		rec := make(map[string]any, len(q.Extra)+3)
		for k, v := range q.Extra {
			rec[k] = v
		}
		rec[keyQuestion] = q.Text
		rec[keyOptions] = q.Options
		rec[keyAnswer] = q.Answer
		out[i] = rec
	}
	return json.MarshalIndent(out, "", "  ")
}
