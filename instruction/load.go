package instruction

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/poiesic/marginalia/core"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// record is the wire form of one instruction.
type record struct {
	Text    string `json:"text"`
	Action  string `json:"action"`
	Page    *int   `json:"page"`
	Comment string `json:"comment"`
	Subject string `json:"subject"`
	Author  string `json:"author"`
}

// Load reads the instruction file at path.
func Load(path string) ([]core.Instruction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	instructions, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return instructions, nil
}

// Parse decodes a JSON array of instructions.
//
// Parse checks structure only. Blank text and unknown actions are left for
// the annotation pipeline, which skips such instructions with a warning.
func Parse(r io.Reader) ([]core.Instruction, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	instructions := make([]core.Instruction, 0, len(records))
	for i, rec := range records {
		page := 0
		if rec.Page != nil {
			if *rec.Page < 1 {
				return nil, fmt.Errorf("%w: instruction %d: %w: %d", ErrMalformed, i, ErrInvalidPage, *rec.Page)
			}
			page = *rec.Page
		}
		instructions = append(instructions, core.Instruction{
			Text:    rec.Text,
			Action:  rec.Action,
			Page:    page,
			Comment: rec.Comment,
			Subject: rec.Subject,
			Author:  rec.Author,
		})
	}
	return instructions, nil
}

// Encode writes instructions in the format Parse reads.
func Encode(w io.Writer, instructions []core.Instruction) error {
	records := make([]record, len(instructions))
	for i, ins := range instructions {
		records[i] = record{
			Text:    ins.Text,
			Action:  ins.Action,
			Comment: ins.Comment,
			Subject: ins.Subject,
			Author:  ins.Author,
		}
		if ins.Page > 0 {
			page := ins.Page
			records[i].Page = &page
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
