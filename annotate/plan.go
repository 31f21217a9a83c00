package annotate

import (
	"log/slog"
	"strings"

	"github.com/poiesic/marginalia/core"
	"github.com/poiesic/marginalia/instruction"
)

// task is one planned instruction and, after the find phase, its hits.
type task struct {
	index   int // position in the instruction list
	needle  string
	action  core.ActionType
	kind    core.CommentKind
	comment string
	subject string
	author  string
	pages   []int         // 1-based pages to search
	hits    [][]core.Quad // parallel to pages
}

func (t *task) infoKey() core.InfoKey {
	return core.InfoKey{
		Action:  t.action,
		Comment: t.comment,
		Subject: t.subject,
		Author:  t.author,
	}
}

// planKey identifies repeated instructions. Needles are compared in their
// normalized form so that reflowed copies of a phrase collapse.
type planKey struct {
	page    int
	action  core.ActionType
	needle  string
	comment string
	subject string
	author  string
}

// plan interprets instructions for a document of numPages pages. Skipped
// instructions are logged; every returned task counts as expected.
func (p *Pipeline) plan(numPages int, instructions []core.Instruction, logger *slog.Logger) []*task {
	seen := make(map[planKey]struct{})
	var tasks []*task

	for i, ins := range instructions {
		needle := instruction.StripTypedPrefix(ins.Text)
		if strings.TrimSpace(needle) == "" {
			logger.Debug("skipping instruction without text", "index", i)
			continue
		}
		action, err := core.ParseAction(ins.Action)
		if err != nil {
			logger.Warn("skipping instruction", "index", i, "action", ins.Action, "err", err)
			continue
		}
		if ins.Page < 0 {
			logger.Warn("skipping instruction", "index", i, "page", ins.Page, "err", core.ErrInvalidPage)
			continue
		}

		kind, comment := instruction.ParseTypedComment(ins.Comment)
		author := ins.Author
		if author == "" {
			author = p.defaultAuthor
		}

		key := planKey{
			page:    ins.Page,
			action:  action,
			needle:  p.searcher.NormalizeKeyText(needle),
			comment: comment,
			subject: ins.Subject,
			author:  author,
		}
		if _, ok := seen[key]; ok {
			logger.Debug("skipping repeated instruction", "index", i)
			continue
		}
		seen[key] = struct{}{}

		t := &task{
			index:   i,
			needle:  needle,
			action:  action,
			kind:    kind,
			comment: comment,
			subject: ins.Subject,
			author:  author,
			pages:   pagesFor(ins.Page, numPages),
		}
		if len(t.pages) == 0 {
			logger.Warn("instruction page outside document", "index", i, "page", ins.Page, "pages", numPages)
		}
		tasks = append(tasks, t)
	}
	return tasks
}

// pagesFor returns the pages an instruction for page searches: all of them
// for 0, none when page is past the end.
func pagesFor(page, numPages int) []int {
	if page > numPages {
		return nil
	}
	if page > 0 {
		return []int{page}
	}
	pages := make([]int, numPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}
