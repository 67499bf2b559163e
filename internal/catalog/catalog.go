package catalog

import "slices"

// Catalog is the immutable question + program configuration.
//
// Questions form an arena in declaration order. Dependency edges are kept as
// indices into that arena, keyed by the parent question id, so the resolver
// can find reachable questions without rescanning the whole list.
type Catalog struct {
	questions []Question
	programs  []Program

	entry      int              // index of the first question without DependsOn, -1 if none
	byID       map[string]int   // question id -> arena index (first occurrence)
	children   map[string][]int // parent question id -> child indices, ascending
	branchSize map[string]int   // RequiredAnswerID -> number of questions requiring it
	programIdx map[string]int   // program id -> index (first occurrence)
}

// New builds a Catalog from flat question and program lists.
// The inputs are copied; later changes to the slices do not leak in.
// New does not validate the data; run RunProtocolChecks for that.
func New(questions []Question, programs []Program) *Catalog {
	c := &Catalog{
		questions:  cloneQuestions(questions),
		programs:   clonePrograms(programs),
		entry:      -1,
		byID:       make(map[string]int, len(questions)),
		children:   make(map[string][]int),
		branchSize: make(map[string]int),
		programIdx: make(map[string]int, len(programs)),
	}

	for i, q := range c.questions {
		if _, dup := c.byID[q.ID]; !dup {
			c.byID[q.ID] = i
		}
		if q.DependsOn == nil {
			if c.entry < 0 {
				c.entry = i
			}
			continue
		}
		c.children[q.DependsOn.QuestionID] = append(c.children[q.DependsOn.QuestionID], i)
		c.branchSize[q.DependsOn.RequiredAnswerID]++
	}

	for i, p := range c.programs {
		if _, dup := c.programIdx[p.ID]; !dup {
			c.programIdx[p.ID] = i
		}
	}

	return c
}

// Questions returns a copy of the questions in catalog order.
func (c *Catalog) Questions() []Question { return cloneQuestions(c.questions) }

// Programs returns a copy of the programs in catalog (priority) order.
func (c *Catalog) Programs() []Program { return clonePrograms(c.programs) }

// Len returns the number of questions.
func (c *Catalog) Len() int { return len(c.questions) }

// At returns the question stored at arena index i.
func (c *Catalog) At(i int) Question { return c.questions[i] }

// Entry returns the persona question. ok is false for a catalog where every
// question has a dependency.
func (c *Catalog) Entry() (Question, bool) {
	if c.entry < 0 {
		return Question{}, false
	}
	return c.questions[c.entry], true
}

// EntryID returns the id of the persona question, or "" when there is none.
func (c *Catalog) EntryID() string {
	if q, ok := c.Entry(); ok {
		return q.ID
	}
	return ""
}

// Question looks up a question by id.
func (c *Catalog) Question(id string) (Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}

// Children returns the arena indices of questions depending on parentID,
// in catalog order. The returned slice must not be modified.
func (c *Catalog) Children(parentID string) []int {
	return c.children[parentID]
}

// BranchSize counts the questions whose RequiredAnswerID equals answerID.
func (c *Catalog) BranchSize(answerID string) int {
	return c.branchSize[answerID]
}

// Program looks up a program by id.
func (c *Catalog) Program(id string) (Program, bool) {
	i, ok := c.programIdx[id]
	if !ok {
		return Program{}, false
	}
	return c.programs[i], true
}

// ProgramAt returns the program at priority position i.
func (c *Catalog) ProgramAt(i int) Program { return c.programs[i] }

// NumPrograms returns the number of programs.
func (c *Catalog) NumPrograms() int { return len(c.programs) }

// Benefits returns the display benefits of a program, nil if unknown.
func (c *Catalog) Benefits(programID string) []string {
	p, ok := c.Program(programID)
	if !ok {
		return nil
	}
	return slices.Clone(p.Benefits)
}

func cloneQuestions(in []Question) []Question {
	out := make([]Question, len(in))
	for i, q := range in {
		q.Options = slices.Clone(q.Options)
		if q.DependsOn != nil {
			dep := *q.DependsOn
			q.DependsOn = &dep
		}
		out[i] = q
	}
	return out
}

func clonePrograms(in []Program) []Program {
	out := make([]Program, len(in))
	for i, p := range in {
		crit := make(Criteria, len(p.Criteria))
		for k, r := range p.Criteria {
			if vr, ok := r.(ValuesRule); ok {
				r = ValuesRule{Values: slices.Clone(vr.Values)}
			}
			crit[k] = r
		}
		p.Criteria = crit
		p.Benefits = slices.Clone(p.Benefits)
		out[i] = p
	}
	return out
}
