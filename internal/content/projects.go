package content

type Project struct {
	Title   string   `yaml:"title"`
	Bullets []string `yaml:"description"`
	Tech    []string `yaml:"tech"`
	Link    string   `yaml:"link"`
	Demo    string   `yaml:"demo"`
	Image   string   `yaml:"image"`
}

type Projects []Project

// StackCard is a project title in the navigation strip above the card.
type StackCard struct {
	Title    string
	Index    int
	Position int  // offset from the current project
	Active   bool // the current project
	Visible  bool // direct neighbours and the current project
}

// Titles returns the project titles in order.
func (p Projects) Titles() []string {
	titles := make([]string, len(p))
	for i, project := range p {
		titles[i] = project.Title
	}
	return titles
}

// Wrap maps any index onto the list, cyclically.
func (p Projects) Wrap(i int) int {
	n := len(p)
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func (p Projects) Next(i int) int { return p.Wrap(i + 1) }

func (p Projects) Prev(i int) int { return p.Wrap(i - 1) }

// Stack lays out every title relative to current.
func (p Projects) Stack(current int) []StackCard {
	current = p.Wrap(current)
	cards := make([]StackCard, len(p))
	for i, project := range p {
		pos := i - current
		cards[i] = StackCard{
			Title:    project.Title,
			Index:    i,
			Position: pos,
			Active:   pos == 0,
			Visible:  pos >= -1 && pos <= 1,
		}
	}
	return cards
}
