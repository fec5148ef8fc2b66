// Package ui renders workflow output. It is strictly a sink, nothing it
// produces feeds back into the pipeline.
package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Row is one line of the change table.
type Row struct {
	Path      string
	Status    string
	Additions int
	Deletions int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			Padding(0, 1)
	messageStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(0, 1)
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle      = lipgloss.NewStyle().Bold(true)
	pathStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	additionStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	deletionStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noticeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	successStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	doneMarkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failMarkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Presenter writes styled workflow output to a single writer.
type Presenter struct {
	out     io.Writer
	spinner *Spinner
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{
		out:     out,
		spinner: NewSpinner(),
	}
}

func (p *Presenter) Title(subtitle string) {
	p.println(titleStyle.Render("gitsync - " + subtitle))
}

func (p *Presenter) StartStep(message string) {
	p.spinner.Start(message)
}

func (p *Presenter) CompleteStep(message string) {
	p.spinner.Stop()
	p.println(doneMarkStyle.Render("✓") + " " + message)
}

func (p *Presenter) FailStep(message string) {
	p.spinner.Stop()
	p.println(failMarkStyle.Render("✗") + " " + message)
}

// ShowChanges renders the change table followed by a totals line.
func (p *Presenter) ShowChanges(rows []Row, totalAdditions, totalDeletions int) {
	changeTable := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(
			headerStyle.Render("File"),
			headerStyle.Render("Status"),
			headerStyle.Render("+"),
			headerStyle.Render("-"),
		)
	for _, row := range rows {
		var additions, deletions string
		if row.Additions > 0 {
			additions = additionStyle.Render("+" + strconv.Itoa(row.Additions))
		}
		if row.Deletions > 0 {
			deletions = deletionStyle.Render("-" + strconv.Itoa(row.Deletions))
		}
		changeTable.Row(
			pathStyle.Render(row.Path),
			statusStyle.Render(row.Status),
			additions,
			deletions,
		)
	}

	p.println(changeTable.String())
	p.println(fmt.Sprintf("%d file(s), %s %s",
		len(rows),
		additionStyle.Render("+"+strconv.Itoa(totalAdditions)),
		deletionStyle.Render("-"+strconv.Itoa(totalDeletions)),
	))
	p.println("")
}

func (p *Presenter) ShowMessage(message string) {
	p.println(messageStyle.Render(message))
	p.println("")
}

func (p *Presenter) Notice(message string) {
	p.println(noticeStyle.Render(message))
}

func (p *Presenter) Success(message string) {
	p.println(successStyle.Render(message))
}

func (p *Presenter) println(line string) {
	fmt.Fprintln(p.out, line)
}
