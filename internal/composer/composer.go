package composer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rios0rios0/gitinsight/internal/domain/entities"
)

const (
	ellipsis          = "..."
	moreChangesBullet = "- ...and more changes"
	relatedSuffix     = " and related files"
	defaultEmoji      = "📝"
	footerBudget      = 20
)

// ErrNoChanges is returned when asked to compose a message for nothing.
var ErrNoChanges = errors.New("no changes to describe")

// Config holds the classification tables of a Composer.
type Config struct {
	TypeRules    []TypeRule
	Emojis       map[string]string
	DefaultEmoji string
	// FooterBudget is the room that must remain under the length limit for a
	// footer to be added to conventional and gitmoji messages.
	FooterBudget int
}

// DefaultConfig returns the built-in classification tables.
func DefaultConfig() Config {
	return Config{
		TypeRules:    DefaultTypeRules(defaultFixPathPattern),
		Emojis:       DefaultEmojis(),
		DefaultEmoji: defaultEmoji,
		FooterBudget: footerBudget,
	}
}

// Composer synthesizes commit messages from file changes.
type Composer struct {
	config Config
}

// New creates a Composer with the given tables.
func New(config Config) *Composer {
	return &Composer{config: config}
}

// Compose renders a commit message for the changes in the requested style,
// then truncates it to style.MaxLength.
func (it *Composer) Compose(changes []entities.FileChange, style entities.CommitStyle) (string, error) {
	if len(changes) == 0 {
		return "", ErrNoChanges
	}

	summary := summarize(changes, it.deriveType(changes))

	var message string
	switch style.Type {
	case entities.StyleConventional:
		message = it.renderConventional(summary, style)
	case entities.StyleGitmoji:
		message = it.renderGitmoji(summary, style)
	case entities.StyleDetailed:
		message = renderDetailed(summary, style)
	case entities.StyleSimple:
		message = summary.description
	default:
		return "", fmt.Errorf("unsupported commit style %q", style.Type)
	}

	return Truncate(message, style.MaxLength), nil
}

// messageSummary is what every style renders from.
type messageSummary struct {
	commitType  string
	scope       string
	description string
	changes     []entities.FileChange
}

func summarize(changes []entities.FileChange, commitType string) messageSummary {
	return messageSummary{
		commitType:  commitType,
		scope:       deriveScope(changes),
		description: deriveDescription(changes),
		changes:     changes,
	}
}

func (it *Composer) deriveType(changes []entities.FileChange) string {
	for _, rule := range it.config.TypeRules {
		if rule.Matches(changes) {
			return rule.Type
		}
	}
	return typeChore
}

// deriveScope returns the single top-level directory shared by every change,
// "root" when every change sits at the top level and "multiple" otherwise.
func deriveScope(changes []entities.FileChange) string {
	scopes := make(map[string]bool)
	for _, c := range changes {
		segments := strings.Split(strings.Trim(c.Path, "/"), "/")
		if len(segments) < 2 {
			scopes[rootScope] = true
			continue
		}
		scopes[segments[0]] = true
	}

	if len(scopes) == 1 {
		for scope := range scopes {
			return scope
		}
	}
	return multipleScope
}

func deriveDescription(changes []entities.FileChange) string {
	first := changes[0]
	action, ok := actionWords[first.Status]
	if !ok {
		action = actionWords[entities.StatusModified]
	}

	description := action + " " + stem(first.Path)
	if len(changes) > 1 {
		description += relatedSuffix
	}
	return description
}

func (it *Composer) renderConventional(summary messageSummary, style entities.CommitStyle) string {
	return it.withFooter(conventionalHeader(summary, style), summary, style)
}

func (it *Composer) renderGitmoji(summary messageSummary, style entities.CommitStyle) string {
	emoji, ok := it.config.Emojis[summary.commitType]
	if !ok {
		emoji = it.config.DefaultEmoji
	}

	header := emoji + " "
	if style.IncludeScope {
		header += "[" + summary.scope + "] "
	}
	header += summary.description

	return it.withFooter(header, summary, style)
}

func renderDetailed(summary messageSummary, style entities.CommitStyle) string {
	var builder strings.Builder
	builder.WriteString(conventionalHeader(summary, style))
	builder.WriteString("\n\nChanges:")

	for _, c := range summary.changes {
		bullet := fmt.Sprintf("\n- %s: %s", c.Status, c.Path)
		if style.MaxLength > 0 && runeLen(builder.String())+runeLen(bullet) > style.MaxLength {
			builder.WriteString("\n" + moreChangesBullet)
			break
		}
		builder.WriteString(bullet)
	}

	if style.IncludeFooter {
		builder.WriteString("\n\nScope: " + summary.scope)
	}

	return builder.String()
}

func conventionalHeader(summary messageSummary, style entities.CommitStyle) string {
	header := summary.commitType
	if style.IncludeScope {
		header += "(" + summary.scope + ")"
	}
	return header + ": " + summary.description
}

// withFooter appends the change footer when requested and when more than
// FooterBudget characters remain under the length limit.
func (it *Composer) withFooter(message string, summary messageSummary, style entities.CommitStyle) string {
	if !style.IncludeFooter {
		return message
	}
	if style.MaxLength > 0 && style.MaxLength-runeLen(message) <= it.config.FooterBudget {
		return message
	}
	return message + "\n\n" + changeFooter(summary.changes)
}

func changeFooter(changes []entities.FileChange) string {
	additions, deletions := 0, 0
	for _, c := range changes {
		additions += c.Additions
		deletions += c.Deletions
	}

	footer := fmt.Sprintf("Changed %d files", len(changes))
	if len(changes) == 1 {
		footer = "Changed 1 file"
	}
	if additions+deletions > 0 {
		footer += fmt.Sprintf(", +%d/-%d lines", additions, deletions)
	}
	return footer
}

// Truncate shortens a message to maxLength characters. A first line that is
// already too long is cut and ends with "..."; otherwise following lines are
// kept while the total stays within maxLength-3 and a final "..." line marks
// the cut. A non-positive maxLength leaves the message untouched.
func Truncate(message string, maxLength int) string {
	if maxLength <= 0 || runeLen(message) <= maxLength {
		return message
	}

	budget := max(maxLength-len(ellipsis), 0)
	lines := strings.Split(message, "\n")

	if runeLen(lines[0]) > maxLength {
		return string([]rune(lines[0])[:budget]) + ellipsis
	}

	kept := []string{lines[0]}
	total := runeLen(lines[0])
	for _, line := range lines[1:] {
		next := total + 1 + runeLen(line)
		if next > budget {
			break
		}
		kept = append(kept, line)
		total = next
	}

	return strings.Join(append(kept, ellipsis), "\n")
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
