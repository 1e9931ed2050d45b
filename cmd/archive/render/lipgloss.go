package render

import (
	"archive/internal/catalog"
	"archive/internal/notify"
	"archive/internal/screen"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

var screenTitles = map[string]string{
	screen.Gallery:        "Gallery",
	screen.Bookmarks:      "Bookmarks",
	screen.ManageArtworks: "Manage artworks",
	screen.ReviewArts:     "Review queue",
	screen.Related:        "Related artworks",
}

type LipglossRenderer struct {
	width int
	now   func() time.Time
	r     *lipgloss.Renderer

	titleStyle   lipgloss.Style
	metaStyle    lipgloss.Style
	countStyle   lipgloss.Style
	savedStyle   lipgloss.Style
	currentStyle lipgloss.Style
	unreadStyle  lipgloss.Style
	timeStyle    lipgloss.Style
	recentStyle  lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:        width,
		now:          time.Now,
		r:            r,
		titleStyle:   r.NewStyle().Bold(true),
		metaStyle:    r.NewStyle().Faint(true),
		countStyle:   r.NewStyle().Faint(true),
		savedStyle:   r.NewStyle().Foreground(lipgloss.Color("5")),
		currentStyle: r.NewStyle().Bold(true).Underline(true),
		unreadStyle:  r.NewStyle().Foreground(lipgloss.Color("10")),
		timeStyle:    r.NewStyle().Faint(true),
		recentStyle:  r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) WithClock(now func() time.Time) *LipglossRenderer {
	r.now = now
	return r
}

func (r *LipglossRenderer) RenderView(view screen.View) string {
	if view.IsEmpty() {
		return "No artworks found.\n"
	}

	var sb strings.Builder
	sb.WriteString(r.header(screenTitle(view.Name), plural(view.Matches, "artwork")))
	sb.WriteString("\n\n")

	switch view.Name {
	case screen.ManageArtworks, screen.ReviewArts:
		sb.WriteString(r.renderTable(view.Items))
	default:
		for i, it := range view.Items {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(r.renderCard(it, view.IsSaved(it.ID)))
			sb.WriteString("\n")
		}
	}

	if view.TotalPages > 1 {
		sb.WriteString("\n")
		sb.WriteString(r.renderPager(view))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *LipglossRenderer) header(title, count string) string {
	left := r.titleStyle.Render(title)
	right := r.countStyle.Render(count)
	padding := max(1, r.width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", padding) + right
}

func (r *LipglossRenderer) renderCard(it catalog.Item, saved bool) string {
	title := r.titleStyle.Render(it.Title)
	score := r.countStyle.Render(formatRating(it))
	padding := max(1, r.width-lipgloss.Width(title)-lipgloss.Width(score))

	meta := []string{}
	if it.Artist != "" {
		meta = append(meta, it.Artist)
	}
	meta = append(meta, it.Category)
	if it.Year > 0 {
		meta = append(meta, strconv.Itoa(it.Year))
	}
	meta = append(meta, it.ID)

	metaLine := r.metaStyle.Render("  " + strings.Join(meta, " · "))
	if saved {
		metaLine += " " + r.savedStyle.Render("♥ saved")
	}

	return title + strings.Repeat(" ", padding) + score + "\n" + metaLine
}

func (r *LipglossRenderer) renderTable(items []catalog.Item) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tARTIST\tCATEGORY\tSTATUS")
	for _, it := range items {
		status := string(it.Status)
		if status == "" {
			status = string(catalog.StatusApproved)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", it.ID, it.Title, it.Artist, it.Category, status)
	}
	w.Flush()
	return sb.String()
}

func (r *LipglossRenderer) renderPager(view screen.View) string {
	labels := make([]string, len(view.Window))
	for i, m := range view.Window {
		switch {
		case m.Ellipsis:
			labels[i] = m.String()
		case m.Page == view.CurrentPage:
			labels[i] = r.currentStyle.Render("[" + m.String() + "]")
		default:
			labels[i] = m.String()
		}
	}
	return fmt.Sprintf("Page %d of %d  %s", view.CurrentPage, view.TotalPages, strings.Join(labels, " "))
}

func (r *LipglossRenderer) RenderFacets(facets []catalog.Facet) string {
	if len(facets) == 0 {
		return "No categories found.\n"
	}

	total := 0
	for _, f := range facets {
		total += f.Count
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tARTWORKS")
	fmt.Fprintf(w, "%s\t%d\n", catalog.AllCategories, total)
	for _, f := range facets {
		fmt.Fprintf(w, "%s\t%d\n", f.Category, f.Count)
	}
	w.Flush()
	return sb.String()
}

func (r *LipglossRenderer) RenderNotifications(items []notify.Notification) string {
	if len(items) == 0 {
		return "No notifications.\n"
	}

	unread := 0
	for _, n := range items {
		if !n.Read {
			unread++
		}
	}

	now := r.now()
	var sb strings.Builder
	sb.WriteString(r.header("Notifications", fmt.Sprintf("%d unread", unread)))
	sb.WriteString("\n\n")
	for i, n := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(r.renderNotification(n, now))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *LipglossRenderer) renderNotification(n notify.Notification, now time.Time) string {
	marker := "  "
	if !n.Read {
		marker = r.unreadStyle.Render("*") + " "
	}

	timeStyle := r.timeStyle
	if !n.CreatedAt.IsZero() && now.Sub(n.CreatedAt) < time.Hour {
		timeStyle = r.recentStyle
	}

	title := marker + r.titleStyle.Render(n.Title)
	timeEl := timeStyle.Render(r.formatTime(n.CreatedAt, now))
	padding := max(1, r.width-lipgloss.Width(title)-lipgloss.Width(timeEl))

	lines := []string{title + strings.Repeat(" ", padding) + timeEl}
	if n.Message != "" {
		lines = append(lines, r.metaStyle.Render("  "+n.Message))
	}
	return strings.Join(lines, "\n")
}

func (r *LipglossRenderer) formatTime(t, now time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}

	loc := now.Location()
	t = t.In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	target := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	days := int(today.Sub(target).Hours() / 24)

	timeStr := t.Format("15:04")

	switch {
	case days == 0:
		return timeStr
	case days == 1:
		return "Yesterday " + timeStr
	case days < 7:
		return t.Format("Mon") + " " + timeStr
	case t.Year() == now.Year():
		return t.Format("Jan 2") + " " + timeStr
	default:
		return t.Format("Jan 2 '06") + " " + timeStr
	}
}

func formatRating(it catalog.Item) string {
	if it.TotalRatings == 0 {
		return "unrated"
	}
	return fmt.Sprintf("%.1f/5 (%d)", it.Rating, it.TotalRatings)
}

func screenTitle(name string) string {
	if t, ok := screenTitles[name]; ok {
		return t
	}
	return name
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
