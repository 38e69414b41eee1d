package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"adminctl/pkg/listview"
	"adminctl/pkg/models"
)

// normalizeText trims value and substitutes a fallback for empty input.
func normalizeText(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

// renderList prints one page of a filtered collection the way every list
// screen does: title, rows, and a pagination footer. The controller supplies
// filtering and windowing so the CLI shows exactly what the browser would.
func renderList[R any](desc listview.Descriptor[R], records []R, search string, page int, details func(R) []string) {
	ctrl := listview.New(desc)
	ctrl.StartLoad()
	ctrl.FinishLoad(records, nil)
	ctrl.SetSearch(search)
	ctrl.GoToPage(page)

	color.Cyan("%s\n", desc.Title)
	rows := ctrl.Rows()
	if len(rows) == 0 {
		if strings.TrimSpace(search) != "" {
			fmt.Printf("No %s match %q\n", desc.Plural(), strings.TrimSpace(search))
		} else {
			fmt.Printf("No %s\n", desc.Plural())
		}
	}
	for _, r := range rows {
		fmt.Printf("- [%s] %s\n", desc.ID(r), desc.DisplayName(r))
		if details != nil {
			for _, line := range details(r) {
				fmt.Printf("    %s\n", line)
			}
		}
	}

	w := ctrl.Window()
	if w.Total > 0 {
		fmt.Printf("Showing %d-%d of %d (page %d of %d)\n", w.Start, w.End, w.Total, w.Page, w.TotalPages)
	} else {
		fmt.Printf("Page %d of %d\n", w.Page, w.TotalPages)
	}
}

// confirmPrompt asks for explicit confirmation on stdin. Anything but y/yes
// declines.
func confirmPrompt(message string) bool {
	fmt.Printf("%s [y/N]: ", message)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func printStored(stored models.StoredFile) {
	color.Green("Uploaded %s\n", stored.FileName)
	fmt.Printf("  Path: %s\n", stored.Path)
	fmt.Printf("  Size: %d bytes\n", stored.Size)
	fmt.Printf("  Content-Type: %s\n", normalizeText(stored.ContentType, "N/A"))
}
