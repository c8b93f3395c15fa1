package nav

import (
	"fmt"
	"strings"
)

// RenderSimpleYAML renders a plain YAML navigation block without year index links
// or the older-years bucket. Recent years are grouped under "Recent Years"; every
// other year follows unwrapped. Years and months keep the provider's order.
func RenderSimpleYAML(p Provider, opts Options) (string, error) {
	years, err := p.YearMonths()
	if err != nil {
		return "", err
	}

	var recent, rest []string
	for _, ym := range years {
		if len(ym.Months) == 0 {
			continue
		}
		if ym.Year >= RecentYearsFrom {
			recent = append(recent, simpleYear(ym, opts, "    "))
		} else {
			rest = append(rest, simpleYear(ym, opts, "  "))
		}
	}

	lines := []string{
		fmt.Sprintf("- %s: %s", HomeLabel, opts.HomePage),
		fmt.Sprintf("- %s: %s", OverviewLabel, opts.OverviewPage),
		fmt.Sprintf("- %s:", PapersLabel),
	}
	if len(recent) > 0 {
		lines = append(lines, fmt.Sprintf("  - %s:", RecentYearsLabel))
		lines = append(lines, recent...)
	}
	lines = append(lines, rest...)
	return strings.Join(lines, "\n"), nil
}

func simpleYear(ym YearMonths, opts Options, indent string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s- '%d':", indent, ym.Year)
	for _, m := range ym.Months {
		fmt.Fprintf(&b, "\n%s  - '%s': %s", indent, MonthLabel(ym.Year, m), opts.MonthPage(ym.Year, m))
	}
	return b.String()
}
