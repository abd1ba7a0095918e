// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"math"
	"strings"
	"text/template"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/vorlif/humanize"
)

func (p *Presenter) templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"timeFormat":    p.timeFormat,
		"localizedTime": p.localizedTime,
		"floatFormat":   p.floatFormat,
		"loc":           p.loc,
		"pad":           pad,
		"lc":            strings.ToLower,
		"uc":            strings.ToUpper,
	}
}

func (p *Presenter) loc(val string) string {
	key := strings.ToLower(val)
	if raw, ok := i18nVars[key]; ok {
		return p.localizer.Get(raw)
	}
	return val
}

func (p *Presenter) localizedTime(val time.Time) string {
	if val.IsZero() {
		return ""
	}
	return p.humanizer.FormatTime(val, humanize.TimeFormat)
}

func (p *Presenter) timeFormat(val time.Time, fmt string) string {
	if val.IsZero() {
		return ""
	}
	return val.Format(fmt)
}

func (p *Presenter) floatFormat(val float64, precision int) string {
	pow := math.Pow(10, float64(precision))
	return fmt.Sprintf("%.*f", precision, math.Trunc(val*pow)/pow)
}

// pad right-fills val with spaces to the given terminal column width. Wide runes such as
// emoji count as two columns.
func pad(val string, width int) string {
	return runewidth.FillRight(val, width)
}
