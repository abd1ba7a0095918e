// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/vorlif/humanize"
	"github.com/vorlif/humanize/locale/de"
	"github.com/vorlif/spreak"
	"github.com/wneessen/go-moonphase"

	"github.com/wneessen/weather-dash/internal/config"
	"github.com/wneessen/weather-dash/internal/format"
	"github.com/wneessen/weather-dash/internal/session"
	"github.com/wneessen/weather-dash/internal/vartype"
	"github.com/wneessen/weather-dash/internal/weather"
)

// DayLabelFormat is the humanize format of the forecast day labels, e.g. "Tue, 5 Nov".
const DayLabelFormat = "D, j M"

// CurrentView holds the formatted current conditions.
type CurrentView struct {
	Condition         string `json:"condition"`
	Description       string `json:"description"`
	Icon              string `json:"icon"`
	IconURL           string `json:"icon_url"`
	ConditionIcon     string `json:"-"`
	Temperature       string `json:"temperature"`
	FeelsLike         string `json:"feels_like"`
	Humidity          string `json:"humidity"`
	HumidityCategory  string `json:"humidity_category"`
	WindSpeed         string `json:"wind_speed"`
	WindDirection     string `json:"wind_direction"`
	WindDirectionIcon string `json:"-"`
	Visibility        string `json:"visibility"`
	Pressure          string `json:"pressure"`
}

// DayView holds one formatted entry of the daily forecast.
type DayView struct {
	Date          string `json:"date"`
	DayLabel      string `json:"day"`
	Condition     string `json:"condition"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	IconURL       string `json:"icon_url"`
	ConditionIcon string `json:"-"`
	TempMax       string `json:"temp_max"`
	TempMin       string `json:"temp_min"`
}

type TemplateContext struct {
	Location    string
	Latitude    float64
	Longitude   float64
	HasWeather  bool
	Loading     bool
	Error       string
	Suggestions []string

	Unit          string
	UpdateTime    time.Time
	SunriseTime   time.Time
	SunsetTime    time.Time
	IsDay         bool
	MoonPhase     string
	MoonPhaseIcon string
	Theme         Palette

	Current  CurrentView
	Forecast []DayView
}

// Output holds the rendered templates.
type Output struct {
	Current  string
	Forecast string
}

type Presenter struct {
	color     bool
	iconURL   string
	humanizer *humanize.Humanizer
	localizer *spreak.Localizer
	now       func() time.Time

	current  *template.Template
	forecast *template.Template
}

func New(conf *config.Config, localizer *spreak.Localizer) (*Presenter, error) {
	if localizer == nil {
		return nil, fmt.Errorf("localizer is required")
	}
	collection, err := humanize.New(humanize.WithLocale(de.New()))
	if err != nil {
		return nil, fmt.Errorf("failed to create humanizer: %w", err)
	}

	pres := &Presenter{
		color:     !conf.NoColor,
		iconURL:   conf.Weather.IconURL,
		humanizer: collection.CreateHumanizer(localizer.Language()),
		localizer: localizer,
		now:       time.Now,
	}

	pres.current, err = template.New("current").Funcs(pres.templateFuncMap()).Parse(conf.Templates.Current)
	if err != nil {
		return nil, fmt.Errorf("failed to parse current template: %w", err)
	}
	pres.forecast, err = template.New("forecast").Funcs(pres.templateFuncMap()).Parse(conf.Templates.Forecast)
	if err != nil {
		return nil, fmt.Errorf("failed to parse forecast template: %w", err)
	}

	// Templates referring to unknown fields only fail on execution
	probe := TemplateContext{Forecast: []DayView{{}}}
	if err = pres.current.Execute(io.Discard, probe); err != nil {
		return nil, fmt.Errorf("failed to execute current template: %w", err)
	}
	if err = pres.forecast.Execute(io.Discard, probe); err != nil {
		return nil, fmt.Errorf("failed to execute forecast template: %w", err)
	}

	return pres, nil
}

// BuildContext formats the session state for the templates. Temperatures are converted to
// the unit selected in the state.
func (p *Presenter) BuildContext(state session.State) TemplateContext {
	now := p.now()
	phase := moonphase.New(now).PhaseName()
	tplCtx := TemplateContext{
		Location:      state.City,
		Loading:       state.Loading,
		Error:         state.Error,
		Unit:          state.Unit.Symbol(),
		IsDay:         true,
		MoonPhase:     phase,
		MoonPhaseIcon: MoonPhaseIcon[phase],
		Theme:         PaletteFor(state.Theme, p.color),
	}
	for _, loc := range state.Suggestions {
		tplCtx.Suggestions = append(tplCtx.Suggestions, loc.DisplayName())
	}

	if cond := state.Conditions; cond != nil {
		tplCtx.HasWeather = true
		tplCtx.Latitude = cond.Coordinates.Lat
		tplCtx.Longitude = cond.Coordinates.Lon
		tplCtx.UpdateTime = cond.GeneratedAt
		tplCtx.IsDay = cond.IsDay(now)
		if cond.Sunrise.IsSet() && cond.Sunset.IsSet() {
			tplCtx.SunriseTime = cond.Sunrise.Value().Local()
			tplCtx.SunsetTime = cond.Sunset.Value().Local()
		}
		tplCtx.Current = p.currentView(cond, state.Unit, tplCtx.IsDay)
	}
	for _, entry := range state.Forecast {
		tplCtx.Forecast = append(tplCtx.Forecast, p.dayView(entry, state.Unit))
	}

	return tplCtx
}

// Render executes the current and forecast templates. Without weather data both are empty.
func (p *Presenter) Render(tplCtx TemplateContext) (Output, error) {
	var output Output
	if !tplCtx.HasWeather {
		return output, nil
	}

	buf := bytes.NewBuffer(nil)
	if err := p.current.Execute(buf, tplCtx); err != nil {
		return output, fmt.Errorf("failed to render current template: %w", err)
	}
	output.Current = buf.String()

	buf.Reset()
	if err := p.forecast.Execute(buf, tplCtx); err != nil {
		return output, fmt.Errorf("failed to render forecast template: %w", err)
	}
	output.Forecast = buf.String()

	return output, nil
}

// Dashboard renders the complete terminal view of the session: the error or loading line,
// the numbered suggestions and the weather templates.
func (p *Presenter) Dashboard(state session.State) (string, error) {
	tplCtx := p.BuildContext(state)
	output, err := p.Render(tplCtx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if tplCtx.Error != "" {
		sb.WriteString(tplCtx.Theme.Error + tplCtx.Error + tplCtx.Theme.Reset + "\n")
	}
	if tplCtx.Loading {
		sb.WriteString(tplCtx.Theme.Muted + p.loc("loading") + " " + tplCtx.Location + "…" +
			tplCtx.Theme.Reset + "\n")
	}
	if len(tplCtx.Suggestions) > 0 {
		sb.WriteString(tplCtx.Theme.Accent + p.loc("suggestions") + tplCtx.Theme.Reset + "\n")
		for i, label := range tplCtx.Suggestions {
			sb.WriteString(fmt.Sprintf("  %d) %s\n", i+1, label))
		}
	}
	if output.Current != "" {
		sb.WriteString(strings.TrimRight(output.Current, "\n") + "\n\n")
	}
	if output.Forecast != "" {
		sb.WriteString(strings.TrimRight(output.Forecast, "\n") + "\n")
	}
	return sb.String(), nil
}

func (p *Presenter) currentView(cond *weather.Conditions, unit format.Unit, isDay bool) CurrentView {
	humidity := vartype.Float(cond.Humidity)
	direction := format.WindDirection(vartype.Float(cond.WindDirection))
	view := CurrentView{
		Condition:         cond.Condition,
		Description:       cond.Description,
		Icon:              cond.Icon,
		IconURL:           p.IconURL(cond.Icon),
		ConditionIcon:     conditionIcon(cond.Condition, cond.Icon, isDay),
		Temperature:       format.Temperature(vartype.Float(cond.Temperature), unit),
		FeelsLike:         format.Temperature(vartype.Float(cond.FeelsLike), unit),
		Humidity:          format.Percent(humidity),
		HumidityCategory:  format.Humidity(humidity),
		WindSpeed:         format.WindSpeed(vartype.Float(cond.WindSpeed)),
		WindDirection:     direction,
		WindDirectionIcon: windDirIcons[direction],
		Visibility:        format.Visibility(vartype.Float(cond.Visibility)),
		Pressure:          format.Pressure(vartype.Float(cond.Pressure)),
	}
	return view
}

func (p *Presenter) dayView(entry weather.ForecastEntry, unit format.Unit) DayView {
	view := DayView{
		Condition:     entry.Condition,
		Description:   entry.Description,
		Icon:          entry.Icon,
		IconURL:       p.IconURL(entry.Icon),
		ConditionIcon: conditionIcon(entry.Condition, entry.Icon, !strings.HasSuffix(entry.Icon, "n")),
		TempMax:       format.Temperature(vartype.Float(entry.TempMax), unit),
		TempMin:       format.Temperature(vartype.Float(entry.TempMin), unit),
	}
	if ts, ok := entry.Time(); ok {
		view.Date = ts.Format(time.DateOnly)
		view.DayLabel = p.humanizer.FormatTime(ts, DayLabelFormat)
	}
	return view
}

// IconURL returns the URL of the icon code, or an empty string if there is no icon.
func (p *Presenter) IconURL(icon string) string {
	if icon == "" || p.iconURL == "" {
		return ""
	}
	if !strings.Contains(p.iconURL, "%s") {
		return p.iconURL + icon
	}
	return fmt.Sprintf(p.iconURL, icon)
}

func conditionIcon(condition, icon string, isDay bool) string {
	if condition == "Clouds" && (strings.HasPrefix(icon, "02") || strings.HasPrefix(icon, "03")) {
		return partlyCloudy[isDay]
	}
	if icons, ok := ConditionIcons[condition]; ok {
		return icons[isDay]
	}
	return ""
}
