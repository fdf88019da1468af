package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"cinema_console/model"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends console emails over SMTP.
type Mailer struct {
	from   string
	dialer dialer
	log    zerolog.Logger
}

func NewMailer(host string, port int, username, password, from string, log zerolog.Logger) *Mailer {
	return &Mailer{
		from:   from,
		dialer: gomail.NewDialer(host, port, username, password),
		log:    log,
	}
}

// OverviewReportData is rendered into the daily report email.
type OverviewReportData struct {
	Period    string
	Generated string
	Metrics   []model.Metric
	TopFilms  []model.TopFilm
	Errors    map[string]string
}

var overviewReportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct":   func(v float64) string { return fmt.Sprintf("%+.1f%%", v) },
	"money": func(v float64) string { return fmt.Sprintf("%.0f", v) },
}).Parse(`<h2>Cinema overview ({{.Period}})</h2>
<p>Generated {{.Generated}}</p>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Metric</th><th>Current</th><th>Previous</th><th>Growth</th></tr>
{{range .Metrics}}<tr><td>{{.Label}}</td><td>{{money .Current}}</td><td>{{money .Previous}}</td><td>{{pct .Growth}}</td></tr>
{{end}}</table>
{{if .TopFilms}}<h3>Top films</h3><ol>{{range .TopFilms}}<li>{{.Name}} ({{money .TotalRevenue}}, {{.NumberOfTickets}} tickets)</li>{{end}}</ol>{{end}}
{{range $k, $v := .Errors}}<p>{{$k}}: {{$v}}</p>{{end}}`))

func BuildOverviewReport(d *model.Dashboard, now time.Time) OverviewReportData {
	return OverviewReportData{
		Period:    d.TimeOption.String(),
		Generated: now.Format("2006-01-02 15:04"),
		Metrics:   d.Metrics,
		TopFilms:  d.TopFilms,
		Errors:    d.Errors,
	}
}

func (m *Mailer) SendOverviewReport(to []string, data OverviewReportData) error {
	if len(to) == 0 {
		return nil
	}
	var body bytes.Buffer
	if err := overviewReportTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", "Cinema overview "+data.Generated)
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send report: %w", err)
	}
	m.log.Info().Strs("to", to).Msg("overview report sent")
	return nil
}

// SendOverviewReportAsync sends in the background and only logs failures.
func (m *Mailer) SendOverviewReportAsync(to []string, data OverviewReportData) {
	go func() {
		if err := m.SendOverviewReport(to, data); err != nil {
			m.log.Error().Err(err).Msg("overview report failed")
		}
	}()
}
