package web

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/datazen/internal/audit"
	"github.com/JonMunkholm/datazen/internal/chart"
	"github.com/JonMunkholm/datazen/internal/clean"
	"github.com/JonMunkholm/datazen/internal/core"
	"github.com/JonMunkholm/datazen/internal/export"
	"github.com/JonMunkholm/datazen/internal/frame"
	"github.com/JonMunkholm/datazen/internal/i18n"
	"github.com/JonMunkholm/datazen/internal/ingest"
	"github.com/JonMunkholm/datazen/internal/logging"
	"github.com/JonMunkholm/datazen/internal/profile"
	"github.com/JonMunkholm/datazen/internal/session"
	"github.com/JonMunkholm/datazen/internal/web/templates"
)

// multipartOverhead is the allowance for multipart framing on top of the
// configured maximum file size.
const multipartOverhead = 1 << 20

// maxAuditLimit caps the limit query parameter of /api/audit.
const maxAuditLimit = 500

// handlePage renders the main page for the requested tab.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	flashes := s.service.Sessions().PopFlashes(sid)
	sess, err := s.service.Sessions().Get(sid)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	q := r.URL.Query()
	p := templates.PageParams{
		Catalog:   s.service.Catalog(),
		Lang:      sess.Language,
		AppName:   s.service.AppName(),
		Icon:      s.cfg.App.Icon,
		Languages: languageOptions(sess.Language),
		Flashes:   flashes,
		Accept:    strings.Join(ingest.SupportedExtensions(), ","),
		ActiveTab: templates.ParseTab(q.Get("tab")),
	}

	if sess.HasTable() {
		f := sess.Table
		p.HasTable = true
		p.FileName = sess.LastUploaded

		switch p.ActiveTab {
		case templates.TabPreview:
			p.Summary = profile.Summarize(f)
			p.Preview = profile.Preview(f, profile.PreviewRows)
			p.Columns = profile.Columns(f)
		case templates.TabEDA:
			p.ShowStats = q.Get("stats") == "1"
			if p.ShowStats {
				p.Stats = statsView(f)
			}
		case templates.TabClean:
			p.Actions = s.cleanOptions(sess.Language)
		case templates.TabChart:
			p.Chart = s.chartView(f, q, sess.Language)
		case templates.TabExport:
			p.Downloads = s.downloadOptions(sess.Language)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := templates.Page(p).Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render page", "error", err)
	}
}

// handleLanguage switches the session language and returns to the same tab.
func (s *Server) handleLanguage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	if _, err := s.service.SetLanguage(r.Context(), sessionID(r), r.PostFormValue("lang")); err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	redirect(w, r, r.PostFormValue("tab"))
}

// handleUpload streams the multipart "file" field into the service. Parse
// failures become a notice on the page and the previous table stays.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := sessionID(r)
	lang := s.language(sid)
	catalog := s.service.Catalog()

	if limit := s.cfg.Upload.MaxFileSize; limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)
	}

	out, err := s.uploadPart(r, sid)
	switch {
	case errors.Is(err, session.ErrNotFound):
		s.respondError(w, r, err, statusFor(err))
		return
	case err != nil:
		logging.FromContext(ctx).Warn("upload failed", "error", err)
		s.service.Notify(sid, session.FlashError, catalog.T(lang, i18n.KeyUploadError, core.MapError(err).Message))
	default:
		s.service.Notify(sid, session.FlashSuccess, catalog.T(lang, i18n.KeyUploadSuccess))
		if !out.Replaced {
			s.service.Notify(sid, session.FlashInfo, catalog.T(lang, i18n.KeyUploadKept))
		}
	}
	redirect(w, r, templates.TabPreview)
}

// uploadPart finds the "file" part of the multipart body and hands it to
// the service without buffering the whole request.
func (s *Server) uploadPart(r *http.Request, sid string) (core.UploadOutcome, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return core.UploadOutcome{}, core.ErrNoFile
	}
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return core.UploadOutcome{}, core.ErrNoFile
		}
		if err != nil {
			return core.UploadOutcome{}, err
		}
		if part.FormName() != "file" {
			part.Close()
			continue
		}
		defer part.Close()
		if part.FileName() == "" {
			return core.UploadOutcome{}, core.ErrNoFile
		}
		return s.service.Upload(r.Context(), sid, part.FileName(), part)
	}
}

// handleClean applies one cleaning action and reports what it changed.
func (s *Server) handleClean(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	lang := s.language(sid)
	catalog := s.service.Catalog()

	rep, err := s.service.Clean(r.Context(), sid, chi.URLParam(r, "action"))
	switch {
	case errors.Is(err, clean.ErrUnknownAction), errors.Is(err, session.ErrNotFound):
		s.respondError(w, r, err, statusFor(err))
		return
	case err != nil:
		s.service.Notify(sid, session.FlashError, catalog.T(lang, i18n.KeyErrorGeneric, core.MapError(err).Message))
	default:
		s.service.Notify(sid, session.FlashSuccess, cleanNotice(catalog, lang, rep))
		if len(rep.SkippedColumns) > 0 {
			s.service.Notify(sid, session.FlashWarning,
				catalog.T(lang, i18n.KeyFillMeanSkipped, strings.Join(rep.SkippedColumns, ", ")))
		}
	}
	redirect(w, r, templates.TabClean)
}

func cleanNotice(c *i18n.Catalog, lang i18n.Code, rep clean.Report) string {
	msg := c.T(lang, i18n.KeySuccessClean)
	if rep.Action == clean.FillMean {
		return msg + " " + c.T(lang, i18n.KeyCellsFilled, rep.CellsFilled)
	}
	return msg + " " + c.T(lang, i18n.KeyRowsRemoved, rep.RowsRemoved())
}

// handleReset forgets the working table.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	if err := s.service.Reset(r.Context(), sid); err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	s.service.Notify(sid, session.FlashInfo, s.service.Catalog().T(s.language(sid), i18n.KeyResetDone))
	redirect(w, r, templates.TabPreview)
}

// handleChart renders one chart of the working table as SVG.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	kind, err := chart.ParseKind(q.Get("kind"))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	spec := chart.Spec{Kind: kind, X: q.Get("x"), Y: q.Get("y")}
	if err := s.service.Chart(r.Context(), sessionID(r), spec, w); err != nil {
		s.respondError(w, r, err, statusFor(err))
	}
}

// handleDownload sends the working table as CSV or XLSX.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	file, err := s.service.Export(r.Context(), sessionID(r), format)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Name}))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	if _, err := w.Write(file.Data); err != nil {
		logging.FromContext(r.Context()).Warn("download interrupted", "file", file.Name, "error", err)
	}
}

// SummaryResponse is the body of GET /api/summary.
type SummaryResponse struct {
	FileName string               `json:"file_name"`
	Summary  profile.Summary      `json:"summary"`
	Columns  []profile.ColumnInfo `json:"columns"`
	Preview  profile.Table        `json:"preview"`
	Describe *profile.Description `json:"describe"`
}

// handleAPISummary returns the profile of the working table.
func (s *Server) handleAPISummary(w http.ResponseWriter, r *http.Request) {
	sess, err := s.service.Sessions().Get(sessionID(r))
	if err == nil && !sess.HasTable() {
		err = core.ErrNoTable
	}
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	f := sess.Table
	resp := SummaryResponse{
		FileName: sess.LastUploaded,
		Summary:  profile.Summarize(f),
		Columns:  profile.Columns(f),
		Preview:  profile.Preview(f, profile.PreviewRows),
	}
	if d, err := profile.Describe(f); err == nil {
		resp.Describe = d
	}
	writeJSON(w, r, resp)
}

// handleAPIAudit returns the session's recent audit entries, newest first.
func (s *Server) handleAPIAudit(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", audit.DefaultRecentLimit)
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	entries, err := s.service.AuditLog(r.Context(), sessionID(r), limit)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	if entries == nil {
		entries = []audit.Entry{}
	}
	writeJSON(w, r, map[string]any{"entries": entries})
}

// handleHealth reports liveness with a few gauges.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]any{
		"status":   "ok",
		"sessions": s.service.Sessions().Len(),
		"parses":   s.service.Limiter().Status(),
	})
}

// language returns the session language, or the default for unknown IDs.
func (s *Server) language(sid string) i18n.Code {
	if sess, err := s.service.Sessions().Get(sid); err == nil {
		return sess.Language
	}
	return i18n.DefaultCode
}

func (s *Server) cleanOptions(lang i18n.Code) []templates.Option {
	labels := map[clean.Action]i18n.Key{
		clean.DropMissing:    i18n.KeyCleanNaNBtn,
		clean.FillMean:       i18n.KeyFillMeanBtn,
		clean.DropDuplicates: i18n.KeyDropDupBtn,
	}
	var out []templates.Option
	for _, a := range clean.Actions() {
		out = append(out, templates.Option{Value: string(a), Label: s.service.Catalog().T(lang, labels[a])})
	}
	return out
}

func (s *Server) downloadOptions(lang i18n.Code) []templates.Option {
	c := s.service.Catalog()
	return []templates.Option{
		{Value: "/download?format=" + string(export.CSV), Label: c.T(lang, i18n.KeyDownloadBtn)},
		{Value: "/download?format=" + string(export.XLSX), Label: c.T(lang, i18n.KeyDownloadXLSXBtn)},
	}
}

// chartView fills the chart tab. X offers every column and Y the numeric
// ones. The image is only requested once the form was submitted and the
// selection validates.
func (s *Server) chartView(f *frame.Frame, q url.Values, lang i18n.Code) templates.ChartView {
	var v templates.ChartView
	names := f.Names()
	if len(names) < 2 {
		v.TooFewColumns = true
		return v
	}

	var numeric []string
	for _, col := range f.Columns() {
		if col.Kind.Numeric() {
			numeric = append(numeric, col.Name)
		}
	}
	if len(numeric) == 0 {
		v.NoNumeric = true
		return v
	}

	x := q.Get("x")
	if x == "" {
		x = names[0]
	}
	y := q.Get("y")
	if y == "" {
		y = numeric[0]
		for _, n := range numeric {
			if n != x {
				y = n
				break
			}
		}
	}
	kind := q.Get("kind")
	if kind == "" {
		kind = string(chart.Bar)
	}

	v.XOptions = selectOptions(names, x)
	v.YOptions = selectOptions(numeric, y)
	kindLabels := map[chart.Kind]i18n.Key{
		chart.Bar:     i18n.KeyChartBar,
		chart.Line:    i18n.KeyChartLine,
		chart.Scatter: i18n.KeyChartScatter,
	}
	for _, k := range chart.Kinds() {
		v.Kinds = append(v.Kinds, templates.Option{
			Value:    string(k),
			Label:    s.service.Catalog().T(lang, kindLabels[k]),
			Selected: string(k) == kind,
		})
	}

	if q.Get("plot") != "1" {
		return v
	}
	k, err := chart.ParseKind(kind)
	if err == nil {
		err = chart.Validate(f, chart.Spec{Kind: k, X: x, Y: y})
	}
	if err != nil {
		v.Error = s.service.Catalog().T(lang, i18n.KeyErrorGeneric, core.MapError(err).Message)
		return v
	}
	v.ImageURL = "/chart.svg?" + url.Values{"kind": {string(k)}, "x": {x}, "y": {y}}.Encode()
	return v
}

func selectOptions(values []string, selected string) []templates.Option {
	out := make([]templates.Option, len(values))
	for i, v := range values {
		out[i] = templates.Option{Value: v, Label: v, Selected: v == selected}
	}
	return out
}

func languageOptions(current i18n.Code) []templates.Option {
	var out []templates.Option
	for _, c := range i18n.Codes() {
		out = append(out, templates.Option{Value: string(c), Label: c.DisplayName(), Selected: c == current})
	}
	return out
}

// statsView describes the numeric columns, or every column as text when
// there are none.
func statsView(f *frame.Frame) *templates.StatsView {
	d, err := profile.Describe(f)
	if err != nil {
		return &templates.StatsView{Table: profile.DescribeObjects(f), TextOnly: true}
	}
	return &templates.StatsView{Table: d.Table()}
}

// redirect sends the browser back to the page on tab after a form post.
func redirect(w http.ResponseWriter, r *http.Request, tab string) {
	http.Redirect(w, r, "/?tab="+templates.ParseTab(tab), http.StatusSeeOther)
}

// parseIntParam parses a positive integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}
