package core

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/JonMunkholm/datazen/internal/audit"
	"github.com/JonMunkholm/datazen/internal/chart"
	"github.com/JonMunkholm/datazen/internal/i18n"
	"github.com/JonMunkholm/datazen/internal/ingest"
	"github.com/JonMunkholm/datazen/internal/session"
)

const fiveByThree = "name,score,city\n" +
	"ann,10,Oslo\n" +
	"bob,,Rome\n" +
	"cid,20,Lima\n" +
	"dee,30,Oslo\n" +
	"eve,40,Kyiv\n"

// exportedFiveByThree is fiveByThree written back out. The score column has
// a gap, so it reads as float64.
const exportedFiveByThree = "name,score,city\n" +
	"ann,10.0,Oslo\n" +
	"bob,,Rome\n" +
	"cid,20.0,Lima\n" +
	"dee,30.0,Oslo\n" +
	"eve,40.0,Kyiv\n"

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	svc := NewService(session.NewStore(time.Hour), audit.NewMemoryRecorder(100), Options{MaxFileSize: 1 << 20})
	sess, _ := svc.Sessions().GetOrCreate("", i18n.EN)
	return svc, sess.ID
}

func mustUpload(t *testing.T, svc *Service, id, name, data string) UploadOutcome {
	t.Helper()
	out, err := svc.Upload(context.Background(), id, name, strings.NewReader(data))
	if err != nil {
		t.Fatalf("Upload(%s) error = %v", name, err)
	}
	return out
}

func TestUpload_Summary(t *testing.T) {
	svc, id := newTestService(t)

	out := mustUpload(t, svc, id, "people.csv", fiveByThree)
	if !out.Replaced {
		t.Error("first upload should replace the empty session")
	}
	if out.Summary.Rows != 5 || out.Summary.Cols != 3 || out.Summary.Missing != 1 {
		t.Errorf("Summary = %+v, want rows=5 cols=3 missing=1", out.Summary)
	}
}

func TestUpload_SameNameKeepsCleanedTable(t *testing.T) {
	svc, id := newTestService(t)
	ctx := context.Background()

	mustUpload(t, svc, id, "people.csv", fiveByThree)
	if _, err := svc.Clean(ctx, id, "drop_missing"); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	out := mustUpload(t, svc, id, "people.csv", fiveByThree)
	if out.Replaced {
		t.Error("same file name should keep the working table")
	}
	if out.Summary.Rows != 4 {
		t.Errorf("Rows = %d, want 4 (cleaned table kept)", out.Summary.Rows)
	}

	out = mustUpload(t, svc, id, "other.csv", fiveByThree)
	if !out.Replaced || out.Summary.Rows != 5 {
		t.Errorf("new file name should replace the table, got %+v", out)
	}
}

func TestUpload_FailureKeepsPreviousTable(t *testing.T) {
	svc, id := newTestService(t)
	ctx := context.Background()
	mustUpload(t, svc, id, "people.csv", fiveByThree)

	tests := []struct {
		name    string
		file    string
		data    string
		wantErr error
	}{
		{"empty", "empty.csv", "", ingest.ErrEmptyFile},
		{"unsupported", "notes.txt", "a,b\n1,2\n", ingest.ErrUnsupportedType},
		{"too large", "big.csv", "a\n" + strings.Repeat("1\n", 1<<20), ingest.ErrFileTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(ctx, id, tt.file, strings.NewReader(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Upload() error = %v, want %v", err, tt.wantErr)
			}
			if !IsFileError(err) {
				t.Errorf("IsFileError(%v) = false", err)
			}

			sess, _ := svc.Sessions().Get(id)
			if sess.LastUploaded != "people.csv" || sess.Table.Rows() != 5 {
				t.Errorf("session changed after failed upload: %q rows=%d", sess.LastUploaded, sess.Table.Rows())
			}
		})
	}
}

func TestUpload_NoFile(t *testing.T) {
	svc, id := newTestService(t)
	if _, err := svc.Upload(context.Background(), id, "", strings.NewReader("a\n1\n")); !errors.Is(err, ErrNoFile) {
		t.Errorf("Upload() error = %v, want ErrNoFile", err)
	}
}

func TestClean_FillMean(t *testing.T) {
	svc, id := newTestService(t)
	mustUpload(t, svc, id, "people.csv", fiveByThree)

	rep, err := svc.Clean(context.Background(), id, "fill_mean")
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if rep.CellsFilled != 1 {
		t.Errorf("CellsFilled = %d, want 1", rep.CellsFilled)
	}

	sess, _ := svc.Sessions().Get(id)
	col, _ := sess.Table.Column("score")
	if got := col.Cells[1].Num; got != 25 {
		t.Errorf("filled value = %v, want 25", got)
	}
	if sess.Table.MissingCount() != 0 {
		t.Errorf("MissingCount = %d, want 0", sess.Table.MissingCount())
	}
}

func TestClean_Errors(t *testing.T) {
	svc, id := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Clean(ctx, id, "drop_missing"); !errors.Is(err, ErrNoTable) {
		t.Errorf("Clean() without table error = %v, want ErrNoTable", err)
	}
	mustUpload(t, svc, id, "people.csv", fiveByThree)
	if _, err := svc.Clean(ctx, id, "shuffle"); MapError(err).Code != "CLN001" {
		t.Errorf("Clean(shuffle) code = %q, want CLN001", MapError(err).Code)
	}
}

func TestSetLanguage_KeepsTable(t *testing.T) {
	svc, id := newTestService(t)
	ctx := context.Background()
	mustUpload(t, svc, id, "people.csv", fiveByThree)

	code, err := svc.SetLanguage(ctx, id, "ja")
	if err != nil {
		t.Fatalf("SetLanguage() error = %v", err)
	}
	if code != i18n.JA {
		t.Errorf("code = %q, want JA", code)
	}

	sess, _ := svc.Sessions().Get(id)
	if sess.Language != i18n.JA || sess.Table == nil || sess.Table.Rows() != 5 {
		t.Errorf("unexpected session after language switch: %+v", sess)
	}

	if _, err := svc.SetLanguage(ctx, id, "xx"); !errors.Is(err, i18n.ErrUnknownLanguage) {
		t.Errorf("SetLanguage(xx) error = %v", err)
	}
}

func TestChart(t *testing.T) {
	svc, id := newTestService(t)
	ctx := context.Background()

	var buf bytes.Buffer
	if err := svc.Chart(ctx, id, chart.Spec{Kind: chart.Bar, X: "city", Y: "score"}, &buf); !errors.Is(err, ErrNoTable) {
		t.Errorf("Chart() without table error = %v, want ErrNoTable", err)
	}

	mustUpload(t, svc, id, "people.csv", fiveByThree)
	if err := svc.Chart(ctx, id, chart.Spec{Kind: chart.Bar, X: "city", Y: "score"}, &buf); err != nil {
		t.Fatalf("Chart() error = %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("Chart() did not write SVG")
	}

	mustUpload(t, svc, id, "one.csv", "only\n1\n2\n")
	buf.Reset()
	err := svc.Chart(ctx, id, chart.Spec{Kind: chart.Bar, X: "only", Y: "only"}, &buf)
	if !errors.Is(err, chart.ErrTooFewColumns) {
		t.Errorf("Chart() on one column error = %v, want ErrTooFewColumns", err)
	}
	if buf.Len() != 0 {
		t.Error("no chart should be written for a one-column table")
	}
}

func TestExport(t *testing.T) {
	svc, id := newTestService(t)
	ctx := context.Background()
	mustUpload(t, svc, id, "people.csv", fiveByThree)

	file, err := svc.Export(ctx, id, "csv")
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if file.Name != "cleaned_people.csv" || file.ContentType != "text/csv" {
		t.Errorf("unexpected file %q %q", file.Name, file.ContentType)
	}
	if string(file.Data) != exportedFiveByThree {
		t.Errorf("exported data = %q, want %q", file.Data, exportedFiveByThree)
	}

	xlsx, err := svc.Export(ctx, id, "xlsx")
	if err != nil {
		t.Fatalf("Export(xlsx) error = %v", err)
	}
	if xlsx.Name != "cleaned_people.xlsx" || len(xlsx.Data) == 0 {
		t.Errorf("unexpected xlsx export %q (%d bytes)", xlsx.Name, len(xlsx.Data))
	}
}

func TestReset(t *testing.T) {
	svc, id := newTestService(t)
	ctx := context.Background()
	mustUpload(t, svc, id, "people.csv", fiveByThree)

	if err := svc.Reset(ctx, id); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	sess, _ := svc.Sessions().Get(id)
	if sess.HasTable() || sess.LastUploaded != "" {
		t.Error("Reset() should forget table and file name")
	}

	out := mustUpload(t, svc, id, "people.csv", fiveByThree)
	if !out.Replaced {
		t.Error("upload after reset should load the file again")
	}
}

func TestAuditLog(t *testing.T) {
	svc, id := newTestService(t)
	ctx := context.Background()
	mustUpload(t, svc, id, "people.csv", fiveByThree)
	if _, err := svc.Clean(ctx, id, "drop_duplicates"); err != nil {
		t.Fatal(err)
	}

	entries, err := svc.AuditLog(ctx, id, 10)
	if err != nil {
		t.Fatalf("AuditLog() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Action != audit.ActionClean || entries[0].Detail != "drop_duplicates" {
		t.Errorf("newest entry = %+v", entries[0])
	}
	if entries[1].Action != audit.ActionUpload || entries[1].FileName != "people.csv" {
		t.Errorf("oldest entry = %+v", entries[1])
	}
}

type failingRecorder struct{}

func (failingRecorder) Record(context.Context, audit.Entry) error { return errors.New("db down") }
func (failingRecorder) Recent(context.Context, string, int) ([]audit.Entry, error) {
	return nil, errors.New("db down")
}

func TestAuditFailureDoesNotFailAction(t *testing.T) {
	svc := NewService(session.NewStore(time.Hour), failingRecorder{}, Options{})
	sess, _ := svc.Sessions().GetOrCreate("", i18n.EN)

	if _, err := svc.Upload(context.Background(), sess.ID, "people.csv", strings.NewReader(fiveByThree)); err != nil {
		t.Fatalf("Upload() error = %v, audit failures must not surface", err)
	}
}

func TestNotify(t *testing.T) {
	svc, id := newTestService(t)
	svc.Notify(id, session.FlashSuccess, "ok")

	flashes := svc.Sessions().PopFlashes(id)
	if len(flashes) != 1 || flashes[0].Text != "ok" {
		t.Errorf("flashes = %+v", flashes)
	}
}
