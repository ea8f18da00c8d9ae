package export

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"jobapply-backend/internal/jobs"
	"jobapply-backend/internal/shared/storage/object/local"
)

const sampleLetter = `Dear Hiring Manager,

I am excited to apply for the Data Engineer position at Acme.

My background in Python and SQL fits the role well.

Sincerely,
Jane Doe`

func TestRenderProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleLetter); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output does not start with PDF header: %q", buf.Bytes()[:8])
	}
}

func TestSplitParagraphs(t *testing.T) {
	paras := splitParagraphs(sampleLetter)
	if len(paras) != 4 {
		t.Fatalf("paragraphs = %d, want 4", len(paras))
	}
	// Single newlines inside a paragraph collapse to spaces.
	if paras[3] != "Sincerely, Jane Doe" {
		t.Fatalf("closing = %q", paras[3])
	}
}

func TestIsSalutation(t *testing.T) {
	cases := map[string]bool{
		"Dear Hiring Manager,":             true,
		"Best regards, Jane":               true,
		"I bring five years of experience": false,
	}
	for para, want := range cases {
		if got := isSalutation(para); got != want {
			t.Fatalf("isSalutation(%q) = %v, want %v", para, got, want)
		}
	}
}

func TestGeneratedFileName(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	got := GeneratedFileName("Acme & Co.", "Data Engineer (m/f)", now)
	want := "CoverLetter_Acme  Co_Data Engineer mf_20260314_150926.pdf"
	if got != want {
		t.Fatalf("filename = %q, want %q", got, want)
	}
}

func seededJobs(t *testing.T) *jobs.Service {
	t.Helper()
	repo := jobs.NewMemoryRepo()
	title := "Data Engineer"
	company := "Acme"
	if _, err := repo.Create(context.Background(), jobs.Posting{Title: &title, Company: &company}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return jobs.NewService(repo)
}

func TestServiceExportStoresPDF(t *testing.T) {
	store := local.New(t.TempDir())
	svc := NewService(seededJobs(t), store)

	exp, err := svc.Export(context.Background(), 1, sampleLetter, "")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.HasPrefix(exp.FileName, "CoverLetter_Acme_Data Engineer_") {
		t.Fatalf("filename = %q", exp.FileName)
	}
	if exp.SizeBytes == 0 {
		t.Fatalf("size = 0")
	}

	body, err := store.Open(context.Background(), exp.StorageKey)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer body.Close()
	head := make([]byte, 5)
	if _, err := body.Read(head); err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(head) != "%PDF-" {
		t.Fatalf("stored object is not a PDF: %q", head)
	}
}

func TestServiceExportMissingJob(t *testing.T) {
	svc := NewService(seededJobs(t), local.New(t.TempDir()))
	if _, err := svc.Export(context.Background(), 42, sampleLetter, ""); !errors.Is(err, jobs.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
