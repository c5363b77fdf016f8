package mysql

import (
	"context"
	"testing"

	domain "medevac-case-service/internal/domain/document"
)

func TestDocumentCreateBatchAndList(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	docs := []domain.Document{
		{EnquiryID: 1, Type: domain.TypePrimaryProof, FilePath: "/uploads/abha.pdf"},
		{EnquiryID: 1, Type: domain.TypeMedicalReport, FilePath: "/uploads/report.pdf"},
		{EnquiryID: 2, Type: domain.TypeOther, FilePath: "/uploads/misc.pdf"},
	}
	if err := repo.CreateBatch(ctx, docs); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	rows, err := repo.ListByEnquiryID(ctx, 1)
	if err != nil {
		t.Fatalf("ListByEnquiryID: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len=%d", len(rows))
	}
	if rows[0].Type != domain.TypePrimaryProof || rows[1].Type != domain.TypeMedicalReport {
		t.Fatalf("rows out of order: %+v", rows)
	}
}

func TestDocumentCreateBatch_EmptyIsNoop(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)

	if err := repo.CreateBatch(context.Background(), nil); err != nil {
		t.Fatalf("CreateBatch(nil): %v", err)
	}
}

func TestDocumentDeleteByEnquiryID(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	docs := []domain.Document{
		{EnquiryID: 1, Type: domain.TypeIDProof, FilePath: "/uploads/id.pdf"},
		{EnquiryID: 2, Type: domain.TypeIDProof, FilePath: "/uploads/id2.pdf"},
	}
	if err := repo.CreateBatch(ctx, docs); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	if err := repo.DeleteByEnquiryID(ctx, 1); err != nil {
		t.Fatalf("DeleteByEnquiryID: %v", err)
	}

	rows, err := repo.ListByEnquiryID(ctx, 1)
	if err != nil {
		t.Fatalf("ListByEnquiryID: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("len=%d after delete", len(rows))
	}
	kept, err := repo.ListByEnquiryID(ctx, 2)
	if err != nil {
		t.Fatalf("ListByEnquiryID: %v", err)
	}
	if len(kept) != 1 {
		t.Fatalf("other enquiry documents gone: len=%d", len(kept))
	}
}
