package mysql

import (
	"context"
	"errors"
	"testing"

	"medevac-case-service/internal/domain/hospital"
)

func TestHospitalListByDistrictID(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	rows := []hospitalSQLite{
		{Name: "Zonal General", DistrictID: 1, Type: "Government"},
		{Name: "Apex Trauma", DistrictID: 1, Type: "Private"},
		{Name: "Hill View", DistrictID: 2, Type: "Government"},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	repo := NewHospitalRepository(db)
	got, err := repo.ListByDistrictID(ctx, 1)
	if err != nil {
		t.Fatalf("ListByDistrictID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d", len(got))
	}
	if got[0].Name != "Apex Trauma" {
		t.Fatalf("expected name ordering, got %q first", got[0].Name)
	}
}

func TestHospitalGetByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewHospitalRepository(db)

	_, err := repo.GetByID(context.Background(), 9)
	if !errors.Is(err, hospital.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDistrictList_OrdersByName(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	for _, name := range []string{"Mandi", "Bilaspur", "Kullu"} {
		if err := db.Create(&districtSQLite{Name: name, State: "HP"}).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	repo := NewDistrictRepository(db)
	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 || got[0].Name != "Bilaspur" {
		t.Fatalf("got=%+v", got)
	}
}
