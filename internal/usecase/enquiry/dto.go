package enquiry

import (
	"context"
	"errors"

	"medevac-case-service/internal/domain/district"
	"medevac-case-service/internal/domain/document"
	domain "medevac-case-service/internal/domain/enquiry"
	"medevac-case-service/internal/domain/hospital"
)

func docEntities(enquiryID uint64, in []DocumentInput) []document.Document {
	out := make([]document.Document, 0, len(in))
	for _, d := range in {
		out = append(out, document.Document{
			EnquiryID: enquiryID,
			Type:      d.Type,
			FilePath:  d.FilePath,
		})
	}
	return out
}

// dto assembles the response shape: the row plus its documents and the names
// of the referenced hospitals and district. Missing reference rows are left
// blank rather than failing the read.
func (u *Usecase) dto(ctx context.Context, e *domain.Enquiry) (*EnquiryDTO, error) {
	out := &EnquiryDTO{
		EnquiryID:         e.ID,
		EnquiryCode:       e.EnquiryCode,
		PatientName:       e.PatientName,
		Status:            e.Status,
		IdentityCardType:  e.IdentityCardType,
		PrimaryCardNumber: e.PrimaryCardNumber,
		NationalIDNumber:  e.NationalIDNumber,
		TaxID:             e.TaxID,
		MedicalCondition:  e.MedicalCondition,
		ChiefComplaint:    e.ChiefComplaint,
		GeneralCondition:  e.GeneralCondition,
		Vitals:            e.Vitals,
		HospitalID:        e.HospitalID,
		SourceHospitalID:  e.SourceHospital,
		DistrictID:        e.DistrictID,
		ContactName:       e.ContactName,
		ContactPhone:      e.ContactPhone,
		ContactEmail:      e.ContactEmail,
		SubmittedByUserID: e.SubmittedByUserID,
		Documents:         []DocumentDTO{},
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}

	docs, err := u.docs.ListByEnquiryID(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		out.Documents = append(out.Documents, DocumentDTO{DocumentID: d.ID, Type: d.Type, FilePath: d.FilePath})
	}

	if h, err := u.hospitals.GetByID(ctx, e.HospitalID); err == nil {
		out.HospitalName = h.Name
	} else if !errors.Is(err, hospital.ErrNotFound) {
		return nil, err
	}
	if h, err := u.hospitals.GetByID(ctx, e.SourceHospital); err == nil {
		out.SourceHospitalName = h.Name
	} else if !errors.Is(err, hospital.ErrNotFound) {
		return nil, err
	}
	if d, err := u.districts.GetByID(ctx, e.DistrictID); err == nil {
		out.DistrictName = d.Name
	} else if !errors.Is(err, district.ErrNotFound) {
		return nil, err
	}
	return out, nil
}
