package enquiry

import (
	"context"
	"fmt"

	"medevac-case-service/internal/domain/district"
	"medevac-case-service/internal/domain/document"
	domain "medevac-case-service/internal/domain/enquiry"
	"medevac-case-service/internal/domain/escalation"
	"medevac-case-service/internal/domain/hospital"
	"medevac-case-service/internal/domain/user"
	"medevac-case-service/internal/domain/uow"

	"go.uber.org/zap"
)

type Usecase struct {
	repo      domain.Repository
	docs      document.Repository
	hospitals hospital.Repository
	districts district.Repository
	uow       uow.UnitOfWork
	log       *zap.Logger
}

func NewUsecase(r domain.Repository, docs document.Repository, hospitals hospital.Repository, districts district.Repository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, docs: docs, hospitals: hospitals, districts: districts, uow: tx, log: log}
}

func validateDocuments(docs []DocumentInput) error {
	for _, d := range docs {
		if !d.Type.Valid() {
			return &domain.ValidationError{Field: "document_type", Message: fmt.Sprintf("invalid document type: %s", d.Type)}
		}
	}
	return nil
}

func (u *Usecase) Create(ctx context.Context, in CreateEnquiryInput) (*EnquiryDTO, error) {
	if err := in.proof().Validate(); err != nil {
		return nil, err
	}
	if err := validateDocuments(in.Documents); err != nil {
		return nil, err
	}

	e := newEntity(in)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Enquiries.Create(ctx, e); err != nil {
			return err
		}
		if len(in.Documents) > 0 {
			return r.Documents.CreateBatch(ctx, docEntities(e.ID, in.Documents))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("enquiry created",
		zap.Uint64("enquiry_id", e.ID),
		zap.String("enquiry_code", e.EnquiryCode))
	return u.dto(ctx, e)
}

func (u *Usecase) Get(ctx context.Context, actor user.Actor, id uint64) (*EnquiryDTO, error) {
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// CMO visibility: own submissions only; others look like not-found
	if actor.RestrictedToOwn() && e.SubmittedByUserID != actor.UserID {
		return nil, domain.ErrNotFound
	}
	return u.dto(ctx, e)
}

func (u *Usecase) List(ctx context.Context, actor user.Actor) ([]EnquiryDTO, error) {
	var (
		rows []domain.Enquiry
		err  error
	)
	if actor.RestrictedToOwn() {
		rows, err = u.repo.ListBySubmitter(ctx, actor.UserID)
	} else {
		rows, err = u.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]EnquiryDTO, 0, len(rows))
	for i := range rows {
		dto, err := u.dto(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateEnquiryInput) (*EnquiryDTO, error) {
	if in.Documents != nil {
		if err := validateDocuments(in.Documents); err != nil {
			return nil, err
		}
	}

	var updated *domain.Enquiry
	err := u.uow.WithinEnquiryTx(ctx, id, func(r uow.Repos, e *domain.Enquiry) error {
		applyUpdate(e, in)
		if in.touchesIdentity() {
			if err := e.Identity().Validate(); err != nil {
				return err
			}
		}
		if err := r.Enquiries.Save(ctx, e); err != nil {
			return err
		}
		if in.Documents != nil {
			if err := r.Documents.DeleteByEnquiryID(ctx, id); err != nil {
				return err
			}
			if len(in.Documents) > 0 {
				if err := r.Documents.CreateBatch(ctx, docEntities(id, in.Documents)); err != nil {
					return err
				}
			}
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.dto(ctx, updated)
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	err := u.uow.WithinEnquiryTx(ctx, id, func(r uow.Repos, e *domain.Enquiry) error {
		// dependents go first so the enquiry row can be removed cleanly
		if err := r.Documents.DeleteByEnquiryID(ctx, id); err != nil {
			return err
		}
		if err := r.Escalations.DeleteByEnquiryID(ctx, id); err != nil {
			return err
		}
		if err := r.Queries.DeleteByEnquiryID(ctx, id); err != nil {
			return err
		}
		return r.Enquiries.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	u.log.Info("enquiry deleted with dependents", zap.Uint64("enquiry_id", id))
	return nil
}

// Verify marks the enquiry VERIFIED; verifying twice is a conflict.
func (u *Usecase) Verify(ctx context.Context, id uint64) (*EnquiryDTO, error) {
	return u.transition(ctx, id, domain.StatusVerified, func(s domain.Status) bool {
		return s != domain.StatusVerified
	})
}

// Forward hands the enquiry to the district magistrate.
func (u *Usecase) Forward(ctx context.Context, id uint64) (*EnquiryDTO, error) {
	return u.transition(ctx, id, domain.StatusForwarded, func(s domain.Status) bool {
		return s != domain.StatusForwarded
	})
}

// ApproveOrReject applies the terminal decision. Once either has been applied
// the other fails with a conflict naming the current state.
func (u *Usecase) ApproveOrReject(ctx context.Context, id uint64, action string) (*EnquiryDTO, error) {
	var next domain.Status
	switch action {
	case "APPROVE":
		next = domain.StatusApproved
	case "REJECT":
		next = domain.StatusRejected
	default:
		return nil, &domain.ValidationError{Field: "action", Message: "must be APPROVE or REJECT"}
	}
	return u.transition(ctx, id, next, func(s domain.Status) bool {
		return s != domain.StatusApproved && s != domain.StatusRejected
	})
}

// Escalate flips the enquiry to ESCALATED and opens a PENDING escalation in
// the same transaction; if the insert fails the status write rolls back.
func (u *Usecase) Escalate(ctx context.Context, id uint64, in EscalateInput) (*EnquiryDTO, error) {
	if in.Reason == "" {
		return nil, &domain.ValidationError{Field: "escalation_reason", Message: "is required"}
	}
	if in.EscalatedTo == "" {
		return nil, &domain.ValidationError{Field: "escalated_to", Message: "is required"}
	}
	if in.ByUserID == 0 {
		return nil, &domain.ValidationError{Field: "escalated_by_user_id", Message: "is required"}
	}

	var updated *domain.Enquiry
	err := u.uow.WithinEnquiryTx(ctx, id, func(r uow.Repos, e *domain.Enquiry) error {
		if e.Status == domain.StatusEscalated {
			return &domain.ConflictError{Current: e.Status}
		}
		esc := &escalation.CaseEscalation{
			EnquiryID:         e.ID,
			EscalatedByUserID: in.ByUserID,
			EscalationReason:  in.Reason,
			EscalatedTo:       in.EscalatedTo,
			Status:            escalation.StatusPending,
		}
		if err := r.Escalations.Create(ctx, esc); err != nil {
			return err
		}
		e.Status = domain.StatusEscalated
		updated = e
		return r.Enquiries.Save(ctx, e)
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("enquiry escalated",
		zap.Uint64("enquiry_id", id),
		zap.String("escalated_to", in.EscalatedTo))
	return u.dto(ctx, updated)
}

func (u *Usecase) transition(ctx context.Context, id uint64, next domain.Status, allowed func(domain.Status) bool) (*EnquiryDTO, error) {
	var updated *domain.Enquiry
	err := u.uow.WithinEnquiryTx(ctx, id, func(r uow.Repos, e *domain.Enquiry) error {
		if !allowed(e.Status) {
			return &domain.ConflictError{Current: e.Status}
		}
		e.Status = next
		updated = e
		return r.Enquiries.Save(ctx, e)
	})
	if err != nil {
		return nil, err
	}
	return u.dto(ctx, updated)
}

func newEntity(in CreateEnquiryInput) *domain.Enquiry {
	return &domain.Enquiry{
		PatientName:                      in.PatientName,
		FatherSpouseName:                 in.FatherSpouseName,
		Age:                              in.Age,
		Gender:                           in.Gender,
		Address:                          in.Address,
		IdentityCardType:                 in.IdentityCardType,
		PrimaryCardNumber:                in.PrimaryCardNumber,
		NationalIDNumber:                 in.NationalIDNumber,
		TaxID:                            in.TaxID,
		MedicalCondition:                 in.MedicalCondition,
		ChiefComplaint:                   in.ChiefComplaint,
		GeneralCondition:                 in.GeneralCondition,
		Vitals:                           in.Vitals,
		ReferringPhysicianName:           in.ReferringPhysicianName,
		ReferringPhysicianDesignation:    in.ReferringPhysicianDesignation,
		ReferralNote:                     in.ReferralNote,
		HospitalID:                       in.HospitalID,
		SourceHospital:                   in.SourceHospitalID,
		DistrictID:                       in.DistrictID,
		TransportationCategory:           in.TransportationCategory,
		AirTransportType:                 in.AirTransportType,
		RecommendingAuthorityName:        in.RecommendingAuthorityName,
		RecommendingAuthorityDesignation: in.RecommendingAuthorityDesignation,
		ApprovalAuthorityName:            in.ApprovalAuthorityName,
		ApprovalAuthorityDesignation:     in.ApprovalAuthorityDesignation,
		BedAvailabilityConfirmed:         in.BedAvailabilityConfirmed,
		ALSAmbulanceArranged:             in.ALSAmbulanceArranged,
		AmbulanceRegistrationNumber:      in.AmbulanceRegistrationNumber,
		AmbulanceContact:                 in.AmbulanceContact,
		ContactName:                      in.ContactName,
		ContactPhone:                     in.ContactPhone,
		ContactEmail:                     in.ContactEmail,
		MedicalTeamNote:                  in.MedicalTeamNote,
		Remarks:                          in.Remarks,
		SubmittedByUserID:                in.SubmittedByUserID,
		Status:                           domain.StatusPending,
	}
}

func applyUpdate(e *domain.Enquiry, in UpdateEnquiryInput) {
	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setStr(&e.PatientName, in.PatientName)
	setStr(&e.FatherSpouseName, in.FatherSpouseName)
	if in.Age != nil {
		e.Age = *in.Age
	}
	setStr(&e.Gender, in.Gender)
	setStr(&e.Address, in.Address)
	if in.IdentityCardType != nil {
		e.IdentityCardType = *in.IdentityCardType
	}
	setStr(&e.PrimaryCardNumber, in.PrimaryCardNumber)
	setStr(&e.NationalIDNumber, in.NationalIDNumber)
	setStr(&e.TaxID, in.TaxID)
	setStr(&e.MedicalCondition, in.MedicalCondition)
	setStr(&e.ChiefComplaint, in.ChiefComplaint)
	setStr(&e.GeneralCondition, in.GeneralCondition)
	setStr(&e.Vitals, in.Vitals)
	setStr(&e.ReferringPhysicianName, in.ReferringPhysicianName)
	setStr(&e.ReferringPhysicianDesignation, in.ReferringPhysicianDesignation)
	setStr(&e.ReferralNote, in.ReferralNote)
	if in.HospitalID != nil {
		e.HospitalID = *in.HospitalID
	}
	if in.SourceHospitalID != nil {
		e.SourceHospital = *in.SourceHospitalID
	}
	if in.DistrictID != nil {
		e.DistrictID = *in.DistrictID
	}
	setStr(&e.TransportationCategory, in.TransportationCategory)
	setStr(&e.AirTransportType, in.AirTransportType)
	setStr(&e.RecommendingAuthorityName, in.RecommendingAuthorityName)
	setStr(&e.RecommendingAuthorityDesignation, in.RecommendingAuthorityDesignation)
	setStr(&e.ApprovalAuthorityName, in.ApprovalAuthorityName)
	setStr(&e.ApprovalAuthorityDesignation, in.ApprovalAuthorityDesignation)
	if in.BedAvailabilityConfirmed != nil {
		e.BedAvailabilityConfirmed = *in.BedAvailabilityConfirmed
	}
	if in.ALSAmbulanceArranged != nil {
		e.ALSAmbulanceArranged = *in.ALSAmbulanceArranged
	}
	setStr(&e.AmbulanceRegistrationNumber, in.AmbulanceRegistrationNumber)
	setStr(&e.AmbulanceContact, in.AmbulanceContact)
	setStr(&e.ContactName, in.ContactName)
	setStr(&e.ContactPhone, in.ContactPhone)
	setStr(&e.ContactEmail, in.ContactEmail)
	setStr(&e.MedicalTeamNote, in.MedicalTeamNote)
	setStr(&e.Remarks, in.Remarks)
}
