package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
)

type paymentService struct {
	BaseService
	tx          portsrepo.Transactor
	paymentRepo portsrepo.PaymentRepositoryFacade
	invoiceRepo portsrepo.InvoiceReader
	personRepo  portsrepo.PersonReader
	identifier  portssvc.IdentifierService
	ledger      portssvc.LedgerPosterSvc
	audit       portssvc.AuditChainSvc
}

// NewPaymentService creates the payment lifecycle service.
func NewPaymentService(
	tx portsrepo.Transactor,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	invoiceRepo portsrepo.InvoiceReader,
	personRepo portsrepo.PersonReader,
	identifier portssvc.IdentifierService,
	ledger portssvc.LedgerPosterSvc,
	audit portssvc.AuditChainSvc,
	opts ...ServiceOption,
) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		tx:          tx,
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		personRepo:  personRepo,
		identifier:  identifier,
		ledger:      ledger,
		audit:       audit,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) GetPayment(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	method, ok := domain.ParsePaymentMethod(req.Method)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported payment method %q", apperrors.ErrValidation, req.Method)
	}
	cal, err := s.identifier.ResolveCalendar(req.Calendar)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	payment := &domain.Payment{
		Direction: domain.PaymentDirection(req.Direction),
		Method:    method,
		Amount:    req.Amount,
		PartyID:   req.PartyID,
		PartyName: req.PartyName,
		Reference: req.Reference,
		InvoiceID: req.InvoiceID,
		DueDate:   req.DueDate,
		Note:      req.Note,
		Status:    domain.PaymentDraft,
		Calendar:  cal,
		DocumentTimes: domain.DocumentTimes{
			ClientTime: req.ClientTime,
			ServerTime: now,
		},
	}
	if req.TrackingCode != nil && *req.TrackingCode != "" {
		payment.TrackingCode = *req.TrackingCode
	}

	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		partyName, err := resolveParty(txCtx, s.personRepo, payment.PartyID, payment.PartyName)
		if err != nil {
			return err
		}
		payment.PartyName = partyName
		if payment.InvoiceID != nil {
			invoice, err := s.invoiceRepo.FindInvoiceByID(txCtx, *payment.InvoiceID)
			if err != nil {
				return err
			}
			if payment.Reference == nil || *payment.Reference == "" {
				ref := invoice.InvoiceNumber
				payment.Reference = &ref
			}
			if payment.TrackingCode == "" {
				payment.TrackingCode = invoice.TrackingCode
			}
		}
		if payment.TrackingCode == "" {
			code, err := s.identifier.TrackingCode()
			if err != nil {
				return err
			}
			payment.TrackingCode = code
		}

		if err := s.paymentRepo.CreatePayment(txCtx, payment); err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		effective := now
		if req.ClientTime != nil {
			effective = *req.ClientTime
		}
		payment.PaymentNumber = s.identifier.PaymentNumber(payment.Direction, payment.ID, effective, cal)
		if err := s.paymentRepo.SetPaymentNumber(txCtx, payment.ID, payment.PaymentNumber); err != nil {
			return fmt.Errorf("failed to assign payment number: %w", err)
		}

		if _, err := s.audit.Append(txCtx, domain.EntityPayment, strconv.FormatInt(payment.ID, 10), domain.ActionCreate, paymentSnapshot(payment)); err != nil {
			return fmt.Errorf("%w: audit append for payment %d: %w", apperrors.ErrIntegrity, payment.ID, err)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create payment", slog.String("direction", req.Direction))
		return nil, err
	}

	s.LogInfo(ctx, "Payment created",
		slog.Int64("payment_id", payment.ID),
		slog.String("payment_number", payment.PaymentNumber))
	return payment, nil
}

func (s *paymentService) FinalizePayment(ctx context.Context, paymentID int64, req dto.FinalizeRequest) (*domain.Payment, error) {
	var (
		result        *domain.Payment
		alreadyPosted bool
	)

	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		payment, err := s.paymentRepo.FindPaymentByIDForUpdate(txCtx, paymentID)
		if err != nil {
			return err
		}
		if payment.Status == domain.PaymentPosted {
			result, alreadyPosted = payment, true
			return nil
		}

		now := s.Now()
		swapped, err := s.paymentRepo.MarkPaymentPosted(txCtx, paymentID, now, req.ClientTime)
		if err != nil {
			return fmt.Errorf("failed to mark payment posted: %w", err)
		}
		if !swapped {
			current, err := s.paymentRepo.FindPaymentByID(txCtx, paymentID)
			if err != nil {
				return err
			}
			result, alreadyPosted = current, true
			return nil
		}

		payment.Status = domain.PaymentPosted
		payment.PostedAt = &now
		if req.ClientTime != nil {
			payment.ClientTime = req.ClientTime
		}

		debit, credit := payment.LedgerAccounts()
		description := "Payment " + payment.PaymentNumber
		trackingCode := payment.TrackingCode
		entryDate := now
		if req.ClientTime != nil {
			entryDate = *req.ClientTime
		}
		if _, err := s.ledger.Post(txCtx, domain.LedgerPosting{
			DebitAccount:  debit,
			CreditAccount: credit,
			Amount:        payment.Amount,
			RefType:       domain.RefPayment,
			RefID:         payment.ID,
			PartyID:       payment.PartyID,
			PartyName:     payment.PartyName,
			Description:   &description,
			TrackingCode:  &trackingCode,
			EntryDate:     entryDate,
		}); err != nil {
			return fmt.Errorf("%w: ledger post for payment %d: %w", apperrors.ErrIntegrity, payment.ID, err)
		}

		if _, err := s.audit.Append(txCtx, domain.EntityPayment, strconv.FormatInt(payment.ID, 10), domain.ActionFinalize, paymentSnapshot(payment)); err != nil {
			return fmt.Errorf("%w: audit append for payment %d: %w", apperrors.ErrIntegrity, payment.ID, err)
		}
		result = payment
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to finalize payment", slog.Int64("payment_id", paymentID))
		return nil, err
	}

	if alreadyPosted {
		s.LogInfo(ctx, "Payment already posted, nothing to do", slog.Int64("payment_id", paymentID))
	} else {
		s.LogInfo(ctx, "Payment posted", slog.Int64("payment_id", paymentID))
	}
	return result, nil
}

func paymentSnapshot(p *domain.Payment) map[string]any {
	snapshot := map[string]any{
		"id":             p.ID,
		"payment_number": p.PaymentNumber,
		"direction":      string(p.Direction),
		"method":         string(p.Method),
		"amount":         p.Amount,
		"status":         string(p.Status),
		"tracking_code":  p.TrackingCode,
		"calendar":       string(p.Calendar),
	}
	if p.InvoiceID != nil {
		snapshot["invoice_id"] = *p.InvoiceID
	}
	if p.Reference != nil {
		snapshot["reference"] = *p.Reference
	}
	if p.PartyID != nil {
		snapshot["party_id"] = *p.PartyID
	}
	return snapshot
}
