package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
)

type invoiceService struct {
	BaseService
	tx          portsrepo.Transactor
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	productRepo portsrepo.ProductRepositoryFacade
	personRepo  portsrepo.PersonReader
	identifier  portssvc.IdentifierService
	ledger      portssvc.LedgerPosterSvc
	audit       portssvc.AuditChainSvc
}

// NewInvoiceService creates the invoice lifecycle service.
func NewInvoiceService(
	tx portsrepo.Transactor,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	productRepo portsrepo.ProductRepositoryFacade,
	personRepo portsrepo.PersonReader,
	identifier portssvc.IdentifierService,
	ledger portssvc.LedgerPosterSvc,
	audit portssvc.AuditChainSvc,
	opts ...ServiceOption,
) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		tx:          tx,
		invoiceRepo: invoiceRepo,
		productRepo: productRepo,
		personRepo:  personRepo,
		identifier:  identifier,
		ledger:      ledger,
		audit:       audit,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// buildInvoiceItems computes line totals and the invoice total, rejecting
// anything that would not fit in an int64.
func buildInvoiceItems(reqs []dto.CreateInvoiceItemRequest) ([]domain.InvoiceItem, int64, error) {
	items := make([]domain.InvoiceItem, 0, len(reqs))
	var total int64
	for i, r := range reqs {
		if r.UnitPrice != 0 && r.Quantity > math.MaxInt64/r.UnitPrice {
			return nil, 0, fmt.Errorf("%w: item %d", ErrAmountOverflow, i)
		}
		lineTotal := r.Quantity * r.UnitPrice
		if total > math.MaxInt64-lineTotal {
			return nil, 0, fmt.Errorf("%w: invoice total", ErrAmountOverflow)
		}
		total += lineTotal
		items = append(items, domain.InvoiceItem{
			ProductID:   r.ProductID,
			Description: r.Description,
			Quantity:    r.Quantity,
			Unit:        r.Unit,
			UnitPrice:   r.UnitPrice,
			Total:       lineTotal,
		})
	}
	return items, total, nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	cal, err := s.identifier.ResolveCalendar(req.Calendar)
	if err != nil {
		return nil, err
	}
	items, total, err := buildInvoiceItems(req.Items)
	if err != nil {
		return nil, err
	}

	trackingCode := ""
	if req.TrackingCode != nil && *req.TrackingCode != "" {
		trackingCode = *req.TrackingCode
	} else if trackingCode, err = s.identifier.TrackingCode(); err != nil {
		return nil, err
	}

	now := s.Now()
	invoice := &domain.Invoice{
		InvoiceType:  domain.InvoiceType(req.InvoiceType),
		PartyID:      req.PartyID,
		PartyName:    req.PartyName,
		Status:       domain.InvoiceDraft,
		Items:        items,
		Subtotal:     total,
		Tax:          0,
		Total:        total,
		TrackingCode: trackingCode,
		Note:         req.Note,
		Calendar:     cal,
		DocumentTimes: domain.DocumentTimes{
			ClientTime: req.ClientTime,
			ServerTime: now,
		},
	}

	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		partyName, err := resolveParty(txCtx, s.personRepo, invoice.PartyID, invoice.PartyName)
		if err != nil {
			return err
		}
		invoice.PartyName = partyName
		for _, item := range invoice.Items {
			if item.ProductID == nil {
				continue
			}
			if _, err := s.productRepo.FindProductByID(txCtx, *item.ProductID); err != nil {
				return err
			}
		}
		if err := s.invoiceRepo.CreateInvoice(txCtx, invoice); err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}

		effective := now
		if req.ClientTime != nil {
			effective = *req.ClientTime
		}
		invoice.InvoiceNumber = s.identifier.InvoiceNumber(invoice.InvoiceType, invoice.ID, effective, cal)
		if err := s.invoiceRepo.SetInvoiceNumber(txCtx, invoice.ID, invoice.InvoiceNumber); err != nil {
			return fmt.Errorf("failed to assign invoice number: %w", err)
		}

		if _, err := s.audit.Append(txCtx, domain.EntityInvoice, strconv.FormatInt(invoice.ID, 10), domain.ActionCreate, invoiceSnapshot(invoice)); err != nil {
			return fmt.Errorf("%w: audit append for invoice %d: %w", apperrors.ErrIntegrity, invoice.ID, err)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create invoice", slog.String("invoice_type", req.InvoiceType))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created",
		slog.Int64("invoice_id", invoice.ID),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.Int64("total", invoice.Total))
	return invoice, nil
}

func (s *invoiceService) FinalizeInvoice(ctx context.Context, invoiceID int64, req dto.FinalizeRequest) (*domain.Invoice, error) {
	var (
		result       *domain.Invoice
		alreadyFinal bool
	)

	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		invoice, err := s.invoiceRepo.FindInvoiceByIDForUpdate(txCtx, invoiceID)
		if err != nil {
			return err
		}
		if invoice.Status == domain.InvoiceFinal {
			result, alreadyFinal = invoice, true
			return nil
		}

		now := s.Now()
		swapped, err := s.invoiceRepo.MarkInvoiceFinal(txCtx, invoiceID, now, req.ClientTime)
		if err != nil {
			return fmt.Errorf("failed to mark invoice final: %w", err)
		}
		if !swapped {
			// Another finalize won between our read and the update.
			current, err := s.invoiceRepo.FindInvoiceByID(txCtx, invoiceID)
			if err != nil {
				return err
			}
			result, alreadyFinal = current, true
			return nil
		}

		invoice.Status = domain.InvoiceFinal
		invoice.FinalizedAt = &now
		if req.ClientTime != nil {
			invoice.ClientTime = req.ClientTime
		}

		for _, item := range invoice.Items {
			if item.ProductID == nil {
				continue
			}
			if err := s.productRepo.AdjustInventory(txCtx, *item.ProductID, item.InventoryDelta(invoice.InvoiceType)); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return err
				}
				return fmt.Errorf("failed to adjust inventory of product %s: %w", *item.ProductID, err)
			}
		}

		if invoice.Total > 0 {
			debit, credit := invoice.InvoiceType.LedgerAccounts()
			description := "Invoice " + invoice.InvoiceNumber
			trackingCode := invoice.TrackingCode
			entryDate := now
			if req.ClientTime != nil {
				entryDate = *req.ClientTime
			}
			_, err := s.ledger.Post(txCtx, domain.LedgerPosting{
				DebitAccount:  debit,
				CreditAccount: credit,
				Amount:        invoice.Total,
				RefType:       domain.RefInvoice,
				RefID:         invoice.ID,
				PartyID:       invoice.PartyID,
				PartyName:     invoice.PartyName,
				Description:   &description,
				TrackingCode:  &trackingCode,
				EntryDate:     entryDate,
			})
			if err != nil {
				return fmt.Errorf("%w: ledger post for invoice %d: %w", apperrors.ErrIntegrity, invoice.ID, err)
			}
		}

		if _, err := s.audit.Append(txCtx, domain.EntityInvoice, strconv.FormatInt(invoice.ID, 10), domain.ActionFinalize, invoiceSnapshot(invoice)); err != nil {
			return fmt.Errorf("%w: audit append for invoice %d: %w", apperrors.ErrIntegrity, invoice.ID, err)
		}
		result = invoice
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to finalize invoice", slog.Int64("invoice_id", invoiceID))
		return nil, err
	}

	if alreadyFinal {
		s.LogInfo(ctx, "Invoice already final, nothing to do", slog.Int64("invoice_id", invoiceID))
	} else {
		s.LogInfo(ctx, "Invoice finalized",
			slog.Int64("invoice_id", invoiceID),
			slog.String("invoice_number", result.InvoiceNumber))
	}
	return result, nil
}

func invoiceSnapshot(inv *domain.Invoice) map[string]any {
	items := make([]map[string]any, len(inv.Items))
	for i, it := range inv.Items {
		item := map[string]any{
			"description": it.Description,
			"quantity":    it.Quantity,
			"unit_price":  it.UnitPrice,
			"total":       it.Total,
		}
		if it.ProductID != nil {
			item["product_id"] = *it.ProductID
		}
		items[i] = item
	}
	snapshot := map[string]any{
		"id":             inv.ID,
		"invoice_number": inv.InvoiceNumber,
		"invoice_type":   string(inv.InvoiceType),
		"status":         string(inv.Status),
		"subtotal":       inv.Subtotal,
		"tax":            inv.Tax,
		"total":          inv.Total,
		"tracking_code":  inv.TrackingCode,
		"calendar":       string(inv.Calendar),
		"items":          items,
	}
	if inv.PartyID != nil {
		snapshot["party_id"] = *inv.PartyID
	}
	return snapshot
}
