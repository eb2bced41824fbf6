package mapping

import (
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/models"
)

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ToModelInvoice converts a domain Invoice (with its items) to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	items := make([]models.InvoiceItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = ToModelInvoiceItem(it)
	}
	return models.Invoice{
		ID:            d.ID,
		InvoiceNumber: optionalString(d.InvoiceNumber),
		InvoiceType:   string(d.InvoiceType),
		PartyID:       d.PartyID,
		PartyName:     d.PartyName,
		Status:        string(d.Status),
		Subtotal:      d.Subtotal,
		Tax:           d.Tax,
		Total:         d.Total,
		TrackingCode:  d.TrackingCode,
		Note:          d.Note,
		Calendar:      string(d.Calendar),
		ClientTime:    d.ClientTime,
		ServerTime:    d.ServerTime,
		FinalizedAt:   d.FinalizedAt,
		Items:         items,
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	items := make([]domain.InvoiceItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = ToDomainInvoiceItem(it)
	}
	return domain.Invoice{
		ID:            m.ID,
		InvoiceNumber: derefString(m.InvoiceNumber),
		InvoiceType:   domain.InvoiceType(m.InvoiceType),
		PartyID:       m.PartyID,
		PartyName:     m.PartyName,
		Status:        domain.InvoiceStatus(m.Status),
		Items:         items,
		Subtotal:      m.Subtotal,
		Tax:           m.Tax,
		Total:         m.Total,
		TrackingCode:  m.TrackingCode,
		Note:          m.Note,
		Calendar:      domain.Calendar(m.Calendar),
		FinalizedAt:   m.FinalizedAt,
		DocumentTimes: domain.DocumentTimes{
			ClientTime: m.ClientTime,
			ServerTime: m.ServerTime,
		},
	}
}

// ToModelInvoiceItem converts a domain InvoiceItem to a model InvoiceItem
func ToModelInvoiceItem(d domain.InvoiceItem) models.InvoiceItem {
	return models.InvoiceItem{
		ID:          d.ID,
		InvoiceID:   d.InvoiceID,
		ProductID:   d.ProductID,
		Description: d.Description,
		Quantity:    d.Quantity,
		Unit:        d.Unit,
		UnitPrice:   d.UnitPrice,
		Total:       d.Total,
	}
}

// ToDomainInvoiceItem converts a model InvoiceItem to a domain InvoiceItem
func ToDomainInvoiceItem(m models.InvoiceItem) domain.InvoiceItem {
	return domain.InvoiceItem{
		ID:          m.ID,
		InvoiceID:   m.InvoiceID,
		ProductID:   m.ProductID,
		Description: m.Description,
		Quantity:    m.Quantity,
		Unit:        m.Unit,
		UnitPrice:   m.UnitPrice,
		Total:       m.Total,
	}
}

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		ID:            d.ID,
		PaymentNumber: optionalString(d.PaymentNumber),
		Direction:     string(d.Direction),
		Method:        string(d.Method),
		Amount:        d.Amount,
		PartyID:       d.PartyID,
		PartyName:     d.PartyName,
		Reference:     d.Reference,
		InvoiceID:     d.InvoiceID,
		DueDate:       d.DueDate,
		Note:          d.Note,
		Status:        string(d.Status),
		TrackingCode:  d.TrackingCode,
		Calendar:      string(d.Calendar),
		ClientTime:    d.ClientTime,
		ServerTime:    d.ServerTime,
		PostedAt:      d.PostedAt,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		ID:            m.ID,
		PaymentNumber: derefString(m.PaymentNumber),
		Direction:     domain.PaymentDirection(m.Direction),
		Method:        domain.PaymentMethod(m.Method),
		Amount:        m.Amount,
		PartyID:       m.PartyID,
		PartyName:     m.PartyName,
		Reference:     m.Reference,
		InvoiceID:     m.InvoiceID,
		DueDate:       m.DueDate,
		Note:          m.Note,
		Status:        domain.PaymentStatus(m.Status),
		TrackingCode:  m.TrackingCode,
		Calendar:      domain.Calendar(m.Calendar),
		PostedAt:      m.PostedAt,
		DocumentTimes: domain.DocumentTimes{
			ClientTime: m.ClientTime,
			ServerTime: m.ServerTime,
		},
	}
}

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ID:        d.ID,
		Name:      d.Name,
		Code:      d.Code,
		Unit:      d.Unit,
		Inventory: d.Inventory,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ID:        m.ID,
		Name:      m.Name,
		Code:      m.Code,
		Unit:      m.Unit,
		Inventory: m.Inventory,
		CreatedAt: m.CreatedAt,
	}
}

// ToModelPerson converts a domain Person to a model Person
func ToModelPerson(d domain.Person) models.Person {
	return models.Person{
		ID:          d.ID,
		Name:        d.Name,
		NameNorm:    domain.NormalizePersonName(d.Name),
		Kind:        d.Kind,
		Mobile:      d.Mobile,
		Description: d.Description,
		Code:        d.Code,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainPerson converts a model Person to a domain Person
func ToDomainPerson(m models.Person) domain.Person {
	return domain.Person{
		ID:          m.ID,
		Name:        m.Name,
		Kind:        m.Kind,
		Mobile:      m.Mobile,
		Description: m.Description,
		Code:        m.Code,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainPersonSlice converts a slice of model Persons to domain Persons
func ToDomainPersonSlice(ms []models.Person) []domain.Person {
	out := make([]domain.Person, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPerson(m)
	}
	return out
}

// ToPartyRefTotals indexes per-document party totals by reference type.
func ToPartyRefTotals(ms []models.PartyRefTotal) map[domain.RefType]int64 {
	out := make(map[domain.RefType]int64, len(ms))
	for _, m := range ms {
		out[domain.RefType(m.RefType)] += m.Total
	}
	return out
}
